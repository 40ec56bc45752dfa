package api

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/sgasse/chrono-intervals/internal/domain/models"
	"github.com/sgasse/chrono-intervals/internal/usecase"
	xhttp "github.com/sgasse/chrono-intervals/pkg/http"
	"github.com/sgasse/chrono-intervals/pkg/intervals"
	applogger "github.com/sgasse/chrono-intervals/pkg/logger"
	"github.com/sgasse/chrono-intervals/pkg/util"
)

type IntervalsEchoHandler struct {
	logger  *applogger.Logger
	usecase *usecase.IntervalsUseCase
}

func NewIntervalsEchoHandler(l *applogger.Logger, uc *usecase.IntervalsUseCase) *IntervalsEchoHandler {
	return &IntervalsEchoHandler{logger: l, usecase: uc}
}

func (h *IntervalsEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/intervals", h.GetIntervals)
	g.GET("/intervals/boundaries", h.GetBoundaries)
}

// GetIntervals returns the interval grid covering the requested time range.
func (h *IntervalsEchoHandler) GetIntervals(c echo.Context) error {
	var req models.IntervalsRequest
	if errs := xhttp.ReadAndValidateRequest(c, &req); errs != nil {
		return xhttp.BadRequestResponse(c, errs)
	}

	begin, ok := xhttp.ParseTime(req.Begin)
	if !ok {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestErrorf("invalid begin timestamp: %q", req.Begin))
	}
	end, ok := xhttp.ParseTime(req.End)
	if !ok {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestErrorf("invalid end timestamp: %q", req.End))
	}
	grouping, err := intervals.ParseGrouping(req.Grouping)
	if err != nil {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()))
	}
	precision, ok := util.ParseDuration(req.Precision)
	if !ok {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestErrorf("invalid precision: %q", req.Precision))
	}

	params := usecase.GetIntervalsParams{
		Begin:          begin,
		End:            end,
		Grouping:       grouping,
		OffsetWestSecs: req.OffsetWestSecs,
		Precision:      precision,
		ExtendBegin:    req.ExtendBegin == nil || *req.ExtendBegin,
		ExtendEnd:      req.ExtendEnd == nil || *req.ExtendEnd,
	}

	resp, err := h.usecase.GetIntervals(c.Request().Context(), params)
	if err != nil {
		return h.mapError(c, err)
	}
	return xhttp.SuccessResponse(c, resp)
}

// GetBoundaries reports the boundary at or before a probe instant and the one after it.
func (h *IntervalsEchoHandler) GetBoundaries(c echo.Context) error {
	var req models.BoundariesRequest
	if errs := xhttp.ReadAndValidateRequest(c, &req); errs != nil {
		return xhttp.BadRequestResponse(c, errs)
	}

	at, ok := xhttp.ParseTime(req.At)
	if !ok {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestErrorf("invalid at timestamp: %q", req.At))
	}
	grouping, err := intervals.ParseGrouping(req.Grouping)
	if err != nil {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()))
	}

	resp, err := h.usecase.GetBoundaries(c.Request().Context(), at, grouping, req.OffsetWestSecs)
	if err != nil {
		return h.mapError(c, err)
	}
	return xhttp.SuccessResponse(c, resp)
}

func (h *IntervalsEchoHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, intervals.ErrInvalidRange):
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()).WithError(err))
	case errors.Is(err, intervals.ErrOutOfRange):
		return xhttp.AppErrorResponse(c, xhttp.UnprocessableError(err.Error()).WithError(err))
	case errors.Is(err, usecase.ErrRangeTooLarge):
		return xhttp.AppErrorResponse(c, xhttp.UnprocessableError(err.Error()).WithError(err))
	default:
		h.logger.Error("interval request failed", applogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
}
