package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sgasse/chrono-intervals/internal/domain/models"
	"github.com/sgasse/chrono-intervals/pkg/cache"
	"github.com/sgasse/chrono-intervals/pkg/intervals"
	"github.com/sgasse/chrono-intervals/pkg/metrics"
)

// ErrRangeTooLarge is returned when a request would produce more intervals
// than the configured per-request cap.
var ErrRangeTooLarge = errors.New("requested range produces too many intervals")

// GetIntervalsParams carries a fully parsed interval request.
type GetIntervalsParams struct {
	Begin          time.Time
	End            time.Time
	Grouping       intervals.Grouping
	OffsetWestSecs int
	Precision      time.Duration
	ExtendBegin    bool
	ExtendEnd      bool
}

type IntervalsUseCase struct {
	cache         cache.Service
	metrics       *metrics.Recorder
	cacheTTL      time.Duration
	maxPerRequest int
}

func NewIntervalsUseCase(c cache.Service, m *metrics.Recorder, cacheTTL time.Duration, maxPerRequest int) *IntervalsUseCase {
	return &IntervalsUseCase{
		cache:         c,
		metrics:       m,
		cacheTTL:      cacheTTL,
		maxPerRequest: maxPerRequest,
	}
}

// approxUnit is a lower bound on the span covered by one interval of the
// grouping, used to reject oversized ranges before generating anything.
func approxUnit(g intervals.Grouping) time.Duration {
	switch g {
	case intervals.PerHour:
		return time.Hour
	case intervals.PerDay:
		return 24 * time.Hour
	case intervals.PerWeek:
		return 7 * 24 * time.Hour
	case intervals.PerMonth:
		return 28 * 24 * time.Hour
	case intervals.PerQuarter:
		return 90 * 24 * time.Hour
	default:
		return 365 * 24 * time.Hour
	}
}

func (uc *IntervalsUseCase) GetIntervals(ctx context.Context, p GetIntervalsParams) (*models.IntervalsResponse, error) {
	start := time.Now()
	defer func() {
		if uc.metrics != nil {
			uc.metrics.RecordLatency("get_intervals", time.Since(start).Seconds())
		}
	}()

	if uc.maxPerRequest > 0 && p.End.After(p.Begin) {
		estimate := int(p.End.Sub(p.Begin)/approxUnit(p.Grouping)) + 2
		if estimate > uc.maxPerRequest {
			return nil, fmt.Errorf("%w: at most %d allowed", ErrRangeTooLarge, uc.maxPerRequest)
		}
	}

	key := uc.cacheKey(p)
	if uc.cache != nil {
		var cached models.IntervalsResponse
		err := uc.cache.Get(ctx, key, &cached)
		if err == nil {
			if uc.metrics != nil {
				uc.metrics.RecordCacheLookup(true)
			}
			return &cached, nil
		}
		if uc.metrics != nil {
			uc.metrics.RecordCacheLookup(false)
		}
	}

	gen := intervals.NewGenerator().
		WithGrouping(p.Grouping).
		WithOffsetWestSecs(p.OffsetWestSecs).
		WithPrecision(p.Precision)
	if !p.ExtendBegin {
		gen = gen.WithoutExtendedBegin()
	}
	if !p.ExtendEnd {
		gen = gen.WithoutExtendedEnd()
	}

	ivs, err := gen.Intervals(p.Begin, p.End)
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.RecordError(errorKind(err))
		}
		return nil, err
	}
	if uc.maxPerRequest > 0 && len(ivs) > uc.maxPerRequest {
		return nil, fmt.Errorf("%w: at most %d allowed", ErrRangeTooLarge, uc.maxPerRequest)
	}

	resp := &models.IntervalsResponse{
		Grouping:  p.Grouping.String(),
		Begin:     p.Begin.UTC(),
		End:       p.End.UTC(),
		Count:     len(ivs),
		Intervals: ivs,
	}

	if uc.metrics != nil {
		uc.metrics.RecordRequest(p.Grouping.String(), len(ivs))
	}
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, resp, uc.cacheTTL); err != nil && uc.metrics != nil {
			uc.metrics.RecordError("cache_set")
		}
	}
	return resp, nil
}

func (uc *IntervalsUseCase) GetBoundaries(_ context.Context, at time.Time, g intervals.Grouping, offsetWestSecs int) (*models.BoundariesResponse, error) {
	boundary := intervals.BoundaryAtOrBefore(at, g, offsetWestSecs)
	return &models.BoundariesResponse{
		Grouping: g.String(),
		At:       at.UTC(),
		Boundary: boundary,
		Next:     intervals.NextBoundary(boundary, g, offsetWestSecs),
	}, nil
}

func (uc *IntervalsUseCase) cacheKey(p GetIntervalsParams) string {
	raw := cache.GenerateKeyWithParams("intervals",
		p.Begin.UTC().Format(time.RFC3339Nano),
		p.End.UTC().Format(time.RFC3339Nano),
		p.Grouping.String(),
		p.OffsetWestSecs,
		p.Precision.String(),
		p.ExtendBegin,
		p.ExtendEnd,
	)
	return cache.HashKey(raw)
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, intervals.ErrInvalidRange):
		return "invalid_range"
	case errors.Is(err, intervals.ErrOutOfRange):
		return "out_of_range"
	default:
		return "internal"
	}
}
