package models

import (
	"time"

	"github.com/sgasse/chrono-intervals/pkg/intervals"
)

// Requests for the intervals HTTP endpoints. Defined in domain for consistency and reuse.

type IntervalsRequest struct {
	Begin          string `query:"begin" json:"begin" validate:"required"`
	End            string `query:"end" json:"end" validate:"required"`
	Grouping       string `query:"grouping" json:"grouping" default:"day" validate:"oneof=hour day week month quarter year"`
	OffsetWestSecs int    `query:"offset_west_secs" json:"offset_west_secs"`
	Precision      string `query:"precision" json:"precision" default:"1ms"`
	ExtendBegin    *bool  `query:"extend_begin" json:"extend_begin" default:"true"`
	ExtendEnd      *bool  `query:"extend_end" json:"extend_end" default:"true"`
}

type BoundariesRequest struct {
	At             string `query:"at" json:"at" validate:"required"`
	Grouping       string `query:"grouping" json:"grouping" default:"day" validate:"oneof=hour day week month quarter year"`
	OffsetWestSecs int    `query:"offset_west_secs" json:"offset_west_secs"`
}

type IntervalsResponse struct {
	Grouping  string               `json:"grouping"`
	Begin     time.Time            `json:"begin"`
	End       time.Time            `json:"end"`
	Count     int                  `json:"count"`
	Intervals []intervals.Interval `json:"intervals"`
}

type BoundariesResponse struct {
	Grouping string    `json:"grouping"`
	At       time.Time `json:"at"`
	Boundary time.Time `json:"boundary"`
	Next     time.Time `json:"next"`
}
