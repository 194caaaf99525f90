package feed

import (
	"context"
	"time"
)

// DaySummary is one day of attendance aggregates computed by the external
// attendance system. Landmarks are optional; minute totals are already
// reconciled on the feed side.
type DaySummary struct {
	Date          time.Time  `json:"date"`
	WorkStart     *time.Time `json:"work_start,omitempty"`
	LunchStart    *time.Time `json:"lunch_start,omitempty"`
	LunchEnd      *time.Time `json:"lunch_end,omitempty"`
	WorkEnd       *time.Time `json:"work_end,omitempty"`
	OnsiteMinutes int64      `json:"onsite_minutes"`
	TripMinutes   int64      `json:"trip_minutes"`
	SickMinutes   int64      `json:"sick_minutes"`
}

// Client fetches day aggregates from the external attendance feed.
// Network transport and schema mapping live behind this interface.
type Client interface {
	FetchMonth(ctx context.Context, username string, year, month int) ([]DaySummary, error)
}
