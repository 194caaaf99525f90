package work

import (
	"context"
)

// WorkService defines the attendance reconciliation operations.
type WorkService interface {
	// GetWorkMonth computes the full month record for one user: per-day
	// landmarks with corrections, worked hours, balance, reconciled manual
	// entries and monthly sums. Fails as a whole when the user cannot be
	// resolved; never returns a partial month.
	GetWorkMonth(ctx context.Context, username string, year, month int) (WorkMonthResponse, error)

	// SetWork applies an explicit edit to a manual entry on behalf of
	// editor. An edit that clears every field deletes the entry.
	SetWork(ctx context.Context, req SetWorkRequest, editor string) (int64, error)
}
