package pass

import (
	"context"
	"time"
)

// PassRepository defines read access to the badge system's access-event view.
// The view is immutable; there are no write methods.
type PassRepository interface {
	// FindByUsernameAndRange retrieves all events for one user inside
	// [from, to), ordered by timestamp ascending.
	FindByUsernameAndRange(ctx context.Context, username string, from, to time.Time) ([]Pass, error)

	// FindLatest retrieves the most recent events, optionally filtered by
	// username, newest first.
	FindLatest(ctx context.Context, username string, limit int) ([]Pass, error)

	// FindOnsite retrieves the last event of today per person where that
	// event is an arrival, i.e. everyone currently in the building.
	FindOnsite(ctx context.Context) ([]Pass, error)
}
