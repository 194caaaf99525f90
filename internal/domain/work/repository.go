package work

import (
	"context"
	"time"
)

// WorkRepository defines data access for manual work entries.
type WorkRepository interface {
	// FindByUsernameAndDateRange retrieves entries for [from, to] inclusive,
	// ordered by date ascending.
	FindByUsernameAndDateRange(ctx context.Context, username string, from, to time.Time) ([]WorkEntry, error)

	// FindByID retrieves a single entry, returning ErrWorkEntryNotFound if
	// no row exists.
	FindByID(ctx context.Context, id int64) (WorkEntry, error)

	// Save inserts (ID == 0) or updates an entry and returns the stored row.
	Save(ctx context.Context, entry WorkEntry) (WorkEntry, error)

	// CreateIfAbsent inserts the default entry unless a row for
	// (username, date) already exists, and returns whichever row is stored.
	// Concurrent callers racing the lazy default creation must both end up
	// with the same single row; implementations back this with a unique
	// constraint and an upsert.
	CreateIfAbsent(ctx context.Context, entry WorkEntry) (WorkEntry, error)

	// DeleteByID removes an entry. Deleting a missing row is not an error.
	DeleteByID(ctx context.Context, id int64) error
}
