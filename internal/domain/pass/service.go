package pass

import (
	"context"
)

// PassService defines read operations over the access-event stream.
type PassService interface {
	// ListPasses returns the most recent events, optionally filtered by user.
	ListPasses(ctx context.Context, username string) ([]PassResponse, error)

	// ListOnsite returns everyone currently present in the building.
	// Results may be served from a short-lived cache.
	ListOnsite(ctx context.Context) ([]PassResponse, error)
}
