package work

import "errors"

// Work domain errors
var (
	ErrWorkEntryNotFound = errors.New("work entry not found")
	ErrNotEntryOwner     = errors.New("work entry belongs to another user")
	ErrNotAuthorized     = errors.New("not authorized to view this user's records")
)
