package user

import (
	"context"
)

// UserRepository defines read access to the personnel view.
type UserRepository interface {
	// FindByUsername resolves a user, returning ErrUserNotFound if absent.
	FindByUsername(ctx context.Context, username string) (UserInfo, error)

	// FindAll retrieves all users ordered by username.
	FindAll(ctx context.Context) ([]UserInfo, error)

	// FindAllByDepartment retrieves one department's users ordered by
	// username.
	FindAllByDepartment(ctx context.Context, department string) ([]UserInfo, error)
}
