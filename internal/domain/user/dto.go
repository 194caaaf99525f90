package user

import "context"

// UserResponse is the transport representation of a user.
type UserResponse struct {
	Code       int    `json:"code"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	Fond       *int   `json:"fond,omitempty"`
	RoleAdmin  bool   `json:"role_admin,omitempty"`
	RoleHip    bool   `json:"role_hip,omitempty"`
	Department string `json:"department,omitempty"`
	Selected   bool   `json:"selected,omitempty"`
}

// UserService defines user lookup and listing operations.
type UserService interface {
	// GetUser resolves a single user by username.
	GetUser(ctx context.Context, username string) (UserResponse, error)

	// WorkUsers returns the users visible to username: admins see everyone,
	// department heads see their own department, everyone else sees
	// themselves. The requested user carries the selected flag.
	WorkUsers(ctx context.Context, username string) ([]UserResponse, error)
}
