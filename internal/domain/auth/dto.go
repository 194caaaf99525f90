package auth

import (
	"context"

	"github.com/worklogix/attendance-backend-go/internal/pkg/validator"
)

// LoginRequest identifies a badge holder. There is no password: the
// service runs on the internal network and identity is resolved against
// the access system's personnel view.
type LoginRequest struct {
	Username string `json:"username"`
}

func (r LoginRequest) Validate() error {
	if validator.IsEmpty(r.Username) {
		return validator.ValidationErrors{
			{Field: "username", Message: "username is required"},
		}
	}
	return nil
}

// LoginResponse carries the issued tokens. The refresh token travels in an
// HTTP-only cookie, never in the body.
type LoginResponse struct {
	AccessToken      string `json:"access_token"`
	ExpiresAt        int64  `json:"expires_at"`
	RefreshToken     string `json:"-"`
	RefreshExpiresAt int64  `json:"-"`
}

// AuthService issues and revokes tokens for badge identities.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
