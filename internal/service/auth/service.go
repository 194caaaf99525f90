package auth

import (
	"context"
	"fmt"

	jwxjwt "github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/worklogix/attendance-backend-go/internal/domain/auth"
	"github.com/worklogix/attendance-backend-go/internal/domain/user"
	"github.com/worklogix/attendance-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(users user.UserRepository, jwtService jwt.Service) *AuthServiceImpl {
	return &AuthServiceImpl{
		UserRepository: users,
		jwtService:     jwtService,
	}
}

// Login implements auth.AuthService. The username must resolve in the
// personnel view; role claims are baked into the access token.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	info, err := s.UserRepository.FindByUsername(ctx, req.Username)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return s.issueTokens(info)
}

// Refresh implements auth.AuthService. A revoked or non-refresh token is
// rejected; a fresh pair is issued and the old refresh token revoked.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.LoginResponse{}, auth.ErrTokenRevoked
	}

	token, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	if err := jwxjwt.Validate(token); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	if claims["type"] != "refresh" {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	info, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	resp, err := s.issueTokens(info)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	s.jwtService.RevokeToken(refreshToken)
	return resp, nil
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

func (s *AuthServiceImpl) issueTokens(info user.UserInfo) (auth.LoginResponse, error) {
	access, accessExp, err := s.jwtService.GenerateAccessToken(
		info.Username, info.RoleAdmin, info.RoleHip, info.Department)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("generate access token: %w", err)
	}

	refresh, refreshExp, err := s.jwtService.GenerateRefreshToken(info.Username)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("generate refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:      access,
		ExpiresAt:        accessExp,
		RefreshToken:     refresh,
		RefreshExpiresAt: refreshExp,
	}, nil
}
