package user

import (
	"context"
	"fmt"
	"sync"

	"github.com/worklogix/attendance-backend-go/internal/domain/user"
)

// UserServiceImpl resolves users against the access system's personnel
// view. The full user list changes rarely, so it is cached until the
// scheduler evicts it.
type UserServiceImpl struct {
	user.UserRepository

	mu  sync.Mutex
	all []user.UserInfo
}

func NewUserService(users user.UserRepository) *UserServiceImpl {
	return &UserServiceImpl{UserRepository: users}
}

// GetUser implements user.UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, username string) (user.UserResponse, error) {
	info, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return user.UserResponse{}, err
	}
	return toResponse(info, false), nil
}

// WorkUsers implements user.UserService. Admins see everyone, department
// heads their own department, everyone else only themselves. The
// requesting user is flagged selected.
func (s *UserServiceImpl) WorkUsers(ctx context.Context, username string) ([]user.UserResponse, error) {
	requester, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	var visible []user.UserInfo
	switch {
	case requester.RoleAdmin:
		visible, err = s.allUsers(ctx)
	case requester.RoleHip:
		visible, err = s.UserRepository.FindAllByDepartment(ctx, requester.Department)
	default:
		visible = []user.UserInfo{requester}
	}
	if err != nil {
		return nil, fmt.Errorf("load visible users: %w", err)
	}

	out := make([]user.UserResponse, 0, len(visible))
	for _, info := range visible {
		out = append(out, toResponse(info, info.Username == username))
	}
	return out, nil
}

// EvictCache drops the cached user list. Wired to the scheduler.
func (s *UserServiceImpl) EvictCache(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.all = nil
	return nil
}

func (s *UserServiceImpl) allUsers(ctx context.Context) ([]user.UserInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.all != nil {
		return s.all, nil
	}

	all, err := s.UserRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.all = all
	return all, nil
}

func toResponse(info user.UserInfo, selected bool) user.UserResponse {
	return user.UserResponse{
		Code:       info.Code,
		Name:       info.Name,
		Username:   info.Username,
		Fond:       info.FondPercent,
		RoleAdmin:  info.RoleAdmin,
		RoleHip:    info.RoleHip,
		Department: info.Department,
		Selected:   selected,
	}
}
