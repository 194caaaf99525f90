package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklogix/attendance-backend-go/internal/domain/user"
)

type fakeUserRepo struct {
	users    []user.UserInfo
	allCalls int
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (user.UserInfo, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.UserInfo{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]user.UserInfo, error) {
	r.allCalls++
	return r.users, nil
}

func (r *fakeUserRepo) FindAllByDepartment(_ context.Context, department string) ([]user.UserInfo, error) {
	var out []user.UserInfo
	for _, u := range r.users {
		if u.Department == department {
			out = append(out, u)
		}
	}
	return out, nil
}

func testRepo() *fakeUserRepo {
	return &fakeUserRepo{users: []user.UserInfo{
		{Username: "admin", Name: "The Admin", RoleAdmin: true, Department: "IT"},
		{Username: "head", Name: "Dept Head", RoleHip: true, Department: "OPS"},
		{Username: "worker", Name: "Worker One", Department: "OPS"},
		{Username: "other", Name: "Other Dept", Department: "IT"},
	}}
}

func TestWorkUsersAdminSeesEveryone(t *testing.T) {
	svc := NewUserService(testRepo())

	users, err := svc.WorkUsers(context.Background(), "admin")
	require.NoError(t, err)
	assert.Len(t, users, 4)

	for _, u := range users {
		assert.Equal(t, u.Username == "admin", u.Selected)
	}
}

func TestWorkUsersHeadSeesDepartment(t *testing.T) {
	svc := NewUserService(testRepo())

	users, err := svc.WorkUsers(context.Background(), "head")
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Equal(t, "OPS", u.Department)
	}
}

func TestWorkUsersRegularSeesSelf(t *testing.T) {
	svc := NewUserService(testRepo())

	users, err := svc.WorkUsers(context.Background(), "worker")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "worker", users[0].Username)
	assert.True(t, users[0].Selected)
}

func TestWorkUsersUnknownRequester(t *testing.T) {
	svc := NewUserService(testRepo())

	_, err := svc.WorkUsers(context.Background(), "ghost")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestAllUsersCachedUntilEvicted(t *testing.T) {
	repo := testRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	_, err := svc.WorkUsers(ctx, "admin")
	require.NoError(t, err)
	_, err = svc.WorkUsers(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.allCalls, "second admin listing served from cache")

	require.NoError(t, svc.EvictCache(ctx))
	_, err = svc.WorkUsers(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.allCalls)
}
