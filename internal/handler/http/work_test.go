package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklogix/attendance-backend-go/internal/domain/user"
	"github.com/worklogix/attendance-backend-go/internal/domain/work"
)

type fakeWorkService struct {
	gotUsername string
	gotYear     int
	gotMonth    int
	month       work.WorkMonthResponse
	setWorkID   int64
	err         error
}

func (s *fakeWorkService) GetWorkMonth(_ context.Context, username string, year, month int) (work.WorkMonthResponse, error) {
	s.gotUsername, s.gotYear, s.gotMonth = username, year, month
	if s.err != nil {
		return work.WorkMonthResponse{}, s.err
	}
	return s.month, nil
}

func (s *fakeWorkService) SetWork(_ context.Context, _ work.SetWorkRequest, _ string) (int64, error) {
	return s.setWorkID, s.err
}

type fakeUserService struct{}

func (s *fakeUserService) GetUser(_ context.Context, username string) (user.UserResponse, error) {
	return user.UserResponse{Username: username}, nil
}

func (s *fakeUserService) WorkUsers(_ context.Context, username string) ([]user.UserResponse, error) {
	return []user.UserResponse{{Username: username, Selected: true}}, nil
}

type fakeUserDir struct {
	users map[string]user.UserInfo
}

func (d *fakeUserDir) FindByUsername(_ context.Context, username string) (user.UserInfo, error) {
	if u, ok := d.users[username]; ok {
		return u, nil
	}
	return user.UserInfo{}, user.ErrUserNotFound
}

func (d *fakeUserDir) FindAll(_ context.Context) ([]user.UserInfo, error) {
	var out []user.UserInfo
	for _, u := range d.users {
		out = append(out, u)
	}
	return out, nil
}

func (d *fakeUserDir) FindAllByDepartment(_ context.Context, department string) ([]user.UserInfo, error) {
	var out []user.UserInfo
	for _, u := range d.users {
		if u.Department == department {
			out = append(out, u)
		}
	}
	return out, nil
}

func testDirectory() *fakeUserDir {
	return &fakeUserDir{users: map[string]user.UserInfo{
		"admin":  {Username: "admin", RoleAdmin: true, Department: "IT"},
		"head":   {Username: "head", RoleHip: true, Department: "OPS"},
		"worker": {Username: "worker", Department: "OPS"},
		"other":  {Username: "other", Department: "IT"},
	}}
}

func authedRequest(t *testing.T, method, target string, body io.Reader, username string) *http.Request {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"username": username, "type": "access"})
	require.NoError(t, err)

	r := httptest.NewRequest(method, target, body)
	return r.WithContext(jwtauth.NewContext(r.Context(), token, nil))
}

func TestGetWorkMonthDefaultsToRequester(t *testing.T) {
	svc := &fakeWorkService{month: work.WorkMonthResponse{Username: "worker"}}
	handler := NewWorkHandler(svc, &fakeUserService{}, testDirectory())

	rec := httptest.NewRecorder()
	handler.GetWorkMonth(rec, authedRequest(t, http.MethodGet, "/api/v1/work/month", nil, "worker"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "worker", svc.gotUsername)

	now := time.Now()
	assert.Equal(t, now.Year(), svc.gotYear)
	assert.Equal(t, int(now.Month()), svc.gotMonth)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestGetWorkMonthRejectsBadMonth(t *testing.T) {
	svc := &fakeWorkService{}
	handler := NewWorkHandler(svc, &fakeUserService{}, testDirectory())

	rec := httptest.NewRecorder()
	handler.GetWorkMonth(rec, authedRequest(t, http.MethodGet, "/api/v1/work/month?year=2025&month=13", nil, "worker"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Empty(t, svc.gotUsername, "service is not reached on invalid input")
}

func TestGetWorkMonthForeignUserForbidden(t *testing.T) {
	svc := &fakeWorkService{}
	handler := NewWorkHandler(svc, &fakeUserService{}, testDirectory())

	rec := httptest.NewRecorder()
	handler.GetWorkMonth(rec, authedRequest(t, http.MethodGet, "/api/v1/work/month?username=other", nil, "worker"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, svc.gotUsername)
}

func TestGetWorkMonthDepartmentHeadSeesOwnDepartment(t *testing.T) {
	svc := &fakeWorkService{month: work.WorkMonthResponse{Username: "worker"}}
	handler := NewWorkHandler(svc, &fakeUserService{}, testDirectory())

	rec := httptest.NewRecorder()
	handler.GetWorkMonth(rec, authedRequest(t, http.MethodGet, "/api/v1/work/month?username=worker", nil, "head"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "worker", svc.gotUsername)
}

func TestGetWorkMonthDepartmentHeadCrossDepartmentForbidden(t *testing.T) {
	svc := &fakeWorkService{}
	handler := NewWorkHandler(svc, &fakeUserService{}, testDirectory())

	rec := httptest.NewRecorder()
	handler.GetWorkMonth(rec, authedRequest(t, http.MethodGet, "/api/v1/work/month?username=other", nil, "head"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetWorkMonthAdminSeesAnyone(t *testing.T) {
	svc := &fakeWorkService{month: work.WorkMonthResponse{Username: "other"}}
	handler := NewWorkHandler(svc, &fakeUserService{}, testDirectory())

	rec := httptest.NewRecorder()
	handler.GetWorkMonth(rec, authedRequest(t, http.MethodGet, "/api/v1/work/month?username=other&year=2025&month=2", nil, "admin"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "other", svc.gotUsername)
	assert.Equal(t, 2025, svc.gotYear)
	assert.Equal(t, 2, svc.gotMonth)
}

func TestSetWorkMalformedBody(t *testing.T) {
	handler := NewWorkHandler(&fakeWorkService{}, &fakeUserService{}, testDirectory())

	rec := httptest.NewRecorder()
	handler.SetWork(rec, authedRequest(t, http.MethodPost, "/api/v1/work/", strings.NewReader("{not json"), "worker"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "BAD_REQUEST")
}

func TestSetWorkReturnsEntryID(t *testing.T) {
	handler := NewWorkHandler(&fakeWorkService{setWorkID: 42}, &fakeUserService{}, testDirectory())

	body := strings.NewReader(`{"date":"2025-02-10","hours":"7.5","work_type":"WORK"}`)
	rec := httptest.NewRecorder()
	handler.SetWork(rec, authedRequest(t, http.MethodPost, "/api/v1/work/", body, "worker"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), fmt.Sprintf(`"id":%d`, 42))
}
