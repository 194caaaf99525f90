package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/worklogix/attendance-backend-go/internal/domain/user"
	"github.com/worklogix/attendance-backend-go/internal/domain/work"
	"github.com/worklogix/attendance-backend-go/internal/handler/http/middleware"
	"github.com/worklogix/attendance-backend-go/internal/handler/http/response"
	"github.com/worklogix/attendance-backend-go/internal/pkg/validator"
	"github.com/worklogix/attendance-backend-go/internal/service/report"
)

type WorkHandler interface {
	GetWorkMonth(w http.ResponseWriter, r *http.Request)
	GetWorkMonthHTML(w http.ResponseWriter, r *http.Request)
	ExportWorkMonth(w http.ResponseWriter, r *http.Request)
	SetWork(w http.ResponseWriter, r *http.Request)
	WorkUsers(w http.ResponseWriter, r *http.Request)
}

type WorkHandlerImpl struct {
	workService work.WorkService
	userService user.UserService
	users       user.UserRepository
}

func NewWorkHandler(workService work.WorkService, userService user.UserService, users user.UserRepository) WorkHandler {
	return &WorkHandlerImpl{
		workService: workService,
		userService: userService,
		users:       users,
	}
}

// monthParams resolves the username/year/month triple from the query,
// defaulting to the authenticated user and the current month.
func (h *WorkHandlerImpl) monthParams(r *http.Request) (username string, year, month int, err error) {
	requester := middleware.Username(r)

	username = r.URL.Query().Get("username")
	if username == "" {
		username = requester
	}

	now := time.Now()
	year, month = now.Year(), int(now.Month())
	if v := r.URL.Query().Get("year"); v != "" {
		year, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("month"); v != "" {
		month, _ = strconv.Atoi(v)
	}
	if !validator.IsValidMonth(year, month) {
		return "", 0, 0, validator.ValidationErrors{
			{Field: "month", Message: "year/month out of range"},
		}
	}

	if err := h.authorizeView(r, requester, username); err != nil {
		return "", 0, 0, err
	}
	return username, year, month, nil
}

// authorizeView lets a user read their own records; admins read anyone,
// department heads their own department.
func (h *WorkHandlerImpl) authorizeView(r *http.Request, requester, target string) error {
	if requester == target {
		return nil
	}

	requesterInfo, err := h.users.FindByUsername(r.Context(), requester)
	if err != nil {
		return err
	}
	if requesterInfo.RoleAdmin {
		return nil
	}
	if requesterInfo.RoleHip {
		targetInfo, err := h.users.FindByUsername(r.Context(), target)
		if err != nil {
			return err
		}
		if targetInfo.Department == requesterInfo.Department {
			return nil
		}
	}
	return work.ErrNotAuthorized
}

// GetWorkMonth implements WorkHandler.
func (h *WorkHandlerImpl) GetWorkMonth(w http.ResponseWriter, r *http.Request) {
	username, year, month, err := h.monthParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.workService.GetWorkMonth(r.Context(), username, year, month)
	if err != nil {
		slog.Error("GetWorkMonth service error", "error", err, "username", username)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetWorkMonthHTML implements WorkHandler. Renders the month as an
// embeddable HTML table fragment.
func (h *WorkHandlerImpl) GetWorkMonthHTML(w http.ResponseWriter, r *http.Request) {
	username, year, month, err := h.monthParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.workService.GetWorkMonth(r.Context(), username, year, month)
	if err != nil {
		slog.Error("GetWorkMonthHTML service error", "error", err, "username", username)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := report.HTMLMonth(w, resp); err != nil {
		slog.Error("GetWorkMonthHTML render error", "error", err, "username", username)
	}
}

// ExportWorkMonth implements WorkHandler. Streams the month as an xlsx
// workbook.
func (h *WorkHandlerImpl) ExportWorkMonth(w http.ResponseWriter, r *http.Request) {
	username, year, month, err := h.monthParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.workService.GetWorkMonth(r.Context(), username, year, month)
	if err != nil {
		slog.Error("ExportWorkMonth service error", "error", err, "username", username)
		response.HandleError(w, err)
		return
	}

	info, err := h.users.FindByUsername(r.Context(), username)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	workbook, err := report.ExcelMonth(resp, info)
	if err != nil {
		slog.Error("ExportWorkMonth render error", "error", err, "username", username)
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("work-%d-%02d-%s.xlsx", year, month, username)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := workbook.Write(w); err != nil {
		slog.Error("ExportWorkMonth write error", "error", err, "username", username)
	}
}

// SetWork implements WorkHandler.
func (h *WorkHandlerImpl) SetWork(w http.ResponseWriter, r *http.Request) {
	var req work.SetWorkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetWork decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	editor := middleware.Username(r)
	id, err := h.workService.SetWork(r.Context(), req, editor)
	if err != nil {
		slog.Error("SetWork service error", "error", err, "editor", editor)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]int64{"id": id})
}

// WorkUsers implements WorkHandler.
func (h *WorkHandlerImpl) WorkUsers(w http.ResponseWriter, r *http.Request) {
	username := middleware.Username(r)

	users, err := h.userService.WorkUsers(r.Context(), username)
	if err != nil {
		slog.Error("WorkUsers service error", "error", err, "username", username)
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}
