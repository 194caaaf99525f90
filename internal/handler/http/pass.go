package http

import (
	"log/slog"
	"net/http"

	"github.com/worklogix/attendance-backend-go/internal/domain/pass"
	"github.com/worklogix/attendance-backend-go/internal/handler/http/response"
)

type PassHandler interface {
	ListPasses(w http.ResponseWriter, r *http.Request)
	ListOnsite(w http.ResponseWriter, r *http.Request)
}

type PassHandlerImpl struct {
	passService pass.PassService
}

func NewPassHandler(passService pass.PassService) PassHandler {
	return &PassHandlerImpl{passService: passService}
}

// ListPasses implements PassHandler.
func (p *PassHandlerImpl) ListPasses(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")

	passes, err := p.passService.ListPasses(r.Context(), username)
	if err != nil {
		slog.Error("ListPasses service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, passes)
}

// ListOnsite implements PassHandler.
func (p *PassHandlerImpl) ListOnsite(w http.ResponseWriter, r *http.Request) {
	onsite, err := p.passService.ListOnsite(r.Context())
	if err != nil {
		slog.Error("ListOnsite service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, onsite)
}
