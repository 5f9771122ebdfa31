package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/asistpro/asistencia-backend-go/internal/domain/user"
	"github.com/asistpro/asistencia-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	GetByID(w http.ResponseWriter, r *http.Request)
	Unlock(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// GetByID implements UserHandler.
func (h *UserHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	userData, err := h.userService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, userData)
}

// Unlock implements UserHandler.
func (h *UserHandlerImpl) Unlock(w http.ResponseWriter, r *http.Request) {
	unlocked, err := h.userService.Unlock(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Unlock account error", "user_id", chi.URLParam(r, "id"), "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Account unlocked", "user_id", unlocked.ID)
	response.SuccessWithMessage(w, "Account unlocked", unlocked)
}
