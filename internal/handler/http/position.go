package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/asistpro/asistencia-backend-go/internal/domain/position"
	"github.com/asistpro/asistencia-backend-go/internal/handler/http/response"
)

type PositionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Subordinates(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PositionHandlerImpl struct {
	positionService position.PositionService
}

func NewPositionHandler(positionService position.PositionService) PositionHandler {
	return &PositionHandlerImpl{positionService: positionService}
}

// Create implements PositionHandler.
func (h *PositionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req position.CreatePositionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.positionService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create position error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Position created", created)
}

// GetByID implements PositionHandler.
func (h *PositionHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	positionData, err := h.positionService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, positionData)
}

// List implements PositionHandler.
func (h *PositionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	positions, err := h.positionService.List(r.Context(),
		query.Get("company_id"),
		query.Get("department_id"),
		query.Get("active") == "true",
	)
	if err != nil {
		slog.Error("List positions error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, positions)
}

// Subordinates implements PositionHandler.
func (h *PositionHandlerImpl) Subordinates(w http.ResponseWriter, r *http.Request) {
	subordinates, err := h.positionService.Subordinates(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, subordinates)
}

// Update implements PositionHandler.
func (h *PositionHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req position.UpdatePositionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.positionService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Update position error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Position updated", updated)
}

// Delete implements PositionHandler.
func (h *PositionHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.positionService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Position deleted", nil)
}
