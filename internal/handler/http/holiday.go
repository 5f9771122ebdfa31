package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/asistpro/asistencia-backend-go/internal/domain/holiday"
	"github.com/asistpro/asistencia-backend-go/internal/handler/http/response"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ForCompany(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: holidayService}
}

// Create implements HolidayHandler.
func (h *HolidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.holidayService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create holiday error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created", created)
}

// GetByID implements HolidayHandler.
func (h *HolidayHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	holidayData, err := h.holidayService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidayData)
}

func boolQueryParam(r *http.Request, name string) *bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	value := raw == "true"
	return &value
}

// List implements HolidayHandler.
func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	year, _ := strconv.Atoi(query.Get("year"))
	month, _ := strconv.Atoi(query.Get("month"))

	filter := holiday.ListFilter{
		Year:      year,
		Month:     month,
		Kind:      query.Get("kind"),
		Global:    boolQueryParam(r, "global"),
		Active:    boolQueryParam(r, "active"),
		Mandatory: boolQueryParam(r, "mandatory"),
	}

	holidays, err := h.holidayService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List holidays error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// Update implements HolidayHandler.
func (h *HolidayHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req holiday.UpdateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.holidayService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Update holiday error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday updated", updated)
}

// Delete implements HolidayHandler.
func (h *HolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.holidayService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted", nil)
}

// ForCompany implements HolidayHandler.
func (h *HolidayHandlerImpl) ForCompany(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	holidays, err := h.holidayService.ForCompany(r.Context(),
		chi.URLParam(r, "companyID"),
		query.Get("start_date"),
		query.Get("end_date"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}
