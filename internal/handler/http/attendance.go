package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/asistpro/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistpro/asistencia-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	ActiveQRCodes(w http.ResponseWriter, r *http.Request)
	MyRecords(w http.ResponseWriter, r *http.Request)
	DailySummary(w http.ResponseWriter, r *http.Request)
	Statistics(w http.ResponseWriter, r *http.Request)

	CreateManual(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	CreateQRCode(w http.ResponseWriter, r *http.Request)
	ListQRCodes(w http.ResponseWriter, r *http.Request)
	GetQRCode(w http.ResponseWriter, r *http.Request)
	UpdateQRCode(w http.ResponseWriter, r *http.Request)
	DeleteQRCode(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Mark implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	marked, err := h.attendanceService.Mark(r.Context(), req)
	if err != nil {
		slog.Warn("Mark rejected", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance marked",
		"employee_id", marked.Record.EmployeeID,
		"kind", marked.Record.Kind,
	)
	response.Created(w, marked.Message, marked.Record)
}

// ActiveQRCodes implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ActiveQRCodes(w http.ResponseWriter, r *http.Request) {
	codes, err := h.attendanceService.ActiveQRCodes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, codes)
}

func dateQueryParam(r *http.Request, name string) *time.Time {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return nil
	}
	return &parsed
}

// MyRecords implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MyRecords(w http.ResponseWriter, r *http.Request) {
	filter := attendance.MyRecordsFilter{
		Kind:      r.URL.Query().Get("kind"),
		StartDate: dateQueryParam(r, "start_date"),
		EndDate:   dateQueryParam(r, "end_date"),
	}

	records, err := h.attendanceService.MyRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// DailySummary implements AttendanceHandler.
func (h *AttendanceHandlerImpl) DailySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.attendanceService.DailySummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// Statistics implements AttendanceHandler. With format=xlsx the aggregates
// are returned as a workbook download instead of JSON.
func (h *AttendanceHandlerImpl) Statistics(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := attendance.StatisticsRequest{
		EmployeeID: query.Get("employee_id"),
		CompanyID:  query.Get("company_id"),
		StartDate:  query.Get("start_date"),
		EndDate:    query.Get("end_date"),
	}

	if query.Get("format") == "xlsx" {
		workbook, err := h.attendanceService.ExportStatistics(r.Context(), req)
		if err != nil {
			slog.Error("Export statistics error", "error", err)
			response.HandleError(w, err)
			return
		}

		fileName := fmt.Sprintf("attendance_%s.xlsx", time.Now().Format("2006-01-02"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(workbook)
		return
	}

	stats, err := h.attendanceService.Statistics(r.Context(), req)
	if err != nil {
		slog.Error("Statistics error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// CreateManual implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CreateManual(w http.ResponseWriter, r *http.Request) {
	var req attendance.ManualRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.attendanceService.CreateManual(r.Context(), req)
	if err != nil {
		slog.Error("Create manual record error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance record created", created)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if page < 1 {
		page = 1
	}

	filter := attendance.ListFilter{
		EmployeeID: query.Get("employee_id"),
		CompanyID:  query.Get("company_id"),
		Kind:       query.Get("kind"),
		Method:     query.Get("method"),
		StartDate:  dateQueryParam(r, "start_date"),
		EndDate:    dateQueryParam(r, "end_date"),
		Search:     query.Get("search"),
		Page:       page,
		Limit:      limit,
	}

	records, total, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List attendance records error", "error", err)
		response.HandleError(w, err)
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	response.SuccessWithMeta(w, records, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

// GetByID implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	record, err := h.attendanceService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// Update implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.attendanceService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Update attendance record error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record updated", updated)
}

// Delete implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}

// CreateQRCode implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CreateQRCode(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateQRCodeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.attendanceService.CreateQRCode(r.Context(), req)
	if err != nil {
		slog.Error("Create QR code error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "QR code created", created)
}

// ListQRCodes implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListQRCodes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	codes, err := h.attendanceService.ListQRCodes(r.Context(),
		query.Get("company_id"),
		query.Get("active") == "true",
	)
	if err != nil {
		slog.Error("List QR codes error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, codes)
}

// GetQRCode implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetQRCode(w http.ResponseWriter, r *http.Request) {
	qr, err := h.attendanceService.GetQRCode(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, qr)
}

// UpdateQRCode implements AttendanceHandler.
func (h *AttendanceHandlerImpl) UpdateQRCode(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateQRCodeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.attendanceService.UpdateQRCode(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Update QR code error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "QR code updated", updated)
}

// DeleteQRCode implements AttendanceHandler.
func (h *AttendanceHandlerImpl) DeleteQRCode(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceService.DeleteQRCode(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "QR code deleted", nil)
}
