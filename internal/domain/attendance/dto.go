package attendance

import (
	"time"

	"github.com/asistpro/asistencia-backend-go/internal/pkg/validator"
)

// ========================================
// MARKING
// ========================================

type MarkRequest struct {
	QRCode     string   `json:"qr_code"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	DeviceInfo *string  `json:"device_info"`
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.QRCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "qr_code",
			Message: "qr_code is required",
		})
	}

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkResponse struct {
	Message string         `json:"message"`
	Record  RecordResponse `json:"record"`
}

// ========================================
// RECORDS
// ========================================

type RecordResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName *string  `json:"employee_name,omitempty"`
	EmployeeDNI  *string  `json:"employee_dni,omitempty"`
	CompanyName  *string  `json:"company_name,omitempty"`
	RecordedAt   string   `json:"recorded_at"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Kind         string   `json:"kind"`
	KindLabel    string   `json:"kind_label"`
	Method       string   `json:"method"`
	MethodLabel  string   `json:"method_label"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	DeviceInfo   *string  `json:"device_info,omitempty"`
	RegisteredBy *string  `json:"registered_by,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
}

func ToRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		EmployeeDNI:  r.EmployeeDNI,
		CompanyName:  r.CompanyName,
		RecordedAt:   r.RecordedAt.Format("2006-01-02 15:04:05"),
		Date:         r.RecordedAt.Format("2006-01-02"),
		Time:         r.RecordedAt.Format("15:04:05"),
		Kind:         string(r.Kind),
		KindLabel:    KindLabel(r.Kind),
		Method:       string(r.Method),
		MethodLabel:  MethodLabel(r.Method),
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		DeviceInfo:   r.DeviceInfo,
		RegisteredBy: r.RegisteredBy,
		Notes:        r.Notes,
	}
}

// ManualRecordRequest is the administrative create: security staff or a web
// admin recording a mark on an employee's behalf.
type ManualRecordRequest struct {
	EmployeeID string   `json:"employee_id"`
	Kind       string   `json:"kind"`
	Method     string   `json:"method"`
	RecordedAt *string  `json:"recorded_at"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Notes      *string  `json:"notes"`
}

func (r *ManualRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if !validator.IsInSlice(r.Kind, Kinds) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be entry or exit",
		})
	}

	if r.Method != string(MethodManualSecurity) && r.Method != string(MethodWebAdmin) {
		errs = append(errs, validator.ValidationError{
			Field:   "method",
			Message: "method must be manual_security or web_admin",
		})
	}

	if r.RecordedAt != nil {
		if _, err := time.Parse("2006-01-02 15:04:05", *r.RecordedAt); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "recorded_at",
				Message: "recorded_at must be in YYYY-MM-DD HH:MM:SS format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateRecordRequest is the administrative edit of an existing record.
type UpdateRecordRequest struct {
	Kind       string  `json:"kind"`
	Method     string  `json:"method"`
	RecordedAt string  `json:"recorded_at"`
	Notes      *string `json:"notes"`
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Kind, Kinds) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be entry or exit",
		})
	}

	if !validator.IsInSlice(r.Method, Methods) {
		errs = append(errs, validator.ValidationError{
			Field:   "method",
			Message: "invalid method",
		})
	}

	if _, err := time.Parse("2006-01-02 15:04:05", r.RecordedAt); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "recorded_at",
			Message: "recorded_at must be in YYYY-MM-DD HH:MM:SS format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// DAILY SUMMARY
// ========================================

type DailySummaryResponse struct {
	Date         string           `json:"date"`
	Employee     string           `json:"employee"`
	Records      []RecordResponse `json:"records"`
	LastRecord   *LastRecord      `json:"last_record"`
	NextAction   string           `json:"next_action"`
	WorkedHours  float64          `json:"worked_hours_approx"`
	TotalRecords int              `json:"total_records"`
}

type LastRecord struct {
	Kind string `json:"kind"`
	Time string `json:"time"`
}

// ========================================
// STATISTICS
// ========================================

type StatisticsRequest struct {
	EmployeeID string `json:"employee_id"`
	CompanyID  string `json:"company_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *StatisticsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID != "" && !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if r.CompanyID != "" && !validator.IsValidUUID(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id must be a valid UUID",
		})
	}

	var start, end time.Time
	var hasStart, hasEnd bool

	if r.StartDate != "" {
		var ok bool
		if start, ok = validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		} else {
			hasStart = true
		}
	}

	if r.EndDate != "" {
		var ok bool
		if end, ok = validator.IsValidDate(r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		} else {
			hasEnd = true
		}
	}

	if hasStart && hasEnd && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date cannot be after end_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StatisticsResponse struct {
	Summary      StatisticsSummary   `json:"summary"`
	PerDay       []DayBreakdown      `json:"records_per_day"`
	PerMethod    []MethodBreakdown   `json:"records_per_method"`
	TopEmployees []EmployeeBreakdown `json:"most_active_employees,omitempty"`
}

type StatisticsSummary struct {
	Total   int64            `json:"total_records"`
	Entries int64            `json:"total_entries"`
	Exits   int64            `json:"total_exits"`
	Period  StatisticsPeriod `json:"period"`
}

type StatisticsPeriod struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

type DayBreakdown struct {
	Date    string `json:"date"`
	Total   int64  `json:"total"`
	Entries int64  `json:"entries"`
	Exits   int64  `json:"exits"`
}

type MethodBreakdown struct {
	Method      string `json:"method"`
	MethodLabel string `json:"method_label"`
	Total       int64  `json:"total"`
}

type EmployeeBreakdown struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Total      int64  `json:"total_records"`
}

// ========================================
// QR CODES
// ========================================

type CreateQRCodeRequest struct {
	CompanyID string  `json:"company_id"`
	Label     string  `json:"label"`
	Code      *string `json:"code"`
	Location  string  `json:"location"`
}

func (r *CreateQRCodeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id must be a valid UUID",
		})
	}

	if validator.IsEmpty(r.Label) {
		errs = append(errs, validator.ValidationError{
			Field:   "label",
			Message: "label is required",
		})
	}

	if validator.IsEmpty(r.Location) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location is required",
		})
	}

	if r.Code != nil && validator.IsEmpty(*r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code cannot be blank; omit it to generate one",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateQRCodeRequest struct {
	Label    string `json:"label"`
	Location string `json:"location"`
	Active   *bool  `json:"active"`
}

func (r *UpdateQRCodeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Label) {
		errs = append(errs, validator.ValidationError{
			Field:   "label",
			Message: "label is required",
		})
	}

	if validator.IsEmpty(r.Location) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type QRCodeResponse struct {
	ID          string  `json:"id"`
	CompanyID   string  `json:"company_id"`
	CompanyName *string `json:"company_name,omitempty"`
	Label       string  `json:"label"`
	Code        string  `json:"code"`
	Location    string  `json:"location"`
	Active      bool    `json:"active"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func ToQRCodeResponse(qr QRCode) QRCodeResponse {
	return QRCodeResponse{
		ID:          qr.ID,
		CompanyID:   qr.CompanyID,
		CompanyName: qr.CompanyName,
		Label:       qr.Label,
		Code:        qr.Code,
		Location:    qr.Location,
		Active:      qr.Active,
		CreatedAt:   qr.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   qr.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
