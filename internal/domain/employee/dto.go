package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/asistpro/asistencia-backend-go/internal/pkg/validator"
)

type RegisterEmployeeRequest struct {
	CompanyID     string          `json:"company_id"`
	DepartmentID  string          `json:"department_id"`
	PositionID    string          `json:"position_id"`
	FirstNames    string          `json:"first_names"`
	LastNames     string          `json:"last_names"`
	DNI           string          `json:"dni"`
	BirthDate     string          `json:"birth_date"`
	Phone         *string         `json:"phone"`
	PersonalEmail *string         `json:"personal_email"`
	Address       *string         `json:"address"`
	EmployeeCode  string          `json:"employee_code"`
	HireDate      string          `json:"hire_date"`
	Salary        decimal.Decimal `json:"salary"`
	ShiftType     string          `json:"shift_type"`
	RestDay       string          `json:"rest_day"`

	// Linked account fields
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirm_password"`
	AccountEmail    *string `json:"email"`
	AccountActive   *bool   `json:"is_active"`
}

func (r *RegisterEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, id := range map[string]string{
		"company_id":    r.CompanyID,
		"department_id": r.DepartmentID,
		"position_id":   r.PositionID,
	} {
		if !validator.IsValidUUID(id) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be a valid UUID",
			})
		}
	}

	if validator.IsEmpty(r.FirstNames) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_names",
			Message: "first_names is required",
		})
	}

	if validator.IsEmpty(r.LastNames) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_names",
			Message: "last_names is required",
		})
	}

	if !validator.IsValidDNI(r.DNI) {
		errs = append(errs, validator.ValidationError{
			Field:   "dni",
			Message: "DNI must be exactly 8 numeric digits",
		})
	}

	if _, ok := validator.IsValidDate(r.BirthDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "birth_date",
			Message: "birth_date must be in YYYY-MM-DD format",
		})
	}

	if hireDate, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	} else if hireDate.After(time.Now()) {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date cannot be in the future",
		})
	}

	if !validator.IsValidCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must be 1-20 chars (letters, digits, '.', '_', '-')",
		})
	}

	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary cannot be negative",
		})
	}

	if !validator.IsInSlice(r.ShiftType, ShiftTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_type",
			Message: "invalid shift type",
		})
	}

	if !validator.IsInSlice(r.RestDay, RestDays) {
		errs = append(errs, validator.ValidationError{
			Field:   "rest_day",
			Message: "invalid rest day",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if r.Password != r.ConfirmPassword {
		errs = append(errs, validator.ValidationError{
			Field:   "confirm_password",
			Message: "passwords do not match",
		})
	}

	if r.PersonalEmail != nil && !validator.IsValidEmail(*r.PersonalEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "personal_email",
			Message: "invalid email format",
		})
	}

	if r.AccountEmail != nil && !validator.IsValidEmail(*r.AccountEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	DepartmentID      string          `json:"department_id"`
	PositionID        string          `json:"position_id"`
	FirstNames        string          `json:"first_names"`
	LastNames         string          `json:"last_names"`
	Phone             *string         `json:"phone"`
	PersonalEmail     *string         `json:"personal_email"`
	Address           *string         `json:"address"`
	Salary            decimal.Decimal `json:"salary"`
	ShiftType         string          `json:"shift_type"`
	RestDay           string          `json:"rest_day"`
	Active            *bool           `json:"active"`
	TerminationDate   *string         `json:"termination_date"`
	TerminationReason *string         `json:"termination_reason"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, id := range map[string]string{
		"department_id": r.DepartmentID,
		"position_id":   r.PositionID,
	} {
		if !validator.IsValidUUID(id) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be a valid UUID",
			})
		}
	}

	if validator.IsEmpty(r.FirstNames) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_names",
			Message: "first_names is required",
		})
	}

	if validator.IsEmpty(r.LastNames) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_names",
			Message: "last_names is required",
		})
	}

	if !validator.IsInSlice(r.ShiftType, ShiftTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_type",
			Message: "invalid shift type",
		})
	}

	if !validator.IsInSlice(r.RestDay, RestDays) {
		errs = append(errs, validator.ValidationError{
			Field:   "rest_day",
			Message: "invalid rest day",
		})
	}

	if r.TerminationDate != nil {
		if _, ok := validator.IsValidDate(*r.TerminationDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "termination_date",
				Message: "termination_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID             string          `json:"id"`
	CompanyID      string          `json:"company_id"`
	CompanyName    *string         `json:"company_name,omitempty"`
	DepartmentID   string          `json:"department_id"`
	DepartmentName *string         `json:"department_name,omitempty"`
	PositionID     string          `json:"position_id"`
	PositionName   *string         `json:"position_name,omitempty"`
	FullName       string          `json:"full_name"`
	FirstNames     string          `json:"first_names"`
	LastNames      string          `json:"last_names"`
	DNI            string          `json:"dni"`
	BirthDate      string          `json:"birth_date"`
	Phone          *string         `json:"phone,omitempty"`
	PersonalEmail  *string         `json:"personal_email,omitempty"`
	Address        *string         `json:"address,omitempty"`
	EmployeeCode   string          `json:"employee_code"`
	HireDate       string          `json:"hire_date"`
	Salary         decimal.Decimal `json:"salary"`
	ShiftType      string          `json:"shift_type"`
	ShiftLabel     string          `json:"shift_label"`
	RestDay        string          `json:"rest_day"`
	RestDayLabel   string          `json:"rest_day_label"`
	Active         bool            `json:"active"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		CompanyID:      e.CompanyID,
		CompanyName:    e.CompanyName,
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		PositionID:     e.PositionID,
		PositionName:   e.PositionName,
		FullName:       e.FullName(),
		FirstNames:     e.FirstNames,
		LastNames:      e.LastNames,
		DNI:            e.DNI,
		BirthDate:      e.BirthDate.Format("2006-01-02"),
		Phone:          e.Phone,
		PersonalEmail:  e.PersonalEmail,
		Address:        e.Address,
		EmployeeCode:   e.EmployeeCode,
		HireDate:       e.HireDate.Format("2006-01-02"),
		Salary:         e.Salary,
		ShiftType:      string(e.ShiftType),
		ShiftLabel:     ShiftTypeLabel(e.ShiftType),
		RestDay:        string(e.RestDay),
		RestDayLabel:   RestDayLabel(e.RestDay),
		Active:         e.Active,
		CreatedAt:      e.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:      e.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// RegisterEmployeeResponse bundles the employee and the linked account
// created by the registration flow.
type RegisterEmployeeResponse struct {
	Employee RegisteredEmployee `json:"employee"`
	User     RegisteredUser     `json:"user"`
}

type RegisteredEmployee struct {
	ID           string `json:"id"`
	DNI          string `json:"dni"`
	FullName     string `json:"full_name"`
	EmployeeCode string `json:"employee_code"`
	Company      string `json:"company"`
	Department   string `json:"department"`
	Position     string `json:"position"`
}

type RegisteredUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Active   bool   `json:"is_active"`
}
