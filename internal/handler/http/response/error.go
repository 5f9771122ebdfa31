package response

import (
	"errors"
	"net/http"

	"github.com/asistpro/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistpro/asistencia-backend-go/internal/domain/auth"
	"github.com/asistpro/asistencia-backend-go/internal/domain/company"
	"github.com/asistpro/asistencia-backend-go/internal/domain/department"
	"github.com/asistpro/asistencia-backend-go/internal/domain/employee"
	"github.com/asistpro/asistencia-backend-go/internal/domain/holiday"
	"github.com/asistpro/asistencia-backend-go/internal/domain/position"
	"github.com/asistpro/asistencia-backend-go/internal/domain/user"
	"github.com/asistpro/asistencia-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrWrongTokenType):
		Unauthorized(w, "Wrong token type")

	// User domain errors
	case errors.Is(err, user.ErrAccountLocked):
		Forbidden(w, "Account is locked; contact an administrator")
	case errors.Is(err, user.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already registered")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrRUCExists):
		Conflict(w, "RUC already registered")
	case errors.Is(err, company.ErrCompanyInactive):
		Conflict(w, "Company is inactive")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrCodeExists):
		Conflict(w, "Department code already exists in this company")
	case errors.Is(err, department.ErrParentNotFound):
		NotFound(w, "Parent department not found")
	case errors.Is(err, department.ErrParentWrongCompany):
		BadRequest(w, "Parent department belongs to a different company", nil)
	case errors.Is(err, department.ErrHierarchyCycle):
		Conflict(w, "Department hierarchy would contain a cycle")

	// Position domain errors
	case errors.Is(err, position.ErrPositionNotFound):
		NotFound(w, "Position not found")
	case errors.Is(err, position.ErrCodeExists):
		Conflict(w, "Position code already exists in this department")
	case errors.Is(err, position.ErrSuperiorNotFound):
		NotFound(w, "Superior position not found")
	case errors.Is(err, position.ErrSuperiorWrongCompany):
		BadRequest(w, "Superior position belongs to a different company", nil)
	case errors.Is(err, position.ErrHierarchyCycle):
		Conflict(w, "Position hierarchy would contain a cycle")
	case errors.Is(err, position.ErrDepartmentMismatch):
		BadRequest(w, "Department does not belong to the given company", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNoEmployeeForAccount):
		NotFound(w, "No employee is linked to this account")
	case errors.Is(err, employee.ErrDNIExists):
		Conflict(w, "DNI already registered")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists in this company")
	case errors.Is(err, employee.ErrDepartmentMismatch):
		BadRequest(w, "Department does not belong to the employee's company", nil)
	case errors.Is(err, employee.ErrPositionMismatch):
		BadRequest(w, "Position does not belong to the employee's department", nil)
	case errors.Is(err, employee.ErrTerminationBeforeHire):
		BadRequest(w, "Termination date must be after hire date", nil)
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is inactive")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday with this date and name already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidQRCode):
		BadRequest(w, "Invalid or inactive QR code", nil)
	case errors.Is(err, attendance.ErrWrongCompany):
		Forbidden(w, "Not authorized to mark attendance at this location")
	case errors.Is(err, attendance.ErrMarkedTooRecently):
		TooManyRequests(w, "Marked too recently; wait at least 5 minutes")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrQRCodeNotFound):
		NotFound(w, "QR code not found")
	case errors.Is(err, attendance.ErrQRCodeExists):
		Conflict(w, "QR code string already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
