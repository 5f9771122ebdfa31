package department

import (
	"github.com/asistpro/asistencia-backend-go/internal/pkg/validator"
)

type CreateDepartmentRequest struct {
	CompanyID   string  `json:"company_id"`
	ParentID    *string `json:"parent_id"`
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Description *string `json:"description"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id must be a valid UUID",
		})
	}

	if r.ParentID != nil && !validator.IsValidUUID(*r.ParentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "parent_id",
			Message: "parent_id must be a valid UUID",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidCode(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be 1-20 chars (letters, digits, '.', '_', '-')",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDepartmentRequest struct {
	ParentID    *string `json:"parent_id"`
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ParentID != nil && !validator.IsValidUUID(*r.ParentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "parent_id",
			Message: "parent_id must be a valid UUID",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidCode(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be 1-20 chars (letters, digits, '.', '_', '-')",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepartmentResponse struct {
	ID              string  `json:"id"`
	CompanyID       string  `json:"company_id"`
	CompanyName     *string `json:"company_name,omitempty"`
	ParentID        *string `json:"parent_id,omitempty"`
	Name            string  `json:"name"`
	Code            string  `json:"code"`
	Description     *string `json:"description,omitempty"`
	Active          bool    `json:"active"`
	Level           int     `json:"level"`
	ActiveEmployees int     `json:"active_employees"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

func ToResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:              d.ID,
		CompanyID:       d.CompanyID,
		CompanyName:     d.CompanyName,
		ParentID:        d.ParentID,
		Name:            d.Name,
		Code:            d.Code,
		Description:     d.Description,
		Active:          d.Active,
		Level:           d.Level,
		ActiveEmployees: d.ActiveEmployees,
		CreatedAt:       d.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:       d.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
