package position

import (
	"github.com/shopspring/decimal"

	"github.com/asistpro/asistencia-backend-go/internal/pkg/validator"
)

type CreatePositionRequest struct {
	CompanyID    string           `json:"company_id"`
	DepartmentID string           `json:"department_id"`
	ReportsToID  *string          `json:"reports_to_id"`
	Name         string           `json:"name"`
	Code         string           `json:"code"`
	Description  *string          `json:"description"`
	SalaryMin    *decimal.Decimal `json:"salary_min"`
	SalaryMax    *decimal.Decimal `json:"salary_max"`
}

func (r *CreatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id must be a valid UUID",
		})
	}

	if !validator.IsValidUUID(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must be a valid UUID",
		})
	}

	if r.ReportsToID != nil && !validator.IsValidUUID(*r.ReportsToID) {
		errs = append(errs, validator.ValidationError{
			Field:   "reports_to_id",
			Message: "reports_to_id must be a valid UUID",
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

	if r.SalaryMin != nil && r.SalaryMin.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_min",
			Message: "salary_min cannot be negative",
		})
	}

	if r.SalaryMin != nil && r.SalaryMax != nil && r.SalaryMax.LessThan(*r.SalaryMin) {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_max",
			Message: "salary_max must be greater than or equal to salary_min",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePositionRequest struct {
	ReportsToID *string          `json:"reports_to_id"`
	Name        string           `json:"name"`
	Code        string           `json:"code"`
	Description *string          `json:"description"`
	SalaryMin   *decimal.Decimal `json:"salary_min"`
	SalaryMax   *decimal.Decimal `json:"salary_max"`
	Active      *bool            `json:"active"`
}

func (r *UpdatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ReportsToID != nil && !validator.IsValidUUID(*r.ReportsToID) {
		errs = append(errs, validator.ValidationError{
			Field:   "reports_to_id",
			Message: "reports_to_id must be a valid UUID",
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

	if r.SalaryMin != nil && r.SalaryMax != nil && r.SalaryMax.LessThan(*r.SalaryMin) {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_max",
			Message: "salary_max must be greater than or equal to salary_min",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PositionResponse struct {
	ID             string           `json:"id"`
	CompanyID      string           `json:"company_id"`
	DepartmentID   string           `json:"department_id"`
	DepartmentName *string          `json:"department_name,omitempty"`
	ReportsToID    *string          `json:"reports_to_id,omitempty"`
	Name           string           `json:"name"`
	Code           string           `json:"code"`
	Description    *string          `json:"description,omitempty"`
	SalaryMin      *decimal.Decimal `json:"salary_min,omitempty"`
	SalaryMax      *decimal.Decimal `json:"salary_max,omitempty"`
	SalaryRange    string           `json:"salary_range"`
	Active         bool             `json:"active"`
	Level          int              `json:"level"`
	ActiveHolders  int              `json:"active_holders"`
	CreatedAt      string           `json:"created_at"`
	UpdatedAt      string           `json:"updated_at"`
}

func ToResponse(p Position) PositionResponse {
	return PositionResponse{
		ID:             p.ID,
		CompanyID:      p.CompanyID,
		DepartmentID:   p.DepartmentID,
		DepartmentName: p.DepartmentName,
		ReportsToID:    p.ReportsToID,
		Name:           p.Name,
		Code:           p.Code,
		Description:    p.Description,
		SalaryMin:      p.SalaryMin,
		SalaryMax:      p.SalaryMax,
		SalaryRange:    SalaryRangeLabel(p.SalaryMin, p.SalaryMax),
		Active:         p.Active,
		Level:          p.Level,
		ActiveHolders:  p.ActiveHolders,
		CreatedAt:      p.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:      p.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// SalaryRangeLabel renders a display string for a salary range.
func SalaryRangeLabel(min, max *decimal.Decimal) string {
	switch {
	case min != nil && max != nil:
		return "$" + min.StringFixed(2) + " - $" + max.StringFixed(2)
	case min != nil:
		return "From $" + min.StringFixed(2)
	case max != nil:
		return "Up to $" + max.StringFixed(2)
	default:
		return "Not defined"
	}
}
