package company

import (
	"github.com/asistpro/asistencia-backend-go/internal/pkg/validator"
)

type CreateCompanyRequest struct {
	LegalName string  `json:"legal_name"`
	RUC       string  `json:"ruc"`
	Address   string  `json:"address"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LegalName) {
		errs = append(errs, validator.ValidationError{
			Field:   "legal_name",
			Message: "legal_name is required",
		})
	}

	if !validator.IsValidRUC(r.RUC) {
		errs = append(errs, validator.ValidationError{
			Field:   "ruc",
			Message: "RUC must be exactly 11 numeric digits",
		})
	}

	if validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address is required",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "invalid phone number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCompanyRequest struct {
	LegalName string  `json:"legal_name"`
	RUC       string  `json:"ruc"`
	Address   string  `json:"address"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Active    *bool   `json:"active"`
}

func (r *UpdateCompanyRequest) Validate() error {
	req := CreateCompanyRequest{
		LegalName: r.LegalName,
		RUC:       r.RUC,
		Address:   r.Address,
		Phone:     r.Phone,
		Email:     r.Email,
	}
	return req.Validate()
}

type CompanyResponse struct {
	ID              string  `json:"id"`
	LegalName       string  `json:"legal_name"`
	RUC             string  `json:"ruc"`
	Address         string  `json:"address"`
	Phone           *string `json:"phone,omitempty"`
	Email           *string `json:"email,omitempty"`
	Active          bool    `json:"active"`
	ActiveEmployees int     `json:"active_employees"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

func ToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:              c.ID,
		LegalName:       c.LegalName,
		RUC:             c.RUC,
		Address:         c.Address,
		Phone:           c.Phone,
		Email:           c.Email,
		Active:          c.Active,
		ActiveEmployees: c.ActiveEmployees,
		CreatedAt:       c.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:       c.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
