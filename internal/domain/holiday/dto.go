package holiday

import (
	"github.com/asistpro/asistencia-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Name        string   `json:"name"`
	Date        string   `json:"date"`
	Kind        string   `json:"kind"`
	Description *string  `json:"description"`
	Mandatory   *bool    `json:"mandatory"`
	Global      *bool    `json:"global"`
	CompanyIDs  []string `json:"company_ids"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Kind, Kinds) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "invalid holiday kind",
		})
	}

	global := r.Global == nil || *r.Global
	if !global && len(r.CompanyIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "company_ids",
			Message: "a non-global holiday requires at least one company",
		})
	}

	for _, id := range r.CompanyIDs {
		if !validator.IsValidUUID(id) {
			errs = append(errs, validator.ValidationError{
				Field:   "company_ids",
				Message: "company_ids must contain valid UUIDs",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateHolidayRequest struct {
	Name        string   `json:"name"`
	Date        string   `json:"date"`
	Kind        string   `json:"kind"`
	Description *string  `json:"description"`
	Mandatory   *bool    `json:"mandatory"`
	Global      *bool    `json:"global"`
	Active      *bool    `json:"active"`
	CompanyIDs  []string `json:"company_ids"`
}

func (r *UpdateHolidayRequest) Validate() error {
	req := CreateHolidayRequest{
		Name:        r.Name,
		Date:        r.Date,
		Kind:        r.Kind,
		Description: r.Description,
		Mandatory:   r.Mandatory,
		Global:      r.Global,
		CompanyIDs:  r.CompanyIDs,
	}
	return req.Validate()
}

type HolidayResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Date        string   `json:"date"`
	Kind        string   `json:"kind"`
	KindLabel   string   `json:"kind_label"`
	Description *string  `json:"description,omitempty"`
	Mandatory   bool     `json:"mandatory"`
	Global      bool     `json:"global"`
	Active      bool     `json:"active"`
	CompanyIDs  []string `json:"company_ids,omitempty"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func ToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date.Format("2006-01-02"),
		Kind:        string(h.Kind),
		KindLabel:   KindLabel(h.Kind),
		Description: h.Description,
		Mandatory:   h.Mandatory,
		Global:      h.Global,
		Active:      h.Active,
		CompanyIDs:  h.CompanyIDs,
		CreatedAt:   h.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   h.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
