package auth

import (
	"github.com/asistpro/asistencia-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	// Login accepts either the account username or its email.
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Login) {
		errs = append(errs, validator.ValidationError{
			Field:   "login",
			Message: "login is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshTokenRequest) Validate() error {
	if validator.IsEmpty(r.RefreshToken) {
		return validator.ValidationErrors{{
			Field:   "refresh_token",
			Message: "refresh_token is required",
		}}
	}
	return nil
}

type TokenResponse struct {
	AccessToken           string   `json:"access"`
	AccessTokenExpiresAt  int64    `json:"access_expires_at"`
	RefreshToken          string   `json:"refresh"`
	RefreshTokenExpiresAt int64    `json:"refresh_expires_at"`
	User                  UserInfo `json:"user"`
}

type UserInfo struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	FullName   string  `json:"full_name"`
	IsAdmin    bool    `json:"is_admin"`
	EmployeeID *string `json:"employee_id,omitempty"`
	CompanyID  *string `json:"company_id,omitempty"`
	Company    *string `json:"company,omitempty"`
}
