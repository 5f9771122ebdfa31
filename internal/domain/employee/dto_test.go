package employee

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asistpro/asistencia-backend-go/internal/pkg/validator"
)

func validRegisterRequest() RegisterEmployeeRequest {
	return RegisterEmployeeRequest{
		CompanyID:       "123e4567-e89b-12d3-a456-426614174000",
		DepartmentID:    "123e4567-e89b-12d3-a456-426614174001",
		PositionID:      "123e4567-e89b-12d3-a456-426614174002",
		FirstNames:      "Maria Elena",
		LastNames:       "Torres Rojas",
		DNI:             "45678912",
		BirthDate:       "1990-03-15",
		EmployeeCode:    "EMP-001",
		HireDate:        "2024-01-15",
		Salary:          decimal.NewFromInt(2500),
		ShiftType:       "shift_1",
		RestDay:         "sunday",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
}

func TestRegisterEmployeeRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := validRegisterRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("bad DNI", func(t *testing.T) {
		for _, dni := range []string{"1234567", "123456789", "4567891a", ""} {
			req := validRegisterRequest()
			req.DNI = dni

			err := req.Validate()
			require.Error(t, err, "DNI %q should be rejected", dni)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), "dni")
		}
	})

	t.Run("password mismatch", func(t *testing.T) {
		req := validRegisterRequest()
		req.ConfirmPassword = "different"

		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "confirm_password")
	})

	t.Run("short password", func(t *testing.T) {
		req := validRegisterRequest()
		req.Password = "short"
		req.ConfirmPassword = "short"
		assert.Error(t, req.Validate())
	})

	t.Run("future hire date", func(t *testing.T) {
		req := validRegisterRequest()
		req.HireDate = "2099-01-01"

		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "hire_date")
	})

	t.Run("negative salary", func(t *testing.T) {
		req := validRegisterRequest()
		req.Salary = decimal.NewFromInt(-100)
		assert.Error(t, req.Validate())
	})

	t.Run("invalid shift and rest day", func(t *testing.T) {
		req := validRegisterRequest()
		req.ShiftType = "night"
		req.RestDay = "someday"

		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		m := errs.ToMap()
		assert.Contains(t, m, "shift_type")
		assert.Contains(t, m, "rest_day")
	})
}
