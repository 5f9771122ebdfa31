package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asistpro/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistpro/asistencia-backend-go/internal/domain/auth"
	"github.com/asistpro/asistencia-backend-go/internal/domain/employee"
	"github.com/asistpro/asistencia-backend-go/internal/domain/user"
)

func TestHandleErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"account locked", user.ErrAccountLocked, http.StatusForbidden},
		{"employee not found", employee.ErrEmployeeNotFound, http.StatusNotFound},
		{"no employee for account", employee.ErrNoEmployeeForAccount, http.StatusNotFound},
		{"marked too recently", attendance.ErrMarkedTooRecently, http.StatusTooManyRequests},
		{"qr code exists", attendance.ErrQRCodeExists, http.StatusConflict},
		{"unmapped error", errors.New("pipe broke"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
