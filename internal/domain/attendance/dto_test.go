package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asistpro/asistencia-backend-go/internal/pkg/validator"
)

func floatPtr(f float64) *float64 { return &f }

func TestMarkRequestValidate(t *testing.T) {
	t.Run("valid with coordinates", func(t *testing.T) {
		req := MarkRequest{QRCode: "gate-a", Latitude: floatPtr(-12.05), Longitude: floatPtr(-77.04)}
		assert.NoError(t, req.Validate())
	})

	t.Run("valid without coordinates", func(t *testing.T) {
		req := MarkRequest{QRCode: "gate-a"}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing qr_code", func(t *testing.T) {
		req := MarkRequest{}
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "qr_code")
	})

	t.Run("coordinates out of range", func(t *testing.T) {
		req := MarkRequest{QRCode: "gate-a", Latitude: floatPtr(91), Longitude: floatPtr(-181)}
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		m := errs.ToMap()
		assert.Contains(t, m, "latitude")
		assert.Contains(t, m, "longitude")
	})
}

func TestManualRecordRequestValidate(t *testing.T) {
	recordedAt := "2025-07-28 08:30:00"
	base := ManualRecordRequest{
		EmployeeID: "123e4567-e89b-12d3-a456-426614174000",
		Kind:       "entry",
		Method:     "manual_security",
		RecordedAt: &recordedAt,
	}

	t.Run("valid", func(t *testing.T) {
		req := base
		assert.NoError(t, req.Validate())
	})

	t.Run("qr_mobile not allowed for manual records", func(t *testing.T) {
		req := base
		req.Method = "qr_mobile"
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "method")
	})

	t.Run("bad kind", func(t *testing.T) {
		req := base
		req.Kind = "lunch"
		assert.Error(t, req.Validate())
	})

	t.Run("bad timestamp format", func(t *testing.T) {
		bad := "28/07/2025 08:30"
		req := base
		req.RecordedAt = &bad
		assert.Error(t, req.Validate())
	})
}

func TestStatisticsRequestValidate(t *testing.T) {
	t.Run("empty request is valid", func(t *testing.T) {
		req := StatisticsRequest{}
		assert.NoError(t, req.Validate())
	})

	t.Run("start after end", func(t *testing.T) {
		req := StatisticsRequest{StartDate: "2025-08-01", EndDate: "2025-07-01"}
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "start_date")
	})

	t.Run("bad employee id", func(t *testing.T) {
		req := StatisticsRequest{EmployeeID: "not-a-uuid"}
		assert.Error(t, req.Validate())
	})
}

func TestCreateQRCodeRequestValidate(t *testing.T) {
	t.Run("blank explicit code rejected", func(t *testing.T) {
		blank := "  "
		req := CreateQRCodeRequest{
			CompanyID: "123e4567-e89b-12d3-a456-426614174000",
			Label:     "Main gate",
			Location:  "Av. Arequipa 123",
			Code:      &blank,
		}
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "code")
	})

	t.Run("omitted code is fine", func(t *testing.T) {
		req := CreateQRCodeRequest{
			CompanyID: "123e4567-e89b-12d3-a456-426614174000",
			Label:     "Main gate",
			Location:  "Av. Arequipa 123",
		}
		assert.NoError(t, req.Validate())
	})
}

func TestToRecordResponse(t *testing.T) {
	recordedAt := time.Date(2025, 7, 28, 8, 30, 15, 0, time.Local)
	rec := Record{
		ID:         "rec-1",
		EmployeeID: "emp-1",
		RecordedAt: recordedAt,
		Kind:       KindEntry,
		Method:     MethodQRMobile,
	}

	resp := ToRecordResponse(rec)
	assert.Equal(t, "2025-07-28 08:30:15", resp.RecordedAt)
	assert.Equal(t, "2025-07-28", resp.Date)
	assert.Equal(t, "08:30:15", resp.Time)
	assert.Equal(t, "entry", resp.Kind)
	assert.Equal(t, "Entry", resp.KindLabel)
	assert.Equal(t, "Mobile QR scan", resp.MethodLabel)
}
