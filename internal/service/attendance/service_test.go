package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/asistpro/asistencia-backend-go/internal/domain/attendance"
)

type stubQRCodeRepository struct {
	attendance.QRCodeRepository
	err error
}

func (s stubQRCodeRepository) GetByCode(ctx context.Context, code string) (attendance.QRCode, error) {
	return attendance.QRCode{}, s.err
}

func mark(kind attendance.Kind, hour, minute int) attendance.Record {
	return attendance.Record{
		Kind:       kind,
		RecordedAt: time.Date(2025, 7, 28, hour, minute, 0, 0, time.Local),
	}
}

func TestWorkedHours(t *testing.T) {
	t.Run("full day with lunch break", func(t *testing.T) {
		records := []attendance.Record{
			mark(attendance.KindEntry, 9, 0),
			mark(attendance.KindExit, 12, 0),
			mark(attendance.KindEntry, 13, 0),
			mark(attendance.KindExit, 17, 0),
		}
		assert.InDelta(t, 7.0, workedHours(records), 0.001)
	})

	t.Run("no records", func(t *testing.T) {
		assert.Zero(t, workedHours(nil))
	})

	t.Run("open day ignores unpaired entry", func(t *testing.T) {
		records := []attendance.Record{
			mark(attendance.KindEntry, 9, 0),
			mark(attendance.KindExit, 13, 30),
			mark(attendance.KindEntry, 14, 30),
		}
		assert.InDelta(t, 4.5, workedHours(records), 0.001)
	})

	t.Run("exit before entry counts nothing", func(t *testing.T) {
		// A manually corrected day can leave an exit that precedes its
		// paired entry; negative spans must not reduce the total.
		records := []attendance.Record{
			mark(attendance.KindEntry, 14, 0),
			mark(attendance.KindExit, 9, 0),
		}
		assert.Zero(t, workedHours(records))
	})

	t.Run("exit only", func(t *testing.T) {
		records := []attendance.Record{
			mark(attendance.KindExit, 18, 0),
		}
		assert.Zero(t, workedHours(records))
	})
}

func TestMarkQRCodeLookup(t *testing.T) {
	t.Run("unknown code is rejected as invalid", func(t *testing.T) {
		svc := &AttendanceServiceImpl{
			QRCodeRepository: stubQRCodeRepository{err: attendance.ErrQRCodeNotFound},
		}

		_, err := svc.Mark(context.Background(), attendance.MarkRequest{QRCode: "QR-GONE"})
		assert.ErrorIs(t, err, attendance.ErrInvalidQRCode)
	})

	t.Run("repository failure is not reported as an invalid code", func(t *testing.T) {
		dbErr := errors.New("connection reset by peer")
		svc := &AttendanceServiceImpl{
			QRCodeRepository: stubQRCodeRepository{err: dbErr},
		}

		_, err := svc.Mark(context.Background(), attendance.MarkRequest{QRCode: "QR-MAIN"})
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, attendance.ErrInvalidQRCode)
	})
}
