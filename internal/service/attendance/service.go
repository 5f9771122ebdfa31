package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/asistpro/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistpro/asistencia-backend-go/internal/domain/employee"
	"github.com/asistpro/asistencia-backend-go/internal/domain/user"
	"github.com/asistpro/asistencia-backend-go/internal/pkg/database"
	"github.com/asistpro/asistencia-backend-go/internal/repository/postgresql"
)

// markCooldown is the minimum separation between two marks of the same
// employee, regardless of QR code or method.
const markCooldown = 5 * time.Minute

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	attendance.QRCodeRepository
	employee.EmployeeRepository
}

func NewAttendanceService(db *database.DB, attendanceRepository attendance.AttendanceRepository, qrCodeRepository attendance.QRCodeRepository, employeeRepository employee.EmployeeRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepository,
		QRCodeRepository:     qrCodeRepository,
		EmployeeRepository:   employeeRepository,
	}
}

// callerUserID extracts the authenticated user id from the request token.
func callerUserID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", user.ErrUserNotFound
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", user.ErrUserNotFound
	}
	return userID, nil
}

// callerEmployee resolves the employee linked to the authenticated account.
func (s *AttendanceServiceImpl) callerEmployee(ctx context.Context) (employee.Employee, error) {
	userID, err := callerUserID(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	return s.EmployeeRepository.GetByUserID(ctx, userID)
}

// Mark implements attendance.AttendanceService.
//
// The checks run in a fixed order so the first failure wins: QR validity,
// company match, employee active, rate limit. Kind is never supplied by the
// caller; it is inferred from the last record of the day. Rate-limit check
// and insert run inside one transaction under a per-employee advisory lock,
// so two concurrent scans cannot both pass the check.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkRequest) (attendance.MarkResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MarkResponse{}, err
	}

	qrData, err := s.QRCodeRepository.GetByCode(ctx, req.QRCode)
	if err != nil {
		if errors.Is(err, attendance.ErrQRCodeNotFound) {
			return attendance.MarkResponse{}, attendance.ErrInvalidQRCode
		}
		return attendance.MarkResponse{}, err
	}
	if !qrData.Active {
		return attendance.MarkResponse{}, attendance.ErrInvalidQRCode
	}

	employeeData, err := s.callerEmployee(ctx)
	if err != nil {
		return attendance.MarkResponse{}, err
	}

	if employeeData.CompanyID != qrData.CompanyID {
		return attendance.MarkResponse{}, attendance.ErrWrongCompany
	}
	if !employeeData.Active {
		return attendance.MarkResponse{}, employee.ErrEmployeeInactive
	}

	var created attendance.Record

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		// Serialize concurrent marks of the same employee for the duration
		// of this transaction.
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, employeeData.ID); err != nil {
			return fmt.Errorf("failed to acquire marking lock: %w", err)
		}

		now := time.Now()

		recent, err := s.AttendanceRepository.HasRecentMark(txCtx, employeeData.ID, now.Add(-markCooldown))
		if err != nil {
			return err
		}
		if recent {
			return attendance.ErrMarkedTooRecently
		}

		lastOfDay, err := s.AttendanceRepository.GetLastForDate(txCtx, employeeData.ID, now)
		if err != nil {
			return err
		}

		created, err = s.AttendanceRepository.Create(txCtx, attendance.Record{
			EmployeeID: employeeData.ID,
			RecordedAt: now,
			Kind:       attendance.NextKind(lastOfDay),
			Method:     attendance.MethodQRMobile,
			Latitude:   req.Latitude,
			Longitude:  req.Longitude,
			DeviceInfo: req.DeviceInfo,
		})
		return err
	})
	if err != nil {
		return attendance.MarkResponse{}, err
	}

	fullName := employeeData.FullName()
	created.EmployeeName = &fullName

	return attendance.MarkResponse{
		Message: fmt.Sprintf("%s recorded at %s", attendance.KindLabel(created.Kind), created.RecordedAt.Format("15:04:05")),
		Record:  attendance.ToRecordResponse(created),
	}, nil
}

// MyRecords implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MyRecords(ctx context.Context, filter attendance.MyRecordsFilter) ([]attendance.RecordResponse, error) {
	employeeData, err := s.callerEmployee(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListByEmployee(ctx, employeeData.ID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.ToRecordResponse(r))
	}

	return responses, nil
}

// workedHours approximates the hours worked from a day's records by pairing
// the i-th entry with the i-th exit, in timestamp order. An unmatched entry
// contributes nothing.
func workedHours(records []attendance.Record) float64 {
	var entries, exits []time.Time
	for _, r := range records {
		switch r.Kind {
		case attendance.KindEntry:
			entries = append(entries, r.RecordedAt)
		case attendance.KindExit:
			exits = append(exits, r.RecordedAt)
		}
	}

	pairs := len(entries)
	if len(exits) < pairs {
		pairs = len(exits)
	}

	var total time.Duration
	for i := 0; i < pairs; i++ {
		if d := exits[i].Sub(entries[i]); d > 0 {
			total += d
		}
	}

	return total.Hours()
}

// DailySummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DailySummary(ctx context.Context) (attendance.DailySummaryResponse, error) {
	employeeData, err := s.callerEmployee(ctx)
	if err != nil {
		return attendance.DailySummaryResponse{}, err
	}

	now := time.Now()
	records, err := s.AttendanceRepository.ListForDate(ctx, employeeData.ID, now)
	if err != nil {
		return attendance.DailySummaryResponse{}, err
	}

	summary := attendance.DailySummaryResponse{
		Date:         now.Format("2006-01-02"),
		Employee:     employeeData.FullName(),
		Records:      make([]attendance.RecordResponse, 0, len(records)),
		WorkedHours:  workedHours(records),
		TotalRecords: len(records),
	}

	for _, r := range records {
		summary.Records = append(summary.Records, attendance.ToRecordResponse(r))
	}

	var lastOfDay *attendance.Record
	if len(records) > 0 {
		lastOfDay = &records[len(records)-1]
		summary.LastRecord = &attendance.LastRecord{
			Kind: string(lastOfDay.Kind),
			Time: lastOfDay.RecordedAt.Format("15:04:05"),
		}
	}
	summary.NextAction = string(attendance.NextKind(lastOfDay))

	return summary, nil
}

// CreateManual implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CreateManual(ctx context.Context, req attendance.ManualRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	employeeData, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if !employeeData.Active {
		return attendance.RecordResponse{}, employee.ErrEmployeeInactive
	}

	recordedAt := time.Now()
	if req.RecordedAt != nil {
		recordedAt, _ = time.ParseInLocation("2006-01-02 15:04:05", *req.RecordedAt, time.Local)
	}

	var registeredBy *string
	if userID, err := callerUserID(ctx); err == nil {
		registeredBy = &userID
	}

	created, err := s.AttendanceRepository.Create(ctx, attendance.Record{
		EmployeeID:   req.EmployeeID,
		RecordedAt:   recordedAt,
		Kind:         attendance.Kind(req.Kind),
		Method:       attendance.Method(req.Method),
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RegisteredBy: registeredBy,
		Notes:        req.Notes,
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return s.GetByID(ctx, created.ID)
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.RecordResponse, int64, error) {
	records, total, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.ToRecordResponse(r))
	}

	return responses, total, nil
}

// GetByID implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetByID(ctx context.Context, id string) (attendance.RecordResponse, error) {
	record, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return attendance.ToRecordResponse(record), nil
}

// Update implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Update(ctx context.Context, id string, req attendance.UpdateRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	record, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	recordedAt, _ := time.ParseInLocation("2006-01-02 15:04:05", req.RecordedAt, time.Local)

	record.Kind = attendance.Kind(req.Kind)
	record.Method = attendance.Method(req.Method)
	record.RecordedAt = recordedAt
	record.Notes = req.Notes

	if err := s.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.RecordResponse{}, err
	}

	return s.GetByID(ctx, id)
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.AttendanceRepository.Delete(ctx, id)
}
