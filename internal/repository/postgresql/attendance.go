package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/asistpro/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistpro/asistencia-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, employee_id, recorded_at, kind, method, latitude, longitude,
	device_info, registered_by, notes, created_at`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.RecordedAt, &rec.Kind, &rec.Method,
		&rec.Latitude, &rec.Longitude, &rec.DeviceInfo, &rec.RegisteredBy,
		&rec.Notes, &rec.CreatedAt,
	)
	return rec, err
}

// dayBounds returns the half-open interval covering the local calendar day
// that contains date.
func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.Add(24 * time.Hour)
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (employee_id, recorded_at, kind, method,
			latitude, longitude, device_info, registered_by, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.RecordedAt,
		record.Kind,
		record.Method,
		record.Latitude,
		record.Longitude,
		record.DeviceInfo,
		record.RegisteredBy,
		record.Notes,
	).Scan(&record.ID, &record.CreatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.recorded_at, a.kind, a.method, a.latitude,
		       a.longitude, a.device_info, a.registered_by, a.notes, a.created_at,
		       e.first_names || ' ' || e.last_names, e.dni, e.company_id, c.legal_name
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		JOIN companies c ON c.id = e.company_id
		WHERE a.id = $1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.EmployeeID, &rec.RecordedAt, &rec.Kind, &rec.Method,
		&rec.Latitude, &rec.Longitude, &rec.DeviceInfo, &rec.RegisteredBy,
		&rec.Notes, &rec.CreatedAt,
		&rec.EmployeeName, &rec.EmployeeDNI, &rec.CompanyID, &rec.CompanyName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, record attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET recorded_at = $2, kind = $3, method = $4, notes = $5
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		record.ID, record.RecordedAt, record.Kind, record.Method, record.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, r.db)
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	baseSelect := psql.Select().
		From("attendance_records a").
		Join("employees e ON e.id = a.employee_id").
		Join("companies c ON c.id = e.company_id")

	if filter.EmployeeID != "" {
		baseSelect = baseSelect.Where(sq.Eq{"a.employee_id": filter.EmployeeID})
	}
	if filter.CompanyID != "" {
		baseSelect = baseSelect.Where(sq.Eq{"e.company_id": filter.CompanyID})
	}
	if filter.Kind != "" {
		baseSelect = baseSelect.Where(sq.Eq{"a.kind": filter.Kind})
	}
	if filter.Method != "" {
		baseSelect = baseSelect.Where(sq.Eq{"a.method": filter.Method})
	}
	if filter.StartDate != nil {
		baseSelect = baseSelect.Where(sq.GtOrEq{"a.recorded_at": *filter.StartDate})
	}
	if filter.EndDate != nil {
		baseSelect = baseSelect.Where(sq.Lt{"a.recorded_at": filter.EndDate.Add(24 * time.Hour)})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		baseSelect = baseSelect.Where(sq.Or{
			sq.ILike{"e.first_names": pattern},
			sq.ILike{"e.last_names": pattern},
			sq.ILike{"e.dni": pattern},
		})
	}

	countQuery, countArgs, err := baseSelect.Columns("COUNT(a.id)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int64
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}
	if total == 0 {
		return []attendance.Record{}, 0, nil
	}

	mainBuilder := baseSelect.Columns(
		"a.id", "a.employee_id", "a.recorded_at", "a.kind", "a.method",
		"a.latitude", "a.longitude", "a.device_info", "a.registered_by",
		"a.notes", "a.created_at",
		"e.first_names || ' ' || e.last_names", "e.dni", "e.company_id", "c.legal_name",
	).OrderBy("a.recorded_at DESC")

	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		mainBuilder = mainBuilder.Limit(uint64(filter.Limit)).Offset(uint64((page - 1) * filter.Limit))
	}

	query, args, err := mainBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.RecordedAt, &rec.Kind, &rec.Method,
			&rec.Latitude, &rec.Longitude, &rec.DeviceInfo, &rec.RegisteredBy,
			&rec.Notes, &rec.CreatedAt,
			&rec.EmployeeName, &rec.EmployeeDNI, &rec.CompanyID, &rec.CompanyName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return records, total, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, filter attendance.MyRecordsFilter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	builder := psql.Select(
		"id", "employee_id", "recorded_at", "kind", "method", "latitude",
		"longitude", "device_info", "registered_by", "notes", "created_at",
	).From("attendance_records").
		Where(sq.Eq{"employee_id": employeeID}).
		OrderBy("recorded_at DESC")

	if filter.Kind != "" {
		builder = builder.Where(sq.Eq{"kind": filter.Kind})
	}
	if filter.StartDate != nil {
		builder = builder.Where(sq.GtOrEq{"recorded_at": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(sq.Lt{"recorded_at": filter.EndDate.Add(24 * time.Hour)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build my-records query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return records, nil
}

// GetLastForDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetLastForDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	start, end := dayBounds(date)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND recorded_at >= $2 AND recorded_at < $3
		ORDER BY recorded_at DESC
		LIMIT 1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, start, end))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last record of day: %w", err)
	}

	return &rec, nil
}

// ListForDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListForDate(ctx context.Context, employeeID string, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	start, end := dayBounds(date)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND recorded_at >= $2 AND recorded_at < $3
		ORDER BY recorded_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list day records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return records, nil
}

// HasRecentMark implements attendance.AttendanceRepository.
func (r *attendanceRepository) HasRecentMark(ctx context.Context, employeeID string, since time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM attendance_records
			WHERE employee_id = $1 AND recorded_at >= $2
		)
	`, employeeID, since).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check recent marks: %w", err)
	}

	return exists, nil
}

// Statistics implements attendance.AttendanceRepository.
func (r *attendanceRepository) Statistics(ctx context.Context, filter attendance.StatisticsFilter) (attendance.Statistics, error) {
	q := GetQuerier(ctx, r.db)
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	base := psql.Select().
		From("attendance_records a").
		Join("employees e ON e.id = a.employee_id")

	if filter.EmployeeID != "" {
		base = base.Where(sq.Eq{"a.employee_id": filter.EmployeeID})
	}
	if filter.CompanyID != "" {
		base = base.Where(sq.Eq{"e.company_id": filter.CompanyID})
	}
	if filter.StartDate != nil {
		base = base.Where(sq.GtOrEq{"a.recorded_at": *filter.StartDate})
	}
	if filter.EndDate != nil {
		base = base.Where(sq.Lt{"a.recorded_at": filter.EndDate.Add(24 * time.Hour)})
	}

	var stats attendance.Statistics

	totalsQuery, totalsArgs, err := base.Columns(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE a.kind = 'entry')",
		"COUNT(*) FILTER (WHERE a.kind = 'exit')",
	).ToSql()
	if err != nil {
		return stats, fmt.Errorf("failed to build totals query: %w", err)
	}

	err = q.QueryRow(ctx, totalsQuery, totalsArgs...).Scan(&stats.Total, &stats.Entries, &stats.Exits)
	if err != nil {
		return stats, fmt.Errorf("failed to compute attendance totals: %w", err)
	}

	perDayQuery, perDayArgs, err := base.Columns(
		"DATE(a.recorded_at)",
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE a.kind = 'entry')",
		"COUNT(*) FILTER (WHERE a.kind = 'exit')",
	).GroupBy("DATE(a.recorded_at)").OrderBy("DATE(a.recorded_at) ASC").ToSql()
	if err != nil {
		return stats, fmt.Errorf("failed to build per-day query: %w", err)
	}

	dayRows, err := q.Query(ctx, perDayQuery, perDayArgs...)
	if err != nil {
		return stats, fmt.Errorf("failed to compute per-day totals: %w", err)
	}
	defer dayRows.Close()

	for dayRows.Next() {
		var dc attendance.DayCount
		if err := dayRows.Scan(&dc.Date, &dc.Total, &dc.Entries, &dc.Exits); err != nil {
			return stats, fmt.Errorf("failed to scan per-day row: %w", err)
		}
		stats.PerDay = append(stats.PerDay, dc)
	}
	if err := dayRows.Err(); err != nil {
		return stats, fmt.Errorf("rows error: %w", err)
	}

	perMethodQuery, perMethodArgs, err := base.Columns(
		"a.method", "COUNT(*)",
	).GroupBy("a.method").OrderBy("COUNT(*) DESC").ToSql()
	if err != nil {
		return stats, fmt.Errorf("failed to build per-method query: %w", err)
	}

	methodRows, err := q.Query(ctx, perMethodQuery, perMethodArgs...)
	if err != nil {
		return stats, fmt.Errorf("failed to compute per-method totals: %w", err)
	}
	defer methodRows.Close()

	for methodRows.Next() {
		var mc attendance.MethodCount
		if err := methodRows.Scan(&mc.Method, &mc.Total); err != nil {
			return stats, fmt.Errorf("failed to scan per-method row: %w", err)
		}
		stats.PerMethod = append(stats.PerMethod, mc)
	}
	if err := methodRows.Err(); err != nil {
		return stats, fmt.Errorf("rows error: %w", err)
	}

	topQuery, topArgs, err := base.Columns(
		"a.employee_id",
		"e.first_names || ' ' || e.last_names",
		"COUNT(*)",
	).GroupBy("a.employee_id", "e.first_names", "e.last_names").
		OrderBy("COUNT(*) DESC").
		Limit(10).
		ToSql()
	if err != nil {
		return stats, fmt.Errorf("failed to build top-employees query: %w", err)
	}

	topRows, err := q.Query(ctx, topQuery, topArgs...)
	if err != nil {
		return stats, fmt.Errorf("failed to compute top employees: %w", err)
	}
	defer topRows.Close()

	for topRows.Next() {
		var ec attendance.EmployeeCount
		if err := topRows.Scan(&ec.EmployeeID, &ec.FullName, &ec.Total); err != nil {
			return stats, fmt.Errorf("failed to scan top-employee row: %w", err)
		}
		stats.TopEmployees = append(stats.TopEmployees, ec)
	}
	if err := topRows.Err(); err != nil {
		return stats, fmt.Errorf("rows error: %w", err)
	}

	return stats, nil
}
