package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/asistpro/asistencia-backend-go/internal/domain/holiday"
	"github.com/asistpro/asistencia-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepository) Create(ctx context.Context, newHoliday holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (name, date, kind, description, mandatory, is_global, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newHoliday.Name,
		newHoliday.Date,
		newHoliday.Kind,
		newHoliday.Description,
		newHoliday.Mandatory,
		newHoliday.Global,
		newHoliday.Active,
	).Scan(&newHoliday.ID, &newHoliday.CreatedAt, &newHoliday.UpdatedAt)

	if err != nil {
		if IsUniqueViolation(err) {
			return holiday.Holiday{}, holiday.ErrHolidayExists
		}
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return newHoliday, nil
}

// GetByID implements holiday.HolidayRepository.
func (r *holidayRepository) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, date, kind, description, mandatory, is_global, active,
		       created_at, updated_at
		FROM holidays
		WHERE id = $1
	`

	var h holiday.Holiday
	err := q.QueryRow(ctx, query, id).Scan(
		&h.ID, &h.Name, &h.Date, &h.Kind, &h.Description, &h.Mandatory,
		&h.Global, &h.Active, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, fmt.Errorf("failed to get holiday by id: %w", err)
	}

	if err := r.loadCompanies(ctx, &h); err != nil {
		return holiday.Holiday{}, err
	}

	return h, nil
}

// List implements holiday.HolidayRepository.
func (r *holidayRepository) List(ctx context.Context, filter holiday.ListFilter) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	builder := psql.Select(
		"id", "name", "date", "kind", "description", "mandatory", "is_global",
		"active", "created_at", "updated_at",
	).From("holidays").OrderBy("date ASC")

	if filter.Year > 0 {
		builder = builder.Where(sq.Expr("EXTRACT(YEAR FROM date) = ?", filter.Year))
	}
	if filter.Month > 0 {
		builder = builder.Where(sq.Expr("EXTRACT(MONTH FROM date) = ?", filter.Month))
	}
	if filter.Kind != "" {
		builder = builder.Where(sq.Eq{"kind": filter.Kind})
	}
	if filter.Global != nil {
		builder = builder.Where(sq.Eq{"is_global": *filter.Global})
	}
	if filter.Active != nil {
		builder = builder.Where(sq.Eq{"active": *filter.Active})
	}
	if filter.Mandatory != nil {
		builder = builder.Where(sq.Eq{"mandatory": *filter.Mandatory})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build holiday list query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	holidays, err := scanHolidays(rows)
	if err != nil {
		return nil, err
	}

	for i := range holidays {
		if err := r.loadCompanies(ctx, &holidays[i]); err != nil {
			return nil, err
		}
	}

	return holidays, nil
}

// Update implements holiday.HolidayRepository.
func (r *holidayRepository) Update(ctx context.Context, h holiday.Holiday) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE holidays
		SET name = $2, date = $3, kind = $4, description = $5, mandatory = $6,
		    is_global = $7, active = $8, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		h.ID, h.Name, h.Date, h.Kind, h.Description, h.Mandatory, h.Global, h.Active,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return holiday.ErrHolidayExists
		}
		return fmt.Errorf("failed to update holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}

// ReplaceCompanies implements holiday.HolidayRepository.
func (r *holidayRepository) ReplaceCompanies(ctx context.Context, holidayID string, companyIDs []string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM holiday_companies WHERE holiday_id = $1`, holidayID); err != nil {
		return fmt.Errorf("failed to clear holiday companies: %w", err)
	}

	for _, companyID := range companyIDs {
		_, err := q.Exec(ctx, `
			INSERT INTO holiday_companies (holiday_id, company_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, holidayID, companyID)
		if err != nil {
			return fmt.Errorf("failed to link holiday to company: %w", err)
		}
	}

	return nil
}

// ListForCompany implements holiday.HolidayRepository.
func (r *holidayRepository) ListForCompany(ctx context.Context, companyID string, start, end *time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	builder := psql.Select(
		"h.id", "h.name", "h.date", "h.kind", "h.description", "h.mandatory",
		"h.is_global", "h.active", "h.created_at", "h.updated_at",
	).From("holidays h").
		Where(sq.Eq{"h.active": true}).
		Where(sq.Or{
			sq.Eq{"h.is_global": true},
			sq.Expr("EXISTS (SELECT 1 FROM holiday_companies hc WHERE hc.holiday_id = h.id AND hc.company_id = ?)", companyID),
		}).
		OrderBy("h.date ASC")

	if start != nil {
		builder = builder.Where(sq.GtOrEq{"h.date": *start})
	}
	if end != nil {
		builder = builder.Where(sq.LtOrEq{"h.date": *end})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build company holiday query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list company holidays: %w", err)
	}
	defer rows.Close()

	return scanHolidays(rows)
}

func scanHolidays(rows pgx.Rows) ([]holiday.Holiday, error) {
	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		err := rows.Scan(
			&h.ID, &h.Name, &h.Date, &h.Kind, &h.Description, &h.Mandatory,
			&h.Global, &h.Active, &h.CreatedAt, &h.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return holidays, nil
}

func (r *holidayRepository) loadCompanies(ctx context.Context, h *holiday.Holiday) error {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT company_id FROM holiday_companies WHERE holiday_id = $1`, h.ID)
	if err != nil {
		return fmt.Errorf("failed to load holiday companies: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var companyID string
		if err := rows.Scan(&companyID); err != nil {
			return fmt.Errorf("failed to scan holiday company: %w", err)
		}
		h.CompanyIDs = append(h.CompanyIDs, companyID)
	}

	return rows.Err()
}
