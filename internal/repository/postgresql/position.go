package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/asistpro/asistencia-backend-go/internal/domain/position"
	"github.com/asistpro/asistencia-backend-go/internal/pkg/database"
)

type positionRepository struct {
	db *database.DB
}

func NewPositionRepository(db *database.DB) position.PositionRepository {
	return &positionRepository{db: db}
}

const positionColumns = `id, company_id, department_id, reports_to_id, name, code, description,
	salary_min, salary_max, active, created_at, updated_at`

func scanPosition(row pgx.Row) (position.Position, error) {
	var p position.Position
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.DepartmentID, &p.ReportsToID, &p.Name, &p.Code,
		&p.Description, &p.SalaryMin, &p.SalaryMax, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create implements position.PositionRepository.
func (r *positionRepository) Create(ctx context.Context, newPosition position.Position) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO positions (company_id, department_id, reports_to_id, name, code,
			description, salary_min, salary_max, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newPosition.CompanyID,
		newPosition.DepartmentID,
		newPosition.ReportsToID,
		newPosition.Name,
		newPosition.Code,
		newPosition.Description,
		newPosition.SalaryMin,
		newPosition.SalaryMax,
		newPosition.Active,
	).Scan(&newPosition.ID, &newPosition.CreatedAt, &newPosition.UpdatedAt)

	if err != nil {
		if IsUniqueViolation(err) {
			return position.Position{}, position.ErrCodeExists
		}
		return position.Position{}, fmt.Errorf("failed to create position: %w", err)
	}

	return newPosition, nil
}

// GetByID implements position.PositionRepository.
func (r *positionRepository) GetByID(ctx context.Context, id string) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + positionColumns + ` FROM positions WHERE id = $1`

	p, err := scanPosition(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return position.Position{}, position.ErrPositionNotFound
		}
		return position.Position{}, fmt.Errorf("failed to get position by id: %w", err)
	}

	return p, nil
}

// GetByCode implements position.PositionRepository.
func (r *positionRepository) GetByCode(ctx context.Context, departmentID string, code string) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + positionColumns + ` FROM positions WHERE department_id = $1 AND code = $2`

	p, err := scanPosition(q.QueryRow(ctx, query, departmentID, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return position.Position{}, position.ErrPositionNotFound
		}
		return position.Position{}, fmt.Errorf("failed to get position by code: %w", err)
	}

	return p, nil
}

// List implements position.PositionRepository.
func (r *positionRepository) List(ctx context.Context, companyID string, departmentID string, onlyActive bool) ([]position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.company_id, p.department_id, p.reports_to_id, p.name, p.code,
		       p.description, p.salary_min, p.salary_max, p.active, p.created_at, p.updated_at,
		       d.name,
		       COUNT(e.id) FILTER (WHERE e.active) AS active_holders
		FROM positions p
		JOIN departments d ON d.id = p.department_id
		LEFT JOIN employees e ON e.position_id = p.id
		WHERE ($1 = '' OR p.company_id::text = $1)
		  AND ($2 = '' OR p.department_id::text = $2)
		  AND (NOT $3 OR p.active)
		GROUP BY p.id, d.name
		ORDER BY d.name, p.name ASC
	`

	rows, err := q.Query(ctx, query, companyID, departmentID, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	defer rows.Close()

	var positions []position.Position
	for rows.Next() {
		var p position.Position
		err := rows.Scan(
			&p.ID, &p.CompanyID, &p.DepartmentID, &p.ReportsToID, &p.Name, &p.Code,
			&p.Description, &p.SalaryMin, &p.SalaryMax, &p.Active, &p.CreatedAt, &p.UpdatedAt,
			&p.DepartmentName, &p.ActiveHolders,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return positions, nil
}

// ListSubordinates implements position.PositionRepository.
func (r *positionRepository) ListSubordinates(ctx context.Context, reportsToID string) ([]position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + positionColumns + ` FROM positions WHERE reports_to_id = $1 AND active ORDER BY name ASC`

	rows, err := q.Query(ctx, query, reportsToID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subordinate positions: %w", err)
	}
	defer rows.Close()

	var subordinates []position.Position
	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		subordinates = append(subordinates, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return subordinates, nil
}

// Update implements position.PositionRepository.
func (r *positionRepository) Update(ctx context.Context, p position.Position) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE positions
		SET reports_to_id = $2, name = $3, code = $4, description = $5,
		    salary_min = $6, salary_max = $7, active = $8, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		p.ID, p.ReportsToID, p.Name, p.Code, p.Description,
		p.SalaryMin, p.SalaryMax, p.Active,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return position.ErrCodeExists
		}
		return fmt.Errorf("failed to update position: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return position.ErrPositionNotFound
	}

	return nil
}

// Delete implements position.PositionRepository.
func (r *positionRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return position.ErrPositionNotFound
	}

	return nil
}

// CountActiveHolders implements position.PositionRepository.
func (r *positionRepository) CountActiveHolders(ctx context.Context, positionID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees WHERE position_id = $1 AND active`,
		positionID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count position holders: %w", err)
	}

	return count, nil
}
