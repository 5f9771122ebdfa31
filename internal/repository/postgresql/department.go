package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/asistpro/asistencia-backend-go/internal/domain/department"
	"github.com/asistpro/asistencia-backend-go/internal/pkg/database"
)

type departmentRepository struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepository{db: db}
}

const departmentColumns = `id, company_id, parent_id, name, code, description, active, created_at, updated_at`

func scanDepartment(row pgx.Row) (department.Department, error) {
	var d department.Department
	err := row.Scan(
		&d.ID, &d.CompanyID, &d.ParentID, &d.Name, &d.Code, &d.Description,
		&d.Active, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

// Create implements department.DepartmentRepository.
func (r *departmentRepository) Create(ctx context.Context, newDepartment department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (company_id, parent_id, name, code, description, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newDepartment.CompanyID,
		newDepartment.ParentID,
		newDepartment.Name,
		newDepartment.Code,
		newDepartment.Description,
		newDepartment.Active,
	).Scan(&newDepartment.ID, &newDepartment.CreatedAt, &newDepartment.UpdatedAt)

	if err != nil {
		if IsUniqueViolation(err) {
			return department.Department{}, department.ErrCodeExists
		}
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return newDepartment, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepository) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + departmentColumns + ` FROM departments WHERE id = $1`

	d, err := scanDepartment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department by id: %w", err)
	}

	return d, nil
}

// GetByCode implements department.DepartmentRepository.
func (r *departmentRepository) GetByCode(ctx context.Context, companyID string, code string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + departmentColumns + ` FROM departments WHERE company_id = $1 AND code = $2`

	d, err := scanDepartment(q.QueryRow(ctx, query, companyID, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department by code: %w", err)
	}

	return d, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepository) List(ctx context.Context, companyID string, onlyActive bool) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.company_id, d.parent_id, d.name, d.code, d.description,
		       d.active, d.created_at, d.updated_at,
		       c.legal_name,
		       COUNT(e.id) FILTER (WHERE e.active) AS active_employees
		FROM departments d
		JOIN companies c ON c.id = d.company_id
		LEFT JOIN employees e ON e.department_id = d.id
		WHERE ($1 = '' OR d.company_id::text = $1)
		  AND (NOT $2 OR d.active)
		GROUP BY d.id, c.legal_name
		ORDER BY c.legal_name, d.name ASC
	`

	rows, err := q.Query(ctx, query, companyID, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var d department.Department
		err := rows.Scan(
			&d.ID, &d.CompanyID, &d.ParentID, &d.Name, &d.Code, &d.Description,
			&d.Active, &d.CreatedAt, &d.UpdatedAt, &d.CompanyName, &d.ActiveEmployees,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return departments, nil
}

// ListChildren implements department.DepartmentRepository.
func (r *departmentRepository) ListChildren(ctx context.Context, parentID string) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + departmentColumns + ` FROM departments WHERE parent_id = $1 AND active ORDER BY name ASC`

	rows, err := q.Query(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list child departments: %w", err)
	}
	defer rows.Close()

	var children []department.Department
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		children = append(children, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return children, nil
}

// Update implements department.DepartmentRepository.
func (r *departmentRepository) Update(ctx context.Context, d department.Department) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET parent_id = $2, name = $3, code = $4, description = $5, active = $6,
		    updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, d.ID, d.ParentID, d.Name, d.Code, d.Description, d.Active)
	if err != nil {
		if IsUniqueViolation(err) {
			return department.ErrCodeExists
		}
		return fmt.Errorf("failed to update department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}

// CountActiveEmployees implements department.DepartmentRepository.
func (r *departmentRepository) CountActiveEmployees(ctx context.Context, departmentID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees WHERE department_id = $1 AND active`,
		departmentID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count department employees: %w", err)
	}

	return count, nil
}
