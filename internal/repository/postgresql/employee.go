package postgresql

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/asistpro/asistencia-backend-go/internal/domain/employee"
	"github.com/asistpro/asistencia-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, company_id, department_id, position_id, first_names, last_names,
	dni, birth_date, phone, personal_email, address, employee_code, hire_date, salary,
	shift_type, rest_day, active, termination_date, termination_reason, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.DepartmentID, &e.PositionID, &e.FirstNames, &e.LastNames,
		&e.DNI, &e.BirthDate, &e.Phone, &e.PersonalEmail, &e.Address, &e.EmployeeCode,
		&e.HireDate, &e.Salary, &e.ShiftType, &e.RestDay, &e.Active,
		&e.TerminationDate, &e.TerminationReason, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (company_id, department_id, position_id, first_names,
			last_names, dni, birth_date, phone, personal_email, address, employee_code,
			hire_date, salary, shift_type, rest_day, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.CompanyID,
		newEmployee.DepartmentID,
		newEmployee.PositionID,
		newEmployee.FirstNames,
		newEmployee.LastNames,
		newEmployee.DNI,
		newEmployee.BirthDate,
		newEmployee.Phone,
		newEmployee.PersonalEmail,
		newEmployee.Address,
		newEmployee.EmployeeCode,
		newEmployee.HireDate,
		newEmployee.Salary,
		newEmployee.ShiftType,
		newEmployee.RestDay,
		newEmployee.Active,
	).Scan(&newEmployee.ID, &newEmployee.CreatedAt, &newEmployee.UpdatedAt)

	if err != nil {
		switch UniqueConstraint(err) {
		case "uq_employees_company_code":
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		case "":
		default:
			return employee.Employee{}, employee.ErrDNIExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.company_id, e.department_id, e.position_id, e.first_names,
		       e.last_names, e.dni, e.birth_date, e.phone, e.personal_email, e.address,
		       e.employee_code, e.hire_date, e.salary, e.shift_type, e.rest_day,
		       e.active, e.termination_date, e.termination_reason, e.created_at, e.updated_at,
		       c.legal_name, d.name, p.name
		FROM employees e
		JOIN companies c ON c.id = e.company_id
		JOIN departments d ON d.id = e.department_id
		JOIN positions p ON p.id = e.position_id
		WHERE e.id = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.CompanyID, &e.DepartmentID, &e.PositionID, &e.FirstNames, &e.LastNames,
		&e.DNI, &e.BirthDate, &e.Phone, &e.PersonalEmail, &e.Address, &e.EmployeeCode,
		&e.HireDate, &e.Salary, &e.ShiftType, &e.RestDay, &e.Active,
		&e.TerminationDate, &e.TerminationReason, &e.CreatedAt, &e.UpdatedAt,
		&e.CompanyName, &e.DepartmentName, &e.PositionName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return e, nil
}

// GetByDNI implements employee.EmployeeRepository.
func (r *employeeRepository) GetByDNI(ctx context.Context, dni string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE dni = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, dni))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by dni: %w", err)
	}

	return e, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.company_id, e.department_id, e.position_id, e.first_names,
		       e.last_names, e.dni, e.birth_date, e.phone, e.personal_email, e.address,
		       e.employee_code, e.hire_date, e.salary, e.shift_type, e.rest_day,
		       e.active, e.termination_date, e.termination_reason, e.created_at, e.updated_at
		FROM employees e
		JOIN users u ON u.employee_id = e.id
		WHERE u.id = $1
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrNoEmployeeForAccount
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by user id: %w", err)
	}

	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	baseSelect := psql.Select().
		From("employees e").
		Join("companies c ON c.id = e.company_id").
		Join("departments d ON d.id = e.department_id").
		Join("positions p ON p.id = e.position_id")

	if filter.CompanyID != "" {
		baseSelect = baseSelect.Where(sq.Eq{"e.company_id": filter.CompanyID})
	}
	if filter.DepartmentID != "" {
		baseSelect = baseSelect.Where(sq.Eq{"e.department_id": filter.DepartmentID})
	}
	if filter.PositionID != "" {
		baseSelect = baseSelect.Where(sq.Eq{"e.position_id": filter.PositionID})
	}
	if filter.OnlyActive {
		baseSelect = baseSelect.Where(sq.Eq{"e.active": true})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		baseSelect = baseSelect.Where(sq.Or{
			sq.ILike{"e.first_names": pattern},
			sq.ILike{"e.last_names": pattern},
			sq.ILike{"e.dni": pattern},
		})
	}

	countQuery, countArgs, err := baseSelect.Columns("COUNT(e.id)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int64
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}
	if total == 0 {
		return []employee.Employee{}, 0, nil
	}

	mainBuilder := baseSelect.Columns(
		"e.id", "e.company_id", "e.department_id", "e.position_id", "e.first_names",
		"e.last_names", "e.dni", "e.birth_date", "e.phone", "e.personal_email",
		"e.address", "e.employee_code", "e.hire_date", "e.salary", "e.shift_type",
		"e.rest_day", "e.active", "e.termination_date", "e.termination_reason",
		"e.created_at", "e.updated_at", "c.legal_name", "d.name", "p.name",
	).OrderBy("e.last_names ASC, e.first_names ASC")

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
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		err := rows.Scan(
			&e.ID, &e.CompanyID, &e.DepartmentID, &e.PositionID, &e.FirstNames, &e.LastNames,
			&e.DNI, &e.BirthDate, &e.Phone, &e.PersonalEmail, &e.Address, &e.EmployeeCode,
			&e.HireDate, &e.Salary, &e.ShiftType, &e.RestDay, &e.Active,
			&e.TerminationDate, &e.TerminationReason, &e.CreatedAt, &e.UpdatedAt,
			&e.CompanyName, &e.DepartmentName, &e.PositionName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return employees, total, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET department_id = $2, position_id = $3, first_names = $4, last_names = $5,
		    phone = $6, personal_email = $7, address = $8, salary = $9,
		    shift_type = $10, rest_day = $11, active = $12,
		    termination_date = $13, termination_reason = $14, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		e.ID, e.DepartmentID, e.PositionID, e.FirstNames, e.LastNames,
		e.Phone, e.PersonalEmail, e.Address, e.Salary,
		e.ShiftType, e.RestDay, e.Active,
		e.TerminationDate, e.TerminationReason,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
