package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/asistpro/asistencia-backend-go/internal/domain/company"
	"github.com/asistpro/asistencia-backend-go/internal/pkg/database"
)

type companyRepository struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepository{db: db}
}

const companyColumns = `id, legal_name, ruc, address, phone, email, active, created_at, updated_at`

func scanCompany(row pgx.Row) (company.Company, error) {
	var c company.Company
	err := row.Scan(
		&c.ID, &c.LegalName, &c.RUC, &c.Address, &c.Phone, &c.Email,
		&c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// Create implements company.CompanyRepository.
func (r *companyRepository) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO companies (legal_name, ruc, address, phone, email, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newCompany.LegalName,
		newCompany.RUC,
		newCompany.Address,
		newCompany.Phone,
		newCompany.Email,
		newCompany.Active,
	).Scan(&newCompany.ID, &newCompany.CreatedAt, &newCompany.UpdatedAt)

	if err != nil {
		if IsUniqueViolation(err) {
			return company.Company{}, company.ErrRUCExists
		}
		return company.Company{}, fmt.Errorf("failed to create company: %w", err)
	}

	return newCompany, nil
}

// GetByID implements company.CompanyRepository.
func (r *companyRepository) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`

	c, err := scanCompany(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company by id: %w", err)
	}

	return c, nil
}

// GetByRUC implements company.CompanyRepository.
func (r *companyRepository) GetByRUC(ctx context.Context, ruc string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + companyColumns + ` FROM companies WHERE ruc = $1`

	c, err := scanCompany(q.QueryRow(ctx, query, ruc))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company by ruc: %w", err)
	}

	return c, nil
}

// List implements company.CompanyRepository.
func (r *companyRepository) List(ctx context.Context, onlyActive bool) ([]company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.legal_name, c.ruc, c.address, c.phone, c.email,
		       c.active, c.created_at, c.updated_at,
		       COUNT(e.id) FILTER (WHERE e.active) AS active_employees
		FROM companies c
		LEFT JOIN employees e ON e.company_id = c.id
	`
	if onlyActive {
		query += ` WHERE c.active`
	}
	query += `
		GROUP BY c.id
		ORDER BY c.legal_name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []company.Company
	for rows.Next() {
		var c company.Company
		err := rows.Scan(
			&c.ID, &c.LegalName, &c.RUC, &c.Address, &c.Phone, &c.Email,
			&c.Active, &c.CreatedAt, &c.UpdatedAt, &c.ActiveEmployees,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return companies, nil
}

// Update implements company.CompanyRepository.
func (r *companyRepository) Update(ctx context.Context, c company.Company) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE companies
		SET legal_name = $2, ruc = $3, address = $4, phone = $5, email = $6,
		    active = $7, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		c.ID, c.LegalName, c.RUC, c.Address, c.Phone, c.Email, c.Active,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return company.ErrRUCExists
		}
		return fmt.Errorf("failed to update company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}

	return nil
}

// Delete implements company.CompanyRepository.
func (r *companyRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}

	return nil
}

// CountActiveEmployees implements company.CompanyRepository.
func (r *companyRepository) CountActiveEmployees(ctx context.Context, companyID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees WHERE company_id = $1 AND active`,
		companyID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}

	return count, nil
}
