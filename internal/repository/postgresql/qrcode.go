package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/asistpro/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistpro/asistencia-backend-go/internal/pkg/database"
)

type qrCodeRepository struct {
	db *database.DB
}

func NewQRCodeRepository(db *database.DB) attendance.QRCodeRepository {
	return &qrCodeRepository{db: db}
}

const qrCodeColumns = `id, company_id, label, code, location, active, created_at, updated_at`

func scanQRCode(row pgx.Row) (attendance.QRCode, error) {
	var qr attendance.QRCode
	err := row.Scan(
		&qr.ID, &qr.CompanyID, &qr.Label, &qr.Code, &qr.Location,
		&qr.Active, &qr.CreatedAt, &qr.UpdatedAt,
	)
	return qr, err
}

// Create implements attendance.QRCodeRepository.
func (r *qrCodeRepository) Create(ctx context.Context, newQR attendance.QRCode) (attendance.QRCode, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO qr_codes (company_id, label, code, location, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newQR.CompanyID,
		newQR.Label,
		newQR.Code,
		newQR.Location,
		newQR.Active,
	).Scan(&newQR.ID, &newQR.CreatedAt, &newQR.UpdatedAt)

	if err != nil {
		if IsUniqueViolation(err) {
			return attendance.QRCode{}, attendance.ErrQRCodeExists
		}
		return attendance.QRCode{}, fmt.Errorf("failed to create qr code: %w", err)
	}

	return newQR, nil
}

// GetByID implements attendance.QRCodeRepository.
func (r *qrCodeRepository) GetByID(ctx context.Context, id string) (attendance.QRCode, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT q.id, q.company_id, q.label, q.code, q.location, q.active,
		       q.created_at, q.updated_at, c.legal_name
		FROM qr_codes q
		JOIN companies c ON c.id = q.company_id
		WHERE q.id = $1
	`

	var qr attendance.QRCode
	err := q.QueryRow(ctx, query, id).Scan(
		&qr.ID, &qr.CompanyID, &qr.Label, &qr.Code, &qr.Location,
		&qr.Active, &qr.CreatedAt, &qr.UpdatedAt, &qr.CompanyName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.QRCode{}, attendance.ErrQRCodeNotFound
		}
		return attendance.QRCode{}, fmt.Errorf("failed to get qr code by id: %w", err)
	}

	return qr, nil
}

// GetByCode implements attendance.QRCodeRepository.
func (r *qrCodeRepository) GetByCode(ctx context.Context, code string) (attendance.QRCode, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + qrCodeColumns + ` FROM qr_codes WHERE code = $1`

	qr, err := scanQRCode(q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.QRCode{}, attendance.ErrQRCodeNotFound
		}
		return attendance.QRCode{}, fmt.Errorf("failed to get qr code by code: %w", err)
	}

	return qr, nil
}

// List implements attendance.QRCodeRepository.
func (r *qrCodeRepository) List(ctx context.Context, companyID string, onlyActive bool) ([]attendance.QRCode, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT q.id, q.company_id, q.label, q.code, q.location, q.active,
		       q.created_at, q.updated_at, c.legal_name
		FROM qr_codes q
		JOIN companies c ON c.id = q.company_id
		WHERE ($1 = '' OR q.company_id::text = $1)
		  AND (NOT $2 OR q.active)
		ORDER BY c.legal_name, q.label ASC
	`

	rows, err := q.Query(ctx, query, companyID, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list qr codes: %w", err)
	}
	defer rows.Close()

	var codes []attendance.QRCode
	for rows.Next() {
		var qr attendance.QRCode
		err := rows.Scan(
			&qr.ID, &qr.CompanyID, &qr.Label, &qr.Code, &qr.Location,
			&qr.Active, &qr.CreatedAt, &qr.UpdatedAt, &qr.CompanyName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan qr code: %w", err)
		}
		codes = append(codes, qr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return codes, nil
}

// ListActiveByCompany implements attendance.QRCodeRepository.
func (r *qrCodeRepository) ListActiveByCompany(ctx context.Context, companyID string) ([]attendance.QRCode, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + qrCodeColumns + ` FROM qr_codes WHERE company_id = $1 AND active ORDER BY label ASC`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active qr codes: %w", err)
	}
	defer rows.Close()

	var codes []attendance.QRCode
	for rows.Next() {
		qr, err := scanQRCode(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan qr code: %w", err)
		}
		codes = append(codes, qr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return codes, nil
}

// Update implements attendance.QRCodeRepository.
func (r *qrCodeRepository) Update(ctx context.Context, qr attendance.QRCode) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE qr_codes
		SET label = $2, location = $3, active = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, qr.ID, qr.Label, qr.Location, qr.Active)
	if err != nil {
		return fmt.Errorf("failed to update qr code: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrQRCodeNotFound
	}

	return nil
}

// Delete implements attendance.QRCodeRepository.
func (r *qrCodeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM qr_codes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete qr code: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrQRCodeNotFound
	}

	return nil
}
