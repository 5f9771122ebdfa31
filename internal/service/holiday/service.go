package holiday

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/asistpro/asistencia-backend-go/internal/domain/company"
	"github.com/asistpro/asistencia-backend-go/internal/domain/holiday"
	"github.com/asistpro/asistencia-backend-go/internal/pkg/database"
	"github.com/asistpro/asistencia-backend-go/internal/repository/postgresql"
)

type HolidayServiceImpl struct {
	db *database.DB
	holiday.HolidayRepository
	company.CompanyRepository
}

func NewHolidayService(db *database.DB, holidayRepository holiday.HolidayRepository, companyRepository company.CompanyRepository) holiday.HolidayService {
	return &HolidayServiceImpl{
		db:                db,
		HolidayRepository: holidayRepository,
		CompanyRepository: companyRepository,
	}
}

// Create implements holiday.HolidayService.
func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	global := req.Global == nil || *req.Global
	if !global {
		for _, companyID := range req.CompanyIDs {
			if _, err := s.CompanyRepository.GetByID(ctx, companyID); err != nil {
				return holiday.HolidayResponse{}, err
			}
		}
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	mandatory := req.Mandatory == nil || *req.Mandatory

	var created holiday.Holiday
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		var err error
		created, err = s.HolidayRepository.Create(txCtx, holiday.Holiday{
			Name:        req.Name,
			Date:        date,
			Kind:        holiday.Kind(req.Kind),
			Description: req.Description,
			Mandatory:   mandatory,
			Global:      global,
			Active:      true,
		})
		if err != nil {
			return err
		}

		// Company links only matter for scoped holidays.
		if !global {
			if err := s.HolidayRepository.ReplaceCompanies(txCtx, created.ID, req.CompanyIDs); err != nil {
				return err
			}
			created.CompanyIDs = req.CompanyIDs
		}
		return nil
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	return holiday.ToResponse(created), nil
}

// GetByID implements holiday.HolidayService.
func (s *HolidayServiceImpl) GetByID(ctx context.Context, id string) (holiday.HolidayResponse, error) {
	holidayData, err := s.HolidayRepository.GetByID(ctx, id)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	return holiday.ToResponse(holidayData), nil
}

// List implements holiday.HolidayService.
func (s *HolidayServiceImpl) List(ctx context.Context, filter holiday.ListFilter) ([]holiday.HolidayResponse, error) {
	holidays, err := s.HolidayRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, holiday.ToResponse(h))
	}

	return responses, nil
}

// Update implements holiday.HolidayService.
func (s *HolidayServiceImpl) Update(ctx context.Context, id string, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	holidayData, err := s.HolidayRepository.GetByID(ctx, id)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	global := req.Global == nil || *req.Global

	holidayData.Name = req.Name
	holidayData.Date = date
	holidayData.Kind = holiday.Kind(req.Kind)
	holidayData.Description = req.Description
	holidayData.Global = global
	if req.Mandatory != nil {
		holidayData.Mandatory = *req.Mandatory
	}
	if req.Active != nil {
		holidayData.Active = *req.Active
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		if err := s.HolidayRepository.Update(txCtx, holidayData); err != nil {
			return err
		}

		// Going global clears any leftover company scoping.
		companyIDs := req.CompanyIDs
		if global {
			companyIDs = nil
		}
		return s.HolidayRepository.ReplaceCompanies(txCtx, id, companyIDs)
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	return s.GetByID(ctx, id)
}

// Delete implements holiday.HolidayService.
func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	return s.HolidayRepository.Delete(ctx, id)
}

// ForCompany implements holiday.HolidayService.
func (s *HolidayServiceImpl) ForCompany(ctx context.Context, companyID string, startDate, endDate string) ([]holiday.HolidayResponse, error) {
	if _, err := s.CompanyRepository.GetByID(ctx, companyID); err != nil {
		return nil, err
	}

	var start, end *time.Time
	if startDate != "" {
		if parsed, err := time.Parse("2006-01-02", startDate); err == nil {
			start = &parsed
		}
	}
	if endDate != "" {
		if parsed, err := time.Parse("2006-01-02", endDate); err == nil {
			end = &parsed
		}
	}

	holidays, err := s.HolidayRepository.ListForCompany(ctx, companyID, start, end)
	if err != nil {
		return nil, err
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, holiday.ToResponse(h))
	}

	return responses, nil
}
