package company

import (
	"context"
	"fmt"

	"github.com/asistpro/asistencia-backend-go/internal/domain/company"
)

type CompanyServiceImpl struct {
	company.CompanyRepository
}

func NewCompanyService(companyRepository company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{CompanyRepository: companyRepository}
}

// Create implements company.CompanyService.
func (s *CompanyServiceImpl) Create(ctx context.Context, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	created, err := s.CompanyRepository.Create(ctx, company.Company{
		LegalName: req.LegalName,
		RUC:       req.RUC,
		Address:   req.Address,
		Phone:     req.Phone,
		Email:     req.Email,
		Active:    true,
	})
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return company.ToResponse(created), nil
}

// GetByID implements company.CompanyService.
func (s *CompanyServiceImpl) GetByID(ctx context.Context, id string) (company.CompanyResponse, error) {
	companyData, err := s.CompanyRepository.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	count, err := s.CompanyRepository.CountActiveEmployees(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}
	companyData.ActiveEmployees = count

	return company.ToResponse(companyData), nil
}

// List implements company.CompanyService.
func (s *CompanyServiceImpl) List(ctx context.Context, onlyActive bool) ([]company.CompanyResponse, error) {
	companies, err := s.CompanyRepository.List(ctx, onlyActive)
	if err != nil {
		return nil, err
	}

	responses := make([]company.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		responses = append(responses, company.ToResponse(c))
	}

	return responses, nil
}

// Update implements company.CompanyService.
func (s *CompanyServiceImpl) Update(ctx context.Context, id string, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	companyData, err := s.CompanyRepository.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	companyData.LegalName = req.LegalName
	companyData.RUC = req.RUC
	companyData.Address = req.Address
	companyData.Phone = req.Phone
	companyData.Email = req.Email
	if req.Active != nil {
		companyData.Active = *req.Active
	}

	if err := s.CompanyRepository.Update(ctx, companyData); err != nil {
		return company.CompanyResponse{}, err
	}

	return s.GetByID(ctx, id)
}

// Delete implements company.CompanyService.
func (s *CompanyServiceImpl) Delete(ctx context.Context, id string) error {
	companyData, err := s.CompanyRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.CompanyRepository.CountActiveEmployees(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count employees: %w", err)
	}

	// A company with staff is deactivated, never removed.
	if count > 0 {
		companyData.Active = false
		return s.CompanyRepository.Update(ctx, companyData)
	}

	return s.CompanyRepository.Delete(ctx, id)
}
