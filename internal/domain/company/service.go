package company

import "context"

type CompanyService interface {
	Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	GetByID(ctx context.Context, id string) (CompanyResponse, error)
	List(ctx context.Context, onlyActive bool) ([]CompanyResponse, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) (CompanyResponse, error)
	// Delete deactivates a company with active employees instead of removing
	// it; only an empty company is physically deleted.
	Delete(ctx context.Context, id string) error
}
