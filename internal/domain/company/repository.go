package company

import "context"

type CompanyRepository interface {
	Create(ctx context.Context, company Company) (Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
	GetByRUC(ctx context.Context, ruc string) (Company, error)
	List(ctx context.Context, onlyActive bool) ([]Company, error)
	Update(ctx context.Context, company Company) error
	Delete(ctx context.Context, id string) error
	CountActiveEmployees(ctx context.Context, companyID string) (int, error)
}
