package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, department Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	GetByCode(ctx context.Context, companyID string, code string) (Department, error)
	List(ctx context.Context, companyID string, onlyActive bool) ([]Department, error)
	ListChildren(ctx context.Context, parentID string) ([]Department, error)
	Update(ctx context.Context, department Department) error
	Delete(ctx context.Context, id string) error
	CountActiveEmployees(ctx context.Context, departmentID string) (int, error)
}
