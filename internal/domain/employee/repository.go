package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, employee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByDNI(ctx context.Context, dni string) (Employee, error)
	// GetByUserID resolves the employee linked to a user account.
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	List(ctx context.Context, filter ListFilter) ([]Employee, int64, error)
	Update(ctx context.Context, employee Employee) error
	Delete(ctx context.Context, id string) error
}

type ListFilter struct {
	CompanyID    string
	DepartmentID string
	PositionID   string
	OnlyActive   bool
	Search       string
	Page         int
	Limit        int
}
