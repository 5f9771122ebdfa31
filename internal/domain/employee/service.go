package employee

import "context"

type EmployeeService interface {
	// Register creates an employee and its linked account atomically. The
	// account username is the employee's DNI.
	Register(ctx context.Context, req RegisterEmployeeRequest) (RegisterEmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, filter ListFilter) ([]EmployeeResponse, int64, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}
