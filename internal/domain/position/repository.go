package position

import "context"

type PositionRepository interface {
	Create(ctx context.Context, position Position) (Position, error)
	GetByID(ctx context.Context, id string) (Position, error)
	GetByCode(ctx context.Context, departmentID string, code string) (Position, error)
	List(ctx context.Context, companyID string, departmentID string, onlyActive bool) ([]Position, error)
	ListSubordinates(ctx context.Context, reportsToID string) ([]Position, error)
	Update(ctx context.Context, position Position) error
	Delete(ctx context.Context, id string) error
	CountActiveHolders(ctx context.Context, positionID string) (int, error)
}
