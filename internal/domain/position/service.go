package position

import "context"

type PositionService interface {
	Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error)
	GetByID(ctx context.Context, id string) (PositionResponse, error)
	List(ctx context.Context, companyID string, departmentID string, onlyActive bool) ([]PositionResponse, error)
	// Subordinates returns the active positions reporting directly to one.
	Subordinates(ctx context.Context, id string) ([]PositionResponse, error)
	Update(ctx context.Context, id string, req UpdatePositionRequest) (PositionResponse, error)
	Delete(ctx context.Context, id string) error
}
