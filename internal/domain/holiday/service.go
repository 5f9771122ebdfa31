package holiday

import "context"

type HolidayService interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	GetByID(ctx context.Context, id string) (HolidayResponse, error)
	List(ctx context.Context, filter ListFilter) ([]HolidayResponse, error)
	Update(ctx context.Context, id string, req UpdateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error
	// ForCompany implements the applicability filter: global holidays plus
	// the ones explicitly scoped to the company.
	ForCompany(ctx context.Context, companyID string, startDate, endDate string) ([]HolidayResponse, error)
}
