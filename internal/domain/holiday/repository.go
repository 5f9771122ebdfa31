package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, holiday Holiday) (Holiday, error)
	GetByID(ctx context.Context, id string) (Holiday, error)
	List(ctx context.Context, filter ListFilter) ([]Holiday, error)
	Update(ctx context.Context, holiday Holiday) error
	Delete(ctx context.Context, id string) error
	// ReplaceCompanies rewrites the company scoping of a holiday.
	ReplaceCompanies(ctx context.Context, holidayID string, companyIDs []string) error
	// ListForCompany returns active holidays that are global or explicitly
	// linked to the company, optionally bounded by date.
	ListForCompany(ctx context.Context, companyID string, start, end *time.Time) ([]Holiday, error)
}

type ListFilter struct {
	Year      int
	Month     int
	Kind      string
	Global    *bool
	Active    *bool
	Mandatory *bool
}
