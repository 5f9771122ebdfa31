package position

import (
	"time"

	"github.com/shopspring/decimal"
)

type Position struct {
	ID           string
	CompanyID    string
	DepartmentID string
	ReportsToID  *string
	Name         string
	Code         string
	Description  *string
	SalaryMin    *decimal.Decimal
	SalaryMax    *decimal.Decimal
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Populated by list/detail queries
	DepartmentName *string
	Level          int
	ActiveHolders  int
}
