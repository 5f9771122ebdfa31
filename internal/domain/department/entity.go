package department

import "time"

type Department struct {
	ID          string
	CompanyID   string
	ParentID    *string
	Name        string
	Code        string
	Description *string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Populated by list/detail queries
	CompanyName     *string
	Level           int
	ActiveEmployees int
}
