package company

import "time"

type Company struct {
	ID        string
	LegalName string
	RUC       string
	Address   string
	Phone     *string
	Email     *string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Populated by list/detail queries
	ActiveEmployees int
}
