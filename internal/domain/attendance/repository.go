package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. The
// marking workflow only ever inserts; updates and deletes exist for the
// administrative surface.
type AttendanceRepository interface {
	Create(ctx context.Context, record Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	Update(ctx context.Context, record Record) error
	Delete(ctx context.Context, id string) error

	// List retrieves records with filters and pagination (admin view).
	List(ctx context.Context, filter ListFilter) ([]Record, int64, error)

	// ListByEmployee retrieves an employee's own records, newest first.
	ListByEmployee(ctx context.Context, employeeID string, filter MyRecordsFilter) ([]Record, error)

	// GetLastForDate returns the employee's most recent record on the given
	// local calendar date, or nil when the day has none. Kind inference for
	// the next mark derives from this row alone.
	GetLastForDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// ListForDate returns all of the employee's records on the given local
	// calendar date ordered by timestamp ascending.
	ListForDate(ctx context.Context, employeeID string, date time.Time) ([]Record, error)

	// HasRecentMark reports whether the employee has any record at or after
	// the given instant, regardless of QR code or method.
	HasRecentMark(ctx context.Context, employeeID string, since time.Time) (bool, error)

	// Statistics computes the reporting aggregates for the given filter.
	Statistics(ctx context.Context, filter StatisticsFilter) (Statistics, error)
}

type ListFilter struct {
	EmployeeID string
	CompanyID  string
	Kind       string
	Method     string
	StartDate  *time.Time
	EndDate    *time.Time
	Search     string
	Page       int
	Limit      int
}

type MyRecordsFilter struct {
	Kind      string
	StartDate *time.Time
	EndDate   *time.Time
}

type StatisticsFilter struct {
	EmployeeID string
	CompanyID  string
	StartDate  *time.Time
	EndDate    *time.Time
}

// Statistics is the raw aggregate produced by the reporting query.
type Statistics struct {
	Total        int64
	Entries      int64
	Exits        int64
	PerDay       []DayCount
	PerMethod    []MethodCount
	TopEmployees []EmployeeCount
}

type DayCount struct {
	Date    time.Time
	Total   int64
	Entries int64
	Exits   int64
}

type MethodCount struct {
	Method Method
	Total  int64
}

type EmployeeCount struct {
	EmployeeID string
	FullName   string
	Total      int64
}

// QRCodeRepository administers a company's marking points.
type QRCodeRepository interface {
	Create(ctx context.Context, qr QRCode) (QRCode, error)
	GetByID(ctx context.Context, id string) (QRCode, error)
	// GetByCode looks a QR code up by its unique code string regardless of
	// its active flag; the caller decides what inactive means.
	GetByCode(ctx context.Context, code string) (QRCode, error)
	List(ctx context.Context, companyID string, onlyActive bool) ([]QRCode, error)
	ListActiveByCompany(ctx context.Context, companyID string) ([]QRCode, error)
	Update(ctx context.Context, qr QRCode) error
	Delete(ctx context.Context, id string) error
}
