package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                string
	CompanyID         string
	DepartmentID      string
	PositionID        string
	FirstNames        string
	LastNames         string
	DNI               string
	BirthDate         time.Time
	Phone             *string
	PersonalEmail     *string
	Address           *string
	EmployeeCode      string
	HireDate          time.Time
	Salary            decimal.Decimal
	ShiftType         ShiftType
	RestDay           RestDay
	Active            bool
	TerminationDate   *time.Time
	TerminationReason *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Populated by list/detail queries
	CompanyName    *string
	DepartmentName *string
	PositionName   *string
}

// FullName returns the employee display name.
func (e Employee) FullName() string {
	return e.FirstNames + " " + e.LastNames
}

type ShiftType string

const (
	Shift1 ShiftType = "shift_1"
	Shift2 ShiftType = "shift_2"
	Shift3 ShiftType = "shift_3"
	Shift4 ShiftType = "shift_4"
)

var ShiftTypes = []string{
	string(Shift1), string(Shift2), string(Shift3), string(Shift4),
}

type RestDay string

const (
	RestMonday    RestDay = "monday"
	RestTuesday   RestDay = "tuesday"
	RestWednesday RestDay = "wednesday"
	RestThursday  RestDay = "thursday"
	RestFriday    RestDay = "friday"
	RestSaturday  RestDay = "saturday"
	RestSunday    RestDay = "sunday"
)

var RestDays = []string{
	string(RestMonday), string(RestTuesday), string(RestWednesday),
	string(RestThursday), string(RestFriday), string(RestSaturday),
	string(RestSunday),
}

// ShiftTypeLabel maps a shift type to its display string.
func ShiftTypeLabel(s ShiftType) string {
	switch s {
	case Shift1:
		return "Shift 1"
	case Shift2:
		return "Shift 2"
	case Shift3:
		return "Shift 3"
	case Shift4:
		return "Shift 4"
	default:
		return string(s)
	}
}

// RestDayLabel maps a rest day to its display string.
func RestDayLabel(d RestDay) string {
	switch d {
	case RestMonday:
		return "Monday"
	case RestTuesday:
		return "Tuesday"
	case RestWednesday:
		return "Wednesday"
	case RestThursday:
		return "Thursday"
	case RestFriday:
		return "Friday"
	case RestSaturday:
		return "Saturday"
	case RestSunday:
		return "Sunday"
	default:
		return string(d)
	}
}

// WorksOn reports whether the employee works on the given date, i.e. the
// date's weekday is not the employee's rest day.
func (e Employee) WorksOn(date time.Time) bool {
	weekdays := map[time.Weekday]RestDay{
		time.Monday:    RestMonday,
		time.Tuesday:   RestTuesday,
		time.Wednesday: RestWednesday,
		time.Thursday:  RestThursday,
		time.Friday:    RestFriday,
		time.Saturday:  RestSaturday,
		time.Sunday:    RestSunday,
	}
	return weekdays[date.Weekday()] != e.RestDay
}
