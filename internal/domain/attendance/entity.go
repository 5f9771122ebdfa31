package attendance

import "time"

// Record is a single clock-in/clock-out event. Records are immutable once
// created; only the administrative edit/delete surface may change them.
type Record struct {
	ID           string
	EmployeeID   string
	RecordedAt   time.Time
	Kind         Kind
	Method       Method
	Latitude     *float64
	Longitude    *float64
	DeviceInfo   *string
	RegisteredBy *string
	Notes        *string
	CreatedAt    time.Time

	// Populated by list/detail queries
	EmployeeName *string
	EmployeeDNI  *string
	CompanyID    *string
	CompanyName  *string
}

type Kind string

const (
	KindEntry Kind = "entry"
	KindExit  Kind = "exit"
)

var Kinds = []string{string(KindEntry), string(KindExit)}

type Method string

const (
	MethodQRMobile       Method = "qr_mobile"
	MethodManualSecurity Method = "manual_security"
	MethodWebAdmin       Method = "web_admin"
)

var Methods = []string{
	string(MethodQRMobile), string(MethodManualSecurity), string(MethodWebAdmin),
}

// KindLabel maps a record kind to its display string.
func KindLabel(k Kind) string {
	switch k {
	case KindEntry:
		return "Entry"
	case KindExit:
		return "Exit"
	default:
		return string(k)
	}
}

// MethodLabel maps a record method to its display string.
func MethodLabel(m Method) string {
	switch m {
	case MethodQRMobile:
		return "Mobile QR scan"
	case MethodManualSecurity:
		return "Manual entry by security"
	case MethodWebAdmin:
		return "Web admin"
	default:
		return string(m)
	}
}

// NextKind infers the kind of the next mark from the latest record of the
// day. No record, or a day ending on an exit, yields an entry; a day ending
// on an entry yields an exit. The per-day sequence therefore strictly
// alternates entry/exit with no state stored beyond the record history.
func NextKind(lastOfDay *Record) Kind {
	if lastOfDay == nil || lastOfDay.Kind == KindExit {
		return KindEntry
	}
	return KindExit
}

// QRCode identifies a physical marking point owned by a company. It is never
// owned by an employee.
type QRCode struct {
	ID        string
	CompanyID string
	Label     string
	Code      string
	Location  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Populated by list/detail queries
	CompanyName *string
}
