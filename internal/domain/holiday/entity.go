package holiday

import "time"

type Holiday struct {
	ID          string
	Name        string
	Date        time.Time
	Kind        Kind
	Description *string
	Mandatory   bool
	Global      bool
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// CompanyIDs lists the companies a non-global holiday is scoped to.
	CompanyIDs []string
}

type Kind string

const (
	KindNational  Kind = "national"
	KindLocal     Kind = "local"
	KindCompany   Kind = "company"
	KindReligious Kind = "religious"
)

var Kinds = []string{
	string(KindNational), string(KindLocal), string(KindCompany), string(KindReligious),
}

// KindLabel maps a holiday kind to its display string.
func KindLabel(k Kind) string {
	switch k {
	case KindNational:
		return "National holiday"
	case KindLocal:
		return "Local holiday"
	case KindCompany:
		return "Company day"
	case KindReligious:
		return "Religious holiday"
	default:
		return string(k)
	}
}

// AppliesTo reports whether the holiday applies to the given company: global
// holidays apply everywhere, scoped ones only to their linked companies.
func (h Holiday) AppliesTo(companyID string) bool {
	if !h.Active {
		return false
	}
	if h.Global {
		return true
	}
	for _, id := range h.CompanyIDs {
		if id == companyID {
			return true
		}
	}
	return false
}
