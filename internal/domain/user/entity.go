package user

import "time"

type User struct {
	ID             string
	EmployeeID     *string
	Username       string
	Email          string
	PasswordHash   string
	FirstName      string
	LastName       string
	Active         bool
	IsAdmin        bool
	FailedAttempts int
	Locked         bool
	LockedAt       *time.Time
	LastAccessIP   *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DisplayName falls back to the username when no name fields are set.
func (u User) DisplayName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		return u.Username
	}
	return name
}
