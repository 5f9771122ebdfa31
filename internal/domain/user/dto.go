package user

import "time"

type UserResponse struct {
	ID             string     `json:"id"`
	EmployeeID     *string    `json:"employee_id,omitempty"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	FullName       string     `json:"full_name"`
	Active         bool       `json:"is_active"`
	IsAdmin        bool       `json:"is_admin"`
	FailedAttempts int        `json:"failed_attempts"`
	Locked         bool       `json:"locked"`
	LockedAt       *time.Time `json:"locked_at,omitempty"`
	CreatedAt      string     `json:"created_at"`
}

func ToUserResponse(u User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		EmployeeID:     u.EmployeeID,
		Username:       u.Username,
		Email:          u.Email,
		FullName:       u.DisplayName(),
		Active:         u.Active,
		IsAdmin:        u.IsAdmin,
		FailedAttempts: u.FailedAttempts,
		Locked:         u.Locked,
		LockedAt:       u.LockedAt,
		CreatedAt:      u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
