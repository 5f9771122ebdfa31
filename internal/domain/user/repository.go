package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	// GetByLogin matches username or email, case-insensitively.
	GetByLogin(ctx context.Context, login string) (User, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (User, error)
	Update(ctx context.Context, user User) error
	// RecordFailedAttempt increments the failed-attempt counter and returns
	// the new value. Locking is decided by the caller.
	RecordFailedAttempt(ctx context.Context, id string) (int, error)
	ResetFailedAttempts(ctx context.Context, id string) error
	Lock(ctx context.Context, id string) error
	Unlock(ctx context.Context, id string) error
}
