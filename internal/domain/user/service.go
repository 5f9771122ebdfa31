package user

import "context"

type UserService interface {
	// Unlock clears a locked account's lockout state and failed-attempt
	// counter. Administrative operation; locking happens automatically.
	Unlock(ctx context.Context, id string) (UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
}
