package user

import (
	"context"

	"github.com/asistpro/asistencia-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{UserRepository: userRepository}
}

// Unlock implements user.UserService.
func (s *UserServiceImpl) Unlock(ctx context.Context, id string) (user.UserResponse, error) {
	userData, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	if userData.Locked {
		if err := s.UserRepository.Unlock(ctx, userData.ID); err != nil {
			return user.UserResponse{}, err
		}
	}

	return s.GetByID(ctx, id)
}

// GetByID implements user.UserService.
func (s *UserServiceImpl) GetByID(ctx context.Context, id string) (user.UserResponse, error) {
	userData, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToUserResponse(userData), nil
}
