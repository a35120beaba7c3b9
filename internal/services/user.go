package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
	"gearguard/pkg/types"
	"gearguard/pkg/utils"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context, filter types.Filter) ([]dto.UserDTO, uint64, error)
	FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error)
	UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error)
	DeleteUser(ctx context.Context, id uint64) error
}

type UserService struct {
	userRepository repositories.UserRepositoryInterface
	logger         *zap.Logger
}

func NewUserService(userRepository repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{userRepository: userRepository, logger: logger}
}

func (s *UserService) GetUsers(ctx context.Context, filter types.Filter) ([]dto.UserDTO, uint64, error) {
	users, total, err := s.userRepository.GetUsers(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		out = append(out, userToDTO(&users[i]))
	}
	return out, total, nil
}

func (s *UserService) FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	u, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	res := userToDTO(u)
	return &res, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error) {
	u, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.Name != nil {
		u.Name = *payload.Name
	}
	if payload.Email != nil {
		u.Email = *payload.Email
	}
	if payload.Role != nil {
		u.Role = constants.UserRole(*payload.Role)
	}
	if payload.TeamID != nil {
		u.TeamID = null.Uint64From(*payload.TeamID)
	}
	if payload.Password != nil {
		hashed, err := utils.HashPassword(*payload.Password)
		if err != nil {
			return nil, err
		}
		u.Password = hashed
	}

	updated, err := s.userRepository.UpdateUser(ctx, *u)
	if err != nil {
		return nil, err
	}
	res := userToDTO(updated)
	return &res, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.Uint64("id", id))
	return nil
}
