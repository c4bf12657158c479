package service

import (
	"context"
	"errors"

	"github.com/shopease/backend/internal/core/domain"
	"github.com/shopease/backend/internal/core/utils"
	"go.uber.org/zap"
)

func (s *Service) RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	exUser, err := s.repo.GetUserByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get user", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if exUser != nil {
		return nil, domain.ErrConflictingData
	}

	if !user.Role.Valid() {
		user.Role = domain.RoleBuyer
	}

	hashed, err := utils.HashPassword(user.Password)
	if err != nil {
		s.logger.Error("Hash password", zap.Error(err))
		return nil, domain.ErrInternal
	}
	user.Password = hashed

	newUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, err
		}
		s.logger.Error("Create user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newUser, nil
}

func (s *Service) LoginUser(ctx context.Context, email string, password string) (string, *domain.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, domain.ErrInternal
	}

	err = utils.ComparePassword(password, user.Password)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(user)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", nil, domain.ErrTokenCreation
	}

	return token, user, nil
}

func (s *Service) ListUsers(ctx context.Context, emailQuery string) ([]*domain.User, error) {
	return s.repo.ListUsers(ctx, emailQuery)
}

func (s *Service) ChangeUserRole(ctx context.Context, userID uint64, role domain.UserRole) error {
	if !role.Valid() {
		return domain.ErrInvalidRole
	}
	return s.repo.UpdateUserRole(ctx, userID, role)
}

func (s *Service) DeleteUser(ctx context.Context, userID uint64) error {
	return s.repo.DeleteUser(ctx, userID)
}
