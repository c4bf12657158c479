package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopease/backend/internal/adapter/auth"
	"github.com/shopease/backend/internal/adapter/config"
	"github.com/shopease/backend/internal/core/domain"
	"github.com/shopease/backend/internal/core/port/mock"
	"github.com/shopease/backend/internal/core/service"
	"github.com/shopease/backend/internal/core/utils"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestService_RegisterUser(t *testing.T) {
	hashedPass, _ := utils.HashPassword("test")
	user := domain.User{
		ID:       1,
		Email:    "buyer@example.com",
		Password: hashedPass,
		Name:     "Test Buyer",
		Role:     domain.RoleBuyer,
	}

	tests := []struct {
		name      string
		user      domain.User
		mock      prepareMocks
		expError  error
		expResult *domain.User
	}{
		{
			name: "register good",
			user: domain.User{Email: user.Email, Password: "test", Name: user.Name, Role: domain.RoleBuyer},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(nil, domain.ErrDataNotFound)
				repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(&user, nil)
			},
			expResult: &user,
		},
		{
			name: "register defaults bad role to buyer",
			user: domain.User{Email: user.Email, Password: "test", Role: domain.UserRole("ROOT")},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(nil, domain.ErrDataNotFound)
				repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
						assert.Equal(t, domain.RoleBuyer, u.Role)
						return &user, nil
					})
			},
			expResult: &user,
		},
		{
			name: "register already exists",
			user: domain.User{Email: user.Email, Password: "test"},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(&user, nil)
			},
			expError: domain.ErrConflictingData,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newTestService(t, test.mock)

			result, err := s.RegisterUser(context.Background(), &test.user)

			assert.Equal(t, test.expResult, result)
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestService_LoginUser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	hashedPass, _ := utils.HashPassword("test")
	user := domain.User{
		ID:       1,
		Email:    "seller@example.com",
		Password: hashedPass,
		Role:     domain.RoleSeller,
	}

	tests := []struct {
		name     string
		email    string
		password string
		mock     prepareMocks
		expError error
	}{
		{
			name:     "login good",
			email:    user.Email,
			password: "test",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(&user, nil)
			},
		},
		{
			name:     "password bad",
			email:    user.Email,
			password: "hacker",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(&user, nil)
			},
			expError: domain.ErrInvalidCredentials,
		},
		{
			name:     "login bad",
			email:    "hacker@example.com",
			password: "test",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "hacker@example.com").Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrInvalidCredentials,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts, err := auth.New(&config.Auth{TokenDuration: "24h"})
			assert.NoError(t, err)

			test.mock(repo)

			s, err := service.NewService(repo, ts, logger)
			assert.NoError(t, err)

			token, loggedIn, err := s.LoginUser(context.Background(), test.email, test.password)
			assert.Equal(t, test.expError, err)

			if test.expError != nil {
				assert.Empty(t, token)
				assert.Nil(t, loggedIn)
				return
			}

			assert.Equal(t, &user, loggedIn)
			payload, err := ts.VerifyToken(token)
			assert.NoError(t, err)
			assert.Equal(t, user.Email, payload.Email)
			assert.Equal(t, user.Role, payload.Role)
		})
	}
}

func TestService_ChangeUserRole(t *testing.T) {
	tests := []struct {
		name     string
		role     domain.UserRole
		mock     prepareMocks
		expError error
	}{
		{
			name: "promote to seller",
			role: domain.RoleSeller,
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().UpdateUserRole(gomock.Any(), uint64(1), domain.RoleSeller).Return(nil)
			},
		},
		{
			name:     "unknown role",
			role:     domain.UserRole("ROOT"),
			expError: domain.ErrInvalidRole,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newTestService(t, test.mock)

			err := s.ChangeUserRole(context.Background(), 1, test.role)
			assert.Equal(t, test.expError, err)
		})
	}
}
