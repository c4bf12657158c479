package service

import (
	"github.com/shopease/backend/internal/core/port"
	"go.uber.org/zap"
)

type Service struct {
	repo         port.Repository
	tokenService port.TokenService
	logger       *zap.Logger
}

func NewService(repo port.Repository, tokenService port.TokenService, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:         repo,
		tokenService: tokenService,
		logger:       logger,
	}, nil
}
