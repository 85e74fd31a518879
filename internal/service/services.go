package service

import (
	"github.com/pathforge/pathforge/internal/config"
	"github.com/pathforge/pathforge/internal/logger"
	"github.com/pathforge/pathforge/internal/store"
)

type Services struct {
	AuthService       AuthService
	OnboardingService OnboardingService
	PathService       PathService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(storages.Users, cfg.Auth, logger),
		OnboardingService: NewOnboardingService(storages.Profiles, logger),
		PathService:       NewPathService(storages.Profiles, storages.Paths, logger),
	}
}
