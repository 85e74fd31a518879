package service

import (
	"github.com/pathforge/pathforge/internal/adapter"
	"github.com/pathforge/pathforge/internal/config"
	"github.com/pathforge/pathforge/internal/logger"
	"github.com/pathforge/pathforge/internal/store"
	"github.com/pathforge/pathforge/internal/validators"
)

type ClientServices struct {
	AuthService ClientAuthService
	Drafts      DraftService
	AutosaveJob AutosaveJob
	Submitter   OnboardingSubmitter
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientOnboarding, logger *logger.Logger) *ClientServices {
	validator := validators.NewCredentialValidator()
	drafts := NewDraftService(localStore.Drafts, cfg.DraftTTL, logger)

	return &ClientServices{
		AuthService: NewClientAuthService(localStore.Credentials, validator, serverAdapter, logger),
		Drafts:      drafts,
		AutosaveJob: NewAutosaveJob(drafts),
		Submitter:   NewOnboardingSubmitter(serverAdapter, drafts, logger),
	}
}
