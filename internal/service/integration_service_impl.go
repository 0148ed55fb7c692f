package service

import (
	"context"
	"fmt"

	"github.com/bagdasarian/bizdesk/internal/domain"
	"github.com/bagdasarian/bizdesk/internal/repository"
)

const entityIntegration = "Integration"

type integrationService struct {
	integrationRepo repository.IntegrationRepository
}

// NewIntegrationService создает новый экземпляр IntegrationService
func NewIntegrationService(integrationRepo repository.IntegrationRepository) IntegrationService {
	return &integrationService{integrationRepo: integrationRepo}
}

func (s *integrationService) Connect(
	ctx context.Context,
	ownerID string,
	integrationType domain.IntegrationType,
	credentials, settings map[string]any,
) (*domain.Integration, error) {
	if !integrationType.Valid() {
		return nil, domain.NewValidationError("invalid integration_type %q", integrationType)
	}

	if credentials == nil {
		credentials = map[string]any{}
	}
	if settings == nil {
		settings = map[string]any{}
	}

	ts := now()
	integration := &domain.Integration{
		ID:              newID(),
		OwnerID:         ownerID,
		IntegrationType: integrationType,
		IsConnected:     true,
		Credentials:     credentials,
		Settings:        settings,
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}

	if err := s.integrationRepo.Upsert(ctx, integration); err != nil {
		return nil, fmt.Errorf("failed to save integration: %w", err)
	}

	return integration, nil
}

func (s *integrationService) List(ctx context.Context, ownerID string) ([]*domain.Integration, error) {
	return s.integrationRepo.List(ctx, ownerID)
}

func (s *integrationService) Disconnect(ctx context.Context, ownerID string, integrationType domain.IntegrationType) error {
	if !integrationType.Valid() {
		return domain.NewValidationError("invalid integration_type %q", integrationType)
	}

	if err := s.integrationRepo.SetConnected(ctx, ownerID, integrationType, false); err != nil {
		return notFoundAs(err, entityIntegration)
	}
	return nil
}
