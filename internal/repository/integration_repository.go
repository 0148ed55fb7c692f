package repository

import (
	"context"

	"github.com/bagdasarian/bizdesk/internal/domain"
)

type IntegrationRepository interface {
	// Upsert создает запись или заменяет is_connected, credentials и settings
	// у существующей записи того же типа
	Upsert(ctx context.Context, integration *domain.Integration) error
	List(ctx context.Context, ownerID string) ([]*domain.Integration, error)
	SetConnected(ctx context.Context, ownerID string, integrationType domain.IntegrationType, connected bool) error
}
