package service

import (
	"context"

	"github.com/bagdasarian/bizdesk/internal/domain"
)

type IntegrationService interface {
	// Connect создает интеграцию или заменяет учетные данные и настройки существующей.
	// Запись всегда помечается подключенной.
	Connect(ctx context.Context, ownerID string, integrationType domain.IntegrationType, credentials, settings map[string]any) (*domain.Integration, error)
	List(ctx context.Context, ownerID string) ([]*domain.Integration, error)
	// Disconnect снимает флаг подключения, запись не удаляется
	Disconnect(ctx context.Context, ownerID string, integrationType domain.IntegrationType) error
}
