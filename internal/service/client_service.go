package service

import (
	"context"

	"github.com/bagdasarian/bizdesk/internal/domain"
)

type ClientService interface {
	Create(ctx context.Context, ownerID string, fields domain.ClientFields) (*domain.Client, error)
	List(ctx context.Context, ownerID string) ([]*domain.Client, error)
	Get(ctx context.Context, ownerID, id string) (*domain.Client, error)
	// Update полностью заменяет редактируемые поля клиента
	Update(ctx context.Context, ownerID, id string, fields domain.ClientFields) (*domain.Client, error)
	// Delete удаляет клиента без каскада: проекты и платежи сохраняют ссылку
	Delete(ctx context.Context, ownerID, id string) error
}
