package repository

import (
	"context"

	"github.com/bagdasarian/bizdesk/internal/domain"
)

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, ownerID, id string) (*domain.Client, error)
	List(ctx context.Context, ownerID string) ([]*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, ownerID, id string) error
}
