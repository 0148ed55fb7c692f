package service

import (
	"context"

	"github.com/bagdasarian/bizdesk/internal/domain"
)

type ProjectService interface {
	// Create проверяет, что клиент существует у того же владельца.
	// Если клиента нет, возвращается "Client not found" и ничего не сохраняется.
	Create(ctx context.Context, ownerID string, fields domain.ProjectFields) (*domain.Project, error)
	List(ctx context.Context, ownerID string) ([]*domain.ProjectDetails, error)
	Get(ctx context.Context, ownerID, id string) (*domain.ProjectDetails, error)
	Update(ctx context.Context, ownerID, id string, fields domain.ProjectFields) (*domain.Project, error)
	Delete(ctx context.Context, ownerID, id string) error
}
