package repository

import (
	"context"

	"github.com/bagdasarian/bizdesk/internal/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, ownerID, id string) (*domain.Project, error)
	List(ctx context.Context, ownerID string) ([]*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, ownerID, id string) error
}
