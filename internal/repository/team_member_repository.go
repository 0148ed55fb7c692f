package repository

import (
	"context"

	"github.com/bagdasarian/bizdesk/internal/domain"
)

type TeamMemberRepository interface {
	Create(ctx context.Context, member *domain.TeamMember) error
	GetByID(ctx context.Context, ownerID, id string) (*domain.TeamMember, error)
	List(ctx context.Context, ownerID string) ([]*domain.TeamMember, error)
	Update(ctx context.Context, member *domain.TeamMember) error
	Delete(ctx context.Context, ownerID, id string) error
}
