package service

import (
	"context"

	"github.com/bagdasarian/bizdesk/internal/domain"
)

type TeamMemberService interface {
	Create(ctx context.Context, ownerID string, fields domain.TeamMemberFields) (*domain.TeamMember, error)
	List(ctx context.Context, ownerID string) ([]*domain.TeamMember, error)
	Get(ctx context.Context, ownerID, id string) (*domain.TeamMember, error)
	Update(ctx context.Context, ownerID, id string, fields domain.TeamMemberFields) (*domain.TeamMember, error)
	Delete(ctx context.Context, ownerID, id string) error
}
