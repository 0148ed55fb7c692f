package service

import (
	"context"
	"fmt"

	"github.com/bagdasarian/bizdesk/internal/domain"
	"github.com/bagdasarian/bizdesk/internal/repository"
)

const entityTeamMember = "Team member"

type teamMemberService struct {
	teamMemberRepo repository.TeamMemberRepository
}

// NewTeamMemberService создает новый экземпляр TeamMemberService
func NewTeamMemberService(teamMemberRepo repository.TeamMemberRepository) TeamMemberService {
	return &teamMemberService{teamMemberRepo: teamMemberRepo}
}

func (s *teamMemberService) Create(ctx context.Context, ownerID string, fields domain.TeamMemberFields) (*domain.TeamMember, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	ts := now()
	member := &domain.TeamMember{
		ID:               newID(),
		OwnerID:          ownerID,
		TeamMemberFields: fields,
		CreatedAt:        ts,
		UpdatedAt:        ts,
	}

	if err := s.teamMemberRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}

	return member, nil
}

func (s *teamMemberService) List(ctx context.Context, ownerID string) ([]*domain.TeamMember, error) {
	return s.teamMemberRepo.List(ctx, ownerID)
}

func (s *teamMemberService) Get(ctx context.Context, ownerID, id string) (*domain.TeamMember, error) {
	member, err := s.teamMemberRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, notFoundAs(err, entityTeamMember)
	}
	return member, nil
}

func (s *teamMemberService) Update(ctx context.Context, ownerID, id string, fields domain.TeamMemberFields) (*domain.TeamMember, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	member := &domain.TeamMember{
		ID:               id,
		OwnerID:          ownerID,
		TeamMemberFields: fields,
		UpdatedAt:        now(),
	}

	if err := s.teamMemberRepo.Update(ctx, member); err != nil {
		return nil, notFoundAs(err, entityTeamMember)
	}

	return member, nil
}

func (s *teamMemberService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.teamMemberRepo.Delete(ctx, ownerID, id); err != nil {
		return notFoundAs(err, entityTeamMember)
	}
	return nil
}
