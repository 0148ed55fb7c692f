package service

import (
	"context"
	"fmt"

	"github.com/bagdasarian/bizdesk/internal/domain"
	"github.com/bagdasarian/bizdesk/internal/repository"
)

const entityClient = "Client"

type clientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService создает новый экземпляр ClientService
func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) Create(ctx context.Context, ownerID string, fields domain.ClientFields) (*domain.Client, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	ts := now()
	client := &domain.Client{
		ID:           newID(),
		OwnerID:      ownerID,
		ClientFields: fields,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

func (s *clientService) List(ctx context.Context, ownerID string) ([]*domain.Client, error) {
	return s.clientRepo.List(ctx, ownerID)
}

func (s *clientService) Get(ctx context.Context, ownerID, id string) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, notFoundAs(err, entityClient)
	}
	return client, nil
}

func (s *clientService) Update(ctx context.Context, ownerID, id string, fields domain.ClientFields) (*domain.Client, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	client := &domain.Client{
		ID:           id,
		OwnerID:      ownerID,
		ClientFields: fields,
		UpdatedAt:    now(),
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, notFoundAs(err, entityClient)
	}

	return client, nil
}

func (s *clientService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.clientRepo.Delete(ctx, ownerID, id); err != nil {
		return notFoundAs(err, entityClient)
	}
	return nil
}
