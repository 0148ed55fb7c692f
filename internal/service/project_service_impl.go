package service

import (
	"context"
	"fmt"

	"github.com/bagdasarian/bizdesk/internal/domain"
	"github.com/bagdasarian/bizdesk/internal/repository"
)

const entityProject = "Project"

type projectService struct {
	projectRepo repository.ProjectRepository
	clientRepo  repository.ClientRepository
}

// NewProjectService создает новый экземпляр ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, clientRepo repository.ClientRepository) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		clientRepo:  clientRepo,
	}
}

func (s *projectService) Create(ctx context.Context, ownerID string, fields domain.ProjectFields) (*domain.Project, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureClient(ctx, ownerID, fields.ClientID); err != nil {
		return nil, err
	}

	if fields.Status == "" {
		fields.Status = domain.ProjectStatusActive
	}

	ts := now()
	project := &domain.Project{
		ID:            newID(),
		OwnerID:       ownerID,
		ProjectFields: fields,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

func (s *projectService) List(ctx context.Context, ownerID string) ([]*domain.ProjectDetails, error) {
	projects, err := s.projectRepo.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	names := newDisplayNames(ownerID, s.clientRepo, nil, nil)
	result := make([]*domain.ProjectDetails, 0, len(projects))
	for _, p := range projects {
		details, err := s.withClientName(ctx, names, p)
		if err != nil {
			return nil, err
		}
		result = append(result, details)
	}

	return result, nil
}

func (s *projectService) Get(ctx context.Context, ownerID, id string) (*domain.ProjectDetails, error) {
	project, err := s.projectRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, notFoundAs(err, entityProject)
	}

	return s.withClientName(ctx, newDisplayNames(ownerID, s.clientRepo, nil, nil), project)
}

// Update без статуса в теле сохраняет текущий статус проекта
func (s *projectService) Update(ctx context.Context, ownerID, id string, fields domain.ProjectFields) (*domain.Project, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	current, err := s.projectRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, notFoundAs(err, entityProject)
	}
	if err := s.ensureClient(ctx, ownerID, fields.ClientID); err != nil {
		return nil, err
	}

	if fields.Status == "" {
		fields.Status = current.Status
	}

	project := &domain.Project{
		ID:            id,
		OwnerID:       ownerID,
		ProjectFields: fields,
		UpdatedAt:     now(),
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, notFoundAs(err, entityProject)
	}

	return project, nil
}

func (s *projectService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.projectRepo.Delete(ctx, ownerID, id); err != nil {
		return notFoundAs(err, entityProject)
	}
	return nil
}

func (s *projectService) ensureClient(ctx context.Context, ownerID, clientID string) error {
	if _, err := s.clientRepo.GetByID(ctx, ownerID, clientID); err != nil {
		return notFoundAs(err, entityClient)
	}
	return nil
}

func (s *projectService) withClientName(ctx context.Context, names *displayNames, p *domain.Project) (*domain.ProjectDetails, error) {
	clientName, err := names.client(ctx, &p.ClientID)
	if err != nil {
		return nil, fmt.Errorf("resolve client name: %w", err)
	}
	return &domain.ProjectDetails{Project: p, ClientName: clientName}, nil
}
