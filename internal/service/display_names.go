package service

import (
	"context"
	"errors"

	"github.com/bagdasarian/bizdesk/internal/repository"
)

// displayNames выполняет вторичные запросы имен для ответов на чтение.
// Отсутствующая запись дает nil, прочие ошибки хранилища возвращаются.
// Результаты кешируются в пределах одного вызова списка.
type displayNames struct {
	ownerID     string
	clients     repository.ClientRepository
	teamMembers repository.TeamMemberRepository
	projects    repository.ProjectRepository

	clientNames     map[string]*string
	teamMemberNames map[string]*string
	projectNames    map[string]*string
}

func newDisplayNames(
	ownerID string,
	clients repository.ClientRepository,
	teamMembers repository.TeamMemberRepository,
	projects repository.ProjectRepository,
) *displayNames {
	return &displayNames{
		ownerID:         ownerID,
		clients:         clients,
		teamMembers:     teamMembers,
		projects:        projects,
		clientNames:     make(map[string]*string),
		teamMemberNames: make(map[string]*string),
		projectNames:    make(map[string]*string),
	}
}

func (d *displayNames) client(ctx context.Context, id *string) (*string, error) {
	if id == nil || *id == "" || d.clients == nil {
		return nil, nil
	}
	return lookupName(d.clientNames, *id, func() (string, error) {
		c, err := d.clients.GetByID(ctx, d.ownerID, *id)
		if err != nil {
			return "", err
		}
		return c.Name, nil
	})
}

func (d *displayNames) teamMember(ctx context.Context, id *string) (*string, error) {
	if id == nil || *id == "" || d.teamMembers == nil {
		return nil, nil
	}
	return lookupName(d.teamMemberNames, *id, func() (string, error) {
		m, err := d.teamMembers.GetByID(ctx, d.ownerID, *id)
		if err != nil {
			return "", err
		}
		return m.Name, nil
	})
}

func (d *displayNames) project(ctx context.Context, id *string) (*string, error) {
	if id == nil || *id == "" || d.projects == nil {
		return nil, nil
	}
	return lookupName(d.projectNames, *id, func() (string, error) {
		p, err := d.projects.GetByID(ctx, d.ownerID, *id)
		if err != nil {
			return "", err
		}
		return p.Name, nil
	})
}

func lookupName(cache map[string]*string, id string, fetch func() (string, error)) (*string, error) {
	if name, ok := cache[id]; ok {
		return name, nil
	}

	name, err := fetch()
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			cache[id] = nil
			return nil, nil
		}
		return nil, err
	}

	cache[id] = &name
	return &name, nil
}
