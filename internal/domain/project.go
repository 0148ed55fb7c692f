package domain

import (
	"strings"
	"time"
)

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusCompleted, ProjectStatusOnHold, ProjectStatusCancelled:
		return true
	}
	return false
}

// ProjectFields редактируемые поля проекта. Пустой Status означает
// "по умолчанию": active при создании, текущее значение при обновлении
type ProjectFields struct {
	Name        string
	Description *string
	ClientID    string
	Status      ProjectStatus
	Budget      *float64
	StartDate   *time.Time
	EndDate     *time.Time
}

type Project struct {
	ID      string
	OwnerID string
	ProjectFields
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProjectDetails проект с необязательным отображаемым именем клиента
type ProjectDetails struct {
	*Project
	ClientName *string
}

func (f ProjectFields) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return NewValidationError("name is required")
	}
	if strings.TrimSpace(f.ClientID) == "" {
		return NewValidationError("client_id is required")
	}
	if f.Status != "" && !f.Status.Valid() {
		return NewValidationError("invalid project status %q", f.Status)
	}
	return nil
}
