package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bagdasarian/bizdesk/internal/domain"
	"github.com/bagdasarian/bizdesk/internal/repository"
)

type projectRepository struct {
	executor DBExecutor
}

func NewProjectRepository(db *sql.DB) *projectRepository {
	return &projectRepository{executor: db}
}

const projectColumns = `id, owner_id, name, description, client_id, status, budget, start_date, end_date, created_at, updated_at`

func scanProject(row rowScanner) (*domain.Project, error) {
	project := &domain.Project{}
	var description sql.NullString
	var budget sql.NullFloat64
	var startDate, endDate sql.NullTime
	var status string
	err := row.Scan(
		&project.ID,
		&project.OwnerID,
		&project.Name,
		&description,
		&project.ClientID,
		&status,
		&budget,
		&startDate,
		&endDate,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	project.Description = stringPtr(description)
	project.Status = domain.ProjectStatus(status)
	project.Budget = floatPtr(budget)
	project.StartDate = timePtr(startDate)
	project.EndDate = timePtr(endDate)
	return project, nil
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO projects (id, owner_id, name, description, client_id, status, budget, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.executor.ExecContext(
		ctx,
		query,
		project.ID,
		project.OwnerID,
		project.Name,
		project.Description,
		project.ClientID,
		string(project.Status),
		project.Budget,
		project.StartDate,
		project.EndDate,
		project.CreatedAt,
		project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}

	return nil
}

func (r *projectRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE owner_id = $1 AND id = $2`

	project, err := scanProject(r.executor.QueryRowContext(ctx, query, ownerID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return project, nil
}

func (r *projectRepository) List(ctx context.Context, ownerID string) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE owner_id = $1 ORDER BY created_at, pk`

	rows, err := r.executor.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]*domain.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	query := `
		UPDATE projects
		SET name = $3, description = $4, client_id = $5, status = $6, budget = $7,
			start_date = $8, end_date = $9,
			updated_at = GREATEST($10, updated_at + interval '1 microsecond')
		WHERE owner_id = $1 AND id = $2
		RETURNING created_at, updated_at
	`

	var createdAt, updatedAt time.Time
	err := r.executor.QueryRowContext(
		ctx,
		query,
		project.OwnerID,
		project.ID,
		project.Name,
		project.Description,
		project.ClientID,
		string(project.Status),
		project.Budget,
		project.StartDate,
		project.EndDate,
		project.UpdatedAt,
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}

	project.CreatedAt = createdAt
	project.UpdatedAt = updatedAt
	return nil
}

func (r *projectRepository) Delete(ctx context.Context, ownerID, id string) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM projects WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return err
	}

	return ensureAffected(result, repository.ErrNotFound)
}
