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

type clientRepository struct {
	executor DBExecutor
}

func NewClientRepository(db *sql.DB) *clientRepository {
	return &clientRepository{executor: db}
}

const clientColumns = `id, owner_id, name, email, phone, company, address, created_at, updated_at`

func scanClient(row rowScanner) (*domain.Client, error) {
	client := &domain.Client{}
	var phone, company, address sql.NullString
	err := row.Scan(
		&client.ID,
		&client.OwnerID,
		&client.Name,
		&client.Email,
		&phone,
		&company,
		&address,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	client.Phone = stringPtr(phone)
	client.Company = stringPtr(company)
	client.Address = stringPtr(address)
	return client, nil
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	query := `
		INSERT INTO clients (id, owner_id, name, email, phone, company, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.executor.ExecContext(
		ctx,
		query,
		client.ID,
		client.OwnerID,
		client.Name,
		client.Email,
		client.Phone,
		client.Company,
		client.Address,
		client.CreatedAt,
		client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}

	return nil
}

func (r *clientRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE owner_id = $1 AND id = $2`

	client, err := scanClient(r.executor.QueryRowContext(ctx, query, ownerID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return client, nil
}

func (r *clientRepository) List(ctx context.Context, ownerID string) ([]*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE owner_id = $1 ORDER BY created_at, pk`

	rows, err := r.executor.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}

	return clients, rows.Err()
}

// Update полностью заменяет редактируемые поля. updated_at строго растет,
// даже если два обновления пришлись на одну микросекунду.
func (r *clientRepository) Update(ctx context.Context, client *domain.Client) error {
	query := `
		UPDATE clients
		SET name = $3, email = $4, phone = $5, company = $6, address = $7,
			updated_at = GREATEST($8, updated_at + interval '1 microsecond')
		WHERE owner_id = $1 AND id = $2
		RETURNING created_at, updated_at
	`

	var createdAt, updatedAt time.Time
	err := r.executor.QueryRowContext(
		ctx,
		query,
		client.OwnerID,
		client.ID,
		client.Name,
		client.Email,
		client.Phone,
		client.Company,
		client.Address,
		client.UpdatedAt,
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}

	client.CreatedAt = createdAt
	client.UpdatedAt = updatedAt
	return nil
}

func (r *clientRepository) Delete(ctx context.Context, ownerID, id string) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM clients WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return err
	}

	return ensureAffected(result, repository.ErrNotFound)
}
