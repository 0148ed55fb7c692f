package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bagdasarian/bizdesk/internal/domain"
	"github.com/bagdasarian/bizdesk/internal/repository"
)

type integrationRepository struct {
	executor DBExecutor
}

func NewIntegrationRepository(db *sql.DB) *integrationRepository {
	return &integrationRepository{executor: db}
}

func marshalJSONMap(m map[string]any) ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func unmarshalJSONMap(raw []byte) (map[string]any, error) {
	m := make(map[string]any)
	if len(raw) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// Upsert опирается на уникальный индекс (owner_id, integration_type).
// При конфликте id и created_at остаются прежними.
func (r *integrationRepository) Upsert(ctx context.Context, integration *domain.Integration) error {
	credentials, err := marshalJSONMap(integration.Credentials)
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}
	settings, err := marshalJSONMap(integration.Settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	query := `
		INSERT INTO integrations (id, owner_id, integration_type, is_connected, credentials, settings, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (owner_id, integration_type) DO UPDATE
		SET is_connected = EXCLUDED.is_connected,
			credentials = EXCLUDED.credentials,
			settings = EXCLUDED.settings,
			updated_at = GREATEST(EXCLUDED.updated_at, integrations.updated_at + interval '1 microsecond')
		RETURNING id, created_at, updated_at
	`

	var id string
	var createdAt, updatedAt time.Time
	err = r.executor.QueryRowContext(
		ctx,
		query,
		integration.ID,
		integration.OwnerID,
		string(integration.IntegrationType),
		integration.IsConnected,
		credentials,
		settings,
		integration.CreatedAt,
		integration.UpdatedAt,
	).Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		return fmt.Errorf("upsert integration: %w", err)
	}

	integration.ID = id
	integration.CreatedAt = createdAt
	integration.UpdatedAt = updatedAt
	return nil
}

func (r *integrationRepository) List(ctx context.Context, ownerID string) ([]*domain.Integration, error) {
	query := `
		SELECT id, owner_id, integration_type, is_connected, credentials, settings, created_at, updated_at
		FROM integrations
		WHERE owner_id = $1
		ORDER BY created_at, pk
	`

	rows, err := r.executor.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	integrations := make([]*domain.Integration, 0)
	for rows.Next() {
		integration := &domain.Integration{}
		var integrationType string
		var credentials, settings []byte
		err := rows.Scan(
			&integration.ID,
			&integration.OwnerID,
			&integrationType,
			&integration.IsConnected,
			&credentials,
			&settings,
			&integration.CreatedAt,
			&integration.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		integration.IntegrationType = domain.IntegrationType(integrationType)
		if integration.Credentials, err = unmarshalJSONMap(credentials); err != nil {
			return nil, fmt.Errorf("decode credentials: %w", err)
		}
		if integration.Settings, err = unmarshalJSONMap(settings); err != nil {
			return nil, fmt.Errorf("decode settings: %w", err)
		}
		integrations = append(integrations, integration)
	}

	return integrations, rows.Err()
}

func (r *integrationRepository) SetConnected(ctx context.Context, ownerID string, integrationType domain.IntegrationType, connected bool) error {
	query := `
		UPDATE integrations
		SET is_connected = $3,
			updated_at = GREATEST($4, updated_at + interval '1 microsecond')
		WHERE owner_id = $1 AND integration_type = $2
	`

	result, err := r.executor.ExecContext(ctx, query, ownerID, string(integrationType), connected, time.Now().UTC())
	if err != nil {
		return err
	}

	return ensureAffected(result, repository.ErrNotFound)
}
