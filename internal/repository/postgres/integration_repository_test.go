package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/bizdesk/internal/domain"
	"github.com/bagdasarian/bizdesk/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrationRepository_Upsert(t *testing.T) {
	t.Run("существующая запись сохраняет id и created_at", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewIntegrationRepository(db)

		now := time.Now().UTC()
		originalCreatedAt := now.Add(-24 * time.Hour)
		integration := &domain.Integration{
			ID:              "new-id",
			OwnerID:         "owner-1",
			IntegrationType: domain.IntegrationStripe,
			IsConnected:     true,
			Credentials:     map[string]any{"api_key": "sk_test"},
			Settings:        map[string]any{"mode": "test"},
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		mock.ExpectQuery("INSERT INTO integrations (.+) ON CONFLICT \\(owner_id, integration_type\\) DO UPDATE").
			WithArgs("new-id", "owner-1", "stripe", true, []byte(`{"api_key":"sk_test"}`), []byte(`{"mode":"test"}`), now, now).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("old-id", originalCreatedAt, now))

		err := repo.Upsert(context.Background(), integration)

		require.NoError(t, err)
		assert.Equal(t, "old-id", integration.ID)
		assert.Equal(t, originalCreatedAt, integration.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("пустые карты сохраняются как {}", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewIntegrationRepository(db)

		now := time.Now().UTC()
		mock.ExpectQuery("INSERT INTO integrations").
			WithArgs("id-1", "owner-1", "gmail", true, []byte("{}"), []byte("{}"), now, now).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("id-1", now, now))

		err := repo.Upsert(context.Background(), &domain.Integration{
			ID:              "id-1",
			OwnerID:         "owner-1",
			IntegrationType: domain.IntegrationGmail,
			IsConnected:     true,
			CreatedAt:       now,
			UpdatedAt:       now,
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestIntegrationRepository_List(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewIntegrationRepository(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "owner_id", "integration_type", "is_connected", "credentials", "settings", "created_at", "updated_at"}).
		AddRow("i1", "owner-1", "google_calendar", false, []byte(`{"token":"t"}`), []byte(`{"sync_interval":"daily"}`), now, now)
	mock.ExpectQuery("SELECT (.+) FROM integrations WHERE owner_id = \\$1").
		WithArgs("owner-1").
		WillReturnRows(rows)

	integrations, err := repo.List(context.Background(), "owner-1")

	require.NoError(t, err)
	require.Len(t, integrations, 1)
	assert.Equal(t, domain.IntegrationGoogleCalendar, integrations[0].IntegrationType)
	assert.False(t, integrations[0].IsConnected)
	assert.Equal(t, "t", integrations[0].Credentials["token"])
	assert.Equal(t, "daily", integrations[0].Settings["sync_interval"])
}

func TestIntegrationRepository_SetConnected(t *testing.T) {
	t.Run("отключение существующей интеграции", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewIntegrationRepository(db)

		mock.ExpectExec("UPDATE integrations").
			WithArgs("owner-1", "stripe", false, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.SetConnected(context.Background(), "owner-1", domain.IntegrationStripe, false))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("интеграция не найдена", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewIntegrationRepository(db)

		mock.ExpectExec("UPDATE integrations").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetConnected(context.Background(), "owner-1", domain.IntegrationGmail, false)

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
