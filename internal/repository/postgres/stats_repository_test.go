package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/bizdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepository_GetEntityCounts(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewStatsRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM clients WHERE owner_id = \\$1").
		WithArgs("owner-1", "active").
		WillReturnRows(sqlmock.NewRows([]string{"clients_count", "projects_count", "team_members_count", "active_projects"}).
			AddRow(3, 5, 2, 4))

	counts, err := repo.GetEntityCounts(context.Background(), "owner-1")

	require.NoError(t, err)
	assert.Equal(t, domain.EntityCounts{Clients: 3, Projects: 5, TeamMembers: 2, ActiveProjects: 4}, *counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepository_SumPayments(t *testing.T) {
	t.Run("сумма по корзине", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewStatsRepository(db)

		mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\)").
			WithArgs("owner-1", "received", "completed").
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(1500.75))

		total, err := repo.SumPayments(context.Background(), "owner-1", domain.PaymentTypeReceived, domain.PaymentStatusCompleted)

		require.NoError(t, err)
		assert.Equal(t, 1500.75, total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка БД", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewStatsRepository(db)

		mock.ExpectQuery("SELECT COALESCE").WillReturnError(errors.New("timeout"))

		_, err := repo.SumPayments(context.Background(), "owner-1", domain.PaymentTypeSent, domain.PaymentStatusCompleted)

		assert.Error(t, err)
	})
}
