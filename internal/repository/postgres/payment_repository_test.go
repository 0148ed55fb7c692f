package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/bizdesk/internal/domain"
	"github.com/bagdasarian/bizdesk/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var paymentRowColumns = []string{
	"id", "owner_id", "payment_type", "amount", "currency", "description", "client_id", "team_member_id",
	"project_id", "provider_session_id", "payment_status", "created_at", "updated_at",
}

func TestPaymentRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPaymentRepository(db)

	now := time.Now().UTC()
	payment := &domain.PaymentTransaction{
		ID:                "p1",
		OwnerID:           "owner-1",
		PaymentType:       domain.PaymentTypeReceived,
		Amount:            1000,
		Currency:          "usd",
		ClientID:          strPtr("c1"),
		ProviderSessionID: strPtr("cs_test_1"),
		PaymentStatus:     domain.PaymentStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	mock.ExpectExec("INSERT INTO payment_transactions").
		WithArgs("p1", "owner-1", "received", 1000.0, "usd", nil, "c1", nil, nil, "cs_test_1", "pending", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), payment))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_GetBySessionID(t *testing.T) {
	t.Run("транзакция найдена", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPaymentRepository(db)

		now := time.Now().UTC()
		rows := sqlmock.NewRows(paymentRowColumns).
			AddRow("p1", "owner-1", "received", 250.5, "eur", "Deposit", "c1", nil, "pr1", "cs_test_1", "pending", now, now)
		mock.ExpectQuery("SELECT (.+) FROM payment_transactions WHERE owner_id = \\$1 AND provider_session_id = \\$2").
			WithArgs("owner-1", "cs_test_1").
			WillReturnRows(rows)

		payment, err := repo.GetBySessionID(context.Background(), "owner-1", "cs_test_1")

		require.NoError(t, err)
		assert.Equal(t, "p1", payment.ID)
		assert.Equal(t, 250.5, payment.Amount)
		assert.Equal(t, domain.PaymentTypeReceived, payment.PaymentType)
		assert.Equal(t, domain.PaymentStatusPending, payment.PaymentStatus)
		assert.Equal(t, "Deposit", *payment.Description)
		assert.Nil(t, payment.TeamMemberID)
		assert.Equal(t, "pr1", *payment.ProjectID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("сессия не найдена", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPaymentRepository(db)

		mock.ExpectQuery("SELECT (.+) FROM payment_transactions").
			WithArgs("owner-1", "cs_unknown").
			WillReturnError(sql.ErrNoRows)

		payment, err := repo.GetBySessionID(context.Background(), "owner-1", "cs_unknown")

		assert.Nil(t, payment)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestPaymentRepository_ListRecent(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPaymentRepository(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows(paymentRowColumns).
		AddRow("p2", "owner-1", "sent", 80.0, "usd", nil, nil, "tm1", nil, nil, "completed", now, now).
		AddRow("p1", "owner-1", "received", 100.0, "usd", nil, "c1", nil, nil, "cs_1", "pending", now.Add(-time.Minute), now)
	mock.ExpectQuery("SELECT (.+) FROM payment_transactions (.+) ORDER BY created_at DESC, pk DESC LIMIT \\$2").
		WithArgs("owner-1", 5).
		WillReturnRows(rows)

	payments, err := repo.ListRecent(context.Background(), "owner-1", 5)

	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "p2", payments[0].ID)
	assert.Equal(t, domain.PaymentTypeSent, payments[0].PaymentType)
	assert.Nil(t, payments[0].ProviderSessionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_UpdateStatus(t *testing.T) {
	t.Run("статус перезаписан", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPaymentRepository(db)

		updatedAt := time.Now().UTC()
		mock.ExpectQuery("UPDATE payment_transactions").
			WithArgs("owner-1", "p1", "completed", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updatedAt))

		got, err := repo.UpdateStatus(context.Background(), "owner-1", "p1", domain.PaymentStatusCompleted)

		require.NoError(t, err)
		assert.Equal(t, updatedAt, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("транзакция не найдена", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPaymentRepository(db)

		mock.ExpectQuery("UPDATE payment_transactions").WillReturnError(sql.ErrNoRows)

		_, err := repo.UpdateStatus(context.Background(), "owner-1", "missing", domain.PaymentStatusCancelled)

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
