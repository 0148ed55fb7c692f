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

type paymentRepository struct {
	executor DBExecutor
}

func NewPaymentRepository(db *sql.DB) *paymentRepository {
	return &paymentRepository{executor: db}
}

const paymentColumns = `id, owner_id, payment_type, amount, currency, description, client_id, team_member_id,
	project_id, provider_session_id, payment_status, created_at, updated_at`

func scanPayment(row rowScanner) (*domain.PaymentTransaction, error) {
	payment := &domain.PaymentTransaction{}
	var paymentType, paymentStatus string
	var description, clientID, teamMemberID, projectID, sessionID sql.NullString
	err := row.Scan(
		&payment.ID,
		&payment.OwnerID,
		&paymentType,
		&payment.Amount,
		&payment.Currency,
		&description,
		&clientID,
		&teamMemberID,
		&projectID,
		&sessionID,
		&paymentStatus,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	payment.PaymentType = domain.PaymentType(paymentType)
	payment.PaymentStatus = domain.PaymentStatus(paymentStatus)
	payment.Description = stringPtr(description)
	payment.ClientID = stringPtr(clientID)
	payment.TeamMemberID = stringPtr(teamMemberID)
	payment.ProjectID = stringPtr(projectID)
	payment.ProviderSessionID = stringPtr(sessionID)
	return payment, nil
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.PaymentTransaction) error {
	query := `
		INSERT INTO payment_transactions (
			id, owner_id, payment_type, amount, currency, description, client_id, team_member_id,
			project_id, provider_session_id, payment_status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.executor.ExecContext(
		ctx,
		query,
		payment.ID,
		payment.OwnerID,
		string(payment.PaymentType),
		payment.Amount,
		payment.Currency,
		payment.Description,
		payment.ClientID,
		payment.TeamMemberID,
		payment.ProjectID,
		payment.ProviderSessionID,
		string(payment.PaymentStatus),
		payment.CreatedAt,
		payment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment transaction: %w", err)
	}

	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.PaymentTransaction, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_transactions WHERE owner_id = $1 AND id = $2`
	return r.getOne(ctx, query, ownerID, id)
}

func (r *paymentRepository) GetBySessionID(ctx context.Context, ownerID, sessionID string) (*domain.PaymentTransaction, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payment_transactions
		WHERE owner_id = $1 AND provider_session_id = $2
		ORDER BY created_at DESC
		LIMIT 1
	`
	return r.getOne(ctx, query, ownerID, sessionID)
}

func (r *paymentRepository) getOne(ctx context.Context, query string, args ...any) (*domain.PaymentTransaction, error) {
	payment, err := scanPayment(r.executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return payment, nil
}

func (r *paymentRepository) List(ctx context.Context, ownerID string) ([]*domain.PaymentTransaction, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_transactions WHERE owner_id = $1 ORDER BY created_at DESC, pk DESC`
	return r.list(ctx, query, ownerID)
}

func (r *paymentRepository) ListRecent(ctx context.Context, ownerID string, limit int) ([]*domain.PaymentTransaction, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payment_transactions
		WHERE owner_id = $1
		ORDER BY created_at DESC, pk DESC
		LIMIT $2
	`
	return r.list(ctx, query, ownerID, limit)
}

func (r *paymentRepository) list(ctx context.Context, query string, args ...any) ([]*domain.PaymentTransaction, error) {
	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]*domain.PaymentTransaction, 0)
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}

	return payments, rows.Err()
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, ownerID, id string, status domain.PaymentStatus) (time.Time, error) {
	query := `
		UPDATE payment_transactions
		SET payment_status = $3,
			updated_at = GREATEST($4, updated_at + interval '1 microsecond')
		WHERE owner_id = $1 AND id = $2
		RETURNING updated_at
	`

	var updatedAt time.Time
	err := r.executor.QueryRowContext(
		ctx,
		query,
		ownerID,
		id,
		string(status),
		time.Now().UTC(),
	).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, repository.ErrNotFound
		}
		return time.Time{}, err
	}

	return updatedAt, nil
}
