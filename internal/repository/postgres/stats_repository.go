package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/bizdesk/internal/domain"
)

type statsRepository struct {
	executor DBExecutor
}

func NewStatsRepository(db *sql.DB) *statsRepository {
	return &statsRepository{executor: db}
}

func (r *statsRepository) GetEntityCounts(ctx context.Context, ownerID string) (*domain.EntityCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM clients WHERE owner_id = $1) AS clients_count,
			(SELECT COUNT(*) FROM projects WHERE owner_id = $1) AS projects_count,
			(SELECT COUNT(*) FROM team_members WHERE owner_id = $1) AS team_members_count,
			(SELECT COUNT(*) FROM projects WHERE owner_id = $1 AND status = $2) AS active_projects
	`

	counts := &domain.EntityCounts{}
	err := r.executor.QueryRowContext(ctx, query, ownerID, string(domain.ProjectStatusActive)).Scan(
		&counts.Clients,
		&counts.Projects,
		&counts.TeamMembers,
		&counts.ActiveProjects,
	)
	if err != nil {
		return nil, err
	}

	return counts, nil
}

func (r *statsRepository) SumPayments(ctx context.Context, ownerID string, paymentType domain.PaymentType, status domain.PaymentStatus) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payment_transactions
		WHERE owner_id = $1 AND payment_type = $2 AND payment_status = $3
	`

	var total float64
	err := r.executor.QueryRowContext(ctx, query, ownerID, string(paymentType), string(status)).Scan(&total)
	if err != nil {
		return 0, err
	}

	return total, nil
}
