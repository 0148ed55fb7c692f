package repository

import (
	"context"

	"github.com/bagdasarian/bizdesk/internal/domain"
)

type StatsRepository interface {
	GetEntityCounts(ctx context.Context, ownerID string) (*domain.EntityCounts, error)
	SumPayments(ctx context.Context, ownerID string, paymentType domain.PaymentType, status domain.PaymentStatus) (float64, error)
}
