package service

import (
	"context"

	"github.com/bagdasarian/bizdesk/internal/domain"
)

const RecentPaymentsLimit = 5

type DashboardService interface {
	// GetStats считает записи владельца и суммы завершенных платежей по направлениям
	GetStats(ctx context.Context, ownerID string) (*domain.DashboardStats, error)
}
