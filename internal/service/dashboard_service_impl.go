package service

import (
	"context"
	"fmt"

	"github.com/bagdasarian/bizdesk/internal/domain"
	"github.com/bagdasarian/bizdesk/internal/repository"
)

type dashboardService struct {
	statsRepo   repository.StatsRepository
	paymentRepo repository.PaymentRepository
}

// NewDashboardService создает новый экземпляр DashboardService
func NewDashboardService(statsRepo repository.StatsRepository, paymentRepo repository.PaymentRepository) DashboardService {
	return &dashboardService{
		statsRepo:   statsRepo,
		paymentRepo: paymentRepo,
	}
}

func (s *dashboardService) GetStats(ctx context.Context, ownerID string) (*domain.DashboardStats, error) {
	counts, err := s.statsRepo.GetEntityCounts(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count entities: %w", err)
	}

	received, err := s.statsRepo.SumPayments(ctx, ownerID, domain.PaymentTypeReceived, domain.PaymentStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to sum received payments: %w", err)
	}

	sent, err := s.statsRepo.SumPayments(ctx, ownerID, domain.PaymentTypeSent, domain.PaymentStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to sum sent payments: %w", err)
	}

	recent, err := s.paymentRepo.ListRecent(ctx, ownerID, RecentPaymentsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent payments: %w", err)
	}

	return &domain.DashboardStats{
		EntityCounts:   *counts,
		TotalReceived:  received,
		TotalSent:      sent,
		RecentPayments: recent,
	}, nil
}
