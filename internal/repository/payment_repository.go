package repository

import (
	"context"
	"time"

	"github.com/bagdasarian/bizdesk/internal/domain"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.PaymentTransaction) error
	GetByID(ctx context.Context, ownerID, id string) (*domain.PaymentTransaction, error)
	GetBySessionID(ctx context.Context, ownerID, sessionID string) (*domain.PaymentTransaction, error)
	List(ctx context.Context, ownerID string) ([]*domain.PaymentTransaction, error)
	ListRecent(ctx context.Context, ownerID string, limit int) ([]*domain.PaymentTransaction, error)
	// UpdateStatus перезаписывает статус безусловно и возвращает новый updated_at
	UpdateStatus(ctx context.Context, ownerID, id string, status domain.PaymentStatus) (time.Time, error)
}
