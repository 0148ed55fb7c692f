package service

import (
	"context"

	"github.com/bagdasarian/bizdesk/internal/domain"
)

// CheckoutProvider внешняя страница оплаты. Реализуется checkout.StripeClient.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, params domain.CheckoutSessionParams) (*domain.CheckoutSession, error)
	GetSessionStatus(ctx context.Context, sessionID string) (*domain.CheckoutStatus, error)
}

type PaymentService interface {
	// Initiate открывает сессию у провайдера и сохраняет платеж в статусе pending
	Initiate(ctx context.Context, ownerID string, req domain.CheckoutRequest) (*domain.CheckoutSession, error)

	// Reconcile запрашивает состояние сессии и переписывает статус локального платежа.
	// Возвращает состояние в том виде, в каком его сообщил провайдер.
	Reconcile(ctx context.Context, ownerID, sessionID string) (*domain.CheckoutStatus, error)

	// List возвращает платежи от новых к старым с именами связанных записей
	List(ctx context.Context, ownerID string) ([]*domain.PaymentDetails, error)
	Get(ctx context.Context, ownerID, id string) (*domain.PaymentDetails, error)
}
