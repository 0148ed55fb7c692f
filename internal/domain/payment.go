package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	// PaymentStatusFailed зарезервирован: сверка с провайдером его не выставляет
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

type PaymentType string

const (
	PaymentTypeReceived PaymentType = "received"
	PaymentTypeSent     PaymentType = "sent"
)

const DefaultCurrency = "usd"

type PaymentTransaction struct {
	ID                string
	OwnerID           string
	PaymentType       PaymentType
	Amount            float64
	Currency          string
	Description       *string
	ClientID          *string
	TeamMemberID      *string
	ProjectID         *string
	ProviderSessionID *string
	PaymentStatus     PaymentStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// PaymentDetails платеж с необязательными отображаемыми именами связанных записей
type PaymentDetails struct {
	*PaymentTransaction
	ClientName     *string
	TeamMemberName *string
	ProjectName    *string
}

// CheckoutRequest параметры создания платежа через страницу оплаты провайдера
type CheckoutRequest struct {
	Amount      float64
	Currency    string
	Description *string
	ClientID    *string
	ProjectID   *string
	Metadata    map[string]string
	// RedirectBase origin, от которого строятся адреса возврата
	RedirectBase string
}

// CheckoutSessionParams то, что уходит провайдеру
type CheckoutSessionParams struct {
	Amount     float64
	Currency   string
	Name       string
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}

type CheckoutSession struct {
	SessionID string
	URL       string
}

// CheckoutStatus состояние сессии в том виде, в каком его сообщил провайдер
type CheckoutStatus struct {
	Status        string
	PaymentStatus string
	AmountTotal   int64
	Currency      string
}

const (
	ProviderSessionExpired = "expired"
	ProviderPaymentPaid    = "paid"
)

// ResolvePaymentStatus переводит состояние сессии провайдера в локальный статус.
// expired важнее paid: истекшая, но оплаченная сессия считается отмененной.
// Любой будущий канал обновления статуса должен проходить через эту функцию.
func ResolvePaymentStatus(s CheckoutStatus) PaymentStatus {
	if s.Status == ProviderSessionExpired {
		return PaymentStatusCancelled
	}
	if s.PaymentStatus == ProviderPaymentPaid {
		return PaymentStatusCompleted
	}
	return PaymentStatusPending
}
