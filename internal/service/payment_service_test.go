package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bagdasarian/bizdesk/internal/domain"
	"github.com/bagdasarian/bizdesk/internal/mocks"
	"github.com/bagdasarian/bizdesk/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type paymentFixture struct {
	payments    *mocks.MockPaymentRepository
	clients     *mocks.MockClientRepository
	teamMembers *mocks.MockTeamMemberRepository
	projects    *mocks.MockProjectRepository
	provider    *mocks.MockCheckoutProvider
	service     PaymentService
}

func newPaymentFixture(logger *zap.Logger) *paymentFixture {
	f := &paymentFixture{
		payments:    new(mocks.MockPaymentRepository),
		clients:     new(mocks.MockClientRepository),
		teamMembers: new(mocks.MockTeamMemberRepository),
		projects:    new(mocks.MockProjectRepository),
		provider:    new(mocks.MockCheckoutProvider),
	}
	f.service = NewPaymentService(f.payments, f.clients, f.teamMembers, f.projects, f.provider, logger)
	return f
}

func TestPaymentService_Initiate(t *testing.T) {
	t.Run("успешное создание сессии", func(t *testing.T) {
		f := newPaymentFixture(nil)

		f.provider.On("CreateSession", mock.Anything, domain.CheckoutSessionParams{
			Amount:     49.5,
			Currency:   "usd",
			Name:       "Logo design",
			SuccessURL: "https://app.example.com/payment-success?session_id={CHECKOUT_SESSION_ID}",
			CancelURL:  "https://app.example.com/payment-cancelled",
			Metadata:   map[string]string{"invoice": "42"},
		}).Return(&domain.CheckoutSession{SessionID: "cs_1", URL: "https://checkout/cs_1"}, nil).Once()
		f.payments.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.PaymentTransaction) bool {
			return p.PaymentStatus == domain.PaymentStatusPending &&
				p.PaymentType == domain.PaymentTypeReceived &&
				p.ProviderSessionID != nil && *p.ProviderSessionID == "cs_1" &&
				p.Currency == "usd" && p.Amount == 49.5 &&
				p.CreatedAt.Equal(p.UpdatedAt)
		})).Return(nil).Once()

		result, err := f.service.Initiate(context.Background(), testOwner, domain.CheckoutRequest{
			Amount:       49.5,
			Description:  strPtr("Logo design"),
			Metadata:     map[string]string{"invoice": "42"},
			RedirectBase: "https://app.example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, "cs_1", result.SessionID)
		assert.Equal(t, "https://checkout/cs_1", result.URL)
		f.provider.AssertExpectations(t)
		f.payments.AssertExpectations(t)
	})

	t.Run("ошибка: нет Origin", func(t *testing.T) {
		f := newPaymentFixture(nil)

		_, err := f.service.Initiate(context.Background(), testOwner, domain.CheckoutRequest{Amount: 10})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrBadRequest))
		assert.Equal(t, "Origin header is required", err.Error())
		f.provider.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
	})

	t.Run("ошибка провайдера: запись не создается", func(t *testing.T) {
		f := newPaymentFixture(nil)

		f.provider.On("CreateSession", mock.Anything, mock.Anything).Return(nil, errors.New("card_declined: Your card was declined")).Once()

		_, err := f.service.Initiate(context.Background(), testOwner, domain.CheckoutRequest{Amount: 10, RedirectBase: "http://localhost:3000"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrProvider))
		assert.Equal(t, "card_declined: Your card was declined", err.Error())
		f.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("сессия без записи попадает в лог", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		f := newPaymentFixture(zap.New(core))

		f.provider.On("CreateSession", mock.Anything, mock.Anything).Return(&domain.CheckoutSession{SessionID: "cs_orphan"}, nil).Once()
		f.payments.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

		_, err := f.service.Initiate(context.Background(), testOwner, domain.CheckoutRequest{Amount: 10, RedirectBase: "http://localhost:3000"})

		require.Error(t, err)
		assert.False(t, errors.Is(err, domain.ErrProvider))
		entries := logs.FilterField(zap.String("session_id", "cs_orphan")).All()
		assert.Len(t, entries, 1)
	})
}

func TestPaymentService_Reconcile(t *testing.T) {
	tests := []struct {
		name     string
		status   domain.CheckoutStatus
		expected domain.PaymentStatus
	}{
		{"истекшая оплаченная сессия отменяется", domain.CheckoutStatus{Status: "expired", PaymentStatus: "paid"}, domain.PaymentStatusCancelled},
		{"оплаченная сессия завершает платеж", domain.CheckoutStatus{Status: "complete", PaymentStatus: "paid"}, domain.PaymentStatusCompleted},
		{"открытая сессия оставляет pending", domain.CheckoutStatus{Status: "open", PaymentStatus: "unpaid"}, domain.PaymentStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPaymentFixture(nil)

			status := tt.status
			status.AmountTotal = 1000
			status.Currency = "usd"
			local := &domain.PaymentTransaction{ID: "pay-1", OwnerID: testOwner, PaymentStatus: domain.PaymentStatusPending}

			f.provider.On("GetSessionStatus", mock.Anything, "cs_1").Return(&status, nil).Once()
			f.payments.On("GetBySessionID", mock.Anything, testOwner, "cs_1").Return(local, nil).Once()
			f.payments.On("UpdateStatus", mock.Anything, testOwner, "pay-1", tt.expected).Return(time.Now(), nil).Once()

			result, err := f.service.Reconcile(context.Background(), testOwner, "cs_1")

			require.NoError(t, err)
			assert.Equal(t, tt.status.Status, result.Status)
			assert.Equal(t, tt.status.PaymentStatus, result.PaymentStatus)
			assert.Equal(t, int64(1000), result.AmountTotal)
			f.payments.AssertExpectations(t)
		})
	}

	t.Run("статус перезаписывается без проверки монотонности", func(t *testing.T) {
		f := newPaymentFixture(nil)

		local := &domain.PaymentTransaction{ID: "pay-1", PaymentStatus: domain.PaymentStatusCompleted}
		f.provider.On("GetSessionStatus", mock.Anything, "cs_1").Return(&domain.CheckoutStatus{Status: "open", PaymentStatus: "unpaid"}, nil).Once()
		f.payments.On("GetBySessionID", mock.Anything, testOwner, "cs_1").Return(local, nil).Once()
		f.payments.On("UpdateStatus", mock.Anything, testOwner, "pay-1", domain.PaymentStatusPending).Return(time.Now(), nil).Once()

		_, err := f.service.Reconcile(context.Background(), testOwner, "cs_1")

		require.NoError(t, err)
		f.payments.AssertExpectations(t)
	})

	t.Run("нет локального платежа: запись не выполняется", func(t *testing.T) {
		f := newPaymentFixture(nil)

		f.provider.On("GetSessionStatus", mock.Anything, "cs_unknown").Return(&domain.CheckoutStatus{Status: "complete", PaymentStatus: "paid"}, nil).Once()
		f.payments.On("GetBySessionID", mock.Anything, testOwner, "cs_unknown").Return(nil, repository.ErrNotFound).Once()

		result, err := f.service.Reconcile(context.Background(), testOwner, "cs_unknown")

		require.NoError(t, err)
		assert.Equal(t, "paid", result.PaymentStatus)
		f.payments.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ошибка провайдера: статус не меняется", func(t *testing.T) {
		f := newPaymentFixture(nil)

		f.provider.On("GetSessionStatus", mock.Anything, "cs_1").Return(nil, errors.New("resource_missing: No such checkout.session")).Once()

		_, err := f.service.Reconcile(context.Background(), testOwner, "cs_1")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrProvider))
		f.payments.AssertNotCalled(t, "GetBySessionID", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPaymentService_List(t *testing.T) {
	t.Run("имена связанных записей подставляются", func(t *testing.T) {
		f := newPaymentFixture(nil)

		payments := []*domain.PaymentTransaction{
			{ID: "pay-2", ClientID: strPtr("c1"), ProjectID: strPtr("p-gone")},
			{ID: "pay-1", TeamMemberID: strPtr("m1")},
		}
		f.payments.On("List", mock.Anything, testOwner).Return(payments, nil).Once()
		f.clients.On("GetByID", mock.Anything, testOwner, "c1").Return(testClient("c1", "Acme"), nil).Once()
		f.projects.On("GetByID", mock.Anything, testOwner, "p-gone").Return(nil, repository.ErrNotFound).Once()
		f.teamMembers.On("GetByID", mock.Anything, testOwner, "m1").Return(&domain.TeamMember{
			ID:               "m1",
			TeamMemberFields: domain.TeamMemberFields{Name: "Bob"},
		}, nil).Once()

		result, err := f.service.List(context.Background(), testOwner)

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "pay-2", result[0].ID)
		assert.Equal(t, "Acme", *result[0].ClientName)
		assert.Nil(t, result[0].ProjectName)
		assert.Nil(t, result[0].TeamMemberName)
		assert.Equal(t, "Bob", *result[1].TeamMemberName)
		assert.Nil(t, result[1].ClientName)
	})
}

func TestPaymentService_Get(t *testing.T) {
	t.Run("ошибка: платеж не найден", func(t *testing.T) {
		f := newPaymentFixture(nil)

		f.payments.On("GetByID", mock.Anything, testOwner, "pay-x").Return(nil, repository.ErrNotFound).Once()

		_, err := f.service.Get(context.Background(), testOwner, "pay-x")

		require.Error(t, err)
		assert.Equal(t, "Payment not found", err.Error())
	})
}
