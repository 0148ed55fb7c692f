package mocks

import (
	"context"

	"github.com/bagdasarian/bizdesk/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockCheckoutProvider struct {
	mock.Mock
}

func (m *MockCheckoutProvider) CreateSession(ctx context.Context, params domain.CheckoutSessionParams) (*domain.CheckoutSession, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckoutSession), args.Error(1)
}

func (m *MockCheckoutProvider) GetSessionStatus(ctx context.Context, sessionID string) (*domain.CheckoutStatus, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckoutStatus), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(ownerID, email string) (string, error) {
	args := m.Called(ownerID, email)
	return args.String(0), args.Error(1)
}
