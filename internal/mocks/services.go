package mocks

import (
	"context"

	"github.com/bagdasarian/bizdesk/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) Create(ctx context.Context, ownerID string, fields domain.ClientFields) (*domain.Client, error) {
	args := m.Called(ctx, ownerID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) List(ctx context.Context, ownerID string) ([]*domain.Client, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Client), args.Error(1)
}

func (m *MockClientService) Get(ctx context.Context, ownerID, id string) (*domain.Client, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) Update(ctx context.Context, ownerID, id string, fields domain.ClientFields) (*domain.Client, error) {
	args := m.Called(ctx, ownerID, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) Delete(ctx context.Context, ownerID, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Create(ctx context.Context, ownerID string, fields domain.ProjectFields) (*domain.Project, error) {
	args := m.Called(ctx, ownerID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectService) List(ctx context.Context, ownerID string) ([]*domain.ProjectDetails, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ProjectDetails), args.Error(1)
}

func (m *MockProjectService) Get(ctx context.Context, ownerID, id string) (*domain.ProjectDetails, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectDetails), args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, ownerID, id string, fields domain.ProjectFields) (*domain.Project, error) {
	args := m.Called(ctx, ownerID, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, ownerID, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

type MockTeamMemberService struct {
	mock.Mock
}

func (m *MockTeamMemberService) Create(ctx context.Context, ownerID string, fields domain.TeamMemberFields) (*domain.TeamMember, error) {
	args := m.Called(ctx, ownerID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMember), args.Error(1)
}

func (m *MockTeamMemberService) List(ctx context.Context, ownerID string) ([]*domain.TeamMember, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TeamMember), args.Error(1)
}

func (m *MockTeamMemberService) Get(ctx context.Context, ownerID, id string) (*domain.TeamMember, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMember), args.Error(1)
}

func (m *MockTeamMemberService) Update(ctx context.Context, ownerID, id string, fields domain.TeamMemberFields) (*domain.TeamMember, error) {
	args := m.Called(ctx, ownerID, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMember), args.Error(1)
}

func (m *MockTeamMemberService) Delete(ctx context.Context, ownerID, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) Initiate(ctx context.Context, ownerID string, req domain.CheckoutRequest) (*domain.CheckoutSession, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckoutSession), args.Error(1)
}

func (m *MockPaymentService) Reconcile(ctx context.Context, ownerID, sessionID string) (*domain.CheckoutStatus, error) {
	args := m.Called(ctx, ownerID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckoutStatus), args.Error(1)
}

func (m *MockPaymentService) List(ctx context.Context, ownerID string) ([]*domain.PaymentDetails, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PaymentDetails), args.Error(1)
}

func (m *MockPaymentService) Get(ctx context.Context, ownerID, id string) (*domain.PaymentDetails, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentDetails), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetOrCreate(ctx context.Context, ownerID string) (*domain.User, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, ownerID string, update domain.UserProfileUpdate) (*domain.User, error) {
	args := m.Called(ctx, ownerID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GoogleLogin(ctx context.Context, code string) (*domain.User, string, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

type MockIntegrationService struct {
	mock.Mock
}

func (m *MockIntegrationService) Connect(
	ctx context.Context,
	ownerID string,
	integrationType domain.IntegrationType,
	credentials, settings map[string]any,
) (*domain.Integration, error) {
	args := m.Called(ctx, ownerID, integrationType, credentials, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Integration), args.Error(1)
}

func (m *MockIntegrationService) List(ctx context.Context, ownerID string) ([]*domain.Integration, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Integration), args.Error(1)
}

func (m *MockIntegrationService) Disconnect(ctx context.Context, ownerID string, integrationType domain.IntegrationType) error {
	args := m.Called(ctx, ownerID, integrationType)
	return args.Error(0)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetStats(ctx context.Context, ownerID string) (*domain.DashboardStats, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}
