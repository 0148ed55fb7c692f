package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bagdasarian/bizdesk/internal/checkout"
	"github.com/bagdasarian/bizdesk/internal/domain"
	"github.com/bagdasarian/bizdesk/internal/repository"
	"go.uber.org/zap"
)

const (
	entityPayment = "Payment"

	defaultLineItemName = "Payment"
)

type paymentService struct {
	paymentRepo    repository.PaymentRepository
	clientRepo     repository.ClientRepository
	teamMemberRepo repository.TeamMemberRepository
	projectRepo    repository.ProjectRepository
	provider       CheckoutProvider
	logger         *zap.Logger
}

// NewPaymentService создает новый экземпляр PaymentService
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	clientRepo repository.ClientRepository,
	teamMemberRepo repository.TeamMemberRepository,
	projectRepo repository.ProjectRepository,
	provider CheckoutProvider,
	logger *zap.Logger,
) PaymentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &paymentService{
		paymentRepo:    paymentRepo,
		clientRepo:     clientRepo,
		teamMemberRepo: teamMemberRepo,
		projectRepo:    projectRepo,
		provider:       provider,
		logger:         logger,
	}
}

func (s *paymentService) Initiate(ctx context.Context, ownerID string, req domain.CheckoutRequest) (*domain.CheckoutSession, error) {
	if req.RedirectBase == "" {
		return nil, domain.NewBadRequestError("Origin header is required")
	}

	currency := req.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	name := defaultLineItemName
	if req.Description != nil && *req.Description != "" {
		name = *req.Description
	}

	session, err := s.provider.CreateSession(ctx, domain.CheckoutSessionParams{
		Amount:     req.Amount,
		Currency:   currency,
		Name:       name,
		SuccessURL: req.RedirectBase + "/payment-success?session_id=" + checkout.SessionIDPlaceholder,
		CancelURL:  req.RedirectBase + "/payment-cancelled",
		Metadata:   req.Metadata,
	})
	if err != nil {
		s.logger.Warn("checkout session was not created", zap.String("owner_id", ownerID), zap.Error(err))
		return nil, domain.NewProviderError(err)
	}

	ts := now()
	payment := &domain.PaymentTransaction{
		ID:                newID(),
		OwnerID:           ownerID,
		PaymentType:       domain.PaymentTypeReceived,
		Amount:            req.Amount,
		Currency:          currency,
		Description:       req.Description,
		ClientID:          req.ClientID,
		ProjectID:         req.ProjectID,
		ProviderSessionID: &session.SessionID,
		PaymentStatus:     domain.PaymentStatusPending,
		CreatedAt:         ts,
		UpdatedAt:         ts,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		// Сессия у провайдера уже открыта и остается без локальной записи
		s.logger.Error("checkout session orphaned: payment was not saved",
			zap.String("owner_id", ownerID),
			zap.String("session_id", session.SessionID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	s.logger.Info("checkout session created",
		zap.String("payment_id", payment.ID),
		zap.String("session_id", session.SessionID),
	)

	return session, nil
}

func (s *paymentService) Reconcile(ctx context.Context, ownerID, sessionID string) (*domain.CheckoutStatus, error) {
	status, err := s.provider.GetSessionStatus(ctx, sessionID)
	if err != nil {
		s.logger.Warn("checkout status request failed", zap.String("session_id", sessionID), zap.Error(err))
		return nil, domain.NewProviderError(err)
	}

	payment, err := s.paymentRepo.GetBySessionID(ctx, ownerID, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Debug("no local payment for checkout session", zap.String("session_id", sessionID))
			return status, nil
		}
		return nil, fmt.Errorf("failed to find payment by session: %w", err)
	}

	resolved := domain.ResolvePaymentStatus(*status)
	if _, err := s.paymentRepo.UpdateStatus(ctx, ownerID, payment.ID, resolved); err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}

	if resolved != payment.PaymentStatus {
		s.logger.Info("payment status changed",
			zap.String("payment_id", payment.ID),
			zap.String("from", string(payment.PaymentStatus)),
			zap.String("to", string(resolved)),
		)
	}

	return status, nil
}

func (s *paymentService) List(ctx context.Context, ownerID string) ([]*domain.PaymentDetails, error) {
	payments, err := s.paymentRepo.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	names := newDisplayNames(ownerID, s.clientRepo, s.teamMemberRepo, s.projectRepo)
	result := make([]*domain.PaymentDetails, 0, len(payments))
	for _, p := range payments {
		details, err := s.withNames(ctx, names, p)
		if err != nil {
			return nil, err
		}
		result = append(result, details)
	}

	return result, nil
}

func (s *paymentService) Get(ctx context.Context, ownerID, id string) (*domain.PaymentDetails, error) {
	payment, err := s.paymentRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, notFoundAs(err, entityPayment)
	}

	names := newDisplayNames(ownerID, s.clientRepo, s.teamMemberRepo, s.projectRepo)
	return s.withNames(ctx, names, payment)
}

func (s *paymentService) withNames(ctx context.Context, names *displayNames, p *domain.PaymentTransaction) (*domain.PaymentDetails, error) {
	details := &domain.PaymentDetails{PaymentTransaction: p}

	var err error
	if details.ClientName, err = names.client(ctx, p.ClientID); err != nil {
		return nil, fmt.Errorf("resolve client name: %w", err)
	}
	if details.TeamMemberName, err = names.teamMember(ctx, p.TeamMemberID); err != nil {
		return nil, fmt.Errorf("resolve team member name: %w", err)
	}
	if details.ProjectName, err = names.project(ctx, p.ProjectID); err != nil {
		return nil, fmt.Errorf("resolve project name: %w", err)
	}

	return details, nil
}
