package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bagdasarian/bizdesk/internal/domain"
	"github.com/bagdasarian/bizdesk/internal/repository"
)

const entityUser = "User"

type userService struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
	defaults UserDefaults
}

// NewUserService создает новый экземпляр UserService
func NewUserService(userRepo repository.UserRepository, tokens TokenIssuer, defaults UserDefaults) UserService {
	return &userService{
		userRepo: userRepo,
		tokens:   tokens,
		defaults: defaults,
	}
}

func (s *userService) GetOrCreate(ctx context.Context, ownerID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, ownerID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	ts := now()
	user = &domain.User{
		ID:        ownerID,
		Email:     s.defaults.Email,
		Name:      s.defaults.Name,
		Theme:     domain.ThemeLight,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// при параллельном первом обращении запись могла создать другая горутина
	user, err = s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, notFoundAs(err, entityUser)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, ownerID string, update domain.UserProfileUpdate) (*domain.User, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	user, err := s.GetOrCreate(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(update.Name); name != "" {
		user.Name = name
	}
	if update.Theme != "" {
		user.Theme = update.Theme
	}
	user.ProfilePicture = update.ProfilePicture
	user.UpdatedAt = now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, notFoundAs(err, entityUser)
	}

	return user, nil
}

func (s *userService) GoogleLogin(ctx context.Context, code string) (*domain.User, string, error) {
	if strings.TrimSpace(code) == "" {
		return nil, "", domain.NewValidationError("code is required")
	}

	user, err := s.GetOrCreate(ctx, s.defaults.OwnerID)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}
