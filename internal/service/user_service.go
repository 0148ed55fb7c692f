package service

import (
	"context"

	"github.com/bagdasarian/bizdesk/internal/domain"
)

// TokenIssuer выпускает токен для владельца. Реализуется auth.TokenIssuer.
type TokenIssuer interface {
	Issue(ownerID, email string) (string, error)
}

// UserDefaults профиль, которым заполняется пользователь при первом обращении
type UserDefaults struct {
	OwnerID string
	Email   string
	Name    string
}

type UserService interface {
	// GetOrCreate возвращает профиль владельца, создавая его при первом обращении
	GetOrCreate(ctx context.Context, ownerID string) (*domain.User, error)

	// UpdateProfile заменяет имя, аватар и тему. Пустые имя и тема сохраняют текущие значения.
	UpdateProfile(ctx context.Context, ownerID string, update domain.UserProfileUpdate) (*domain.User, error)

	// GoogleLogin заглушка входа: код не проверяется, всегда возвращается владелец по умолчанию
	GoogleLogin(ctx context.Context, code string) (*domain.User, string, error)
}
