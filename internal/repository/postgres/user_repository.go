package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bagdasarian/bizdesk/internal/domain"
	"github.com/bagdasarian/bizdesk/internal/repository"
)

type userRepository struct {
	executor DBExecutor
}

func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{executor: db}
}

// Create не падает при повторной вставке того же пользователя: два первых
// запроса профиля могут прийти одновременно
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, email, name, profile_picture, theme, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := r.executor.ExecContext(
		ctx,
		query,
		user.ID,
		user.Email,
		user.Name,
		user.ProfilePicture,
		string(user.Theme),
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, email, name, profile_picture, theme, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	user := &domain.User{}
	var profilePicture sql.NullString
	var theme string
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&profilePicture,
		&theme,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	user.ProfilePicture = stringPtr(profilePicture)
	user.Theme = domain.Theme(theme)

	return user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET name = $2, profile_picture = $3, theme = $4,
			updated_at = GREATEST($5, updated_at + interval '1 microsecond')
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	var createdAt, updatedAt time.Time
	err := r.executor.QueryRowContext(
		ctx,
		query,
		user.ID,
		user.Name,
		user.ProfilePicture,
		string(user.Theme),
		user.UpdatedAt,
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}

	user.CreatedAt = createdAt
	user.UpdatedAt = updatedAt
	return nil
}
