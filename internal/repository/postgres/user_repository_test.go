package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/bizdesk/internal/domain"
	"github.com/bagdasarian/bizdesk/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	now := time.Now().UTC()
	user := &domain.User{
		ID:        "default-user",
		Email:     "owner@example.com",
		Name:      "Business Owner",
		Theme:     domain.ThemeLight,
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec("INSERT INTO users (.+) ON CONFLICT \\(id\\) DO NOTHING").
		WithArgs("default-user", "owner@example.com", "Business Owner", nil, "light", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), user))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByID(t *testing.T) {
	t.Run("пользователь найден", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewUserRepository(db)

		now := time.Now().UTC()
		mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
			WithArgs("default-user").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "profile_picture", "theme", "created_at", "updated_at"}).
				AddRow("default-user", "owner@example.com", "Owner", "https://example.com/p.jpg", "dark", now, now))

		user, err := repo.GetByID(context.Background(), "default-user")

		require.NoError(t, err)
		assert.Equal(t, domain.ThemeDark, user.Theme)
		assert.Equal(t, "https://example.com/p.jpg", *user.ProfilePicture)
	})

	t.Run("пользователь не найден", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery("SELECT (.+) FROM users").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), "ghost")

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
