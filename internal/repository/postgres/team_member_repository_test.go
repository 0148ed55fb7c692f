package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/bizdesk/internal/domain"
	"github.com/bagdasarian/bizdesk/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamMemberRepository_List(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTeamMemberRepository(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "owner_id", "name", "email", "phone", "role", "member_type", "hourly_rate", "created_at", "updated_at"}).
		AddRow("tm1", "owner-1", "Alice", "alice@example.com", nil, "Designer", "internal", nil, now, now).
		AddRow("tm2", "owner-1", "Bob", "bob@example.com", "555", "Developer", "freelancer", 75.0, now, now)
	mock.ExpectQuery("SELECT (.+) FROM team_members WHERE owner_id = \\$1").
		WithArgs("owner-1").
		WillReturnRows(rows)

	members, err := repo.List(context.Background(), "owner-1")

	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, domain.MemberTypeInternal, members[0].MemberType)
	assert.Nil(t, members[0].HourlyRate)
	assert.Equal(t, domain.MemberTypeFreelancer, members[1].MemberType)
	assert.Equal(t, 75.0, *members[1].HourlyRate)
}

func TestTeamMemberRepository_Update(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTeamMemberRepository(db)

	now := time.Now().UTC()
	rate := 90.0
	member := &domain.TeamMember{
		ID:      "tm2",
		OwnerID: "owner-1",
		TeamMemberFields: domain.TeamMemberFields{
			Name:       "Bob",
			Email:      "bob@example.com",
			Role:       "Lead",
			MemberType: domain.MemberTypeFreelancer,
			HourlyRate: &rate,
		},
		UpdatedAt: now,
	}

	mock.ExpectQuery("UPDATE team_members").
		WithArgs("owner-1", "tm2", "Bob", "bob@example.com", nil, "Lead", "freelancer", 90.0, now).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now.Add(-time.Hour), now))

	require.NoError(t, repo.Update(context.Background(), member))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamMemberRepository_Delete_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTeamMemberRepository(db)

	mock.ExpectExec("DELETE FROM team_members").
		WithArgs("owner-1", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "owner-1", "missing"), repository.ErrNotFound)
}
