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

type teamMemberRepository struct {
	executor DBExecutor
}

func NewTeamMemberRepository(db *sql.DB) *teamMemberRepository {
	return &teamMemberRepository{executor: db}
}

const teamMemberColumns = `id, owner_id, name, email, phone, role, member_type, hourly_rate, created_at, updated_at`

func scanTeamMember(row rowScanner) (*domain.TeamMember, error) {
	member := &domain.TeamMember{}
	var phone sql.NullString
	var hourlyRate sql.NullFloat64
	var memberType string
	err := row.Scan(
		&member.ID,
		&member.OwnerID,
		&member.Name,
		&member.Email,
		&phone,
		&member.Role,
		&memberType,
		&hourlyRate,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	member.Phone = stringPtr(phone)
	member.MemberType = domain.MemberType(memberType)
	member.HourlyRate = floatPtr(hourlyRate)
	return member, nil
}

func (r *teamMemberRepository) Create(ctx context.Context, member *domain.TeamMember) error {
	query := `
		INSERT INTO team_members (id, owner_id, name, email, phone, role, member_type, hourly_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.executor.ExecContext(
		ctx,
		query,
		member.ID,
		member.OwnerID,
		member.Name,
		member.Email,
		member.Phone,
		member.Role,
		string(member.MemberType),
		member.HourlyRate,
		member.CreatedAt,
		member.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert team member: %w", err)
	}

	return nil
}

func (r *teamMemberRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.TeamMember, error) {
	query := `SELECT ` + teamMemberColumns + ` FROM team_members WHERE owner_id = $1 AND id = $2`

	member, err := scanTeamMember(r.executor.QueryRowContext(ctx, query, ownerID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return member, nil
}

func (r *teamMemberRepository) List(ctx context.Context, ownerID string) ([]*domain.TeamMember, error) {
	query := `SELECT ` + teamMemberColumns + ` FROM team_members WHERE owner_id = $1 ORDER BY created_at, pk`

	rows, err := r.executor.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]*domain.TeamMember, 0)
	for rows.Next() {
		member, err := scanTeamMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

func (r *teamMemberRepository) Update(ctx context.Context, member *domain.TeamMember) error {
	query := `
		UPDATE team_members
		SET name = $3, email = $4, phone = $5, role = $6, member_type = $7, hourly_rate = $8,
			updated_at = GREATEST($9, updated_at + interval '1 microsecond')
		WHERE owner_id = $1 AND id = $2
		RETURNING created_at, updated_at
	`

	var createdAt, updatedAt time.Time
	err := r.executor.QueryRowContext(
		ctx,
		query,
		member.OwnerID,
		member.ID,
		member.Name,
		member.Email,
		member.Phone,
		member.Role,
		string(member.MemberType),
		member.HourlyRate,
		member.UpdatedAt,
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}

	member.CreatedAt = createdAt
	member.UpdatedAt = updatedAt
	return nil
}

func (r *teamMemberRepository) Delete(ctx context.Context, ownerID, id string) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM team_members WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return err
	}

	return ensureAffected(result, repository.ErrNotFound)
}
