package domain

import (
	"strings"
	"time"
)

type MemberType string

const (
	MemberTypeInternal   MemberType = "internal"
	MemberTypeFreelancer MemberType = "freelancer"
)

type TeamMemberFields struct {
	Name       string
	Email      string
	Phone      *string
	Role       string
	MemberType MemberType
	HourlyRate *float64
}

type TeamMember struct {
	ID      string
	OwnerID string
	TeamMemberFields
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (f TeamMemberFields) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return NewValidationError("name is required")
	}
	if strings.TrimSpace(f.Email) == "" {
		return NewValidationError("email is required")
	}
	if strings.TrimSpace(f.Role) == "" {
		return NewValidationError("role is required")
	}
	switch f.MemberType {
	case MemberTypeInternal, MemberTypeFreelancer:
	case "":
		return NewValidationError("member_type is required")
	default:
		return NewValidationError("invalid member_type %q", f.MemberType)
	}
	return nil
}
