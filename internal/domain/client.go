package domain

import (
	"strings"
	"time"
)

// ClientFields редактируемые поля клиента
type ClientFields struct {
	Name    string
	Email   string
	Phone   *string
	Company *string
	Address *string
}

type Client struct {
	ID      string
	OwnerID string
	ClientFields
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (f ClientFields) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return NewValidationError("name is required")
	}
	if strings.TrimSpace(f.Email) == "" {
		return NewValidationError("email is required")
	}
	return nil
}
