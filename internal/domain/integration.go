package domain

import "time"

type IntegrationType string

const (
	IntegrationStripe         IntegrationType = "stripe"
	IntegrationGmail          IntegrationType = "gmail"
	IntegrationGoogleCalendar IntegrationType = "google_calendar"
)

func (t IntegrationType) Valid() bool {
	switch t {
	case IntegrationStripe, IntegrationGmail, IntegrationGoogleCalendar:
		return true
	}
	return false
}

// Integration хранится не более чем в одном экземпляре на пару (владелец, тип)
type Integration struct {
	ID              string
	OwnerID         string
	IntegrationType IntegrationType
	IsConnected     bool
	Credentials     map[string]any
	Settings        map[string]any
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
