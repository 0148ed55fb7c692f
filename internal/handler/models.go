package handler

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bagdasarian/bizdesk/internal/domain"
)

// timeLayouts форматы дат, которые принимаются во входящих запросах.
// Значения без часового пояса считаются UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FlexibleTime дата во входящем JSON: ISO 8601 с поясом, без пояса или только дата
type FlexibleTime struct {
	time.Time
}

func (t *FlexibleTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.NewValidationError("date must be a string")
	}

	raw = strings.TrimSpace(raw)
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return domain.NewValidationError("invalid date %q", raw)
}

func (t *FlexibleTime) ptr() *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time
	return &v
}

// FlexibleAmount сумма во входящем JSON: число или строка с числом
type FlexibleAmount float64

func (a *FlexibleAmount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	text := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = strings.TrimSpace(unquoted)
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return domain.NewValidationError("amount must be a number")
	}
	*a = FlexibleAmount(value)
	return nil
}

// CheckoutMetadata принимает любые значения. Провайдер хранит метаданные
// строками, поэтому не строковые значения сохраняются в виде JSON, null пропускается.
type CheckoutMetadata map[string]string

func (m *CheckoutMetadata) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.NewValidationError("metadata must be an object")
	}
	if raw == nil {
		*m = nil
		return nil
	}

	out := make(CheckoutMetadata, len(raw))
	for key, value := range raw {
		if string(value) == "null" {
			continue
		}

		var text string
		if err := json.Unmarshal(value, &text); err == nil {
			out[key] = text
			continue
		}

		var compact bytes.Buffer
		if err := json.Compact(&compact, value); err != nil {
			return domain.NewValidationError("invalid metadata value for %q", key)
		}
		out[key] = compact.String()
	}

	*m = out
	return nil
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type ClientRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Address *string `json:"address"`
}

type ClientResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Company   *string `json:"company"`
	Address   *string `json:"address"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type ProjectRequest struct {
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	ClientID    string        `json:"client_id"`
	Status      string        `json:"status"`
	Budget      *float64      `json:"budget"`
	StartDate   *FlexibleTime `json:"start_date"`
	EndDate     *FlexibleTime `json:"end_date"`
}

type ProjectResponse struct {
	ID          string   `json:"id"`
	UserID      string   `json:"user_id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	ClientID    string   `json:"client_id"`
	ClientName  *string  `json:"client_name,omitempty"`
	Status      string   `json:"status"`
	Budget      *float64 `json:"budget"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

type TeamMemberRequest struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      *string  `json:"phone"`
	Role       string   `json:"role"`
	MemberType string   `json:"member_type"`
	HourlyRate *float64 `json:"hourly_rate"`
}

type TeamMemberResponse struct {
	ID         string   `json:"id"`
	UserID     string   `json:"user_id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      *string  `json:"phone"`
	Role       string   `json:"role"`
	MemberType string   `json:"member_type"`
	HourlyRate *float64 `json:"hourly_rate"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

type CheckoutSessionRequest struct {
	Amount      FlexibleAmount   `json:"amount"`
	Currency    string           `json:"currency"`
	Description *string          `json:"description"`
	ClientID    *string          `json:"client_id"`
	ProjectID   *string          `json:"project_id"`
	Metadata    CheckoutMetadata `json:"metadata"`
}

type CheckoutSessionResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

type CheckoutStatusResponse struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	AmountTotal   int64  `json:"amount_total"`
	Currency      string `json:"currency"`
}

type PaymentResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	PaymentType     string  `json:"payment_type"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	Description     *string `json:"description"`
	ClientID        *string `json:"client_id"`
	TeamMemberID    *string `json:"team_member_id"`
	ProjectID       *string `json:"project_id"`
	StripeSessionID *string `json:"stripe_session_id"`
	PaymentStatus   string  `json:"payment_status"`
	ClientName      *string `json:"client_name,omitempty"`
	TeamMemberName  *string `json:"team_member_name,omitempty"`
	ProjectName     *string `json:"project_name,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type DashboardStatsResponse struct {
	ClientsCount     int               `json:"clients_count"`
	ProjectsCount    int               `json:"projects_count"`
	TeamMembersCount int               `json:"team_members_count"`
	ActiveProjects   int               `json:"active_projects"`
	TotalReceived    float64           `json:"total_received"`
	TotalSent        float64           `json:"total_sent"`
	RecentPayments   []PaymentResponse `json:"recent_payments"`
}

type UserResponse struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	Name           string  `json:"name"`
	ProfilePicture *string `json:"profile_picture"`
	Theme          string  `json:"theme"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type UpdateProfileRequest struct {
	Name           string  `json:"name"`
	ProfilePicture *string `json:"profile_picture"`
	Theme          string  `json:"theme"`
}

type GoogleAuthRequest struct {
	Code   string `json:"code"`
	UserID string `json:"user_id"`
}

type GoogleAuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type IntegrationRequest struct {
	IntegrationType string         `json:"integration_type"`
	Credentials     map[string]any `json:"credentials"`
	Settings        map[string]any `json:"settings"`
}

// IntegrationResponse не содержит учетных данных, только признак их наличия
type IntegrationResponse struct {
	ID              string         `json:"id"`
	UserID          string         `json:"user_id"`
	IntegrationType string         `json:"integration_type"`
	IsConnected     bool           `json:"is_connected"`
	HasCredentials  bool           `json:"has_credentials"`
	Settings        map[string]any `json:"settings"`
	CreatedAt       string         `json:"created_at"`
	UpdatedAt       string         `json:"updated_at"`
}

type IntegrationCreatedResponse struct {
	Message     string              `json:"message"`
	Integration IntegrationResponse `json:"integration"`
}

type CalendarEventResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	Attendees   []string `json:"attendees"`
}

type CalendarEventsResponse struct {
	Events []CalendarEventResponse `json:"events"`
}

type UpcomingMeetingResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	StartTime      string `json:"start_time"`
	AttendeesCount int    `json:"attendees_count"`
}

type UpcomingMeetingsResponse struct {
	UpcomingMeetings []UpcomingMeetingResponse `json:"upcoming_meetings"`
}
