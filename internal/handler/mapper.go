package handler

import (
	"time"

	"github.com/bagdasarian/bizdesk/internal/domain"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func httpClientToDomain(req ClientRequest) domain.ClientFields {
	return domain.ClientFields{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Address: req.Address,
	}
}

func domainClientToHTTP(c *domain.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		UserID:    c.OwnerID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		Address:   c.Address,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func httpProjectToDomain(req ProjectRequest) domain.ProjectFields {
	return domain.ProjectFields{
		Name:        req.Name,
		Description: req.Description,
		ClientID:    req.ClientID,
		Status:      domain.ProjectStatus(req.Status),
		Budget:      req.Budget,
		StartDate:   req.StartDate.ptr(),
		EndDate:     req.EndDate.ptr(),
	}
}

func domainProjectToHTTP(p *domain.Project, clientName *string) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		UserID:      p.OwnerID,
		Name:        p.Name,
		Description: p.Description,
		ClientID:    p.ClientID,
		ClientName:  clientName,
		Status:      string(p.Status),
		Budget:      p.Budget,
		StartDate:   formatTimePtr(p.StartDate),
		EndDate:     formatTimePtr(p.EndDate),
		CreatedAt:   formatTime(p.CreatedAt),
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
}

func httpTeamMemberToDomain(req TeamMemberRequest) domain.TeamMemberFields {
	return domain.TeamMemberFields{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Role:       req.Role,
		MemberType: domain.MemberType(req.MemberType),
		HourlyRate: req.HourlyRate,
	}
}

func domainTeamMemberToHTTP(m *domain.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{
		ID:         m.ID,
		UserID:     m.OwnerID,
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		Role:       m.Role,
		MemberType: string(m.MemberType),
		HourlyRate: m.HourlyRate,
		CreatedAt:  formatTime(m.CreatedAt),
		UpdatedAt:  formatTime(m.UpdatedAt),
	}
}

func domainPaymentToHTTP(p *domain.PaymentTransaction) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID,
		UserID:          p.OwnerID,
		PaymentType:     string(p.PaymentType),
		Amount:          p.Amount,
		Currency:        p.Currency,
		Description:     p.Description,
		ClientID:        p.ClientID,
		TeamMemberID:    p.TeamMemberID,
		ProjectID:       p.ProjectID,
		StripeSessionID: p.ProviderSessionID,
		PaymentStatus:   string(p.PaymentStatus),
		CreatedAt:       formatTime(p.CreatedAt),
		UpdatedAt:       formatTime(p.UpdatedAt),
	}
}

func domainPaymentDetailsToHTTP(d *domain.PaymentDetails) PaymentResponse {
	resp := domainPaymentToHTTP(d.PaymentTransaction)
	resp.ClientName = d.ClientName
	resp.TeamMemberName = d.TeamMemberName
	resp.ProjectName = d.ProjectName
	return resp
}

func domainUserToHTTP(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		ProfilePicture: u.ProfilePicture,
		Theme:          string(u.Theme),
		CreatedAt:      formatTime(u.CreatedAt),
		UpdatedAt:      formatTime(u.UpdatedAt),
	}
}

func domainIntegrationToHTTP(i *domain.Integration) IntegrationResponse {
	settings := i.Settings
	if settings == nil {
		settings = map[string]any{}
	}
	return IntegrationResponse{
		ID:              i.ID,
		UserID:          i.OwnerID,
		IntegrationType: string(i.IntegrationType),
		IsConnected:     i.IsConnected,
		HasCredentials:  len(i.Credentials) > 0,
		Settings:        settings,
		CreatedAt:       formatTime(i.CreatedAt),
		UpdatedAt:       formatTime(i.UpdatedAt),
	}
}

func domainStatsToHTTP(s *domain.DashboardStats) DashboardStatsResponse {
	recent := make([]PaymentResponse, 0, len(s.RecentPayments))
	for _, p := range s.RecentPayments {
		recent = append(recent, domainPaymentToHTTP(p))
	}

	return DashboardStatsResponse{
		ClientsCount:     s.Clients,
		ProjectsCount:    s.Projects,
		TeamMembersCount: s.TeamMembers,
		ActiveProjects:   s.ActiveProjects,
		TotalReceived:    s.TotalReceived,
		TotalSent:        s.TotalSent,
		RecentPayments:   recent,
	}
}

func domainEventToHTTP(e *domain.CalendarEvent) CalendarEventResponse {
	attendees := e.Attendees
	if attendees == nil {
		attendees = []string{}
	}
	return CalendarEventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartTime:   formatTime(e.StartTime),
		EndTime:     formatTime(e.EndTime),
		Attendees:   attendees,
	}
}
