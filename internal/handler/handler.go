package handler

import (
	"time"

	"github.com/bagdasarian/bizdesk/internal/service"
	"go.uber.org/zap"
)

// Services набор сервисов, которые обслуживает HTTP слой
type Services struct {
	Clients      service.ClientService
	Projects     service.ProjectService
	TeamMembers  service.TeamMemberService
	Payments     service.PaymentService
	Users        service.UserService
	Integrations service.IntegrationService
	Calendar     service.CalendarService
	Dashboard    service.DashboardService
}

type Handler struct {
	clientService      service.ClientService
	projectService     service.ProjectService
	teamMemberService  service.TeamMemberService
	paymentService     service.PaymentService
	userService        service.UserService
	integrationService service.IntegrationService
	calendarService    service.CalendarService
	dashboardService   service.DashboardService
	logger             *zap.Logger
	now                func() time.Time
}

func NewHandler(services Services, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		clientService:      services.Clients,
		projectService:     services.Projects,
		teamMemberService:  services.TeamMembers,
		paymentService:     services.Payments,
		userService:        services.Users,
		integrationService: services.Integrations,
		calendarService:    services.Calendar,
		dashboardService:   services.Dashboard,
		logger:             logger,
		now:                time.Now,
	}
}
