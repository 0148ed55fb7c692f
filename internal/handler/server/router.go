package server

import (
	"net/http"

	"github.com/bagdasarian/bizdesk/internal/handler"
)

// APIPrefix под этим префиксом доступны те же маршруты, что и в корне
const APIPrefix = "/api"

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("GET /health", h.Health)

	mux.HandleFunc("POST /clients", h.CreateClient)
	mux.HandleFunc("GET /clients", h.ListClients)
	mux.HandleFunc("GET /clients/{id}", h.GetClient)
	mux.HandleFunc("PUT /clients/{id}", h.UpdateClient)
	mux.HandleFunc("DELETE /clients/{id}", h.DeleteClient)

	mux.HandleFunc("POST /projects", h.CreateProject)
	mux.HandleFunc("GET /projects", h.ListProjects)
	mux.HandleFunc("GET /projects/{id}", h.GetProject)
	mux.HandleFunc("PUT /projects/{id}", h.UpdateProject)
	mux.HandleFunc("DELETE /projects/{id}", h.DeleteProject)

	mux.HandleFunc("POST /team-members", h.CreateTeamMember)
	mux.HandleFunc("GET /team-members", h.ListTeamMembers)
	mux.HandleFunc("GET /team-members/{id}", h.GetTeamMember)
	mux.HandleFunc("PUT /team-members/{id}", h.UpdateTeamMember)
	mux.HandleFunc("DELETE /team-members/{id}", h.DeleteTeamMember)

	mux.HandleFunc("GET /auth/me", h.GetMe)
	mux.HandleFunc("PUT /auth/me", h.UpdateMe)
	mux.HandleFunc("POST /auth/google", h.GoogleAuth)

	mux.HandleFunc("GET /integrations", h.ListIntegrations)
	mux.HandleFunc("POST /integrations", h.CreateIntegration)
	mux.HandleFunc("DELETE /integrations/{type}", h.DisconnectIntegration)

	mux.HandleFunc("GET /calendar/events", h.GetCalendarEvents)
	mux.HandleFunc("GET /calendar/upcoming", h.GetUpcomingMeetings)

	mux.HandleFunc("POST /payments/checkout/session", h.CreateCheckoutSession)
	mux.HandleFunc("GET /payments/checkout/status/{session_id}", h.GetCheckoutStatus)
	mux.HandleFunc("POST /payments/v1/checkout/session", h.CreateCheckoutSession)
	mux.HandleFunc("GET /payments/v1/checkout/status/{session_id}", h.GetCheckoutStatus)
	mux.HandleFunc("GET /payments", h.ListPayments)
	mux.HandleFunc("GET /payments/export", h.ExportPayments)
	mux.HandleFunc("GET /payments/{id}", h.GetPayment)

	mux.HandleFunc("GET /dashboard/stats", h.GetDashboardStats)
}

// NewRouter собирает маршруты в корне и под /api и оборачивает их в middleware
func NewRouter(h *handler.Handler, middlewares ...handler.Middleware) http.Handler {
	routes := http.NewServeMux()
	SetupRoutes(routes, h)

	root := http.NewServeMux()
	root.Handle(APIPrefix+"/", http.StripPrefix(APIPrefix, routes))
	root.Handle("/", routes)

	return handler.Chain(root, middlewares...)
}
