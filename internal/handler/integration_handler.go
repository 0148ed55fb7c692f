package handler

import (
	"net/http"

	"github.com/bagdasarian/bizdesk/internal/domain"
)

func (h *Handler) CreateIntegration(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req IntegrationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	integration, err := h.integrationService.Connect(
		r.Context(),
		owner,
		domain.IntegrationType(req.IntegrationType),
		req.Credentials,
		req.Settings,
	)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, IntegrationCreatedResponse{
		Message:     "Integration created successfully",
		Integration: domainIntegrationToHTTP(integration),
	})
}

func (h *Handler) ListIntegrations(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	integrations, err := h.integrationService.List(r.Context(), owner)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]IntegrationResponse, 0, len(integrations))
	for _, i := range integrations {
		resp = append(resp, domainIntegrationToHTTP(i))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) DisconnectIntegration(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	integrationType := domain.IntegrationType(r.PathValue("type"))
	if err := h.integrationService.Disconnect(r.Context(), owner, integrationType); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeMessage(w, "Integration disconnected successfully")
}
