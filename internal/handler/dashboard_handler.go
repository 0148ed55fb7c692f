package handler

import (
	"net/http"
)

func (h *Handler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	stats, err := h.dashboardService.GetStats(r.Context(), owner)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainStatsToHTTP(stats))
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: formatTime(h.now()),
	})
}
