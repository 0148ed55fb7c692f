package handler

import (
	"net/http"
)

func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req ClientRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	client, err := h.clientService.Create(r.Context(), owner, httpClientToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainClientToHTTP(client))
}

func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	clients, err := h.clientService.List(r.Context(), owner)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		resp = append(resp, domainClientToHTTP(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetClient(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	client, err := h.clientService.Get(r.Context(), owner, r.PathValue("id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainClientToHTTP(client))
}

func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req ClientRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	if _, err := h.clientService.Update(r.Context(), owner, r.PathValue("id"), httpClientToDomain(req)); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeMessage(w, "Client updated successfully")
}

func (h *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.clientService.Delete(r.Context(), owner, r.PathValue("id")); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeMessage(w, "Client deleted successfully")
}
