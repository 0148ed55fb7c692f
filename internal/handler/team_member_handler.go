package handler

import (
	"net/http"
)

func (h *Handler) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req TeamMemberRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	member, err := h.teamMemberService.Create(r.Context(), owner, httpTeamMemberToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamMemberToHTTP(member))
}

func (h *Handler) ListTeamMembers(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	members, err := h.teamMemberService.List(r.Context(), owner)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]TeamMemberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, domainTeamMemberToHTTP(m))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetTeamMember(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	member, err := h.teamMemberService.Get(r.Context(), owner, r.PathValue("id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamMemberToHTTP(member))
}

func (h *Handler) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req TeamMemberRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	if _, err := h.teamMemberService.Update(r.Context(), owner, r.PathValue("id"), httpTeamMemberToDomain(req)); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeMessage(w, "Team member updated successfully")
}

func (h *Handler) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.teamMemberService.Delete(r.Context(), owner, r.PathValue("id")); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeMessage(w, "Team member deleted successfully")
}
