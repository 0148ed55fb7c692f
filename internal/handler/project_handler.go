package handler

import (
	"net/http"
)

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req ProjectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	project, err := h.projectService.Create(r.Context(), owner, httpProjectToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainProjectToHTTP(project, nil))
}

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	projects, err := h.projectService.List(r.Context(), owner)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		resp = append(resp, domainProjectToHTTP(p.Project, p.ClientName))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	project, err := h.projectService.Get(r.Context(), owner, r.PathValue("id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainProjectToHTTP(project.Project, project.ClientName))
}

func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req ProjectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	if _, err := h.projectService.Update(r.Context(), owner, r.PathValue("id"), httpProjectToDomain(req)); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeMessage(w, "Project updated successfully")
}

func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.projectService.Delete(r.Context(), owner, r.PathValue("id")); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeMessage(w, "Project deleted successfully")
}
