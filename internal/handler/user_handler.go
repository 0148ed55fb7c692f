package handler

import (
	"net/http"

	"github.com/bagdasarian/bizdesk/internal/domain"
)

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	user, err := h.userService.GetOrCreate(r.Context(), owner)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainUserToHTTP(user))
}

func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req UpdateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	_, err = h.userService.UpdateProfile(r.Context(), owner, domain.UserProfileUpdate{
		Name:           req.Name,
		ProfilePicture: req.ProfilePicture,
		Theme:          domain.Theme(req.Theme),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeMessage(w, "Profile updated successfully")
}

// GoogleAuth заглушка OAuth: код не обменивается у Google
func (h *Handler) GoogleAuth(w http.ResponseWriter, r *http.Request) {
	var req GoogleAuthRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	user, token, err := h.userService.GoogleLogin(r.Context(), req.Code)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, GoogleAuthResponse{
		User:  domainUserToHTTP(user),
		Token: token,
	})
}
