package handlers

import (
	"encoding/json"
	"net/http"

	"blogpub/internal/session"
)

type UpdateProfileRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"omitempty,min=8"`
}

// UpdateProfile edits the acting user's username and optionally the
// password. The password always goes through the auth service's hashing;
// the session snapshot is refreshed so the new username shows up on
// subsequent requests without re-login.
func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	if sess == nil {
		WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "invalid request data", http.StatusBadRequest)
		return
	}

	user, err := h.AuthService.UpdateProfile(r.Context(), sess.UserID, req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if token := h.sessionToken(r); token != "" {
		if err := h.Sessions.Refresh(r.Context(), token, user); err != nil {
			writeServiceError(w, err)
			return
		}
	}

	WriteJSON(w, user, http.StatusOK)
}
