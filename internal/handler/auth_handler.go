package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"unicode/utf8"

	"blogpub/internal/repository"
	"blogpub/internal/service"
	"blogpub/internal/session"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "invalid request data", http.StatusBadRequest)
		return
	}

	// Security-relevant checks are restated here even though the service
	// repeats them.
	if utf8.RuneCountInString(req.Password) < h.Cfg.MinPasswordLength {
		WriteError(w, "password too short", http.StatusBadRequest)
		return
	}

	user, err := h.AuthService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, user, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "invalid request data", http.StatusBadRequest)
		return
	}

	user, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		// One message for both unknown user and wrong password; the
		// response must not reveal which part was wrong.
		if errors.Is(err, repository.ErrUserNotFound) || errors.Is(err, service.ErrBadPassword) {
			WriteError(w, "incorrect credentials", http.StatusUnauthorized)
			return
		}
		writeServiceError(w, err)
		return
	}

	token, err := h.Sessions.Establish(r.Context(), user)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.setSessionCookie(w, token)
	WriteJSON(w, user, http.StatusOK)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	token := h.sessionToken(r)
	if token == "" {
		WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	if err := h.Sessions.Destroy(r.Context(), token); err != nil {
		writeServiceError(w, err)
		return
	}

	h.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	if sess == nil {
		WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	WriteJSON(w, sess, http.StatusOK)
}

func (h *Handlers) sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(h.Cfg.SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (h *Handlers) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.Cfg.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.Cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handlers) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.Cfg.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
