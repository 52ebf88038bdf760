package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"blogpub/internal/repository"
	"blogpub/internal/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeServiceError maps the known error set to HTTP statuses. Anything
// unrecognized is a store fault: logged server-side, surfaced as a
// generic 500 with no internal detail.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrUnauthenticated):
		WriteError(w, "authentication required", http.StatusUnauthorized)
	case errors.Is(err, repository.ErrUsernameTaken):
		// Deliberately specific: registration UX needs it, and the unique
		// index makes the message trustworthy.
		WriteError(w, "username already taken", http.StatusConflict)
	case errors.Is(err, repository.ErrNotFoundOrForbidden):
		WriteError(w, "publication not found", http.StatusNotFound)
	case errors.Is(err, repository.ErrUserNotFound):
		WriteError(w, "user not found", http.StatusNotFound)
	default:
		slog.Error("internal error", "error", err)
		WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
