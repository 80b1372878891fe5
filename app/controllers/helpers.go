package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Beto2203/feedback-backend/app/auth"
	"github.com/Beto2203/feedback-backend/app/middleware"
	"github.com/Beto2203/feedback-backend/app/repositories"
	"github.com/Beto2203/feedback-backend/app/services"
)

// Helper functions for consistent response handling

func sendJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// statusForError maps service errors to wire status codes. A missing record
// maps to 400, matching the API's established convention.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrNotAuthenticated),
		errors.Is(err, services.ErrWrongUser),
		errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrDuplicateUsername),
		errors.Is(err, repositories.ErrNotFound):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// requireIdentity fetches the authenticated identity or writes a 401
func requireIdentity(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	identity, ok := middleware.IdentityFrom(r)
	if !ok {
		sendError(w, "token missing or invalid", http.StatusUnauthorized)
		return auth.Identity{}, false
	}
	return identity, true
}
