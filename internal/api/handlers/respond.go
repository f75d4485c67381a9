package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arjun/cybercafe-backend/internal/domain"
	"github.com/arjun/cybercafe-backend/internal/service"
)

func respondJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

// respondServiceError maps domain and service errors to HTTP statuses.
// Anything unrecognized is a store failure and stays opaque to the caller.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrDuplicateEmail):
		http.Error(w, "Email already registered", http.StatusConflict)
	case errors.Is(err, service.ErrInvalidCredentials):
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, domain.ErrComputerNotFound):
		http.Error(w, "Computer not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrSessionNotFound):
		http.Error(w, "Session not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrItemNotFound):
		http.Error(w, "Inventory item not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrComputerUnavailable):
		http.Error(w, "Computer is not available", http.StatusConflict)
	case errors.Is(err, domain.ErrComputerInUse):
		http.Error(w, "Computer has an open session", http.StatusConflict)
	case errors.Is(err, domain.ErrComputerNotInMaintenance):
		http.Error(w, "Computer is not in maintenance", http.StatusConflict)
	case errors.Is(err, domain.ErrSessionAlreadyClosed):
		http.Error(w, "Session already closed", http.StatusConflict)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
