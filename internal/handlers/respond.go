// Package handlers implements the HTTP API.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/textforge/textforge/internal/models"
)

// RespondWithJSON sends a JSON response with the given status code.
func RespondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers are already written; just log the failure.
		slog.Error("Failed to encode JSON response", "error", err, "statusCode", statusCode)
	}
}

// RespondWithError sends a JSON error response with the given status code.
func RespondWithError(w http.ResponseWriter, statusCode int, message string, err error) {
	errorResp := models.ErrorResponse{
		OK:    false,
		Error: message,
	}
	if err != nil {
		errorResp.Details = err.Error()
	}
	RespondWithJSON(w, statusCode, errorResp)
}
