package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pkorchagin/gocatalog/pkg/apperr"
)

// ErrorEnvelope is the failure body shared by every endpoint.
type ErrorEnvelope struct {
	Success bool     `json:"success"`
	Status  int      `json:"status"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// RespondJSON serializes payload with the given status. A nil payload writes
// the status line only.
func RespondJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	if payload == nil {
		w.WriteHeader(status)
		return
	}

	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error encoding response to JSON", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

// RespondAppError maps err to its HTTP status and writes the failure
// envelope. Unclassified errors are logged and returned as a generic 500 so
// internals never leak to the client.
func RespondAppError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		logger.Error("Unexpected error", "error", err)
		RespondError(w, logger, http.StatusInternalServerError, "Internal server error")
		return
	}
	RespondJSON(w, logger, appErr.Kind.HTTPStatus(), ErrorEnvelope{
		Success: false,
		Status:  appErr.Kind.HTTPStatus(),
		Message: appErr.Message,
		Errors:  appErr.Details,
	})
}

// RespondError writes a failure envelope with the given status and message.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	RespondJSON(w, logger, status, ErrorEnvelope{
		Success: false,
		Status:  status,
		Message: message,
	})
}
