package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/renato0307/pomo/internal/domain"
	"github.com/renato0307/pomo/internal/logging"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.Logger.Error("Failed to encode response", "error", err)
	}
}

func respondMessage(w http.ResponseWriter, message string, status int) {
	respondJSON(w, errorResponse{Error: message}, status)
}

// respondError maps domain errors to status codes. Unexpected errors are logged and hidden.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrUnparsable):
		respondMessage(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrSessionNotFound):
		respondMessage(w, "not found", http.StatusNotFound)
	default:
		logging.Logger.Error("Request failed", "error", err)
		respondMessage(w, "internal error", http.StatusInternalServerError)
	}
}

// decodeJSON reads an optional JSON body. An empty body leaves target untouched.
func decodeJSON(r *http.Request, target any) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: invalid request body", domain.ErrInvalidInput)
	}
	return nil
}
