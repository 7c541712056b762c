package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/loicseguin/velolog/internal/domain"
)

// errorResponse is the JSON error envelope shared by every endpoint.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Encoding of handler-built values cannot fail; NaN never reaches here.
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the error envelope with the given status, code, and
// human-readable message.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// writeServiceError maps a service-layer error onto the HTTP surface:
//
//	ErrValidation, ErrInvalidDuration → 422 validation_error
//	ErrNotFound                      → 404 not_found
//	ErrNoURL                         → 404 no_url
//	ErrEmptySet                      → 404 no_data
//	anything else (ErrCorruptStore,
//	ErrIO, unexpected)               → 500 internal_error
//
// The store-corruption detail stays out of the response body; it is for the
// operator's logs, not the API client.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidDuration):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
	case errors.Is(err, domain.ErrNoURL):
		writeError(w, http.StatusNotFound, "no_url", "ride has no URL")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "ride not found")
	case errors.Is(err, domain.ErrEmptySet):
		writeError(w, http.StatusNotFound, "no_data", "no rides for the requested scope")
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

// unwrapMessage extracts the human-readable part from a wrapped validation
// error, e.g. "service.RideService.Add: validation error: distance must be
// non-negative" → "distance must be non-negative".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, marker := range []string{
		domain.ErrValidation.Error() + ": ",
		domain.ErrInvalidDuration.Error() + ": ",
	} {
		if i := strings.LastIndex(msg, marker); i >= 0 {
			return msg[i+len(marker):]
		}
	}
	return msg
}
