// Package rest implements the HTTP transport: one handler struct per
// endpoint family, each depending on a minimal service interface. Catalog and
// favorites endpoints answer errors in plain text, user and recording
// endpoints in {"message": ...} JSON; both families share the same status
// mapping.
package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(msg)) //nolint:errcheck
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// clientError maps a service error to an HTTP status and client-facing
// message. notFound maps a missing entity's name to the endpoint's wording;
// entities absent from the map fall back to a generic message.
func clientError(err error, notFound map[string]string) (int, string) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Error()
	}

	var pe *domain.ProviderError
	if errors.As(err, &pe) {
		return http.StatusBadRequest, pe.Message
	}

	var nfe *domain.NotFoundError
	if errors.As(err, &nfe) {
		if msg, ok := notFound[nfe.Entity]; ok {
			return http.StatusNotFound, msg
		}
		return http.StatusNotFound, "Not found"
	}
	if errors.Is(err, domain.ErrNotFound) {
		return http.StatusNotFound, "Not found"
	}

	return http.StatusInternalServerError, "Internal server error"
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}
