package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/wahidrahimi/ragavani-backend/pkg/ctxutil"
)

// RequestID attaches a request id to the context and echoes it in the
// X-Request-Id response header. An id sent by the client is reused.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		ctx := ctxutil.WithRequestID(r.Context(), id)
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
