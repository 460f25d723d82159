package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/Jib667/Watchdog/pkg/logging"
)

// RequestIDHeader is the header used to propagate request IDs.
const RequestIDHeader = "X-Request-ID"

// RequestID attaches a request ID to each request. An ID supplied by the
// client in the X-Request-ID header is reused; otherwise a new one is
// generated. The ID is echoed back in the response and stored in the
// request context for log correlation.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = newRequestID()
			}

			w.Header().Set(RequestIDHeader, id)
			ctx := logging.WithRequestID(r.Context(), id)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// newRequestID returns a random 16-character hex string.
func newRequestID() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "unknown"
	}
	return hex.EncodeToString(buf[:])
}
