package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/fittrack/fittrack-api/internal/api/shared"
)

// APIKeyHeader is the canonical header carrying the shared secret. Clients
// and server must agree on this exact name; no alternate spelling is
// accepted.
const APIKeyHeader = "X-API-Key"

// unauthorizedMessage is the single rejection message. It deliberately
// carries no detail about which check failed.
const unauthorizedMessage = "Unauthorized: invalid or missing API key"

// APIKeyMiddleware guards a route group with a single process-wide shared
// secret. This is one global equality check, not a credential system: there
// is no expiry, no per-key scoping, no rotation, and no protection against
// online guessing beyond whatever sits in front of the server.
type APIKeyMiddleware struct {
	secret []byte
	logger *slog.Logger
}

// NewAPIKeyMiddleware creates an APIKeyMiddleware with the given secret.
// The secret is read from configuration exactly once at construction;
// nothing re-reads the environment per request.
func NewAPIKeyMiddleware(secret string, logger *slog.Logger) *APIKeyMiddleware {
	if logger == nil {
		logger = slog.Default()
	}

	return &APIKeyMiddleware{
		secret: []byte(secret),
		logger: logger.With(slog.String("component", "apikey_middleware")),
	}
}

// Require rejects any request whose X-API-Key header does not equal the
// configured secret, before the request reaches a handler or touches the
// store. An empty configured secret rejects every request: a misconfigured
// server must fail closed, never accept any key.
func (m *APIKeyMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		candidate := r.Header.Get(APIKeyHeader)

		if len(m.secret) == 0 {
			m.logger.Error("API key secret is not configured, rejecting all requests")
			shared.RespondWithError(w, r, http.StatusUnauthorized, unauthorizedMessage)
			return
		}

		if subtle.ConstantTimeCompare([]byte(candidate), m.secret) != 1 {
			// Log presence and length only, never the value.
			m.logger.Debug("rejected request with bad API key",
				slog.Bool("header_present", candidate != ""),
				slog.Int("header_length", len(candidate)),
				slog.String("path", r.URL.Path),
				slog.String("method", r.Method))
			shared.RespondWithError(w, r, http.StatusUnauthorized, unauthorizedMessage)
			return
		}

		// Forward the request unchanged: no identity, no claims injected.
		next.ServeHTTP(w, r)
	})
}
