package http

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/siteforge-io/siteforge/internal/logger"
)

// adminOnly is an HTTP middleware that guards mutating routes with the
// static admin token.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token and compares it against the configured admin token in constant
// time. On success the request is forwarded to the next handler.
//
// The middleware rejects requests in the following cases:
//   - No admin token is configured: HTTP 403. Writes are disabled
//     entirely rather than left open.
//   - The "Authorization" header is absent or malformed: HTTP 401.
//   - The presented token does not match: HTTP 401.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if h.auth.AdminToken == "" {
			log.Warn().Msg("write rejected: no admin token configured")
			http.Error(w, "writes are disabled", http.StatusForbidden)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		if subtle.ConstantTimeCompare([]byte(tokenString), []byte(h.auth.AdminToken)) != 1 {
			log.Warn().Msg("write rejected: wrong admin token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
