package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/velamart/saferoute-bridge/api/responses"
	pkgerrors "github.com/velamart/saferoute-bridge/pkg/errors"
	"github.com/velamart/saferoute-bridge/pkg/logger"
)

const tokenHeader = "Token"

// ProviderToken gates the provider endpoints behind the shared API token.
// Requests without a matching token get a bare 401.
func ProviderToken(token string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !ValidToken(token, r.Header.Get(tokenHeader)) {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid provider token"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ValidToken compares a presented token against the configured one in
// constant time. An empty configured or presented token never matches.
func ValidToken(configured, presented string) bool {
	if configured == "" || presented == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(presented)) == 1
}
