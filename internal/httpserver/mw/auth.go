package mw

import (
	"net/http"
	"strings"

	"github.com/compasshq/compass/internal/logger"
	"github.com/compasshq/compass/internal/session"
)

// Auth resolves the session token (cookie first, then Authorization bearer)
// to an account identity and attaches it to the request context. Requests
// without a valid session pass through anonymously; account-scoped resolvers
// are the ones that reject them, so no catalog data is ever blocked here.
func Auth(store session.Store, cookieName string, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := sessionToken(r, cookieName)
			if token != "" {
				accountID, err := store.Lookup(r.Context(), token)
				switch {
				case err != nil:
					// A broken session backend degrades to anonymous
					// rather than failing catalog-only queries.
					log.Warn("session lookup failed", logger.Error(err))
				case accountID != "":
					r = r.WithContext(session.WithIdentity(r.Context(), accountID))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func sessionToken(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	auth := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}
