package middleware

import (
	"net/http"
	"strings"

	"github.com/zatekoja/tastebuddies/frontend/internal/infrastructure/observability"
)

// CrossOriginMiddleware rejects unsafe cross-site requests with 403 before
// they reach a handler. The session rides on a cookie, so a form posted from
// another site would otherwise act for the signed-in user. Origins in
// trustedOrigins are let through; "*" is not a trusted origin.
func CrossOriginMiddleware(trustedOrigins []string) func(http.Handler) http.Handler {
	protection := http.NewCrossOriginProtection()
	for _, origin := range trustedOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "" || origin == "*" {
			continue
		}
		if err := protection.AddTrustedOrigin(origin); err != nil {
			observability.GetLogger().Warn().Err(err).Str("origin", origin).Msg("Ignoring invalid trusted origin")
		}
	}
	protection.SetDenyHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		observability.LoggerFromContext(r.Context()).Warn().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("origin", r.Header.Get("Origin")).
			Str("sec_fetch_site", r.Header.Get("Sec-Fetch-Site")).
			Msg("Cross-origin request rejected")
		http.Error(w, "cross-origin request rejected", http.StatusForbidden)
	}))

	return protection.Handler
}
