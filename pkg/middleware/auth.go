package middleware

import (
	"net/http"
	"staybook/pkg/auth"
	"staybook/pkg/logger"
)

// Identity verifies the bearer token when one is sent and stores the caller
// on the request context. Requests without a token continue anonymously;
// handlers decide whether a route needs an identity.
func Identity(verifier auth.Verifier, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.BearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := verifier.Verify(token)
			if err != nil {
				log.Ctx(r.Context()).Warn("Rejected identity token",
					"error", err,
					"path", r.URL.Path,
				)
				writeJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
		})
	}
}
