package middlewarex

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"weapon_market/pkg/contextx"
	"weapon_market/pkg/httpx/reply"
	"weapon_market/pkg/logx"
)

const bearerPrefix = "Bearer "

// Authentication resolves the bearer token against the configured tokens
// (name -> token) and stores the token name as the user id. Requests without a
// known token pass through anonymously.
func Authentication(tokens map[string]string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			token := strings.TrimPrefix(header, bearerPrefix)

			name, ok := lookupToken(tokens, token)
			if !ok {
				logger(ctx).Warn("unknown bearer token")
				next.ServeHTTP(w, r)

				return
			}

			ctx = contextx.WithUserID(ctx, contextx.UserID(name))
			ctx = contextx.WithLogger(ctx, logger(ctx).With(slog.String(logx.FieldUserID, name)))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser rejects requests that were not authenticated upstream.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !contextx.IsAuthenticated(r.Context()) {
			reply.Unauthorized(r.Context(), w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func lookupToken(tokens map[string]string, token string) (string, bool) {
	if token == "" {
		return "", false
	}

	for name, candidate := range tokens {
		if subtle.ConstantTimeCompare([]byte(candidate), []byte(token)) == 1 {
			return name, true
		}
	}

	return "", false
}
