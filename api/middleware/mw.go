package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/grouphub/user-group-services/db"
	"github.com/grouphub/user-group-services/models"
)

type contextKey string

// UserKey holds the authenticated *models.User in the request context.
const UserKey contextKey = "user"

// AuthTokenHeader carries the caller's opaque api token.
const AuthTokenHeader = "X-AUTH-TOKEN"

// WithLogger adds a request-scoped logger to the context and tags every
// entry with a request id.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			logger := log.With().
				Str("host", r.Host).
				Str("method", r.Method).
				Str("url", r.URL.String()).
				Str("remote_addr", r.RemoteAddr).
				Str("request_id", uuid.NewString()).
				Time("timestamp", time.Now()).
				Logger()

			ctx := logger.WithContext(r.Context())
			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}

// RequireToken resolves the X-AUTH-TOKEN header to a stored user and adds
// it to the request context. Requests without a valid token are rejected.
func RequireToken(store *db.MembershipDB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				logger := log.With().Str("handler", "RequireToken").Logger()

				apiToken := r.Header.Get(AuthTokenHeader)
				if apiToken == "" {
					logger.Debug().Msg("auth token header missing")
					http.Error(w, "auth token header missing", http.StatusUnauthorized)
					return
				}

				user, err := store.GetUserByToken(apiToken)
				if err != nil {
					logger.Error().Err(err).Msg("error resolving auth token")
					http.Error(w, "could not resolve auth token", http.StatusInternalServerError)
					return
				}
				if user == nil {
					logger.Debug().Msg("unknown auth token")
					http.Error(w, "invalid auth token", http.StatusUnauthorized)
					return
				}

				ctx := context.WithValue(r.Context(), UserKey, user)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

// CallerFromContext returns the authenticated user placed there by
// RequireToken, if any.
func CallerFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserKey).(*models.User)
	return user, ok
}
