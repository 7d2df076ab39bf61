// internal/middleware/identity.go
package middleware

import (
	"context"
	"net/http"

	"marketing-asset-backend/internal/models"
)

type contextKey string

const identityContextKey contextKey = "identity"

// Identity attaches the acting identity to every request. There is no
// authentication: all requests act as the configured demo identity.
func Identity(demo models.Identity) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithIdentity(r.Context(), demo)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// GetIdentityFromContext returns the identity set by the Identity middleware.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(models.Identity)
	return identity, ok
}
