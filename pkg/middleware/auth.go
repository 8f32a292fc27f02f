package middleware

import (
	"net/http"
	"strings"

	"resource-booking/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate verifies the bearer token and attaches the decoded identity to
// the request context.
func Authenticate(jwtSecret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Access denied. No token provided.")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			identity, err := utils.ParseToken(jwtSecret, parts[1])
			if err != nil {
				logger.Warn("Rejected bearer token",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseForbidden(w, "Invalid or expired token.")
				return
			}

			ctx := utils.SetIdentityContext(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route to identities whose role is in the allowed set.
// Must run after Authenticate.
func RequireRole(logger *zap.Logger, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			for _, role := range roles {
				if identity.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			logger.Warn("Insufficient role for route",
				zap.String("user_id", identity.ID.String()),
				zap.String("role", identity.Role),
				zap.String("path", r.URL.Path))
			utils.ResponseForbidden(w, "Access denied. Insufficient permissions.")
		})
	}
}
