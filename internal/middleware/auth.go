package middleware

import (
	"context"
	"net/http"
	"strings"

	"app/internal/logger"
	"app/internal/model"
	"app/internal/util"
)

// Injected key type to avoid context collisions
type contextKey string

const (
	UserContextKey = contextKey("user")
	RoleContextKey = contextKey("role")
)

// UserID extracts the authenticated user's id from the request context.
func UserID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(UserContextKey).(int)
	return id, ok
}

// Role extracts the authenticated user's role from the request context.
func Role(ctx context.Context) (model.Role, bool) {
	role, ok := ctx.Value(RoleContextKey).(model.Role)
	return role, ok
}

func AuthMiddleware(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := logger.New()
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Error().Msg("Authorization header missing")
				http.Error(w, "Authorization header missing", http.StatusUnauthorized)
				return
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				logger.Error().Msg("Invalid authorization header")
				http.Error(w, "Invalid authorization header", http.StatusUnauthorized)
				return
			}
			claims, err := util.ValidateJWT(parts[1], jwtSecret)
			if err != nil {
				logger.Error().Msgf("Invalid token: %+v", err)
				http.Error(w, "Invalid token: "+err.Error(), http.StatusUnauthorized)
				return
			}
			userID, err := claims.UserID()
			if err != nil {
				logger.Error().Msgf("Invalid token subject: %+v", err)
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}
			// Embed user id and role into the request context
			ctx := context.WithValue(r.Context(), UserContextKey, userID)
			ctx = context.WithValue(ctx, RoleContextKey, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a handler to the given roles. It runs inside
// AuthMiddleware, so the role is already in the context.
func RequireRole(roles ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := Role(r.Context())
			if !ok {
				http.Error(w, "Unauthorized: role not found in context", http.StatusUnauthorized)
				return
			}
			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}
			http.Error(w, "Forbidden: insufficient role", http.StatusForbidden)
		})
	}
}
