package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mailkite/mailkite/internal/domain"
)

// Key for storing the authenticated user in context
type contextKey string

const AuthUserKey contextKey = "auth_user"

// AuthenticatedUser is the tenant principal resolved from a bearer token.
// The user id doubles as the tenant id for every downstream call.
type AuthenticatedUser struct {
	ID    string
	Email string
}

// TokenVerifier resolves a bearer token into the authenticated user
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*domain.User, error)
}

type AuthConfig struct {
	verifier TokenVerifier
}

// NewAuthMiddleware creates a new auth middleware backed by the given verifier
func NewAuthMiddleware(verifier TokenVerifier) *AuthConfig {
	return &AuthConfig{
		verifier: verifier,
	}
}

// RequireAuth creates a middleware that verifies the JWT bearer token and
// stores the authenticated user on the request context
func (ac *AuthConfig) RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Invalid authorization header format", http.StatusUnauthorized)
				return
			}

			user, err := ac.verifier.VerifyToken(r.Context(), parts[1])
			if err != nil {
				http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			authUser := &AuthenticatedUser{
				ID:    user.ID,
				Email: user.Email,
			}
			ctx := context.WithValue(r.Context(), AuthUserKey, authUser)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the authenticated user stored by RequireAuth
func UserFromContext(ctx context.Context) (*AuthenticatedUser, bool) {
	user, ok := ctx.Value(AuthUserKey).(*AuthenticatedUser)
	return user, ok
}
