package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vedran77/miniwall/internal/domain"
	"github.com/vedran77/miniwall/internal/repository"
	"github.com/vedran77/miniwall/internal/token"
)

type contextKey string

const UserKey contextKey = "user"

// Auth resolves the bearer token from the Authorization header into the
// authenticated user and attaches it to the request context. Every failure
// short-circuits with 401; nothing downstream runs without a resolved user.
func Auth(tokens *token.Service, users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				writeUnauthorized(w, "MISSING_TOKEN", "Missing bearer token")
				return
			}

			tokenStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

			claims, err := tokens.Verify(tokenStr)
			if err != nil {
				if errors.Is(err, token.ErrTokenExpired) {
					writeUnauthorized(w, "TOKEN_EXPIRED", "Token has expired")
				} else {
					writeUnauthorized(w, "TOKEN_INVALID", "Access denied")
				}
				return
			}

			// The token was valid, but its subject may no longer exist.
			user, err := users.GetByID(r.Context(), claims.Subject)
			if err != nil || user == nil {
				writeUnauthorized(w, "UNKNOWN_USER", "Unknown user")
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUser extracts the authenticated user from the request context.
func GetUser(ctx context.Context) *domain.User {
	return ctx.Value(UserKey).(*domain.User)
}

func writeUnauthorized(w http.ResponseWriter, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":{"code":"` + code + `","message":"` + message + `"}}`))
}
