package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"task-manager-service/internal/dto"
)

type AuthService interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

type contextKey string

const UserIDKey contextKey = "user_id"

// AuthMiddleware check JWT token in Authorization and puts the actor id in
// the request context. Every failure collapses into the same 401.
func AuthMiddleware(authService AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondError(w, http.StatusUnauthorized, dto.ErrorResponse{
					Error: dto.ErrorDetail{
						Code:    dto.ErrCodeUnauthenticated,
						Message: "missing authorization header",
					},
				})
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respondError(w, http.StatusUnauthorized, dto.ErrorResponse{
					Error: dto.ErrorDetail{
						Code:    dto.ErrCodeUnauthenticated,
						Message: "invalid authorization header format",
					},
				})
				return
			}

			token := parts[1]
			userID, err := authService.ValidateToken(r.Context(), token)
			if err != nil {
				respondError(w, http.StatusUnauthorized, dto.ErrorResponse{
					Error: dto.ErrorDetail{
						Code:    dto.ErrCodeUnauthenticated,
						Message: "invalid or expired token",
					},
				})
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ActorID extracts the authenticated user id set by AuthMiddleware.
func ActorID(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

func respondError(w http.ResponseWriter, status int, errResp dto.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		slog.Warn("failed to encode JSON response", "error", err)
	}
}
