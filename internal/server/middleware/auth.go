package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/todosync/internal/server/token"
	"github.com/iudanet/todosync/pkg/api"
)

// TokenValidator проверяет bearer токен
type TokenValidator interface {
	Validate(tokenString string) (*token.Claims, error)
}

type subjectKey struct{}

// Auth создает middleware для проверки JWT токена из заголовка Authorization
func Auth(logger *slog.Logger, validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Missing Authorization header", "request_id", GetRequestID(r.Context()))
				writeError(w, api.ErrCodeUnauthorized, "missing token", http.StatusUnauthorized)
				return
			}

			// Ожидаем формат: "Bearer <token>"
			scheme, tokenString, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
				logger.Warn("Invalid Authorization header format", "request_id", GetRequestID(r.Context()))
				writeError(w, api.ErrCodeUnauthorized, "invalid token format", http.StatusUnauthorized)
				return
			}

			claims, err := validator.Validate(tokenString)
			if err != nil {
				logger.Warn("Invalid access token",
					"request_id", GetRequestID(r.Context()),
					"error", err)
				writeError(w, api.ErrCodeUnauthorized, "invalid token", http.StatusUnauthorized)
				return
			}

			logger.Debug("Client authenticated", "subject", claims.Subject)

			ctx := context.WithValue(r.Context(), subjectKey{}, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSubject возвращает subject токена, прошедшего проверку в Auth
func GetSubject(ctx context.Context) string {
	subject, _ := ctx.Value(subjectKey{}).(string)
	return subject
}
