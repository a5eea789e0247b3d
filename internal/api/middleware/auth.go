// Package middleware HTTP middleware шлюза: аутентификация и метрики
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/curanest/booking-gateway/internal/api/handlers"
	"github.com/curanest/booking-gateway/internal/integrations/curanest"
)

const (
	// HeaderUserID заголовок с ID пользователя, проставляемый API-gateway
	HeaderUserID = "X-User-ID"

	headerAuthorization = "Authorization"
	bearerPrefix        = "Bearer "

	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgInvalidUserID = "некорректный X-User-ID, ожидается UUID"
)

type userIDKey struct{}

// Auth проверяет X-User-ID и пробрасывает bearer-токен для вызовов бэкенда
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get(HeaderUserID))
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidUserID)
			return
		}

		ctx := WithUserID(r.Context(), id.String())
		if token := bearerToken(r); token != "" {
			ctx = curanest.WithAccessToken(ctx, token)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithUserID кладет ID пользователя в контекст
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserID достает ID пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey{}).(string)
	return userID, ok && userID != ""
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get(headerAuthorization)
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}
