// Package middleware HTTP middleware: аутентификация и метрики
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/staymarket/booking-service/internal/api/handlers"
)

const headerUserID = "X-User-ID"

const msgMissingUserID = "отсутствует заголовок X-User-ID"

type ctxKey int

const userIDKey ctxKey = iota

// Auth проверяет наличие корректного заголовка X-User-ID
// и кладет идентификатор пользователя в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(headerUserID)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает идентификатор пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
