package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/GoArmGo/InventoryApp/internal/core/ports"
	"github.com/GoArmGo/InventoryApp/internal/domain"
)

// RequestLogger — middleware для логирования HTTP-запросов.
func RequestLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Оборачиваем ResponseWriter, чтобы знать статус
			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(ww, r)

			duration := time.Since(start)
			logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.statusCode,
				"duration_ms", duration.Milliseconds(),
			)
		})
	}
}

// responseWriter нужен, чтобы перехватывать код ответа
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

type identityCtxKeyType int

const identityCtxKey identityCtxKeyType = iota

// AuthGuard — middleware, проверяющий bearer-токен на защищенных маршрутах.
// Каждый запрос аутентифицируется независимо, состояние между запросами
// не хранится. Проверенный пользователь кладется в контекст запроса.
func AuthGuard(tokens ports.TokenService, users ports.UserStorage, production bool, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			parts := strings.SplitN(header, " ", 2)
			if header == "" || len(parts) != 2 || parts[0] != "Bearer" {
				respondWithError(w, http.StatusUnauthorized, "Not authorized, no token", production, logger)
				return
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				logger.Warn("token verification failed", "error", err)
				respondWithError(w, http.StatusUnauthorized, "Not authorized, token failed", production, logger)
				return
			}

			// Хеш пароля не попадает в ответы: поле не сериализуется
			user, err := users.GetUserByID(r.Context(), userID)
			if err != nil {
				respondWithDomainError(w, err, production, logger)
				return
			}
			if user == nil {
				respondWithError(w, http.StatusUnauthorized, "Not authorized, user not found", production, logger)
				return
			}

			ctx := context.WithValue(r.Context(), identityCtxKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext возвращает пользователя, положенного в контекст AuthGuard.
func IdentityFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(identityCtxKey).(*domain.User)
	return user
}
