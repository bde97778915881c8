// Package middlewarectx содержит HTTP middleware аутентификации и авторизации.
//
// JWTMiddleware проверяет Bearer-токен из заголовка Authorization и кладет
// в контекст запроса id, имя и роль пользователя. Отсутствующий токен дает
// 401 Unauthorized, присутствующий, но не прошедший проверку — 403 Forbidden.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/review-platform/internal/errs"
	"github.com/magabrotheeeer/review-platform/internal/http/response"
	"github.com/magabrotheeeer/review-platform/internal/lib/sl"
	"github.com/magabrotheeeer/review-platform/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// UserID — ключ для id пользователя в контексте
	UserID Key = "user_id"
	// User — ключ для имени пользователя в контексте
	User Key = "username"
	// Role — ключ для роли пользователя в контексте
	Role Key = "role"
)

// Service описывает интерфейс сервиса для валидации JWT токена.
type Service interface {
	ValidateToken(ctx context.Context, token string) (*models.User, error)
}

// Identity извлекает личность пользователя из контекста запроса.
func Identity(ctx context.Context) (*models.User, bool) {
	id, okID := ctx.Value(UserID).(int64)
	username, okName := ctx.Value(User).(string)
	role, okRole := ctx.Value(Role).(string)
	if !okID || !okName || !okRole {
		return nil, false
	}
	return &models.User{ID: id, Username: username, Role: role}, true
}

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке Authorization.
func JWTMiddleware(authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"
			authHeader := r.Header.Get("Authorization")

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("no token provided"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			identity, err := authService.ValidateToken(r.Context(), tokenStr)
			if err != nil {
				log.Error("token verification failed", sl.Err(err))
				w.WriteHeader(http.StatusForbidden)
				if errors.Is(err, errs.ErrTokenExpired) {
					render.JSON(w, r, response.Error("token expired"))
					return
				}
				render.JSON(w, r, response.Error("invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), UserID, identity.ID)
			ctx = context.WithValue(ctx, User, identity.Username)
			ctx = context.WithValue(ctx, Role, identity.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
