// Package users реализует административный список пользователей.
// Маршрут закрыт middleware с проверкой роли admin.
package users

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/review-platform/internal/http/response"
	"github.com/magabrotheeeer/review-platform/internal/lib/sl"
	"github.com/magabrotheeeer/review-platform/internal/models"
)

// Service описывает интерфейс выборки пользователей.
type Service interface {
	ListAll(ctx context.Context) ([]*models.User, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список пользователей
// @Tags Admin
// @Security BearerAuth
// @Produce  json
// @Success 200 {array} models.User
// @Failure 403 {object} response.ErrorResponse "Требуется роль admin"
// @Router /admin/users [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.users"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	users, err := h.service.ListAll(r.Context())
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list users"))
		return
	}
	if users == nil {
		users = []*models.User{}
	}

	render.JSON(w, r, users)
}
