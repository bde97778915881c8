// Package reviews реализует административный список всех отзывов
// с именами авторов и названиями товаров.
package reviews

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

// Service описывает интерфейс выборки всех отзывов.
type Service interface {
	ListAll(ctx context.Context) ([]*models.AdminReview, error)
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
// @Summary Все отзывы
// @Tags Admin
// @Security BearerAuth
// @Produce  json
// @Success 200 {array} models.AdminReview
// @Failure 403 {object} response.ErrorResponse "Требуется роль admin"
// @Router /admin/reviews [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.reviews"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	reviews, err := h.service.ListAll(r.Context())
	if err != nil {
		log.Error("failed to list reviews", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list reviews"))
		return
	}
	if reviews == nil {
		reviews = []*models.AdminReview{}
	}

	render.JSON(w, r, reviews)
}
