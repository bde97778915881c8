// Package export реализует выгрузку отзывов в JSON или CSV.
//
// Маршрут закрыт ролью admin: выгрузка содержит отзывы всех пользователей.
package export

import (
	"context"
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/review-platform/internal/http/response"
	"github.com/magabrotheeeer/review-platform/internal/lib/sl"
	"github.com/magabrotheeeer/review-platform/internal/models"
)

// Service описывает интерфейс выгрузки отзывов.
type Service interface {
	Export(ctx context.Context, userID *int64) ([]*models.Review, error)
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
// @Summary Выгрузка отзывов
// @Description Отдает отзывы в JSON или CSV, опционально по одному автору.
// @Tags Admin
// @Security BearerAuth
// @Produce  json
// @Param format query string false "json или csv" default(json)
// @Param user_id query int false "Фильтр по автору"
// @Success 200 {array} models.Review
// @Failure 400 {object} response.ErrorResponse "Некорректные параметры"
// @Router /export/reviews [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.review.export"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var userID *int64
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Error("invalid user_id", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid user_id"))
			return
		}
		userID = &id
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "csv" {
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("unsupported format"))
		return
	}

	reviews, err := h.service.Export(r.Context(), userID)
	if err != nil {
		log.Error("failed to export reviews", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to export reviews"))
		return
	}

	if format == "json" {
		if reviews == nil {
			reviews = []*models.Review{}
		}
		render.JSON(w, r, reviews)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"id", "product_id", "user_id", "rating", "title", "content", "created_at"})
	for _, rev := range reviews {
		_ = cw.Write([]string{
			strconv.FormatInt(rev.ID, 10),
			strconv.FormatInt(rev.ProductID, 10),
			strconv.FormatInt(rev.UserID, 10),
			strconv.Itoa(rev.Rating),
			rev.Title,
			rev.Content,
			rev.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		log.Error("failed to write csv", sl.Err(err))
	}
}
