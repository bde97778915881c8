// Package list реализует HTTP-обработчик каталога товаров.
package list

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

// Service описывает интерфейс чтения каталога.
type Service interface {
	List(ctx context.Context) ([]*models.Product, error)
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
// @Summary Каталог товаров
// @Tags Products
// @Produce  json
// @Success 200 {array} models.Product
// @Router /products [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	products, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list products", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list products"))
		return
	}
	if products == nil {
		products = []*models.Product{}
	}

	render.JSON(w, r, products)
}
