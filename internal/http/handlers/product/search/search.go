// Package search реализует поиск товаров по подстроке.
package search

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

// Service описывает интерфейс поиска по каталогу.
type Service interface {
	Search(ctx context.Context, term string) ([]*models.Product, error)
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
// @Summary Поиск товаров
// @Tags Products
// @Produce  json
// @Param q query string true "Поисковый запрос"
// @Success 200 {array} models.Product
// @Failure 400 {object} response.ErrorResponse "Пустой запрос"
// @Router /search [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.search"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	term := r.URL.Query().Get("q")
	if term == "" {
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("search term is required"))
		return
	}

	products, err := h.service.Search(r.Context(), term)
	if err != nil {
		log.Error("failed to search products", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to search products"))
		return
	}
	if products == nil {
		products = []*models.Product{}
	}

	render.JSON(w, r, products)
}
