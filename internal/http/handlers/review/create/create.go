// Package create реализует HTTP-обработчик подачи отзыва.
//
// Принимает multipart-форму с полями product_id, rating, title, content
// и опциональным файлом image. Автор отзыва берется исключительно из
// проверенного токена, тело запроса на него повлиять не может.
package create

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/review-platform/internal/errs"
	"github.com/magabrotheeeer/review-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/review-platform/internal/http/response"
	"github.com/magabrotheeeer/review-platform/internal/lib/sl"
	"github.com/magabrotheeeer/review-platform/internal/models"
)

// maxUploadSize ограничивает размер multipart-формы вместе с картинкой.
const maxUploadSize = 10 << 20

// Service описывает интерфейс бизнес-логики подачи отзыва.
type Service interface {
	Submit(ctx context.Context, author *models.User, req models.DummyReview,
		image multipart.File, imageName string) (int64, error)
}

// Handler управляет HTTP-запросами на подачу отзывов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Подать отзыв о товаре
// @Description Создает отзыв от имени текущего пользователя, опционально с картинкой.
// @Tags Reviews
// @Security BearerAuth
// @Accept  mpfd
// @Produce  json
// @Param product_id formData string true "ID товара"
// @Param rating formData string true "Оценка от 1 до 5"
// @Param title formData string true "Заголовок отзыва"
// @Param content formData string true "Текст отзыва"
// @Param image formData file false "Картинка"
// @Success 200 {object} map[string]any "Отзыв создан"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /reviews [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.review.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Error("failed to parse multipart form", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid multipart form"))
		return
	}

	req := models.DummyReview{
		ProductID: r.FormValue("product_id"),
		Rating:    r.FormValue("rating"),
		Title:     r.FormValue("title"),
		Content:   r.FormValue("content"),
	}
	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	author, ok := middlewarectx.Identity(r.Context())
	if !ok {
		log.Error("identity not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	var image multipart.File
	var imageName string
	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer func() {
			_ = file.Close()
		}()
		image = file
		imageName = header.Filename
	case errors.Is(err, http.ErrMissingFile):
		// Картинка опциональна.
	default:
		log.Error("failed to read uploaded file", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid image upload"))
		return
	}

	id, err := h.service.Submit(r.Context(), author, req, image, imageName)
	if err != nil {
		log.Error("failed to submit review", sl.Err(err))
		if errors.Is(err, errs.ErrValidation) {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid review data"))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not submit review"))
		return
	}

	log.Info("review submitted", slog.Int64("review_id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message":   "review submitted successfully",
		"review_id": id,
	}))
}
