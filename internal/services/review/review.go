// Package review содержит бизнес-логику подачи, удаления и выборки отзывов.
package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"strconv"

	"github.com/magabrotheeeer/review-platform/internal/errs"
	"github.com/magabrotheeeer/review-platform/internal/lib/sl"
	"github.com/magabrotheeeer/review-platform/internal/models"
)

// Routing keys событий, публикуемых в брокер.
const (
	EventCreated = "review.created"
	EventDeleted = "review.deleted"
)

// Repository определяет методы для работы с отзывами в хранилище.
type Repository interface {
	// CreateReview добавляет отзыв и возвращает его ID.
	CreateReview(ctx context.Context, review models.Review) (int64, error)
	// GetReview возвращает отзыв по ID или errs.ErrNotFound.
	GetReview(ctx context.Context, id int64) (*models.Review, error)
	// RemoveReview удаляет отзыв по ID, возвращает количество удаленных строк.
	RemoveReview(ctx context.Context, id int64) (int64, error)
	// ListReviewsByProduct возвращает отзывы о товаре с именем автора.
	ListReviewsByProduct(ctx context.Context, productID int64) ([]*models.ProductReview, error)
	// ListAllReviews возвращает все отзывы для административного списка.
	ListAllReviews(ctx context.Context) ([]*models.AdminReview, error)
	// ListReviews возвращает все отзывы для выгрузки.
	ListReviews(ctx context.Context) ([]*models.Review, error)
	// ListReviewsByUser возвращает отзывы одного автора для выгрузки.
	ListReviewsByUser(ctx context.Context, userID int64) ([]*models.Review, error)
}

// ProductRepository нужен, чтобы отклонить отзыв о несуществующем товаре до вставки.
type ProductRepository interface {
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
}

// FileStore сохраняет картинку отзыва и умеет удалять ее при откате.
type FileStore interface {
	Save(file multipart.File, originalName string) (string, error)
	Remove(webPath string) error
}

// EventPublisher публикует события об отзывах для внешних потребителей.
type EventPublisher interface {
	Publish(routingKey string, message any) error
}

// Event — полезная нагрузка события об отзыве.
type Event struct {
	ReviewID  int64 `json:"review_id"`
	ProductID int64 `json:"product_id"`
	UserID    int64 `json:"user_id"`
	Rating    int   `json:"rating,omitempty"`
}

// Service реализует сценарии работы с отзывами.
type Service struct {
	repo     Repository
	products ProductRepository
	files    FileStore
	events   EventPublisher
	log      *slog.Logger
}

// New создает новый Service.
func New(repo Repository, products ProductRepository, files FileStore, events EventPublisher, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		products: products,
		files:    files,
		events:   events,
		log:      log,
	}
}

// Submit валидирует и сохраняет отзыв, опционально с картинкой.
//
// Автор берется только из проверенной сессии, рейтинг должен быть целым
// числом от 1 до 5, товар обязан существовать. Если картинка уже записана
// на диск, а вставка отзыва не удалась, файл удаляется.
func (s *Service) Submit(ctx context.Context, author *models.User, req models.DummyReview,
	image multipart.File, imageName string) (int64, error) {
	const op = "review.Submit"

	productID, err := strconv.ParseInt(req.ProductID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: product_id: %w", op, errs.ErrValidation)
	}
	rating, err := strconv.Atoi(req.Rating)
	if err != nil || rating < 1 || rating > 5 {
		return 0, fmt.Errorf("%s: rating must be an integer from 1 to 5: %w", op, errs.ErrValidation)
	}

	if _, err := s.products.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return 0, fmt.Errorf("%s: product does not exist: %w", op, errs.ErrValidation)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var imagePath string
	if image != nil {
		imagePath, err = s.files.Save(image, imageName)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
	}

	id, err := s.repo.CreateReview(ctx, models.Review{
		ProductID: productID,
		UserID:    author.ID,
		Rating:    rating,
		Title:     req.Title,
		Content:   req.Content,
		ImagePath: imagePath,
	})
	if err != nil {
		if imagePath != "" {
			if rmErr := s.files.Remove(imagePath); rmErr != nil {
				s.log.Error("failed to clean up orphaned upload", sl.Err(rmErr))
			}
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.publish(EventCreated, Event{ReviewID: id, ProductID: productID, UserID: author.ID, Rating: rating})
	return id, nil
}

// Remove удаляет отзыв, если requester — его автор или администратор.
// Вместе с отзывом удаляется его картинка, если она была.
func (s *Service) Remove(ctx context.Context, reviewID int64, requester *models.User) error {
	const op = "review.Remove"

	rev, err := s.repo.GetReview(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !CanDelete(rev.UserID, requester) {
		return fmt.Errorf("%s: %w", op, errs.ErrForbidden)
	}

	if _, err := s.repo.RemoveReview(ctx, reviewID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rev.ImagePath != "" {
		if rmErr := s.files.Remove(rev.ImagePath); rmErr != nil {
			s.log.Error("failed to remove review image", sl.Err(rmErr))
		}
	}

	s.publish(EventDeleted, Event{ReviewID: reviewID, ProductID: rev.ProductID, UserID: rev.UserID})
	return nil
}

// ListByProduct возвращает отзывы о товаре вместе с именами авторов.
func (s *Service) ListByProduct(ctx context.Context, productID int64) ([]*models.ProductReview, error) {
	return s.repo.ListReviewsByProduct(ctx, productID)
}

// ListAll возвращает все отзывы для административного списка.
func (s *Service) ListAll(ctx context.Context) ([]*models.AdminReview, error) {
	return s.repo.ListAllReviews(ctx)
}

// Export возвращает отзывы для выгрузки, опционально отфильтрованные по автору.
func (s *Service) Export(ctx context.Context, userID *int64) ([]*models.Review, error) {
	if userID != nil {
		return s.repo.ListReviewsByUser(ctx, *userID)
	}
	return s.repo.ListReviews(ctx)
}

// publish отправляет событие в брокер; ошибка публикации не роняет запрос.
func (s *Service) publish(key string, evt Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(key, evt); err != nil {
		s.log.Error("failed to publish review event", slog.String("key", key), sl.Err(err))
	}
}
