package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/review-platform/internal/models"
)

// CreateReview сохраняет отзыв и возвращает его ID.
func (s *Storage) CreateReview(ctx context.Context, review models.Review) (int64, error) {
	const op = "storage.CreateReview"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var imagePath sql.NullString
	if review.ImagePath != "" {
		imagePath = sql.NullString{String: review.ImagePath, Valid: true}
	}

	var newID int64
	query := `INSERT INTO reviews (product_id, user_id, rating, title, content, image_path)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		review.ProductID, review.UserID, review.Rating, review.Title,
		review.Content, imagePath).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, translateError(err))
	}
	return newID, nil
}

// GetReview возвращает отзыв по ID или errs.ErrNotFound.
func (s *Storage) GetReview(ctx context.Context, id int64) (*models.Review, error) {
	const op = "storage.GetReview"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, product_id, user_id, rating, title, content, image_path, created_at
			  FROM reviews
			  WHERE id = $1`
	r := &models.Review{}
	var imagePath sql.NullString
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&r.ID, &r.ProductID, &r.UserID, &r.Rating, &r.Title,
		&r.Content, &imagePath, &r.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateError(err))
	}
	if imagePath.Valid {
		r.ImagePath = imagePath.String
	}
	return r, nil
}

// RemoveReview удаляет отзыв по ID и возвращает количество удаленных строк.
func (s *Storage) RemoveReview(ctx context.Context, id int64) (int64, error) {
	const op = "storage.RemoveReview"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM reviews WHERE id = $1`
	res, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return affected, nil
}

// ListReviewsByProduct возвращает отзывы о товаре вместе с именем автора,
// новые первыми.
func (s *Storage) ListReviewsByProduct(ctx context.Context, productID int64) ([]*models.ProductReview, error) {
	const op = "storage.ListReviewsByProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT r.id, r.product_id, r.user_id, r.rating, r.title, r.content,
			      r.image_path, r.created_at, u.username
			  FROM reviews r
			  JOIN users u ON r.user_id = u.id
			  WHERE r.product_id = $1
			  ORDER BY r.created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	var result []*models.ProductReview
	for rows.Next() {
		var r models.ProductReview
		var imagePath sql.NullString
		if err = rows.Scan(&r.ID, &r.ProductID, &r.UserID, &r.Rating, &r.Title,
			&r.Content, &imagePath, &r.CreatedAt, &r.Username); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if imagePath.Valid {
			r.ImagePath = imagePath.String
		}
		result = append(result, &r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListAllReviews возвращает все отзывы с именем автора и названием товара
// для административного списка, новые первыми.
func (s *Storage) ListAllReviews(ctx context.Context) ([]*models.AdminReview, error) {
	const op = "storage.ListAllReviews"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT r.id, r.product_id, r.user_id, r.rating, r.title, r.content,
			      r.image_path, r.created_at, u.username, p.name
			  FROM reviews r
			  JOIN users u ON r.user_id = u.id
			  JOIN products p ON r.product_id = p.id
			  ORDER BY r.created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	var result []*models.AdminReview
	for rows.Next() {
		var r models.AdminReview
		var imagePath sql.NullString
		if err = rows.Scan(&r.ID, &r.ProductID, &r.UserID, &r.Rating, &r.Title,
			&r.Content, &imagePath, &r.CreatedAt, &r.Username, &r.ProductName); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if imagePath.Valid {
			r.ImagePath = imagePath.String
		}
		result = append(result, &r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListReviewsByUser возвращает отзывы одного автора для выгрузки.
func (s *Storage) ListReviewsByUser(ctx context.Context, userID int64) ([]*models.Review, error) {
	const op = "storage.ListReviewsByUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, product_id, user_id, rating, title, content, image_path, created_at
			  FROM reviews
			  WHERE user_id = $1
			  ORDER BY id`
	return s.scanReviews(ctx, query, userID)
}

// ListReviews возвращает все отзывы для выгрузки.
func (s *Storage) ListReviews(ctx context.Context) ([]*models.Review, error) {
	const op = "storage.ListReviews"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, product_id, user_id, rating, title, content, image_path, created_at
			  FROM reviews
			  ORDER BY id`
	return s.scanReviews(ctx, query)
}

func (s *Storage) scanReviews(ctx context.Context, query string, args ...any) ([]*models.Review, error) {
	const op = "storage.scanReviews"
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	var result []*models.Review
	for rows.Next() {
		var r models.Review
		var imagePath sql.NullString
		if err = rows.Scan(&r.ID, &r.ProductID, &r.UserID, &r.Rating, &r.Title,
			&r.Content, &imagePath, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if imagePath.Valid {
			r.ImagePath = imagePath.String
		}
		result = append(result, &r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
