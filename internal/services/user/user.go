// Package user содержит бизнес-логику чтения и обновления профилей.
package user

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/review-platform/internal/errs"
	"github.com/magabrotheeeer/review-platform/internal/lib/password"
	"github.com/magabrotheeeer/review-platform/internal/models"
)

// Repository определяет методы работы с пользователями в хранилище.
type Repository interface {
	// GetUser возвращает пользователя по ID или errs.ErrNotFound.
	GetUser(ctx context.Context, id int64) (*models.User, error)
	// ListUsers возвращает всех пользователей для административного списка.
	ListUsers(ctx context.Context) ([]*models.User, error)
	// UpdateUser обновляет только переданные поля профиля.
	UpdateUser(ctx context.Context, id int64, upd models.UserUpdate, passwordHash *string) error
}

// Service реализует сценарии работы с профилями.
type Service struct {
	repo Repository
}

// New создает новый Service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Read возвращает публичный профиль пользователя.
func (s *Service) Read(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.GetUser(ctx, id)
}

// ListAll возвращает всех пользователей для административного списка.
func (s *Service) ListAll(ctx context.Context) ([]*models.User, error) {
	return s.repo.ListUsers(ctx)
}

// Update меняет профиль пользователя targetID.
//
// Обычный пользователь может менять только свой email и пароль;
// смена роли доступна исключительно администратору. Эскалация роли
// через собственный профиль невозможна.
func (s *Service) Update(ctx context.Context, targetID int64, requester *models.User, upd models.UserUpdate) error {
	const op = "user.Update"

	if requester == nil {
		return fmt.Errorf("%s: %w", op, errs.ErrForbidden)
	}
	isAdmin := requester.Role == models.RoleAdmin
	if !isAdmin && requester.ID != targetID {
		return fmt.Errorf("%s: %w", op, errs.ErrForbidden)
	}
	if upd.Role != nil && !isAdmin {
		return fmt.Errorf("%s: %w", op, errs.ErrForbidden)
	}

	var passwordHash *string
	if upd.Password != nil {
		hashed, err := password.GetHash(*upd.Password)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		passwordHash = &hashed
	}

	if err := s.repo.UpdateUser(ctx, targetID, upd, passwordHash); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
