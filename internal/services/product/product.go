// Package product содержит бизнес-логику чтения каталога товаров с кешированием.
package product

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/review-platform/internal/lib/sl"
	"github.com/magabrotheeeer/review-platform/internal/models"
)

// Repository определяет методы чтения каталога из хранилища.
type Repository interface {
	// ListProducts возвращает весь каталог.
	ListProducts(ctx context.Context) ([]*models.Product, error)
	// GetProduct возвращает товар по ID или errs.ErrNotFound.
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	// SearchProducts ищет товары по подстроке в названии или описании.
	SearchProducts(ctx context.Context, term string) ([]*models.Product, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
}

// Service реализует чтение каталога. Каталог наполняется миграциями и не
// меняется в работе, поэтому кеш живет на TTL без инвалидации.
type Service struct {
	repo     Repository
	cache    Cache
	cacheTTL time.Duration
	log      *slog.Logger
}

// New создает новый Service.
func New(repo Repository, cache Cache, cacheTTL time.Duration, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// List возвращает каталог товаров, по возможности из кеша.
func (s *Service) List(ctx context.Context) ([]*models.Product, error) {
	const key = "products:all"

	var cached []*models.Product
	if s.cacheHit(key, &cached) {
		return cached, nil
	}

	result, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheStore(key, result)
	return result, nil
}

// Read возвращает один товар, по возможности из кеша.
func (s *Service) Read(ctx context.Context, id int64) (*models.Product, error) {
	key := fmt.Sprintf("products:%d", id)

	var cached models.Product
	if s.cacheHit(key, &cached) {
		return &cached, nil
	}

	result, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheStore(key, result)
	return result, nil
}

// Search ищет товары по подстроке, результат кешируется по терму.
func (s *Service) Search(ctx context.Context, term string) ([]*models.Product, error) {
	key := "products:search:" + term

	var cached []*models.Product
	if s.cacheHit(key, &cached) {
		return cached, nil
	}

	result, err := s.repo.SearchProducts(ctx, term)
	if err != nil {
		return nil, err
	}
	s.cacheStore(key, result)
	return result, nil
}

func (s *Service) cacheHit(key string, result any) bool {
	if s.cache == nil {
		return false
	}
	found, err := s.cache.Get(key, result)
	if err != nil {
		s.log.Error("cache read failed", sl.Err(err))
		return false
	}
	return found
}

func (s *Service) cacheStore(key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(key, value, s.cacheTTL); err != nil {
		s.log.Error("cache write failed", sl.Err(err))
	}
}
