// Package reviewplatform собирает приложение: хранилище, миграции, кеш,
// брокер событий, сервисы и HTTP-сервер.
package reviewplatform

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/review-platform/internal/cache"
	"github.com/magabrotheeeer/review-platform/internal/config"
	"github.com/magabrotheeeer/review-platform/internal/lib/jwt"
	"github.com/magabrotheeeer/review-platform/internal/lib/password"
	"github.com/magabrotheeeer/review-platform/internal/lib/sl"
	"github.com/magabrotheeeer/review-platform/internal/migrations"
	"github.com/magabrotheeeer/review-platform/internal/models"
	"github.com/magabrotheeeer/review-platform/internal/rabbitmq"
	authservice "github.com/magabrotheeeer/review-platform/internal/services/auth"
	productservice "github.com/magabrotheeeer/review-platform/internal/services/product"
	reviewservice "github.com/magabrotheeeer/review-platform/internal/services/review"
	userservice "github.com/magabrotheeeer/review-platform/internal/services/user"
	"github.com/magabrotheeeer/review-platform/internal/storage/repository"
	"github.com/magabrotheeeer/review-platform/internal/storage/uploads"
)

// App держит HTTP-сервер и ресурсы, которые нужно закрыть при остановке.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

// New инициализирует все зависимости и возвращает готовое к запуску приложение.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}
	if err = seedDefaultUsers(ctx, db); err != nil {
		return nil, err
	}

	uploadStore, err := uploads.New(cfg.UploadsDir)
	if err != nil {
		return nil, err
	}

	var productCache productservice.Cache
	if cfg.RedisConnection.Addr != "" {
		cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, err
		}
		productCache = cacheRedis
	} else {
		logger.Warn("redis is not configured, product cache disabled")
	}

	var events reviewservice.EventPublisher
	if cfg.RabbitConnection != "" {
		conn, err := rabbitmq.Connect(cfg.RabbitConnection, 5, 2*time.Second)
		if err != nil {
			return nil, err
		}
		ch, err := rabbitmq.SetupChannel(conn)
		if err != nil {
			return nil, err
		}
		events = rabbitmq.NewPublisher(ch)
	} else {
		logger.Warn("rabbitmq is not configured, review events disabled")
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authService := authservice.New(db, jwtMaker)
	reviewService := reviewservice.New(db, db, uploadStore, events, logger)
	productService := productservice.New(db, productCache, cfg.RedisConnection.CacheTTL, logger)
	userService := userservice.New(db)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, reviewService, productService, userService, uploadStore)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.db.DB.Close(); closeErr != nil {
			a.logger.Error("failed to close database", sl.Err(closeErr))
		}
		return err
	}
}

// seedDefaultUsers заводит дефолтного администратора и демо-пользователя,
// если их еще нет. Хэши считаются на старте, литералов паролей в базе нет.
func seedDefaultUsers(ctx context.Context, db *repository.Storage) error {
	defaults := []struct {
		username string
		email    string
		password string
		role     string
	}{
		{"admin", "admin@reviewplatform.com", "admin123", models.RoleAdmin},
		{"johndoe", "john@example.com", "password123", models.RoleUser},
	}
	for _, d := range defaults {
		hash, err := password.GetHash(d.password)
		if err != nil {
			return err
		}
		if err := db.EnsureUser(ctx, models.User{
			Username:     d.username,
			Email:        d.email,
			PasswordHash: hash,
			Role:         d.role,
		}); err != nil {
			return err
		}
	}
	return nil
}
