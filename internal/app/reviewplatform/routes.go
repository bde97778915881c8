package reviewplatform

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	adminreviews "github.com/magabrotheeeer/review-platform/internal/http/handlers/admin/reviews"
	adminusers "github.com/magabrotheeeer/review-platform/internal/http/handlers/admin/users"
	"github.com/magabrotheeeer/review-platform/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/review-platform/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/review-platform/internal/http/handlers/health"
	productlist "github.com/magabrotheeeer/review-platform/internal/http/handlers/product/list"
	productread "github.com/magabrotheeeer/review-platform/internal/http/handlers/product/read"
	productsearch "github.com/magabrotheeeer/review-platform/internal/http/handlers/product/search"
	reviewcreate "github.com/magabrotheeeer/review-platform/internal/http/handlers/review/create"
	reviewexport "github.com/magabrotheeeer/review-platform/internal/http/handlers/review/export"
	reviewlist "github.com/magabrotheeeer/review-platform/internal/http/handlers/review/list"
	reviewremove "github.com/magabrotheeeer/review-platform/internal/http/handlers/review/remove"
	userread "github.com/magabrotheeeer/review-platform/internal/http/handlers/user/read"
	userupdate "github.com/magabrotheeeer/review-platform/internal/http/handlers/user/update"
	"github.com/magabrotheeeer/review-platform/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/review-platform/internal/services/auth"
	productservice "github.com/magabrotheeeer/review-platform/internal/services/product"
	reviewservice "github.com/magabrotheeeer/review-platform/internal/services/review"
	userservice "github.com/magabrotheeeer/review-platform/internal/services/user"
	"github.com/magabrotheeeer/review-platform/internal/storage/uploads"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	authService *authservice.Service,
	reviewService *reviewservice.Service,
	productService *productservice.Service,
	userService *userservice.Service,
	uploadStore *uploads.Store) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Get("/products", productlist.New(logger, productService).ServeHTTP)
		r.Get("/products/{id}", productread.New(logger, productService).ServeHTTP)
		r.Get("/products/{id}/reviews", reviewlist.New(logger, reviewService).ServeHTTP)
		r.Get("/search", productsearch.New(logger, productService).ServeHTTP)
		r.Get("/users/{id}", userread.New(logger, userService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/reviews", reviewcreate.New(logger, reviewService).ServeHTTP)
			r.Delete("/reviews/{id}", reviewremove.New(logger, reviewService).ServeHTTP)
			r.Put("/users/{id}", userupdate.New(logger, userService).ServeHTTP)

			// Административные маршруты требуют роль admin
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminOnly(logger))
				r.Get("/admin/users", adminusers.New(logger, userService).ServeHTTP)
				r.Get("/admin/reviews", adminreviews.New(logger, reviewService).ServeHTTP)
				r.Get("/export/reviews", reviewexport.New(logger, reviewService).ServeHTTP)
			})
		})
	})

	// Статика загруженных картинок
	fs := http.StripPrefix(uploads.URLPrefix+"/", http.FileServer(http.Dir(uploadStore.Dir())))
	r.Get(uploads.URLPrefix+"/*", fs.ServeHTTP)

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
