package app

import (
	"net/http"

	"github.com/avc/tscoins-wallet/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, corsOrigins []string, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	setupMiddleware(r, deps, corsOrigins, logger)
	setupRoutes(r, deps, logger)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, deps *dependencies, corsOrigins []string, logger *zap.Logger) {
	r.Use(middleware.RealIP)
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.MetricsMiddleware(deps.metrics))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Authorization", "Retry-After", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies, logger *zap.Logger) {
	h := deps.handlers

	r.Get("/health", h.health.Health)
	r.Get("/ready", h.health.Ready)
	r.Handle("/metrics", promhttp.HandlerFor(deps.metrics.Registry, promhttp.HandlerOpts{}))

	// Публичные эндпоинты
	r.Post("/api/user/register", h.auth.Register)
	r.Post("/api/user/login", h.auth.Login)
	r.Get("/api/store/products", h.store.GetProducts)

	// Формы доступны без входа, кулдаун ведется по пользователю или адресу
	r.Group(func(r chi.Router) {
		r.Use(handlers.OptionalAuthMiddleware(deps.jwtManager))
		r.Post("/api/forms/whitelist", h.forms.SubmitWhitelist)
		r.Post("/api/forms/password-reset", h.forms.SubmitPasswordReset)
		r.Post("/api/forms/bug-report", h.forms.SubmitBugReport)
		r.Post("/api/forms/tournament", h.forms.SubmitTeamRegistration)
		r.Get("/api/cooldowns/{action}", h.forms.GetCooldown)
	})

	// Защищенные эндпоинты
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(deps.jwtManager, logger))
		r.Get("/api/user/session", h.auth.Session)
		r.Get("/api/wallet", h.wallet.GetWallet)
		r.Get("/api/wallet/transactions", h.wallet.GetTransactions)
		r.Get("/api/wallet/stats", h.wallet.GetStats)
		r.Post("/api/wallet/bonus", h.wallet.ClaimBonus)
		r.Post("/api/store/purchase", h.store.Purchase)
	})
}
