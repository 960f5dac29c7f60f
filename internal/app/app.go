package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/avc/tscoins-wallet/internal/config"
	"github.com/avc/tscoins-wallet/internal/worker"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// App представляет приложение
type App struct {
	config     *config.Config
	logger     *zap.Logger
	storage    *storage
	router     http.Handler
	workerPool *worker.Pool
	server     *http.Server
}

// NewApp создает новое приложение из аргументов командной строки
func NewApp(ctx context.Context, args []string) (*App, error) {
	cfg, err := config.Load(args)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	if cfg.UsesDefaultSecret() {
		logger.Warn("JWT_SECRET is not set, using the built-in secret")
	}

	store, err := openStorage(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		return nil, err
	}

	deps := initDependencies(cfg, store, logger)
	router := setupRouter(deps, cfg.CORSOrigins, logger)

	logger.Info("wallet configured",
		zap.String("backend", store.backend),
		zap.Int("products", len(cfg.Products)),
		zap.Duration("form_cooldown", cfg.Cooldown),
	)

	return &App{
		config:     cfg,
		logger:     logger,
		storage:    store,
		router:     router,
		workerPool: deps.workerPool,
		server:     createServer(cfg.RunAddress, router),
	}, nil
}

// Run запускает HTTP сервер и очистку кулдаунов до сигнала завершения
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	defer func() {
		a.storage.close()
		a.logger.Info("storage closed")
		_ = a.logger.Sync()
	}()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.serve(ctx)
	})
	g.Go(func() error {
		a.logger.Info("cooldown sweeper started")
		defer a.logger.Info("cooldown sweeper stopped")
		return a.workerPool.Run(ctx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	a.logger.Info("server stopped gracefully")
	return nil
}
