package app

import (
	"github.com/avc/tscoins-wallet/internal/config"
	"github.com/avc/tscoins-wallet/internal/cooldown"
	"github.com/avc/tscoins-wallet/internal/domain"
	"github.com/avc/tscoins-wallet/internal/handlers"
	"github.com/avc/tscoins-wallet/internal/metrics"
	"github.com/avc/tscoins-wallet/internal/notifier"
	"github.com/avc/tscoins-wallet/internal/service"
	"github.com/avc/tscoins-wallet/internal/utils/jwt"
	"github.com/avc/tscoins-wallet/internal/utils/password"
	"github.com/avc/tscoins-wallet/internal/worker"
	"go.uber.org/zap"
)

// services содержит все сервисы приложения
type services struct {
	auth     domain.AuthService
	wallet   domain.WalletService
	purchase domain.PurchaseService
	forms    domain.FormService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	auth   *handlers.AuthHandler
	wallet *handlers.WalletHandler
	store  *handlers.StoreHandler
	forms  *handlers.FormsHandler
	health *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	metrics    *metrics.Metrics
	workerPool *worker.Pool
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, store *storage, logger *zap.Logger) *dependencies {
	m := metrics.NewMetrics()

	passwordHasher := password.NewBCryptHasher(password.DefaultCost)
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	webhooks := notifier.NewWebhookClient(cfg.Webhooks, cfg.NotifyTimeout, logger.Named("notifier"), m)
	for channel := range channelNames {
		if !webhooks.Configured(channel) {
			logger.Warn("webhook is not configured, submissions will fail", zap.String("channel", string(channel)))
		}
	}

	timer := cooldown.NewTimer(store.cooldowns, logger.Named("cooldown"))
	wallet := service.NewWalletService(store.profiles, logger.Named("wallet"), m)

	svcs := &services{
		auth:     service.NewAuthService(store.users, store.profiles, passwordHasher, jwtManager),
		wallet:   wallet,
		purchase: service.NewPurchaseService(cfg.Products, wallet, webhooks, cfg.FooterText, logger.Named("store"), m),
		forms:    service.NewFormService(timer, webhooks, cfg.Cooldown, cfg.FooterText, logger.Named("forms")),
	}

	hdlrs := &handlerSet{
		auth:   handlers.NewAuthHandler(svcs.auth, logger),
		wallet: handlers.NewWalletHandler(svcs.wallet, logger),
		store:  handlers.NewStoreHandler(svcs.purchase, logger),
		forms:  handlers.NewFormsHandler(svcs.forms, logger),
		health: handlers.NewHealthHandler(store.pinger, store.backend, logger),
	}

	workerPool := worker.NewPool(worker.PoolConfig{
		Workers:      cfg.SweeperWorkers,
		QueueSize:    cfg.SweeperQueueSize,
		ScanInterval: cfg.SweeperScanInterval,
	}, store.cooldowns, m, logger.Named("sweeper"))

	return &dependencies{
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		metrics:    m,
		workerPool: workerPool,
	}
}

// channelNames перечисляет каналы уведомлений
var channelNames = map[domain.Channel]struct{}{
	domain.ChannelWhitelist:     {},
	domain.ChannelPasswordReset: {},
	domain.ChannelBugReport:     {},
	domain.ChannelPurchase:      {},
	domain.ChannelTournament:    {},
}
