package app

import (
	"context"
	"fmt"

	"github.com/avc/tscoins-wallet/internal/domain"
	"github.com/avc/tscoins-wallet/internal/repository/memory"
	"github.com/avc/tscoins-wallet/internal/repository/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	backendPostgres = "postgres"
	backendMemory   = "memory"
)

// storage объединяет репозитории выбранного хранилища
type storage struct {
	backend   string
	users     domain.UserRepository
	profiles  domain.ProfileRepository
	cooldowns domain.CooldownRepository
	pinger    interface {
		Ping(ctx context.Context) error
	}
	close func()
}

// openStorage подключается к PostgreSQL и выполняет миграции.
// Без DATABASE_URI данные хранятся в памяти процесса.
func openStorage(ctx context.Context, databaseURI string, logger *zap.Logger) (*storage, error) {
	if databaseURI == "" {
		logger.Warn("DATABASE_URI is not set, using in-memory storage")

		store := memory.NewStore()
		return &storage{
			backend:   backendMemory,
			users:     store,
			profiles:  store,
			cooldowns: store,
			pinger:    store,
			close:     func() {},
		}, nil
	}

	dbPool, err := ConnectDatabase(ctx, databaseURI)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database")

	if err := postgres.RunMigrations(ctx, dbPool, logger); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("migrations completed successfully")

	return &storage{
		backend:   backendPostgres,
		users:     postgres.NewUserRepository(dbPool),
		profiles:  postgres.NewProfileRepository(dbPool),
		cooldowns: postgres.NewCooldownRepository(dbPool),
		pinger:    dbPool,
		close:     dbPool.Close,
	}, nil
}

// ConnectDatabase создает пул соединений и проверяет подключение.
// Используется сервером и walletctl.
func ConnectDatabase(ctx context.Context, databaseURI string) (*pgxpool.Pool, error) {
	dbPool, err := pgxpool.New(ctx, databaseURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbPool, nil
}
