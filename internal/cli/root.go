// Package cli реализует walletctl, утилиту администратора кошелька.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/avc/tscoins-wallet/internal/app"
	"github.com/avc/tscoins-wallet/internal/domain"
	"github.com/avc/tscoins-wallet/internal/repository/postgres"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	databaseURI string
	verbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseURI, "database-uri", os.Getenv("DATABASE_URI"), "PostgreSQL URI (defaults to DATABASE_URI)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log storage operations to stderr")
}

var rootCmd = &cobra.Command{
	Use:   "walletctl",
	Short: "Administer TS Coins wallets",
	Long: `walletctl works directly against the wallet database.
It applies migrations, credits or debits a player's wallet outside the
website flows and clears form cooldowns.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute выполняет команду из аргументов процесса
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// backend хранилище, с которым работают команды
type backend struct {
	profiles  domain.ProfileRepository
	cooldowns domain.CooldownRepository
	migrate   func(ctx context.Context) error
	close     func()
}

// openBackend подключается к базе; тесты подменяют его хранилищем в памяти
var openBackend = func(ctx context.Context, uri string, logger *zap.Logger) (*backend, error) {
	if uri == "" {
		return nil, errors.New("database URI is required (use --database-uri or DATABASE_URI)")
	}

	pool, err := app.ConnectDatabase(ctx, uri)
	if err != nil {
		return nil, err
	}

	return &backend{
		profiles:  postgres.NewProfileRepository(pool),
		cooldowns: postgres.NewCooldownRepository(pool),
		migrate: func(ctx context.Context) error {
			return postgres.RunMigrations(ctx, pool, logger)
		},
		close: pool.Close,
	}, nil
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// withBackend открывает хранилище на время выполнения fn
func withBackend(cmd *cobra.Command, fn func(b *backend, logger *zap.Logger) error) error {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	b, err := openBackend(cmd.Context(), databaseURI, logger)
	if err != nil {
		return err
	}
	defer b.close()

	return fn(b, logger)
}

func parseUserID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid user id %q", arg)
	}
	return id, nil
}
