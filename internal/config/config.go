package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/avc/tscoins-wallet/internal/domain"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress  string        // Адрес и порт запуска сервиса
	DatabaseURI string        // URI подключения к БД, пустой означает хранилище в памяти
	JWTSecret   string        // Секретный ключ для JWT
	JWTTokenTTL time.Duration // Время жизни JWT токена
	LogLevel    string        // Уровень логирования

	CORSOrigins   []string                  // Адреса сайта, которым разрешены запросы
	Webhooks      map[domain.Channel]string // URL вебхука на каждый канал
	NotifyTimeout time.Duration             // Таймаут запроса к вебхуку
	FooterText    string                    // Подпись карточек уведомлений

	Cooldown time.Duration    // Длительность кулдауна форм
	Products []domain.Product // Каталог магазина

	// Очистка истекших кулдаунов
	SweeperWorkers      int
	SweeperQueueSize    int
	SweeperScanInterval time.Duration
}

// fileConfig описывает TOML файл конфигурации.
// Длительности записываются строками: "30m", "10s".
type fileConfig struct {
	RunAddress  string   `toml:"run_address"`
	DatabaseURI string   `toml:"database_uri"`
	LogLevel    string   `toml:"log_level"`
	JWTTokenTTL string   `toml:"jwt_token_ttl"`
	CORSOrigins []string `toml:"cors_origins"`

	Notifier struct {
		Timeout  string            `toml:"timeout"`
		Footer   string            `toml:"footer"`
		Webhooks map[string]string `toml:"webhooks"`
	} `toml:"notifier"`

	Forms struct {
		Cooldown string `toml:"cooldown"`
	} `toml:"forms"`

	Store struct {
		Products []domain.Product `toml:"products"`
	} `toml:"store"`

	Sweeper struct {
		Workers      int    `toml:"workers"`
		QueueSize    int    `toml:"queue_size"`
		ScanInterval string `toml:"scan_interval"`
	} `toml:"sweeper"`
}

// webhookEnv связывает каналы с переменными окружения
var webhookEnv = map[domain.Channel]string{
	domain.ChannelWhitelist:     "WEBHOOK_WHITELIST",
	domain.ChannelPasswordReset: "WEBHOOK_PASSWORD_RESET",
	domain.ChannelBugReport:     "WEBHOOK_BUG_REPORT",
	domain.ChannelPurchase:      "WEBHOOK_PURCHASE",
	domain.ChannelTournament:    "WEBHOOK_TOURNAMENT",
}

const defaultJWTSecret = "default-secret-key-change-in-production"

// DefaultProducts каталог магазина, если файл конфигурации его не задает
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{Name: "VIP", Kind: domain.ProductKindRank, Price: 500},
		{Name: "MVP", Kind: domain.ProductKindRank, Price: 1000},
		{Name: "Legend", Kind: domain.ProductKindRank, Price: 2500},
		{Name: "Diamond Kit", Kind: domain.ProductKindItem, Price: 300},
		{Name: "Netherite Kit", Kind: domain.ProductKindItem, Price: 750},
		{Name: "Elytra", Kind: domain.ProductKindItem, Price: 400},
	}
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		RunAddress:          ":8080",
		JWTSecret:           defaultJWTSecret,
		JWTTokenTTL:         24 * time.Hour,
		LogLevel:            "info",
		CORSOrigins:         []string{"*"},
		Webhooks:            make(map[domain.Channel]string),
		NotifyTimeout:       10 * time.Second,
		FooterText:          domain.DefaultFooterText,
		Cooldown:            domain.DefaultCooldownMin * time.Minute,
		Products:            DefaultProducts(),
		SweeperWorkers:      2,
		SweeperQueueSize:    100,
		SweeperScanInterval: time.Minute,
	}
}

// Load загружает конфигурацию.
// Приоритет: env переменные > флаги > файл > дефолтные значения.
func Load(args []string) (*Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("walletd", flag.ContinueOnError)
	configPath := fs.String("c", "", "path to TOML config file")
	runAddress := fs.String("a", "", "address and port to run server")
	databaseURI := fs.String("d", "", "database URI")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	path := *configPath
	if envPath, ok := os.LookupEnv("CONFIG"); ok {
		path = envPath
	}
	if path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if *runAddress != "" {
		cfg.RunAddress = *runAddress
	}
	if *databaseURI != "" {
		cfg.DatabaseURI = *databaseURI
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFile накладывает значения из TOML файла
func applyFile(cfg *Config, path string) error {
	var fc fileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown keys in config file %s: %v", path, undecoded)
	}

	setString(&cfg.RunAddress, fc.RunAddress)
	setString(&cfg.DatabaseURI, fc.DatabaseURI)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.FooterText, fc.Notifier.Footer)
	if len(fc.CORSOrigins) > 0 {
		cfg.CORSOrigins = fc.CORSOrigins
	}

	durations := []struct {
		key   string
		value string
		dst   *time.Duration
	}{
		{"jwt_token_ttl", fc.JWTTokenTTL, &cfg.JWTTokenTTL},
		{"notifier.timeout", fc.Notifier.Timeout, &cfg.NotifyTimeout},
		{"forms.cooldown", fc.Forms.Cooldown, &cfg.Cooldown},
		{"sweeper.scan_interval", fc.Sweeper.ScanInterval, &cfg.SweeperScanInterval},
	}
	for _, d := range durations {
		if d.value == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.value)
		if err != nil {
			return fmt.Errorf("invalid %s in %s: %w", d.key, path, err)
		}
		*d.dst = parsed
	}

	for name, url := range fc.Notifier.Webhooks {
		channel := domain.Channel(name)
		if _, ok := webhookEnv[channel]; !ok {
			return fmt.Errorf("unknown webhook channel %q in %s", name, path)
		}
		cfg.Webhooks[channel] = url
	}

	if len(fc.Store.Products) > 0 {
		cfg.Products = fc.Store.Products
	}
	if fc.Sweeper.Workers > 0 {
		cfg.SweeperWorkers = fc.Sweeper.Workers
	}
	if fc.Sweeper.QueueSize > 0 {
		cfg.SweeperQueueSize = fc.Sweeper.QueueSize
	}

	return nil
}

// applyEnv накладывает переменные окружения
func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = v
	}
	if v, ok := os.LookupEnv("DATABASE_URI"); ok {
		cfg.DatabaseURI = v
	}
	// JWT секрет только из env, не из флагов
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		cfg.JWTSecret = v
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("FOOTER_TEXT"); ok {
		cfg.FooterText = v
	}
	if v, ok := os.LookupEnv("CORS_ORIGINS"); ok {
		cfg.CORSOrigins = splitList(v)
	}

	for channel, key := range webhookEnv {
		if v, ok := os.LookupEnv(key); ok {
			cfg.Webhooks[channel] = v
		}
	}

	durations := map[string]*time.Duration{
		"JWT_TOKEN_TTL":         &cfg.JWTTokenTTL,
		"NOTIFY_TIMEOUT":        &cfg.NotifyTimeout,
		"FORM_COOLDOWN":         &cfg.Cooldown,
		"SWEEPER_SCAN_INTERVAL": &cfg.SweeperScanInterval,
	}
	for key, dst := range durations {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = parsed
	}

	ints := map[string]*int{
		"SWEEPER_WORKERS":    &cfg.SweeperWorkers,
		"SWEEPER_QUEUE_SIZE": &cfg.SweeperQueueSize,
	}
	for key, dst := range ints {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = n
	}

	return nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	var errs []error

	if c.RunAddress == "" {
		errs = append(errs, errors.New("run address is required (use -a flag or RUN_ADDRESS env)"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT secret must not be empty"))
	}
	if c.Cooldown <= 0 {
		errs = append(errs, errors.New("form cooldown must be positive"))
	}
	if c.NotifyTimeout <= 0 {
		errs = append(errs, errors.New("notifier timeout must be positive"))
	}
	if c.SweeperWorkers <= 0 || c.SweeperQueueSize <= 0 || c.SweeperScanInterval <= 0 {
		errs = append(errs, errors.New("sweeper settings must be positive"))
	}

	seen := make(map[string]bool, len(c.Products))
	for _, p := range c.Products {
		key := strings.ToLower(p.Name)
		switch {
		case strings.TrimSpace(p.Name) == "":
			errs = append(errs, errors.New("product name must not be empty"))
		case seen[key]:
			errs = append(errs, fmt.Errorf("duplicate product %q", p.Name))
		case p.Price <= 0:
			errs = append(errs, fmt.Errorf("product %q must have a positive price", p.Name))
		case p.Kind != domain.ProductKindRank && p.Kind != domain.ProductKindItem:
			errs = append(errs, fmt.Errorf("product %q has unknown kind %q", p.Name, p.Kind))
		}
		seen[key] = true
	}

	return errors.Join(errs...)
}

// UsesDefaultSecret сообщает, что JWT секрет не был задан
func (c *Config) UsesDefaultSecret() bool {
	return c.JWTSecret == defaultJWTSecret
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
