package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/avc/tscoins-wallet/internal/domain"
	"github.com/avc/tscoins-wallet/internal/utils/username"
	"go.uber.org/zap"
)

const (
	purchaseColor  = 0x76c7ff
	maxCustomTag   = 16
	submittedAtFmt = "2006-01-02 15:04:05 UTC"
)

// PurchaseService реализует domain.PurchaseService.
// Порядок шагов: проверка, уведомление персонала, списание.
type PurchaseService struct {
	products []domain.Product
	catalog  map[string]domain.Product
	wallet   domain.WalletService
	notifier domain.Notifier
	logger   *zap.Logger
	metrics  Recorder
	footer   string
	now      func() time.Time
}

// NewPurchaseService создает новый PurchaseService с заданным каталогом
func NewPurchaseService(
	products []domain.Product,
	wallet domain.WalletService,
	notifier domain.Notifier,
	footer string,
	logger *zap.Logger,
	metrics Recorder,
) *PurchaseService {
	catalog := make(map[string]domain.Product, len(products))
	for _, p := range products {
		catalog[strings.ToLower(p.Name)] = p
	}
	if footer == "" {
		footer = domain.DefaultFooterText
	}

	return &PurchaseService{
		products: append([]domain.Product(nil), products...),
		catalog:  catalog,
		wallet:   wallet,
		notifier: notifier,
		logger:   logger,
		metrics:  recorderOrNoop(metrics),
		footer:   footer,
		now:      time.Now,
	}
}

// Products возвращает каталог магазина
func (s *PurchaseService) Products() []domain.Product {
	return append([]domain.Product(nil), s.products...)
}

// Purchase покупает ранг или предмет.
// При нехватке монет и при ошибке уведомления баланс не меняется.
func (s *PurchaseService) Purchase(ctx context.Context, userID int64, req domain.PurchaseRequest) (*domain.PurchaseResult, error) {
	if userID <= 0 {
		return nil, domain.ErrNotAuthenticated
	}

	product, err := s.validate(&req)
	if err != nil {
		return nil, err
	}

	wallet, err := s.wallet.GetWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet.CurrentBalance < product.Price {
		return nil, fmt.Errorf("%w: need %d more coins", domain.ErrInsufficientFunds, product.Price-wallet.CurrentBalance)
	}

	if err := s.notifier.Notify(ctx, domain.ChannelPurchase, s.message(userID, product, req)); err != nil {
		if !errors.Is(err, domain.ErrNotificationFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrNotificationFailed, err)
		}
		return nil, fmt.Errorf("purchase service: failed to announce purchase of %q: %w", product.Name, err)
	}

	profile, err := s.wallet.Debit(ctx, userID, product.Price, product.Name)
	if err != nil {
		// Персонал уже получил заявку, а монеты не списаны
		s.metrics.IncReconciliationError()
		s.logger.Error("purchase announced but debit failed",
			zap.Int64("user_id", userID),
			zap.String("product", product.Name),
			zap.Int64("price", product.Price),
			zap.String("username", req.Username),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("purchase completed",
		zap.Int64("user_id", userID),
		zap.String("product", product.Name),
		zap.Int64("price", product.Price),
	)

	result := &domain.PurchaseResult{
		Product: product.Name,
		Price:   product.Price,
		Wallet:  domain.WalletOf(profile),
	}
	if len(profile.Transactions) > 0 {
		result.Transaction = profile.Transactions[0]
	}
	return result, nil
}

func (s *PurchaseService) validate(req *domain.PurchaseRequest) (domain.Product, error) {
	name := strings.TrimSpace(req.Product)
	if name == "" {
		return domain.Product{}, domain.NewValidationError("product", "product is required")
	}

	product, ok := s.catalog[strings.ToLower(name)]
	if !ok {
		return domain.Product{}, domain.NewValidationError("product", fmt.Sprintf("unknown product %q", name))
	}
	if req.Price != product.Price {
		return domain.Product{}, domain.NewValidationError("price", fmt.Sprintf("price of %s is %d coins", product.Name, product.Price))
	}

	req.Username = username.Normalize(req.Username)
	if !username.Validate(req.Username) {
		return domain.Product{}, domain.NewValidationError("username", username.Rule)
	}

	req.CustomTag = strings.TrimSpace(req.CustomTag)
	if req.CustomTag != "" {
		if product.Kind != domain.ProductKindRank {
			return domain.Product{}, domain.NewValidationError("custom_tag", "custom tag is only available for ranks")
		}
		if len([]rune(req.CustomTag)) > maxCustomTag {
			return domain.Product{}, domain.NewValidationError("custom_tag", fmt.Sprintf("custom tag must be at most %d characters", maxCustomTag))
		}
	}

	return product, nil
}

func (s *PurchaseService) message(userID int64, product domain.Product, req domain.PurchaseRequest) *domain.Message {
	now := s.now().UTC()

	fields := []domain.EmbedField{
		{Name: "🏷️ Product", Value: product.Name, Inline: true},
		{Name: "💰 Price", Value: strconv.FormatInt(product.Price, 10) + " TS Coins", Inline: true},
		{Name: "👤 Minecraft Username", Value: req.Username},
	}
	if req.CustomTag != "" {
		fields = append(fields, domain.EmbedField{Name: "🔖 Custom Tag", Value: req.CustomTag})
	}
	fields = append(fields,
		domain.EmbedField{Name: "🆔 Account", Value: strconv.FormatInt(userID, 10)},
		domain.EmbedField{Name: "🕐 Purchased At", Value: now.Format(submittedAtFmt)},
	)

	return &domain.Message{Embeds: []domain.Embed{{
		Title:       "🛒 New " + kindLabel(product.Kind) + " Purchase",
		Description: "A purchase was made in the TS Coins store.",
		Color:       purchaseColor,
		Fields:      fields,
		Footer:      &domain.EmbedFooter{Text: s.footer},
		Timestamp:   now.Format(time.RFC3339),
	}}}
}

func kindLabel(kind domain.ProductKind) string {
	if kind == domain.ProductKindRank {
		return "Rank"
	}
	return "Item"
}
