package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/avc/tscoins-wallet/internal/domain"
	"github.com/avc/tscoins-wallet/internal/ledger"
	"go.uber.org/zap"
)

const (
	// DefaultSaveAttempts число попыток записи профиля при конфликте ревизий
	DefaultSaveAttempts = 3

	dailyBonusMin         = 10
	dailyBonusMax         = 50
	dailyBonusDescription = "Daily Login Bonus"
	bonusDateLayout       = "2006-01-02"
)

// Исходы операций для метрик
const (
	outcomeSuccess  = "success"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

// WalletService реализует domain.WalletService.
// Каждая операция читает профиль, применяет функцию ledger и записывает профиль
// с проверкой ревизии; при конфликте цикл повторяется.
type WalletService struct {
	profiles domain.ProfileRepository
	logger   *zap.Logger
	metrics  Recorder
	now      func() time.Time
	roll     func() int64
	attempts int
}

// NewWalletService создает новый WalletService
func NewWalletService(profiles domain.ProfileRepository, logger *zap.Logger, metrics Recorder) *WalletService {
	return &WalletService{
		profiles: profiles,
		logger:   logger,
		metrics:  recorderOrNoop(metrics),
		now:      time.Now,
		roll: func() int64 {
			return dailyBonusMin + rand.Int63n(dailyBonusMax-dailyBonusMin+1)
		},
		attempts: DefaultSaveAttempts,
	}
}

// GetWallet получает текущее состояние кошелька
func (s *WalletService) GetWallet(ctx context.Context, userID int64) (*domain.Wallet, error) {
	profile, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	wallet := domain.WalletOf(profile)
	return &wallet, nil
}

// Credit начисляет монеты пользователю
func (s *WalletService) Credit(ctx context.Context, userID int64, amount int64, category domain.Category, description string) (*domain.Profile, error) {
	profile, err := s.update(ctx, userID, func(p domain.Profile) (domain.Profile, error) {
		next, _, err := ledger.Credit(p, amount, category, description, s.now())
		return next, err
	})
	s.metrics.IncLedgerOperation(string(domain.TransactionKindCredit), string(category), outcomeOf(err))
	if err != nil {
		return nil, err
	}

	s.logger.Info("coins credited",
		zap.Int64("user_id", userID),
		zap.Int64("amount", amount),
		zap.String("category", string(category)),
		zap.Int64("balance", profile.Balance()),
	)

	return profile, nil
}

// Debit списывает монеты у пользователя
func (s *WalletService) Debit(ctx context.Context, userID int64, amount int64, description string) (*domain.Profile, error) {
	profile, err := s.update(ctx, userID, func(p domain.Profile) (domain.Profile, error) {
		next, _, err := ledger.Debit(p, amount, description, s.now())
		return next, err
	})
	s.metrics.IncLedgerOperation(string(domain.TransactionKindDebit), string(domain.CategoryPurchase), outcomeOf(err))
	if err != nil {
		return nil, err
	}

	s.logger.Info("coins debited",
		zap.Int64("user_id", userID),
		zap.Int64("amount", amount),
		zap.Int64("balance", profile.Balance()),
	)

	return profile, nil
}

// History возвращает историю операций для отображения, новые сверху
func (s *WalletService) History(ctx context.Context, userID int64) ([]domain.HistoryEntry, error) {
	profile, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	return ledger.Render(profile.Transactions), nil
}

// Stats возвращает сводную статистику кошелька
func (s *WalletService) Stats(ctx context.Context, userID int64) (*domain.WalletStats, error) {
	profile, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := ledger.Stats(*profile)
	return &stats, nil
}

// ClaimDailyBonus начисляет ежедневный бонус от 10 до 50 монет, не чаще раза в календарный день (UTC)
func (s *WalletService) ClaimDailyBonus(ctx context.Context, userID int64) (*domain.BonusResult, error) {
	amount := s.roll()

	profile, err := s.update(ctx, userID, func(p domain.Profile) (domain.Profile, error) {
		now := s.now()
		today := now.UTC().Format(bonusDateLayout)
		if p.LastBonusDate == today {
			return p, domain.ErrBonusAlreadyClaimed
		}

		next, _, err := ledger.Credit(p, amount, domain.CategoryBonus, dailyBonusDescription, now)
		if err != nil {
			return p, err
		}
		next.LastBonusDate = today
		return next, nil
	})
	s.metrics.IncLedgerOperation(string(domain.TransactionKindCredit), string(domain.CategoryBonus), outcomeOf(err))
	if err != nil {
		return nil, err
	}

	s.logger.Info("daily bonus claimed", zap.Int64("user_id", userID), zap.Int64("amount", amount))

	return &domain.BonusResult{Amount: amount, Wallet: domain.WalletOf(profile)}, nil
}

func (s *WalletService) load(ctx context.Context, userID int64) (*domain.Profile, error) {
	if userID <= 0 {
		return nil, domain.ErrNotAuthenticated
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, storageError(fmt.Sprintf("wallet service: failed to load profile of user %d", userID), err)
	}
	return profile, nil
}

// update выполняет цикл чтение-изменение-запись с повтором при конфликте ревизий
func (s *WalletService) update(ctx context.Context, userID int64, mutate func(domain.Profile) (domain.Profile, error)) (*domain.Profile, error) {
	for attempt := 1; ; attempt++ {
		current, err := s.load(ctx, userID)
		if err != nil {
			return nil, err
		}

		next, err := mutate(*current)
		if err != nil {
			return nil, err
		}

		err = s.profiles.SaveProfile(ctx, &next)
		if err == nil {
			return &next, nil
		}
		if !errors.Is(err, domain.ErrRevisionConflict) {
			return nil, storageError(fmt.Sprintf("wallet service: failed to save profile of user %d", userID), err)
		}

		s.metrics.IncRevisionConflict()
		if attempt >= s.attempts {
			return nil, fmt.Errorf("wallet service: profile of user %d changed %d times in a row: %w", userID, attempt, err)
		}
		s.logger.Debug("profile revision conflict, retrying",
			zap.Int64("user_id", userID),
			zap.Int("attempt", attempt),
		)
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.Is(err, domain.ErrStorageUnavailable), errors.Is(err, domain.ErrRevisionConflict):
		return outcomeError
	default:
		return outcomeRejected
	}
}
