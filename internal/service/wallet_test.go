package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/avc/tscoins-wallet/internal/domain"
	domainmocks "github.com/avc/tscoins-wallet/internal/domain/mocks"
	"github.com/avc/tscoins-wallet/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeRecorder запоминает вызовы метрик
type fakeRecorder struct {
	mu             sync.Mutex
	operations     []string
	conflicts      int
	reconciliation int
}

func (r *fakeRecorder) IncLedgerOperation(kind, category, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.operations = append(r.operations, kind+"/"+category+"/"+outcome)
}

func (r *fakeRecorder) IncRevisionConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflicts++
}

func (r *fakeRecorder) IncReconciliationError() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reconciliation++
}

var testNow = time.Date(2025, 11, 30, 12, 0, 0, 0, time.UTC)

func newTestWalletService(repo domain.ProfileRepository) (*WalletService, *fakeRecorder) {
	rec := &fakeRecorder{}
	svc := NewWalletService(repo, zap.NewNop(), rec)
	svc.now = func() time.Time { return testNow }
	svc.roll = func() int64 { return 25 }
	return svc, rec
}

// profileCopy возвращает новый указатель при каждом чтении, как настоящее хранилище
func profileCopy(p domain.Profile) func(context.Context, int64) (*domain.Profile, error) {
	return func(context.Context, int64) (*domain.Profile, error) {
		cp := p
		cp.Transactions = append([]domain.Transaction(nil), p.Transactions...)
		return &cp, nil
	}
}

func TestWalletService_GetWallet(t *testing.T) {
	repo := domainmocks.NewProfileRepositoryMock(t)
	svc, _ := newTestWalletService(repo)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo.EXPECT().GetProfile(mock.Anything, int64(1)).
			Return(&domain.Profile{UserID: 1, TotalCoins: 300, UsedCoins: 120, BonusCoins: 80, WinningCoins: 200}, nil).Once()

		wallet, err := svc.GetWallet(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.Wallet{
			CurrentBalance: 180,
			TotalCoins:     300,
			UsedCoins:      120,
			BonusCoins:     80,
			WinningCoins:   200,
		}, *wallet)
	})

	t.Run("Not authenticated", func(t *testing.T) {
		_, err := svc.GetWallet(ctx, 0)
		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	})

	t.Run("Storage error", func(t *testing.T) {
		repo.EXPECT().GetProfile(mock.Anything, int64(2)).Return(nil, errors.New("connection reset")).Once()

		_, err := svc.GetWallet(ctx, 2)
		assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
		assert.Contains(t, err.Error(), "connection reset")
	})
}

func TestWalletService_Credit(t *testing.T) {
	repo := domainmocks.NewProfileRepositoryMock(t)
	svc, rec := newTestWalletService(repo)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo.EXPECT().GetProfile(mock.Anything, int64(1)).
			RunAndReturn(profileCopy(domain.Profile{UserID: 1, TotalCoins: 100, Revision: 4})).Once()
		repo.EXPECT().SaveProfile(mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
			return p.TotalCoins == 350 && p.WinningCoins == 250 && p.Revision == 4
		})).Return(nil).Once()

		profile, err := svc.Credit(ctx, 1, 250, domain.CategoryWinning, "Tournament Win")
		require.NoError(t, err)
		assert.Equal(t, int64(350), profile.Balance())
		require.Len(t, profile.Transactions, 1)
		assert.Equal(t, "Tournament Win", profile.Transactions[0].Description)
		assert.Equal(t, int64(350), profile.Transactions[0].BalanceAfter)
	})

	t.Run("Invalid amount", func(t *testing.T) {
		repo.EXPECT().GetProfile(mock.Anything, int64(1)).
			RunAndReturn(profileCopy(domain.Profile{UserID: 1})).Once()

		_, err := svc.Credit(ctx, 1, 0, domain.CategoryBonus, "")
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	assert.Equal(t, []string{"credit/winning/success", "credit/bonus/rejected"}, rec.operations)
}

func TestWalletService_Debit(t *testing.T) {
	repo := domainmocks.NewProfileRepositoryMock(t)
	svc, _ := newTestWalletService(repo)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo.EXPECT().GetProfile(mock.Anything, int64(1)).
			RunAndReturn(profileCopy(domain.Profile{UserID: 1, TotalCoins: 1000})).Once()
		repo.EXPECT().SaveProfile(mock.Anything, mock.Anything).Return(nil).Once()

		profile, err := svc.Debit(ctx, 1, 600, "VIP")
		require.NoError(t, err)
		assert.Equal(t, int64(400), profile.Balance())
		assert.Equal(t, int64(600), profile.UsedCoins)
		assert.Equal(t, domain.TransactionKindDebit, profile.Transactions[0].Kind)
	})

	t.Run("Insufficient funds", func(t *testing.T) {
		repo.EXPECT().GetProfile(mock.Anything, int64(1)).
			RunAndReturn(profileCopy(domain.Profile{UserID: 1, TotalCoins: 100})).Once()

		_, err := svc.Debit(ctx, 1, 150, "VIP")
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Contains(t, err.Error(), "need 50 more coins")
	})
}

func TestWalletService_RevisionConflictRetry(t *testing.T) {
	t.Run("Retry succeeds", func(t *testing.T) {
		repo := domainmocks.NewProfileRepositoryMock(t)
		svc, rec := newTestWalletService(repo)

		repo.EXPECT().GetProfile(mock.Anything, int64(1)).
			RunAndReturn(profileCopy(domain.Profile{UserID: 1, TotalCoins: 100, Revision: 1})).Once()
		repo.EXPECT().GetProfile(mock.Anything, int64(1)).
			RunAndReturn(profileCopy(domain.Profile{UserID: 1, TotalCoins: 200, Revision: 2})).Once()
		repo.EXPECT().SaveProfile(mock.Anything, mock.Anything).Return(domain.ErrRevisionConflict).Once()
		repo.EXPECT().SaveProfile(mock.Anything, mock.Anything).Return(nil).Once()

		profile, err := svc.Credit(context.Background(), 1, 50, domain.CategoryBonus, "Daily Login Bonus")
		require.NoError(t, err)
		// Начисление применено к свежему профилю, а не к устаревшему
		assert.Equal(t, int64(250), profile.Balance())
		assert.Equal(t, 1, rec.conflicts)
	})

	t.Run("Attempts exhausted", func(t *testing.T) {
		repo := domainmocks.NewProfileRepositoryMock(t)
		svc, rec := newTestWalletService(repo)

		repo.EXPECT().GetProfile(mock.Anything, int64(1)).
			RunAndReturn(profileCopy(domain.Profile{UserID: 1, TotalCoins: 100})).Times(DefaultSaveAttempts)
		repo.EXPECT().SaveProfile(mock.Anything, mock.Anything).Return(domain.ErrRevisionConflict).Times(DefaultSaveAttempts)

		_, err := svc.Debit(context.Background(), 1, 10, "Diamond Sword")
		assert.ErrorIs(t, err, domain.ErrRevisionConflict)
		assert.Equal(t, DefaultSaveAttempts, rec.conflicts)
		assert.Equal(t, []string{"debit/purchase/error"}, rec.operations)
	})

	t.Run("Save storage error", func(t *testing.T) {
		repo := domainmocks.NewProfileRepositoryMock(t)
		svc, _ := newTestWalletService(repo)

		repo.EXPECT().GetProfile(mock.Anything, int64(1)).
			RunAndReturn(profileCopy(domain.Profile{UserID: 1, TotalCoins: 100})).Once()
		repo.EXPECT().SaveProfile(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

		_, err := svc.Debit(context.Background(), 1, 10, "Diamond Sword")
		assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	})
}

func TestWalletService_HistoryAndStats(t *testing.T) {
	store := memory.NewStore()
	svc, _ := newTestWalletService(store)
	ctx := context.Background()

	_, err := svc.Credit(ctx, 1, 500, domain.CategoryPurchase, "Coin Pack")
	require.NoError(t, err)
	_, err = svc.Credit(ctx, 1, 100, domain.CategoryWinning, "Tournament Win")
	require.NoError(t, err)
	_, err = svc.Debit(ctx, 1, 250, "VIP")
	require.NoError(t, err)

	history, err := svc.History(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "VIP", history[0].Description)
	assert.Equal(t, "-250", history[0].SignedAmount)
	assert.Equal(t, "+500", history[2].SignedAmount)

	stats, err := svc.Stats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.WalletStats{
		TotalEarned:      600,
		TotalSpent:       250,
		CurrentBalance:   350,
		WinningEarned:    100,
		TransactionCount: 3,
	}, *stats)
}

func TestWalletService_HistoryCap(t *testing.T) {
	store := memory.NewStore()
	svc, _ := newTestWalletService(store)
	ctx := context.Background()

	for i := 0; i < domain.MaxTransactions+5; i++ {
		_, err := svc.Credit(ctx, 1, 1, domain.CategoryWinning, "Win")
		require.NoError(t, err)
	}

	history, err := svc.History(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, history, domain.MaxTransactions)

	wallet, err := svc.GetWallet(ctx, 1)
	require.NoError(t, err)
	// Итоги не зависят от обрезки истории
	assert.Equal(t, int64(domain.MaxTransactions+5), wallet.TotalCoins)
}

func TestWalletService_ClaimDailyBonus(t *testing.T) {
	store := memory.NewStore()
	svc, rec := newTestWalletService(store)
	ctx := context.Background()

	result, err := svc.ClaimDailyBonus(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(25), result.Amount)
	assert.Equal(t, int64(25), result.Wallet.CurrentBalance)
	assert.Equal(t, int64(25), result.Wallet.BonusCoins)

	profile, err := store.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-11-30", profile.LastBonusDate)
	assert.Equal(t, "Daily Login Bonus", profile.Transactions[0].Description)

	// Повтор в тот же день отклоняется
	svc.now = func() time.Time { return testNow.Add(11 * time.Hour) }
	_, err = svc.ClaimDailyBonus(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrBonusAlreadyClaimed)

	// Следующий календарный день по UTC
	svc.now = func() time.Time { return testNow.Add(12 * time.Hour) }
	_, err = svc.ClaimDailyBonus(ctx, 1)
	require.NoError(t, err)

	wallet, err := svc.GetWallet(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(50), wallet.BonusCoins)
	assert.Equal(t, []string{"credit/bonus/success", "credit/bonus/rejected", "credit/bonus/success"}, rec.operations)
}

func TestWalletService_DefaultBonusRoll(t *testing.T) {
	svc := NewWalletService(memory.NewStore(), zap.NewNop(), nil)

	for i := 0; i < 200; i++ {
		amount := svc.roll()
		assert.GreaterOrEqual(t, amount, int64(dailyBonusMin))
		assert.LessOrEqual(t, amount, int64(dailyBonusMax))
	}
}
