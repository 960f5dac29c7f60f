package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/tscoins-wallet/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var profileColumns = []string{"total_coins", "used_coins", "bonus_coins", "winning_coins", "transactions", "last_bonus_date", "revision"}

func TestProfileRepository_GetProfile(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProfileRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		history := []byte(`[{"id":"1732968000000abcdefghi","amount":50,"type":"credit","category":"bonus","description":"Daily Login Bonus","date":"2025-11-30T12:00:00Z","balance":150}]`)

		mock.ExpectQuery(`SELECT total_coins, used_coins, bonus_coins, winning_coins, transactions, last_bonus_date, revision FROM profiles`).
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(profileColumns).
				AddRow(int64(200), int64(50), int64(50), int64(0), history, "2025-11-30", int64(3)))

		profile, err := repo.GetProfile(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), profile.UserID)
		assert.Equal(t, int64(150), profile.Balance())
		assert.Equal(t, int64(3), profile.Revision)
		assert.Equal(t, "2025-11-30", profile.LastBonusDate)
		require.Len(t, profile.Transactions, 1)
		assert.Equal(t, domain.CategoryBonus, profile.Transactions[0].Category)
		assert.Equal(t, int64(150), profile.Transactions[0].BalanceAfter)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing profile is empty", func(t *testing.T) {
		mock.ExpectQuery(`SELECT total_coins`).
			WithArgs(int64(2)).
			WillReturnError(pgx.ErrNoRows)

		profile, err := repo.GetProfile(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(2), profile.UserID)
		assert.Equal(t, int64(0), profile.Balance())
		assert.Equal(t, int64(0), profile.Revision)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT total_coins`).
			WithArgs(int64(1)).
			WillReturnError(errors.New("connection refused"))

		profile, err := repo.GetProfile(ctx, 1)
		assert.Error(t, err)
		assert.Nil(t, profile)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProfileRepository_SaveProfile(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProfileRepository(mock)
	ctx := context.Background()

	t.Run("First save inserts", func(t *testing.T) {
		profile := &domain.Profile{UserID: 1, TotalCoins: 100}

		mock.ExpectExec(`INSERT INTO profiles`).
			WithArgs(int64(1), int64(100), int64(0), int64(0), int64(0), pgxmock.AnyArg(), "", int64(0)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, repo.SaveProfile(ctx, profile))
		assert.Equal(t, int64(1), profile.Revision)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Concurrent first save conflicts", func(t *testing.T) {
		profile := &domain.Profile{UserID: 1, TotalCoins: 100}

		mock.ExpectExec(`INSERT INTO profiles`).
			WithArgs(int64(1), int64(100), int64(0), int64(0), int64(0), pgxmock.AnyArg(), "", int64(0)).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))

		assert.ErrorIs(t, repo.SaveProfile(ctx, profile), domain.ErrRevisionConflict)
		assert.Equal(t, int64(0), profile.Revision)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Update with matching revision", func(t *testing.T) {
		profile := &domain.Profile{
			UserID:     1,
			TotalCoins: 100,
			UsedCoins:  30,
			Revision:   4,
			Transactions: []domain.Transaction{
				{ID: "1", Amount: 30, Kind: domain.TransactionKindDebit, Category: domain.CategoryPurchase, Timestamp: time.Now().UTC(), BalanceAfter: 70},
			},
		}

		mock.ExpectExec(`UPDATE profiles`).
			WithArgs(int64(1), int64(100), int64(30), int64(0), int64(0), pgxmock.AnyArg(), "", int64(4)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, repo.SaveProfile(ctx, profile))
		assert.Equal(t, int64(5), profile.Revision)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Stale revision", func(t *testing.T) {
		profile := &domain.Profile{UserID: 1, TotalCoins: 100, Revision: 2}

		mock.ExpectExec(`UPDATE profiles`).
			WithArgs(int64(1), int64(100), int64(0), int64(0), int64(0), pgxmock.AnyArg(), "", int64(2)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, repo.SaveProfile(ctx, profile), domain.ErrRevisionConflict)
		assert.Equal(t, int64(2), profile.Revision)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Negative balance rejected by constraint", func(t *testing.T) {
		profile := &domain.Profile{UserID: 1, TotalCoins: 10, UsedCoins: 20, Revision: 1}

		mock.ExpectExec(`UPDATE profiles`).
			WithArgs(int64(1), int64(10), int64(20), int64(0), int64(0), pgxmock.AnyArg(), "", int64(1)).
			WillReturnError(&pgconn.PgError{Code: codeCheckViolation})

		err := repo.SaveProfile(ctx, profile)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.NotErrorIs(t, err, domain.ErrInsufficientFunds)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
