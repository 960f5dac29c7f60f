package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/tscoins-wallet/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCooldownRepository_GetCooldown(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCooldownRepository(mock)
	ctx := context.Background()
	expiresAt := time.Now().Add(30 * time.Minute)

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT expires_at FROM cooldowns`).
			WithArgs("user:1", domain.ActionWhitelist).
			WillReturnRows(pgxmock.NewRows([]string{"expires_at"}).AddRow(expiresAt))

		got, ok, err := repo.GetCooldown(ctx, "user:1", domain.ActionWhitelist)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, expiresAt.Equal(got))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not set", func(t *testing.T) {
		mock.ExpectQuery(`SELECT expires_at FROM cooldowns`).
			WithArgs("user:1", domain.ActionBugReport).
			WillReturnError(pgx.ErrNoRows)

		_, ok, err := repo.GetCooldown(ctx, "user:1", domain.ActionBugReport)
		require.NoError(t, err)
		assert.False(t, ok)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT expires_at FROM cooldowns`).
			WithArgs("user:1", domain.ActionWhitelist).
			WillReturnError(errors.New("database error"))

		_, _, err := repo.GetCooldown(ctx, "user:1", domain.ActionWhitelist)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCooldownRepository_SetAndDelete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCooldownRepository(mock)
	ctx := context.Background()
	expiresAt := time.Now().Add(time.Minute)

	mock.ExpectExec(`INSERT INTO cooldowns`).
		WithArgs("ip:10.0.0.1", domain.ActionWhitelist, expiresAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`DELETE FROM cooldowns`).
		WithArgs("ip:10.0.0.1", domain.ActionWhitelist).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.SetCooldown(ctx, "ip:10.0.0.1", domain.ActionWhitelist, expiresAt))
	require.NoError(t, repo.DeleteCooldown(ctx, "ip:10.0.0.1", domain.ActionWhitelist))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCooldownRepository_Expired(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCooldownRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("List", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"subject", "action_id", "expires_at"}).
			AddRow("user:1", domain.ActionWhitelist, now.Add(-time.Hour)).
			AddRow("ip:10.0.0.1", domain.ActionBugReport, now.Add(-time.Minute))

		mock.ExpectQuery(`SELECT subject, action_id, expires_at FROM cooldowns WHERE expires_at`).
			WithArgs(now, 100).
			WillReturnRows(rows)

		cooldowns, err := repo.ListExpiredCooldowns(ctx, now, 100)
		require.NoError(t, err)
		require.Len(t, cooldowns, 2)
		assert.Equal(t, "user:1", cooldowns[0].Subject)
		assert.Equal(t, domain.ActionBugReport, cooldowns[1].ActionID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Delete expired", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM cooldowns WHERE subject = \$1 AND action_id = \$2 AND expires_at <= \$3`).
			WithArgs("user:1", domain.ActionWhitelist, now).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		deleted, err := repo.DeleteExpiredCooldown(ctx, "user:1", domain.ActionWhitelist, now)
		require.NoError(t, err)
		assert.True(t, deleted)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Extended in the meantime", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM cooldowns`).
			WithArgs("user:1", domain.ActionWhitelist, now).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		deleted, err := repo.DeleteExpiredCooldown(ctx, "user:1", domain.ActionWhitelist, now)
		require.NoError(t, err)
		assert.False(t, deleted)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
