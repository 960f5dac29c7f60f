package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/avc/tscoins-wallet/internal/domain"
	"github.com/jackc/pgx/v5"
)

// ProfileRepository реализует domain.ProfileRepository.
// История операций хранится в JSONB вместе с итогами кошелька.
type ProfileRepository struct {
	db DBTX
}

// NewProfileRepository создает новый ProfileRepository
func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetProfile получает профиль; для пользователя без записи возвращается пустой профиль
func (r *ProfileRepository) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	profile := &domain.Profile{UserID: userID}
	var transactions []byte

	err := r.db.QueryRow(ctx,
		`SELECT total_coins, used_coins, bonus_coins, winning_coins, transactions, last_bonus_date, revision
		 FROM profiles
		 WHERE user_id = $1`,
		userID,
	).Scan(
		&profile.TotalCoins,
		&profile.UsedCoins,
		&profile.BonusCoins,
		&profile.WinningCoins,
		&transactions,
		&profile.LastBonusDate,
		&profile.Revision,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile, nil
		}
		return nil, fmt.Errorf("repository: failed to get profile for user %d: %w", userID, err)
	}

	if len(transactions) > 0 {
		if err := json.Unmarshal(transactions, &profile.Transactions); err != nil {
			return nil, fmt.Errorf("repository: failed to decode transactions for user %d: %w", userID, err)
		}
	}

	return profile, nil
}

// SaveProfile записывает профиль, если ревизия в базе совпадает с profile.Revision.
// Нулевая ревизия означает первую запись профиля.
func (r *ProfileRepository) SaveProfile(ctx context.Context, profile *domain.Profile) error {
	transactions := profile.Transactions
	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	payload, err := json.Marshal(transactions)
	if err != nil {
		return fmt.Errorf("repository: failed to encode transactions for user %d: %w", profile.UserID, err)
	}

	var query string
	if profile.Revision == 0 {
		query = `INSERT INTO profiles (user_id, total_coins, used_coins, bonus_coins, winning_coins, transactions, last_bonus_date, revision)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8 + 1)
		 ON CONFLICT (user_id) DO NOTHING`
	} else {
		query = `UPDATE profiles
		 SET total_coins = $2, used_coins = $3, bonus_coins = $4, winning_coins = $5,
		     transactions = $6, last_bonus_date = $7, revision = revision + 1, updated_at = NOW()
		 WHERE user_id = $1 AND revision = $8`
	}

	tag, err := r.db.Exec(ctx, query,
		profile.UserID,
		profile.TotalCoins,
		profile.UsedCoins,
		profile.BonusCoins,
		profile.WinningCoins,
		payload,
		profile.LastBonusDate,
		profile.Revision,
	)
	if err != nil {
		// Ledger не допускает отрицательных значений, нарушение CHECK означает некорректный профиль
		if hasCode(err, codeCheckViolation) {
			return fmt.Errorf("repository: profile of user %d violates wallet constraints: %w", profile.UserID, domain.ErrValidation)
		}
		return fmt.Errorf("repository: failed to save profile for user %d: %w", profile.UserID, err)
	}

	// Запись изменил кто-то другой
	if tag.RowsAffected() == 0 {
		return domain.ErrRevisionConflict
	}

	profile.Revision++
	return nil
}
