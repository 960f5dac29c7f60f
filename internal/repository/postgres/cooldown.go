package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/tscoins-wallet/internal/domain"
	"github.com/jackc/pgx/v5"
)

// CooldownRepository реализует domain.CooldownRepository
type CooldownRepository struct {
	db DBTX
}

// NewCooldownRepository создает новый CooldownRepository
func NewCooldownRepository(db DBTX) *CooldownRepository {
	return &CooldownRepository{db: db}
}

// GetCooldown возвращает срок кулдауна, если он сохранен
func (r *CooldownRepository) GetCooldown(ctx context.Context, subject, actionID string) (time.Time, bool, error) {
	var expiresAt time.Time

	err := r.db.QueryRow(ctx,
		`SELECT expires_at FROM cooldowns WHERE subject = $1 AND action_id = $2`,
		subject, actionID,
	).Scan(&expiresAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("repository: failed to get cooldown %s for %s: %w", actionID, subject, err)
	}

	return expiresAt, true, nil
}

// SetCooldown сохраняет или продлевает кулдаун
func (r *CooldownRepository) SetCooldown(ctx context.Context, subject, actionID string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO cooldowns (subject, action_id, expires_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (subject, action_id) DO UPDATE SET expires_at = EXCLUDED.expires_at`,
		subject, actionID, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to set cooldown %s for %s: %w", actionID, subject, err)
	}
	return nil
}

// DeleteCooldown удаляет кулдаун
func (r *CooldownRepository) DeleteCooldown(ctx context.Context, subject, actionID string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM cooldowns WHERE subject = $1 AND action_id = $2`,
		subject, actionID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to delete cooldown %s for %s: %w", actionID, subject, err)
	}
	return nil
}

// ListExpiredCooldowns получает истекшие кулдауны, начиная с самых старых
func (r *CooldownRepository) ListExpiredCooldowns(ctx context.Context, now time.Time, limit int) ([]*domain.Cooldown, error) {
	rows, err := r.db.Query(ctx,
		`SELECT subject, action_id, expires_at
		 FROM cooldowns
		 WHERE expires_at <= $1
		 ORDER BY expires_at
		 LIMIT $2`,
		now, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list expired cooldowns: %w", err)
	}
	defer rows.Close()

	var cooldowns []*domain.Cooldown
	for rows.Next() {
		c := &domain.Cooldown{}
		if err := rows.Scan(&c.Subject, &c.ActionID, &c.ExpiresAt); err != nil {
			return nil, fmt.Errorf("repository: failed to scan cooldown: %w", err)
		}
		cooldowns = append(cooldowns, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating cooldowns: %w", err)
	}

	return cooldowns, nil
}

// DeleteExpiredCooldown удаляет кулдаун, только если он истек к моменту now.
// Продленный за это время кулдаун не трогается.
func (r *CooldownRepository) DeleteExpiredCooldown(ctx context.Context, subject, actionID string, now time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM cooldowns WHERE subject = $1 AND action_id = $2 AND expires_at <= $3`,
		subject, actionID, now,
	)
	if err != nil {
		return false, fmt.Errorf("repository: failed to delete expired cooldown %s for %s: %w", actionID, subject, err)
	}
	return tag.RowsAffected() > 0, nil
}
