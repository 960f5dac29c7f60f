// Package cooldown реализует блокировку повторной отправки форм.
//
// Таймер имеет два состояния: Idle (срок не сохранен или истек) и Active
// (сохраненный срок в будущем). Срок хранится как абсолютное время, поэтому
// состояние переживает перезапуск клиента и сервера.
package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/avc/tscoins-wallet/internal/domain"
	"go.uber.org/zap"
)

// DefaultDuration длительность кулдауна по умолчанию
const DefaultDuration = domain.DefaultCooldownMin * time.Minute

// State представляет состояние таймера
type State int

const (
	Idle State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "idle"
}

// Status представляет текущее состояние кулдауна действия
type Status struct {
	ActionID  string
	State     State
	ExpiresAt time.Time
	Remaining time.Duration
}

// Display возвращает оставшееся время в формате m:ss
func (s Status) Display() string {
	if s.State != Active {
		return ""
	}
	minutes := int64(s.Remaining / time.Minute)
	seconds := int64((s.Remaining % time.Minute) / time.Second)
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// ToDomain преобразует состояние в ответ для клиента
func (s Status) ToDomain() *domain.CooldownStatus {
	out := &domain.CooldownStatus{
		ActionID: s.ActionID,
		Active:   s.State == Active,
	}
	if out.Active {
		out.ExpiresAt = s.ExpiresAt
		out.RemainingSeconds = int64(s.Remaining.Round(time.Second) / time.Second)
		out.Display = s.Display()
	}
	return out
}

// ActiveError возвращается, пока действие заблокировано
type ActiveError struct {
	ActionID  string
	Remaining time.Duration
}

func (e *ActiveError) Error() string {
	return fmt.Sprintf("cooldown for %s is active, retry after %s", e.ActionID, e.Remaining.Round(time.Second))
}

// Unwrap позволяет проверять ошибку через errors.Is(err, domain.ErrCooldownActive)
func (e *ActiveError) Unwrap() error {
	return domain.ErrCooldownActive
}

// Timer управляет кулдаунами поверх хранилища
type Timer struct {
	repo         domain.CooldownRepository
	logger       *zap.Logger
	now          func() time.Time
	tickInterval time.Duration
}

// NewTimer создает новый Timer
func NewTimer(repo domain.CooldownRepository, logger *zap.Logger) *Timer {
	return &Timer{
		repo:         repo,
		logger:       logger,
		now:          time.Now,
		tickInterval: time.Second,
	}
}

// Start переводит действие в Active и сохраняет срок now + duration
func (t *Timer) Start(ctx context.Context, subject, actionID string, duration time.Duration) (Status, error) {
	if duration <= 0 {
		return Status{}, domain.NewValidationError("duration", "cooldown duration must be positive")
	}

	expiresAt := t.now().Add(duration)
	if err := t.repo.SetCooldown(ctx, subject, actionID, expiresAt); err != nil {
		return Status{}, fmt.Errorf("cooldown: failed to start %s for %s: %w", actionID, subject, err)
	}

	t.logger.Debug("cooldown started",
		zap.String("subject", subject),
		zap.String("action", actionID),
		zap.Time("expires_at", expiresAt),
	)

	return Status{ActionID: actionID, State: Active, ExpiresAt: expiresAt, Remaining: duration}, nil
}

// Resume восстанавливает состояние после перезагрузки страницы.
// Истекший срок удаляется, и таймер остается в Idle.
func (t *Timer) Resume(ctx context.Context, subject, actionID string) (Status, error) {
	return t.Tick(ctx, subject, actionID)
}

// Tick пересчитывает оставшееся время.
// Когда время вышло, сохраненный срок удаляется и действие снова доступно.
func (t *Timer) Tick(ctx context.Context, subject, actionID string) (Status, error) {
	expiresAt, ok, err := t.repo.GetCooldown(ctx, subject, actionID)
	if err != nil {
		return Status{}, fmt.Errorf("cooldown: failed to read %s for %s: %w", actionID, subject, err)
	}
	if !ok {
		return Status{ActionID: actionID, State: Idle}, nil
	}

	remaining := expiresAt.Sub(t.now())
	if remaining <= 0 {
		if err := t.repo.DeleteCooldown(ctx, subject, actionID); err != nil {
			return Status{}, fmt.Errorf("cooldown: failed to clear %s for %s: %w", actionID, subject, err)
		}
		return Status{ActionID: actionID, State: Idle}, nil
	}

	return Status{ActionID: actionID, State: Active, ExpiresAt: expiresAt, Remaining: remaining}, nil
}

// Watch вызывает onTick раз в секунду, пока кулдаун активен.
// Возвращает nil после перехода в Idle или ошибку контекста.
func (t *Timer) Watch(ctx context.Context, subject, actionID string, onTick func(Status)) error {
	status, err := t.Tick(ctx, subject, actionID)
	if err != nil {
		return err
	}
	onTick(status)
	if status.State == Idle {
		return nil
	}

	ticker := time.NewTicker(t.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			status, err := t.Tick(ctx, subject, actionID)
			if err != nil {
				return err
			}
			onTick(status)
			if status.State == Idle {
				return nil
			}
		}
	}
}

// Cancel досрочно снимает кулдаун
func (t *Timer) Cancel(ctx context.Context, subject, actionID string) error {
	if err := t.repo.DeleteCooldown(ctx, subject, actionID); err != nil {
		return fmt.Errorf("cooldown: failed to cancel %s for %s: %w", actionID, subject, err)
	}
	t.logger.Info("cooldown cancelled", zap.String("subject", subject), zap.String("action", actionID))
	return nil
}

// Gate возвращает *ActiveError, если действие сейчас заблокировано
func (t *Timer) Gate(ctx context.Context, subject, actionID string) error {
	status, err := t.Tick(ctx, subject, actionID)
	if err != nil {
		return err
	}
	if status.State == Active {
		return &ActiveError{ActionID: actionID, Remaining: status.Remaining}
	}
	return nil
}
