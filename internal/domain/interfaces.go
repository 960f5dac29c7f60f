package domain

import (
	"context"
	"time"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	CreateUser(ctx context.Context, login, passwordHash string) (*User, error)
	GetUserByLogin(ctx context.Context, login string) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
}

// ProfileRepository определяет хранилище профилей кошелька.
// SaveProfile принимает профиль с прочитанной ревизией и отклоняет запись
// с ErrRevisionConflict, если ревизия в хранилище уже изменилась.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
	SaveProfile(ctx context.Context, profile *Profile) error
}

// CooldownRepository определяет хранилище сроков кулдаунов
type CooldownRepository interface {
	GetCooldown(ctx context.Context, subject, actionID string) (time.Time, bool, error)
	SetCooldown(ctx context.Context, subject, actionID string, expiresAt time.Time) error
	DeleteCooldown(ctx context.Context, subject, actionID string) error
	ListExpiredCooldowns(ctx context.Context, now time.Time, limit int) ([]*Cooldown, error)
	DeleteExpiredCooldown(ctx context.Context, subject, actionID string, now time.Time) (bool, error)
}

// Notifier отправляет сообщения во внешнюю чат-платформу
type Notifier interface {
	Notify(ctx context.Context, channel Channel, msg *Message) error
}

// AuthService определяет методы аутентификации
type AuthService interface {
	Register(ctx context.Context, login, password string) (string, error)
	Login(ctx context.Context, login, password string) (string, error)
	Session(ctx context.Context, userID int64) (*Session, error)
}

// WalletService определяет методы работы с кошельком
type WalletService interface {
	GetWallet(ctx context.Context, userID int64) (*Wallet, error)
	Credit(ctx context.Context, userID int64, amount int64, category Category, description string) (*Profile, error)
	Debit(ctx context.Context, userID int64, amount int64, description string) (*Profile, error)
	History(ctx context.Context, userID int64) ([]HistoryEntry, error)
	Stats(ctx context.Context, userID int64) (*WalletStats, error)
	ClaimDailyBonus(ctx context.Context, userID int64) (*BonusResult, error)
}

// PurchaseService определяет методы магазина
type PurchaseService interface {
	Products() []Product
	Purchase(ctx context.Context, userID int64, req PurchaseRequest) (*PurchaseResult, error)
}

// FormService определяет методы отправки форм сообщества
type FormService interface {
	SubmitWhitelist(ctx context.Context, subject string, app WhitelistApplication) (*SubmissionResult, error)
	SubmitPasswordReset(ctx context.Context, subject string, req PasswordResetRequest) (*SubmissionResult, error)
	SubmitBugReport(ctx context.Context, subject string, report BugReport) (*SubmissionResult, error)
	SubmitTeamRegistration(ctx context.Context, subject string, team TeamRegistration) (*SubmissionResult, error)
	CooldownStatus(ctx context.Context, subject, actionID string) (*CooldownStatus, error)
}

// CooldownStatus представляет состояние кулдауна для клиента
type CooldownStatus struct {
	ActionID         string    `json:"action"`
	Active           bool      `json:"active"`
	ExpiresAt        time.Time `json:"expires_at,omitempty"`
	RemainingSeconds int64     `json:"remaining_seconds"`
	Display          string    `json:"display,omitempty"`
}
