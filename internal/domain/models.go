package domain

import (
	"time"
)

// TransactionKind представляет направление операции по кошельку
type TransactionKind string

const (
	TransactionKindCredit TransactionKind = "credit"
	TransactionKindDebit  TransactionKind = "debit"
)

// Category представляет категорию операции
type Category string

const (
	CategoryBonus    Category = "bonus"
	CategoryWinning  Category = "winning"
	CategoryPurchase Category = "purchase"
)

// Valid сообщает, известна ли категория
func (c Category) Valid() bool {
	switch c {
	case CategoryBonus, CategoryWinning, CategoryPurchase:
		return true
	}
	return false
}

// MaxTransactions ограничивает длину истории операций в профиле
const MaxTransactions = 50

// Ключи хранилища в формате браузерного localStorage
const (
	ProfileStorageKey  = "userProfile"
	SessionStorageKey  = "user"
	cooldownKeySuffix  = "_cooldown"
	DefaultFooterText  = "THE SAM CITY SMP"
	DefaultCooldownMin = 30
)

// CooldownKey возвращает ключ хранения кулдауна для действия
func CooldownKey(actionID string) string {
	return actionID + cooldownKeySuffix
}

// User представляет зарегистрированного пользователя сайта
type User struct {
	ID           int64     `json:"id"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"-"` // Не отправляем хеш в JSON
	CreatedAt    time.Time `json:"created_at"`
}

// Session представляет запись "user", по которой проверяется вход
type Session struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Coins  int64  `json:"coins"`
}

// Transaction представляет операцию в истории кошелька
type Transaction struct {
	ID           string          `json:"id"`
	Amount       int64           `json:"amount"`
	Kind         TransactionKind `json:"type"`
	Category     Category        `json:"category"`
	Description  string          `json:"description"`
	Timestamp    time.Time       `json:"date"`
	BalanceAfter int64           `json:"balance"`
}

// Profile представляет кошелек пользователя.
// Текущий баланс не хранится отдельно, а вычисляется из итогов.
type Profile struct {
	UserID        int64
	TotalCoins    int64
	UsedCoins     int64
	BonusCoins    int64
	WinningCoins  int64
	Transactions  []Transaction
	LastBonusDate string
	Revision      int64
}

// Balance возвращает доступный баланс
func (p *Profile) Balance() int64 {
	return p.TotalCoins - p.UsedCoins
}

// Wallet представляет кошелек для отображения клиенту
type Wallet struct {
	CurrentBalance int64 `json:"currentBalance"`
	TotalCoins     int64 `json:"totalCoins"`
	UsedCoins      int64 `json:"usedCoins"`
	BonusCoins     int64 `json:"bonusCoins"`
	WinningCoins   int64 `json:"winningCoins"`
}

// WalletOf строит представление кошелька из профиля
func WalletOf(p *Profile) Wallet {
	return Wallet{
		CurrentBalance: p.Balance(),
		TotalCoins:     p.TotalCoins,
		UsedCoins:      p.UsedCoins,
		BonusCoins:     p.BonusCoins,
		WinningCoins:   p.WinningCoins,
	}
}

// WalletStats представляет сводную статистику кошелька
type WalletStats struct {
	TotalEarned      int64 `json:"totalEarned"`
	TotalSpent       int64 `json:"totalSpent"`
	CurrentBalance   int64 `json:"currentBalance"`
	BonusEarned      int64 `json:"bonusEarned"`
	WinningEarned    int64 `json:"winningEarned"`
	TransactionCount int   `json:"transactionCount"`
}

// HistoryEntry представляет строку истории операций для отображения
type HistoryEntry struct {
	ID           string    `json:"id"`
	Icon         string    `json:"icon"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date"`
	SignedAmount string    `json:"amount"`
	Kind         string    `json:"type"`
}

// Cooldown представляет сохраненный срок блокировки действия
type Cooldown struct {
	Subject   string    `json:"subject"`
	ActionID  string    `json:"action"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ProductKind представляет тип товара магазина
type ProductKind string

const (
	ProductKindRank ProductKind = "rank"
	ProductKindItem ProductKind = "item"
)

// Product представляет позицию каталога магазина
type Product struct {
	Name  string      `json:"name" toml:"name"`
	Kind  ProductKind `json:"kind" toml:"kind"`
	Price int64       `json:"price" toml:"price"`
}

// PurchaseRequest представляет запрос на покупку ранга или предмета
type PurchaseRequest struct {
	Product   string `json:"product"`
	Price     int64  `json:"price"`
	Username  string `json:"username"`
	CustomTag string `json:"custom_tag,omitempty"`
}

// PurchaseResult представляет результат успешной покупки
type PurchaseResult struct {
	Product     string      `json:"product"`
	Price       int64       `json:"price"`
	Wallet      Wallet      `json:"wallet"`
	Transaction Transaction `json:"transaction"`
}

// BonusResult представляет результат получения ежедневного бонуса
type BonusResult struct {
	Amount int64  `json:"amount"`
	Wallet Wallet `json:"wallet"`
}
