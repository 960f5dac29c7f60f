// Package ledger содержит чистые функции изменения кошелька.
// Функции принимают профиль по значению и возвращают новый профиль,
// исходный профиль вызывающего кода не изменяется.
package ledger

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/avc/tscoins-wallet/internal/domain"
	"github.com/google/uuid"
)

// idSuffixLen длина случайного суффикса идентификатора операции
const idSuffixLen = 9

// newID строит идентификатор из времени и случайного суффикса.
// Уникальность вероятностная.
var newID = func(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:idSuffixLen]
	return fmt.Sprintf("%d%s", now.UnixMilli(), suffix)
}

// Credit начисляет монеты.
// Баланс и общий итог растут на amount, бонусный или выигрышный итог
// растет только для своей категории, покупка монет не попадает ни в один из них.
func Credit(p domain.Profile, amount int64, category domain.Category, description string, now time.Time) (domain.Profile, domain.Transaction, error) {
	if amount <= 0 {
		return p, domain.Transaction{}, domain.ErrInvalidAmount
	}
	if !category.Valid() {
		return p, domain.Transaction{}, domain.NewValidationError("category", fmt.Sprintf("unknown category %q", category))
	}
	if amount > math.MaxInt64-p.TotalCoins {
		return p, domain.Transaction{}, domain.NewValidationError("amount", "credit would overflow the wallet total")
	}

	tx := newTransaction(p.Balance()+amount, amount, domain.TransactionKindCredit, category, description, now)

	p.TotalCoins += amount
	switch category {
	case domain.CategoryBonus:
		p.BonusCoins += amount
	case domain.CategoryWinning:
		p.WinningCoins += amount
	}
	p.Transactions = Append(p.Transactions, tx)

	return p, tx, nil
}

// Debit списывает монеты.
// При нехватке средств профиль возвращается без изменений вместе с ErrInsufficientFunds.
func Debit(p domain.Profile, amount int64, description string, now time.Time) (domain.Profile, domain.Transaction, error) {
	if amount <= 0 {
		return p, domain.Transaction{}, domain.ErrInvalidAmount
	}

	balance := p.Balance()
	if balance < amount {
		return p, domain.Transaction{}, fmt.Errorf("%w: need %d more coins", domain.ErrInsufficientFunds, amount-balance)
	}

	tx := newTransaction(balance-amount, amount, domain.TransactionKindDebit, domain.CategoryPurchase, description, now)

	p.UsedCoins += amount
	p.Transactions = Append(p.Transactions, tx)

	return p, tx, nil
}

// Stats возвращает сводную статистику кошелька
func Stats(p domain.Profile) domain.WalletStats {
	return domain.WalletStats{
		TotalEarned:      p.TotalCoins,
		TotalSpent:       p.UsedCoins,
		CurrentBalance:   p.Balance(),
		BonusEarned:      p.BonusCoins,
		WinningEarned:    p.WinningCoins,
		TransactionCount: len(p.Transactions),
	}
}

// Shortfall возвращает, сколько монет не хватает для списания amount
func Shortfall(p domain.Profile, amount int64) int64 {
	if short := amount - p.Balance(); short > 0 {
		return short
	}
	return 0
}

func newTransaction(balanceAfter, amount int64, kind domain.TransactionKind, category domain.Category, description string, now time.Time) domain.Transaction {
	return domain.Transaction{
		ID:           newID(now),
		Amount:       amount,
		Kind:         kind,
		Category:     category,
		Description:  description,
		Timestamp:    now.UTC(),
		BalanceAfter: balanceAfter,
	}
}
