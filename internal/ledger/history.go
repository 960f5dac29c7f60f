package ledger

import (
	"fmt"

	"github.com/avc/tscoins-wallet/internal/domain"
)

const (
	iconCredit = "📥"
	iconDebit  = "📤"

	fallbackLabel = "Transaction"
)

var defaultLabels = map[string]string{
	"credit-bonus":    "Bonus Coins",
	"credit-winning":  "Winning Coins",
	"credit-purchase": "Coin Purchase",
	"debit-purchase":  "Item Purchase",
}

// Append добавляет операцию в начало истории и обрезает историю до domain.MaxTransactions.
// Самые старые записи отбрасываются без предупреждения.
func Append(log []domain.Transaction, tx domain.Transaction) []domain.Transaction {
	n := len(log) + 1
	if n > domain.MaxTransactions {
		n = domain.MaxTransactions
	}

	out := make([]domain.Transaction, 0, n)
	out = append(out, tx)
	out = append(out, log[:n-1]...)
	return out
}

// Render строит строки истории для отображения
func Render(log []domain.Transaction) []domain.HistoryEntry {
	entries := make([]domain.HistoryEntry, 0, len(log))
	for _, tx := range log {
		icon, sign := iconDebit, "-"
		if tx.Kind == domain.TransactionKindCredit {
			icon, sign = iconCredit, "+"
		}

		description := tx.Description
		if description == "" {
			description = DefaultDescription(tx.Kind, tx.Category)
		}

		entries = append(entries, domain.HistoryEntry{
			ID:           tx.ID,
			Icon:         icon,
			Description:  description,
			Date:         tx.Timestamp,
			SignedAmount: fmt.Sprintf("%s%d", sign, tx.Amount),
			Kind:         string(tx.Kind),
		})
	}
	return entries
}

// DefaultDescription возвращает подпись операции без описания
func DefaultDescription(kind domain.TransactionKind, category domain.Category) string {
	if label, ok := defaultLabels[string(kind)+"-"+string(category)]; ok {
		return label
	}
	return fallbackLabel
}
