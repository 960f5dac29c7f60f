package ledger

import (
	"testing"

	"github.com/avc/tscoins-wallet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	log := []domain.Transaction{
		{ID: "3", Amount: 150, Kind: domain.TransactionKindDebit, Category: domain.CategoryPurchase, Description: "MVP Rank", Timestamp: testNow},
		{ID: "2", Amount: 40, Kind: domain.TransactionKindCredit, Category: domain.CategoryWinning, Timestamp: testNow},
		{ID: "1", Amount: 10, Kind: domain.TransactionKindCredit, Category: domain.CategoryBonus, Timestamp: testNow},
	}

	entries := Render(log)
	require.Len(t, entries, 3)

	assert.Equal(t, "📤", entries[0].Icon)
	assert.Equal(t, "MVP Rank", entries[0].Description)
	assert.Equal(t, "-150", entries[0].SignedAmount)

	assert.Equal(t, "📥", entries[1].Icon)
	assert.Equal(t, "Winning Coins", entries[1].Description)
	assert.Equal(t, "+40", entries[1].SignedAmount)

	assert.Equal(t, "Bonus Coins", entries[2].Description)
	assert.Equal(t, testNow, entries[2].Date)
}

func TestRender_Empty(t *testing.T) {
	entries := Render(nil)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestDefaultDescription(t *testing.T) {
	tests := []struct {
		kind     domain.TransactionKind
		category domain.Category
		want     string
	}{
		{domain.TransactionKindCredit, domain.CategoryBonus, "Bonus Coins"},
		{domain.TransactionKindCredit, domain.CategoryWinning, "Winning Coins"},
		{domain.TransactionKindCredit, domain.CategoryPurchase, "Coin Purchase"},
		{domain.TransactionKindDebit, domain.CategoryPurchase, "Item Purchase"},
		{domain.TransactionKindDebit, domain.CategoryBonus, "Transaction"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"-"+string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultDescription(tt.kind, tt.category))
		})
	}
}
