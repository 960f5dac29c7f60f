package domain

import "encoding/json"

// profileRecord описывает JSON-формат записи "userProfile".
// Поле coins хранит баланс для совместимости со старыми записями.
type profileRecord struct {
	Coins         int64         `json:"coins"`
	TotalCoins    *int64        `json:"totalCoins,omitempty"`
	UsedCoins     int64         `json:"usedCoins"`
	BonusCoins    int64         `json:"bonusCoins"`
	WinningCoins  int64         `json:"winningCoins"`
	Transactions  []Transaction `json:"transactions"`
	LastBonusDate string        `json:"lastBonusDate,omitempty"`
	Revision      int64         `json:"revision"`
}

// MarshalJSON сериализует профиль вместе с вычисленным балансом
func (p Profile) MarshalJSON() ([]byte, error) {
	total := p.TotalCoins
	transactions := p.Transactions
	if transactions == nil {
		transactions = []Transaction{}
	}
	return json.Marshal(profileRecord{
		Coins:         p.Balance(),
		TotalCoins:    &total,
		UsedCoins:     p.UsedCoins,
		BonusCoins:    p.BonusCoins,
		WinningCoins:  p.WinningCoins,
		Transactions:  transactions,
		LastBonusDate: p.LastBonusDate,
		Revision:      p.Revision,
	})
}

// UnmarshalJSON восстанавливает профиль.
// Если totalCoins отсутствует, итог восстанавливается из coins, чтобы баланс не изменился.
func (p *Profile) UnmarshalJSON(data []byte) error {
	var rec profileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}

	p.UsedCoins = rec.UsedCoins
	p.BonusCoins = rec.BonusCoins
	p.WinningCoins = rec.WinningCoins
	p.Transactions = rec.Transactions
	p.LastBonusDate = rec.LastBonusDate
	p.Revision = rec.Revision

	if rec.TotalCoins != nil {
		p.TotalCoins = *rec.TotalCoins
	} else {
		p.TotalCoins = rec.Coins + rec.UsedCoins
	}

	return nil
}
