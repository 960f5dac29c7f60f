package handlers

import (
	"net/http"

	"github.com/avc/tscoins-wallet/internal/domain"
	"go.uber.org/zap"
)

// WalletHandler обслуживает страницу кошелька TS Coins
type WalletHandler struct {
	walletService domain.WalletService
	logger        *zap.Logger
}

func NewWalletHandler(walletService domain.WalletService, logger *zap.Logger) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		logger:        logger,
	}
}

func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, r, h.logger, domain.ErrNotAuthenticated)
		return
	}

	wallet, err := h.walletService.GetWallet(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, wallet)
}

// GetTransactions возвращает историю, новые операции первыми.
// Пустая история отдается как пустой массив, сайт показывает заглушку.
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, r, h.logger, domain.ErrNotAuthenticated)
		return
	}

	history, err := h.walletService.History(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if history == nil {
		history = []domain.HistoryEntry{}
	}

	writeJSON(w, h.logger, http.StatusOK, history)
}

func (h *WalletHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, r, h.logger, domain.ErrNotAuthenticated)
		return
	}

	stats, err := h.walletService.Stats(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, stats)
}

func (h *WalletHandler) ClaimBonus(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, r, h.logger, domain.ErrNotAuthenticated)
		return
	}

	result, err := h.walletService.ClaimDailyBonus(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}
