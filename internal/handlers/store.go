package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/avc/tscoins-wallet/internal/domain"
	"go.uber.org/zap"
)

type StoreHandler struct {
	purchaseService domain.PurchaseService
	logger          *zap.Logger
}

func NewStoreHandler(purchaseService domain.PurchaseService, logger *zap.Logger) *StoreHandler {
	return &StoreHandler{
		purchaseService: purchaseService,
		logger:          logger,
	}
}

func (h *StoreHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.purchaseService.Products())
}

func (h *StoreHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, r, h.logger, domain.ErrNotAuthenticated)
		return
	}

	var req domain.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, h.logger, http.StatusBadRequest, "Bad Request")
		return
	}

	result, err := h.purchaseService.Purchase(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}
