package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/avc/tscoins-wallet/internal/cooldown"
	"github.com/avc/tscoins-wallet/internal/domain"
	"github.com/avc/tscoins-wallet/internal/notifier"
	"go.uber.org/zap"
)

// errorResponse отображается на сайте во всплывающем сообщении
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func writeMessage(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	writeJSON(w, logger, status, errorResponse{Error: message})
}

// writeError переводит ошибку сервиса в HTTP ответ.
// Текст внутренних ошибок клиенту не отдается.
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	var (
		validation *domain.ValidationError
		active     *cooldown.ActiveError
		rateLimit  *notifier.RateLimitError
	)

	switch {
	case errors.As(err, &validation):
		writeMessage(w, logger, http.StatusBadRequest, validation.Error())
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidAmount):
		writeMessage(w, logger, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotAuthenticated):
		writeMessage(w, logger, http.StatusUnauthorized, "Please log in to continue")
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeMessage(w, logger, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, domain.ErrInsufficientFunds):
		writeMessage(w, logger, http.StatusPaymentRequired, insufficientMessage(err))
	case errors.Is(err, domain.ErrUserExists):
		writeMessage(w, logger, http.StatusConflict, "An account with this email already exists")
	case errors.Is(err, domain.ErrBonusAlreadyClaimed):
		writeMessage(w, logger, http.StatusConflict, "Daily bonus already claimed today")
	case errors.Is(err, domain.ErrRevisionConflict):
		writeMessage(w, logger, http.StatusConflict, "Your wallet was updated elsewhere, please try again")
	case errors.As(err, &active):
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter(active.Remaining.Seconds())))
		writeMessage(w, logger, http.StatusTooManyRequests, "Please wait "+cooldown.Status{State: cooldown.Active, Remaining: active.Remaining}.Display()+" before submitting again")
	case errors.As(err, &rateLimit):
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter(rateLimit.RetryAfter.Seconds())))
		logger.Warn("webhook rate limited", zap.Error(err))
		writeMessage(w, logger, http.StatusBadGateway, "Error submitting. Please try again.")
	case errors.Is(err, domain.ErrNotificationFailed):
		logger.Warn("notification failed", zap.String("path", r.URL.Path), zap.Error(err))
		writeMessage(w, logger, http.StatusBadGateway, "Error submitting. Please try again.")
	case errors.Is(err, domain.ErrStorageUnavailable):
		logger.Error("storage unavailable", zap.String("path", r.URL.Path), zap.Error(err))
		writeMessage(w, logger, http.StatusServiceUnavailable, "Service temporarily unavailable")
	default:
		logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		writeMessage(w, logger, http.StatusInternalServerError, "Internal Server Error")
	}
}

// insufficientMessage сохраняет недостающую сумму из текста ошибки
func insufficientMessage(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, domain.ErrInsufficientFunds.Error()); i >= 0 {
		return "Insufficient" + msg[i+len("insufficient"):]
	}
	return "Insufficient funds"
}

func retryAfter(seconds float64) int {
	if seconds <= 0 {
		return 1
	}
	return int(math.Ceil(seconds))
}
