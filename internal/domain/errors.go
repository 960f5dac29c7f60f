package domain

import (
	"errors"
	"fmt"
)

// Ошибки пользователей
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

// Ошибки кошелька
var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrBonusAlreadyClaimed = errors.New("daily bonus already claimed")
	ErrRevisionConflict    = errors.New("profile revision conflict")
)

// Ошибки форм и внешних систем
var (
	ErrValidation         = errors.New("validation failed")
	ErrCooldownActive     = errors.New("cooldown is active")
	ErrNotificationFailed = errors.New("notification failed")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ValidationError описывает некорректное поле формы
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrValidation)
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError создает ошибку валидации поля
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
