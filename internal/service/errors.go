package service

import (
	"errors"
	"fmt"

	"github.com/avc/tscoins-wallet/internal/domain"
)

// domainErrors возвращаются обработчикам без обертки ErrStorageUnavailable
var domainErrors = []error{
	domain.ErrValidation,
	domain.ErrInvalidAmount,
	domain.ErrInsufficientFunds,
	domain.ErrBonusAlreadyClaimed,
	domain.ErrRevisionConflict,
	domain.ErrUserNotFound,
	domain.ErrNotAuthenticated,
	domain.ErrCooldownActive,
	domain.ErrNotificationFailed,
	domain.ErrStorageUnavailable,
}

// storageError помечает ошибку хранилища как ErrStorageUnavailable.
// Доменные ошибки не оборачиваются.
func storageError(op string, err error) error {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return err
		}
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageUnavailable, err)
}

// Recorder учитывает операции сервисов в метриках
type Recorder interface {
	IncLedgerOperation(kind, category, outcome string)
	IncRevisionConflict()
	IncReconciliationError()
}

type noopRecorder struct{}

func (noopRecorder) IncLedgerOperation(string, string, string) {}
func (noopRecorder) IncRevisionConflict()                      {}
func (noopRecorder) IncReconciliationError()                   {}

func recorderOrNoop(r Recorder) Recorder {
	if r == nil {
		return noopRecorder{}
	}
	return r
}
