package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Specific errors wrap exactly one kind so handlers can map with errors.Is.
var (
	ErrAuthorization = errors.New("not authorized")
	ErrValidation    = errors.New("validation failed")
	ErrConflict      = errors.New("conflict")
	ErrNotFound      = errors.New("not found")
	ErrStorage       = errors.New("storage failure")
)

var (
	ErrRole     = fmt.Errorf("%w: role not permitted", ErrAuthorization)
	ErrNotOwner = fmt.Errorf("%w: caller does not own the order", ErrAuthorization)

	ErrMissingField        = fmt.Errorf("%w: required field missing", ErrValidation)
	ErrAmountMismatch      = fmt.Errorf("%w: amount does not match listing price", ErrValidation)
	ErrBelowMinimum        = fmt.Errorf("%w: amount below minimum withdrawal", ErrValidation)
	ErrInsufficientBalance = fmt.Errorf("%w: insufficient balance", ErrValidation)
	ErrInvalidDestination  = fmt.Errorf("%w: invalid destination number", ErrValidation)
	ErrInvalidDecision     = fmt.Errorf("%w: unknown settlement decision", ErrValidation)

	ErrDuplicatePayment = fmt.Errorf("%w: payment already submitted", ErrConflict)
	ErrAlreadyDecided   = fmt.Errorf("%w: delivery already decided", ErrConflict)
	ErrOrderCompleted   = fmt.Errorf("%w: order already completed", ErrConflict)
	ErrOrderNotOpen     = fmt.Errorf("%w: order is not open", ErrConflict)
	ErrAlreadySettled   = fmt.Errorf("%w: withdrawal already settled", ErrConflict)
	ErrTxnNotPending    = fmt.Errorf("%w: ledger transaction is not pending", ErrConflict)

	ErrListingNotFound     = fmt.Errorf("%w: listing", ErrNotFound)
	ErrOrderNotFound       = fmt.Errorf("%w: order", ErrNotFound)
	ErrDeliveryNotFound    = fmt.Errorf("%w: delivery", ErrNotFound)
	ErrWithdrawalNotFound  = fmt.Errorf("%w: withdrawal", ErrNotFound)
	ErrTransactionNotFound = fmt.Errorf("%w: transaction", ErrNotFound)
	ErrUserNotFound        = fmt.Errorf("%w: user", ErrNotFound)
)

// StorageError marks err as a persistence failure unless it already carries a domain kind.
func StorageError(err error) error {
	if err == nil || IsKnown(err) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}

func IsKnown(err error) bool {
	for _, kind := range []error{ErrAuthorization, ErrValidation, ErrConflict, ErrNotFound, ErrStorage} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
