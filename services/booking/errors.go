package booking

import (
	"errors"
	"fmt"
)

var (
	// ErrHotelNotFound signals the target hotel does not exist.
	ErrHotelNotFound = errors.New("hotel not found")

	// ErrIntentNotFound signals the payment provider has no record of the
	// intent id.
	ErrIntentNotFound = errors.New("payment intent not found")

	// ErrIntentMismatch signals the intent was created for a different hotel
	// or user than the one attempting the commit. This blocks a caller from
	// claiming a booking paid for under another identity.
	ErrIntentMismatch = errors.New("payment intent mismatch")
)

// PaymentNotSucceededError reports an intent that has not reached the
// succeeded state. The caller may retry later; the status can still
// transition on the provider's side.
type PaymentNotSucceededError struct {
	Status string
}

func (e *PaymentNotSucceededError) Error() string {
	return fmt.Sprintf("payment intent not succeeded. Status: %s", e.Status)
}

// ProviderError wraps a failed call to the payment provider. The outcome is
// unknown: a failed create does not mean no money moved and a failed
// retrieve does not mean the intent is absent. State is left unchanged so
// the caller can retry with the same identifiers.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("payment provider %s failed: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// DataIntegrityError reports a computed-cost mismatch, or a replayed commit
// whose content differs from the ledger entry already recorded under the
// same intent id. Fatal for the request; never silently repaired.
type DataIntegrityError struct {
	Reason string
}

func (e *DataIntegrityError) Error() string {
	return "data integrity fault: " + e.Reason
}
