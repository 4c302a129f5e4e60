package money

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCurrencyCode = errors.New("invalid currency code")
	ErrAmountNotInteger    = errors.New("amount is not an integer")
	ErrCurrencyMismatch    = errors.New("currency mismatch")

	// ErrCannotAddDifferentCurrencies and ErrCannotSubtractDifferentCurrencies are
	// both ErrCurrencyMismatch, so callers may match either the kind or the operation.
	ErrCannotAddDifferentCurrencies      = fmt.Errorf("cannot add: %w", ErrCurrencyMismatch)
	ErrCannotSubtractDifferentCurrencies = fmt.Errorf("cannot subtract: %w", ErrCurrencyMismatch)

	ErrUnsupportedRateService = errors.New("unsupported rate service")
	ErrRateLookupFailed       = errors.New("rate lookup failed")
)
