package money

import (
	"context"
)

// Rate an exchange rate: quote units per one base unit
type Rate float64

// RateProvider looks up the current exchange rate from base to quote.
type RateProvider interface {
	ExchangeRate(ctx context.Context, base Currency, quote Currency) (Rate, error)
}

// RateProviderFunc adapts a function to a RateProvider
type RateProviderFunc func(ctx context.Context, base Currency, quote Currency) (Rate, error)

func (f RateProviderFunc) ExchangeRate(ctx context.Context, base Currency, quote Currency) (Rate, error) {
	return f(ctx, base, quote)
}

// Formatter renders a major unit value as a currency string for a locale, e.g. (2.32, "USD", "en_US") => "$2.32".
type Formatter interface {
	FormatCurrency(value float64, code string, locale string) (string, error)
}

// PairKey the directional key of a currency pair, e.g. "USDGBP". PairKey(a, b) != PairKey(b, a).
func PairKey(base Currency, quote Currency) string {
	return base.Code() + quote.Code()
}
