package money

import (
	"fmt"
	"strconv"
	"strings"
)

// Money an amount of minor currency units (e.g. cents) in a given currency.
// Money is immutable: every operation returns a new value.
type Money struct {
	amount   int64
	currency Currency
}

// New constructs Money from an amount of minor units
func New(amount int64, currency Currency) Money {
	return Money{
		amount:   amount,
		currency: currency,
	}
}

// Parse constructs Money from a decimal literal such as "1250" or "-30".
// Literals with a fraction or exponent, even "5.00", are rejected.
func Parse(amount string, currency Currency) (Money, error) {
	a, err := strconv.ParseInt(strings.TrimSpace(amount), 10, 64)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrAmountNotInteger, amount)
	}
	return New(a, currency), nil
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) Currency() Currency {
	return m.currency
}

// Equals reports whether both the amount and the currency match
func (m Money) Equals(other Money) bool {
	return m.amount == other.amount && m.currency.Equals(other.currency)
}

// Add returns the sum of two amounts of the same currency
func (m Money) Add(other Money) (Money, error) {
	if !m.currency.Equals(other.currency) {
		return Money{}, fmt.Errorf("%w: %v and %v", ErrCannotAddDifferentCurrencies, m.currency, other.currency)
	}
	return New(m.amount+other.amount, m.currency), nil
}

// Subtract returns the difference of two amounts of the same currency
func (m Money) Subtract(other Money) (Money, error) {
	if !m.currency.Equals(other.currency) {
		return Money{}, fmt.Errorf("%w: %v and %v", ErrCannotSubtractDifferentCurrencies, m.currency, other.currency)
	}
	return New(m.amount-other.amount, m.currency), nil
}

// Format renders the amount in major units for a locale, e.g. "$8.00" for 800 USD in en_US.
// Non-breaking spaces some locales use are replaced with ordinary spaces.
func (m Money) Format(f Formatter, locale string) (string, error) {
	s, err := f.FormatCurrency(float64(m.amount)/100, m.currency.Code(), locale)
	if err != nil {
		return "", fmt.Errorf("format %v [%v]: %w", m, locale, err)
	}
	return nbsp.Replace(s), nil
}

func (m Money) String() string {
	return fmt.Sprintf("%d %v", m.amount, m.currency)
}

var nbsp = strings.NewReplacer("\u00a0", " ", "\u202f", " ")
