package money

import (
	"fmt"
)

// Currency a currency identified by its three letter ISO code
type Currency struct {
	code string
}

// NewCurrency constructs a valid Currency. The code must be exactly three uppercase ASCII letters.
func NewCurrency(code string) (Currency, error) {
	if len(code) != 3 {
		return Currency{}, fmt.Errorf("%w: %q", ErrInvalidCurrencyCode, code)
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return Currency{}, fmt.Errorf("%w: %q", ErrInvalidCurrencyCode, code)
		}
	}
	return Currency{code: code}, nil
}

// MustCurrency is like NewCurrency but panics on an invalid code
func MustCurrency(code string) Currency {
	c, err := NewCurrency(code)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Currency) Code() string {
	return c.code
}

// Equals is the only notion of currency identity: exact code match, no case folding.
func (c Currency) Equals(other Currency) bool {
	return c.code == other.code
}

func (c Currency) String() string {
	return c.code
}
