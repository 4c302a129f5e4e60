package exchange

import (
	"context"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/shopspring/decimal"
	"go-money-exchange"
	"math"
)

// Exchange converts money between currencies with rates from a money.RateProvider.
// Rates are cached per directional currency pair for the lifetime of the Exchange and are never
// refreshed. Construct a new Exchange, or Reset this one, to start a new rate session.
type Exchange struct {
	// provider to look up rates missing from the cache
	provider money.RateProvider

	// cache of rates keyed by money.PairKey
	cache *rateCache

	// logger for logging
	logger log.Logger
}

// New constructs a valid Exchange
func New(provider money.RateProvider, logger log.Logger) *Exchange {
	return &Exchange{
		provider: provider,
		cache:    newRateCache(),
		logger:   logger,
	}
}

// Rate returns the rate from base to quote. Same-currency rates are always 1 and never reach the provider.
// As a side-effect the cache of exchange rates might be updated.
func (e *Exchange) Rate(ctx context.Context, base money.Currency, quote money.Currency) (money.Rate, error) {
	key := money.PairKey(base, quote)

	if base.Equals(quote) {
		e.cache.put(key, 1)
		return 1, nil
	}

	if rate, ok := e.cache.get(key); ok {
		return rate, nil
	}

	level.Debug(e.logger).Log("msg", "rate not cached", "pair", key)
	rate, err := e.provider.ExchangeRate(ctx, base, quote)
	if err != nil {
		return 0, fmt.Errorf("%w [%v]: %w", money.ErrRateLookupFailed, key, err)
	}
	if rate <= 0 || math.IsNaN(float64(rate)) || math.IsInf(float64(rate), 0) {
		return 0, fmt.Errorf("%w [%v]: unusable rate %v", money.ErrRateLookupFailed, key, rate)
	}

	e.cache.put(key, rate)
	level.Debug(e.logger).Log("msg", "rate cached", "pair", key, "rate", rate)
	return rate, nil
}

// Exchange converts base into the quote currency. The converted amount is rounded half away from zero
// to a whole minor unit.
func (e *Exchange) Exchange(ctx context.Context, base money.Money, quote money.Currency) (money.Money, error) {
	rate, err := e.Rate(ctx, base.Currency(), quote)
	if err != nil {
		return money.Money{}, fmt.Errorf("exchange %v to [%v]: %w", base, quote, err)
	}

	amount := decimal.NewFromInt(base.Amount()).
		Mul(decimal.NewFromFloat(float64(rate))).
		Round(0).
		IntPart()

	return money.New(amount, quote), nil
}

// Add sums m1 and m2. m1 is converted into the currency of m2 and the sum is in the currency of m2.
func (e *Exchange) Add(ctx context.Context, m1 money.Money, m2 money.Money) (money.Money, error) {
	converted, err := e.Exchange(ctx, m1, m2.Currency())
	if err != nil {
		return money.Money{}, fmt.Errorf("add: %w", err)
	}
	return converted.Add(m2)
}

// Subtract computes m1 - m2 in the currency of m2, converting m1 first.
func (e *Exchange) Subtract(ctx context.Context, m1 money.Money, m2 money.Money) (money.Money, error) {
	converted, err := e.Exchange(ctx, m1, m2.Currency())
	if err != nil {
		return money.Money{}, fmt.Errorf("subtract: %w", err)
	}
	return converted.Subtract(m2)
}

// Reset drops every cached rate
func (e *Exchange) Reset() {
	e.cache.reset()
}

// Len number of cached currency pairs
func (e *Exchange) Len() int {
	return e.cache.len()
}
