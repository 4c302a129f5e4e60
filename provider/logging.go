package provider

import (
	"context"
	"github.com/go-kit/log"
	"go-money-exchange"
	"time"
)

// loggingProvider decorates a money.RateProvider with logging
type loggingProvider struct {
	next   money.RateProvider
	logger log.Logger
}

// NewLoggingProvider return a new logging provider
func NewLoggingProvider(logger log.Logger, p money.RateProvider) money.RateProvider {
	return &loggingProvider{
		next:   p,
		logger: logger,
	}
}

func (p *loggingProvider) ExchangeRate(ctx context.Context, base money.Currency, quote money.Currency) (rate money.Rate, err error) {
	defer func(begin time.Time) {
		p.logger.Log(
			"method", "exchange_rate",
			"base", base,
			"quote", quote,
			"rate", rate,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ExchangeRate(ctx, base, quote)
}
