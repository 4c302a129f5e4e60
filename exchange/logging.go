package exchange

import (
	"context"
	"github.com/go-kit/log"
	"go-money-exchange"
	"time"
)

// loggingService decorates an exchange.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Rate(ctx context.Context, base money.Currency, quote money.Currency) (rate money.Rate, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "rate",
			"base", base,
			"quote", quote,
			"rate", rate,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Rate(ctx, base, quote)
}

func (s *loggingService) Exchange(ctx context.Context, base money.Money, quote money.Currency) (m money.Money, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "exchange",
			"base", base,
			"quote", quote,
			"converted", m,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Exchange(ctx, base, quote)
}

func (s *loggingService) Add(ctx context.Context, m1 money.Money, m2 money.Money) (m money.Money, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "add",
			"m1", m1,
			"m2", m2,
			"result", m,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Add(ctx, m1, m2)
}

func (s *loggingService) Subtract(ctx context.Context, m1 money.Money, m2 money.Money) (m money.Money, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "subtract",
			"m1", m1,
			"m2", m2,
			"result", m,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Subtract(ctx, m1, m2)
}
