package exchange

import (
	"context"
	"go-money-exchange"
)

// Service interface for converting and combining money across currencies
type Service interface {
	Rate(ctx context.Context, base money.Currency, quote money.Currency) (money.Rate, error)
	Exchange(ctx context.Context, base money.Money, quote money.Currency) (money.Money, error)
	Add(ctx context.Context, m1 money.Money, m2 money.Money) (money.Money, error)
	Subtract(ctx context.Context, m1 money.Money, m2 money.Money) (money.Money, error)
}

var _ Service = (*Exchange)(nil)
