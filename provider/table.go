package provider

import (
	"context"
	"fmt"
	"go-money-exchange"
)

// Table a fixed table of rates keyed by money.PairKey, e.g. "USDEUR".
// Reverse pairs are not derived: "EURUSD" must be listed to be found.
type Table struct {
	rates map[string]money.Rate
}

// NewTable copies rates into a new Table
func NewTable(rates map[string]money.Rate) *Table {
	t := &Table{rates: make(map[string]money.Rate, len(rates))}
	for k, v := range rates {
		t.rates[k] = v
	}
	return t
}

func (t *Table) ExchangeRate(_ context.Context, base money.Currency, quote money.Currency) (money.Rate, error) {
	rate, ok := t.rates[money.PairKey(base, quote)]
	if !ok {
		return 0, fmt.Errorf("no rate for [%v] to [%v]", base, quote)
	}
	return rate, nil
}
