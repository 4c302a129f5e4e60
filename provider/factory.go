package provider

import (
	"fmt"
	"go-money-exchange"
	"go-money-exchange/fixer"
	"go-money-exchange/yahoo"
	"strings"
)

// Names of the supported rate services
const (
	Fixer  = "fixer"
	Yahoo  = "yahoo"
	Static = "static"
)

// Services lists every name New accepts
var Services = []string{Fixer, Yahoo, Static}

// Options configure every rate service; New only reads the ones of the selected service.
type Options struct {
	Fixer  fixer.Config
	Yahoo  yahoo.Config
	Static map[string]money.Rate
}

// New returns the rate service registered under name
func New(name string, opts Options) (money.RateProvider, error) {
	switch name {
	case Fixer:
		return fixer.NewService(opts.Fixer), nil
	case Yahoo:
		return yahoo.NewService(opts.Yahoo), nil
	case Static:
		return NewTable(opts.Static), nil
	default:
		return nil, fmt.Errorf("%w: %q, use one of: %v", money.ErrUnsupportedRateService, name, strings.Join(Services, ", "))
	}
}
