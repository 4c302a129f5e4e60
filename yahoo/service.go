package yahoo

import (
	"context"
	"fmt"
	"github.com/go-resty/resty/v2"
	"go-money-exchange"
	"time"
)

const ApiUrlBase = "https://query1.finance.yahoo.com"

// Config for the Yahoo Finance API. Zero values fall back to ApiUrlBase and a 10 second timeout.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Service looks up exchange rates with the Yahoo Finance chart endpoint, e.g. /v8/finance/chart/USDEUR=X
type Service struct {
	client *resty.Client
}

func NewService(cfg Config) *Service {
	if cfg.BaseURL == "" {
		cfg.BaseURL = ApiUrlBase
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &Service{
		client: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTimeout(cfg.Timeout).
			SetHeader("Accept", "application/json").
			SetHeader("User-Agent", "Mozilla/5.0"),
	}
}

// ExchangeRate loads the regular market price of the base/quote pair.
func (s *Service) ExchangeRate(ctx context.Context, base money.Currency, quote money.Currency) (money.Rate, error) {
	type Response struct {
		Chart struct {
			Result []struct {
				Meta struct {
					Currency           string  `json:"currency"`
					Symbol             string  `json:"symbol"`
					RegularMarketPrice float64 `json:"regularMarketPrice"`
				} `json:"meta"`
			} `json:"result"`
			Error *struct {
				Code        string `json:"code"`
				Description string `json:"description"`
			} `json:"error"`
		} `json:"chart"`
	}

	symbol := money.PairKey(base, quote) + "=X"

	var response Response
	httpResponse, err := s.client.R().
		SetContext(ctx).
		SetPathParam("symbol", symbol).
		SetQueryParams(map[string]string{
			"interval": "1d",
			"range":    "1d",
		}).
		SetResult(&response).
		Get("/v8/finance/chart/{symbol}")
	if err != nil {
		return 0, fmt.Errorf("http get: %w", err)
	}
	if httpResponse.IsError() {
		return 0, fmt.Errorf("yahoo api returned status: %d", httpResponse.StatusCode())
	}
	if response.Chart.Error != nil {
		return 0, fmt.Errorf("yahoo api error %v: %v", response.Chart.Error.Code, response.Chart.Error.Description)
	}
	if len(response.Chart.Result) == 0 {
		return 0, fmt.Errorf("no chart result for [%v]", symbol)
	}

	return money.Rate(response.Chart.Result[0].Meta.RegularMarketPrice), nil
}
