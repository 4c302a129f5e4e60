package fixer

import (
	"context"
	"fmt"
	"github.com/go-resty/resty/v2"
	"go-money-exchange"
	"time"
)

const ApiUrlBase = "https://data.fixer.io/api"

// Config for the Fixer API. Zero values fall back to ApiUrlBase and a 5 second timeout.
type Config struct {
	BaseURL   string
	AccessKey string
	Timeout   time.Duration
}

// Service looks up exchange rates with the Fixer "latest" endpoint
type Service struct {
	// client for HTTP requests, preconfigured with base url and access key
	client *resty.Client
}

// NewService constructs a valid Fixer Service.
func NewService(cfg Config) *Service {
	if cfg.BaseURL == "" {
		cfg.BaseURL = ApiUrlBase
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	if cfg.AccessKey != "" {
		client.SetQueryParam("access_key", cfg.AccessKey)
	}

	return &Service{
		client: client,
	}
}

// ExchangeRate loads the latest rate from base to quote.
func (s *Service) ExchangeRate(ctx context.Context, base money.Currency, quote money.Currency) (money.Rate, error) {
	type Response struct {
		Base  string             `json:"base"`
		Date  string             `json:"date"`
		Rates map[string]float64 `json:"rates"` // maps currency codes to rates
		Error *struct {
			Code int    `json:"code"`
			Type string `json:"type"`
			Info string `json:"info"`
		} `json:"error"`
	}

	var response Response
	httpResponse, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"base":    base.Code(),
			"symbols": quote.Code(),
		}).
		SetResult(&response).
		Get("/latest")
	if err != nil {
		return 0, fmt.Errorf("http get: %w", err)
	}
	if httpResponse.IsError() {
		return 0, fmt.Errorf("fixer api returned status: %d", httpResponse.StatusCode())
	}
	if response.Error != nil {
		return 0, fmt.Errorf("fixer api error %d %v: %v", response.Error.Code, response.Error.Type, response.Error.Info)
	}

	rate, ok := response.Rates[quote.Code()]
	if !ok {
		return 0, fmt.Errorf("no rate for [%v] from [%v]", quote, base)
	}

	return money.Rate(rate), nil
}
