package fixer

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-money-exchange"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

var (
	cop = money.MustCurrency("COP")
	gbp = money.MustCurrency("GBP")
)

func TestService_ExchangeRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/latest", req.URL.Path)
		assert.Equal(t, "COP", req.URL.Query().Get("base"))
		assert.Equal(t, "GBP", req.URL.Query().Get("symbols"))
		assert.Equal(t, "secret", req.URL.Query().Get("access_key"))
		rw.Header().Set("Content-Type", "application/json")
		_, _ = rw.Write([]byte(`{
			"success": true,
			"base": "COP",
			"date": "2017-02-27",
			"rates": {
				"GBP": 0.83823
			}
		}`))
	}))
	defer server.Close()

	s := NewService(Config{BaseURL: server.URL, AccessKey: "secret"})

	rate, err := s.ExchangeRate(context.Background(), cop, gbp)

	require.NoError(t, err)
	assert.Equal(t, money.Rate(0.83823), rate)
}

func TestService_ExchangeRateMissingQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.Header().Set("Content-Type", "application/json")
		_, _ = rw.Write([]byte(`{"success": true, "base": "COP", "rates": {"EUR": 0.0003}}`))
	}))
	defer server.Close()

	s := NewService(Config{BaseURL: server.URL})

	_, err := s.ExchangeRate(context.Background(), cop, gbp)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rate for [GBP]")
}

func TestService_ExchangeRateApiError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.Header().Set("Content-Type", "application/json")
		_, _ = rw.Write([]byte(`{
			"success": false,
			"error": {
				"code": 101,
				"type": "missing_access_key",
				"info": "You have not supplied an API Access Key."
			}
		}`))
	}))
	defer server.Close()

	s := NewService(Config{BaseURL: server.URL})

	_, err := s.ExchangeRate(context.Background(), cop, gbp)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing_access_key")
}

func TestService_ExchangeRateHttpStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	s := NewService(Config{BaseURL: server.URL})

	_, err := s.ExchangeRate(context.Background(), cop, gbp)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestService_ExchangeRateTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		time.Sleep(50 * time.Millisecond)
		_, _ = rw.Write([]byte("{}"))
	}))
	defer server.Close()

	s := NewService(Config{BaseURL: server.URL, Timeout: 1 * time.Millisecond})

	_, err := s.ExchangeRate(context.Background(), cop, gbp)

	assert.Error(t, err)
}
