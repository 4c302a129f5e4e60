package http

import (
	"context"
	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"go-money-exchange"
	"go-money-exchange/exchange"
	"go-money-exchange/format"
	"go-money-exchange/provider"
	"net/http/httptest"
	"strings"
	"testing"
)

func newServer() *Server {
	rates := provider.NewTable(map[string]money.Rate{
		"COPGBP": 0.83823,
		"USDEUR": 0.82348,
	})
	return NewServer(exchange.New(rates, log.NewNopLogger()), format.New(), log.NewNopLogger())
}

func post(s *Server, path string, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", path, strings.NewReader(body))
	s.ServeHTTP(w, r)
	return w
}

func TestServer_Convert(t *testing.T) {
	w := post(newServer(), "/api/convert", `{"from":{"amount":1250,"currency":"COP"},"to":"GBP"}`)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t,
		`{"rate":0.83823,"amount":{"amount":1048,"currency":"GBP"},"original":{"amount":1250,"currency":"COP"}}`,
		strings.TrimSpace(w.Body.String()))
}

func TestServer_Add(t *testing.T) {
	w := post(newServer(), "/api/add", `{"left":{"amount":467,"currency":"USD"},"right":{"amount":1235,"currency":"EUR"}}`)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, `{"amount":1620,"currency":"EUR"}`, strings.TrimSpace(w.Body.String()))
}

func TestServer_Subtract(t *testing.T) {
	w := post(newServer(), "/api/subtract", `{"left":{"amount":467,"currency":"USD"},"right":{"amount":1235,"currency":"EUR"}}`)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, `{"amount":-850,"currency":"EUR"}`, strings.TrimSpace(w.Body.String()))
}

func TestServer_Format(t *testing.T) {
	w := post(newServer(), "/api/format", `{"amount":232,"currency":"USD","locale":"en_US"}`)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, `{"formatted":"$2.32"}`, strings.TrimSpace(w.Body.String()))
}

func TestServer_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
		code int
		want string
	}{
		{"bad json", "/api/convert", `{`, 400, "invalid json"},
		{"missing fields", "/api/convert", `{}`, 400, "invalid request"},
		{"long currency", "/api/convert", `{"from":{"amount":1,"currency":"thisIsWrong"},"to":"GBP"}`, 400, "invalid request"},
		{"lower case currency", "/api/convert", `{"from":{"amount":1,"currency":"cop"},"to":"GBP"}`, 400, "invalid currency code"},
		{"fractional amount", "/api/convert", `{"from":{"amount":5.00,"currency":"COP"},"to":"GBP"}`, 400, "amount is not an integer"},
		{"unknown rate", "/api/convert", `{"from":{"amount":1,"currency":"GBP"},"to":"COP"}`, 502, "failed conversion"},
		{"unknown rate on add", "/api/add", `{"left":{"amount":1,"currency":"EUR"},"right":{"amount":1,"currency":"USD"}}`, 502, "failed conversion"},
		{"bad locale", "/api/format", `{"amount":1,"currency":"USD","locale":"not a locale!"}`, 400, "invalid locale"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(newServer(), tt.path, tt.body)
			assert.Equal(t, tt.code, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestServer_MethodNotAllowed(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/convert", nil)

	newServer().ServeHTTP(w, r)

	assert.Equal(t, 405, w.Code)
}

// mismatch fails every combination as if the currencies differed
type mismatch struct{}

func (mismatch) Rate(context.Context, money.Currency, money.Currency) (money.Rate, error) {
	return 1, nil
}

func (mismatch) Exchange(_ context.Context, base money.Money, _ money.Currency) (money.Money, error) {
	return base, nil
}

func (mismatch) Add(context.Context, money.Money, money.Money) (money.Money, error) {
	return money.Money{}, money.ErrCannotAddDifferentCurrencies
}

func (mismatch) Subtract(context.Context, money.Money, money.Money) (money.Money, error) {
	return money.Money{}, money.ErrCannotSubtractDifferentCurrencies
}

func TestServer_CurrencyMismatch(t *testing.T) {
	s := NewServer(mismatch{}, format.New(), log.NewNopLogger())

	w := post(s, "/api/add", `{"left":{"amount":1,"currency":"USD"},"right":{"amount":1,"currency":"EUR"}}`)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "currency mismatch")
}
