package http

import (
	"context"
	"errors"
	"github.com/go-kit/log"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go-money-exchange"
	"go-money-exchange/exchange"
	"net/http"
	"strconv"
)

// Server dependencies for HTTP Server functions
type Server struct {
	Service   exchange.Service
	Formatter money.Formatter
	Logger    log.Logger
	router    http.ServeMux
	validate  *validator.Validate
}

func NewServer(s exchange.Service, f money.Formatter, logger log.Logger) *Server {
	server := &Server{
		Service:   s,
		Formatter: f,
		Logger:    logger,
		router:    http.ServeMux{},
		validate:  validator.New(),
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Handle("/api/convert", s.convert())
	s.router.Handle("/api/add", s.combine("add", s.Service.Add))
	s.router.Handle("/api/subtract", s.combine("subtract", s.Service.Subtract))
	s.router.Handle("/api/format", s.format())
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// amount money as clients send and receive it
type amount struct {
	Amount   json.Number `json:"amount" validate:"required"`
	Currency string      `json:"currency" validate:"required,len=3"`
}

func (a amount) toMoney() (money.Money, error) {
	c, err := money.NewCurrency(a.Currency)
	if err != nil {
		return money.Money{}, err
	}
	return money.Parse(a.Amount.String(), c)
}

func fromMoney(m money.Money) amount {
	return amount{
		Amount:   json.Number(strconv.FormatInt(m.Amount(), 10)),
		Currency: m.Currency().Code(),
	}
}

// convert produces HTTP handler for currency conversions
func (s *Server) convert() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		From amount `json:"from"`
		To   string `json:"to" validate:"required,len=3"`
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		Rate     money.Rate `json:"rate"`
		Amount   amount     `json:"amount"`
		Original amount     `json:"original"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		var req request
		if !s.decode(rw, r, &req) {
			return
		}

		from, err := req.From.toMoney()
		if err != nil {
			s.fail(rw, err)
			return
		}
		to, err := money.NewCurrency(req.To)
		if err != nil {
			s.fail(rw, err)
			return
		}

		rate, err := s.Service.Rate(r.Context(), from.Currency(), to)
		if err != nil {
			s.fail(rw, err)
			return
		}
		converted, err := s.Service.Exchange(r.Context(), from, to)
		if err != nil {
			s.fail(rw, err)
			return
		}

		s.encode(rw, response{
			Rate:     rate,
			Amount:   fromMoney(converted),
			Original: fromMoney(from),
		})
	}
}

type combineFunc func(ctx context.Context, m1 money.Money, m2 money.Money) (money.Money, error)

// combine produces HTTP handler adding or subtracting two amounts, the result is in the currency of the right amount
func (s *Server) combine(op string, f combineFunc) http.HandlerFunc {

	type request struct {
		Left  amount `json:"left"`
		Right amount `json:"right"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		var req request
		if !s.decode(rw, r, &req) {
			return
		}

		left, err := req.Left.toMoney()
		if err != nil {
			s.fail(rw, err)
			return
		}
		right, err := req.Right.toMoney()
		if err != nil {
			s.fail(rw, err)
			return
		}

		result, err := f(r.Context(), left, right)
		if err != nil {
			s.Logger.Log("msg", "failed to "+op, "left", left, "right", right, "err", err)
			s.fail(rw, err)
			return
		}

		s.encode(rw, fromMoney(result))
	}
}

// format produces HTTP handler rendering an amount for a locale
func (s *Server) format() http.HandlerFunc {

	type request struct {
		Amount   json.Number `json:"amount" validate:"required"`
		Currency string      `json:"currency" validate:"required,len=3"`
		Locale   string      `json:"locale" validate:"required"`
	}

	type response struct {
		Formatted string `json:"formatted"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		var req request
		if !s.decode(rw, r, &req) {
			return
		}

		m, err := amount{Amount: req.Amount, Currency: req.Currency}.toMoney()
		if err != nil {
			s.fail(rw, err)
			return
		}

		formatted, err := m.Format(s.Formatter, req.Locale)
		if err != nil {
			s.writeError(rw, http.StatusBadRequest, "invalid locale")
			return
		}

		s.encode(rw, response{Formatted: formatted})
	}
}

// decode reads and validates a JSON request body, answering the client itself when it cannot
func (s *Server) decode(rw http.ResponseWriter, r *http.Request, v interface{}) bool {
	defer r.Body.Close()

	rw.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		s.writeError(rw, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		s.writeError(rw, http.StatusBadRequest, "invalid json")
		return false
	}

	if err := s.validate.Struct(v); err != nil {
		s.writeError(rw, http.StatusBadRequest, "invalid request")
		return false
	}

	return true
}

func (s *Server) encode(rw http.ResponseWriter, v interface{}) {
	enc := json.NewEncoder(rw)
	if err := enc.Encode(v); err != nil {
		s.writeError(rw, http.StatusInternalServerError, "failed json encoding")
	}
}

// fail answers with the status matching the error kind
func (s *Server) fail(rw http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, money.ErrInvalidCurrencyCode):
		s.writeError(rw, http.StatusBadRequest, "invalid currency code")
	case errors.Is(err, money.ErrAmountNotInteger):
		s.writeError(rw, http.StatusBadRequest, "amount is not an integer")
	case errors.Is(err, money.ErrCurrencyMismatch):
		s.writeError(rw, http.StatusBadRequest, "currency mismatch")
	case errors.Is(err, money.ErrRateLookupFailed):
		s.writeError(rw, http.StatusBadGateway, "failed conversion")
	default:
		s.writeError(rw, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) writeError(rw http.ResponseWriter, status int, msg string) {
	rw.WriteHeader(status)
	_ = json.NewEncoder(rw).Encode(map[string]string{"error": msg})
}
