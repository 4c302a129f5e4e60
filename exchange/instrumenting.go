package exchange

import (
	"context"
	"github.com/prometheus/client_golang/prometheus"
	"go-money-exchange"
	"strconv"
	"time"
)

// instrumentingService decorates an exchange.Service with request count and latency metrics
type instrumentingService struct {
	requestCount   *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	next           Service
}

// NewInstrumentingService registers its metrics with reg and returns a new instrumenting Service
func NewInstrumentingService(reg prometheus.Registerer, s Service) Service {
	requestCount := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "money",
		Subsystem: "exchange",
		Name:      "requests_total",
		Help:      "Number of exchange requests received.",
	}, []string{"method", "error"})

	requestLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "money",
		Subsystem: "exchange",
		Name:      "request_duration_seconds",
		Help:      "Duration of exchange requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	reg.MustRegister(requestCount, requestLatency)

	return &instrumentingService{
		requestCount:   requestCount,
		requestLatency: requestLatency,
		next:           s,
	}
}

func (s *instrumentingService) observe(method string, begin time.Time, err error) {
	s.requestCount.WithLabelValues(method, strconv.FormatBool(err != nil)).Inc()
	s.requestLatency.WithLabelValues(method).Observe(time.Since(begin).Seconds())
}

func (s *instrumentingService) Rate(ctx context.Context, base money.Currency, quote money.Currency) (rate money.Rate, err error) {
	defer func(begin time.Time) { s.observe("rate", begin, err) }(time.Now())
	return s.next.Rate(ctx, base, quote)
}

func (s *instrumentingService) Exchange(ctx context.Context, base money.Money, quote money.Currency) (m money.Money, err error) {
	defer func(begin time.Time) { s.observe("exchange", begin, err) }(time.Now())
	return s.next.Exchange(ctx, base, quote)
}

func (s *instrumentingService) Add(ctx context.Context, m1 money.Money, m2 money.Money) (m money.Money, err error) {
	defer func(begin time.Time) { s.observe("add", begin, err) }(time.Now())
	return s.next.Add(ctx, m1, m2)
}

func (s *instrumentingService) Subtract(ctx context.Context, m1 money.Money, m2 money.Money) (m money.Money, err error) {
	defer func(begin time.Time) { s.observe("subtract", begin, err) }(time.Now())
	return s.next.Subtract(ctx, m1, m2)
}
