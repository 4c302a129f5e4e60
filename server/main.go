package main

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go-money-exchange"
	"go-money-exchange/config"
	"go-money-exchange/exchange"
	"go-money-exchange/fixer"
	"go-money-exchange/format"
	"go-money-exchange/http"
	"go-money-exchange/provider"
	"go-money-exchange/yahoo"
	"os"

	nhttp "net/http"
)

func main() {
	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	cfg, err := config.Load()
	if err != nil {
		level.Error(logger).Log("msg", "loading config", "err", err)
		os.Exit(1)
	}
	logger = level.NewFilter(logger, level.Allow(level.ParseDefault(cfg.Log.Level, level.InfoValue())))

	rates := make(map[string]money.Rate, len(cfg.Static.Rates))
	for k, v := range cfg.Static.Rates {
		rates[k] = money.Rate(v)
	}

	rateProvider, err := provider.New(cfg.RateService, provider.Options{
		Fixer: fixer.Config{
			BaseURL:   cfg.Fixer.BaseURL,
			AccessKey: cfg.Fixer.AccessKey,
			Timeout:   cfg.Fixer.Timeout,
		},
		Yahoo: yahoo.Config{
			BaseURL: cfg.Yahoo.BaseURL,
			Timeout: cfg.Yahoo.Timeout,
		},
		Static: rates,
	})
	if err != nil {
		level.Error(logger).Log("msg", "selecting rate service", "err", err)
		os.Exit(1)
	}
	rateProvider = provider.NewLoggingProvider(log.With(logger, "component", cfg.RateService), rateProvider)

	var exchangeService exchange.Service
	exchangeService = exchange.New(rateProvider, log.With(logger, "component", "exchange"))
	exchangeService = exchange.NewLoggingService(log.With(logger, "component", "exchange"), exchangeService)
	exchangeService = exchange.NewInstrumentingService(prometheus.DefaultRegisterer, exchangeService)

	mux := nhttp.NewServeMux()
	mux.Handle("/api/", http.NewServer(exchangeService, format.New(), log.With(logger, "component", "http")))
	mux.Handle("/metrics", promhttp.Handler())

	level.Info(logger).Log("msg", "listening", "addr", cfg.HTTP.Addr, "rate_service", cfg.RateService)
	if err := nhttp.ListenAndServe(cfg.HTTP.Addr, mux); err != nil {
		level.Error(logger).Log("msg", "server stopped", "err", err)
		os.Exit(1)
	}
}
