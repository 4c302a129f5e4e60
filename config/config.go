package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"os"
	"time"
)

type Config struct {
	Env         string `yaml:"env" env:"ENV" env-default:"local"`
	HTTP        `yaml:"http"`
	Log         `yaml:"log"`
	RateService string `yaml:"rate_service" env:"RATE_SERVICE" env-default:"fixer" env-description:"fixer, yahoo or static"`
	Fixer       `yaml:"fixer"`
	Yahoo       `yaml:"yahoo"`
	Static      `yaml:"static"`
}

type HTTP struct {
	Addr string `yaml:"addr" env:"HTTP_ADDR" env-default:":8080"`
}

type Log struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
}

type Fixer struct {
	BaseURL   string        `yaml:"base_url" env:"FIXER_BASE_URL" env-default:"https://data.fixer.io/api"`
	AccessKey string        `yaml:"access_key" env:"FIXER_ACCESS_KEY"`
	Timeout   time.Duration `yaml:"timeout" env:"FIXER_TIMEOUT" env-default:"5s"`
}

type Yahoo struct {
	BaseURL string        `yaml:"base_url" env:"YAHOO_BASE_URL" env-default:"https://query1.finance.yahoo.com"`
	Timeout time.Duration `yaml:"timeout" env:"YAHOO_TIMEOUT" env-default:"10s"`
}

type Static struct {
	// Rates maps pair keys to rates, e.g. STATIC_RATES="USDEUR:0.82348,EURUSD:1.21"
	Rates map[string]float64 `yaml:"rates" env:"STATIC_RATES"`
}

// Load reads the configuration from the environment, after loading an optional .env file.
// When CONFIG_PATH is set the YAML file it points to is read first and the environment overrides it.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to find config file: %w", err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &cfg, nil
}
