package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App          App
	HTTP         HTTP
	Probe        Probe
	Metrics      Metrics
	Postgres     Postgres
	Redis        Redis
	ExchangeRate ExchangeRate
	Pricing      Pricing
	Bot          Bot
}

type App struct {
	Name     string `env:"APP_NAME" envDefault:"ebay-pricer"`
	Version  string `env:"APP_VERSION" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	NoColor  bool   `env:"LOG_NO_COLOR" envDefault:"false"`
}

type HTTP struct {
	ListenAddress   string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogFieldMaxLen  int           `env:"HTTP_LOG_FIELD_MAX_LEN" envDefault:"4096"`
}

type Probe struct {
	ListenAddress string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
}

type Bot struct {
	Token          string  `env:"BOT_TOKEN" json:"-"`
	AllowedChatIDs []int64 `env:"BOT_ALLOWED_CHAT_IDS" envSeparator:","`
	// AlertChatID чат для уведомлений об изменении курса, 0 отключает.
	AlertChatID int64 `env:"BOT_ALERT_CHAT_ID"`
}

func (b Bot) Enabled() bool {
	return b.Token != ""
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.Pricing.validate(); err != nil {
		return Config{}, fmt.Errorf("pricing: %w", err)
	}

	return config, nil
}
