package config

import "time"

type ExchangeRate struct {
	BaseURL         string        `env:"EXCHANGE_RATE_BASE_URL" envDefault:"https://open.er-api.com/v6/latest"`
	BaseCurrency    string        `env:"EXCHANGE_RATE_BASE" envDefault:"USD"`
	QuoteCurrency   string        `env:"EXCHANGE_RATE_QUOTE" envDefault:"THB"`
	RequestTimeout  time.Duration `env:"EXCHANGE_RATE_REQUEST_TIMEOUT" envDefault:"10s"`
	MaxRetries      uint64        `env:"EXCHANGE_RATE_MAX_RETRIES" envDefault:"3"`
	CacheTTL        time.Duration `env:"EXCHANGE_RATE_CACHE_TTL" envDefault:"15m"`
	RefreshSchedule string        `env:"EXCHANGE_RATE_REFRESH_SCHEDULE" envDefault:"@every 10m"`
	AlertThreshold  float64       `env:"EXCHANGE_RATE_ALERT_THRESHOLD_PERCENT" envDefault:"0"`
}
