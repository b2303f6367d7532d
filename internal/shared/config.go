package shared

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/kelseyhightower/envconfig"

	"hotel_portal/internal/domain"
)

type Config struct {
	AppEnv      string `envconfig:"APP_ENV" default:"prod"`
	HTTPAddr    string `envconfig:"HTTP_ADDR" default:":8080"`
	MetricsAddr string `envconfig:"METRICS_ADDR" default:""`

	AuthBase    string `envconfig:"AUTH_BASE_URL" default:"http://localhost:8083/api"`
	RoomsBase   string `envconfig:"ROOMS_BASE_URL" default:"http://localhost:8081/api"`
	PaymentBase string `envconfig:"PAYMENT_BASE_URL" default:"http://localhost:8082/api"`

	RedisAddr string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPass string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB   int    `envconfig:"REDIS_DB" default:"0"`

	// placeholder keeps the demo behavior: failed reads resolve with fixed data
	FallbackMode string `envconfig:"FALLBACK_MODE" default:"placeholder"`

	// zero means no per-request deadline beyond the caller's context
	UpstreamTimeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"0"`
	UpstreamRPS     int           `envconfig:"UPSTREAM_RPS" default:"25"`
}

func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, errors.Wrap(err, "load config")
	}
	if c.FallbackMode != string(domain.FallbackPlaceholder) && c.FallbackMode != string(domain.FallbackPropagate) {
		return Config{}, errors.Newf("FALLBACK_MODE must be placeholder or propagate, got %q", c.FallbackMode)
	}
	return c, nil
}

func (c Config) FallbackPolicy() domain.FallbackPolicy {
	return domain.FallbackPolicy(c.FallbackMode)
}
