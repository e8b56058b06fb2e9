package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/MichalMitros/shelter-scraper/internal/fetcher"
	"github.com/MichalMitros/shelter-scraper/internal/platform/models"
	"github.com/caarlos0/env/v6"
	"github.com/rs/zerolog"
)

// Mode is the way ingester is run.
type Mode string

// Mode values.
const (
	// ModeOnce runs single ingestion of SITE and exits.
	ModeOnce Mode = "once"
	// ModeConsume consumes run commands from RabbitMQ until terminated.
	ModeConsume Mode = "consume"
)

// ErrInvalidConfig is returned when parsed configuration has invalid values.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application configuration.
type Config struct {
	Mode        Mode   `env:"MODE" envDefault:"once"`
	Site        string `env:"SITE" envDefault:"nuevavida"`
	ListingURL  string `env:"LISTING_URL"`
	DedupPolicy string `env:"DEDUP_POLICY" envDefault:"skip"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseURL string `env:"DATABASE_URL,notEmpty"`

	HTTP     HTTP
	RabbitMQ RabbitMQ
}

// HTTP holds page fetching configuration.
type HTTP struct {
	Timeout          time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	MaxAttempts      int           `env:"HTTP_MAX_ATTEMPTS" envDefault:"3"`
	RetryWait        time.Duration `env:"HTTP_RETRY_WAIT" envDefault:"2s"`
	RetryMaxWait     time.Duration `env:"HTTP_RETRY_MAX_WAIT" envDefault:"10s"`
	PolitenessDelay  time.Duration `env:"HTTP_POLITENESS_DELAY" envDefault:"2s"`
	UserAgent        string        `env:"HTTP_USER_AGENT"`
	AcceptLanguage   string        `env:"HTTP_ACCEPT_LANGUAGE"`
	CloudflareBypass bool          `env:"HTTP_CLOUDFLARE_BYPASS" envDefault:"false"`
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL        string `env:"RABBITMQ_URL"`
	Exchange   string `env:"RABBITMQ_EXCHANGE" envDefault:"shelter-scraper-ex"`
	Queue      string `env:"RABBITMQ_QUEUE" envDefault:"shelter-scraper.commands"`
	RoutingKey string `env:"RABBITMQ_ROUTING_KEY" envDefault:"shelter-scraper.run"`
}

// Parse parses configuration from environment variables and validates it.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("can't parse env variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks values which env tags can't.
func (c Config) Validate() error {
	var errs []error

	switch c.Mode {
	case ModeOnce:
		if c.Site == "" {
			errs = append(errs, errors.New("SITE is required in once mode"))
		}
	case ModeConsume:
		if c.RabbitMQ.URL == "" {
			errs = append(errs, errors.New("RABBITMQ_URL is required in consume mode"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown MODE %q", c.Mode))
	}

	if _, err := c.Policy(); err != nil {
		errs = append(errs, err)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid LOG_LEVEL: %w", err))
	}

	if c.HTTP.MaxAttempts < 1 {
		errs = append(errs, errors.New("HTTP_MAX_ATTEMPTS must be at least 1"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// Policy returns configured dedup policy.
func (c Config) Policy() (models.DedupPolicy, error) {
	return models.ParseDedupPolicy(c.DedupPolicy)
}

// Level returns configured log level.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// Fetcher returns fetcher configuration.
func (c Config) Fetcher() fetcher.Config {
	cfg := fetcher.DefaultConfig()

	userAgent := c.HTTP.UserAgent
	if userAgent == "" {
		userAgent = fetcher.DefaultUserAgent
	}
	acceptLanguage := c.HTTP.AcceptLanguage
	if acceptLanguage == "" {
		acceptLanguage = fetcher.DefaultAcceptLanguage
	}

	cfg.Headers = fetcher.DefaultHeaders(userAgent, acceptLanguage)
	cfg.MaxAttempts = c.HTTP.MaxAttempts
	cfg.RetryWait = c.HTTP.RetryWait
	cfg.RetryMaxWait = c.HTTP.RetryMaxWait
	cfg.PolitenessDelay = c.HTTP.PolitenessDelay

	return cfg
}
