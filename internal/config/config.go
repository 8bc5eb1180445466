// Package config holds the explicit configuration for an escala run.
//
// Defaults live in one place (the envDefault tags mirror the Default*
// constants) and every value can be overridden from the environment.
// Command-line flags override the loaded values.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env"
)

const (
	DefaultBaseURL  = "https://momemtum-back-sigma.vercel.app/api"
	DefaultLimit    = 50
	DefaultCount    = 2
	DefaultTimeout  = 30 * time.Second
	DefaultTimezone = ""
	DefaultLogLevel = "warn"
)

// Config is the configuration shared by the fetcher, the selection and the CLI
type Config struct {
	// BaseURL is the API root; the schedules path is appended to it
	BaseURL string `env:"ESCALA_BASE_URL" envDefault:"https://momemtum-back-sigma.vercel.app/api"`
	// Limit is the page size requested from the API
	Limit int `env:"ESCALA_LIMIT" envDefault:"50"`
	// Count is how many upcoming events to show
	Count int `env:"ESCALA_COUNT" envDefault:"2"`
	// Timeout bounds the HTTP request; zero disables it
	Timeout time.Duration `env:"ESCALA_TIMEOUT" envDefault:"30s"`
	// Timezone is the IANA zone event dates are displayed in; empty keeps the
	// offset each start_datetime was written with
	Timezone string `env:"ESCALA_TIMEZONE"`
	LogLevel string `env:"ESCALA_LOG_LEVEL" envDefault:"warn"`
	// SNSTopicARN is where --notify publishes the listing
	SNSTopicARN string `env:"ESCALA_SNS_TOPIC_ARN"`
}

// Default returns the built-in configuration without reading the environment.
func Default() Config {
	return Config{
		BaseURL:  DefaultBaseURL,
		Limit:    DefaultLimit,
		Count:    DefaultCount,
		Timeout:  DefaultTimeout,
		Timezone: DefaultTimezone,
		LogLevel: DefaultLogLevel,
	}
}

// Load builds a Config from the defaults and ESCALA_* environment variables.
func Load() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the values can drive a request
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base URL %q: scheme must be http or https", c.BaseURL)
	}
	if c.Limit < 1 {
		return fmt.Errorf("invalid limit %d: must be at least 1", c.Limit)
	}
	if c.Count < 1 {
		return fmt.Errorf("invalid count %d: must be at least 1", c.Count)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("invalid timeout %s: must not be negative", c.Timeout)
	}
	return nil
}

// Location resolves Timezone. It returns nil when no display zone is set.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return nil, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
