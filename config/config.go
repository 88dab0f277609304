// Package config loads process settings from flags and the environment.
// Flags win over environment variables, which win over defaults.
package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultPort               = "50210"
	DefaultHTTPAddr           = ":8080"
	DefaultLogLevel           = "info"
	DefaultCheckoutDelay      = 2 * time.Second
	DefaultSessionIdleTimeout = 30 * time.Minute
	DefaultCheckoutRateRPS    = 5.0
	DefaultCheckoutRateBurst  = 10
)

// Config holds the storefront process settings.
type Config struct {
	Port               string
	HTTPAddr           string
	LogLevel           zapcore.Level
	Dev                bool
	PrettyEvents       bool
	CheckoutDelay      time.Duration
	SessionIdleTimeout time.Duration
	CheckoutRateRPS    float64
	CheckoutRateBurst  int
}

// Load parses args (without the program name) on top of the environment
// read through getenv.
func Load(args []string, getenv func(string) string) (Config, error) {
	env := envReader{getenv: getenv}
	defaults := Config{
		Port:               env.str("PORT", DefaultPort),
		HTTPAddr:           env.str("HTTP_ADDR", DefaultHTTPAddr),
		Dev:                env.boolean("DEV", false),
		PrettyEvents:       env.boolean("PRETTY_EVENTS", false),
		CheckoutDelay:      env.duration("CHECKOUT_DELAY", DefaultCheckoutDelay),
		SessionIdleTimeout: env.duration("SESSION_IDLE_TIMEOUT", DefaultSessionIdleTimeout),
		CheckoutRateRPS:    env.float("CHECKOUT_RATE_RPS", DefaultCheckoutRateRPS),
		CheckoutRateBurst:  env.integer("CHECKOUT_RATE_BURST", DefaultCheckoutRateBurst),
	}
	logLevel := env.str("LOG_LEVEL", DefaultLogLevel)
	if env.err != nil {
		return Config{}, env.err
	}

	cfg := defaults
	fs := pflag.NewFlagSet("storefront", pflag.ContinueOnError)
	fs.StringVar(&cfg.Port, "port", defaults.Port, "gRPC listen port (env PORT)")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", defaults.HTTPAddr, "HTTP listen address, empty to disable (env HTTP_ADDR)")
	fs.StringVar(&logLevel, "log-level", logLevel, "log level: debug, info, warn, error (env LOG_LEVEL)")
	fs.BoolVar(&cfg.Dev, "dev", defaults.Dev, "development logging (env DEV)")
	fs.BoolVar(&cfg.PrettyEvents, "pretty-events", defaults.PrettyEvents, "print cart events to stdout (env PRETTY_EVENTS)")
	fs.DurationVar(&cfg.CheckoutDelay, "checkout-delay", defaults.CheckoutDelay, "simulated payment delay (env CHECKOUT_DELAY)")
	fs.DurationVar(&cfg.SessionIdleTimeout, "session-idle-timeout", defaults.SessionIdleTimeout, "expire sessions idle this long (env SESSION_IDLE_TIMEOUT)")
	fs.Float64Var(&cfg.CheckoutRateRPS, "checkout-rate-rps", defaults.CheckoutRateRPS, "checkout requests per second per IP (env CHECKOUT_RATE_RPS)")
	fs.IntVar(&cfg.CheckoutRateBurst, "checkout-rate-burst", defaults.CheckoutRateBurst, "checkout burst per IP (env CHECKOUT_RATE_BURST)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return Config{}, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	cfg.LogLevel = level
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if c.SessionIdleTimeout <= 0 {
		return fmt.Errorf("session idle timeout must be positive, got %s", c.SessionIdleTimeout)
	}
	if c.CheckoutDelay < 0 {
		return fmt.Errorf("checkout delay cannot be negative, got %s", c.CheckoutDelay)
	}
	if c.CheckoutRateRPS <= 0 || c.CheckoutRateBurst <= 0 {
		return fmt.Errorf("checkout rate limit must be positive")
	}
	return nil
}

// envReader parses environment values and keeps the first error.
type envReader struct {
	getenv func(string) string
	err    error
}

func (e *envReader) str(key, def string) string {
	if v := e.getenv(key); v != "" {
		return v
	}
	return def
}

func (e *envReader) boolean(key string, def bool) bool {
	return parseEnv(e, key, def, strconv.ParseBool)
}

func (e *envReader) integer(key string, def int) int {
	return parseEnv(e, key, def, strconv.Atoi)
}

func (e *envReader) float(key string, def float64) float64 {
	return parseEnv(e, key, def, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

func (e *envReader) duration(key string, def time.Duration) time.Duration {
	return parseEnv(e, key, def, time.ParseDuration)
}

func parseEnv[T any](e *envReader, key string, def T, parse func(string) (T, error)) T {
	v := e.getenv(key)
	if v == "" {
		return def
	}
	out, err := parse(v)
	if err != nil {
		if e.err == nil {
			e.err = fmt.Errorf("invalid %s %q: %w", key, v, err)
		}
		return def
	}
	return out
}
