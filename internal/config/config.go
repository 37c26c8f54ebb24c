// SPDX-License-Identifier: MIT

// Package config loads the highdim service configuration: built-in
// defaults, optionally overlaid by a YAML file, then by environment
// variables. Command-line flags are applied last by the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/tomtranjr/msds601-highdim-group9/design"
)

// Environment variables read by ApplyEnv.
const (
	EnvHTTPPort  = "HTTP_PORT"
	EnvRedisAddr = "HIGHDIM_REDIS_ADDR"
	EnvLogLevel  = "HIGHDIM_LOG_LEVEL"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// ErrInvalid is returned by Validate for any bad value.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full service configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Session   SessionConfig   `yaml:"session"`
	Redis     RedisConfig     `yaml:"redis"`
	Breaker   BreakerConfig   `yaml:"breaker"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	Seed      SeedConfig      `yaml:"seed"`
}

type ServerConfig struct {
	Host                string `yaml:"host"`
	Port                int    `yaml:"port"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
	IdleTimeoutSeconds  int    `yaml:"idle_timeout_seconds"`
	RequestTimeoutMs    int    `yaml:"request_timeout_ms"`
}

type SessionConfig struct {
	Store      string `yaml:"store"` // memory | redis
	TTLSeconds int    `yaml:"ttl_seconds"`
	CookieName string `yaml:"cookie_name"`
}

type RedisConfig struct {
	Addr      string `yaml:"addr"`
	DB        int    `yaml:"db"`
	Password  string `yaml:"password"`
	KeyPrefix string `yaml:"key_prefix"`
}

type BreakerConfig struct {
	ConsecutiveFailures uint32 `yaml:"consecutive_failures"`
	OpenSeconds         int    `yaml:"open_seconds"`
	IntervalSeconds     int    `yaml:"interval_seconds"`
	HalfOpenRequests    uint32 `yaml:"half_open_requests"`
}

type RateLimitConfig struct {
	EventsPerSecond float64 `yaml:"events_per_second"` // 0 disables
	Burst           int     `yaml:"burst"`
	IdleSeconds     int     `yaml:"idle_seconds"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // auto | console | json
}

type SeedConfig struct {
	Base   int64  `yaml:"base"`
	Stream uint64 `yaml:"stream"` // non-zero: decorrelate this instance's regenerate stream
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:                "127.0.0.1",
			Port:                8080,
			ReadTimeoutSeconds:  10,
			WriteTimeoutSeconds: 10,
			IdleTimeoutSeconds:  60,
			RequestTimeoutMs:    5000,
		},
		Session: SessionConfig{
			Store:      StoreMemory,
			TTLSeconds: 24 * 3600,
			CookieName: "highdim_session",
		},
		Redis: RedisConfig{
			Addr:      "127.0.0.1:6379",
			KeyPrefix: "highdim:session:",
		},
		Breaker: BreakerConfig{
			ConsecutiveFailures: 5,
			OpenSeconds:         10,
			IntervalSeconds:     60,
			HalfOpenRequests:    1,
		},
		RateLimit: RateLimitConfig{
			EventsPerSecond: 20,
			Burst:           40,
			IdleSeconds:     600,
		},
		Log:  LogConfig{Level: "info", Format: "auto"},
		Seed: SeedConfig{Base: design.DefaultSourceSeed},
	}
}

// Load returns Default overlaid with the YAML file at path (if path is not
// empty) and then with the environment. The result is validated.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err = yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := c.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// ApplyEnv overlays environment variables read through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvHTTPPort); ok && v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvHTTPPort, v, ErrInvalid)
		}
		c.Server.Port = p
	}
	if v, ok := lookup(EnvRedisAddr); ok && v != "" {
		c.Redis.Addr = v
		c.Session.Store = StoreRedis
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}

	return nil
}

// Validate rejects out-of-range or unknown values.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d", c.Server.Port))
	}
	if c.Server.RequestTimeoutMs <= 0 {
		errs = append(errs, fmt.Errorf("server.request_timeout_ms %d", c.Server.RequestTimeoutMs))
	}
	switch c.Session.Store {
	case StoreMemory:
	case StoreRedis:
		if c.Redis.Addr == "" {
			errs = append(errs, errors.New("redis.addr is empty"))
		}
	default:
		errs = append(errs, fmt.Errorf("session.store %q", c.Session.Store))
	}
	if c.Session.CookieName == "" {
		errs = append(errs, errors.New("session.cookie_name is empty"))
	}
	if c.RateLimit.EventsPerSecond < 0 || c.RateLimit.Burst < 0 {
		errs = append(errs, errors.New("rate_limit values must not be negative"))
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "auto", "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q", c.Log.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}

	return nil
}

// Addr returns host:port.
func (s ServerConfig) Addr() string { return fmt.Sprintf("%s:%d", s.Host, s.Port) }

// RequestTimeout returns the per-request handler deadline.
func (s ServerConfig) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutMs) * time.Millisecond
}

// TTL returns the session lifetime.
func (s SessionConfig) TTL() time.Duration { return time.Duration(s.TTLSeconds) * time.Second }

// SourceSeed returns the base seed of the regenerate stream, mixed with
// Stream when one is set.
func (s SeedConfig) SourceSeed() int64 {
	if s.Stream == 0 {
		return s.Base
	}

	return design.DeriveSeed(s.Base, s.Stream)
}
