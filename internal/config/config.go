// Package config loads and validates runtime configuration via Viper.
// The navigation catalog itself lives in its own file, loaded by
// internal/sources/navfile; this package only knows where that file is.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures every runtime knob, loaded from an optional YAML file with
// COMPASS_* environment overrides.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Account AccountConfig `mapstructure:"account"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	TrustProxy      bool          `mapstructure:"trust_proxy"`
	RateLimitBurst  int           `mapstructure:"rate_limit_burst"`
	RateLimitPerMin int           `mapstructure:"rate_limit_per_min"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// CatalogConfig locates the navigation catalog file.
type CatalogConfig struct {
	File string `mapstructure:"file"`
}

// AuthConfig sets the session boundary behavior. An empty login URL means
// unauthenticated account queries get a 401 instead of a redirect.
type AuthConfig struct {
	LoginURL    string            `mapstructure:"login_url"`
	CookieName  string            `mapstructure:"cookie_name"`
	DevSessions map[string]string `mapstructure:"dev_sessions"`
}

// AccountConfig points at the remote account service.
type AccountConfig struct {
	APIURL  string        `mapstructure:"api_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RedisConfig configures the session store connection. An empty addr selects
// the in-memory store (dev only).
type RedisConfig struct {
	Addr           string        `mapstructure:"addr"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	DB             int           `mapstructure:"db"`
	DialTimeout    time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	PoolSize       int           `mapstructure:"pool_size"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	RetryInterval  time.Duration `mapstructure:"retry_interval"`
	MaxWait        time.Duration `mapstructure:"max_wait"`
	PingTimeout    time.Duration `mapstructure:"ping_timeout"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("COMPASS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.request_timeout", 10*time.Second)
	v.SetDefault("server.trust_proxy", false)
	v.SetDefault("server.rate_limit_burst", 0) // 0 disables rate limiting
	v.SetDefault("server.rate_limit_per_min", 120)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.pretty", false)

	v.SetDefault("catalog.file", "navigation.yaml")

	v.SetDefault("auth.cookie_name", "compass-session")

	v.SetDefault("account.timeout", 5*time.Second)

	v.SetDefault("redis.dial_timeout", 5*time.Second)
	v.SetDefault("redis.read_timeout", 3*time.Second)
	v.SetDefault("redis.write_timeout", 3*time.Second)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.connect_timeout", 30*time.Second)
	v.SetDefault("redis.retry_interval", 2*time.Second)
	v.SetDefault("redis.max_wait", 10*time.Second)
	v.SetDefault("redis.ping_timeout", 5*time.Second)

	v.SetDefault("metrics.enabled", true)
}

// Validate checks the knobs that have no safe fallback.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Catalog.File == "" {
		return fmt.Errorf("catalog.file must not be empty")
	}
	if c.Account.APIURL == "" {
		return fmt.Errorf("account.api_url must not be empty")
	}
	if c.Auth.CookieName == "" {
		return fmt.Errorf("auth.cookie_name must not be empty")
	}
	if c.Redis.Addr == "" && len(c.Auth.DevSessions) == 0 {
		return fmt.Errorf("either redis.addr or auth.dev_sessions must be configured")
	}
	return nil
}
