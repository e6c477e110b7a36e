// Package config provides configuration management for the dimension service.
// Configuration is loaded from environment variables and an optional
// config.yaml file, following the 12-Factor App methodology.
//
// 12-Factor App Compliance:
//   - III. Config: Store config in the environment
//   - Every key can be overridden with a DIM_ prefixed variable
//   - No config files checked into version control
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "DIM"

// Config holds all application configuration.
type Config struct {
	// App contains application-level configuration
	App AppConfig `mapstructure:"app"`

	// Server contains HTTP server configuration
	Server ServerConfig `mapstructure:"server"`

	// Log contains logger configuration
	Log LogConfig `mapstructure:"log"`

	// RateLimit contains per-client rate limiting configuration
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// Metrics contains Prometheus exposition configuration
	Metrics MetricsConfig `mapstructure:"metrics"`

	// Catalog declares the dimension spaces available at startup
	Catalog CatalogConfig `mapstructure:"catalog"`
}

// AppConfig contains application-level configuration.
type AppConfig struct {
	// Name of the application
	Name string `mapstructure:"name"`

	// Environment the application is running in (e.g., development, staging, production)
	Environment string `mapstructure:"environment"`

	// Version of the application
	Version string `mapstructure:"version"`

	// Debug mode flag
	Debug bool `mapstructure:"debug"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	// Host is the server bind address
	Host string `mapstructure:"host"`

	// Port is the server port
	Port int `mapstructure:"port"`

	// ReadTimeout is the maximum duration for reading the entire request, including the body
	ReadTimeout time.Duration `mapstructure:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the response
	WriteTimeout time.Duration `mapstructure:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`

	// RequestTimeout bounds the handling of a single request
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	// ShutdownTimeout is the maximum duration for graceful server shutdown
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// MaxRequestSize is the maximum allowed request body size
	MaxRequestSize int64 `mapstructure:"max_request_size"`

	// CORSAllowedOrigins is a list of allowed origins for CORS
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Address returns the host:port the server listens on.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig contains logger configuration.
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `mapstructure:"level"`

	// Format is the output format (json, console)
	Format string `mapstructure:"format"`
}

// RateLimitConfig contains per-client token bucket settings.
type RateLimitConfig struct {
	// Enabled toggles the rate limiter middleware
	Enabled bool `mapstructure:"enabled"`

	// RequestsPerSecond is the refill rate of each client bucket
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`

	// Burst is the bucket size
	Burst int `mapstructure:"burst"`
}

// MetricsConfig contains Prometheus exposition settings.
type MetricsConfig struct {
	// Enabled mounts the metrics endpoint
	Enabled bool `mapstructure:"enabled"`

	// Path of the metrics endpoint
	Path string `mapstructure:"path"`

	// Namespace prefixes every metric name
	Namespace string `mapstructure:"namespace"`
}

// CatalogConfig declares the dimension spaces registered at startup.
type CatalogConfig struct {
	// LoadSI registers the seven dimensional SI space and its named units
	LoadSI bool `mapstructure:"load_si"`

	// Spaces are additional user-defined dimension spaces
	Spaces []SpaceConfig `mapstructure:"spaces"`
}

// SpaceConfig declares one dimension space.
type SpaceConfig struct {
	Name       string   `mapstructure:"name"`
	Dimensions []string `mapstructure:"dimensions"`
}

// Load loads the configuration from environment variables and config files.
// It follows this precedence (highest to lowest):
//  1. Environment variables
//  2. Config file (if provided)
//  3. Default values
//
// Parameters:
//   - paths: extra directories searched for config.yaml before the defaults
//
// Returns:
//   - *Config: The loaded configuration
//   - error: Any error encountered during loading
func Load(paths ...string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("/etc/dimension-go")

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is OK, we'll use env vars and defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindEnvVars(v); err != nil {
		return nil, fmt.Errorf("failed to bind env vars: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values viper cannot type-check.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate limit requires positive requests_per_second and burst")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics path %q must start with /", c.Metrics.Path)
	}
	for i, s := range c.Catalog.Spaces {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("catalog space %d has no name", i)
		}
	}
	return nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "dimension-go")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.debug", false)

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.request_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)
	v.SetDefault("server.max_request_size", 1<<20)             // 1MB
	v.SetDefault("server.cors_allowed_origins", []string{"*"}) // Allow all origins by default

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Rate limit defaults
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_second", 10)
	v.SetDefault("rate_limit.burst", 20)

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("metrics.namespace", "dimension")

	// Catalog defaults
	v.SetDefault("catalog.load_si", true)
	v.SetDefault("catalog.spaces", []map[string]any{})
}

// bindEnvVars binds environment variables that do not follow the prefix scheme.
func bindEnvVars(v *viper.Viper) error {
	if err := v.BindEnv("app.environment", EnvPrefix+"_APP_ENVIRONMENT", EnvPrefix+"_ENVIRONMENT"); err != nil {
		return err
	}
	return v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT") // Common convention
}

// MustLoad loads the configuration and panics on error.
// Use this in application entry points where configuration is required.
//
// Returns:
//   - *Config: The loaded configuration
func MustLoad(paths ...string) *Config {
	cfg, err := Load(paths...)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}
