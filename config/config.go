package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key (STUDIO_API_BASE, ...)
const EnvPrefix = "STUDIO"

// Config holds the runtime configuration shared by the studio commands
type Config struct {
	// Backend the client talks to
	APIBase string        `mapstructure:"api-base"`
	Timeout time.Duration `mapstructure:"timeout"`

	// Logging
	LogLevel string `mapstructure:"log-level"`
	LogFile  string `mapstructure:"log-file"`
	Env      string `mapstructure:"env"`

	// Dev backend
	Port          string `mapstructure:"port"`
	StorageRoot   string `mapstructure:"storage-root"`
	DefaultPrompt string `mapstructure:"default-prompt"`

	// Optional S3 mirror for dev backend assets
	S3Bucket       string `mapstructure:"s3-bucket"`
	S3Region       string `mapstructure:"s3-region"`
	S3Profile      string `mapstructure:"s3-profile"`
	S3Prefix       string `mapstructure:"s3-prefix"`
	S3Endpoint     string `mapstructure:"s3-endpoint"`
	S3UsePathStyle bool   `mapstructure:"s3-use-path-style"`
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("api-base", DefaultAPIBase)
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("log-level", "info")
	v.SetDefault("log-file", "studio.log")
	v.SetDefault("env", "production")
	v.SetDefault("port", DefaultPort)
	v.SetDefault("storage-root", DefaultStorageRoot)
	v.SetDefault("default-prompt", DefaultPrompt)
	v.SetDefault("s3-bucket", "")
	v.SetDefault("s3-region", "")
	v.SetDefault("s3-profile", "")
	v.SetDefault("s3-prefix", "")
	v.SetDefault("s3-endpoint", "")
	v.SetDefault("s3-use-path-style", false)
}

// Load reads configuration from defaults, environment and an optional config file
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	// Environment variables (STUDIO_API_BASE, STUDIO_LOG_LEVEL, ...)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// Config file (optional)
	v.SetConfigName("studio")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.studio")
	_ = v.ReadInConfig()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.APIBase = strings.TrimRight(strings.TrimSpace(cfg.APIBase), "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks configuration for errors
func (c *Config) Validate() error {
	if c.APIBase == "" {
		return fmt.Errorf("api-base cannot be empty")
	}
	u, err := url.Parse(c.APIBase)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api-base must be an absolute URL, got %q", c.APIBase)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}
	if c.StorageRoot == "" {
		return fmt.Errorf("storage-root cannot be empty")
	}
	return nil
}

// IsDevelopment reports whether human-readable console logging is wanted
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}
