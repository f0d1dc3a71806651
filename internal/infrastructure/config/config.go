package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	usecasecontract "github.com/mikiasgoitom/portfolio/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	Port        string `mapstructure:"port"`
	GinMode     string `mapstructure:"gin_mode"`
	AppBaseURL  string `mapstructure:"app_base_url"`
	CORSOrigins string `mapstructure:"cors_allowed_origins"`

	MongoURI          string `mapstructure:"mongodb_uri"`
	MongoDBName       string `mapstructure:"mongodb_db_name"`
	MongoTransactions bool   `mapstructure:"mongodb_transactions"`

	RedisURL        string `mapstructure:"redis_url"`
	CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds"`

	JWTSecret                string `mapstructure:"jwt_secret"`
	AccessTokenExpiryMinutes int    `mapstructure:"access_token_expiry_minutes"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	RateLimitPerSecond       float64 `mapstructure:"rate_limit_per_second"`
	StrictRateLimitPerMinute float64 `mapstructure:"strict_rate_limit_per_minute"`

	UploadDir       string `mapstructure:"upload_dir"`
	MaxUploadSizeMB int64  `mapstructure:"max_upload_size_mb"`

	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUsername string `mapstructure:"smtp_username"`
	SMTPPassword string `mapstructure:"smtp_password"`
	SMTPFrom     string `mapstructure:"smtp_from"`
	NotifyEmail  string `mapstructure:"notify_email"`
}

var defaults = map[string]interface{}{
	"port":                         "8080",
	"gin_mode":                     "debug",
	"app_base_url":                 "http://localhost:8080",
	"cors_allowed_origins":         "http://localhost:3000",
	"mongodb_uri":                  "mongodb://localhost:27017",
	"mongodb_db_name":              "portfolio",
	"mongodb_transactions":         false,
	"redis_url":                    "",
	"cache_ttl_seconds":            300,
	"jwt_secret":                   "",
	"access_token_expiry_minutes":  60 * 24,
	"log_level":                    "info",
	"log_format":                   "console",
	"rate_limit_per_second":        10.0,
	"strict_rate_limit_per_minute": 5.0,
	"upload_dir":                   "./uploads",
	"max_upload_size_mb":           5,
	"smtp_host":                    "",
	"smtp_port":                    587,
	"smtp_username":                "",
	"smtp_password":                "",
	"smtp_from":                    "",
	"notify_email":                 "",
}

// Load reads configuration from the environment, falling back to defaults.
// Every key maps to the upper-cased environment variable of the same name.
func Load() (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.MaxUploadSizeMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE_MB must be positive")
	}
	return nil
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return strings.TrimRight(c.AppBaseURL, "/")
}

// GetAccessTokenExpiry returns the lifetime of access tokens.
func (c *Config) GetAccessTokenExpiry() time.Duration {
	return time.Duration(c.AccessTokenExpiryMinutes) * time.Minute
}

// GetMaxUploadSize returns the upload limit in bytes.
func (c *Config) GetMaxUploadSize() int64 {
	return c.MaxUploadSizeMB << 20
}

func (c *Config) GetNotifyEmail() string {
	return c.NotifyEmail
}

func (c *Config) GetCacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// GetAllowedOrigins splits the comma separated CORS origin list.
func (c *Config) GetAllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// GetAddress returns the listen address for the HTTP server.
func (c *Config) GetAddress() string {
	return ":" + c.Port
}
