package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

type Config struct {
	AppPort            int           `mapstructure:"APP_PORT"`
	StoreBackend       string        `mapstructure:"STORE_BACKEND"`
	DatabasePath       string        `mapstructure:"DATABASE_PATH"`
	RedisAddr          string        `mapstructure:"REDIS_ADDR"`
	KeyPrefix          string        `mapstructure:"REDIS_KEY_PREFIX"`
	ChatAPIURL         string        `mapstructure:"CHAT_API_URL"`
	ChatPath           string        `mapstructure:"CHAT_PATH"`
	UploadPath         string        `mapstructure:"UPLOAD_PATH"`
	CompaniesPath      string        `mapstructure:"COMPANIES_PATH"`
	HealthPath         string        `mapstructure:"HEALTH_PATH"`
	ChatTimeout        time.Duration `mapstructure:"CHAT_TIMEOUT"`
	UploadTimeout      time.Duration `mapstructure:"UPLOAD_TIMEOUT"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	LogFormat          string        `mapstructure:"LOG_FORMAT"`
	CORSOrigins        []string      `mapstructure:"CORS_ORIGINS"`
	RateLimitPerMinute int           `mapstructure:"RATE_LIMIT_PER_MINUTE"`
	PlaceholderTitle   string        `mapstructure:"PLACEHOLDER_TITLE"`

	source string
}

// LoadConfig reads defaults, an optional .env file and the environment, in that
// order of precedence (environment wins).
func LoadConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./backend")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg, err := unmarshal(v)
	if err != nil {
		return nil, err
	}
	cfg.source = v.ConfigFileUsed()
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", 8000)
	v.SetDefault("STORE_BACKEND", StoreSQLite)
	v.SetDefault("DATABASE_PATH", "./data/esg-assistant.db")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_KEY_PREFIX", "esg-chatbot")
	v.SetDefault("CHAT_API_URL", "http://127.0.0.1:5000")
	v.SetDefault("CHAT_PATH", "/api/chat")
	v.SetDefault("UPLOAD_PATH", "/api/chat-upload-pdf")
	v.SetDefault("COMPANIES_PATH", "/api/companies")
	v.SetDefault("HEALTH_PATH", "/api/health")
	v.SetDefault("CHAT_TIMEOUT", 60*time.Second)
	v.SetDefault("UPLOAD_TIMEOUT", 300*time.Second)
	v.SetDefault("LOG_LEVEL", "INFO")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 120)
	v.SetDefault("PLACEHOLDER_TITLE", "New conversation")
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	for i, origin := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(origin)
	}
	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(cfg.StoreBackend))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the application cannot start with.
func (c *Config) Validate() error {
	if c.AppPort <= 0 || c.AppPort > 65535 {
		return fmt.Errorf("invalid APP_PORT %d", c.AppPort)
	}
	switch c.StoreBackend {
	case StoreSQLite:
		if c.DatabasePath == "" {
			return fmt.Errorf("DATABASE_PATH is required for the sqlite store")
		}
	case StoreRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis store")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}
	if c.ChatAPIURL == "" {
		return fmt.Errorf("CHAT_API_URL is required")
	}
	if c.ChatTimeout <= 0 || c.UploadTimeout <= 0 {
		return fmt.Errorf("CHAT_TIMEOUT and UPLOAD_TIMEOUT must be positive")
	}
	if strings.TrimSpace(c.PlaceholderTitle) == "" {
		return fmt.Errorf("PLACEHOLDER_TITLE must not be empty")
	}
	return nil
}

// Source returns the config file that was read, or "" when only the environment
// and defaults were used.
func (c *Config) Source() string { return c.source }
