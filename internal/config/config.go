package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the API server and the notifier
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`
	DBMaxOpenConns   int    `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns   int    `mapstructure:"DB_MAX_IDLE_CONNS"`

	// JWT and cookie configuration
	JWTSecret     string        `mapstructure:"JWT_SECRET"`
	JWTAccessTTL  time.Duration `mapstructure:"JWT_ACCESS_TTL"`
	JWTRefreshTTL time.Duration `mapstructure:"JWT_REFRESH_TTL"`
	CookieSecure  bool          `mapstructure:"COOKIE_SECURE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Telegram gateway
	TelegramBotToken    string        `mapstructure:"TELEGRAM_BOT_TOKEN"`
	TelegramAPIURL      string        `mapstructure:"TELEGRAM_API_URL"`
	TelegramSendTimeout time.Duration `mapstructure:"TELEGRAM_SEND_TIMEOUT"`
	TelegramRatePerSec  float64       `mapstructure:"TELEGRAM_RATE_PER_SEC"`

	// Notification worker
	NotifierDailyAt    string `mapstructure:"NOTIFIER_DAILY_AT"`
	NotifierTimezone   string `mapstructure:"NOTIFIER_TIMEZONE"`
	NotifierWindowDays int    `mapstructure:"NOTIFIER_WINDOW_DAYS"`
	NotifierDedupKey   string `mapstructure:"NOTIFIER_DEDUP_KEY"`
	NotifierRunOnStart bool   `mapstructure:"NOTIFIER_RUN_ON_START"`
	NotifierBotEnabled bool   `mapstructure:"NOTIFIER_BOT_ENABLED"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "5252")
	v.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "maritime_db")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 20)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)

	// JWT defaults
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ACCESS_TTL", 15*time.Minute)
	v.SetDefault("JWT_REFRESH_TTL", 30*24*time.Hour)
	v.SetDefault("COOKIE_SECURE", true)

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	// Telegram defaults
	v.SetDefault("TELEGRAM_BOT_TOKEN", "")
	v.SetDefault("TELEGRAM_API_URL", "https://api.telegram.org")
	v.SetDefault("TELEGRAM_SEND_TIMEOUT", 10*time.Second)
	v.SetDefault("TELEGRAM_RATE_PER_SEC", 25.0)

	// Notifier defaults
	v.SetDefault("NOTIFIER_DAILY_AT", "09:00")
	v.SetDefault("NOTIFIER_TIMEZONE", "UTC")
	v.SetDefault("NOTIFIER_WINDOW_DAYS", 90)
	// "id" lists every component; "name_serial" merges rows sharing name and serial
	v.SetDefault("NOTIFIER_DEDUP_KEY", "id")
	v.SetDefault("NOTIFIER_RUN_ON_START", true)
	v.SetDefault("NOTIFIER_BOT_ENABLED", true)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.IsProduction() && config.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}

	if config.DatabaseURL == "" {
		return fmt.Errorf("database URL is required")
	}

	if _, err := time.Parse("15:04", config.NotifierDailyAt); err != nil {
		return fmt.Errorf("NOTIFIER_DAILY_AT must be HH:MM: %w", err)
	}

	if _, err := time.LoadLocation(config.NotifierTimezone); err != nil {
		return fmt.Errorf("NOTIFIER_TIMEZONE: %w", err)
	}

	if config.NotifierWindowDays < 0 {
		return fmt.Errorf("NOTIFIER_WINDOW_DAYS must not be negative")
	}

	switch config.NotifierDedupKey {
	case "id", "name_serial":
	default:
		return fmt.Errorf("NOTIFIER_DEDUP_KEY must be 'id' or 'name_serial', got %q", config.NotifierDedupKey)
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// NotifierLocation returns the time zone the daily trigger is evaluated in
func (c *Config) NotifierLocation() *time.Location {
	loc, err := time.LoadLocation(c.NotifierTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
