package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultSessionSecret = "your-session-secret-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	APIBasePath string `mapstructure:"API_BASE_PATH"`

	// Database configuration
	DatabaseURL          string        `mapstructure:"DATABASE_URL"`
	DatabaseHost         string        `mapstructure:"DB_HOST"`
	DatabasePort         string        `mapstructure:"DB_PORT"`
	DatabaseUser         string        `mapstructure:"DB_USER"`
	DatabasePassword     string        `mapstructure:"DB_PASSWORD"`
	DatabaseName         string        `mapstructure:"DB_NAME"`
	DatabaseSSLMode      string        `mapstructure:"DB_SSL_MODE"`
	DatabaseMaxOpenConns int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DatabaseQueryTimeout time.Duration `mapstructure:"DB_QUERY_TIMEOUT"`

	// Session configuration
	SessionSecret        string        `mapstructure:"SESSION_SECRET"`
	SessionCookieName    string        `mapstructure:"SESSION_COOKIE_NAME"`
	SessionTTL           time.Duration `mapstructure:"SESSION_TTL"`
	SessionSweepInterval time.Duration `mapstructure:"SESSION_SWEEP_INTERVAL"`
	SessionSecureCookie  bool          `mapstructure:"SESSION_SECURE_COOKIE"`
	AuthConfigFile       string        `mapstructure:"AUTH_CONFIG_FILE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "3003")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("API_BASE_PATH", "/rules/api")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "afl_predictions")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DB_QUERY_TIMEOUT", 5*time.Second)

	// Session defaults
	viper.SetDefault("SESSION_SECRET", defaultSessionSecret)
	viper.SetDefault("SESSION_COOKIE_NAME", "afl_session")
	viper.SetDefault("SESSION_TTL", 30*24*time.Hour)
	viper.SetDefault("SESSION_SWEEP_INTERVAL", 10*time.Minute)
	viper.SetDefault("SESSION_SECURE_COOKIE", false)
	viper.SetDefault("AUTH_CONFIG_FILE", "")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"})
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
	if config.Environment == "production" {
		if config.SessionSecret == defaultSessionSecret {
			return fmt.Errorf("SESSION_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
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
