package auth

import (
	"fmt"
	"time"

	"afl-predictions-backend/internal/config"
	apperrors "afl-predictions-backend/internal/errors"

	"github.com/spf13/viper"
)

// AuthConfig holds the session cookie configuration
type AuthConfig struct {
	SessionSecret string        `mapstructure:"SESSION_SECRET" yaml:"session_secret"`
	CookieName    string        `mapstructure:"SESSION_COOKIE_NAME" yaml:"cookie_name"`
	SessionTTL    time.Duration `mapstructure:"SESSION_TTL" yaml:"session_ttl"`
	SecureCookie  bool          `mapstructure:"SESSION_SECURE_COOKIE" yaml:"secure_cookie"`
	SweepInterval time.Duration `mapstructure:"SESSION_SWEEP_INTERVAL" yaml:"sweep_interval"`
}

// LoadAuthConfig loads and validates the session configuration from an optional
// auth.yaml (or configPath) with environment overrides
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setAuthDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var cfg AuthConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return &cfg, nil
}

// NewAuthConfigFromConfig derives the session configuration from the application config
func NewAuthConfigFromConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		SessionSecret: cfg.SessionSecret,
		CookieName:    cfg.SessionCookieName,
		SessionTTL:    cfg.SessionTTL,
		SecureCookie:  cfg.SessionSecureCookie,
		SweepInterval: cfg.SessionSweepInterval,
	}
}

// ValidateConfig validates the session configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.SessionSecret == "" {
		return apperrors.ErrSessionSecretMissing
	}
	if c.CookieName == "" {
		return apperrors.ErrCookieNameMissing
	}
	if c.SessionTTL <= 0 {
		return apperrors.ErrInvalidSessionTTL
	}
	return nil
}

// setAuthDefaults sets default values for auth configuration.
// There is no default secret: it must come from auth.yaml or SESSION_SECRET.
func setAuthDefaults(v *viper.Viper) {
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_COOKIE_NAME", "afl_session")
	v.SetDefault("SESSION_TTL", 30*24*time.Hour)
	v.SetDefault("SESSION_SECURE_COOKIE", false)
	v.SetDefault("SESSION_SWEEP_INTERVAL", 10*time.Minute)
}
