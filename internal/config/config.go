// Package config loads billsplit settings from defaults, an optional config
// file, BILLSPLIT_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/pkg/logging"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "BILLSPLIT"

// Keys shared by viper, flags and config files.
const (
	KeyConfigFile      = "config"
	KeyAddr            = "addr"
	KeyLogLevel        = "log_level"
	KeyJWTSecret       = "jwt_secret"
	KeyTokenTTL        = "token_ttl"
	KeyRedistribution  = "redistribution"
	KeyShutdownTimeout = "shutdown_timeout"
	KeyLocale          = "locale"
	KeyCurrencySymbol  = "currency_symbol"
)

// Config holds all runtime settings.
type Config struct {
	Addr            string        `mapstructure:"addr" validate:"required"`
	LogLevel        string        `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	JWTSecret       string        `mapstructure:"jwt_secret" validate:"required,min=16"`
	TokenTTL        time.Duration `mapstructure:"token_ttl" validate:"gt=0"`
	Redistribution  string        `mapstructure:"redistribution" validate:"oneof=remainder original-total original"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	Locale          string        `mapstructure:"locale" validate:"required,bcp47_language_tag"`
	CurrencySymbol  string        `mapstructure:"currency_symbol"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAddr, ":8080")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyJWTSecret, "")
	v.SetDefault(KeyTokenTTL, 24*time.Hour)
	v.SetDefault(KeyRedistribution, "remainder")
	v.SetDefault(KeyShutdownTimeout, 10*time.Second)
	v.SetDefault(KeyLocale, "en")
	v.SetDefault(KeyCurrencySymbol, "$")
}

// Load reads the configuration from v. A nil v uses a fresh viper instance.
// When no JWT secret is configured a random one is generated, so tokens do
// not survive a restart (neither do sessions).
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv(KeyLogLevel, EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind log level env: %w", err)
	}

	if file := v.GetString(KeyConfigFile); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if cfg.JWTSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return nil, err
		}
		cfg.JWTSecret = secret
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, len(verrs))
			for i, fe := range verrs {
				fields[i] = fmt.Sprintf("%s (%s)", strings.ToLower(fe.Field()), fe.Tag())
			}
			return fmt.Errorf("invalid config: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Policy returns the configured redistribution policy.
func (c *Config) Policy() calculator.Policy {
	// Validate has already restricted the value to known policies.
	p, _ := calculator.ParsePolicy(c.Redistribution)
	return p
}

// Level returns the configured log level.
func (c *Config) Level() slog.Level {
	return logging.ParseLevel(c.LogLevel)
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate jwt secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
