package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/rd1855/portfolio_backend/pkg/constants"
)

// ReadConfig loads config.yaml from configPath (if present) and layers
// environment overrides on top.
func ReadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(constants.ConfigName)
	v.SetConfigType(constants.ConfigFormat)
	v.AddConfigPath(configPath)

	setDefaults(v)

	// PORTFOLIO_SERVER_PORT overrides server.port, and so on.
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Hosting platforms hand the port over as plain PORT.
	if err := v.BindEnv("server.port", constants.EnvPrefix+"_SERVER_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("bind port env: %w", err)
	}

	// The config file is optional; defaults and env are enough to run.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", constants.DefaultPort)
	v.SetDefault("server.timeout_seconds", 30)
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.body_limit_mb", 10)
	v.SetDefault("server.cors.enabled", true)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})
	v.SetDefault("server.cors.allow_credentials", true)
	v.SetDefault("server.rate_limit.max", 60)
	v.SetDefault("server.rate_limit.expiration_seconds", 60)

	v.SetDefault("ledger.backend", LedgerMemory)
	v.SetDefault("ledger.key_prefix", "portfolio")

	v.SetDefault("email.smtp.port", 587)
	v.SetDefault("email.smtp.timeout_seconds", 30)

	v.SetDefault("events.subject_prefix", "portfolio")
	v.SetDefault("events.kafka.required_acks", "one")

	v.SetDefault("observability.service_name", "portfolio_backend")
	v.SetDefault("observability.service_version", "2.0.0")
	v.SetDefault("observability.metrics.path", "/metrics")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output.stdout", true)
}

func MustReadConfig(path string) *Config {
	config, err := ReadConfig(path)
	if err != nil {
		panic(err)
	}
	return config
}
