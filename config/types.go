package config

import (
	"fmt"
	"strings"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Ledger        LedgerConfig        `mapstructure:"ledger"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Content       ContentConfig       `mapstructure:"content"`
	Email         EmailConfig         `mapstructure:"email"`
	Events        EventsConfig        `mapstructure:"events"`
	Observability ObservabilityConfig `mapstructure:"observability"`
	Logging       LoggingConfig       `mapstructure:"logging"`
}

type ServerConfig struct {
	Port           int             `mapstructure:"port"`
	TimeoutSeconds int             `mapstructure:"timeout_seconds"`
	Environment    string          `mapstructure:"environment"`
	BodyLimitMB    int             `mapstructure:"body_limit_mb"`
	CORS           CORSConfig      `mapstructure:"cors"`
	RateLimit      RateLimitConfig `mapstructure:"rate_limit"`
}

type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowOrigins     []string `mapstructure:"allow_origins"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}

type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	Max               int  `mapstructure:"max"`
	ExpirationSeconds int  `mapstructure:"expiration_seconds"`
}

// LedgerConfig selects where contact messages and page-view counters live.
type LedgerConfig struct {
	Backend   string `mapstructure:"backend"` // memory, redis
	KeyPrefix string `mapstructure:"key_prefix"`
}

type RedisConfig struct {
	Addr                string `mapstructure:"addr"`
	DB                  int    `mapstructure:"db"`
	Username            string `mapstructure:"username"`
	Password            string `mapstructure:"password"`
	PoolSize            int    `mapstructure:"pool_size"`
	MinIdleConns        int    `mapstructure:"min_idle_conns"`
	DialTimeoutSeconds  int    `mapstructure:"dial_timeout_seconds"`
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds"`
}

// ContentConfig points at an optional YAML document replacing the built-in portfolio content.
type ContentConfig struct {
	Path string `mapstructure:"path"`
}

type EmailConfig struct {
	Enabled bool       `mapstructure:"enabled"`
	From    string     `mapstructure:"from"`
	Owner   string     `mapstructure:"owner"` // receives contact notifications
	SMTP    SMTPConfig `mapstructure:"smtp"`
}

type SMTPConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Username       string `mapstructure:"username"`
	Password       string `mapstructure:"password"`
	UseTLS         bool   `mapstructure:"use_tls"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type EventsConfig struct {
	SubjectPrefix string      `mapstructure:"subject_prefix"`
	Nats          NatsConfig  `mapstructure:"nats"`
	Kafka         KafkaConfig `mapstructure:"kafka"`
}

type NatsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
}

type KafkaConfig struct {
	Enabled             bool     `mapstructure:"enabled"`
	Brokers             []string `mapstructure:"brokers"`
	Topic               string   `mapstructure:"topic"`
	RequiredAcks        string   `mapstructure:"required_acks"` // none, one, all
	BatchSize           int      `mapstructure:"batch_size"`
	BatchTimeoutMs      int      `mapstructure:"batch_timeout_ms"`
	WriteTimeoutSeconds int      `mapstructure:"write_timeout_seconds"`
}

type ObservabilityConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	ServiceName    string        `mapstructure:"service_name"`
	ServiceVersion string        `mapstructure:"service_version"`
	Tracing        TracingConfig `mapstructure:"tracing"`
	Metrics        MetricsConfig `mapstructure:"metrics"`
}

type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	OTLPInsecure bool    `mapstructure:"otlp_insecure"`
	SamplingRate float64 `mapstructure:"sampling_rate"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string       `mapstructure:"level"`  // debug, info, warn, error
	Format string       `mapstructure:"format"` // text, json
	Output OutputConfig `mapstructure:"output"`
}

type OutputConfig struct {
	Stdout bool          `mapstructure:"stdout"`
	File   FileLogConfig `mapstructure:"file"`
	Loki   LokiConfig    `mapstructure:"loki"`
}

type FileLogConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`        // e.g. "logs/portfolio.log"
	MaxSizeMB  int    `mapstructure:"max_size_mb"` // rotate after N MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type LokiConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"` // e.g. "http://localhost:3100"
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

const (
	LedgerMemory = "memory"
	LedgerRedis  = "redis"
)

// IsProduction reports whether the server runs with production hardening.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}

	switch c.Ledger.Backend {
	case LedgerMemory:
	case LedgerRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("ledger.backend is redis but redis.addr is empty")
		}
	default:
		return fmt.Errorf("unknown ledger.backend %q", c.Ledger.Backend)
	}

	if c.Email.Enabled && c.Email.From == "" {
		return fmt.Errorf("email.from is required when email is enabled")
	}
	if c.Events.Nats.Enabled && c.Events.Nats.URL == "" {
		return fmt.Errorf("events.nats.url is required when nats is enabled")
	}
	if c.Events.Kafka.Enabled && (len(c.Events.Kafka.Brokers) == 0 || c.Events.Kafka.Topic == "") {
		return fmt.Errorf("events.kafka requires brokers and topic")
	}

	return nil
}
