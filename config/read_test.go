package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfig_Defaults(t *testing.T) {
	cfg, err := ReadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, LedgerMemory, cfg.Ledger.Backend)
	assert.Equal(t, 10, cfg.Server.BodyLimitMB)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.Server.CORS.AllowOrigins)
	assert.True(t, cfg.Server.CORS.AllowCredentials)
	assert.False(t, cfg.IsProduction())
}

func TestReadConfig_PortFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want int
	}{
		{name: "plain PORT", env: map[string]string{"PORT": "8080"}, want: 8080},
		{name: "prefixed", env: map[string]string{"PORTFOLIO_SERVER_PORT": "9090"}, want: 9090},
		{
			name: "prefixed wins over PORT",
			env:  map[string]string{"PORTFOLIO_SERVER_PORT": "9091", "PORT": "8081"},
			want: 9091,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := ReadConfig(t.TempDir())
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Server.Port)
		})
	}
}

func TestReadConfig_File(t *testing.T) {
	dir := t.TempDir()
	content := `
server:
  port: 7000
  environment: production
ledger:
  backend: redis
redis:
  addr: localhost:6379
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	cfg, err := ReadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, LedgerRedis, cfg.Ledger.Backend)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server: ServerConfig{Port: 5000},
			Ledger: LedgerConfig{Backend: LedgerMemory},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "zero port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "unknown backend", mutate: func(c *Config) { c.Ledger.Backend = "mongo" }, wantErr: true},
		{name: "redis without addr", mutate: func(c *Config) { c.Ledger.Backend = LedgerRedis }, wantErr: true},
		{name: "email without from", mutate: func(c *Config) { c.Email.Enabled = true }, wantErr: true},
		{name: "nats without url", mutate: func(c *Config) { c.Events.Nats.Enabled = true }, wantErr: true},
		{name: "kafka without topic", mutate: func(c *Config) {
			c.Events.Kafka.Enabled = true
			c.Events.Kafka.Brokers = []string{"localhost:9092"}
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
