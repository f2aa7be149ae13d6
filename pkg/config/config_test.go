package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Variables vacías se tratan como no definidas.
	t.Setenv("DB_DRIVER", "")
	t.Setenv("LEDGER_MAX_RETRIES", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("HTTP_HOST", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 3, cfg.Ledger.MaxRetries)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_SQLite(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", ":memory:")
	t.Setenv("LEDGER_MAX_RETRIES", "5")
	t.Setenv("LEDGER_RETRY_BACKOFF_MS", "50")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, ":memory:", cfg.DB.SQLitePath)
	assert.Equal(t, 5, cfg.Ledger.MaxRetries)
	assert.Equal(t, 50*time.Millisecond, cfg.Ledger.Backoff())
}

func TestLoad_DriverInvalido(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "fieldops", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/fieldops?sslmode=disable", c.DSN())
	assert.Equal(t, c.DSN(), c.ConnectionString())

	c.DatabaseURL = "postgres://u@h/d"
	assert.Equal(t, "postgres://u@h/d", c.ConnectionString())
}
