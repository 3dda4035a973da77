package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "")
	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "", cfg.Redis.URL)
	assert.Equal(t, "ledger", cfg.AMQP.Exchange)
	assert.Equal(t, 24*time.Hour, cfg.Notifier.DedupeTTL)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", DriverSQLite)
	t.Setenv("DATABASE_URL", "ledger.db")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("NOTIFIER_POLL_INTERVAL", "30s")
	t.Setenv("NOTIFIER_ENABLED", "false")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := Load()

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "ledger.db", cfg.Database.URL)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Notifier.PollInterval)
	assert.False(t, cfg.Notifier.Enabled)
	assert.Equal(t, 0, cfg.Redis.DB, "unparsable values fall back to the default")
}
