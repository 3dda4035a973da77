package dependency

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/integration/messaging"
)

// Connect opens the optional Redis and AMQP connections named by cfg.
// The returned close function releases whatever was opened. An unreachable
// broker is not fatal: the injector falls back to logging messages.
func Connect(cfg *config.Config) (Externals, func(), error) {
	var ext Externals
	var closers []func() error

	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				slog.Warn("Failed to close connection", "error", err)
			}
		}
	}

	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return Externals{}, closeAll, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		if cfg.Redis.Password != "" {
			opts.Password = cfg.Redis.Password
		}
		opts.DB = cfg.Redis.DB
		ext.Redis = redis.NewClient(opts)
		closers = append(closers, ext.Redis.Close)
	}

	if cfg.AMQP.URL != "" {
		client, err := messaging.NewClient(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue)
		if err != nil {
			slog.Warn("AMQP connection failed, notifications will be logged only", "error", err)
		} else {
			ext.Publisher = client
			closers = append(closers, client.Close)
		}
	}

	return ext, closeAll, nil
}
