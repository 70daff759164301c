package app

import (
	"fmt"

	"github.com/yungbote/routinely-backend/internal/clients/redis"
	"github.com/yungbote/routinely-backend/internal/platform/logger"
)

type Clients struct {
	Locker redis.Locker
}

func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	// Redis
	locker, err := redis.NewLocker(log, cfg.RedisAddr)
	if err != nil {
		return Clients{}, fmt.Errorf("init redis locker: %w", err)
	}

	return Clients{Locker: locker}, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.Locker != nil {
		_ = c.Locker.Close()
	}
}
