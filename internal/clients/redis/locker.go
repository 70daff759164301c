package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/routinely-backend/internal/platform/logger"
)

// Locker hands out short-lived, best-effort mutual exclusion keyed by name.
type Locker interface {
	// TryLock returns ok=false without error when another holder owns key.
	// release is non-nil only when ok is true.
	TryLock(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, ok bool, err error)
	Close() error
}

// releaseScript deletes key only while it still holds our token.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type locker struct {
	log *logger.Logger
	rdb *goredis.Client
}

// NewLocker connects to addr. An empty addr yields a locker that always
// succeeds, for single-instance deployments without Redis.
func NewLocker(log *logger.Logger, addr string) (Locker, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		log.Debug("REDIS_ADDR not set; using in-process no-op locker")
		return NopLocker{}, nil
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &locker{
		log: log.With("service", "RedisLocker"),
		rdb: rdb,
	}, nil
}

func (l *locker) TryLock(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, bool, error) {
	if l == nil || l.rdb == nil {
		return nil, false, errors.New("redis locker not initialized")
	}
	token := uuid.NewString()
	ok, err := l.rdb.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("redis setnx %s: %w", key, err)
	}
	if !ok {
		l.log.Debug("lock busy", "key", key)
		return nil, false, nil
	}
	release := func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.rdb, []string{key}, token).Err(); err != nil && !errors.Is(err, goredis.Nil) {
			l.log.Warn("lock release failed", "key", key, "error", err)
			return err
		}
		return nil
	}
	return release, true, nil
}

func (l *locker) Close() error {
	if l == nil || l.rdb == nil {
		return nil
	}
	return l.rdb.Close()
}

// NopLocker always grants the lock.
type NopLocker struct{}

func (NopLocker) TryLock(context.Context, string, time.Duration) (func(context.Context) error, bool, error) {
	return func(context.Context) error { return nil }, true, nil
}

func (NopLocker) Close() error { return nil }
