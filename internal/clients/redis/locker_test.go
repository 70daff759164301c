package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/routinely-backend/internal/platform/logger"
)

func TestNewLockerWithoutAddrIsNop(t *testing.T) {
	l, err := NewLocker(logger.Nop(), "  ")
	if err != nil {
		t.Fatalf("NewLocker: %v", err)
	}
	if _, ok := l.(NopLocker); !ok {
		t.Fatalf("expected NopLocker, got %T", l)
	}
	release, ok, err := l.TryLock(context.Background(), "k", time.Second)
	if err != nil || !ok || release == nil {
		t.Fatalf("nop TryLock: ok=%v err=%v", ok, err)
	}
	if err := release(context.Background()); err != nil {
		t.Fatalf("nop release: %v", err)
	}
}

func TestNewLockerRequiresLogger(t *testing.T) {
	if _, err := NewLocker(nil, ""); err == nil {
		t.Fatalf("expected error without logger")
	}
}

func TestRedisLockerExclusive(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("set TEST_REDIS_ADDR to run redis integration tests")
	}
	l, err := NewLocker(logger.Nop(), addr)
	if err != nil {
		t.Fatalf("NewLocker: %v", err)
	}
	t.Cleanup(func() { _ = l.Close() })

	ctx := context.Background()
	key := "routinely:test:" + uuid.NewString()

	release, ok, err := l.TryLock(ctx, key, 5*time.Second)
	if err != nil || !ok {
		t.Fatalf("first TryLock: ok=%v err=%v", ok, err)
	}
	if _, ok, err := l.TryLock(ctx, key, 5*time.Second); err != nil || ok {
		t.Fatalf("second TryLock should be refused: ok=%v err=%v", ok, err)
	}
	if err := release(ctx); err != nil {
		t.Fatalf("release: %v", err)
	}
	release, ok, err = l.TryLock(ctx, key, 5*time.Second)
	if err != nil || !ok {
		t.Fatalf("TryLock after release: ok=%v err=%v", ok, err)
	}
	_ = release(ctx)
}
