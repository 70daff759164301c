package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/routinely-backend/internal/data/db"
	"github.com/yungbote/routinely-backend/internal/pkg/dbctx"
	"github.com/yungbote/routinely-backend/internal/platform/logger"
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logg, err := logger.New("test")
	if err != nil {
		tb.Fatalf("failed to init logger: %v", err)
	}
	return logg
}

// DB returns a private, fully migrated in-memory SQLite database that is
// closed when the test ends.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()
	svc, err := db.Open(db.Config{Driver: db.DriverSQLite, SQLitePath: ":memory:", Silent: true}, logger.Nop())
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}
	tb.Cleanup(func() { _ = svc.Close() })
	if err := db.AutoMigrateAll(svc.DB()); err != nil {
		tb.Fatalf("failed to migrate test db: %v", err)
	}
	return svc.DB()
}

// Tx begins a transaction on gdb that is rolled back when the test ends.
// With SQLite's single connection, every query in the test must go through it.
func Tx(tb testing.TB, gdb *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := gdb.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}

// Ctx binds tx to a background context for repository calls.
func Ctx(tx *gorm.DB) dbctx.Context {
	return dbctx.Context{Ctx: context.Background(), Tx: tx}
}

// Env is a migrated database plus a quiet logger, for service-level tests
// that manage their own transactions.
type Env struct {
	DB  *gorm.DB
	Log *logger.Logger
}

func NewEnv(tb testing.TB) *Env {
	tb.Helper()
	return &Env{DB: DB(tb), Log: Logger(tb)}
}
