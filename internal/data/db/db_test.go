package db

import (
	"strings"
	"testing"

	"github.com/yungbote/routinely-backend/internal/platform/logger"
)

func TestSQLiteDSN(t *testing.T) {
	tests := map[string]string{
		"":                     "file::memory:?_foreign_keys=on",
		":memory:":             "file::memory:?_foreign_keys=on",
		"routinely.db":         "file:routinely.db?_foreign_keys=on",
		"data.db?cache=shared": "file:data.db?cache=shared&_foreign_keys=on",
	}
	for in, want := range tests {
		if got := SQLiteDSN(in); got != want {
			t.Fatalf("SQLiteDSN(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPostgresDSN(t *testing.T) {
	dsn, err := postgresDSN(Config{
		PostgresHost:     "db",
		PostgresPort:     "5432",
		PostgresUser:     "app",
		PostgresPassword: "p@ss",
		PostgresName:     "routinely",
	})
	if err != nil {
		t.Fatalf("postgresDSN: %v", err)
	}
	if !strings.HasPrefix(dsn, "postgres://app:p%40ss@db:5432/routinely?") {
		t.Fatalf("unexpected dsn: %s", dsn)
	}
	if !strings.Contains(dsn, "TimeZone=UTC") || !strings.Contains(dsn, "sslmode=disable") {
		t.Fatalf("missing query params: %s", dsn)
	}

	explicit, err := postgresDSN(Config{DatabaseURL: "postgres://u@h/db?TimeZone=Europe%2FBerlin"})
	if err != nil {
		t.Fatalf("postgresDSN explicit: %v", err)
	}
	if !strings.Contains(explicit, "TimeZone=Europe%2FBerlin") {
		t.Fatalf("explicit timezone should be preserved: %s", explicit)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open(Config{Driver: "oracle"}, logger.Nop()); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestOpenSQLiteAndMigrate(t *testing.T) {
	svc, err := Open(Config{Driver: DriverSQLite, SQLitePath: ":memory:", Silent: true}, logger.Nop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })

	if err := svc.AutoMigrateAll(); err != nil {
		t.Fatalf("AutoMigrateAll: %v", err)
	}
	// Running twice must be a no-op.
	if err := svc.AutoMigrateAll(); err != nil {
		t.Fatalf("AutoMigrateAll (again): %v", err)
	}
	for _, table := range []string{"users", "routine_tasks", "daily_logs", "interviews", "user_goals"} {
		if !svc.DB().Migrator().HasTable(table) {
			t.Fatalf("table %s missing after migration", table)
		}
	}
	if !svc.DB().Migrator().HasIndex("daily_logs", "idx_daily_log_user_task_date") {
		t.Fatalf("unique index on daily_logs missing")
	}
	if !svc.DB().Migrator().HasIndex("daily_logs", "idx_daily_log_user_status_date") {
		t.Fatalf("streak index on daily_logs missing")
	}
}
