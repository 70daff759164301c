package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/routinely-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(types.Models()...); err != nil {
		return err
	}
	return EnsureIndexes(db)
}

// EnsureIndexes creates the secondary indexes GORM tags cannot express.
// The statements are portable across Postgres and SQLite.
func EnsureIndexes(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_interviews_user_status_priority
		ON interviews (user_id, status, priority);
	`).Error; err != nil {
		return fmt.Errorf("create idx_interviews_user_status_priority: %w", err)
	}
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_daily_logs_user_date
		ON daily_logs (user_id, date);
	`).Error; err != nil {
		return fmt.Errorf("create idx_daily_logs_user_date: %w", err)
	}
	return nil
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}
