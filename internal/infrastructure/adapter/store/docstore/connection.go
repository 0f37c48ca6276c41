package docstore

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	coreport "github.com/adelahmadi/fintrack/internal/domain/port/core"
	"github.com/adelahmadi/fintrack/internal/infrastructure/config"
)

// Connect opens the postgres connection, applies pool settings, and
// migrates the two document tables.
func Connect(cfg *config.PostgresConfig, logger coreport.Logger) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.Database, cfg.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	start := time.Now()
	if err := db.AutoMigrate(&SummaryRow{}, &TransactionRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate document tables: %w", err)
	}

	logger.Info("Postgres document store ready", map[string]any{
		"host":         cfg.Host,
		"database":     cfg.Database,
		"migration_ms": time.Since(start).Milliseconds(),
	})
	return db, nil
}
