package db

import (
	"database/sql"
	"fmt"

	"storefront/internal/config"
	"storefront/internal/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect はSTORAGE_DRIVERに合わせてDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		return OpenPostgres(cfg.PostgresDSN(), log)
	case config.StorageSQLite:
		return OpenSQLite(cfg.SQLitePath, log)
	default:
		return nil, fmt.Errorf("storage driver %q has no SQL database", cfg.StorageDriver)
	}
}

// pgx（database/sql）経由でPostgresを開く
func OpenPostgres(dsn string, log *zap.Logger) (*gorm.DB, error) {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormConfig(log))
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return gormDB, nil
}

// ローカルファイル（または :memory:）のSQLite
func OpenSQLite(path string, log *zap.Logger) (*gorm.DB, error) {
	gormDB, err := gorm.Open(sqlite.Open(path), gormConfig(log))
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	return gormDB, nil
}

func gormConfig(log *zap.Logger) *gorm.Config {
	if log == nil {
		log = zap.NewNop()
	}
	return &gorm.Config{
		Logger: logger.NewGormLogger(log, logger.GormLevel("warn")),
	}
}
