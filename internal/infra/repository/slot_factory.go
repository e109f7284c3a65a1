package repository

import (
	"context"
	"fmt"

	"storefront/internal/config"
	"storefront/internal/infra/db"
	repo "storefront/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// スロット保存先と後始末
type Slots struct {
	repo.SlotRepository
	close func() error
}

func (s Slots) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// STORAGE_DRIVER に合わせてスロットの保存先を作る。
func OpenSlots(ctx context.Context, cfg config.Config, log *zap.Logger) (Slots, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		log.Warn("using in-memory cart storage; the cart is lost on restart")
		return Slots{SlotRepository: NewSlotMemoryRepository()}, nil

	case config.StorageRedis:
		r, err := NewSlotRedisRepository(ctx, RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return Slots{}, err
		}
		log.Info("using redis cart storage", zap.String("addr", cfg.RedisAddr))
		return Slots{SlotRepository: r, close: r.Close}, nil

	case config.StorageSQLite, config.StoragePostgres:
		gormDB, err := db.Connect(cfg, log)
		if err != nil {
			return Slots{}, err
		}
		return openSQLSlots(ctx, gormDB, cfg.StorageDriver, log)

	default:
		return Slots{}, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// storage_slots を作成して返す。失敗したら接続を閉じる。
func openSQLSlots(ctx context.Context, gormDB *gorm.DB, driver string, log *zap.Logger) (Slots, error) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return Slots{}, err
	}

	r := NewSlotGormRepository(gormDB)
	if err := r.Migrate(ctx); err != nil {
		_ = sqlDB.Close()
		return Slots{}, fmt.Errorf("migrate storage_slots: %w", err)
	}

	log.Info("using sql cart storage", zap.String("driver", driver))
	return Slots{SlotRepository: r, close: sqlDB.Close}, nil
}
