package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// storage_slots テーブルに保存するスロット（SQLite / Postgres）
type SlotGormRepository struct {
	db *gorm.DB
}

// DI
func NewSlotGormRepository(db *gorm.DB) *SlotGormRepository {
	return &SlotGormRepository{db: db}
}

// テーブル作成
func (r *SlotGormRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&model.StorageSlot{})
}

// キーの値を取得
func (r *SlotGormRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var slot model.StorageSlot

	err := r.db.WithContext(ctx).
		Where("slot_key = ?", key).
		First(&slot).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return slot.Value, nil
}

// 値を丸ごと置き換える（無ければ作成）
func (r *SlotGormRepository) Set(ctx context.Context, key string, value []byte) error {
	slot := model.StorageSlot{
		Key:   key,
		Value: value,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&slot).Error
}

// 疎通確認
func (r *SlotGormRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
