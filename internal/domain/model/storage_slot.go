package model

import "time"

// ローカル保存用のkey/valueスロット（"<namespace>:cart" など）
type StorageSlot struct {
	Key       string    `gorm:"primaryKey;column:slot_key;type:varchar(255)" json:"key"`
	Value     []byte    `gorm:"not null" json:"value"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
