package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// カタログサーバー側の商品テーブル
type CatalogProduct struct {
	ID        int64           `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Title     string          `gorm:"type:varchar(255);not null" json:"title"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Image     string          `gorm:"type:text" json:"image"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt time.Time       `gorm:"not null;autoUpdateTime" json:"-"`
}

// カタログサーバー側の在庫テーブル
type CatalogStock struct {
	ProductID int64     `gorm:"primaryKey;autoIncrement:false;column:product_id" json:"id"`
	Amount    int64     `gorm:"not null" json:"amount"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}

// カートの明細に変換（amountは0）
func (p CatalogProduct) ToProduct() Product {
	return Product{
		ID:    p.ID,
		Title: p.Title,
		Price: p.Price,
		Image: p.Image,
	}
}

func (s CatalogStock) ToStock() Stock {
	return Stock{ID: s.ProductID, Amount: s.Amount}
}
