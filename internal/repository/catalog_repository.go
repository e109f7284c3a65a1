package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品と在庫の参照だけを約束（リモートのカタログ or ローカルDB）
type CatalogRepository interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	FindProduct(ctx context.Context, productID int64) (model.Product, error)
	FindStock(ctx context.Context, productID int64) (model.Stock, error)
}

// 在庫の更新（カタログサーバーの管理用）
type StockRepository interface {
	SetStock(ctx context.Context, productID int64, amount int64) error
}
