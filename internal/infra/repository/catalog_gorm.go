package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// カタログサーバー用。catalog_products / catalog_stocks を読む。
type CatalogGormRepository struct {
	db *gorm.DB
}

// DI
func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&model.CatalogProduct{}, &model.CatalogStock{})
}

// 商品と在庫をまとめて投入（同じIDは上書き）
func (r *CatalogGormRepository) Seed(ctx context.Context, products []model.CatalogProduct, stock []model.CatalogStock) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(products) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&products).Error; err != nil {
				return err
			}
		}
		if len(stock) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&stock).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// 商品一覧（ID順）
func (r *CatalogGormRepository) ListProducts(ctx context.Context) ([]model.Product, error) {
	var rows []model.CatalogProduct

	if err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&rows).Error; err != nil {
		return []model.Product{}, err
	}

	products := make([]model.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.ToProduct())
	}
	return products, nil
}

// IDで商品を取得
func (r *CatalogGormRepository) FindProduct(ctx context.Context, productID int64) (model.Product, error) {
	var row model.CatalogProduct

	err := r.db.WithContext(ctx).First(&row, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return row.ToProduct(), nil
}

// 商品IDで在庫を取得
func (r *CatalogGormRepository) FindStock(ctx context.Context, productID int64) (model.Stock, error) {
	var row model.CatalogStock

	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Stock{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Stock{}, err
	}
	return row.ToStock(), nil
}

// 在庫の現在値を設定
func (r *CatalogGormRepository) SetStock(ctx context.Context, productID int64, amount int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.CatalogStock{}).
		Where("product_id = ?", productID).
		Update("amount", amount)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
