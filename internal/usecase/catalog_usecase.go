package usecase

import (
	"context"
	"errors"
	"net/http"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// カタログサーバー（/products, /stock）の業務ロジック
type CatalogUsecase struct {
	catalogRepo repo.CatalogRepository
	stockRepo   repo.StockRepository
}

// DI
func NewCatalogUsecase(catalogRepo repo.CatalogRepository, stockRepo repo.StockRepository) *CatalogUsecase {
	return &CatalogUsecase{
		catalogRepo: catalogRepo,
		stockRepo:   stockRepo,
	}
}

func (u *CatalogUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	items, err := u.catalogRepo.ListProducts(ctx)
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *CatalogUsecase) GetProduct(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.catalogRepo.FindProduct(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *CatalogUsecase) GetStock(ctx context.Context, productID int64) (model.Stock, error) {
	if productID <= 0 {
		return model.Stock{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	s, err := u.catalogRepo.FindStock(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Stock{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Stock{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

// 在庫を設定し、設定後の在庫を返す
func (u *CatalogUsecase) SetStock(ctx context.Context, productID int64, amount int64) (model.Stock, error) {
	if productID <= 0 {
		return model.Stock{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if amount < 0 {
		return model.Stock{}, NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}

	if err := u.stockRepo.SetStock(ctx, productID, amount); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Stock{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Stock{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return model.Stock{ID: productID, Amount: amount}, nil
}
