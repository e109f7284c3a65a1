package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type StockRepoMock struct{ mock.Mock }

func (m *StockRepoMock) SetStock(ctx context.Context, productID int64, amount int64) error {
	return m.Called(ctx, productID, amount).Error(0)
}

func requireHTTPError(t *testing.T, err error, status int, msg string) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok, "want *HTTPError, got %v", err)
	assert.Equal(t, status, he.Status)
	assert.Equal(t, msg, he.Message)
}

func TestCatalogUsecase_ListProducts(t *testing.T) {
	catalog := new(CatalogRepoMock)
	uc := usecase.NewCatalogUsecase(catalog, new(StockRepoMock))

	catalog.On("ListProducts", mock.Anything).Return([]model.Product{sneaker(1), sneaker(2)}, nil).Once()
	items, err := uc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)

	catalog.On("ListProducts", mock.Anything).Return(nil, errors.New("db down")).Once()
	items, err = uc.ListProducts(context.Background())
	requireHTTPError(t, err, http.StatusInternalServerError, "db error")
	assert.Empty(t, items)
}

func TestCatalogUsecase_GetProduct(t *testing.T) {
	ctx := context.Background()
	catalog := new(CatalogRepoMock)
	uc := usecase.NewCatalogUsecase(catalog, new(StockRepoMock))

	catalog.On("FindProduct", mock.Anything, int64(1)).Return(sneaker(1), nil)
	catalog.On("FindProduct", mock.Anything, int64(2)).Return(model.Product{}, repo.ErrNotFound)
	catalog.On("FindProduct", mock.Anything, int64(3)).Return(model.Product{}, errors.New("db down"))

	p, err := uc.GetProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)

	_, err = uc.GetProduct(ctx, 0)
	requireHTTPError(t, err, http.StatusBadRequest, "invalid product id")

	_, err = uc.GetProduct(ctx, 2)
	requireHTTPError(t, err, http.StatusNotFound, "not found")

	_, err = uc.GetProduct(ctx, 3)
	requireHTTPError(t, err, http.StatusInternalServerError, "db error")
}

func TestCatalogUsecase_GetStock(t *testing.T) {
	ctx := context.Background()
	catalog := new(CatalogRepoMock)
	uc := usecase.NewCatalogUsecase(catalog, new(StockRepoMock))

	catalog.On("FindStock", mock.Anything, int64(1)).Return(model.Stock{ID: 1, Amount: 3}, nil)
	catalog.On("FindStock", mock.Anything, int64(2)).Return(model.Stock{}, repo.ErrNotFound)

	s, err := uc.GetStock(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), s.Amount)

	_, err = uc.GetStock(ctx, -1)
	requireHTTPError(t, err, http.StatusBadRequest, "invalid product id")

	_, err = uc.GetStock(ctx, 2)
	requireHTTPError(t, err, http.StatusNotFound, "not found")
}

func TestCatalogUsecase_SetStock(t *testing.T) {
	ctx := context.Background()
	stock := new(StockRepoMock)
	uc := usecase.NewCatalogUsecase(new(CatalogRepoMock), stock)

	stock.On("SetStock", mock.Anything, int64(1), int64(0)).Return(nil)
	stock.On("SetStock", mock.Anything, int64(9), int64(4)).Return(repo.ErrNotFound)

	s, err := uc.SetStock(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, model.Stock{ID: 1, Amount: 0}, s)

	_, err = uc.SetStock(ctx, 1, -1)
	requireHTTPError(t, err, http.StatusBadRequest, "stock must be >= 0")

	_, err = uc.SetStock(ctx, 9, 4)
	requireHTTPError(t, err, http.StatusNotFound, "not found")

	stock.AssertNumberOfCalls(t, "SetStock", 2)
}
