package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_IndexOf(t *testing.T) {
	c := Cart{{ID: 3}, {ID: 1}}
	assert.Equal(t, 0, c.IndexOf(3))
	assert.Equal(t, 1, c.IndexOf(1))
	assert.Equal(t, -1, c.IndexOf(2))
	assert.Equal(t, -1, Cart(nil).IndexOf(1))
}

func TestCart_Total(t *testing.T) {
	c := Cart{
		{ID: 1, Price: decimal.RequireFromString("179.90"), Amount: 2},
		{ID: 2, Price: decimal.RequireFromString("0.10"), Amount: 3},
	}
	assert.Equal(t, "360.10", c.Total().StringFixed(2))
	assert.True(t, Cart{}.Total().IsZero())
}

func TestCart_CloneIsIndependent(t *testing.T) {
	c := Cart{{ID: 1, Amount: 1}}
	cp := c.Clone()
	cp[0].Amount = 5

	assert.Equal(t, int64(1), c[0].Amount)
	assert.NotNil(t, Cart(nil).Clone())
}

func TestProduct_JSON(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"title":"Sneaker","price":179.9,"image":"a.jpg","amount":2}`), &p))

	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, int64(2), p.Amount)
	assert.Equal(t, "359.8", p.Subtotal().String())

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"title":"Sneaker","price":179.9,"image":"a.jpg","amount":2}`, string(b))
}

func TestProduct_JSON_PriceAsStringStillLoads(t *testing.T) {
	var c Cart
	require.NoError(t, json.Unmarshal([]byte(`[{"id":1,"price":"99.50","amount":1}]`), &c))
	assert.Equal(t, "99.5", c[0].Price.String())

	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"title":"","price":99.5,"image":"","amount":1}]`, string(b))
}

func TestCatalogRecords(t *testing.T) {
	p := CatalogProduct{ID: 2, Title: "Boot", Price: decimal.NewFromInt(99), Image: "b.jpg"}.ToProduct()
	assert.Equal(t, int64(2), p.ID)
	assert.Equal(t, int64(0), p.Amount)

	assert.Equal(t, Stock{ID: 2, Amount: 4}, CatalogStock{ProductID: 2, Amount: 4}.ToStock())
}
