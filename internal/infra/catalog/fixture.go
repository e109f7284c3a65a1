package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"storefront/internal/domain/model"
)

// シード用のJSON
//
//	{"products": [{"id":1,"title":"...","price":179.9,"image":"..."}],
//	 "stock":    [{"id":1,"amount":3}]}
type Fixture struct {
	Products []model.CatalogProduct `json:"products"`
	Stock    []model.CatalogStock   `json:"stock"`
}

func LoadFixture(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	return ParseFixture(data)
}

func ParseFixture(data []byte) (Fixture, error) {
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}

	for _, p := range f.Products {
		if p.ID <= 0 {
			return Fixture{}, fmt.Errorf("parse fixture: product id must be positive: %d", p.ID)
		}
	}
	for _, s := range f.Stock {
		if s.ProductID <= 0 {
			return Fixture{}, fmt.Errorf("parse fixture: stock id must be positive: %d", s.ProductID)
		}
		if s.Amount < 0 {
			return Fixture{}, fmt.Errorf("parse fixture: stock %d must be >= 0", s.ProductID)
		}
	}
	return f, nil
}
