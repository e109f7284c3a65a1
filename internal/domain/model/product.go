package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// カートの明細（商品 + 数量）
// title / price / image は表示用で、カートの処理では中身を見ない。
type Product struct {
	ID     int64           `json:"id"`
	Title  string          `json:"title"`
	Price  decimal.Decimal `json:"price"`
	Image  string          `json:"image"`
	Amount int64           `json:"amount"`
}

// 小計（price × amount）
func (p Product) Subtotal() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(p.Amount))
}

// price は数値で書き出す（保存済みのカートと同じ形）。読み込みは文字列でも数値でもよい。
func (p Product) MarshalJSON() ([]byte, error) {
	type plain Product
	return json.Marshal(struct {
		plain
		Price json.Number `json:"price"`
	}{
		plain: plain(p),
		Price: json.Number(p.Price.String()),
	})
}
