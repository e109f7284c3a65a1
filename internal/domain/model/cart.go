package model

import "github.com/shopspring/decimal"

// Cartは追加順の明細列。同一IDの明細は1つだけ。
type Cart []Product

// IDで明細を探す。無ければ -1。
func (c Cart) IndexOf(productID int64) int {
	for i, p := range c {
		if p.ID == productID {
			return i
		}
	}
	return -1
}

// 合計金額
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, p := range c {
		total = total.Add(p.Subtotal())
	}
	return total
}

// 別の配列にコピーして返す。
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	copy(out, c)
	return out
}
