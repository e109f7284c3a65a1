package model

// 在庫（カタログ側の値。読み取り専用）
type Stock struct {
	ID     int64 `json:"id"`
	Amount int64 `json:"amount"`
}
