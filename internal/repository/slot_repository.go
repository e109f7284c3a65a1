package repository

import "context"

// key/valueスロットの保存先（ブラウザのlocalStorage相当）。
// キーが無ければ ErrNotFound を返す。
type SlotRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
}
