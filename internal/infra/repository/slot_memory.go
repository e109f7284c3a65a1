package repository

import (
	"context"
	"sync"

	repo "storefront/internal/repository"
)

// プロセス内のスロット（STORAGE_DRIVER=memory とテスト用）
type SlotMemoryRepository struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewSlotMemoryRepository() *SlotMemoryRepository {
	return &SlotMemoryRepository{slots: make(map[string][]byte)}
}

func (r *SlotMemoryRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.slots[key]
	if !ok {
		return nil, repo.ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (r *SlotMemoryRepository) Set(ctx context.Context, key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)

	r.mu.Lock()
	r.slots[key] = v
	r.mu.Unlock()
	return nil
}

func (r *SlotMemoryRepository) Ping(ctx context.Context) error {
	return nil
}
