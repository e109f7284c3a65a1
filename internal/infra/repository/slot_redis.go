package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	repo "storefront/internal/repository"

	"github.com/redis/go-redis/v9"
)

// Redisに保存するスロット
type SlotRedisRepository struct {
	client *redis.Client
}

// Redis接続設定
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// 接続して疎通確認まで行う
func NewSlotRedisRepository(ctx context.Context, cfg RedisConfig) (*SlotRedisRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	r := NewSlotRedisRepositoryWithClient(client)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := r.Ping(pingCtx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", cfg.Addr, err)
	}

	return r, nil
}

// 既存のクライアントを使う（テスト用）
func NewSlotRedisRepositoryWithClient(client *redis.Client) *SlotRedisRepository {
	return &SlotRedisRepository{client: client}
}

func (r *SlotRedisRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis GET %s: %w", key, err)
	}
	return val, nil
}

// 有効期限なしで上書き
func (r *SlotRedisRepository) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis SET %s: %w", key, err)
	}
	return nil
}

func (r *SlotRedisRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *SlotRedisRepository) Close() error {
	return r.client.Close()
}
