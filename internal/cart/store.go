package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmlee/storefront-backend/internal/app/model"
	"github.com/jmlee/storefront-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// Store persists one cart per cart id as a serialized line list. Load
// returns an empty list when no prior state exists or the stored bytes do
// not parse; Save overwrites the whole list. There are no partial writes.
type Store interface {
	Load(ctx context.Context, cartID string) ([]model.CartLine, error)
	Save(ctx context.Context, cartID string, items []model.CartLine) error
}

// RedisStore keeps carts in Redis under one key per cart id, expiring idle
// carts after the configured TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func cartKey(cartID string) string {
	return fmt.Sprintf("cart:%s", cartID)
}

func (s *RedisStore) Load(ctx context.Context, cartID string) ([]model.CartLine, error) {
	data, err := s.client.Get(ctx, cartKey(cartID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return []model.CartLine{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cart load failed: %w", err)
	}

	var items []model.CartLine
	if err := json.Unmarshal(data, &items); err != nil {
		// Unreadable state counts as no state.
		logger.Warn("Discarding unparseable cart state", map[string]interface{}{
			"cart_id": cartID,
		})
		return []model.CartLine{}, nil
	}
	if items == nil {
		items = []model.CartLine{}
	}
	return items, nil
}

func (s *RedisStore) Save(ctx context.Context, cartID string, items []model.CartLine) error {
	if items == nil {
		items = []model.CartLine{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("cart marshal failed: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(cartID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("cart save failed: %w", err)
	}
	return nil
}
