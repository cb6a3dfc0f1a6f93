package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"trendify-storefront/internal/domain"
)

// RedisStore persists the cart under StoreKey in Redis, for deployments where
// the storefront process is not the durable home of the cart.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore accepts either a redis:// URL or a plain "host:port" address.
func NewRedisStore(addr string) (*RedisStore, error) {
	opts, err := redis.ParseURL(addr)
	if err != nil {
		opts = &redis.Options{
			Addr:         addr,
			MinIdleConns: 1,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		}
	}
	return &RedisStore{
		client: redis.NewClient(opts),
		key:    StoreKey,
	}, nil
}

func (s *RedisStore) Load(ctx context.Context) ([]domain.CartLine, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cart store: %w", err)
	}
	var lines []domain.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("decode cart store: %w", err)
	}
	return lines, nil
}

func (s *RedisStore) Save(ctx context.Context, lines []domain.CartLine) error {
	if lines == nil {
		lines = []domain.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart store: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("write cart store: %w", err)
	}
	return nil
}

// Ping reports whether the Redis backend is reachable.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
