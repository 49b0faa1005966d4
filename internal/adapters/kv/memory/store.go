package memory

import (
	"context"
	"fmt"

	"github.com/bnema/tschedule/internal/domain"
	"github.com/bnema/tschedule/internal/ports"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize bounds the number of keys kept in memory. The least recently
// used key is evicted first, which for the session cache only costs a refetch.
const DefaultSize = 1024

type Store struct {
	cache *lru.Cache[string, string]
}

var _ ports.KeyValueStore = (*Store)(nil)

func NewStore(size int) *Store {
	store, err := NewStoreChecked(size)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(size int) (*Store, error) {
	if size <= 0 {
		size = DefaultSize
	}

	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("create memory store: %w", err)
	}

	return &Store{cache: cache}, nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	value, ok := s.cache.Get(key)
	if !ok {
		return "", fmt.Errorf("memory key %q: %w", key, domain.ErrKeyNotFound)
	}

	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cache.Add(key, value)
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cache.Remove(key)
	return nil
}

func (s *Store) ListKeys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return s.cache.Keys(), nil
}

func (s *Store) DeleteMany(ctx context.Context, keys []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, key := range keys {
		s.cache.Remove(key)
	}

	return nil
}
