package chain

import (
	"context"
	"errors"
	"fmt"
	"sort"

	filestore "github.com/bnema/tschedule/internal/adapters/kv/file"
	passstore "github.com/bnema/tschedule/internal/adapters/kv/pass"
	"github.com/bnema/tschedule/internal/ports"
)

// Store writes to a primary backend and falls back to a second one when the
// primary fails.
type Store struct {
	primary  ports.KeyValueStore
	fallback ports.KeyValueStore
}

var _ ports.KeyValueStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary key-value store is nil")
	errNilFallbackStore = errors.New("fallback key-value store is nil")
)

func NewStore(primary ports.KeyValueStore, fallback ports.KeyValueStore) *Store {
	store, err := NewStoreChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(primary ports.KeyValueStore, fallback ports.KeyValueStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func NewPassFirstWithFileFallback(passPrefix string, fileRoot string) (*Store, error) {
	return NewStoreChecked(passstore.NewStore(passPrefix), filestore.NewStore(fileRoot))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Put(ctx, key, value)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend put failed: %w; fallback backend put failed: %w", err, fallbackErr)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}

	return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

// Delete removes key from both backends, since Put may have landed in either.
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.deleteFromBoth("delete", func(store ports.KeyValueStore) error {
		return store.Delete(ctx, key)
	})
}

// ListKeys returns the union of both backends. A backend that cannot list is
// skipped as long as the other one answers.
func (s *Store) ListKeys(ctx context.Context) ([]string, error) {
	primaryKeys, err := s.primary.ListKeys(ctx)
	if err != nil && shouldSkipFallback(err) {
		return nil, err
	}

	fallbackKeys, fallbackErr := s.fallback.ListKeys(ctx)
	if err != nil && fallbackErr != nil {
		return nil, fmt.Errorf("primary backend list failed: %w; fallback backend list failed: %w", err, fallbackErr)
	}

	seen := make(map[string]struct{}, len(primaryKeys)+len(fallbackKeys))
	keys := make([]string, 0, len(primaryKeys)+len(fallbackKeys))
	for _, key := range append(primaryKeys, fallbackKeys...) {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys, nil
}

// DeleteMany clears the keys from both backends, since ListKeys reports
// entries from either of them.
func (s *Store) DeleteMany(ctx context.Context, keys []string) error {
	return s.deleteFromBoth("delete many", func(store ports.KeyValueStore) error {
		return store.DeleteMany(ctx, keys)
	})
}

// deleteFromBoth fails when either backend could not delete, so a value the
// primary still holds is never reported as gone. A primary whose command is
// not installed holds nothing.
func (s *Store) deleteFromBoth(op string, del func(ports.KeyValueStore) error) error {
	err := del(s.primary)
	if err != nil && shouldSkipFallback(err) {
		return err
	}
	if errors.Is(err, passstore.ErrUnavailable) {
		err = nil
	}

	fallbackErr := del(s.fallback)
	switch {
	case err != nil && fallbackErr != nil:
		return fmt.Errorf("primary backend %s failed: %w; fallback backend %s failed: %w", op, err, op, fallbackErr)
	case err != nil:
		return fmt.Errorf("primary backend %s failed: %w", op, err)
	case fallbackErr != nil:
		return fmt.Errorf("fallback backend %s failed: %w", op, fallbackErr)
	}

	return nil
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
