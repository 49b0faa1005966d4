package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/tschedule/internal/domain"
	"github.com/bnema/tschedule/internal/ports"
	"github.com/rs/zerolog"
)

// CacheEntry is the stored form of a cached payload: the canonical value
// under "data" and the write time in epoch milliseconds under "timestamp".
// Only the envelope is shared with other writers of the same keys; payloads
// are the canonical domain records, not raw server responses.
type CacheEntry[T any] struct {
	Payload  T     `json:"data"`
	StoredAt int64 `json:"timestamp"`
}

// SessionStore layers expiring cache entries and the bearer token on top of a
// key-value store. Cache reads and writes never fail: a broken backend
// degrades to a permanent miss.
type SessionStore struct {
	kv     ports.KeyValueStore
	clock  ports.Clock
	logger zerolog.Logger
}

func NewSessionStore(kv ports.KeyValueStore, clock ports.Clock, logger zerolog.Logger) *SessionStore {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &SessionStore{kv: kv, clock: clock, logger: logger}
}

// ReadCache returns the payload stored at key while it is no older than
// maxAge. Expired entries are deleted before reporting a miss.
func ReadCache[T any](ctx context.Context, s *SessionStore, key string, maxAge time.Duration) (T, bool) {
	var zero T

	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			s.cacheFailure(err, "read", key)
		}
		return zero, false
	}
	if raw == "" {
		return zero, false
	}

	var entry CacheEntry[T]
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		s.cacheFailure(fmt.Errorf("decode cache entry: %w", err), "read", key)
		return zero, false
	}

	age := s.clock.Now().UnixMilli() - entry.StoredAt
	if age > maxAge.Milliseconds() {
		if err := s.kv.Delete(ctx, key); err != nil {
			s.cacheFailure(err, "expire", key)
		}
		return zero, false
	}

	return entry.Payload, true
}

// WriteCache stores payload at key stamped with the current time. Failures
// are logged and dropped.
func WriteCache[T any](ctx context.Context, s *SessionStore, key string, payload T) {
	encoded, err := json.Marshal(CacheEntry[T]{Payload: payload, StoredAt: s.clock.Now().UnixMilli()})
	if err != nil {
		s.cacheFailure(fmt.Errorf("encode cache entry: %w", err), "write", key)
		return
	}

	if err := s.kv.Put(ctx, key, string(encoded)); err != nil {
		s.cacheFailure(err, "write", key)
	}
}

// ClearNamespace removes every key starting with prefix in one batch.
func (s *SessionStore) ClearNamespace(ctx context.Context, prefix string) {
	keys, err := s.kv.ListKeys(ctx)
	if err != nil {
		s.cacheFailure(err, "list", prefix)
		return
	}

	matching := make([]string, 0, len(keys))
	for _, key := range keys {
		if strings.HasPrefix(key, prefix) {
			matching = append(matching, key)
		}
	}
	if len(matching) == 0 {
		return
	}

	if err := s.kv.DeleteMany(ctx, matching); err != nil {
		s.cacheFailure(err, "clear", prefix)
	}
}

func (s *SessionStore) SaveToken(ctx context.Context, token string) error {
	if err := s.kv.Put(ctx, domain.AccessTokenKey, token); err != nil {
		return fmt.Errorf("store access token: %w", err)
	}
	return nil
}

func (s *SessionStore) LoadToken(ctx context.Context) (string, bool) {
	token, err := s.kv.Get(ctx, domain.AccessTokenKey)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			s.logger.Warn().Err(err).Str("key", domain.AccessTokenKey).Msg("load access token")
		}
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

func (s *SessionStore) DeleteToken(ctx context.Context) error {
	if err := s.kv.Delete(ctx, domain.AccessTokenKey); err != nil {
		return fmt.Errorf("delete access token: %w", err)
	}
	return nil
}

func (s *SessionStore) cacheFailure(err error, op string, key string) {
	s.logger.Warn().
		Err(fmt.Errorf("%w: %w", domain.ErrCache, err)).
		Str("op", op).
		Str("key", key).
		Msg("cache operation failed")
}
