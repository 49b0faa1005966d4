package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bnema/tschedule/internal/domain"
	"github.com/bnema/tschedule/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	storeFileMode   = 0o600
	storeDirMode    = 0o700
	tempFilePattern = ".store-*.toml.tmp"
)

// Store keeps every key in one TOML document that is rewritten atomically
// on each mutation.
type Store struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.KeyValueStore = (*Store)(nil)

func NewStore(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("store path is empty")
	}

	normalized, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &Store{path: normalized, mu: lockForPath(normalized)}, nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.readSchema()
	if err != nil {
		return "", err
	}

	value, ok := file.Entries[key]
	if !ok {
		return "", fmt.Errorf("toml entry %q: %w", key, domain.ErrKeyNotFound)
	}

	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("store key is empty")
	}

	return s.update(ctx, func(entries map[string]string) bool {
		entries[key] = value
		return true
	})
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.DeleteMany(ctx, []string{key})
}

func (s *Store) DeleteMany(ctx context.Context, keys []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.update(ctx, func(entries map[string]string) bool {
		changed := false
		for _, key := range keys {
			if _, ok := entries[key]; ok {
				delete(entries, key)
				changed = true
			}
		}
		return changed
	})
}

func (s *Store) ListKeys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.readSchema()
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(file.Entries))
	for key := range file.Entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys, nil
}

func (s *Store) update(ctx context.Context, mutate func(map[string]string) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.readSchema()
	if err != nil {
		return err
	}

	if !mutate(file.Entries) {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return s.writeSchema(file)
}

func (s *Store) readSchema() (fileSchema, error) {
	var file fileSchema

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read store file: %w", err)
	}

	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode store file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (s *Store) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(s.path), storeDirMode); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp store file: %w", err)
	}

	if err := tempFile.Chmod(storeFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp store file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp store file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}

	cleanup = false
	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve store path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
