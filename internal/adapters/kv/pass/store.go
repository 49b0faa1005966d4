package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bnema/tschedule/internal/domain"
	"github.com/bnema/tschedule/internal/ports"
)

const (
	DefaultPrefix  = "tschedule"
	entryExtension = ".gpg"
	notFoundMarker = "is not in the password store"
)

var ErrUnavailable = errors.New("pass command unavailable")

type runFunc func(ctx context.Context, input string, args ...string) (stdout string, stderr string, err error)

// Store keeps entries in the pass password store below a folder prefix.
type Store struct {
	prefix string
	run    runFunc
	root   func() (string, error)
}

var _ ports.KeyValueStore = (*Store)(nil)

func NewStore(prefix string) *Store {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		prefix = DefaultPrefix
	}

	return &Store{prefix: prefix, run: runPassCommand, root: passwordStoreDir}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name := s.entryName(key)
	_, stderr, err := s.run(ctx, value+"\n", "insert", "-m", "-f", name)
	if err != nil {
		return formatError("put", name, err, stderr)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := s.entryName(key)
	stdout, stderr, err := s.run(ctx, "", "show", name)
	if err != nil {
		if strings.Contains(stderr, notFoundMarker) {
			return "", fmt.Errorf("pass entry %q: %w", name, domain.ErrKeyNotFound)
		}
		return "", formatError("get", name, err, stderr)
	}

	stdout = strings.TrimSuffix(stdout, "\n")
	stdout = strings.TrimSuffix(stdout, "\r")

	return stdout, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name := s.entryName(key)
	_, stderr, err := s.run(ctx, "", "rm", "-f", name)
	if err != nil {
		if strings.Contains(stderr, notFoundMarker) {
			return nil
		}
		return formatError("delete", name, err, stderr)
	}

	return nil
}

func (s *Store) DeleteMany(ctx context.Context, keys []string) error {
	var errs error
	for _, key := range keys {
		if err := s.Delete(ctx, key); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			errs = errors.Join(errs, err)
		}
	}

	return errs
}

// ListKeys walks the password store directory because pass itself only
// prints a decorated tree.
func (s *Store) ListKeys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := s.root()
	if err != nil {
		return nil, err
	}
	base := filepath.Join(root, filepath.FromSlash(s.prefix))

	keys := make([]string, 0)
	err = filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, os.ErrNotExist) && path == base {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), entryExtension) {
			return nil
		}

		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}
		keys = append(keys, strings.TrimSuffix(filepath.ToSlash(rel), entryExtension))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list pass entries: %w", err)
	}

	sort.Strings(keys)
	return keys, nil
}

func (s *Store) entryName(key string) string {
	return s.prefix + "/" + strings.TrimLeft(key, "/")
}

func passwordStoreDir() (string, error) {
	if dir := os.Getenv("PASSWORD_STORE_DIR"); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, ".password-store"), nil
}

func runPassCommand(ctx context.Context, input string, args ...string) (string, string, error) {
	path, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func formatError(op string, name string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("pass %s %q: %w", op, name, err)
	}

	return fmt.Errorf("pass %s %q: %w: %s", op, name, err, stderr)
}
