package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/tschedule/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name    string
		key     string
		wantErr string
	}{
		{name: "empty", key: "", wantErr: "store key is empty"},
		{name: "whitespace", key: "   ", wantErr: "store key is empty"},
		{name: "absolute", key: "/absolute/path", wantErr: "invalid store key"},
		{name: "traversal", key: "../escape", wantErr: "invalid store key"},
		{name: "deep traversal", key: "../../secret", wantErr: "invalid store key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Put(context.Background(), tc.key, "value")
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStorePutGetRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)
	key := domain.AccessTokenKey

	require.NoError(t, store.Put(context.Background(), key, "abc"))

	got, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	info, err := os.Stat(filepath.Join(root, key))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(entryFileMod), info.Mode().Perm())
}

func TestStoreGetMissingKeyReportsNotFound(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	_, err := store.Get(context.Background(), domain.SemestersCacheKey)
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStoreDeleteIsIdempotentWhenEntryMissing(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	require.NoError(t, store.Delete(context.Background(), domain.AccessTokenKey))
	require.NoError(t, store.Delete(context.Background(), domain.AccessTokenKey))
}

func TestStoreListKeysOnMissingRootIsEmpty(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "not-created"))

	keys, err := store.ListKeys(context.Background())
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestStoreListKeysAndDeleteMany(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(t.TempDir())
	for _, key := range []string{"tdmu_semesters", "tdmu_schedule_1_current", "nested/other"} {
		require.NoError(t, store.Put(ctx, key, "v"))
	}

	keys, err := store.ListKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"nested/other", "tdmu_schedule_1_current", "tdmu_semesters"}, keys)

	require.NoError(t, store.DeleteMany(ctx, []string{"tdmu_semesters", "tdmu_schedule_1_current"}))

	keys, err = store.ListKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"nested/other"}, keys)
}
