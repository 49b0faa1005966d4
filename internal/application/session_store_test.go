package application

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/bnema/tschedule/internal/adapters/kv/memory"
	"github.com/bnema/tschedule/internal/domain"
	"github.com/bnema/tschedule/internal/ports/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSessionStore(t *testing.T, now *time.Time) (*SessionStore, *memory.Store) {
	t.Helper()

	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().RunAndReturn(func() time.Time { return *now }).Maybe()

	kv := memory.NewStore(0)
	return NewSessionStore(kv, clock, zerolog.Nop()), kv
}

func TestSessionStoreCacheRoundTrip(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	store, kv := newTestSessionStore(t, &now)
	ctx := context.Background()

	semesters := []domain.Semester{{ID: "1", DisplayName: "HK1"}}
	WriteCache(ctx, store, domain.SemestersCacheKey, semesters)

	raw, err := kv.Get(ctx, domain.SemestersCacheKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[{"id":"1","displayName":"HK1"}],"timestamp":`+
		formatMillis(now)+`}`, raw)

	now = now.Add(30 * time.Minute)
	got, ok := ReadCache[[]domain.Semester](ctx, store, domain.SemestersCacheKey, time.Hour)
	require.True(t, ok)
	assert.Equal(t, semesters, got)
}

func TestSessionStoreExpiredEntryIsDeleted(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	store, kv := newTestSessionStore(t, &now)
	ctx := context.Background()

	WriteCache(ctx, store, domain.SemestersCacheKey, []domain.Semester{{ID: "1"}})

	now = now.Add(time.Hour)
	_, ok := ReadCache[[]domain.Semester](ctx, store, domain.SemestersCacheKey, time.Hour)
	assert.True(t, ok, "an entry exactly maxAge old is still fresh")

	now = now.Add(time.Millisecond)
	_, ok = ReadCache[[]domain.Semester](ctx, store, domain.SemestersCacheKey, time.Hour)
	assert.False(t, ok)

	_, err := kv.Get(ctx, domain.SemestersCacheKey)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestSessionStoreUndecodableEntryIsMiss(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	store, kv := newTestSessionStore(t, &now)
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, domain.SemestersCacheKey, "{not json"))

	_, ok := ReadCache[[]domain.Semester](ctx, store, domain.SemestersCacheKey, time.Hour)
	assert.False(t, ok)
}

func TestSessionStoreBackendFailuresNeverSurface(t *testing.T) {
	kv := mocks.NewMockKeyValueStore(t)
	store := NewSessionStore(kv, nil, zerolog.Nop())
	ctx := context.Background()

	kv.EXPECT().Get(mock.Anything, domain.SemestersCacheKey).Return("", errors.New("disk on fire")).Once()
	kv.EXPECT().Put(mock.Anything, domain.SemestersCacheKey, mock.Anything).Return(errors.New("disk on fire")).Once()
	kv.EXPECT().ListKeys(mock.Anything).Return(nil, errors.New("disk on fire")).Once()

	_, ok := ReadCache[[]domain.Semester](ctx, store, domain.SemestersCacheKey, time.Hour)
	assert.False(t, ok)

	assert.NotPanics(t, func() {
		WriteCache(ctx, store, domain.SemestersCacheKey, []domain.Semester{{ID: "1"}})
		store.ClearNamespace(ctx, domain.NamespacePrefix)
	})
}

func TestSessionStoreClearNamespaceKeepsForeignKeys(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	store, kv := newTestSessionStore(t, &now)
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, "theme", "dark"))
	require.NoError(t, store.SaveToken(ctx, "abc"))
	WriteCache(ctx, store, domain.SemestersCacheKey, []domain.Semester{{ID: "1"}})
	WriteCache(ctx, store, domain.ScheduleCacheKey("1", ""), []domain.ScheduleItem{{CourseCode: "CS101"}})

	store.ClearNamespace(ctx, domain.NamespacePrefix)

	keys, err := kv.ListKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"theme"}, keys)
}

func TestSessionStoreTokenLifecycle(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	store, _ := newTestSessionStore(t, &now)
	ctx := context.Background()

	_, ok := store.LoadToken(ctx)
	assert.False(t, ok)

	require.NoError(t, store.SaveToken(ctx, "abc"))
	token, ok := store.LoadToken(ctx)
	require.True(t, ok)
	assert.Equal(t, "abc", token)

	require.NoError(t, store.DeleteToken(ctx))
	_, ok = store.LoadToken(ctx)
	assert.False(t, ok)
}

func formatMillis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
