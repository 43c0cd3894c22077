package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shortling/shortling/pkg/core/domain"
)

func newCache(t *testing.T) *LinkCache {
	t.Helper()
	cache, err := NewLinkCache("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return cache
}

func someLinks(owner string) []domain.Link {
	created := domain.DateTime{Time: time.Date(2025, 2, 20, 8, 0, 0, 0, time.UTC)}
	return []domain.Link{
		{ID: 2, OriginalURL: "https://foo.com", ShortURL: "abc123", ClickCount: 7, CreatedDate: created, UserName: owner},
		{ID: 1, OriginalURL: "https://bar.org", ShortURL: "xyz789", ClickCount: 3, CreatedDate: created, UserName: owner},
	}
}

func TestReplaceAndList(t *testing.T) {
	cache := newCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Replace(ctx, "alice", someLinks("alice")))

	got, err := cache.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Fetch order survives the roundtrip even though IDs are out of order.
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(1), got[1].ID)
	assert.Equal(t, "https://foo.com", got[0].OriginalURL)
	assert.Equal(t, int64(7), got[0].ClickCount)
	assert.Equal(t, 2025, got[0].CreatedDate.Year())
}

func TestReplaceOverwritesSnapshot(t *testing.T) {
	cache := newCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Replace(ctx, "alice", someLinks("alice")))
	require.NoError(t, cache.Replace(ctx, "alice", someLinks("alice")[:1]))

	got, err := cache.List(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSnapshotsAreKeyedByOwner(t *testing.T) {
	cache := newCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Replace(ctx, "alice", someLinks("alice")))

	got, err := cache.List(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPurge(t *testing.T) {
	cache := newCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Replace(ctx, "alice", someLinks("alice")))
	require.NoError(t, cache.Purge(ctx, "alice"))

	got, err := cache.List(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, got)
}
