package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/integration/cache"
	"github.com/finance-tracker/ledger/internal/testutil"
)

func TestMarkSent(t *testing.T) {
	ctx := context.Background()
	mr, client := testutil.NewTestRedis(t)
	dedup := cache.NewNotificationDeduplicator(client)

	first, err := dedup.MarkSent(ctx, "recurring:missed:abc:2025-06-15", time.Hour)
	require.NoError(t, err)
	assert.True(t, first)

	again, err := dedup.MarkSent(ctx, "recurring:missed:abc:2025-06-15", time.Hour)
	require.NoError(t, err)
	assert.False(t, again)

	assert.True(t, mr.Exists("ledger:recurring:missed:abc:2025-06-15"))

	mr.FastForward(2 * time.Hour)
	expired, err := dedup.MarkSent(ctx, "recurring:missed:abc:2025-06-15", time.Hour)
	require.NoError(t, err)
	assert.True(t, expired)
}

func TestRelease(t *testing.T) {
	ctx := context.Background()
	mr, client := testutil.NewTestRedis(t)
	dedup := cache.NewNotificationDeduplicator(client)

	_, err := dedup.MarkSent(ctx, "recurring:upcoming:abc:2025-06-15", time.Hour)
	require.NoError(t, err)
	require.NoError(t, dedup.Release(ctx, "recurring:upcoming:abc:2025-06-15"))
	assert.False(t, mr.Exists("ledger:recurring:upcoming:abc:2025-06-15"))

	again, err := dedup.MarkSent(ctx, "recurring:upcoming:abc:2025-06-15", time.Hour)
	require.NoError(t, err)
	assert.True(t, again)

	assert.NoError(t, dedup.Release(ctx, "never-marked"))
}

func TestMarkSent_RedisDown(t *testing.T) {
	mr, client := testutil.NewTestRedis(t)
	mr.Close()

	_, err := cache.NewNotificationDeduplicator(client).MarkSent(context.Background(), "k", time.Minute)
	assert.Error(t, err)
	assert.Error(t, cache.Ping(context.Background(), client))
}
