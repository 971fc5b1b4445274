package repository_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"esg-assistant/internal/repository"
)

func setupRedisStore(t *testing.T) (repository.Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return repository.NewRedisStore(rdb, "esg-chatbot", zap.NewNop()), mr
}

func TestRedisStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, mr := setupRedisStore(t)

	assert.Empty(t, store.Load(ctx))

	want := sampleConversations()
	require.NoError(t, store.Save(ctx, want))
	assert.Equal(t, want, store.Load(ctx))
	assert.True(t, mr.Exists("esg-chatbot-conversations"))
	assert.Zero(t, mr.TTL("esg-chatbot-conversations"))
}

func TestRedisStore_MalformedCollection(t *testing.T) {
	store, mr := setupRedisStore(t)
	require.NoError(t, mr.Set("esg-chatbot-conversations", `[{"id": "x", "messages": [{"role": "alien"}]}]`))

	assert.Empty(t, store.Load(context.Background()))
}

func TestRedisStore_Preferences(t *testing.T) {
	ctx := context.Background()
	store, mr := setupRedisStore(t)

	_, ok := store.LoadPreference(ctx, repository.PrefCurrent)
	assert.False(t, ok)

	require.NoError(t, store.SavePreference(ctx, repository.PrefCurrent, "c1"))
	got, ok := store.LoadPreference(ctx, repository.PrefCurrent)
	assert.True(t, ok)
	assert.Equal(t, "c1", got)

	value, err := mr.Get("esg-chatbot-current")
	require.NoError(t, err)
	assert.Equal(t, "c1", value)
}

func TestRedisStore_UnreachableServer(t *testing.T) {
	ctx := context.Background()
	store, mr := setupRedisStore(t)
	mr.Close()

	assert.Empty(t, store.Load(ctx))
	assert.Error(t, store.Save(ctx, sampleConversations()))
}
