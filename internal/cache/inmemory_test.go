package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryCacheSetGet(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCache()

	key := GenerateKey(PrefixBearerToken, "sandbox", "client-1")
	assert.Equal(t, "bearer_token:v1::sandbox:client-1", key)

	_, found := c.Get(ctx, key)
	assert.False(t, found)

	c.Set(ctx, key, "token-abc", 0)
	value, found := c.Get(ctx, key)
	assert.True(t, found)
	assert.Equal(t, "token-abc", value)
}

func TestInMemoryCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCache()

	c.Set(ctx, "short", "v", 20*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	_, found := c.Get(ctx, "short")
	assert.False(t, found)
}

func TestInMemoryCacheDeleteByPrefix(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCache()

	c.Set(ctx, GenerateKey(PrefixBearerToken, "sandbox"), "a", 0)
	c.Set(ctx, GenerateKey(PrefixBearerToken, "production"), "b", 0)
	c.Set(ctx, "other", "c", 0)

	c.DeleteByPrefix(ctx, PrefixBearerToken)

	_, found := c.Get(ctx, GenerateKey(PrefixBearerToken, "sandbox"))
	assert.False(t, found)
	_, found = c.Get(ctx, "other")
	assert.True(t, found)

	c.Delete(ctx, "other")
	_, found = c.Get(ctx, "other")
	assert.False(t, found)
}
