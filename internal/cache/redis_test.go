package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/review-platform/internal/config"
	"github.com/magabrotheeeer/review-platform/internal/models"
)

func setupTestCache(t *testing.T) *Cache {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() { mr.Close() })

	cfg := config.RedisConnection{
		Addr:     mr.Addr(),
		Password: "",
		DB:       0,
		User:     "",
	}

	cache, err := InitServer(context.Background(), cfg)
	require.NoError(t, err)
	return cache
}

func TestSetAndGet(t *testing.T) {
	cache := setupTestCache(t)

	expected := []*models.Product{
		{ID: 1, Name: "Wireless Headphones", Category: "Electronics"},
		{ID: 2, Name: "Coffee Maker", Category: "Home"},
	}
	err := cache.Set("products:all", expected, time.Minute)
	require.NoError(t, err)

	var actual []*models.Product
	found, err := cache.Get("products:all", &actual)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, actual, 2)
	assert.Equal(t, expected[0].Name, actual[0].Name)
}

func TestGetNotFound(t *testing.T) {
	cache := setupTestCache(t)

	var out models.Product
	found, err := cache.Get("no_such_key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidate(t *testing.T) {
	cache := setupTestCache(t)

	require.NoError(t, cache.Set("products:1", models.Product{ID: 1}, time.Minute))
	require.NoError(t, cache.Invalidate("products:1"))

	var out models.Product
	found, err := cache.Get("products:1", &out)
	require.NoError(t, err)
	assert.False(t, found)
}
