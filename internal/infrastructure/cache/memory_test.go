package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryListingCache_GetSet(t *testing.T) {
	c := NewMemoryListingCache()
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "/dashboard/invoices?page=1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "/dashboard/invoices?page=1", []byte(`{"total":0}`), time.Minute))

	val, ok, err := c.Get(ctx, "/dashboard/invoices?page=1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"total":0}`), val)
}

func TestMemoryListingCache_Expiry(t *testing.T) {
	c := NewMemoryListingCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", []byte("v"), -time.Second))

	_, ok, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestMemoryListingCache_InvalidateByRoute(t *testing.T) {
	c := NewMemoryListingCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "/dashboard/invoices?page=1", []byte("a"), time.Minute))
	require.NoError(t, c.Set(ctx, "/dashboard/invoices?page=2&q=lee", []byte("b"), time.Minute))
	require.NoError(t, c.Set(ctx, "/dashboard/customers?page=1", []byte("c"), time.Minute))

	require.NoError(t, c.Invalidate(ctx, "/dashboard/invoices"))

	_, ok, _ := c.Get(ctx, "/dashboard/invoices?page=1")
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, "/dashboard/invoices?page=2&q=lee")
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, "/dashboard/customers?page=1")
	assert.True(t, ok, "other routes must survive invalidation")
}
