package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilClientReportsUnavailable(t *testing.T) {
	var c *Client
	ctx := context.Background()

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, c.Set(ctx, "k", []byte("v"), time.Minute), ErrUnavailable)
	assert.ErrorIs(t, c.Delete(ctx, "k"), ErrUnavailable)
	assert.ErrorIs(t, c.Ping(ctx), ErrUnavailable)
	assert.NoError(t, c.Close())
}

func TestUnreachableServerSurfacesErrors(t *testing.T) {
	// nothing listens on port 1
	c := New("127.0.0.1:1", "", 0)
	t.Cleanup(func() { c.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	assert.Error(t, c.Ping(ctx))
	_, err := c.Get(ctx, "session:x")
	assert.Error(t, err)
}

func TestClientRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	c := NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { c.Close() })
	ctx := context.Background()

	require.NoError(t, c.Ping(ctx))

	missing, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
	assert.Equal(t, time.Minute, mr.TTL("k"))

	require.NoError(t, c.Delete(ctx, "k"))
	require.NoError(t, c.Delete(ctx, "k"))
	got, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
}
