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

type entry struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func TestJSONCache(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()

	c := NewJSONCache(client, "hotel", time.Minute)
	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "h1", entry{Name: "Mountain View Lodge", Price: 199}))

		var got entry
		found, err := c.Get(ctx, "h1", &got)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "Mountain View Lodge", got.Name)
		assert.True(t, s.Exists("hotel:h1"))
	})

	t.Run("Miss", func(t *testing.T) {
		var got entry
		found, err := c.Get(ctx, "missing", &got)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("TTL", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "h2", entry{Name: "x"}))
		s.FastForward(2 * time.Minute)

		var got entry
		found, err := c.Get(ctx, "h2", &got)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "h3", entry{Name: "x"}))
		require.NoError(t, c.Delete(ctx, "h3"))
		assert.False(t, s.Exists("hotel:h3"))
		require.NoError(t, c.Delete(ctx))
	})

	t.Run("CorruptEntry", func(t *testing.T) {
		require.NoError(t, s.Set("hotel:bad", "{not json"))
		var got entry
		_, err := c.Get(ctx, "bad", &got)
		assert.Error(t, err)
	})
}
