package user

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/InventoryManager_Go/internal/domain"
)

func TestUserCache(t *testing.T) {
	t.Run("stores and copies", func(t *testing.T) {
		c := newUserCache(10, time.Minute)
		u := &domain.User{XUID: "1", Name: "Steve"}
		c.Set("k", c.Generation(), u)

		got, ok := c.Get("k")
		assert.True(t, ok)
		assert.Equal(t, *u, *got)

		got.Name = "mutated"
		again, _ := c.Get("k")
		assert.Equal(t, "Steve", again.Name)
	})

	t.Run("caches no-match", func(t *testing.T) {
		c := newUserCache(10, time.Minute)
		c.Set("k", c.Generation(), nil)
		got, ok := c.Get("k")
		assert.True(t, ok)
		assert.Nil(t, got)
	})

	t.Run("stale generation is dropped", func(t *testing.T) {
		c := newUserCache(10, time.Minute)
		gen := c.Generation()
		c.Invalidate()
		c.Set("k", gen, &domain.User{XUID: "1"})
		_, ok := c.Get("k")
		assert.False(t, ok)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("version mismatch is evicted", func(t *testing.T) {
		c := newUserCache(10, time.Minute)
		c.lru.Add("k", &cachedUserEntry{Version: "0.1", User: &domain.User{XUID: "1"}})
		_, ok := c.Get("k")
		assert.False(t, ok)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("set racing invalidate never keeps a pre-write result", func(t *testing.T) {
		c := newUserCache(10, time.Minute)
		for i := 0; i < 2000; i++ {
			gen := c.Generation()

			var wg sync.WaitGroup
			wg.Add(2)
			go func() {
				defer wg.Done()
				c.Set("name:steve", gen, &domain.User{XUID: "old"})
			}()
			go func() {
				defer wg.Done()
				c.Invalidate()
			}()
			wg.Wait()

			if _, ok := c.Get("name:steve"); ok {
				t.Fatalf("round %d: entry computed before the write survived its purge", i)
			}
		}
	})

	t.Run("disabled cache is a no-op", func(t *testing.T) {
		c := newUserCache(0, time.Minute)
		assert.Nil(t, c)
		c.Set("k", c.Generation(), &domain.User{})
		c.Invalidate()
		_, ok := c.Get("k")
		assert.False(t, ok)
	})
}
