package cache_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/classtym/campaign/pkg/cache"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestLRU_Basic(t *testing.T) {
	t.Parallel()

	t.Run("put and get", func(t *testing.T) {
		c := cache.NewLRU[string, int](3)

		c.Put("a", 1)
		c.Put("b", 2)

		val, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 1, val)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("get non-existent", func(t *testing.T) {
		c := cache.NewLRU[string, int](3)

		val, ok := c.Get("missing")
		assert.False(t, ok)
		assert.Equal(t, 0, val)
	})

	t.Run("update existing", func(t *testing.T) {
		c := cache.NewLRU[string, int](3)

		c.Put("a", 1)
		old, existed := c.Put("a", 2)
		assert.True(t, existed)
		assert.Equal(t, 1, old)

		val, _ := c.Get("a")
		assert.Equal(t, 2, val)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("remove and clear", func(t *testing.T) {
		c := cache.NewLRU[string, int](3)
		c.Put("a", 1)
		c.Put("b", 2)

		val, ok := c.Remove("a")
		assert.True(t, ok)
		assert.Equal(t, 1, val)
		_, ok = c.Remove("a")
		assert.False(t, ok)

		c.Clear()
		assert.Equal(t, 0, c.Len())
	})

	t.Run("panics on non-positive capacity", func(t *testing.T) {
		assert.Panics(t, func() { cache.NewLRU[string, int](0) })
	})
}

func TestLRU_Eviction(t *testing.T) {
	t.Parallel()

	var evicted []string
	c := cache.NewLRU(2, cache.WithEvictCallback(func(key string, _ int) {
		evicted = append(evicted, key)
	}))

	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a")
	c.Put("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok, "b was least recently used")
	_, ok = c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, []string{"b"}, evicted)
}

func TestLRU_TTL(t *testing.T) {
	t.Parallel()

	clk := &clock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := cache.NewLRU(4,
		cache.WithTTL[string, string](10*time.Minute),
		cache.WithClock[string, string](clk.Now),
	)

	c.Put("student", "page")
	clk.Advance(9 * time.Minute)
	val, ok := c.Get("student")
	assert.True(t, ok)
	assert.Equal(t, "page", val)

	clk.Advance(time.Minute)
	_, ok = c.Get("student")
	assert.False(t, ok, "entry expires exactly at its deadline")
	assert.Equal(t, 0, c.Len())

	c.Put("expert", "v1")
	clk.Advance(8 * time.Minute)
	c.Put("expert", "v2")
	clk.Advance(8 * time.Minute)
	val, ok = c.Get("expert")
	assert.True(t, ok, "put refreshes expiry")
	assert.Equal(t, "v2", val)
}

func TestLRU_Concurrent(t *testing.T) {
	t.Parallel()

	c := cache.NewLRU[int, int](16)
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Put(i, i)
			c.Get(i)
			c.Remove(i - 1)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 16)
}
