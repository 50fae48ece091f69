package resolve

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/NickyBoy89/sigfind/symbol"
	"golang.org/x/sync/singleflight"
)

// Cache memoises one Context per compilation unit for the lifetime of a
// matching session. Entries are keyed by the identity of the unit, inserted on
// first use, and never evicted or replaced. It is safe for concurrent use.
type Cache struct {
	entries sync.Map // *symbol.FileScope -> *Context
	group   singleflight.Group
	size    atomic.Int64

	// Called on every lookup, if set. Must be safe for concurrent use.
	OnLookup func(hit bool)
}

func NewCache() *Cache {
	return &Cache{}
}

// ContextFor returns the cached context of unit, building it on first use.
// Concurrent first lookups of the same unit build it once and all receive the
// same instance.
func (c *Cache) ContextFor(unit *symbol.FileScope) *Context {
	if cached, ok := c.entries.Load(unit); ok {
		c.record(true)
		return cached.(*Context)
	}
	c.record(false)

	key := fmt.Sprintf("%p", unit)
	built, _, _ := c.group.Do(key, func() (any, error) {
		if cached, ok := c.entries.Load(unit); ok {
			return cached, nil
		}
		ctx := ContextOf(unit)
		actual, loaded := c.entries.LoadOrStore(unit, ctx)
		if !loaded {
			c.size.Add(1)
		}
		return actual, nil
	})
	return built.(*Context)
}

// Len is the number of units with a cached context
func (c *Cache) Len() int {
	return int(c.size.Load())
}

func (c *Cache) record(hit bool) {
	if c.OnLookup != nil {
		c.OnLookup(hit)
	}
}
