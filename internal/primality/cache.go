package primality

import (
	"container/list"
	"math/big"
	"sync"
)

// Cache memoizes primality verdicts. A positive capacity bounds the number
// of entries with FIFO eviction; zero means unbounded.
type Cache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	verdicts map[string]*list.Element
	hits     int
	misses   int
}

type cacheEntry struct {
	key   string
	prime bool
}

func NewCache(capacity int) *Cache {
	if capacity < 0 {
		capacity = 0
	}
	return &Cache{
		capacity: capacity,
		order:    list.New(),
		verdicts: make(map[string]*list.Element),
	}
}

// Lookup returns the stored verdict for n, if any.
func (c *Cache) Lookup(n *big.Int) (prime, ok bool) {
	if c == nil {
		return false, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.verdicts[n.String()]
	if !ok {
		c.misses++
		return false, false
	}
	c.hits++
	return e.Value.(*cacheEntry).prime, true
}

// Store records a verdict for n, evicting the oldest entry when full.
func (c *Cache) Store(n *big.Int, prime bool) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	key := n.String()
	if e, ok := c.verdicts[key]; ok {
		e.Value.(*cacheEntry).prime = prime
		return
	}
	c.verdicts[key] = c.order.PushBack(&cacheEntry{key: key, prime: prime})
	if c.capacity > 0 && c.order.Len() > c.capacity {
		oldest := c.order.Front()
		c.order.Remove(oldest)
		delete(c.verdicts, oldest.Value.(*cacheEntry).key)
	}
}

func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats returns lookup hit and miss counts.
func (c *Cache) Stats() (hits, misses int) {
	if c == nil {
		return 0, 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
