package derive

import (
	"container/list"
	"regexp"
	"sync"
)

const defaultPatternCacheSize = 64

// patternCache keeps the most recently derived regular expressions so that
// a pattern expression yielding the same source on every commit is compiled
// once.
type patternCache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	items    map[string]*list.Element
}

type patternEntry struct {
	src string
	re  *regexp.Regexp
}

func newPatternCache(capacity int) *patternCache {
	if capacity <= 0 {
		capacity = defaultPatternCacheSize
	}
	return &patternCache{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

// compile returns the cached expression for src, compiling it on a miss.
// Invalid sources are not cached.
func (c *patternCache) compile(src string) (*regexp.Regexp, error) {
	c.mu.Lock()
	if elem, ok := c.items[src]; ok {
		c.order.MoveToFront(elem)
		re := elem.Value.(*patternEntry).re
		c.mu.Unlock()
		return re, nil
	}
	c.mu.Unlock()

	re, err := regexp.Compile(src)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[src]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*patternEntry).re, nil
	}
	c.items[src] = c.order.PushFront(&patternEntry{src: src, re: re})
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*patternEntry).src)
	}
	return re, nil
}

func (c *patternCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
