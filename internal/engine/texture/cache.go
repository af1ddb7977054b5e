package texture

import "sync"

type cacheEntry struct {
	tex *Texture
	err error
}

// cache keeps loaded textures and load failures by path.
type cache struct {
	entries map[string]cacheEntry
	mu      sync.Mutex

	// Stats
	hits   int
	misses int
}

func newCache() *cache {
	return &cache{
		entries: make(map[string]cacheEntry),
	}
}

func (c *cache) get(key string) (cacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return e, ok
}

// set stores a load result, successful or not.
func (c *cache) set(key string, tex *Texture, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{tex: tex, err: err}
}

func (c *cache) textures() []*Texture {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*Texture, 0, len(c.entries))
	for _, e := range c.entries {
		if e.tex != nil {
			out = append(out, e.tex)
		}
	}
	return out
}

func (c *cache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
	c.hits = 0
	c.misses = 0
}

func (c *cache) stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

func (c *cache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
