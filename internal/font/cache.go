package font

// Cache memoizes Shaper instances by Attrs so a render pass doesn't re-load
// and re-parse the same font file for every geometry that uses it.
type Cache struct {
	load    Loader
	shapers map[Attrs]Shaper
}

// NewCache builds a cache backed by load for any attrs not yet resolved.
func NewCache(load Loader) *Cache {
	return &Cache{load: load, shapers: make(map[Attrs]Shaper)}
}

// Get returns the Shaper for attrs, building and memoizing it on first use.
func (c *Cache) Get(attrs Attrs) (Shaper, error) {
	if s, ok := c.shapers[attrs]; ok {
		return s, nil
	}
	s, err := NewShaper(attrs, c.load)
	if err != nil {
		return nil, err
	}
	c.shapers[attrs] = s
	return s, nil
}

// Clear drops every cached shaper, used when set_target reallocates state
// that might otherwise outlive a reloaded script's font set.
func (c *Cache) Clear() {
	c.shapers = make(map[Attrs]Shaper)
}
