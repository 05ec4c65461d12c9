// Package cache implements the fixed-capacity event tile cache: an LRU
// keyed by event identity, storing the tile list produced by a static
// event's last raster pass so it can be replayed (through fade only)
// instead of re-rasterized every frame.
package cache

import (
	"container/list"
	"image"

	"nitro-core-dx/internal/ssb"
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 64

// Tile is one cached overlay, ready to be re-faded and re-blended.
type Tile struct {
	Image             *image.RGBA
	X, Y              int
	Blend             ssb.BlendMode
	FadeInMS, FadeOutMS float64
}

// Cache is an LRU from event identity to its tile list.
type Cache struct {
	capacity int
	ll       *list.List
	index    map[interface{}]*list.Element
}

type entry struct {
	key   interface{}
	tiles []Tile
}

// New creates a cache with the given capacity (DefaultCapacity if <= 0).
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		capacity: capacity,
		ll:       list.New(),
		index:    make(map[interface{}]*list.Element),
	}
}

// Add inserts tiles for key at the front, evicting the least recently used
// entry if the cache is now over capacity.
func (c *Cache) Add(key interface{}, tiles []Tile) {
	if el, ok := c.index[key]; ok {
		el.Value.(*entry).tiles = tiles
		c.ll.MoveToFront(el)
		return
	}
	el := c.ll.PushFront(&entry{key: key, tiles: tiles})
	c.index[key] = el
	if c.ll.Len() > c.capacity {
		c.evictOldest()
	}
}

func (c *Cache) evictOldest() {
	oldest := c.ll.Back()
	if oldest == nil {
		return
	}
	c.ll.Remove(oldest)
	delete(c.index, oldest.Value.(*entry).key)
}

// Get returns the tiles cached for key, moving the entry to the front.
func (c *Cache) Get(key interface{}) ([]Tile, bool) {
	el, ok := c.index[key]
	if !ok {
		return nil, false
	}
	c.ll.MoveToFront(el)
	return el.Value.(*entry).tiles, true
}

// Clear drops everything. Must be called when the target resolution or
// colour space changes, since cached tiles are only valid for the
// destination they were rasterized against.
func (c *Cache) Clear() {
	c.ll.Init()
	c.index = make(map[interface{}]*list.Element)
}

// Len reports the number of entries currently cached.
func (c *Cache) Len() int {
	return c.ll.Len()
}
