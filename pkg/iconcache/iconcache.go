// Package iconcache holds marker icon images in a bounded in-memory
// cache. Icon loading is the one asynchronous collaborator in the
// system: lookups never block, and a miss yields the embedded default
// icon so rendering can proceed while the real asset is still on its
// way.
package iconcache

import (
	"crypto/sha256"
	"encoding/hex"
	_ "embed"

	lru "github.com/hashicorp/golang-lru/v2"
)

//go:embed assets/fish.svg
var defaultIcon []byte

// DefaultIcon is served whenever a key is unknown.
func DefaultIcon() []byte {
	return defaultIcon
}

// Cache is a bounded LRU of icon images keyed by taxon label or by
// content hash. Safe for concurrent use.
type Cache struct {
	lru *lru.Cache[string, []byte]
}

// New creates a cache bounded to size entries.
func New(size int) (*Cache, error) {
	c, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: c}, nil
}

// Put stores an icon under an explicit key, usually a taxon label.
func (c *Cache) Put(key string, data []byte) {
	c.lru.Add(key, data)
}

// PutContent stores an icon under its content hash and returns the key.
// The same bytes always map to the same key, so repeated loads of one
// asset occupy a single slot.
func (c *Cache) PutContent(data []byte) string {
	sum := sha256.Sum256(data)
	key := hex.EncodeToString(sum[:])
	c.lru.Add(key, data)
	return key
}

// Icon returns the cached image for a key. The second return value is
// false on a miss; callers that need bytes unconditionally should use
// IconOrDefault.
func (c *Cache) Icon(key string) ([]byte, bool) {
	return c.lru.Get(key)
}

// IconOrDefault never fails: a miss falls back to the embedded default.
func (c *Cache) IconOrDefault(key string) []byte {
	if data, ok := c.lru.Get(key); ok {
		return data
	}
	return defaultIcon
}

// Len reports the number of cached icons.
func (c *Cache) Len() int {
	return c.lru.Len()
}
