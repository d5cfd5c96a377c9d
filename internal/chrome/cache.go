package chrome

import (
	"crypto/sha256"
	"sync"

	"github.com/tenant-site-server/internal/theme"
)

// Rendition is the cached per-document derivation: extracted chrome plus
// the detected theme. Both are pure functions of the generated HTML, so a
// content-addressed key stays valid until the tenant regenerates the site.
type Rendition struct {
	Chrome ExtractedChrome
	Dark   bool
}

// Cache memoizes chrome extraction and theme detection keyed by a SHA-256
// of the source document. Safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	max     int
	entries map[[32]byte]Rendition
}

// NewCache creates a cache bounded to max entries
func NewCache(max int) *Cache {
	if max < 1 {
		max = 1
	}
	return &Cache{
		max:     max,
		entries: make(map[[32]byte]Rendition, max),
	}
}

// Resolve returns the chrome and theme for a document, computing and
// storing them on first sight
func (c *Cache) Resolve(doc string) Rendition {
	key := sha256.Sum256([]byte(doc))

	c.mu.Lock()
	if r, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return r
	}
	c.mu.Unlock()

	// Compute outside the lock; extraction over large documents is the
	// expensive part and duplicate work on a race is harmless
	r := Rendition{
		Chrome: Extract(doc),
		Dark:   theme.IsDark(doc),
	}

	c.mu.Lock()
	if len(c.entries) >= c.max {
		// Evict an arbitrary entry. Tenant documents change rarely, so
		// anything smarter than keeping the map bounded is not worth it.
		for k := range c.entries {
			delete(c.entries, k)
			break
		}
	}
	c.entries[key] = r
	c.mu.Unlock()

	return r
}

// Len returns the current number of cached renditions
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
