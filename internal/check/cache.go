package check

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// CacheEntry is one cached availability result.
type CacheEntry struct {
	Available bool      `json:"available"`
	Method    string    `json:"method"`
	CheckedAt time.Time `json:"checked_at"`
}

// Cache is a TTL'd JSON-file cache of availability results. Only known
// (available/taken) results are cached; unknowns are always rechecked.
type Cache struct {
	path    string
	ttl     time.Duration
	entries map[string]CacheEntry
	dirty   bool
}

// NewCache loads the cache file at path, tolerating a missing or
// corrupt file by starting empty.
func NewCache(path string, ttl time.Duration) *Cache {
	c := &Cache{
		path:    path,
		ttl:     ttl,
		entries: make(map[string]CacheEntry),
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, &c.entries); err != nil {
			c.entries = make(map[string]CacheEntry)
		}
	}

	return c
}

// Get returns the cached entry for domain if present and fresh.
// Expired entries are evicted.
func (c *Cache) Get(domain string) (CacheEntry, bool) {
	entry, ok := c.entries[domain]
	if !ok {
		return CacheEntry{}, false
	}
	if time.Since(entry.CheckedAt) > c.ttl {
		delete(c.entries, domain)
		c.dirty = true
		return CacheEntry{}, false
	}
	return entry, true
}

// Set records a result for domain.
func (c *Cache) Set(domain string, available bool, method string) {
	c.entries[domain] = CacheEntry{
		Available: available,
		Method:    method,
		CheckedAt: time.Now(),
	}
	c.dirty = true
}

// PurgeExpired removes entries older than the TTL and returns how many
// were dropped.
func (c *Cache) PurgeExpired() int {
	removed := 0
	for domain, entry := range c.entries {
		if time.Since(entry.CheckedAt) > c.ttl {
			delete(c.entries, domain)
			removed++
		}
	}
	if removed > 0 {
		c.dirty = true
	}
	return removed
}

// Clear drops every entry and removes the cache file.
func (c *Cache) Clear() error {
	c.entries = make(map[string]CacheEntry)
	c.dirty = false
	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove cache file: %w", err)
	}
	return nil
}

// Save writes the cache to disk if it changed since loading.
func (c *Cache) Save() error {
	if !c.dirty {
		return nil
	}

	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cache: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	c.dirty = false
	return nil
}

// Stats summarizes the cache contents.
func (c *Cache) Stats() (total, available int) {
	for _, entry := range c.entries {
		total++
		if entry.Available {
			available++
		}
	}
	return total, available
}
