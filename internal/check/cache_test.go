package check

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := NewCache(filepath.Join(t.TempDir(), "cache.json"), time.Hour)

	if _, ok := c.Get("example.com"); ok {
		t.Error("expected miss on empty cache")
	}

	c.Set("example.com", true, MethodWhois)
	entry, ok := c.Get("example.com")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if !entry.Available || entry.Method != MethodWhois {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	c := NewCache(filepath.Join(t.TempDir(), "cache.json"), 10*time.Millisecond)

	c.Set("example.com", false, MethodDNS)
	if _, ok := c.Get("example.com"); !ok {
		t.Fatal("expected fresh entry to hit")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("example.com"); ok {
		t.Error("expected expired entry to miss")
	}

	total, _ := c.Stats()
	if total != 0 {
		t.Errorf("expired entry should be evicted, total = %d", total)
	}
}

func TestCacheSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "cache.json")

	c := NewCache(path, time.Hour)
	c.Set("taken.com", false, MethodDNS)
	c.Set("free.io", true, MethodWhois)
	if err := c.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded := NewCache(path, time.Hour)
	total, available := reloaded.Stats()
	if total != 2 || available != 1 {
		t.Errorf("Stats = (%d, %d), want (2, 1)", total, available)
	}
	entry, ok := reloaded.Get("free.io")
	if !ok || !entry.Available {
		t.Errorf("expected persisted entry for free.io, got %+v ok=%v", entry, ok)
	}
}

func TestCacheSaveSkipsWhenClean(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	c := NewCache(path, time.Hour)
	if err := c.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("clean cache should not write a file")
	}
}

func TestCacheCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	c := NewCache(path, time.Hour)
	if total, _ := c.Stats(); total != 0 {
		t.Errorf("corrupt cache should start empty, total = %d", total)
	}
}

func TestCachePurgeExpired(t *testing.T) {
	c := NewCache(filepath.Join(t.TempDir(), "cache.json"), 10*time.Millisecond)
	c.Set("old.com", true, MethodDNS)
	time.Sleep(20 * time.Millisecond)
	c.Set("new.com", true, MethodDNS)

	if removed := c.PurgeExpired(); removed != 1 {
		t.Errorf("PurgeExpired = %d, want 1", removed)
	}
	if _, ok := c.Get("new.com"); !ok {
		t.Error("fresh entry should survive a purge")
	}
}

func TestCacheClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	c := NewCache(path, time.Hour)
	c.Set("example.com", true, MethodDNS)
	if err := c.Save(); err != nil {
		t.Fatal(err)
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if total, _ := c.Stats(); total != 0 {
		t.Error("Clear should drop all entries")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Clear should remove the cache file")
	}
}
