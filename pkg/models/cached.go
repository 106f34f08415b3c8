package models

import (
	"context"
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/condenselabs/condense/pkg/cache"
)

// CachedLLM wraps a Generator and caches Generate calls by prompt hash.
// Map- and reduce-phase prompts are byte-deterministic, so identical requests
// hit the cache instead of the backend.
type CachedLLM struct {
	Backend  Generator
	Cache    *cache.LRUCache
	FilePath string
}

// NewCachedLLM creates a new CachedLLM wrapper.
func NewCachedLLM(backend Generator, size int, ttl time.Duration, filePath string) *CachedLLM {
	c := &CachedLLM{
		Backend:  backend,
		Cache:    cache.NewLRUCache(size, ttl),
		FilePath: filePath,
	}
	if filePath != "" {
		c.load()
	}
	return c
}

func (c *CachedLLM) load() {
	f, err := os.Open(c.FilePath)
	if err != nil {
		return // ignore errors (file not found, etc)
	}
	defer f.Close()

	var dump map[string]cache.Entry
	if err := json.NewDecoder(f).Decode(&dump); err == nil {
		c.Cache.Restore(dump)
	}
}

func (c *CachedLLM) save() {
	if c.FilePath == "" {
		return
	}
	dump := c.Cache.Dump()

	// Atomic write: write to temp, then rename
	tmp := c.FilePath + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return
	}

	if err := json.NewEncoder(f).Encode(dump); err != nil {
		f.Close()
		os.Remove(tmp)
		return
	}
	f.Close()
	os.Rename(tmp, c.FilePath)
}

// Generate checks the cache before calling the underlying backend.
func (c *CachedLLM) Generate(ctx context.Context, prompt string) (string, error) {
	key := cache.HashKey(prompt)
	if val, ok := c.Cache.Get(key); ok {
		return val, nil
	}

	res, err := c.Backend.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	c.Cache.Set(key, res)
	c.save()
	return res, nil
}

// TryCreateCachedLLM checks env vars and wraps the backend if caching is enabled.
func TryCreateCachedLLM(backend Generator) Generator {
	sizeStr := os.Getenv("CONDENSE_CACHE_SIZE")
	if sizeStr == "" {
		return backend
	}

	size, err := strconv.Atoi(sizeStr)
	if err != nil || size <= 0 {
		return backend
	}

	ttlStr := os.Getenv("CONDENSE_CACHE_TTL")
	ttl := 300 * time.Second // default 5 mins
	if ttlStr != "" {
		if sec, err := strconv.Atoi(ttlStr); err == nil && sec > 0 {
			ttl = time.Duration(sec) * time.Second
		}
	}

	path := os.Getenv("CONDENSE_CACHE_PATH")
	if path == "" {
		path = ".condense_cache.json"
	}

	return NewCachedLLM(backend, size, ttl, path)
}

var _ Generator = (*CachedLLM)(nil)
