package trace

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 64

// CacheConfig configures a recording cache.
type CacheConfig struct {
	// MaxSize bounds the number of recordings kept.
	MaxSize int
	// Logger receives hit and miss events at debug level.
	Logger *slog.Logger
}

// DefaultCacheConfig keeps 64 recordings and logs through slog.Default.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{MaxSize: defaultCacheSize, Logger: slog.Default()}
}

// Cache is a bounded LRU of recordings keyed by run input.
// Cached recordings are shared and must not be modified.
type Cache[S any] struct {
	entries *lru.Cache[string, *Recording[S]]
	log     *slog.Logger
}

// NewCache returns an empty cache. Zero config values fall back to
// DefaultCacheConfig.
func NewCache[S any](cfg CacheConfig) (*Cache[S], error) {
	def := DefaultCacheConfig()
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = def.MaxSize
	}
	if cfg.Logger == nil {
		cfg.Logger = def.Logger
	}
	entries, err := lru.New[string, *Recording[S]](cfg.MaxSize)
	if err != nil {
		return nil, fmt.Errorf("trace: new cache: %w", err)
	}

	return &Cache[S]{entries: entries, log: cfg.Logger}, nil
}

// Get returns the recording stored under key.
func (c *Cache[S]) Get(key string) (*Recording[S], bool) { return c.entries.Get(key) }

// Recording returns the cached recording for key, recording a fresh run from
// f on a miss.
func (c *Cache[S]) Recording(key, algorithm string, f Factory[S]) *Recording[S] {
	if rec, ok := c.entries.Get(key); ok {
		c.log.Debug("trace cache hit", slog.String("key", key), slog.String("run", rec.ID))
		return rec
	}

	rec := Record(algorithm, f())
	c.entries.Add(key, rec)
	c.log.Debug("trace cache miss",
		slog.String("key", key),
		slog.String("run", rec.ID),
		slog.Int("snapshots", rec.Len()))

	return rec
}

// Len reports the number of cached recordings.
func (c *Cache[S]) Len() int { return c.entries.Len() }

// Key builds a deterministic cache key from a family, an algorithm id and the
// run's inputs.
func Key(family, algorithm string, inputs ...any) string {
	parts := make([]string, 0, len(inputs))
	for _, in := range inputs {
		data, err := json.Marshal(in)
		if err != nil {
			data = []byte(fmt.Sprint(in))
		}
		parts = append(parts, string(data))
	}

	return fmt.Sprintf("%s/%s:%s", family, algorithm, strings.Join(parts, "|"))
}
