// Package cache provides artifact caching for diskmap.
//
// Rendering a mapped grid through Graphviz is the only expensive step in the
// pipeline, so rendered artifacts (SVG, PNG) are memoized keyed by a hash of
// the input graph plus the mapping and rendering options. Two backends are
// provided: a file cache for CLI usage and a null cache for tests or when
// caching is disabled.
package cache

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for caching operations.
var (
	// ErrNotFound is returned when a requested item does not exist.
	ErrNotFound = errors.New("not found")

	// ErrCacheMiss is returned when an item is not found in cache.
	ErrCacheMiss = errors.New("cache miss")
)

// Cache is the interface for artifact cache backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKey builds the cache key for a rendered artifact: the graph hash
// combined with every option that affects the output.
func ArtifactKey(graphHash, format string, padding int, unweighted bool, radius float64) string {
	return hashKey("artifact", graphHash, format, padding, unweighted, radius)
}
