// Package cache provides content-addressed caching for computed layouts
// and rendered artifacts.
//
// Keys are derived from sha256 hashes of the inputs (graph document,
// layout options, output format), so identical requests hit the same
// entry regardless of which surface (CLI or server) issued them.
package cache

import (
	"context"
	"time"
)

// Default lifetimes per entry kind. Layouts are deterministic for a given
// input and survive longer; artifacts carry the largest payloads and
// rebuild cheaply from a cached layout.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache stores opaque byte payloads under string keys with an optional
// TTL. Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found;
	// a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl means the entry never
	// expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// Stats summarizes a backend's current contents. Bytes is zero when the
// backend does not track payload sizes.
type Stats struct {
	Entries int64
	Bytes   int64
}

// StatsProvider is implemented by backends that can summarize their
// contents. The cache stats command uses it when available.
type StatsProvider interface {
	Stats(ctx context.Context) (Stats, error)
}

// Clearer is implemented by backends that can drop everything they hold.
type Clearer interface {
	Clear(ctx context.Context) error
}

// LayoutKeyOpts identifies one layout computation over a graph.
type LayoutKeyOpts struct {
	Algorithm  string  `json:"algorithm"`
	Scale      float64 `json:"scale"`
	CenterX    float64 `json:"cx"`
	CenterY    float64 `json:"cy"`
	Seed       uint64  `json:"seed"`
	Iterations int     `json:"iterations"`
	K          float64 `json:"k"`
}

// ArtifactKeyOpts identifies one rendered artifact. Options carries the
// canonical JSON of the draw options so any styling change produces a
// fresh key.
type ArtifactKeyOpts struct {
	Format  string `json:"format"`
	Options string `json:"options"`
}

// Keyer derives cache keys from content hashes and operation options.
type Keyer interface {
	// LayoutKey generates a key for a computed layout.
	LayoutKey(graphHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(inputHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the combination of content hash and options under a
// per-kind prefix.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for a computed layout.
func (k *DefaultKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", graphHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(inputHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", inputHash, opts)
}
