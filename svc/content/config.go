package content

import "time"

// Defaults used when no Config is given.
const (
	DefaultTTL          = 600 * time.Second
	DefaultCacheSize    = 64
	DefaultFetchTimeout = 30 * time.Second
)

// Config holds the content cache settings.
type Config struct {
	TTL       time.Duration `env:"CONTENT_TTL" envDefault:"600s"`
	CacheSize int           `env:"CONTENT_CACHE_SIZE" envDefault:"64"`

	// FetchTimeout bounds a shared upstream fetch, which outlives the
	// requests waiting on it.
	FetchTimeout time.Duration `env:"CONTENT_FETCH_TIMEOUT" envDefault:"30s"`
}
