package ports

import "context"

// LocalStore is the client-local persistent key/value storage that holds the
// rate cache and the display currency preference. A nil LocalStore means the
// code is running headless and nothing is read or written.
type LocalStore interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// RatesProvider fetches live conversion factors relative to base.
// Implementations make a single attempt; callers handle fallback.
type RatesProvider interface {
	FetchLatest(ctx context.Context, base string) (map[string]float64, error)
}
