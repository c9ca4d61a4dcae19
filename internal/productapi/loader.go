package productapi

import (
	"context"
	"sync"
)

// Fetcher is what Loader needs from the upstream client.
type Fetcher interface {
	GetCustomerProducts(ctx context.Context, p Params) ([]map[string]any, error)
}

// Loader wraps a Fetcher with a per-key generation counter so a response
// from a superseded fetch is never applied to shared state. The storefront
// issues a new fetch on every filter-parameter change; without the guard a
// slow earlier response could land after a faster later one and silently
// overwrite it (last response wins). Here the last *request* wins: callers
// only persist a result when latest is true.
type Loader struct {
	fetcher Fetcher

	mu  sync.Mutex
	gen map[string]uint64
}

func NewLoader(f Fetcher) *Loader {
	return &Loader{fetcher: f, gen: make(map[string]uint64)}
}

// Load fetches the product list for key. latest is false when another Load
// for the same key started after this one, that is, when this result is
// stale and must not be cached or displayed as current.
func (l *Loader) Load(ctx context.Context, key string, p Params) (rows []map[string]any, latest bool, err error) {
	l.mu.Lock()
	l.gen[key]++
	mine := l.gen[key]
	l.mu.Unlock()

	rows, err = l.fetcher.GetCustomerProducts(ctx, p)

	l.mu.Lock()
	latest = l.gen[key] == mine
	l.mu.Unlock()

	if err != nil {
		return nil, latest, err
	}
	return rows, latest, nil
}
