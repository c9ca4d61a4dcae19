package productapi

import (
	"context"
	"errors"
	"sync"
	"testing"
)

// gatedFetcher blocks each fetch until its release channel is closed, so a
// test can force an earlier request to finish after a later one.
type gatedFetcher struct {
	mu      sync.Mutex
	calls   int
	results map[int][]map[string]any
	gates   map[int]chan struct{}
	started chan int
}

func (f *gatedFetcher) GetCustomerProducts(ctx context.Context, p Params) ([]map[string]any, error) {
	f.mu.Lock()
	f.calls++
	call := f.calls
	gate := f.gates[call]
	f.mu.Unlock()

	if f.started != nil {
		f.started <- call
	}
	if gate != nil {
		<-gate
	}
	if rows, ok := f.results[call]; ok {
		return rows, nil
	}
	return nil, errors.New("no fixture for call")
}

func TestLoaderMarksSupersededLoadsStale(t *testing.T) {
	firstGate := make(chan struct{})
	fetcher := &gatedFetcher{
		results: map[int][]map[string]any{
			1: {{"id": "old"}},
			2: {{"id": "new"}},
		},
		gates:   map[int]chan struct{}{1: firstGate},
		started: make(chan int, 2),
	}
	loader := NewLoader(fetcher)

	type result struct {
		rows   []map[string]any
		latest bool
	}
	firstDone := make(chan result)

	go func() {
		rows, latest, err := loader.Load(context.Background(), "dogs", Params{Type: "dogs"})
		if err != nil {
			t.Errorf("first load failed: %v", err)
		}
		firstDone <- result{rows, latest}
	}()

	// Wait until the first fetch is in flight before starting the second.
	<-fetcher.started

	rows, latest, err := loader.Load(context.Background(), "dogs", Params{Type: "dogs"})
	if err != nil {
		t.Fatalf("second load failed: %v", err)
	}
	if !latest {
		t.Error("second (newest) load reported stale")
	}
	if rows[0]["id"] != "new" {
		t.Errorf("second load rows = %v", rows)
	}

	// Now let the slow first response land; it must be flagged stale.
	close(firstGate)
	first := <-firstDone
	if first.latest {
		t.Error("superseded load reported latest; its response would overwrite newer state")
	}
	if first.rows[0]["id"] != "old" {
		t.Errorf("first load rows = %v", first.rows)
	}
}

func TestLoaderIndependentKeys(t *testing.T) {
	fetcher := &gatedFetcher{
		results: map[int][]map[string]any{
			1: {{"id": "a"}},
			2: {{"id": "b"}},
		},
	}
	loader := NewLoader(fetcher)

	if _, latest, err := loader.Load(context.Background(), "dogs", Params{}); err != nil || !latest {
		t.Errorf("dogs load: latest=%v err=%v", latest, err)
	}
	if _, latest, err := loader.Load(context.Background(), "cats", Params{}); err != nil || !latest {
		t.Errorf("cats load: latest=%v err=%v", latest, err)
	}
}

func TestLoaderFetchErrorPropagates(t *testing.T) {
	loader := NewLoader(&gatedFetcher{})
	if _, _, err := loader.Load(context.Background(), "dogs", Params{}); err == nil {
		t.Fatal("expected fetch error to propagate")
	}
}
