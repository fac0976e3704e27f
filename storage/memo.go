package storage

import (
	"context"
	"sync"

	"github.com/gaurav-prasanna/charsheet/core"
)

type memoEntry[D comparable, V any] struct {
	deps  D
	value V
}

// Memo caches one value per key together with the dependency snapshot it
// was computed from. A lookup with a different snapshot recomputes and
// replaces the entry. Failed loads are not cached. Safe for concurrent use.
type Memo[D comparable, V any] struct {
	mu      sync.Mutex
	entries map[string]memoEntry[D, V]
}

// NewMemo creates an empty Memo.
func NewMemo[D comparable, V any]() *Memo[D, V] {
	return &Memo[D, V]{entries: make(map[string]memoEntry[D, V])}
}

// Get returns the cached value for key when it was stored with deps,
// otherwise it calls load and stores the result.
func (m *Memo[D, V]) Get(key string, deps D, load func() (V, error)) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.entries[key]; ok && e.deps == deps {
		return e.value, nil
	}
	v, err := load()
	if err != nil {
		var zero V
		return zero, err
	}
	m.entries[key] = memoEntry[D, V]{deps: deps, value: v}
	return v, nil
}

// Forget drops the entry for key.
func (m *Memo[D, V]) Forget(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

// Revisioner is implemented by stores that can report a cheap revision
// marker for a file, so cached content can be refreshed when it changes.
type Revisioner interface {
	Revision(ctx context.Context, id string) (string, error)
}

// Cached memoizes the templates of an underlying store.
type Cached struct {
	store core.TemplateStore
	memo  *Memo[string, string]
}

// NewCached wraps store with a template cache.
func NewCached(store core.TemplateStore) *Cached {
	return &Cached{store: store, memo: NewMemo[string, string]()}
}

// Template returns the cached template for id. When the underlying store is
// a Revisioner its revision is the dependency snapshot; otherwise a template
// is read once and kept.
func (c *Cached) Template(ctx context.Context, id string) (string, error) {
	var deps string
	if r, ok := c.store.(Revisioner); ok {
		rev, err := r.Revision(ctx, id)
		if err != nil {
			return "", err
		}
		deps = rev
	}
	return c.memo.Get(id, deps, func() (string, error) {
		return c.store.Template(ctx, id)
	})
}
