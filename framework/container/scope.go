package container

import "sync"

// Scope names a lifetime. A scoped binding produces one value per component
// instance that hosts the scope; an unscoped binding produces a fresh value on
// every request.
type Scope string

const (
	// Unscoped bindings are never cached.
	Unscoped Scope = ""

	// Singleton is the conventional scope of a root component.
	Singleton Scope = "singleton"
)

// ScopeCache holds the scoped instances of one component.
//
// GetOrCreate guarantees at most one successful construction per key, even
// under concurrent requests: latecomers wait for the in-flight construction
// and share its outcome. A failed construction is not cached.
type ScopeCache struct {
	scopes map[Scope]bool

	mu    sync.Mutex
	cells map[Key]*cell
}

type cell struct {
	done  chan struct{}
	value any
	err   error
}

// NewScopeCache returns a cache for a component hosting the given scopes.
func NewScopeCache(scopes ...Scope) *ScopeCache {
	set := make(map[Scope]bool, len(scopes))
	for _, s := range scopes {
		if s != Unscoped {
			set[s] = true
		}
	}
	return &ScopeCache{scopes: set, cells: make(map[Key]*cell)}
}

// Hosts reports whether the owning component hosts scope.
func (sc *ScopeCache) Hosts(scope Scope) bool {
	return sc.scopes[scope]
}

// Scopes returns the hosted scopes.
func (sc *ScopeCache) Scopes() []Scope {
	out := make([]Scope, 0, len(sc.scopes))
	for s := range sc.scopes {
		out = append(out, s)
	}
	return out
}

// GetOrCreate returns the cached value for key, building it with create on
// first use. The bool result reports whether this call ran create.
func (sc *ScopeCache) GetOrCreate(key Key, create func() (any, error)) (any, bool, error) {
	sc.mu.Lock()
	if c, ok := sc.cells[key]; ok {
		sc.mu.Unlock()
		<-c.done
		if c.err != nil {
			// The builder failed; retry on our own rather than share a stale error.
			return sc.GetOrCreate(key, create)
		}
		return c.value, false, nil
	}
	c := &cell{done: make(chan struct{})}
	sc.cells[key] = c
	sc.mu.Unlock()

	defer close(c.done)

	v, err := create()
	if err != nil {
		c.err = err
		sc.mu.Lock()
		delete(sc.cells, key)
		sc.mu.Unlock()
		return nil, true, err
	}
	c.value = v
	return v, true, nil
}

// Cached reports whether a value for key has been constructed.
func (sc *ScopeCache) Cached(key Key) bool {
	sc.mu.Lock()
	c, ok := sc.cells[key]
	sc.mu.Unlock()
	if !ok {
		return false
	}
	select {
	case <-c.done:
		return c.err == nil
	default:
		return false
	}
}

// Len returns the number of cached values, in-flight constructions included.
func (sc *ScopeCache) Len() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return len(sc.cells)
}
