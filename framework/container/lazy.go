package container

import "sync"

// Lazy defers resolution of T until the first Get and then memoizes it.
// Every Get on the same handle returns the same value. Separate handles
// resolve independently unless the binding is scoped.
type Lazy[T any] struct {
	get resolveFunc

	mu    sync.Mutex
	done  bool
	value T
}

func newLazy[T any](get resolveFunc) *Lazy[T] {
	return &Lazy[T]{get: get}
}

// Get resolves T on first call and returns the memoized value afterwards.
// A failed resolution is not memoized.
func (l *Lazy[T]) Get() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.done {
		return l.value, nil
	}
	v, err := l.get()
	if err != nil {
		var zero T
		return zero, err
	}
	l.value = cast[T](v)
	l.done = true
	return l.value, nil
}

// MustGet is Get that panics on error.
func (l *Lazy[T]) MustGet() T {
	v, err := l.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// Resolved reports whether Get has already produced a value.
func (l *Lazy[T]) Resolved() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done
}

// Provider resolves T afresh on every Get. For an unscoped binding each call
// constructs a new value; for a scoped one every call returns the cached value.
type Provider[T any] struct {
	get resolveFunc
}

func newProvider[T any](get resolveFunc) *Provider[T] {
	return &Provider[T]{get: get}
}

// Get resolves T.
func (p *Provider[T]) Get() (T, error) {
	v, err := p.get()
	if err != nil {
		var zero T
		return zero, err
	}
	return cast[T](v), nil
}

// MustGet is Get that panics on error.
func (p *Provider[T]) MustGet() T {
	v, err := p.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// Optional holds T when something binds it.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns a present Optional.
func Some[T any](v T) Optional[T] { return Optional[T]{value: v, present: true} }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.present }

// Present reports whether a value is held.
func (o Optional[T]) Present() bool { return o.present }

// OrElse returns the value, or def when absent.
func (o Optional[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}
