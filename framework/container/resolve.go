package container

import (
	"fmt"
	"reflect"
)

// ── Generic accessors ─────────────────────────────────────────────────────────

// Get resolves T from c.
//
//	cpu, err := container.Get[hardware.CPU](c)
//	win, err := container.Get[*hardware.Computer](c, hardware.Windows)
func Get[T any](c *Component, qualifier ...any) (T, error) {
	key := KeyOf[T](qualifier...)
	v, err := c.Resolve(key)
	if err != nil {
		var zero T
		return zero, err
	}
	return typed[T](key, v)
}

// MustGet is Get that panics on error.
func MustGet[T any](c *Component, qualifier ...any) T {
	v, err := Get[T](c, qualifier...)
	if err != nil {
		panic(err)
	}
	return v
}

// GetLazy returns a handle resolving T on first Get. It fails immediately
// when nothing binds T.
func GetLazy[T any](c *Component, qualifier ...any) (*Lazy[T], error) {
	return handle(c, NeedLazy[T](qualifier...))
}

// GetProvider returns a handle resolving T on every Get.
func GetProvider[T any](c *Component, qualifier ...any) (*Provider[T], error) {
	return handle(c, NeedProvider[T](qualifier...))
}

// GetOptional resolves T if something binds it.
func GetOptional[T any](c *Component, qualifier ...any) (Optional[T], error) {
	return handle(c, NeedOptional[T](qualifier...))
}

// GetSet resolves the []T set multibinding.
func GetSet[T any](c *Component, qualifier ...any) ([]T, error) {
	return Get[[]T](c, qualifier...)
}

// GetMap resolves the map[string]T map multibinding.
func GetMap[T any](c *Component, qualifier ...any) (map[string]T, error) {
	return Get[map[string]T](c, qualifier...)
}

// GetMapEntries resolves the map[string]T map multibinding as entries in
// contribution order, ancestors first.
func GetMapEntries[T any](c *Component, qualifier ...any) ([]MapEntry[T], error) {
	return Get[[]MapEntry[T]](c, qualifier...)
}

// ResolveDep resolves a typed dependency in whatever form it requests.
func ResolveDep[V any](c *Component, d Dep[V]) (V, error) {
	return handle(c, d)
}

func handle[V any](c *Component, d Dep[V]) (V, error) {
	v, err := c.resolveDependency(d.dep, nil, nil, nil)
	if err != nil {
		var zero V
		return zero, err
	}
	return typed[V](d.dep.Key, v)
}

func typed[T any](key Key, v any) (T, error) {
	if v == nil {
		var zero T
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, InvalidBindingError{Key: key, Reason: fmt.Sprintf("resolved to %T, want %s", v, reflect.TypeFor[T]())}
	}
	return t, nil
}
