package container

import (
	"fmt"
	"reflect"
)

// Key identifies a binding: the type it produces plus an optional qualifier.
//
// Qualifiers are plain comparable values. A typed string constant works for the
// common "named" case; a comparable struct carries attributes:
//
//	type MemoryType struct{ Size int; Vendor Vendor }
//	key := container.KeyOf[*Memory](MemoryType{Size: 8192, Vendor: Samsung})
type Key struct {
	Type      reflect.Type
	Qualifier any
}

// KeyOf returns the key for T with at most one qualifier.
//
// It panics when more than one qualifier is passed or when the qualifier is
// not comparable, since such a key could never be looked up.
func KeyOf[T any](qualifier ...any) Key {
	return newKey(reflect.TypeFor[T](), qualifier)
}

func newKey(t reflect.Type, qualifier []any) Key {
	switch len(qualifier) {
	case 0:
		return Key{Type: t}
	case 1:
		q := qualifier[0]
		if q != nil && !reflect.TypeOf(q).Comparable() {
			panic(fmt.Sprintf("container: qualifier %T for %s is not comparable", q, t))
		}
		return Key{Type: t, Qualifier: q}
	default:
		panic(fmt.Sprintf("container: key for %s takes at most one qualifier, got %d", t, len(qualifier)))
	}
}

// Qualified returns a copy of k carrying the given qualifier.
func (k Key) Qualified(q any) Key {
	return newKey(k.Type, []any{q})
}

// String renders "type" or "type@qualifier".
func (k Key) String() string {
	name := "<nil>"
	if k.Type != nil {
		name = k.Type.String()
	}
	if k.Qualifier == nil {
		return name
	}
	return fmt.Sprintf("%s@%v", name, k.Qualifier)
}

// ── Dependencies ─────────────────────────────────────────────────────────────

// RequestKind describes how a dependency is handed to its consumer.
type RequestKind int

const (
	Instance RequestKind = iota // the value itself
	LazyRequest                 // a *Lazy[T] resolved on first Get
	ProviderRequest             // a *Provider[T] resolved on every Get
	OptionalRequest             // an Optional[T], absent when unbound
)

func (k RequestKind) String() string {
	switch k {
	case LazyRequest:
		return "lazy"
	case ProviderRequest:
		return "provider"
	case OptionalRequest:
		return "optional"
	default:
		return "instance"
	}
}

// Dependency is a request for a key in a particular form.
type Dependency struct {
	Key  Key
	Kind RequestKind

	// wrap builds the typed handle of a Lazy or Provider request, option
	// the Optional of an Optional request. The generic Need* constructors
	// capture them, since they know T.
	wrap   func(get resolveFunc) any
	option func(v any, present bool) any
}

type resolveFunc func() (any, error)

// Dep is a typed dependency whose resolved value has type V.
type Dep[V any] struct {
	dep Dependency
}

// Dependency returns the untyped dependency description.
func (d Dep[V]) Dependency() Dependency { return d.dep }

// Key returns the requested key.
func (d Dep[V]) Key() Key { return d.dep.Key }

// Need requests the value bound to T.
func Need[T any](qualifier ...any) Dep[T] {
	return Dep[T]{dep: Dependency{Key: KeyOf[T](qualifier...), Kind: Instance}}
}

// NeedLazy requests a handle that resolves T once, on first Get.
func NeedLazy[T any](qualifier ...any) Dep[*Lazy[T]] {
	return Dep[*Lazy[T]]{dep: Dependency{
		Key:  KeyOf[T](qualifier...),
		Kind: LazyRequest,
		wrap: func(get resolveFunc) any { return newLazy[T](get) },
	}}
}

// NeedProvider requests a handle that resolves T on every Get.
func NeedProvider[T any](qualifier ...any) Dep[*Provider[T]] {
	return Dep[*Provider[T]]{dep: Dependency{
		Key:  KeyOf[T](qualifier...),
		Kind: ProviderRequest,
		wrap: func(get resolveFunc) any { return newProvider[T](get) },
	}}
}

// NeedOptional requests T if something binds it.
func NeedOptional[T any](qualifier ...any) Dep[Optional[T]] {
	return Dep[Optional[T]]{dep: Dependency{
		Key:  KeyOf[T](qualifier...),
		Kind: OptionalRequest,
		option: func(v any, present bool) any {
			if !present {
				return Optional[T]{}
			}
			return Some(cast[T](v))
		},
	}}
}

// NeedSet requests the aggregated set multibinding of T.
func NeedSet[T any](qualifier ...any) Dep[[]T] { return Need[[]T](qualifier...) }

// NeedMap requests the aggregated map multibinding of T.
func NeedMap[T any](qualifier ...any) Dep[map[string]T] { return Need[map[string]T](qualifier...) }

// NeedMapEntries requests the map multibinding of T as entries in
// contribution order.
func NeedMapEntries[T any](qualifier ...any) Dep[[]MapEntry[T]] {
	return Need[[]MapEntry[T]](qualifier...)
}

// cast converts a resolved value to T, mapping nil to the zero value.
func cast[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}
