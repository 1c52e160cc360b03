package container

import "reflect"

// bindingSlot keys a scoped value by the binding that produced it. It is used
// for contributions, which must not collide with their aggregate key, and for
// bindings cached in an ancestor's scope, which must not collide with
// siblings binding the same key.
type bindingSlot struct {
	binding *Binding
}

// aggregateSlot keys a scoped aggregate apart from a plain binding of the
// same key.
type aggregateSlot struct {
	qualifier any
}

// MapEntry is one entry of a map multibinding. Requesting []MapEntry[T]
// yields the contributions of map[string]T in contribution order.
type MapEntry[T any] struct {
	Key   string
	Value T
}

func (MapEntry[T]) mapEntry() {}

type mapEntryMarker interface{ mapEntry() }

var mapEntryType = reflect.TypeFor[mapEntryMarker]()

// aggregateKey returns the key whose contributions make up key's aggregate:
// map[string]T for []MapEntry[T], key itself otherwise.
func aggregateKey(key Key) (Key, bool) {
	t := key.Type
	if t.Kind() != reflect.Slice || !t.Elem().Implements(mapEntryType) {
		return key, false
	}
	value := t.Elem().Field(1).Type
	return Key{Type: reflect.MapOf(reflect.TypeFor[string](), value), Qualifier: key.Qualifier}, true
}

type contribution struct {
	owner   *Component
	binding *Binding
}

// aggregate assembles the set or map multibinding for key as seen from c.
// Contributions are collected root first, each registry in declaration order.
func (c *Component) aggregate(key Key, stack []Key) (any, error) {
	src, entries := aggregateKey(key)
	var (
		decl      *Binding
		declOwner *Component
		last      *Component // deepest component declaring or contributing
		parts     []contribution
		agg       aggregator
	)
	for _, comp := range c.chain() {
		if d, ok := comp.registry.Declaration(src); ok {
			last = comp
			if decl == nil {
				decl, declOwner = d, comp
				agg = d.agg
			}
		}
		for _, b := range comp.registry.Contributions(src) {
			parts = append(parts, contribution{owner: comp, binding: b})
			last = comp
			if agg == nil {
				agg = b.agg
			}
		}
	}
	if agg == nil {
		return nil, UnsatisfiedDependencyError{Key: key, Component: c.Name()}
	}

	build := func() (any, error) {
		switch {
		case entries:
			return assembleMap(src, agg.newEntries, parts, stack)
		case src.Type.Kind() == reflect.Map:
			return assembleMap(src, agg.newMap, parts, stack)
		default:
			return assembleSet(agg, parts, stack)
		}
	}

	if decl == nil || decl.scope == Unscoped {
		return build()
	}
	host := declOwner.host(decl.scope)
	if host == nil {
		return nil, UnknownScopeError{Key: key, Scope: decl.scope, Component: c.Name()}
	}
	// The host caches what it sees itself. A descendant adding contributions
	// caches its larger view in its own cache, which dies with it.
	cache := host.cache
	if last != host {
		cache = last.cache
	}
	slot := Key{Type: key.Type, Qualifier: aggregateSlot{qualifier: key.Qualifier}}
	v, _, err := cache.GetOrCreate(slot, build)
	return v, err
}

func assembleSet(agg aggregator, parts []contribution, stack []Key) (any, error) {
	elems := make([]any, 0, len(parts))
	for _, p := range parts {
		v, err := p.produce(stack)
		if err != nil {
			return nil, err
		}
		if p.binding.kind == setElementsBinding {
			elems = append(elems, agg.spread(v)...)
			continue
		}
		elems = append(elems, v)
	}
	return agg.newSet(elems), nil
}

func assembleMap(key Key, assemble func(keys []string, vals []any) any, parts []contribution, stack []Key) (any, error) {
	keys := make([]string, 0, len(parts))
	vals := make([]any, 0, len(parts))
	seen := make(map[string]bool, len(parts))
	for _, p := range parts {
		mk := p.binding.mapKey
		if seen[mk] {
			return nil, DuplicateMapKeyError{Key: key, MapKey: mk}
		}
		seen[mk] = true
		v, err := p.produce(stack)
		if err != nil {
			return nil, err
		}
		keys = append(keys, mk)
		vals = append(vals, v)
	}
	return assemble(keys, vals), nil
}

// produce builds one contribution from its owner. Contributions are never
// cached under the aggregate key.
func (p contribution) produce(stack []Key) (any, error) {
	slot := Key{Type: p.binding.key.Type, Qualifier: bindingSlot{binding: p.binding}}
	return p.owner.produce(p.binding, slot, stack)
}
