package container

import (
	"slices"
	"sync/atomic"
)

// The resolver threads a resolution stack through the recursion. Each call
// gets its own copy on append, so concurrent resolutions never share it.

// resolve produces the value for key as seen from c.
func (c *Component) resolve(key Key, requiredBy *Key, stack []Key) (any, error) {
	if i := slices.Index(stack, key); i >= 0 {
		path := append(slices.Clone(stack[i:]), key)
		return nil, CyclicDependencyError{Path: path}
	}
	stack = append(stack[:len(stack):len(stack)], key)

	if b, owner := c.lookup(key); b != nil {
		return owner.produce(b, b.key, stack)
	}
	if c.hasAggregate(key) {
		return c.aggregate(key, stack)
	}
	return nil, UnsatisfiedDependencyError{Key: key, RequiredBy: requiredBy, Component: c.Name()}
}

// lookup finds the plain binding for key and the component owning it.
// Explicit bindings anywhere in the chain win over implicit ones.
func (c *Component) lookup(key Key) (*Binding, *Component) {
	for cur := c; cur != nil; cur = cur.parent {
		if b, ok := cur.registry.bindings[key]; ok {
			return b, cur
		}
	}
	for cur := c; cur != nil; cur = cur.parent {
		if b, ok := cur.registry.implicit[key]; ok {
			return b, cur
		}
	}
	return nil, nil
}

func (c *Component) hasAggregate(key Key) bool {
	key, _ = aggregateKey(key)
	for cur := c; cur != nil; cur = cur.parent {
		if cur.registry.isAggregate(key) {
			return true
		}
	}
	return false
}

func (c *Component) canResolve(key Key) bool {
	if b, _ := c.lookup(key); b != nil {
		return true
	}
	return c.hasAggregate(key)
}

// produce builds b's value from c, its owner. Scoped values go through the
// cache of the nearest hosting component under cacheKey.
func (c *Component) produce(b *Binding, cacheKey Key, stack []Key) (any, error) {
	build := func() (any, error) {
		switch b.kind {
		case instanceBinding:
			return b.instance, nil
		case delegateBinding:
			return c.resolve(b.target, &b.key, stack)
		default:
			run := &construction{stack: stack}
			run.running.Store(true)
			defer run.running.Store(false)
			args, err := c.resolveArgs(b, run)
			if err != nil {
				return nil, err
			}
			return b.invoke(args)
		}
	}

	if b.scope == Unscoped {
		return build()
	}
	host := c.host(b.scope)
	if host == nil {
		return nil, UnknownScopeError{Key: b.key, Scope: b.scope, Component: c.Name()}
	}
	if host != c && cacheKey == b.key {
		cacheKey = Key{Type: b.key.Type, Qualifier: bindingSlot{binding: b}}
	}
	v, created, err := host.cache.GetOrCreate(cacheKey, build)
	if created && err == nil {
		host.logger.Debug().
			Str("component", host.Name()).
			Str("key", b.key.String()).
			Str("scope", string(b.scope)).
			Msg("scoped instance created")
	}
	return v, err
}

// construction is one running provider call. Handles handed to the provider
// resolve on its stack while it runs, so a provider asking a handle for its
// own key fails as a cycle instead of waiting on its own cache cell.
type construction struct {
	stack   []Key
	running atomic.Bool
}

// live returns the stack a handle resolves on right now.
func (r *construction) live() []Key {
	if r == nil || !r.running.Load() {
		return nil
	}
	return r.stack
}

// resolveArgs resolves b's declared dependencies in order.
func (c *Component) resolveArgs(b *Binding, run *construction) (Args, error) {
	args := make(Args, len(b.deps))
	for i, d := range b.deps {
		v, err := c.resolveDependency(d, &b.key, run.stack, run)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// resolveDependency hands out d in the requested form. run is the
// construction d is an argument of, nil outside one.
func (c *Component) resolveDependency(d Dependency, requiredBy *Key, stack []Key, run *construction) (any, error) {
	switch d.Kind {
	case LazyRequest, ProviderRequest:
		if !c.canResolve(d.Key) {
			return nil, UnsatisfiedDependencyError{Key: d.Key, RequiredBy: requiredBy, Component: c.Name()}
		}
		// Once the construction returns, handles resolve on a fresh stack.
		get := func() (any, error) { return c.resolve(d.Key, requiredBy, run.live()) }
		return d.wrap(get), nil

	case OptionalRequest:
		if !c.canResolve(d.Key) {
			return d.option(nil, false), nil
		}
		v, err := c.resolve(d.Key, requiredBy, stack)
		if err != nil {
			return nil, err
		}
		return d.option(v, true), nil

	default:
		return c.resolve(d.Key, requiredBy, stack)
	}
}
