package container

// Registry stores one component's bindings. It is filled while the component
// is built and only read afterwards, so it needs no locking.
type Registry struct {
	bindings      map[Key]*Binding
	implicit      map[Key]*Binding
	contributions map[Key][]*Binding
	declarations  map[Key]*Binding
	mapKeys       map[Key]map[string]bool

	// registration order, for introspection
	order []*Binding
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings:      make(map[Key]*Binding),
		implicit:      make(map[Key]*Binding),
		contributions: make(map[Key][]*Binding),
		declarations:  make(map[Key]*Binding),
		mapKeys:       make(map[Key]map[string]bool),
	}
}

// Register adds a binding.
//
// Plain bindings are unique per key. Multibinding contributions append; a
// repeated map key fails fast. A key cannot be both a plain binding and an
// aggregate. Implicit bindings never clash: an explicit binding shadows them.
func (r *Registry) Register(b *Binding) error {
	if err := b.checkDelegate(); err != nil {
		return err
	}

	switch {
	case b.implicit:
		if _, ok := r.implicit[b.key]; ok {
			return DuplicateBindingError{Key: b.key, Module: b.module}
		}
		r.implicit[b.key] = b

	case b.kind == setDeclaration || b.kind == mapDeclaration:
		if _, ok := r.bindings[b.key]; ok {
			return DuplicateBindingError{Key: b.key, Module: b.module}
		}
		// Redeclaring is harmless; keep the first (it may carry a scope).
		if _, ok := r.declarations[b.key]; !ok {
			r.declarations[b.key] = b
		}

	case b.kind.contribution():
		if _, ok := r.bindings[b.key]; ok {
			return DuplicateBindingError{Key: b.key, Module: b.module}
		}
		if b.kind == mapEntryBinding {
			seen := r.mapKeys[b.key]
			if seen == nil {
				seen = make(map[string]bool)
				r.mapKeys[b.key] = seen
			}
			if seen[b.mapKey] {
				return DuplicateMapKeyError{Key: b.key, MapKey: b.mapKey}
			}
			seen[b.mapKey] = true
		}
		r.contributions[b.key] = append(r.contributions[b.key], b)

	default:
		if _, ok := r.bindings[b.key]; ok {
			return DuplicateBindingError{Key: b.key, Module: b.module}
		}
		if r.isAggregate(b.key) {
			return DuplicateBindingError{Key: b.key, Module: b.module}
		}
		r.bindings[b.key] = b
	}

	r.order = append(r.order, b)
	return nil
}

// Lookup returns the plain binding for key: explicit first, then implicit.
// It does not consult parent components.
func (r *Registry) Lookup(key Key) (*Binding, bool) {
	if b, ok := r.bindings[key]; ok {
		return b, true
	}
	b, ok := r.implicit[key]
	return b, ok
}

// Explicit reports whether key has an explicit plain binding.
func (r *Registry) Explicit(key Key) bool {
	_, ok := r.bindings[key]
	return ok
}

// Contributions returns the multibinding contributions for key in declaration order.
func (r *Registry) Contributions(key Key) []*Binding {
	return r.contributions[key]
}

// Declaration returns the multibinding declaration for key, if any.
func (r *Registry) Declaration(key Key) (*Binding, bool) {
	b, ok := r.declarations[key]
	return b, ok
}

// Bindings returns all registered bindings in registration order.
func (r *Registry) Bindings() []*Binding {
	out := make([]*Binding, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered bindings.
func (r *Registry) Len() int { return len(r.order) }

func (r *Registry) isAggregate(key Key) bool {
	if _, ok := r.declarations[key]; ok {
		return true
	}
	return len(r.contributions[key]) > 0
}
