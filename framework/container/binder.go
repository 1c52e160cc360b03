package container

// ── Binder ────────────────────────────────────────────────────────────────────

// Binder collects the bindings a module declares. A module receives one in
// Configure; bindings are registered into the component when it is built.
//
//	func (m *ComputerModule) Configure(b *container.Binder) {
//	    container.Provide(b, func() *Computer { return NewWindows(m.windowsPrice) }).
//	        Qualified(Windows)
//	}
type Binder struct {
	module   string
	implicit bool
	bindings []*Binding
}

func newBinder(module string, implicit bool) *Binder {
	return &Binder{module: module, implicit: implicit}
}

// Module returns the name of the module being configured.
func (b *Binder) Module() string { return b.module }

func (b *Binder) add(binding *Binding) *BindingBuilder {
	binding.module = b.module
	binding.implicit = b.implicit
	b.bindings = append(b.bindings, binding)
	return &BindingBuilder{binding: binding}
}

// BindingBuilder refines a binding right after it was declared.
type BindingBuilder struct {
	binding *Binding
}

// Qualified sets the qualifier of the bound key.
func (bb *BindingBuilder) Qualified(q any) *BindingBuilder {
	bb.binding.key = bb.binding.key.Qualified(q)
	return bb
}

// In caches the binding's value once per component hosting scope.
func (bb *BindingBuilder) In(scope Scope) *BindingBuilder {
	bb.binding.scope = scope
	return bb
}

// Key returns the key as currently declared.
func (bb *BindingBuilder) Key() Key { return bb.binding.key }

// ── Provisions ────────────────────────────────────────────────────────────────

// ProvideFunc registers a factory with explicitly declared dependencies. The
// factory receives the resolved values in the order of deps.
func ProvideFunc[T any](b *Binder, fn func(Args) (T, error), deps ...Dependency) *BindingBuilder {
	return b.add(&Binding{
		key:  KeyOf[T](),
		kind: provisionBinding,
		deps: deps,
		factory: func(args Args) (any, error) {
			return fn(args)
		},
	})
}

// Provide registers a factory without dependencies.
func Provide[T any](b *Binder, fn func() T) *BindingBuilder {
	return ProvideFunc(b, func(Args) (T, error) { return fn(), nil })
}

// Provide1 registers a factory with one dependency.
func Provide1[T, A any](b *Binder, a Dep[A], fn func(A) T) *BindingBuilder {
	return ProvideFunc(b, func(args Args) (T, error) {
		return fn(Arg[A](args, 0)), nil
	}, a.dep)
}

// Provide2 registers a factory with two dependencies.
func Provide2[T, A, B any](b *Binder, a Dep[A], bb Dep[B], fn func(A, B) T) *BindingBuilder {
	return ProvideFunc(b, func(args Args) (T, error) {
		return fn(Arg[A](args, 0), Arg[B](args, 1)), nil
	}, a.dep, bb.dep)
}

// Provide3 registers a factory with three dependencies.
func Provide3[T, A, B, C any](b *Binder, a Dep[A], bb Dep[B], c Dep[C], fn func(A, B, C) T) *BindingBuilder {
	return ProvideFunc(b, func(args Args) (T, error) {
		return fn(Arg[A](args, 0), Arg[B](args, 1), Arg[C](args, 2)), nil
	}, a.dep, bb.dep, c.dep)
}

// BindInstance registers a pre-built value owned by the module.
func BindInstance[T any](b *Binder, v T) *BindingBuilder {
	return b.add(&Binding{key: KeyOf[T](), kind: instanceBinding, instance: v})
}

// Bind delegates T to the binding of impl, which must be assignable to T.
//
//	container.Bind[CPU](b, container.Need[*Intel]())
func Bind[T, Impl any](b *Binder, impl Dep[Impl]) *BindingBuilder {
	return b.add(&Binding{key: KeyOf[T](), kind: delegateBinding, target: impl.dep.Key})
}

// ── Set multibindings ─────────────────────────────────────────────────────────

// IntoSetFunc contributes one element, built with dependencies, to the []T set.
func IntoSetFunc[T any](b *Binder, fn func(Args) (T, error), deps ...Dependency) *BindingBuilder {
	return b.add(&Binding{
		key:     KeyOf[[]T](),
		kind:    setElementBinding,
		deps:    deps,
		agg:     typedAggregator[T]{},
		factory: func(args Args) (any, error) { return fn(args) },
	})
}

// IntoSet contributes one element to the []T set.
func IntoSet[T any](b *Binder, fn func() T) *BindingBuilder {
	return IntoSetFunc(b, func(Args) (T, error) { return fn(), nil })
}

// ElementsIntoSet contributes every element fn returns to the []T set.
func ElementsIntoSet[T any](b *Binder, fn func() []T) *BindingBuilder {
	return b.add(&Binding{
		key:     KeyOf[[]T](),
		kind:    setElementsBinding,
		agg:     typedAggregator[T]{},
		factory: func(Args) (any, error) { return fn(), nil },
	})
}

// DeclareSet makes the []T set resolvable even with no contributions.
func DeclareSet[T any](b *Binder) *BindingBuilder {
	return b.add(&Binding{key: KeyOf[[]T](), kind: setDeclaration, agg: typedAggregator[T]{}})
}

// ── Map multibindings ─────────────────────────────────────────────────────────

// IntoMapFunc contributes one entry, built with dependencies, to the map[string]T map.
func IntoMapFunc[T any](b *Binder, mapKey string, fn func(Args) (T, error), deps ...Dependency) *BindingBuilder {
	return b.add(&Binding{
		key:     KeyOf[map[string]T](),
		kind:    mapEntryBinding,
		mapKey:  mapKey,
		deps:    deps,
		agg:     typedAggregator[T]{},
		factory: func(args Args) (any, error) { return fn(args) },
	})
}

// IntoMap contributes one entry to the map[string]T map.
func IntoMap[T any](b *Binder, mapKey string, fn func() T) *BindingBuilder {
	return IntoMapFunc(b, mapKey, func(Args) (T, error) { return fn(), nil })
}

// DeclareMap makes the map[string]T map resolvable even with no contributions.
func DeclareMap[T any](b *Binder) *BindingBuilder {
	return b.add(&Binding{key: KeyOf[map[string]T](), kind: mapDeclaration, agg: typedAggregator[T]{}})
}
