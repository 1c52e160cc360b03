package container

import "fmt"

// ── Binding types ─────────────────────────────────────────────────────────────

type bindingKind int

const (
	provisionBinding   bindingKind = iota // factory with declared dependencies
	instanceBinding                       // pre-built value
	delegateBinding                       // bind-to-subtype
	setElementBinding                     // one element into a set
	setElementsBinding                    // a slice of elements into a set
	mapEntryBinding                       // one keyed entry into a map
	setDeclaration                        // legal-but-possibly-empty set
	mapDeclaration                        // legal-but-possibly-empty map
)

func (k bindingKind) String() string {
	switch k {
	case instanceBinding:
		return "instance"
	case delegateBinding:
		return "binds"
	case setElementBinding:
		return "into-set"
	case setElementsBinding:
		return "elements-into-set"
	case mapEntryBinding:
		return "into-map"
	case setDeclaration:
		return "multibinds-set"
	case mapDeclaration:
		return "multibinds-map"
	default:
		return "provides"
	}
}

func (k bindingKind) contribution() bool {
	return k >= setElementBinding
}

// factory builds a value from already-resolved dependency values.
type factory func(args Args) (any, error)

// Binding is a rule telling the container how to produce the value for a key.
// Multibinding contributions carry the aggregate key ([]T or map[string]T).
type Binding struct {
	key      Key
	kind     bindingKind
	scope    Scope
	deps     []Dependency
	factory  factory
	instance any
	target   Key // delegate target
	mapKey   string
	agg      aggregator
	module   string
	implicit bool
}

// Key returns the bound key.
func (b *Binding) Key() Key { return b.key }

// Scope returns the binding's scope (Unscoped when empty).
func (b *Binding) Scope() Scope { return b.scope }

// Dependencies returns the declared dependencies.
func (b *Binding) Dependencies() []Dependency { return b.deps }

// Module returns the name of the module that declared the binding.
func (b *Binding) Module() string { return b.module }

// eagerEdges returns the keys a binding needs at construction time.
// Lazy and Provider requests are excluded: they break cycles.
func (b *Binding) eagerEdges() []Key {
	var out []Key
	for _, d := range b.deps {
		if d.Kind == Instance || d.Kind == OptionalRequest {
			out = append(out, d.Key)
		}
	}
	if b.kind == delegateBinding {
		out = append(out, b.target)
	}
	return out
}

// ── Args ──────────────────────────────────────────────────────────────────────

// Args holds resolved dependency values in declaration order.
type Args []any

// Arg returns args[i] as T.
//
//	container.ProvideFunc(b, func(a container.Args) (*Computer, error) {
//	    return NewComputer(container.Arg[string](a, 0), container.Arg[int](a, 1)), nil
//	}, container.Need[string](OS).Dependency(), container.Need[int](Price).Dependency())
func Arg[T any](args Args, i int) T {
	return cast[T](args[i])
}

// ── Aggregation helpers ───────────────────────────────────────────────────────

// aggregator builds typed aggregates from untyped contributions. It is
// captured by the generic registration helpers, which know the element type.
type aggregator interface {
	newSet(elems []any) any
	spread(v any) []any
	newMap(keys []string, vals []any) any
	newEntries(keys []string, vals []any) any
}

type typedAggregator[T any] struct{}

func (typedAggregator[T]) newSet(elems []any) any {
	out := make([]T, 0, len(elems))
	for _, e := range elems {
		out = append(out, cast[T](e))
	}
	return out
}

func (typedAggregator[T]) spread(v any) []any {
	elems := cast[[]T](v)
	out := make([]any, len(elems))
	for i, e := range elems {
		out[i] = e
	}
	return out
}

func (typedAggregator[T]) newMap(keys []string, vals []any) any {
	out := make(map[string]T, len(keys))
	for i, k := range keys {
		out[k] = cast[T](vals[i])
	}
	return out
}

func (typedAggregator[T]) newEntries(keys []string, vals []any) any {
	out := make([]MapEntry[T], len(keys))
	for i, k := range keys {
		out[i] = MapEntry[T]{Key: k, Value: cast[T](vals[i])}
	}
	return out
}

// invoke runs the factory, turning errors and panics into ProvisionError.
func (b *Binding) invoke(args Args) (v any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			v = nil
			err = ProvisionError{Key: b.key, Err: fmt.Errorf("panic: %v", rec)}
		}
	}()
	v, err = b.factory(args)
	if err != nil {
		return nil, ProvisionError{Key: b.key, Err: err}
	}
	return v, nil
}

// checkDelegate verifies the delegate target can stand in for the bound type.
func (b *Binding) checkDelegate() error {
	if b.kind != delegateBinding {
		return nil
	}
	if !b.target.Type.AssignableTo(b.key.Type) {
		return InvalidBindingError{
			Key:    b.key,
			Reason: b.target.Type.String() + " is not assignable to " + b.key.Type.String(),
		}
	}
	return nil
}
