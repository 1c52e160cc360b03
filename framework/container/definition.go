package container

// Definition describes a kind of component: the scopes it hosts, the modules
// it always installs, what its builder must be given, and its implicit
// (constructor-injectable) bindings. A Definition is immutable once created
// and can build any number of components.
type Definition struct {
	name              string
	scopes            []Scope
	installs          []Module
	requiredModules   []string
	requiredInstances []Key
	implicit          []func(*Binder)
}

// Option configures a Definition.
type Option func(*Definition)

// Define returns a component definition.
//
//	var ComputerComponent = container.Define("computer",
//	    container.HostsScopes(container.Singleton),
//	    container.Installs(&MemoryModule{}),
//	    container.RequiresModules("computer"),
//	)
func Define(name string, opts ...Option) *Definition {
	d := &Definition{name: name}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// HostsScopes declares the scopes whose instances the component caches.
func HostsScopes(scopes ...Scope) Option {
	return func(d *Definition) { d.scopes = append(d.scopes, scopes...) }
}

// Installs adds modules every component of this kind carries. A builder may
// replace one by supplying a module with the same name.
func Installs(modules ...Module) Option {
	return func(d *Definition) { d.installs = append(d.installs, modules...) }
}

// RequiresModules names modules the builder must be given explicitly.
func RequiresModules(names ...string) Option {
	return func(d *Definition) { d.requiredModules = append(d.requiredModules, names...) }
}

// RequiresInstance declares a runtime value the builder must bind with BindsInstance.
func RequiresInstance[T any](qualifier ...any) Option {
	key := KeyOf[T](qualifier...)
	return func(d *Definition) { d.requiredInstances = append(d.requiredInstances, key) }
}

// Implicit registers constructor-injectable bindings. They are used only when
// no module binds the same key anywhere in the component chain.
func Implicit(configure func(*Binder)) Option {
	return func(d *Definition) { d.implicit = append(d.implicit, configure) }
}

// Name returns the definition's name.
func (d *Definition) Name() string { return d.name }

// Scopes returns the hosted scopes.
func (d *Definition) Scopes() []Scope {
	out := make([]Scope, len(d.scopes))
	copy(out, d.scopes)
	return out
}

// Builder returns a builder for a root component.
func (d *Definition) Builder() *Builder {
	return newBuilder(d, nil)
}
