// Package container provides a typed dependency-injection graph: modules
// declare bindings, definitions describe components, builders freeze them
// into immutable object graphs that resolve keys on demand.
//
// # Keys
//
// A Key is a Go type plus an optional comparable qualifier.
//
//	container.KeyOf[*Computer]()               // unqualified
//	container.KeyOf[*Computer](Windows)        // named
//	container.KeyOf[*Memory](MemoryType{8192, Samsung})
//
// # Modules and bindings
//
//	type ComputerModule struct {
//	    container.BaseModule
//	    Price int
//	}
//
//	func (m *ComputerModule) Name() string { return "computer" }
//
//	func (m *ComputerModule) Configure(b *container.Binder) {
//	    // factory with dependencies
//	    container.Provide2(b,
//	        container.Need[CPU](), container.Need[*Memory](),
//	        func(cpu CPU, mem *Memory) *Computer { return NewComputer(cpu, mem) },
//	    ).In(container.Singleton)
//
//	    // bind an interface to an implementation
//	    container.Bind[CPU](b, container.Need[*Intel]())
//
//	    // multibindings
//	    container.IntoSet(b, func() *Disk { return NewSSD(256) })
//	    container.IntoMap(b, "Mouse", func() Device { return &Mouse{} })
//	}
//
// # Components
//
//	var ComputerComponent = container.Define("computer",
//	    container.HostsScopes(container.Singleton),
//	    container.RequiresModules("computer"),
//	)
//
//	c, err := ComputerComponent.Builder().
//	    Module(&ComputerModule{Price: 6666}).
//	    Build()
//
//	computer, err := container.Get[*Computer](c)
//
// Scoped bindings are cached once per component hosting the scope. Unscoped
// bindings build a fresh value on every request.
//
// # Subcomponents
//
// A child resolves everything its ancestors bind and adds bindings of its own.
// Multibindings aggregate across the chain, ancestors first. A child may not
// rebind a key an ancestor already binds.
//
//	child, err := c.NewChildBuilder(MonitorComponent).Build()
//
// # Indirection
//
// Dependencies can be requested as *Lazy[T] (resolved once, on first Get),
// *Provider[T] (resolved on every Get) or Optional[T] (absent when unbound).
//
// # Members injection
//
// Types implementing Target list their injection points and are filled by
// Component.Inject, all-or-nothing.
package container
