package container

import (
	"errors"

	"github.com/rs/zerolog"
)

const (
	builderModule  = "<builder>"
	implicitModule = "<implicit>"
)

// Builder collects the modules and runtime instances of one component and
// builds it. Build snapshots the builder, so later calls do not affect
// components already built.
//
//	c, err := ComputerComponent.Builder().
//	    Module(&ComputerModule{Price: 6666}).
//	    Build()
type Builder struct {
	def       *Definition
	parent    *Component
	modules   []Module
	instances []*Binding
	logger    zerolog.Logger
	strict    bool
}

func newBuilder(def *Definition, parent *Component) *Builder {
	b := &Builder{def: def, parent: parent, logger: zerolog.Nop()}
	if parent != nil {
		b.logger = parent.logger
		b.strict = parent.strict
	}
	return b
}

// Module supplies a module. A later module with the same name replaces an
// earlier one, as well as an installed module of that name.
func (b *Builder) Module(m Module) *Builder {
	for i, have := range b.modules {
		if have.Name() == m.Name() {
			b.modules[i] = m
			return b
		}
	}
	b.modules = append(b.modules, m)
	return b
}

// BindsInstance binds a runtime value into the component being built.
//
//	container.BindsInstance(builder, "2.3", BluetoothVersion)
func BindsInstance[T any](b *Builder, v T, qualifier ...any) *Builder {
	key := KeyOf[T](qualifier...)
	for i, have := range b.instances {
		if have.key == key {
			b.instances[i] = &Binding{key: key, kind: instanceBinding, instance: v, module: builderModule}
			return b
		}
	}
	b.instances = append(b.instances, &Binding{key: key, kind: instanceBinding, instance: v, module: builderModule})
	return b
}

// WithLogger sets the logger for build and scope events. Children inherit it.
func (b *Builder) WithLogger(l zerolog.Logger) *Builder {
	b.logger = l
	return b
}

// Strict makes Build validate the whole graph statically. Children inherit it.
func (b *Builder) Strict(on bool) *Builder {
	b.strict = on
	return b
}

// MustBuild is Build that panics on error.
func (b *Builder) MustBuild() *Component {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}

// Build freezes the graph into a Component. Every configuration problem is
// reported at once, joined with errors.Join.
func (b *Builder) Build() (*Component, error) {
	modules := append([]Module(nil), b.modules...)
	instances := append([]*Binding(nil), b.instances...)

	var errs []error

	supplied := make(map[string]bool, len(modules))
	for _, m := range modules {
		supplied[m.Name()] = true
	}
	for _, name := range b.def.requiredModules {
		if !supplied[name] {
			errs = append(errs, MissingModuleError{Component: b.def.name, Module: name})
		}
	}
	bound := make(map[Key]bool, len(instances))
	for _, inst := range instances {
		bound[inst.key] = true
	}
	for _, key := range b.def.requiredInstances {
		if !bound[key] {
			errs = append(errs, MissingBoundInstanceError{Component: b.def.name, Key: key})
		}
	}

	set := newModuleSet()
	for _, m := range b.def.installs {
		set.install(m)
	}
	for _, m := range modules {
		set.override(m)
	}

	reg := NewRegistry()
	for _, m := range set.modules() {
		binder := newBinder(m.Name(), false)
		m.Configure(binder)
		errs = append(errs, registerAll(reg, binder.bindings)...)
	}
	errs = append(errs, registerAll(reg, instances)...)
	for _, configure := range b.def.implicit {
		binder := newBinder(implicitModule, true)
		configure(binder)
		errs = append(errs, registerAll(reg, binder.bindings)...)
	}

	c := &Component{
		id:       newComponentID(),
		def:      b.def,
		parent:   b.parent,
		registry: reg,
		cache:    NewScopeCache(b.def.scopes...),
		logger:   b.logger,
		strict:   b.strict,
	}

	errs = append(errs, c.checkAgainstAncestors()...)
	errs = append(errs, c.checkScopes()...)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if b.strict {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}

	c.logger.Debug().
		Str("component", c.Name()).
		Str("id", c.id).
		Int("bindings", reg.Len()).
		Msg("component built")
	return c, nil
}

func registerAll(reg *Registry, bindings []*Binding) []error {
	var errs []error
	for _, binding := range bindings {
		if err := reg.Register(binding); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// checkAgainstAncestors rejects a child that rebinds what an ancestor binds,
// or that repeats an ancestor's map key.
func (c *Component) checkAgainstAncestors() []error {
	if c.parent == nil {
		return nil
	}
	var errs []error
	for _, b := range c.registry.Bindings() {
		if b.implicit {
			continue
		}
		for anc := c.parent; anc != nil; anc = anc.parent {
			if conflict(anc.registry, b) {
				errs = append(errs, DuplicateBindingError{Key: b.key, Module: b.module})
				break
			}
			if b.kind == mapEntryBinding && anc.registry.mapKeys[b.key][b.mapKey] {
				errs = append(errs, DuplicateMapKeyError{Key: b.key, MapKey: b.mapKey})
				break
			}
		}
	}
	return errs
}

func conflict(anc *Registry, b *Binding) bool {
	switch {
	case b.kind.contribution():
		// contributing to an aggregate the ancestor binds as a plain value
		return anc.Explicit(b.key)
	default:
		return anc.Explicit(b.key) || anc.isAggregate(b.key)
	}
}

// checkScopes verifies every scoped binding has a host in the chain.
func (c *Component) checkScopes() []error {
	var errs []error
	for _, b := range c.registry.Bindings() {
		if b.scope == Unscoped {
			continue
		}
		if c.host(b.scope) == nil {
			errs = append(errs, UnknownScopeError{Key: b.key, Scope: b.scope, Component: c.Name()})
		}
	}
	return errs
}
