package container

// ── Module interface ──────────────────────────────────────────────────────────

// Module groups related bindings.
//
// Configure declares bindings on the Binder; it runs once per component build
// and must not resolve anything. Includes lists modules installed alongside
// this one.
//
//	type ComputerModule struct {
//	    container.BaseModule
//	    Price int
//	}
//
//	func (m *ComputerModule) Name() string { return "computer" }
//
//	func (m *ComputerModule) Configure(b *container.Binder) {
//	    container.Provide(b, func() *Computer { return NewWindows(m.Price) })
//	}
type Module interface {
	// Name identifies the module. Required modules and builder overrides
	// match by name, and a module is installed at most once per component.
	Name() string

	// Configure registers the module's bindings.
	Configure(b *Binder)

	// Includes returns modules installed together with this one.
	Includes() []Module
}

// ── BaseModule ────────────────────────────────────────────────────────────────

// BaseModule is an embeddable struct with a no-op Includes.
type BaseModule struct{}

func (BaseModule) Includes() []Module { return nil }

// NewModule returns a module backed by a configure function.
//
//	timestamps := container.NewModule("timestamp", func(b *container.Binder) {
//	    container.Provide(b, func() time.Time { return time.Now() })
//	})
func NewModule(name string, configure func(*Binder), includes ...Module) Module {
	return &funcModule{name: name, configure: configure, includes: includes}
}

type funcModule struct {
	name      string
	configure func(*Binder)
	includes  []Module
}

func (m *funcModule) Name() string        { return m.name }
func (m *funcModule) Configure(b *Binder) { m.configure(b) }
func (m *funcModule) Includes() []Module  { return m.includes }

// ── moduleSet ─────────────────────────────────────────────────────────────────

// moduleSet collects the modules of one component build, deduplicated by name.
// Overrides replace a module with the same name in place, so binding order
// stays stable.
type moduleSet struct {
	ordered  []Module
	index    map[string]int
	visiting map[string]bool
}

func newModuleSet() *moduleSet {
	return &moduleSet{index: make(map[string]int), visiting: make(map[string]bool)}
}

// install adds m and its includes (includes first). An already installed
// name is kept, and a module reached again through its own includes is
// installed once.
func (s *moduleSet) install(m Module) {
	name := m.Name()
	if _, ok := s.index[name]; ok || s.visiting[name] {
		return
	}
	s.visiting[name] = true
	for _, inc := range m.Includes() {
		s.install(inc)
	}
	delete(s.visiting, name)
	s.index[name] = len(s.ordered)
	s.ordered = append(s.ordered, m)
}

// override installs m, replacing any module with the same name.
func (s *moduleSet) override(m Module) {
	if i, ok := s.index[m.Name()]; ok {
		s.ordered[i] = m
		for _, inc := range m.Includes() {
			s.install(inc)
		}
		return
	}
	s.install(m)
}

func (s *moduleSet) modules() []Module { return s.ordered }
