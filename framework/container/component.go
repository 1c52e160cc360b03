package container

import (
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Component is a built, immutable object graph. It owns a registry, a scope
// cache and an optional parent it delegates unbound keys to. Resolution is
// safe for concurrent use.
type Component struct {
	id       string
	def      *Definition
	parent   *Component
	registry *Registry
	cache    *ScopeCache
	logger   zerolog.Logger
	strict   bool
}

func newComponentID() string { return uuid.NewString() }

// ID returns the component instance's unique identifier.
func (c *Component) ID() string { return c.id }

// Name returns the name of the component's definition.
func (c *Component) Name() string { return c.def.name }

// Definition returns the definition the component was built from.
func (c *Component) Definition() *Definition { return c.def }

// Parent returns the parent component, or nil for a root.
func (c *Component) Parent() *Component { return c.parent }

// Scopes returns the scopes this component hosts.
func (c *Component) Scopes() []Scope { return c.def.Scopes() }

// Logger returns the component's logger.
func (c *Component) Logger() zerolog.Logger { return c.logger }

// NewChildBuilder returns a builder for a subcomponent of c. The child can
// resolve every key of c and its ancestors, and caches c's scopes in c.
func (c *Component) NewChildBuilder(def *Definition) *Builder {
	return newBuilder(def, c)
}

// Has reports whether key can be resolved from c.
func (c *Component) Has(key Key) bool {
	return c.canResolve(key)
}

// Resolve returns the value bound to key.
func (c *Component) Resolve(key Key) (any, error) {
	return c.resolve(key, nil, nil)
}

// Cached reports whether a scoped value for key already lives in c's cache.
func (c *Component) Cached(key Key) bool {
	return c.cache.Cached(key)
}

// ── Introspection ─────────────────────────────────────────────────────────────

// BindingInfo describes one binding for introspection.
type BindingInfo struct {
	Key          string   `json:"key"`
	Kind         string   `json:"kind"`
	Scope        string   `json:"scope,omitempty"`
	Module       string   `json:"module"`
	MapKey       string   `json:"map_key,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
	Component    string   `json:"component"`
}

// Bindings lists the bindings visible from c, ancestors first, each group in
// registration order.
func (c *Component) Bindings() []BindingInfo {
	var out []BindingInfo
	for _, comp := range c.chain() {
		for _, b := range comp.registry.Bindings() {
			info := BindingInfo{
				Key:       b.key.String(),
				Kind:      b.kind.String(),
				Scope:     string(b.scope),
				Module:    b.module,
				MapKey:    b.mapKey,
				Component: comp.Name(),
			}
			for _, d := range b.deps {
				s := d.Key.String()
				if d.Kind != Instance {
					s = d.Kind.String() + " " + s
				}
				info.Dependencies = append(info.Dependencies, s)
			}
			if b.kind == delegateBinding {
				info.Dependencies = append(info.Dependencies, b.target.String())
			}
			out = append(out, info)
		}
	}
	return out
}

// Keys returns the distinct keys bound in c itself, sorted by their rendering.
func (c *Component) Keys() []Key {
	seen := make(map[Key]bool)
	var keys []Key
	for _, b := range c.registry.Bindings() {
		if !seen[b.key] {
			seen[b.key] = true
			keys = append(keys, b.key)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

// chain returns the components from the root down to c.
func (c *Component) chain() []*Component {
	var rev []*Component
	for cur := c; cur != nil; cur = cur.parent {
		rev = append(rev, cur)
	}
	out := make([]*Component, len(rev))
	for i, comp := range rev {
		out[len(rev)-1-i] = comp
	}
	return out
}

// host returns the nearest component, starting at c, that hosts scope.
func (c *Component) host(scope Scope) *Component {
	for cur := c; cur != nil; cur = cur.parent {
		if cur.cache.Hosts(scope) {
			return cur
		}
	}
	return nil
}
