package container

import "errors"

// node is a key as seen from a component: the same key can resolve to
// different bindings from a child and from its parent.
type node struct {
	key  Key
	view *Component
}

type visitState int

const (
	unvisited visitState = iota
	visiting
	visited
)

// Validate checks the graph statically, without constructing anything. It
// reports every dependency that no component in the chain satisfies and
// every cycle made of eager edges. Lazy and Provider requests are checked
// for presence but do not count as cycle edges.
func (c *Component) Validate() error {
	v := &validator{state: make(map[node]visitState), seen: make(map[string]bool)}
	for _, b := range c.registry.Bindings() {
		if b.implicit || b.kind == setDeclaration || b.kind == mapDeclaration {
			continue
		}
		v.visit(node{key: b.key, view: c}, nil)
	}
	return errors.Join(v.errs...)
}

type validator struct {
	state map[node]visitState
	errs  []error
	seen  map[string]bool
}

func (v *validator) report(err error) {
	if msg := err.Error(); !v.seen[msg] {
		v.seen[msg] = true
		v.errs = append(v.errs, err)
	}
}

func (v *validator) visit(n node, path []Key) {
	switch v.state[n] {
	case visited:
		return
	case visiting:
		for i, k := range path {
			if k == n.key {
				cycle := append(append([]Key(nil), path[i:]...), n.key)
				v.report(CyclicDependencyError{Path: cycle})
				return
			}
		}
		return
	}
	v.state[n] = visiting
	path = append(path[:len(path):len(path)], n.key)

	for _, e := range v.edges(n) {
		for _, d := range e.binding.deps {
			if d.Kind == OptionalRequest && !e.owner.canResolve(d.Key) {
				continue
			}
			if !e.owner.canResolve(d.Key) {
				key := e.binding.key
				v.report(UnsatisfiedDependencyError{Key: d.Key, RequiredBy: &key, Component: e.owner.Name()})
				continue
			}
			if d.Kind == Instance || d.Kind == OptionalRequest {
				v.visit(node{key: d.Key, view: e.owner}, path)
			} else {
				// Still walk the target so its own deps are checked, on a fresh path.
				v.visit(node{key: d.Key, view: e.owner}, nil)
			}
		}
		if e.binding.kind == delegateBinding {
			if !e.owner.canResolve(e.binding.target) {
				key := e.binding.key
				v.report(UnsatisfiedDependencyError{Key: e.binding.target, RequiredBy: &key, Component: e.owner.Name()})
				continue
			}
			v.visit(node{key: e.binding.target, view: e.owner}, path)
		}
	}
	v.state[n] = visited
}

// edges returns the bindings a node resolves through, with their owners.
func (v *validator) edges(n node) []contribution {
	if b, owner := n.view.lookup(n.key); b != nil {
		return []contribution{{owner: owner, binding: b}}
	}
	src, _ := aggregateKey(n.key)
	var out []contribution
	for _, comp := range n.view.chain() {
		for _, b := range comp.registry.Contributions(src) {
			out = append(out, contribution{owner: comp, binding: b})
		}
	}
	return out
}
