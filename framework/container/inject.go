package container

import "errors"

// ── Members injection ─────────────────────────────────────────────────────────

// InjectionPoint is one field a Target wants filled.
type InjectionPoint struct {
	dep    Dependency
	assign func(v any)
}

// Dependency returns what the point requests.
func (p InjectionPoint) Dependency() Dependency { return p.dep }

// Inject returns a point filling *dst with the dependency's value.
//
//	func (s *Screen) InjectionPoints() []container.InjectionPoint {
//	    return []container.InjectionPoint{
//	        container.Inject(&s.Computer, container.Need[*hardware.Computer]()),
//	        container.Inject(&s.LazyCPU, container.NeedLazy[hardware.CPU]()),
//	    }
//	}
func Inject[T any](dst *T, dep Dep[T]) InjectionPoint {
	return InjectionPoint{dep: dep.dep, assign: func(v any) { *dst = cast[T](v) }}
}

// Field is Inject for a plain instance request.
func Field[T any](dst *T, qualifier ...any) InjectionPoint {
	return Inject(dst, Need[T](qualifier...))
}

// Target is a value whose fields the container fills after construction.
type Target interface {
	InjectionPoints() []InjectionPoint
}

// Inject fills every injection point of target. All points are resolved
// before any is assigned: on error the target is left untouched.
func (c *Component) Inject(target Target) error {
	if target == nil {
		return errors.New("container: inject into nil target")
	}
	points := target.InjectionPoints()
	values := make([]any, len(points))
	for i, p := range points {
		v, err := c.resolveDependency(p.dep, nil, nil, nil)
		if err != nil {
			return err
		}
		values[i] = v
	}
	for i, p := range points {
		p.assign(values[i])
	}
	return nil
}

// MembersInjector injects targets of one type from a fixed component.
type MembersInjector[T Target] struct {
	c *Component
}

// MembersInjectorFor returns an injector for T bound to c.
func MembersInjectorFor[T Target](c *Component) MembersInjector[T] {
	return MembersInjector[T]{c: c}
}

// InjectMembers fills target.
func (m MembersInjector[T]) InjectMembers(target T) error {
	return m.c.Inject(target)
}

// InjectAndReturn fills target and returns it, for one-line construction.
//
//	screen, err := container.InjectAndReturn(c, &Screen{})
func InjectAndReturn[T Target](c *Component, target T) (T, error) {
	if err := c.Inject(target); err != nil {
		return target, err
	}
	return target, nil
}
