package container

import (
	"strconv"
	"strings"
)

// Every configuration or resolution failure is one of the typed errors below.
// None of them is transient: they signal a wiring mistake and are never retried.
// Match them with errors.As.

// DuplicateBindingError is returned when a key is bound twice in one component,
// or a child component rebinds a key its ancestors already bind.
type DuplicateBindingError struct {
	Key    Key
	Module string
}

func (e DuplicateBindingError) Error() string {
	msg := "container: duplicate binding for " + e.Key.String()
	if e.Module != "" {
		msg += " in module " + strconv.Quote(e.Module)
	}
	return msg
}

// DuplicateMapKeyError is returned when two map contributions share a key.
type DuplicateMapKeyError struct {
	Key    Key
	MapKey string
}

func (e DuplicateMapKeyError) Error() string {
	return "container: duplicate map key " + strconv.Quote(e.MapKey) + " for " + e.Key.String()
}

// CyclicDependencyError is returned when a key depends on itself.
// Path starts and ends with the same key.
type CyclicDependencyError struct {
	Path []Key
}

func (e CyclicDependencyError) Error() string {
	parts := make([]string, len(e.Path))
	for i, k := range e.Path {
		parts[i] = k.String()
	}
	return "container: dependency cycle " + strings.Join(parts, " -> ")
}

// UnsatisfiedDependencyError is returned when no component in the chain binds Key.
type UnsatisfiedDependencyError struct {
	Key        Key
	RequiredBy *Key
	Component  string
}

func (e UnsatisfiedDependencyError) Error() string {
	msg := "container: no binding for " + e.Key.String()
	if e.RequiredBy != nil {
		msg += " required by " + e.RequiredBy.String()
	}
	if e.Component != "" {
		msg += " in component " + strconv.Quote(e.Component)
	}
	return msg
}

// MissingModuleError is returned by Build when a required module was not supplied.
type MissingModuleError struct {
	Component string
	Module    string
}

func (e MissingModuleError) Error() string {
	return "container: component " + strconv.Quote(e.Component) + " requires module " + strconv.Quote(e.Module)
}

// MissingBoundInstanceError is returned by Build when a required instance was not bound.
type MissingBoundInstanceError struct {
	Component string
	Key       Key
}

func (e MissingBoundInstanceError) Error() string {
	return "container: component " + strconv.Quote(e.Component) + " requires bound instance " + e.Key.String()
}

// UnknownScopeError is returned when no component in the chain hosts a scope.
type UnknownScopeError struct {
	Key       Key
	Scope     Scope
	Component string
}

func (e UnknownScopeError) Error() string {
	return "container: scope " + strconv.Quote(string(e.Scope)) + " of " + e.Key.String() +
		" is not hosted by component " + strconv.Quote(e.Component) + " or its ancestors"
}

// InvalidBindingError is returned when a binding cannot work as declared,
// e.g. delegating to a type that does not implement the bound type.
type InvalidBindingError struct {
	Key    Key
	Reason string
}

func (e InvalidBindingError) Error() string {
	return "container: invalid binding for " + e.Key.String() + ": " + e.Reason
}

// ProvisionError wraps an error returned (or a panic raised) by a factory.
type ProvisionError struct {
	Key Key
	Err error
}

func (e ProvisionError) Error() string {
	return "container: provide " + e.Key.String() + ": " + e.Err.Error()
}

func (e ProvisionError) Unwrap() error { return e.Err }
