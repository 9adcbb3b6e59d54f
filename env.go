package rlox

// An Env is one scope: a mapping from names to values, linked to the scope
// it nests within. A name mapped to a nil Value is declared but not yet
// initialized, which is distinct from not being mapped at all. Closures
// keep their defining Env reachable after the block that pushed it exits.
type Env struct {
	values map[string]Value
	parent *Env
}

// NewEnv creates a scope nested within parent. The global scope has a nil
// parent.
func NewEnv(parent *Env) *Env {
	return &Env{values: map[string]Value{}, parent: parent}
}

// Define binds name in this scope, shadowing any binding of the same name
// in enclosing scopes. A nil value declares the name uninitialized.
func (e *Env) Define(name string, value Value) {
	e.values[name] = value
}

// Assign rebinds the innermost existing binding of name, searching this
// scope and then outward. It reports whether a binding existed; assignment
// never creates one.
func (e *Env) Assign(name string, value Value) bool {
	for s := e; s != nil; s = s.parent {
		if _, ok := s.values[name]; ok {
			s.values[name] = value
			return true
		}
	}
	return false
}

// Get retrieves the value bound to name in the innermost scope that binds
// it. defined reports whether any scope binds name, and initialized whether
// the binding has a value; v is non-nil only if both hold.
func (e *Env) Get(name string) (v Value, defined, initialized bool) {
	for s := e; s != nil; s = s.parent {
		if v, ok := s.values[name]; ok {
			return v, true, v != nil
		}
	}
	return nil, false, false
}
