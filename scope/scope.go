// Package scope implements the lexically scoped binding environment of
// the terminus evaluator: a name-to-value map per frame with a parent
// pointer forming a chain. Lookup walks leaf to root; the process-wide
// constants and builtin tables are consulted by the evaluator after the
// chain is exhausted, not here.
package scope

import "github.com/mlaass/terminus/value"

// Scope is one frame of the environment chain.
//
// A scope does not copy values on insert and does not own the values it
// stores beyond lookup; a caller that persists a value past the frame's
// life must clone it first. A child scope holds a reference to its
// parent and must not outlive it.
type Scope struct {
	// Variables maps names to their current values in this frame
	Variables map[string]value.Value

	// Parent points to the enclosing frame, forming the scope chain;
	// nil marks the root frame
	Parent *Scope
}

// NewScope creates a new frame with the given parent.
//
// Example usage:
//
//	root := NewScope(nil)        // root frame
//	call := NewScope(root)       // nested frame for a function call
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]value.Value),
		Parent:    parent,
	}
}

// LookUp searches for a name in this frame and all parent frames.
// Inner bindings shadow outer ones.
//
// Returns the bound value and true, or nil and false if the name is
// bound nowhere in the chain.
func (s *Scope) LookUp(name string) (value.Value, bool) {
	if s.Variables == nil {
		s.Variables = make(map[string]value.Value)
	}
	v, ok := s.Variables[name]
	if !ok && s.Parent != nil {
		return s.Parent.LookUp(name)
	}
	return v, ok
}

// Bind sets a name in the current frame only, shadowing any binding of
// the same name in a parent frame. Returns true if the name already
// existed in this frame.
func (s *Scope) Bind(name string, v value.Value) bool {
	if s.Variables == nil {
		s.Variables = make(map[string]value.Value)
	}
	_, has := s.Variables[name]
	s.Variables[name] = v
	return has
}
