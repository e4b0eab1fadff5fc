package interp

import "github.com/cwbudde/go-simplelang/internal/object"

// Frame maps names to values and links to its parent frame. Frames form a
// strict stack: windFrame pushes a child whose bindings start as a
// snapshot of the caller's, unwindFrame pops back to the parent. The
// snapshot gives a function body access to every name visible at the call
// site while keeping its writes isolated from the caller.
type Frame struct {
	parent *Frame
	vars   map[string]object.Value
}

// newFrame creates a frame with the given parent and initial bindings.
// A nil vars map creates an empty frame.
func newFrame(parent *Frame, vars map[string]object.Value) *Frame {
	if vars == nil {
		vars = make(map[string]object.Value)
	}
	return &Frame{parent: parent, vars: vars}
}

// windFrame pushes a new current frame seeded with a snapshot of the
// caller's bindings.
func (i *Interpreter) windFrame() {
	snapshot := make(map[string]object.Value, len(i.frame.vars))
	for name, v := range i.frame.vars {
		snapshot[name] = v
	}
	i.frame = newFrame(i.frame, snapshot)
}

// unwindFrame pops the current frame. Callers pair every windFrame with
// an unwindFrame on all exit paths, including error propagation.
func (i *Interpreter) unwindFrame() {
	i.frame = i.frame.parent
}

// assignVariable binds a copy of a value to a name in the current frame.
func (i *Interpreter) assignVariable(name string, v object.Value) {
	i.frame.vars[name] = v.Copy()
}

// lookupVariable resolves a name in the current frame.
func (i *Interpreter) lookupVariable(name string) (object.Value, bool) {
	v, ok := i.frame.vars[name]
	return v, ok
}
