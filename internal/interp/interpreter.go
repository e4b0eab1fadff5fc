// Package interp provides the evaluator and runtime for SimpleLang.
//
// The interpreter walks the code tree produced by the parser, consulting a
// stack of frames for variable bindings and a registry of built-in
// functions. Built-ins receive their arguments unevaluated, which is what
// gives special forms like if, while, func and let their lazy semantics;
// user-defined functions receive eagerly evaluated values.
package interp

import (
	"bufio"
	"io"
	"os"

	"github.com/cwbudde/go-simplelang/internal/errors"
	"github.com/cwbudde/go-simplelang/internal/lexer"
	"github.com/cwbudde/go-simplelang/internal/object"
	"github.com/cwbudde/go-simplelang/internal/parser"
)

// Interpreter evaluates SimpleLang code trees and manages the runtime
// state: the current frame, the built-in registry, and the session flags.
type Interpreter struct {
	output   io.Writer
	input    *bufio.Reader
	exit     func(int)
	frame    *Frame
	builtins map[string]builtin

	// calledMain latches once top-level evaluation has entered main, so
	// the user cannot invoke main directly. The REPL resets it per line.
	calledMain bool

	// calledPrint records whether output or print ran; the REPL uses it
	// to decide whether to emit a trailing newline.
	calledPrint bool
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithInput sets the reader used by the input built-in.
// Defaults to standard input.
func WithInput(r io.Reader) Option {
	return func(i *Interpreter) {
		if br, ok := r.(*bufio.Reader); ok {
			i.input = br
			return
		}
		i.input = bufio.NewReader(r)
	}
}

// WithExitFunc sets the function called by the exit built-in.
// Defaults to os.Exit; tests substitute a recorder.
func WithExitFunc(f func(int)) Option {
	return func(i *Interpreter) {
		i.exit = f
	}
}

// New creates an Interpreter writing through output, with a fresh global
// frame and the full built-in registry.
func New(output io.Writer, opts ...Option) *Interpreter {
	i := &Interpreter{
		output: output,
		input:  bufio.NewReader(os.Stdin),
		exit:   os.Exit,
		frame:  newFrame(nil, nil),
	}

	for _, opt := range opts {
		opt(i)
	}

	i.registerBuiltins()
	return i
}

// Run parses and evaluates a complete source text. Parse failures are
// reported as syntax errors; runtime failures propagate as ScriptErrors.
func (i *Interpreter) Run(src string) error {
	l := lexer.New(src)
	p := parser.New(l)

	root := p.Parse()
	if msgs := p.Errors(); len(msgs) > 0 {
		return errors.New(errors.Syntax, "%s", msgs[0])
	}

	_, err := i.evalNode(root)
	return err
}

// ResetSession clears the main latch so the next Run may enter main
// again. The REPL calls this before every line.
func (i *Interpreter) ResetSession() {
	i.calledMain = false
}

// Printed reports whether output or print ran since the last reset.
func (i *Interpreter) Printed() bool {
	return i.calledPrint
}

// ResetPrinted clears the printed flag.
func (i *Interpreter) ResetPrinted() {
	i.calledPrint = false
}

// force resolves a value to its evaluated form: identity for every
// variant except code, which is evaluated as a node.
func (i *Interpreter) force(v object.Value) (object.Value, error) {
	if c, ok := v.(*object.CodeValue); ok {
		return i.evalNode(c.Node)
	}
	return v, nil
}

// forceDeep recursively forces code values and list elements until the
// result contains only fully evaluated values. Used by early and print.
func (i *Interpreter) forceDeep(v object.Value) (object.Value, error) {
	switch val := v.(type) {
	case *object.CodeValue:
		ev, err := i.evalNode(val.Node)
		if err != nil {
			return nil, err
		}
		return i.forceDeep(ev)
	case *object.ListValue:
		elements := make([]object.Value, len(val.Elements))
		for idx, e := range val.Elements {
			fe, err := i.forceDeep(e)
			if err != nil {
				return nil, err
			}
			elements[idx] = fe
		}
		return object.NewList(elements), nil
	default:
		return v, nil
	}
}

// isTruthy applies the global truthiness rule: int 0 is false, every
// other value is true.
func isTruthy(v object.Value) bool {
	if iv, ok := v.(*object.IntValue); ok {
		return iv.Value != 0
	}
	return true
}
