package interp

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-simplelang/internal/ast"
	"github.com/cwbudde/go-simplelang/internal/errors"
	"github.com/cwbudde/go-simplelang/internal/object"
)

// builtinInput prints a string prompt and returns one line read from the
// input, with the trailing newline stripped.
func (i *Interpreter) builtinInput(args []*ast.Node) (object.Value, error) {
	msg, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}

	sv, ok := msg.(*object.StrValue)
	if !ok {
		return nil, errors.New(errors.Type,
			"Argument of 'input' should be 'str', not '%s'.", msg.Type())
	}

	fmt.Fprint(i.output, sv.Value)

	line, _ := i.input.ReadString('\n')
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return &object.StrValue{Value: line}, nil
}

// builtinOutput prints the value's string form without forcing nested
// code, and marks the session as having printed.
func (i *Interpreter) builtinOutput(args []*ast.Node) (object.Value, error) {
	v, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}

	i.calledPrint = true
	fmt.Fprint(i.output, v.String())
	return nil, nil
}

// builtinPrint fully evaluates the value (as early does) before printing
// its string form.
func (i *Interpreter) builtinPrint(args []*ast.Node) (object.Value, error) {
	v, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}

	i.calledPrint = true
	deep, err := i.forceDeep(v)
	if err != nil {
		return nil, err
	}
	fmt.Fprint(i.output, deep.String())
	return nil, nil
}
