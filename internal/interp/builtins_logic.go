package interp

import (
	"github.com/cwbudde/go-simplelang/internal/ast"
	"github.com/cwbudde/go-simplelang/internal/object"
)

// Logical built-ins evaluate both operands eagerly (no short-circuit)
// and return int 0/1 under the global truthiness rule.

// builtinAnd returns 1 when both operands are truthy.
func (i *Interpreter) builtinAnd(args []*ast.Node) (object.Value, error) {
	left, right, err := i.evalPair(args)
	if err != nil {
		return nil, err
	}
	return boolValue(isTruthy(left) && isTruthy(right)), nil
}

// builtinOr returns 1 when either operand is truthy.
func (i *Interpreter) builtinOr(args []*ast.Node) (object.Value, error) {
	left, right, err := i.evalPair(args)
	if err != nil {
		return nil, err
	}
	return boolValue(isTruthy(left) || isTruthy(right)), nil
}

// builtinNot returns the logical negation of its operand.
func (i *Interpreter) builtinNot(args []*ast.Node) (object.Value, error) {
	v, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}
	return boolValue(!isTruthy(v)), nil
}
