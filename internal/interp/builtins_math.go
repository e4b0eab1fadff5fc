package interp

import (
	"strings"

	"github.com/cwbudde/go-simplelang/internal/ast"
	"github.com/cwbudde/go-simplelang/internal/errors"
	"github.com/cwbudde/go-simplelang/internal/object"
)

// evalPair evaluates the two operand nodes of a binary built-in.
func (i *Interpreter) evalPair(args []*ast.Node) (object.Value, object.Value, error) {
	left, err := i.evalNode(args[0])
	if err != nil {
		return nil, nil, err
	}
	right, err := i.evalNode(args[1])
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

// builtinAdd adds numbers (int when both are int, float when mixed),
// concatenates strings and concatenates lists.
func (i *Interpreter) builtinAdd(args []*ast.Node) (object.Value, error) {
	left, right, err := i.evalPair(args)
	if err != nil {
		return nil, err
	}

	if li, ok := left.(*object.IntValue); ok {
		if ri, ok := right.(*object.IntValue); ok {
			return &object.IntValue{Value: li.Value + ri.Value}, nil
		}
	}
	if lf, ok := numericValue(left); ok {
		if rf, ok := numericValue(right); ok {
			return &object.FloatValue{Value: lf + rf}, nil
		}
	}
	if ls, ok := left.(*object.StrValue); ok {
		if rs, ok := right.(*object.StrValue); ok {
			return &object.StrValue{Value: ls.Value + rs.Value}, nil
		}
	}
	if ll, ok := left.(*object.ListValue); ok {
		if rl, ok := right.(*object.ListValue); ok {
			elements := make([]object.Value, 0, len(ll.Elements)+len(rl.Elements))
			elements = append(elements, ll.Elements...)
			elements = append(elements, rl.Elements...)
			return object.NewList(elements), nil
		}
	}

	return nil, errors.New(errors.Type,
		"Can't 'add' '%s' and '%s'.", left.Type(), right.Type())
}

// builtinSub subtracts numbers.
func (i *Interpreter) builtinSub(args []*ast.Node) (object.Value, error) {
	left, right, err := i.evalPair(args)
	if err != nil {
		return nil, err
	}

	if li, ok := left.(*object.IntValue); ok {
		if ri, ok := right.(*object.IntValue); ok {
			return &object.IntValue{Value: li.Value - ri.Value}, nil
		}
	}
	if lf, ok := numericValue(left); ok {
		if rf, ok := numericValue(right); ok {
			return &object.FloatValue{Value: lf - rf}, nil
		}
	}

	return nil, errors.New(errors.Type,
		"Can't 'subtract' '%s' from '%s'.", right.Type(), left.Type())
}

// builtinMul multiplies numbers and repeats sequences: str×int and
// list×int (in either operand order) repeat the sequence.
func (i *Interpreter) builtinMul(args []*ast.Node) (object.Value, error) {
	left, right, err := i.evalPair(args)
	if err != nil {
		return nil, err
	}

	if li, ok := left.(*object.IntValue); ok {
		if ri, ok := right.(*object.IntValue); ok {
			return &object.IntValue{Value: li.Value * ri.Value}, nil
		}
	}
	if lf, ok := numericValue(left); ok {
		if rf, ok := numericValue(right); ok {
			return &object.FloatValue{Value: lf * rf}, nil
		}
	}

	if s, n, ok := strIntPair(left, right); ok {
		return &object.StrValue{Value: repeatStr(s.Value, n.Value)}, nil
	}
	if l, n, ok := listIntPair(left, right); ok {
		return repeatList(l, n.Value), nil
	}

	return nil, errors.New(errors.Type,
		"Can't 'multiply' '%s' and '%s'.", left.Type(), right.Type())
}

// strIntPair matches (str, int) in either order.
func strIntPair(a, b object.Value) (*object.StrValue, *object.IntValue, bool) {
	if s, ok := a.(*object.StrValue); ok {
		if n, ok := b.(*object.IntValue); ok {
			return s, n, true
		}
	}
	if s, ok := b.(*object.StrValue); ok {
		if n, ok := a.(*object.IntValue); ok {
			return s, n, true
		}
	}
	return nil, nil, false
}

// listIntPair matches (list, int) in either order.
func listIntPair(a, b object.Value) (*object.ListValue, *object.IntValue, bool) {
	if l, ok := a.(*object.ListValue); ok {
		if n, ok := b.(*object.IntValue); ok {
			return l, n, true
		}
	}
	if l, ok := b.(*object.ListValue); ok {
		if n, ok := a.(*object.IntValue); ok {
			return l, n, true
		}
	}
	return nil, nil, false
}

// repeatStr repeats s n times; a non-positive count yields the empty
// string.
func repeatStr(s string, n int64) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, int(n))
}

// repeatList concatenates n copies of the list's elements.
func repeatList(l *object.ListValue, n int64) *object.ListValue {
	if n <= 0 {
		return object.NewList(nil)
	}
	elements := make([]object.Value, 0, int(n)*len(l.Elements))
	for k := int64(0); k < n; k++ {
		elements = append(elements, l.Elements...)
	}
	return object.NewList(elements)
}

// builtinDiv divides numbers. Integer division truncates toward zero;
// dividing by zero is an error for both int and float operands.
func (i *Interpreter) builtinDiv(args []*ast.Node) (object.Value, error) {
	left, right, err := i.evalPair(args)
	if err != nil {
		return nil, err
	}

	if li, ok := left.(*object.IntValue); ok {
		if ri, ok := right.(*object.IntValue); ok {
			if ri.Value == 0 {
				return nil, errors.New(errors.DivByZero, "Dividing by zero is illegal.")
			}
			return &object.IntValue{Value: li.Value / ri.Value}, nil
		}
	}
	if lf, ok := numericValue(left); ok {
		if rf, ok := numericValue(right); ok {
			if rf == 0 {
				return nil, errors.New(errors.DivByZero, "Dividing by zero is illegal.")
			}
			return &object.FloatValue{Value: lf / rf}, nil
		}
	}

	return nil, errors.New(errors.Type,
		"Can't 'divide' '%s' by '%s'.", left.Type(), right.Type())
}

// builtinMod computes the remainder of two ints.
func (i *Interpreter) builtinMod(args []*ast.Node) (object.Value, error) {
	left, right, err := i.evalPair(args)
	if err != nil {
		return nil, err
	}

	li, ok := left.(*object.IntValue)
	if !ok {
		return nil, errors.New(errors.Type,
			"First argument of 'mod' should be 'int', not '%s'.", left.Type())
	}
	ri, ok := right.(*object.IntValue)
	if !ok {
		return nil, errors.New(errors.Type,
			"Second argument of 'mod' should be 'int', not '%s'.", right.Type())
	}

	if ri.Value == 0 {
		return nil, errors.New(errors.DivByZero, "Dividing by zero is illegal.")
	}
	return &object.IntValue{Value: li.Value % ri.Value}, nil
}

// builtinNeg negates a number, preserving its tag.
func (i *Interpreter) builtinNeg(args []*ast.Node) (object.Value, error) {
	v, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}

	switch val := v.(type) {
	case *object.IntValue:
		return &object.IntValue{Value: -val.Value}, nil
	case *object.FloatValue:
		return &object.FloatValue{Value: -val.Value}, nil
	default:
		return nil, errors.New(errors.Type,
			"Argument of 'neg' should be 'int' or 'float', not '%s'.", v.Type())
	}
}
