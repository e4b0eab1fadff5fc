package interp

import (
	"github.com/cwbudde/go-simplelang/internal/ast"
	"github.com/cwbudde/go-simplelang/internal/errors"
	"github.com/cwbudde/go-simplelang/internal/object"
)

// numericValue extracts the float64 payload of an int or float value.
func numericValue(v object.Value) (float64, bool) {
	switch val := v.(type) {
	case *object.IntValue:
		return float64(val.Value), true
	case *object.FloatValue:
		return val.Value, true
	}
	return 0, false
}

// compareOrdered implements the four ordered comparisons. Numbers compare
// numerically across int and float, strings lexicographically; any other
// operand combination is a type error using the operator's symbol.
func (i *Interpreter) compareOrdered(args []*ast.Node, symbol string, cmp func(int) bool) (object.Value, error) {
	left, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}
	right, err := i.evalNode(args[1])
	if err != nil {
		return nil, err
	}

	if lf, ok := numericValue(left); ok {
		if rf, ok := numericValue(right); ok {
			switch {
			case lf < rf:
				return boolValue(cmp(-1)), nil
			case lf > rf:
				return boolValue(cmp(1)), nil
			default:
				return boolValue(cmp(0)), nil
			}
		}
	}

	if ls, ok := left.(*object.StrValue); ok {
		if rs, ok := right.(*object.StrValue); ok {
			switch {
			case ls.Value < rs.Value:
				return boolValue(cmp(-1)), nil
			case ls.Value > rs.Value:
				return boolValue(cmp(1)), nil
			default:
				return boolValue(cmp(0)), nil
			}
		}
	}

	return nil, errors.New(errors.Type,
		"Can't find whether '%s' %s '%s'.", left.Type(), symbol, right.Type())
}

// builtinGeq implements >=.
func (i *Interpreter) builtinGeq(args []*ast.Node) (object.Value, error) {
	return i.compareOrdered(args, ">=", func(c int) bool { return c >= 0 })
}

// builtinGnq implements >.
func (i *Interpreter) builtinGnq(args []*ast.Node) (object.Value, error) {
	return i.compareOrdered(args, ">", func(c int) bool { return c > 0 })
}

// builtinLeq implements <=.
func (i *Interpreter) builtinLeq(args []*ast.Node) (object.Value, error) {
	return i.compareOrdered(args, "<=", func(c int) bool { return c <= 0 })
}

// builtinLnq implements <.
func (i *Interpreter) builtinLnq(args []*ast.Node) (object.Value, error) {
	return i.compareOrdered(args, "<", func(c int) bool { return c < 0 })
}

// valuesEqual compares two already-forced values. Values of different
// tags are unequal; int, float, str and name compare by payload; lists
// compare elementwise (forcing code elements) and lists of different
// lengths are unequal. Func and code values never compare equal.
func (i *Interpreter) valuesEqual(left, right object.Value) (bool, error) {
	if left.Type() != right.Type() {
		return false, nil
	}

	switch l := left.(type) {
	case *object.IntValue:
		return l.Value == right.(*object.IntValue).Value, nil
	case *object.FloatValue:
		return l.Value == right.(*object.FloatValue).Value, nil
	case *object.StrValue:
		return l.Value == right.(*object.StrValue).Value, nil
	case *object.NameValue:
		return l.Value == right.(*object.NameValue).Value, nil
	case *object.ListValue:
		r := right.(*object.ListValue)
		if len(l.Elements) != len(r.Elements) {
			return false, nil
		}
		for idx := range l.Elements {
			le, err := i.force(l.Elements[idx])
			if err != nil {
				return false, err
			}
			re, err := i.force(r.Elements[idx])
			if err != nil {
				return false, err
			}
			eq, err := i.valuesEqual(le, re)
			if err != nil {
				return false, err
			}
			if !eq {
				return false, nil
			}
		}
		return true, nil
	default:
		return false, nil
	}
}

// builtinEq implements value equality.
func (i *Interpreter) builtinEq(args []*ast.Node) (object.Value, error) {
	left, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}
	right, err := i.evalNode(args[1])
	if err != nil {
		return nil, err
	}

	eq, err := i.valuesEqual(left, right)
	if err != nil {
		return nil, err
	}
	return boolValue(eq), nil
}

// builtinNeq is the exact negation of eq.
func (i *Interpreter) builtinNeq(args []*ast.Node) (object.Value, error) {
	left, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}
	right, err := i.evalNode(args[1])
	if err != nil {
		return nil, err
	}

	eq, err := i.valuesEqual(left, right)
	if err != nil {
		return nil, err
	}
	return boolValue(!eq), nil
}
