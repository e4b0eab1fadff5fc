package interp

import (
	"github.com/cwbudde/go-simplelang/internal/ast"
	"github.com/cwbudde/go-simplelang/internal/errors"
	"github.com/cwbudde/go-simplelang/internal/object"
)

// evalNode evaluates a code node to a value, dispatching on its op.
// Literal ops construct the corresponding value; list children stay
// unevaluated code values until forced. The eval op performs variable
// lookup or call dispatch.
func (i *Interpreter) evalNode(node *ast.Node) (object.Value, error) {
	switch node.Op {
	case ast.OpInt:
		return &object.IntValue{Value: node.IntVal}, nil

	case ast.OpFloat:
		return &object.FloatValue{Value: node.FloatVal}, nil

	case ast.OpStr:
		return &object.StrValue{Value: node.StrVal}, nil

	case ast.OpName:
		return &object.NameValue{Value: node.StrVal}, nil

	case ast.OpList:
		elements := make([]object.Value, len(node.Children))
		for idx, child := range node.Children {
			elements[idx] = &object.CodeValue{Node: child}
		}
		return object.NewList(elements), nil

	case ast.OpEval:
		return i.evalTarget(node.Target)
	}

	return nil, errors.New(errors.Type, "Can't evaluate '%s' code.", node.Op)
}

// evalTarget handles the eval op. A name target is a variable lookup, a
// list target is a call, any other literal evaluates to itself ($3 is 3).
func (i *Interpreter) evalTarget(target *ast.Node) (object.Value, error) {
	switch target.Op {
	case ast.OpName:
		v, ok := i.lookupVariable(target.StrVal)
		if !ok {
			return nil, errors.New(errors.Lookup,
				"Failed to find the variable with the name '%s'.", target.StrVal)
		}
		return v, nil

	case ast.OpList:
		return i.evalCall(target.Children)

	default:
		return i.evalNode(target)
	}
}

// evalCall dispatches a call: the head is evaluated, name heads resolve a
// user binding first and a built-in second, and any other head must
// itself be a function value. Built-ins receive the unevaluated argument
// nodes; user functions receive eagerly evaluated values bound inside a
// freshly wound frame.
func (i *Interpreter) evalCall(items []*ast.Node) (object.Value, error) {
	if len(items) == 0 {
		return nil, errors.New(errors.Type, "Can't evaluate an empty list.")
	}

	head, err := i.evalNode(items[0])
	if err != nil {
		return nil, err
	}
	args := items[1:]

	var fn object.Value
	funcName := "Unnamed"

	if name, ok := head.(*object.NameValue); ok {
		funcName = name.Value

		bound, ok := i.lookupVariable(funcName)
		if !ok {
			b, ok := i.lookupBuiltin(funcName)
			if !ok {
				return nil, errors.New(errors.Lookup,
					"Function '%s' doesn't exist.", funcName)
			}
			return i.callBuiltin(funcName, b, args)
		}
		fn = bound
	} else {
		fn = head
	}

	fv, ok := fn.(*object.FuncValue)
	if !ok {
		return nil, errors.New(errors.Type, "Cannot call '%s'.", fn.Type())
	}
	return i.callFunc(funcName, fv, args)
}

// callBuiltin checks arity and invokes a built-in with the unevaluated
// argument nodes. A nil result becomes int 0.
func (i *Interpreter) callBuiltin(name string, b builtin, args []*ast.Node) (object.Value, error) {
	if len(args) != b.arity {
		return nil, errors.New(errors.Arg,
			"Function '%s' expected %d arguments, but it got %d.",
			name, b.arity, len(args))
	}

	result, err := b.fn(args)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = &object.IntValue{Value: 0}
	}
	return result, nil
}

// callFunc invokes a user-defined function: wind a frame, bind each
// parameter to the evaluated value of its argument, evaluate the body in
// order, and capture a return interrupt as the result. The frame is
// unwound on every exit path.
func (i *Interpreter) callFunc(name string, fv *object.FuncValue, args []*ast.Node) (object.Value, error) {
	if len(args) != len(fv.Params) {
		return nil, errors.New(errors.Arg,
			"Function '%s' expected %d arguments, but it got %d.",
			name, len(fv.Params), len(args))
	}

	i.windFrame()
	defer i.unwindFrame()

	for idx, param := range fv.Params {
		v, err := i.evalNode(args[idx])
		if err != nil {
			return nil, err
		}
		i.assignVariable(param, v)
	}

	var result object.Value
	for _, c := range fv.Body {
		v, err := i.force(c)
		if err != nil {
			if ret, ok := err.(*returnInterrupt); ok {
				return ret.value, nil
			}
			return nil, err
		}
		result = v
	}

	if result == nil {
		result = &object.IntValue{Value: 0}
	}
	return result, nil
}
