package interp

import (
	"strconv"
	"strings"

	"github.com/cwbudde/go-simplelang/internal/ast"
	"github.com/cwbudde/go-simplelang/internal/errors"
	"github.com/cwbudde/go-simplelang/internal/object"
)

// builtinToInt converts int (copy), float (truncation toward zero) and
// str (decimal parse) to int.
func (i *Interpreter) builtinToInt(args []*ast.Node) (object.Value, error) {
	v, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}

	switch val := v.(type) {
	case *object.IntValue:
		return val.Copy(), nil
	case *object.FloatValue:
		return &object.IntValue{Value: int64(val.Value)}, nil
	case *object.StrValue:
		n, err := strconv.ParseInt(strings.TrimSpace(val.Value), 10, 64)
		if err != nil {
			return nil, errors.New(errors.Type,
				"Failed to convert the string '%s' to integer.", val.Value)
		}
		return &object.IntValue{Value: n}, nil
	default:
		return nil, errors.New(errors.Type,
			"Can't convert '%s' to 'int'.", v.Type())
	}
}

// builtinToFloat converts int (widening), float (copy) and str (parse)
// to float.
func (i *Interpreter) builtinToFloat(args []*ast.Node) (object.Value, error) {
	v, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}

	switch val := v.(type) {
	case *object.IntValue:
		return &object.FloatValue{Value: float64(val.Value)}, nil
	case *object.FloatValue:
		return val.Copy(), nil
	case *object.StrValue:
		f, err := strconv.ParseFloat(strings.TrimSpace(val.Value), 64)
		if err != nil {
			return nil, errors.New(errors.Type,
				"Failed to convert the string '%s' to floating-point number.", val.Value)
		}
		return &object.FloatValue{Value: f}, nil
	default:
		return nil, errors.New(errors.Type,
			"Can't convert '%s' to 'float'.", v.Type())
	}
}

// builtinToStr converts any value to its string form; strings copy.
func (i *Interpreter) builtinToStr(args []*ast.Node) (object.Value, error) {
	v, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}

	if sv, ok := v.(*object.StrValue); ok {
		return sv.Copy(), nil
	}
	return &object.StrValue{Value: v.String()}, nil
}

// builtinToList converts a str to a list of one-character strings and
// copies a list; everything else is an error.
func (i *Interpreter) builtinToList(args []*ast.Node) (object.Value, error) {
	v, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}

	switch val := v.(type) {
	case *object.StrValue:
		runes := []rune(val.Value)
		elements := make([]object.Value, len(runes))
		for idx, r := range runes {
			elements[idx] = &object.StrValue{Value: string(r)}
		}
		return object.NewList(elements), nil
	case *object.ListValue:
		return val.Copy(), nil
	default:
		return nil, errors.New(errors.Type,
			"Can't convert '%s' to 'list'.", v.Type())
	}
}
