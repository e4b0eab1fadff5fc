package interp

import (
	"github.com/cwbudde/go-simplelang/internal/ast"
	"github.com/cwbudde/go-simplelang/internal/errors"
	"github.com/cwbudde/go-simplelang/internal/object"
)

// builtinMain is the top-level entry point. The parser arranges for the
// whole source to be evaluated as $(main (expr…)); the latch makes a
// second call — necessarily from user code — an error. Interrupts that
// escape a top-level expression are swallowed here.
func (i *Interpreter) builtinMain(args []*ast.Node) (object.Value, error) {
	if i.calledMain {
		return nil, errors.New(errors.User, "'main' can't be called by the user.")
	}
	i.calledMain = true

	codes, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}
	list, ok := codes.(*object.ListValue)
	if !ok {
		return nil, errors.New(errors.Type,
			"Argument of 'main' should be 'list', not '%s'.", codes.Type())
	}

	for _, c := range list.Elements {
		if _, err := i.force(c); err != nil {
			if isInterrupt(err) {
				continue
			}
			return nil, err
		}
	}
	return nil, nil
}

// builtinEarly evaluates its argument and then recursively forces any
// nested code and list elements to fully evaluated values.
func (i *Interpreter) builtinEarly(args []*ast.Node) (object.Value, error) {
	v, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}
	return i.forceDeep(v)
}

// builtinExit terminates the process with the given integer status,
// clamped to zero when negative.
func (i *Interpreter) builtinExit(args []*ast.Node) (object.Value, error) {
	status, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}

	iv, ok := status.(*object.IntValue)
	if !ok {
		return nil, errors.New(errors.Type,
			"Argument of 'exit' should be 'int', not '%s'.", status.Type())
	}

	code := iv.Value
	if code < 0 {
		code = 0
	}
	i.exit(int(code))
	return nil, nil
}

// builtinError raises a user error with the given string message.
func (i *Interpreter) builtinError(args []*ast.Node) (object.Value, error) {
	msg, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}

	sv, ok := msg.(*object.StrValue)
	if !ok {
		return nil, errors.New(errors.Type,
			"Argument of 'error' should be 'str', not '%s'.", msg.Type())
	}
	return nil, errors.New(errors.User, "%s", sv.Value)
}

// builtinLet binds a copy of the value to the name in the current frame
// and returns the value itself.
func (i *Interpreter) builtinLet(args []*ast.Node) (object.Value, error) {
	name, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}
	v, err := i.evalNode(args[1])
	if err != nil {
		return nil, err
	}

	nv, ok := name.(*object.NameValue)
	if !ok {
		return nil, errors.New(errors.Type,
			"First argument of 'let' should be 'name', not '%s'.", name.Type())
	}

	// The copy forces pass-by-value semantics for the binding.
	i.assignVariable(nv.Value, v.Copy())
	return v, nil
}

// builtinFunc constructs a function value from a parameter name list and
// a body list. The body elements stay unevaluated.
func (i *Interpreter) builtinFunc(args []*ast.Node) (object.Value, error) {
	paramsRaw, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}
	bodyRaw, err := i.evalNode(args[1])
	if err != nil {
		return nil, err
	}

	paramList, ok := paramsRaw.(*object.ListValue)
	if !ok {
		return nil, errors.New(errors.Type,
			"First argument of 'func' should be 'list', not '%s'.", paramsRaw.Type())
	}
	bodyList, ok := bodyRaw.(*object.ListValue)
	if !ok {
		return nil, errors.New(errors.Type,
			"Second argument of 'func' should be 'list', not '%s'.", bodyRaw.Type())
	}

	params := make([]string, 0, len(paramList.Elements))
	for _, raw := range paramList.Elements {
		p, err := i.force(raw)
		if err != nil {
			return nil, err
		}
		name, ok := p.(*object.NameValue)
		if !ok {
			return nil, errors.New(errors.Type,
				"Each item of the first argument of 'func' should be 'name', not '%s'.",
				p.Type())
		}
		params = append(params, name.Value)
	}

	body := make([]object.Value, len(bodyList.Elements))
	copy(body, bodyList.Elements)

	return &object.FuncValue{Params: params, Body: body}, nil
}

// builtinType returns the type tag of the evaluated argument as a string.
func (i *Interpreter) builtinType(args []*ast.Node) (object.Value, error) {
	v, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}
	return &object.StrValue{Value: v.Type()}, nil
}

// builtinIsType tests a value against a tag string. Besides the concrete
// tags, 'any' matches everything, 'num' matches int and float, and 'seq'
// matches str and list.
func (i *Interpreter) builtinIsType(args []*ast.Node) (object.Value, error) {
	v, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}
	tag, err := i.evalNode(args[1])
	if err != nil {
		return nil, err
	}

	sv, ok := tag.(*object.StrValue)
	if !ok {
		return nil, errors.New(errors.Type,
			"Second argument of 'is_type' should be 'str', not '%s'.", tag.Type())
	}

	match := false
	switch sv.Value {
	case "any":
		match = true
	case "num":
		match = v.Type() == object.IntType || v.Type() == object.FloatType
	case "seq":
		match = v.Type() == object.StrType || v.Type() == object.ListType
	default:
		match = v.Type() == sv.Value
	}

	return boolValue(match), nil
}

// builtinCopy returns a copy of the evaluated argument, deep for lists.
func (i *Interpreter) builtinCopy(args []*ast.Node) (object.Value, error) {
	v, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}
	return v.Copy(), nil
}

// boolValue converts a Go bool to the language's int 0/1 representation.
func boolValue(b bool) *object.IntValue {
	if b {
		return &object.IntValue{Value: 1}
	}
	return &object.IntValue{Value: 0}
}
