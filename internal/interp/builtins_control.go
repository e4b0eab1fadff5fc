package interp

import (
	"github.com/cwbudde/go-simplelang/internal/ast"
	"github.com/cwbudde/go-simplelang/internal/errors"
	"github.com/cwbudde/go-simplelang/internal/object"
)

// builtinIf evaluates the condition and, when truthy, every element of
// the code list in order, returning the value of the last one.
func (i *Interpreter) builtinIf(args []*ast.Node) (object.Value, error) {
	cond, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}
	codes, err := i.evalNode(args[1])
	if err != nil {
		return nil, err
	}

	list, ok := codes.(*object.ListValue)
	if !ok {
		return nil, errors.New(errors.Type,
			"Second argument of 'if' should be 'list', not '%s'.", codes.Type())
	}

	if !isTruthy(cond) {
		return nil, nil
	}
	return i.runBranch(list)
}

// builtinIfElse evaluates one of the two code lists depending on the
// condition.
func (i *Interpreter) builtinIfElse(args []*ast.Node) (object.Value, error) {
	cond, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}
	thenRaw, err := i.evalNode(args[1])
	if err != nil {
		return nil, err
	}
	elseRaw, err := i.evalNode(args[2])
	if err != nil {
		return nil, err
	}

	thenList, ok := thenRaw.(*object.ListValue)
	if !ok {
		return nil, errors.New(errors.Type,
			"Second argument of 'if_else' should be 'list', not '%s'.", thenRaw.Type())
	}
	elseList, ok := elseRaw.(*object.ListValue)
	if !ok {
		return nil, errors.New(errors.Type,
			"Third argument of 'if_else' should be 'list', not '%s'.", elseRaw.Type())
	}

	if isTruthy(cond) {
		return i.runBranch(thenList)
	}
	return i.runBranch(elseList)
}

// runBranch forces every element of a code list and returns the last
// value, or nil for an empty list.
func (i *Interpreter) runBranch(list *object.ListValue) (object.Value, error) {
	var result object.Value
	for _, c := range list.Elements {
		v, err := i.force(c)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// builtinFor binds the loop name to each element of the list in turn and
// evaluates the body. A break interrupt exits the loop, a continue
// interrupt skips to the next element; a return interrupt propagates.
func (i *Interpreter) builtinFor(args []*ast.Node) (object.Value, error) {
	name, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}
	seq, err := i.evalNode(args[1])
	if err != nil {
		return nil, err
	}
	codes, err := i.evalNode(args[2])
	if err != nil {
		return nil, err
	}

	nv, ok := name.(*object.NameValue)
	if !ok {
		return nil, errors.New(errors.Type,
			"First argument of 'for' should be 'name', not '%s'.", name.Type())
	}
	items, ok := seq.(*object.ListValue)
	if !ok {
		return nil, errors.New(errors.Type,
			"Second argument of 'for' should be 'list', not '%s'.", seq.Type())
	}
	body, ok := codes.(*object.ListValue)
	if !ok {
		return nil, errors.New(errors.Type,
			"Third argument of 'for' should be 'list', not '%s'.", codes.Type())
	}

	for _, item := range items.Elements {
		v, err := i.force(item)
		if err != nil {
			return nil, err
		}
		i.assignVariable(nv.Value, v)

		stop, err := i.runLoopBody(body)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
	}
	return nil, nil
}

// builtinWhile re-evaluates the condition expression before each
// iteration and runs the body with the same interrupt semantics as for.
func (i *Interpreter) builtinWhile(args []*ast.Node) (object.Value, error) {
	codes, err := i.evalNode(args[1])
	if err != nil {
		return nil, err
	}
	body, ok := codes.(*object.ListValue)
	if !ok {
		return nil, errors.New(errors.Type,
			"Second argument of 'while' should be 'list', not '%s'.", codes.Type())
	}

	for {
		cond, err := i.evalNode(args[0])
		if err != nil {
			return nil, err
		}
		if !isTruthy(cond) {
			return nil, nil
		}

		stop, err := i.runLoopBody(body)
		if err != nil {
			return nil, err
		}
		if stop {
			return nil, nil
		}
	}
}

// runLoopBody forces every element of a loop body, handling loop
// interrupts. It reports whether the enclosing loop should stop.
func (i *Interpreter) runLoopBody(body *object.ListValue) (stop bool, err error) {
	for _, c := range body.Elements {
		if _, err := i.force(c); err != nil {
			if li, ok := err.(*loopInterrupt); ok {
				return li.status == loopBreak, nil
			}
			return false, err
		}
	}
	return false, nil
}

// builtinReturn raises a return interrupt carrying the evaluated value.
func (i *Interpreter) builtinReturn(args []*ast.Node) (object.Value, error) {
	v, err := i.evalNode(args[0])
	if err != nil {
		return nil, err
	}
	return nil, &returnInterrupt{value: v}
}

// builtinBreak raises a break interrupt.
func (i *Interpreter) builtinBreak([]*ast.Node) (object.Value, error) {
	return nil, &loopInterrupt{status: loopBreak}
}

// builtinContinue raises a continue interrupt.
func (i *Interpreter) builtinContinue([]*ast.Node) (object.Value, error) {
	return nil, &loopInterrupt{status: loopContinue}
}
