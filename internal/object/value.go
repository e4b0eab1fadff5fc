// Package object defines the runtime value model of SimpleLang.
//
// Every value carries exactly one type tag which dictates the operations
// that are legal on it. Values are acyclic; lists copy their elements on
// construction and Copy is deep for lists, so the language behaves as
// pass-by-value throughout.
//
// Evaluation of code values depends on the frame stack and the built-in
// registry, so it lives on the interpreter rather than on the value.
package object

import (
	"strconv"
	"strings"

	"github.com/cwbudde/go-simplelang/internal/ast"
)

// Type tags. Value.Type() returns one of these.
const (
	IntType   = "int"
	FloatType = "float"
	StrType   = "str"
	ListType  = "list"
	NameType  = "name"
	FuncType  = "func"
	CodeType  = "code"
)

// Value represents a runtime value in the SimpleLang interpreter.
type Value interface {
	// Type returns the type tag of the value (e.g. "int", "list").
	Type() string
	// String returns the display form of the value.
	String() string
	// Copy returns an independent copy of the value. The copy is deep
	// for lists; code values share their immutable node.
	Copy() Value
}

// IntValue represents an integer value.
type IntValue struct {
	Value int64
}

// Type returns "int".
func (v *IntValue) Type() string { return IntType }

// String returns the decimal representation of the integer.
func (v *IntValue) String() string { return strconv.FormatInt(v.Value, 10) }

// Copy returns a new IntValue with the same payload.
func (v *IntValue) Copy() Value { return &IntValue{Value: v.Value} }

// FloatValue represents a floating-point value.
type FloatValue struct {
	Value float64
}

// Type returns "float".
func (v *FloatValue) Type() string { return FloatType }

// String formats the float with six fractional digits, then strips
// trailing zeros while always keeping at least one digit after the
// decimal point: 3.0 stays "3.0", 3.14 renders as "3.14".
func (v *FloatValue) String() string {
	raw := strconv.FormatFloat(v.Value, 'f', 6, 64)
	if !strings.HasSuffix(raw, "0") {
		return raw
	}

	stripped := strings.TrimRight(raw, "0")
	if strings.HasSuffix(stripped, ".") {
		return stripped + "0"
	}
	return stripped
}

// Copy returns a new FloatValue with the same payload.
func (v *FloatValue) Copy() Value { return &FloatValue{Value: v.Value} }

// StrValue represents an immutable string value.
type StrValue struct {
	Value string
}

// Type returns "str".
func (v *StrValue) Type() string { return StrType }

// String returns the raw characters, unquoted.
func (v *StrValue) String() string { return v.Value }

// Copy returns a new StrValue with the same payload.
func (v *StrValue) Copy() Value { return &StrValue{Value: v.Value} }

// ListValue represents an ordered sequence of values. Elements may still
// be unevaluated CodeValues; they are forced on demand by the evaluator.
type ListValue struct {
	Elements []Value
}

// NewList constructs a ListValue, copying every element.
func NewList(elements []Value) *ListValue {
	copied := make([]Value, len(elements))
	for i, e := range elements {
		copied[i] = e.Copy()
	}
	return &ListValue{Elements: copied}
}

// Type returns "list".
func (v *ListValue) Type() string { return ListType }

// String returns "(e1 e2 …)"; the empty list renders as "()".
func (v *ListValue) String() string {
	parts := make([]string, len(v.Elements))
	for i, e := range v.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Copy returns a deep copy of the list.
func (v *ListValue) Copy() Value {
	return NewList(v.Elements)
}

// NameValue represents an identifier used symbolically, e.g. as the
// binding target of let or the loop variable of for.
type NameValue struct {
	Value string
}

// Type returns "name".
func (v *NameValue) Type() string { return NameType }

// String returns "<Name X>".
func (v *NameValue) String() string { return "<Name " + v.Value + ">" }

// Copy returns a new NameValue with the same payload.
func (v *NameValue) Copy() Value { return &NameValue{Value: v.Value} }

// FuncValue represents a user-defined function: parameter names plus a
// captured body. The body elements are usually code values; there is no
// closure over the defining frame beyond the parameters.
type FuncValue struct {
	Params []string
	Body   []Value
}

// Type returns "func".
func (v *FuncValue) Type() string { return FuncType }

// String returns "<Func (var_1 var_2 …)>" with positional parameter
// placeholders rather than the declared names.
func (v *FuncValue) String() string {
	names := make([]string, len(v.Params))
	for i := range v.Params {
		names[i] = "var_" + strconv.Itoa(i+1)
	}
	return "<Func (" + strings.Join(names, " ") + ")>"
}

// Copy returns a FuncValue sharing the immutable body nodes but with
// independent slices.
func (v *FuncValue) Copy() Value {
	params := make([]string, len(v.Params))
	copy(params, v.Params)
	body := make([]Value, len(v.Body))
	copy(body, v.Body)
	return &FuncValue{Params: params, Body: body}
}

// CodeValue wraps an unevaluated code node as a first-class value.
type CodeValue struct {
	Node *ast.Node
}

// Type returns "code".
func (v *CodeValue) Type() string { return CodeType }

// String returns the node's "<Code op : arg>" form.
func (v *CodeValue) String() string { return v.Node.String() }

// Copy returns a CodeValue sharing the immutable node.
func (v *CodeValue) Copy() Value { return &CodeValue{Node: v.Node} }
