package interp

import (
	"github.com/cwbudde/go-simplelang/internal/ast"
	"github.com/cwbudde/go-simplelang/internal/object"
)

// builtinFn is the implementation of a built-in. It receives the
// unevaluated argument nodes and decides when to evaluate each one.
type builtinFn func(args []*ast.Node) (object.Value, error)

// builtin pairs an implementation with its fixed arity.
type builtin struct {
	fn    builtinFn
	arity int
}

// registerBuiltins fills the registry. Arity mismatches are rejected by
// call dispatch before the implementation runs.
func (i *Interpreter) registerBuiltins() {
	i.builtins = map[string]builtin{
		// entry point / evaluation
		"main":  {i.builtinMain, 1},
		"early": {i.builtinEarly, 1},

		// termination and user errors
		"exit":  {i.builtinExit, 1},
		"error": {i.builtinError, 1},

		// I/O
		"input":  {i.builtinInput, 1},
		"output": {i.builtinOutput, 1},
		"print":  {i.builtinPrint, 1},

		// conditionals and loops
		"if":       {i.builtinIf, 2},
		"if_else":  {i.builtinIfElse, 3},
		"for":      {i.builtinFor, 3},
		"while":    {i.builtinWhile, 2},
		"return":   {i.builtinReturn, 1},
		"break":    {i.builtinBreak, 0},
		"continue": {i.builtinContinue, 0},

		// binding
		"let":  {i.builtinLet, 2},
		"func": {i.builtinFunc, 2},

		// type introspection and conversion
		"type":     {i.builtinType, 1},
		"is_type":  {i.builtinIsType, 2},
		"to_int":   {i.builtinToInt, 1},
		"to_float": {i.builtinToFloat, 1},
		"to_str":   {i.builtinToStr, 1},
		"to_list":  {i.builtinToList, 1},

		// comparison
		"eq":  {i.builtinEq, 2},
		"neq": {i.builtinNeq, 2},
		"lnq": {i.builtinLnq, 2},
		"leq": {i.builtinLeq, 2},
		"gnq": {i.builtinGnq, 2},
		"geq": {i.builtinGeq, 2},

		// arithmetic
		"add": {i.builtinAdd, 2},
		"sub": {i.builtinSub, 2},
		"mul": {i.builtinMul, 2},
		"div": {i.builtinDiv, 2},
		"mod": {i.builtinMod, 2},
		"neg": {i.builtinNeg, 1},

		// logic
		"and": {i.builtinAnd, 2},
		"or":  {i.builtinOr, 2},
		"not": {i.builtinNot, 1},

		// sequences
		"len":   {i.builtinLen, 1},
		"range": {i.builtinRange, 3},
		"get":   {i.builtinGet, 2},
		"set":   {i.builtinSet, 3},
		"slice": {i.builtinSlice, 4},
		"copy":  {i.builtinCopy, 1},
	}
}

// lookupBuiltin resolves a built-in by name.
func (i *Interpreter) lookupBuiltin(name string) (builtin, bool) {
	b, ok := i.builtins[name]
	return b, ok
}
