// Package errors defines the user-visible error taxonomy of the SimpleLang
// runtime and its reporting format.
//
// Every script-level failure carries a Kind used as the bracketed prefix of
// the reported message: "[Error-type] Can't 'add' 'int' and 'str'.".
// Control-flow interrupts (return, break, continue) are not errors and are
// defined inside the interpreter instead.
package errors

import "fmt"

// Kind tags a script error for reporting.
type Kind string

// Error kinds.
const (
	Syntax    Kind = "Error-syntax"
	Arg       Kind = "Error-arg"
	Type      Kind = "Error-type"
	Index     Kind = "Error-index"
	DivByZero Kind = "Error-divbyzero"
	Lookup    Kind = "Error-lookup"
	User      Kind = "Error-user"
	IO        Kind = "Error-IO"
)

// ScriptError is a user-visible runtime or parse error.
type ScriptError struct {
	Message string
	Kind    Kind
}

// New creates a ScriptError of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *ScriptError {
	return &ScriptError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface using the reporting format
// "[<Kind>] <message>".
func (e *ScriptError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// AsScript returns err as a *ScriptError when it is one.
func AsScript(err error) (*ScriptError, bool) {
	se, ok := err.(*ScriptError)
	return se, ok
}
