package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/go-simplelang/internal/errors"
)

// runSource evaluates a complete program and returns everything it wrote
// to the output along with the evaluation error, if any.
func runSource(t *testing.T, src string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	i := New(&buf, WithInput(strings.NewReader("")), WithExitFunc(func(int) {}))
	err := i.Run(src)
	return buf.String(), err
}

// mustRun evaluates a program that is expected to succeed.
func mustRun(t *testing.T, src string) string {
	t.Helper()

	out, err := runSource(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{
			"addition of variables",
			`$(let a 3) $(let b 4) $(print $(add $a $b))`,
			"7",
		},
		{
			"string repetition",
			`$(print $(mul 'ab' 3))`,
			"ababab",
		},
		{
			"parens as characters",
			`$(let s '(') $(print $(add $s ')'))`,
			"()",
		},
		{
			"recursive factorial",
			`$(let f $(func (n) ($(if_else $(leq $n 1) (1) ($(mul $n $(f $(sub $n 1)))))))) $(print $(f 5))`,
			"120",
		},
		{
			"for over a list",
			`$(let xs (1 2 3)) $(for i $xs ($(print $i)))`,
			"123",
		},
		{
			"integer division truncates",
			`$(print $(div 7 2))`,
			"3",
		},
		{
			"mixed division is float",
			`$(print $(div 7.0 2))`,
			"3.5",
		},
		{
			"negative index wraps",
			`$(print $(get 'hello' -1))`,
			"o",
		},
		{
			"while with counter",
			`$(let x 0) $(while $(lnq $x 3) ($(print $x) $(let x $(add $x 1))))`,
			"012",
		},
		{
			"dollar literal evaluates to itself",
			`$(print $3)`,
			"3",
		},
		{
			"output prints string form",
			`$(output 'hi')`,
			"hi",
		},
		{
			"print forces nested code",
			`$(let xs (1 $(add 1 1) 3)) $(print $xs)`,
			"(1 2 3)",
		},
		{
			"output keeps nested code lazy",
			`$(output (1 2))`,
			"(<Code int : 1> <Code int : 2>)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := mustRun(t, tt.src)
			if out != tt.expected {
				t.Errorf("output wrong. expected=%q, got=%q", tt.expected, out)
			}
		})
	}
}

func TestScriptErrors(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		kind       errors.Kind
		message    string
		wantOutput string
	}{
		{
			"lookup of unbound variable",
			`$(print $a)`,
			errors.Lookup,
			"Failed to find the variable with the name 'a'.",
			"",
		},
		{
			"unknown function",
			`$(nope 1)`,
			errors.Lookup,
			"Function 'nope' doesn't exist.",
			"",
		},
		{
			"empty list call",
			`$()`,
			errors.Type,
			"Can't evaluate an empty list.",
			"",
		},
		{
			"calling a non-function",
			`$(let a 1) $(a 2)`,
			errors.Type,
			"Cannot call 'int'.",
			"",
		},
		{
			"builtin arity mismatch",
			`$(add 1)`,
			errors.Arg,
			"Function 'add' expected 2 arguments, but it got 1.",
			"",
		},
		{
			"user function arity mismatch",
			`$(let f $(func (a b) ())) $(f 1)`,
			errors.Arg,
			"Function 'f' expected 2 arguments, but it got 1.",
			"",
		},
		{
			"division by zero",
			`$(div 1 0)`,
			errors.DivByZero,
			"Dividing by zero is illegal.",
			"",
		},
		{
			"modulus by zero",
			`$(mod 1 0)`,
			errors.DivByZero,
			"Dividing by zero is illegal.",
			"",
		},
		{
			"user error",
			`$(error 'bad')`,
			errors.User,
			"bad",
			"",
		},
		{
			"main called by user",
			`$(main (1))`,
			errors.User,
			"'main' can't be called by the user.",
			"",
		},
		{
			"add of mismatched types",
			`$(add 1 'a')`,
			errors.Type,
			"Can't 'add' 'int' and 'str'.",
			"",
		},
		{
			"ordered comparison across types",
			`$(lnq 1 'a')`,
			errors.Type,
			"Can't find whether 'int' < 'str'.",
			"",
		},
		{
			"index out of range",
			`$(get (1 2) 5)`,
			errors.Index,
			"Can't 'get' 5th item of 'list' whose length is 2.",
			"",
		},
		{
			"error after partial output",
			`$(print 1) $(error 'stop')`,
			errors.User,
			"stop",
			"1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runSource(t, tt.src)
			if err == nil {
				t.Fatal("expected an error, got none")
			}

			se, ok := errors.AsScript(err)
			if !ok {
				t.Fatalf("expected a ScriptError, got %T: %v", err, err)
			}
			if se.Kind != tt.kind {
				t.Errorf("kind wrong. expected=%q, got=%q", tt.kind, se.Kind)
			}
			if se.Message != tt.message {
				t.Errorf("message wrong. expected=%q, got=%q", tt.message, se.Message)
			}
			if out != tt.wantOutput {
				t.Errorf("output wrong. expected=%q, got=%q", tt.wantOutput, out)
			}
		})
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unclosed list", "$(print 1"},
		{"invalid character", "@"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runSource(t, tt.src)
			if err == nil {
				t.Fatal("expected a syntax error")
			}
			se, ok := errors.AsScript(err)
			if !ok || se.Kind != errors.Syntax {
				t.Fatalf("expected Error-syntax, got %v", err)
			}
		})
	}
}

func TestSessionReset(t *testing.T) {
	var buf bytes.Buffer
	i := New(&buf, WithInput(strings.NewReader("")))

	if err := i.Run(`$(print 1)`); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if !i.Printed() {
		t.Error("Printed() should be true after print")
	}
	i.ResetPrinted()

	// Without a reset, the second run trips the main latch.
	err := i.Run(`$(print 2)`)
	if err == nil {
		t.Fatal("expected the main latch to reject the second run")
	}

	i.ResetSession()
	if err := i.Run(`$(print 3)`); err != nil {
		t.Fatalf("run after reset failed: %v", err)
	}

	if got := buf.String(); got != "13" {
		t.Errorf("output wrong. expected=%q, got=%q", "13", got)
	}
}

func TestInputBuiltin(t *testing.T) {
	var buf bytes.Buffer
	i := New(&buf, WithInput(strings.NewReader("Joe\n")))

	if err := i.Run(`$(let name $(input 'who? ')) $(print $name)`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "who? Joe" {
		t.Errorf("output wrong. expected=%q, got=%q", "who? Joe", got)
	}
}

func TestExitBuiltin(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected int
	}{
		{"positive status", `$(exit 2)`, 2},
		{"negative status clamps to zero", `$(exit -5)`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var code int
			called := false

			var buf bytes.Buffer
			i := New(&buf, WithExitFunc(func(c int) {
				code = c
				called = true
			}))

			if err := i.Run(tt.src); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !called {
				t.Fatal("exit function was not called")
			}
			if code != tt.expected {
				t.Errorf("exit code wrong. expected=%d, got=%d", tt.expected, code)
			}
		})
	}
}
