package interp

import "testing"

func TestIf(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{"truthy condition runs body", `$(if 1 ($(print 'yes')))`, "yes"},
		{"falsy condition skips body", `$(if 0 ($(print 'yes')))`, ""},
		{"float zero is truthy", `$(if 0.0 ($(print 'yes')))`, "yes"},
		{"empty string is truthy", `$(if '' ($(print 'yes')))`, "yes"},
		{"empty list is truthy", `$(if () ($(print 'yes')))`, "yes"},
		{"if returns last body value", `$(print $(if 1 (1 2 3)))`, "3"},
		{"empty body yields zero", `$(print $(if 1 ()))`, "0"},
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

func TestIfElse(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{"then branch", `$(print $(if_else 1 ('a') ('b')))`, "a"},
		{"else branch", `$(print $(if_else 0 ('a') ('b')))`, "b"},
		{"branches evaluate in order", `$(if_else 0 () ($(print 1) $(print 2)))`, "12"},
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

func TestForLoop(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{
			"iterates in order",
			`$(for i (1 2 3) ($(print $i)))`,
			"123",
		},
		{
			"break exits the loop",
			`$(for i (1 2 3) ($(if $(eq $i 2) ($(break))) $(print $i)))`,
			"1",
		},
		{
			"continue skips the element",
			`$(for i (1 2 3) ($(if $(eq $i 2) ($(continue))) $(print $i)))`,
			"13",
		},
		{
			"loop over range",
			`$(for i $(range 0 3 1) ($(print $i)))`,
			"012",
		},
		{
			"descending range",
			`$(for i $(range 3 0 -1) ($(print $i)))`,
			"321",
		},
		{
			"empty list never runs body",
			`$(for i () ($(print $i)))`,
			"",
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

func TestWhileLoop(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{
			"condition re-evaluated each iteration",
			`$(let x 0) $(while $(lnq $x 3) ($(print $x) $(let x $(add $x 1))))`,
			"012",
		},
		{
			"break exits",
			`$(let x 0) $(while 1 ($(if $(eq $x 3) ($(break))) $(print $x) $(let x $(add $x 1))))`,
			"012",
		},
		{
			"continue re-tests the condition",
			`$(let x 0) $(while $(lnq $x 5) ($(let x $(add $x 1)) $(if $(eq $(mod $x 2) 0) ($(continue))) $(print $x)))`,
			"135",
		},
		{
			"false condition never runs body",
			`$(while 0 ($(print 'no')))`,
			"",
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

func TestNestedLoopInterrupts(t *testing.T) {
	// break binds to the innermost loop only.
	src := `$(for i (1 2) ($(for j (1 2 3) ($(if $(eq $j 2) ($(break))) $(print $j))) $(print $i)))`
	out := mustRun(t, src)
	if out != "1112" {
		t.Errorf("output wrong. expected=%q, got=%q", "1112", out)
	}
}

func TestReturn(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{
			"return short-circuits the body",
			`$(let f $(func () ($(return 1) $(print 'unreachable')))) $(print $(f))`,
			"1",
		},
		{
			"return escapes a loop inside the function",
			`$(let f $(func (xs) ($(for x $xs ($(if $(eq $x 2) ($(return $x)))))))) $(print $(f (1 2 3)))`,
			"2",
		},
		{
			"function without return yields last value",
			`$(let f $(func () (1 2))) $(print $(f))`,
			"2",
		},
		{
			"empty body yields zero",
			`$(let f $(func () ())) $(print $(f))`,
			"0",
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

func TestInterruptsSwallowedAtTopLevel(t *testing.T) {
	// A stray interrupt aborts its own top-level expression but the
	// program continues with the next one.
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{"stray break", `$(break) $(print 'ok')`, "ok"},
		{"stray continue", `$(continue) $(print 'ok')`, "ok"},
		{"stray return", `$(return 1) $(print 'ok')`, "ok"},
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

func TestLoopTypeErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		message string
	}{
		{
			"for needs a name",
			`$(for 1 (1) ())`,
			"First argument of 'for' should be 'name', not 'int'.",
		},
		{
			"for needs a list",
			`$(for i 1 ())`,
			"Second argument of 'for' should be 'list', not 'int'.",
		},
		{
			"while needs a list body",
			`$(while 1 2)`,
			"Second argument of 'while' should be 'list', not 'int'.",
		},
		{
			"if needs a list body",
			`$(if 1 2)`,
			"Second argument of 'if' should be 'list', not 'int'.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runSource(t, tt.src)
			if err == nil {
				t.Fatal("expected a type error")
			}
			want := "[Error-type] " + tt.message
			if err.Error() != want {
				t.Errorf("error wrong. expected=%q, got=%q", want, err.Error())
			}
		})
	}
}
