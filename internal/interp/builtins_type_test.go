package interp

import "testing"

func TestTypeBuiltin(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{"int", `$(print $(type 1))`, "int"},
		{"float", `$(print $(type 1.5))`, "float"},
		{"str", `$(print $(type 'a'))`, "str"},
		{"list", `$(print $(type (1 2)))`, "list"},
		{"name", `$(print $(type a))`, "name"},
		{"func", `$(print $(type $(func () ())))`, "func"},
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

func TestIsType(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{"exact match", `$(print $(is_type 1 'int'))`, "1"},
		{"mismatch", `$(print $(is_type 1 'str'))`, "0"},
		{"any matches int", `$(print $(is_type 1 'any'))`, "1"},
		{"any matches func", `$(print $(is_type $(func () ()) 'any'))`, "1"},
		{"num matches int", `$(print $(is_type 1 'num'))`, "1"},
		{"num matches float", `$(print $(is_type 1.5 'num'))`, "1"},
		{"num rejects str", `$(print $(is_type 'a' 'num'))`, "0"},
		{"seq matches str", `$(print $(is_type 'a' 'seq'))`, "1"},
		{"seq matches list", `$(print $(is_type (1) 'seq'))`, "1"},
		{"seq rejects int", `$(print $(is_type 1 'seq'))`, "0"},
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

func TestConversions(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{"int to int", `$(print $(to_int 3))`, "3"},
		{"float truncates toward zero", `$(print $(to_int 3.9))`, "3"},
		{"negative float truncates toward zero", `$(print $(to_int -3.9))`, "-3"},
		{"string to int", `$(print $(to_int '42'))`, "42"},
		{"signed string to int", `$(print $(to_int '-7'))`, "-7"},
		{"int widens to float", `$(print $(to_float 3))`, "3.0"},
		{"string to float", `$(print $(to_float '2.5'))`, "2.5"},
		{"int to str", `$(print $(to_str 42))`, "42"},
		{"float to str", `$(print $(to_str 2.5))`, "2.5"},
		{"str to str", `$(print $(to_str 'x'))`, "x"},
		{"list to str", `$(print $(to_str (1 2)))`, "(1 2)"},
		{"name to str", `$(print $(to_str a))`, "<Name a>"},
		{"str to list", `$(print $(to_list 'abc'))`, "(a b c)"},
		{"list to list", `$(print $(to_list (1 2)))`, "(1 2)"},
		{"roundtrip int", `$(print $(to_int $(to_str 123)))`, "123"},
		{"roundtrip float", `$(print $(to_float $(to_str 1.25)))`, "1.25"},
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

func TestConversionErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"bad int parse",
			`$(to_int 'abc')`,
			"[Error-type] Failed to convert the string 'abc' to integer.",
		},
		{
			"float string is not int",
			`$(to_int '3.5')`,
			"[Error-type] Failed to convert the string '3.5' to integer.",
		},
		{
			"bad float parse",
			`$(to_float 'abc')`,
			"[Error-type] Failed to convert the string 'abc' to floating-point number.",
		},
		{
			"list to int",
			`$(to_int (1))`,
			"[Error-type] Can't convert 'list' to 'int'.",
		},
		{
			"int to list",
			`$(to_list 1)`,
			"[Error-type] Can't convert 'int' to 'list'.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runSource(t, tt.src)
			if err == nil {
				t.Fatal("expected a type error")
			}
			if err.Error() != tt.want {
				t.Errorf("error wrong. expected=%q, got=%q", tt.want, err.Error())
			}
		})
	}
}

func TestEarly(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{
			"forces nested code in lists",
			`$(output $(early (1 $(add 1 1) (2 $(mul 2 2)))))`,
			"(1 2 (2 4))",
		},
		{
			"identity on plain values",
			`$(output $(early 5))`,
			"5",
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
