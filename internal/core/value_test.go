package core

import "testing"

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{"integer", "42", 42, true},
		{"negative", "-7", -7, true},
		{"decimal", "3.14", 3.14, true},
		{"leading dot", ".5", 0.5, true},
		{"trailing dot", "2.", 2, true},
		{"scientific", "1e3", 1000, true},
		{"signed scientific", "-1.5E-2", -0.015, true},
		{"whitespace trimmed", "  10  ", 10, true},
		{"zero padded", "01", 1, true},
		{"empty", "", 0, false},
		{"text", "abc", 0, false},
		{"mixed", "12abc", 0, false},
		{"thousands separator", "1,000", 0, false},
		{"currency", "$5", 0, false},
		{"lone sign", "-", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseNumber(tt.input)
			if ok != tt.ok {
				t.Fatalf("parseNumber(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("parseNumber(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		input string
		want  bool
		ok    bool
	}{
		{"true", true, true},
		{"false", false, true},
		{"True", true, true},
		{"FALSE", false, true},
		{" true ", true, true},
		{"1", false, false}, // numeric, not boolean
		{"0", false, false},
		{"yes", false, false},
		{"t", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseBool(tt.input)
			if ok != tt.ok {
				t.Fatalf("parseBool(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("parseBool(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInferKind(t *testing.T) {
	tests := []struct {
		name  string
		cells []string
		want  Kind
	}{
		{"all numeric", []string{"1", "2.5", "-3"}, KindNumber},
		{"numeric with empties", []string{"1", "", "3"}, KindNumber},
		{"mixed number and text", []string{"1", "x"}, KindString},
		{"all bool", []string{"true", "False"}, KindBool},
		{"bool with empties", []string{"", "true"}, KindBool},
		{"bool and number mixed", []string{"true", "1"}, KindString},
		{"all text", []string{"a", "b"}, KindString},
		{"all empty", []string{"", ""}, KindString},
		{"no cells", nil, KindString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inferKind(tt.cells)
			if got != tt.want {
				t.Errorf("inferKind(%v) = %v, want %v", tt.cells, got, tt.want)
			}
		})
	}
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"equal strings", StringValue("x"), StringValue("x"), true},
		{"unequal strings", StringValue("x"), StringValue("y"), false},
		{"equal numbers", NumberValue(1), NumberValue(1), true},
		{"numeric value not representation", NumberValue(1.0), NumberValue(1), true},
		{"float noise is unequal", NumberValue(1.0), NumberValue(1.0000001), false},
		{"equal bools", BoolValue(true), BoolValue(true), true},
		{"unequal bools", BoolValue(true), BoolValue(false), false},
		{"nulls equal", NullValue(), NullValue(), true},
		{"null vs empty string", NullValue(), StringValue(""), false},
		{"string one vs number one", StringValue("1"), NumberValue(1), false},
		{"bool vs string", BoolValue(true), StringValue("true"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			// Equality is symmetric
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"null renders empty", NullValue(), ""},
		{"string", StringValue("hi"), "hi"},
		{"integer number", NumberValue(42), "42"},
		{"decimal number", NumberValue(2.5), "2.5"},
		{"whole float drops fraction", NumberValue(1.0), "1"},
		{"bool true", BoolValue(true), "true"},
		{"bool false", BoolValue(false), "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
