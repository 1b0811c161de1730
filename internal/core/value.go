package core

// value.go defines the closed cell value variant and its equality rules.
//
// Cells are one of four kinds: Null, String, Number, Bool. The kind of a cell
// is decided per column, not per cell: a column becomes Number (or Bool) only
// when every non-empty cell in it parses as that kind, otherwise it stays
// String. This mirrors how column-typed parsers treat mixed data and makes
// the equality policy explicit:
//
//   - In a fully numeric column, "1", "1.0" and "01" are the same value.
//   - In a column with any non-numeric cell, all cells are textual and
//     compare byte-for-byte, so "1" and "1.0" differ there.
//   - Empty cells are Null and equal only to other Nulls.
//   - Number equality is exact float64 equality. No epsilon, ever.
//   - Numbers are float64, so integer strings beyond 2^53 compare by their
//     rounded value: 9007199254740993 and 9007199254740992 are equal in a
//     numeric column.

import (
	"regexp"
	"strconv"
	"strings"
)

// numericRegex validates that a string is a valid numeric format.
// Matches integers, decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
)

// Value is a single table cell. The zero value is Null.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
	Bool bool
}

// NullValue returns the missing-cell value.
func NullValue() Value {
	return Value{Kind: KindNull}
}

// StringValue returns a textual cell value.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// NumberValue returns a numeric cell value.
func NumberValue(f float64) Value {
	return Value{Kind: KindNumber, Num: f}
}

// BoolValue returns a boolean cell value.
func BoolValue(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// Equal reports whether two cell values are exactly equal.
// Values of different kinds are never equal.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindString:
		return v.Str == o.Str
	case KindNumber:
		return v.Num == o.Num
	case KindBool:
		return v.Bool == o.Bool
	}
	return false
}

// String renders the value as display/export text.
// Null renders empty, numbers in shortest round-trippable form.
func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	}
	return ""
}

// appendKey writes the canonical encoding of the value to b.
// Each value is prefixed with a kind tag so values of different kinds
// can never collide (the string "1" never equals the number 1). String
// cells additionally carry a length prefix: cell bytes are arbitrary,
// so without it a separator byte inside a cell could shift content
// across cell boundaries and make distinct rows encode identically.
func (v Value) appendKey(b *strings.Builder) {
	switch v.Kind {
	case KindNull:
		b.WriteByte('_')
	case KindString:
		b.WriteByte('s')
		b.WriteString(strconv.Itoa(len(v.Str)))
		b.WriteByte(':')
		b.WriteString(v.Str)
	case KindNumber:
		b.WriteByte('n')
		b.WriteString(strconv.FormatFloat(v.Num, 'g', -1, 64))
	case KindBool:
		b.WriteByte('b')
		if v.Bool {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
}

// parseNumber reports whether s is a well-formed number and returns its value.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !numericRegex.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parseBool reports whether s is a boolean literal and returns its value.
// Only true/false spellings count; 1/0 and y/n stay numeric or textual.
func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// inferKind decides the kind for a whole column given its raw cells.
// Empty cells are ignored; a column of only empty cells stays String.
func inferKind(cells []string) Kind {
	sawValue := false
	allNumber := true
	allBool := true

	for _, c := range cells {
		if c == "" {
			continue
		}
		sawValue = true
		if allNumber {
			if _, ok := parseNumber(c); !ok {
				allNumber = false
			}
		}
		if allBool {
			if _, ok := parseBool(c); !ok {
				allBool = false
			}
		}
		if !allNumber && !allBool {
			return KindString
		}
	}

	if !sawValue {
		return KindString
	}
	if allNumber {
		return KindNumber
	}
	if allBool {
		return KindBool
	}
	return KindString
}

// convertCell converts a raw cell to a Value of the column's kind.
// Empty cells are Null regardless of kind.
func convertCell(raw string, kind Kind) Value {
	if raw == "" {
		return NullValue()
	}
	switch kind {
	case KindNumber:
		f, _ := parseNumber(raw)
		return NumberValue(f)
	case KindBool:
		b, _ := parseBool(raw)
		return BoolValue(b)
	}
	return StringValue(raw)
}
