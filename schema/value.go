package schema

import (
	"strconv"

	"github.com/arloliu/sacio/format"
)

// Value is one decoded header field value: a small tagged union over the
// field kinds. The zero Value is "undefined" and packs back to the
// field's sentinel bytes.
type Value struct {
	kind format.FieldKind
	f    float64
	i    int32
	b    bool
	e    format.Enum
	s    string
}

// Float wraps a float header value. Floats are held as float64 so that a
// v7 footer can carry more precision than the float32 header slot.
func Float(v float64) Value {
	return Value{kind: format.KindFloat, f: v}
}

// Int wraps an integer header value.
func Int(v int32) Value {
	return Value{kind: format.KindInteger, i: v}
}

// Bool wraps a logical header value.
func Bool(v bool) Value {
	return Value{kind: format.KindLogical, b: v}
}

// Str wraps an alphanumeric header value.
func Str(s string) Value {
	return Value{kind: format.KindAlpha, s: s}
}

// EnumOf wraps an enumerated header value.
func EnumOf(e format.Enum) Value {
	return Value{kind: format.KindEnum, e: e}
}

// Defined reports whether the value holds anything at all.
func (v Value) Defined() bool {
	return v.kind != 0
}

// Kind returns the kind of the held value, or 0 when undefined.
func (v Value) Kind() format.FieldKind {
	return v.kind
}

// Float returns the held float, or the undefined sentinel.
func (v Value) Float() float64 {
	if v.kind != format.KindFloat {
		return UndefinedFloat
	}

	return v.f
}

// Int returns the held integer, or the undefined sentinel.
func (v Value) Int() int32 {
	if v.kind != format.KindInteger {
		return UndefinedInt
	}

	return v.i
}

// Bool returns the held logical, or false when undefined.
func (v Value) Bool() bool {
	return v.kind == format.KindLogical && v.b
}

// Str returns the held string, or the undefined sentinel.
func (v Value) Str() string {
	if v.kind != format.KindAlpha {
		return UndefinedString
	}

	return v.s
}

// Enum returns the held enumeration code, or the undefined sentinel code.
func (v Value) Enum() format.Enum {
	if v.kind != format.KindEnum {
		return format.Enum(UndefinedInt)
	}

	return v.e
}

// String renders the value for display.
func (v Value) String() string {
	switch v.kind {
	case format.KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case format.KindInteger:
		return strconv.Itoa(int(v.i))
	case format.KindLogical:
		return strconv.FormatBool(v.b)
	case format.KindAlpha:
		return v.s
	case format.KindEnum:
		return v.e.String()
	default:
		return "undefined"
	}
}
