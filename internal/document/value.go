// Package document holds the generic, ordered tree a TOML input is decoded
// into, and the dotted-path resolver used to read it.
package document

import (
	"strconv"
	"time"
)

// Kind identifies which variant a Value holds
type Kind int

const (
	Absent Kind = iota
	Mapping
	Sequence
	String
	Integer
	Float
	Boolean
	Datetime
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case Absent:
		return "absent"
	case Mapping:
		return "mapping"
	case Sequence:
		return "sequence"
	case String:
		return "string"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Boolean:
		return "boolean"
	case Datetime:
		return "datetime"
	default:
		return "unknown"
	}
}

// Value is a node of the document tree. The zero Value is Absent.
// Mappings keep their keys in document order.
type Value struct {
	kind Kind

	str   string
	num   int64
	float float64
	flag  bool
	time  time.Time

	keys   []string
	fields map[string]Value
	items  []Value
}

// Field is one key/value pair of a mapping
type Field struct {
	Key   string
	Value Value
}

// Str returns a String value
func Str(s string) Value { return Value{kind: String, str: s} }

// Int returns an Integer value
func Int(n int64) Value { return Value{kind: Integer, num: n} }

// Flt returns a Float value
func Flt(f float64) Value { return Value{kind: Float, float: f} }

// Bool returns a Boolean value
func Bool(b bool) Value { return Value{kind: Boolean, flag: b} }

// Time returns a Datetime value
func Time(t time.Time) Value { return Value{kind: Datetime, time: t} }

// List returns a Sequence holding items in order
func List(items ...Value) Value {
	return Value{kind: Sequence, items: append([]Value(nil), items...)}
}

// Map returns a Mapping holding fields in order. A repeated key keeps its
// first position and its last value.
func Map(fields ...Field) Value {
	v := Value{kind: Mapping, fields: make(map[string]Value, len(fields))}
	for _, f := range fields {
		if _, ok := v.fields[f.Key]; !ok {
			v.keys = append(v.keys, f.Key)
		}
		v.fields[f.Key] = f.Value
	}
	return v
}

// Kind returns the variant held by v
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v holds nothing
func (v Value) IsAbsent() bool { return v.kind == Absent }

// Len returns the number of entries of a mapping or sequence, 0 otherwise
func (v Value) Len() int {
	switch v.kind {
	case Mapping:
		return len(v.keys)
	case Sequence:
		return len(v.items)
	default:
		return 0
	}
}

// Keys returns the keys of a mapping in document order
func (v Value) Keys() []string {
	if v.kind != Mapping {
		return nil
	}
	return append([]string(nil), v.keys...)
}

// Fields returns the entries of a mapping in document order
func (v Value) Fields() []Field {
	if v.kind != Mapping {
		return nil
	}
	out := make([]Field, 0, len(v.keys))
	for _, k := range v.keys {
		out = append(out, Field{Key: k, Value: v.fields[k]})
	}
	return out
}

// Items returns the elements of a sequence
func (v Value) Items() []Value {
	if v.kind != Sequence {
		return nil
	}
	return append([]Value(nil), v.items...)
}

// Field looks up key in a mapping
func (v Value) Field(key string) (Value, bool) {
	if v.kind != Mapping {
		return Value{}, false
	}
	f, ok := v.fields[key]
	return f, ok
}

// Index returns the i-th element of a sequence
func (v Value) Index(i int) (Value, bool) {
	if v.kind != Sequence || i < 0 || i >= len(v.items) {
		return Value{}, false
	}
	return v.items[i], true
}

// Text renders a scalar as text. Mappings, sequences and Absent render as
// the empty string.
func (v Value) Text() string {
	switch v.kind {
	case String:
		return v.str
	case Integer:
		return strconv.FormatInt(v.num, 10)
	case Float:
		return strconv.FormatFloat(v.float, 'g', -1, 64)
	case Boolean:
		return strconv.FormatBool(v.flag)
	case Datetime:
		return v.time.Format(time.RFC3339)
	default:
		return ""
	}
}

// Empty reports whether v is absent, an empty string, or an empty mapping
// or sequence. Used for optional fields that are skipped when blank.
func (v Value) Empty() bool {
	switch v.kind {
	case Absent:
		return true
	case String:
		return v.str == ""
	case Mapping, Sequence:
		return v.Len() == 0
	default:
		return false
	}
}
