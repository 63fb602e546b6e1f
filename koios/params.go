package koios

import (
	"encoding/json"
	"slices"
	"strconv"
)

// ParamType is the declared shape of an endpoint parameter.
type ParamType int

const (
	// TypeString is a scalar string.
	TypeString ParamType = iota
	// TypeScalar accepts a string or an integer, rendered as text in a query
	// and kept as-is in a JSON body.
	TypeScalar
	// TypeBool is a boolean.
	TypeBool
	// TypeStringList is an ordered list of strings.
	TypeStringList
	// TypeStringPairs is an ordered list of [policy, name] pairs.
	TypeStringPairs
)

func (t ParamType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeScalar:
		return "scalar"
	case TypeBool:
		return "bool"
	case TypeStringList:
		return "string[]"
	case TypeStringPairs:
		return "string[][]"
	default:
		return "unknown"
	}
}

// Queryable reports whether values of this type can be placed in a query string.
func (t ParamType) Queryable() bool {
	return t == TypeString || t == TypeScalar || t == TypeBool
}

type valueKind int

const (
	kindString valueKind = iota + 1
	kindInt
	kindBool
	kindList
	kindPairs
)

// Value is a single parameter value. The zero Value is invalid; build values
// with String, Int, Bool, Strings or Pairs.
type Value struct {
	kind  valueKind
	str   string
	num   int64
	flag  bool
	list  []string
	pairs [][2]string
}

// Params maps declared parameter names to values. A parameter is absent when
// its name is not a key; Bool(false) and String("") are present.
type Params map[string]Value

// String returns a scalar string value.
func String(s string) Value { return Value{kind: kindString, str: s} }

// Int returns an integer scalar value.
func Int(n int64) Value { return Value{kind: kindInt, num: n} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: kindBool, flag: b} }

// Strings returns a list value. The caller's order is kept.
func Strings(items ...string) Value {
	return Value{kind: kindList, list: slices.Clone(items)}
}

// Pairs returns a list of [policy, name] pairs. The caller's order is kept.
func Pairs(pairs ...[2]string) Value {
	return Value{kind: kindPairs, pairs: slices.Clone(pairs)}
}

// Accepts reports whether v may be passed for a parameter of type t.
func (v Value) Accepts(t ParamType) bool {
	switch t {
	case TypeString:
		return v.kind == kindString
	case TypeScalar:
		return v.kind == kindString || v.kind == kindInt
	case TypeBool:
		return v.kind == kindBool
	case TypeStringList:
		return v.kind == kindList
	case TypeStringPairs:
		return v.kind == kindPairs
	}
	return false
}

// Text renders a scalar value for a query string: strings as-is, integers in
// base 10 and booleans as "true"/"false". Lists render as JSON.
func (v Value) Text() string {
	switch v.kind {
	case kindString:
		return v.str
	case kindInt:
		return strconv.FormatInt(v.num, 10)
	case kindBool:
		return strconv.FormatBool(v.flag)
	}
	data, _ := json.Marshal(v)
	return string(data)
}

// Items returns a copy of a list value's items.
func (v Value) Items() []string { return slices.Clone(v.list) }

// PairItems returns a copy of a pair list value's items.
func (v Value) PairItems() [][2]string { return slices.Clone(v.pairs) }

// MarshalJSON encodes the value as a JSON string, number, boolean or array.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case kindString:
		return json.Marshal(v.str)
	case kindInt:
		return json.Marshal(v.num)
	case kindBool:
		return json.Marshal(v.flag)
	case kindList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	case kindPairs:
		if v.pairs == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.pairs)
	}
	return []byte("null"), nil
}
