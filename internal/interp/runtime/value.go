// Package runtime holds the data half of the evaluator: Value, ObjectId,
// Property, JSObject and Heap. It stores AST nodes (closure bodies,
// hoisted declarations) but never interprets them, and it has no
// knowledge of how closures are invoked — that behavior lives in
// internal/interp/evaluator,
// which imports this package rather than the other way around, the same
// split the teacher draws between its runtime and evaluator packages.
package runtime

import (
	"math"
	"strconv"
)

// Kind tags the variant carried by a Value.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNull
	KindBoolean
	KindNumber
	KindString
	KindRef
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "object" // typeof null === "object", a deliberate ECMAScript wart
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindRef:
		return "object" // refined to "function" by the evaluator for callables
	default:
		return "unknown"
	}
}

// Value is the tagged union described in spec §3. Only the field matching
// Kind is meaningful; the zero Value is Undefined.
type Value struct {
	Kind Kind
	Bool bool
	Num  float64
	Str  string
	Ref  ObjectId
}

func Undefined() Value            { return Value{Kind: KindUndefined} }
func Null() Value                 { return Value{Kind: KindNull} }
func Bool(b bool) Value           { return Value{Kind: KindBoolean, Bool: b} }
func Number(n float64) Value      { return Value{Kind: KindNumber, Num: n} }
func String(s string) Value       { return Value{Kind: KindString, Str: s} }
func RefValue(id ObjectId) Value  { return Value{Kind: KindRef, Ref: id} }

func (v Value) IsUndefined() bool { return v.Kind == KindUndefined }
func (v Value) IsNull() bool      { return v.Kind == KindNull }
func (v Value) IsNullish() bool   { return v.Kind == KindUndefined || v.Kind == KindNull }
func (v Value) IsRef() bool       { return v.Kind == KindRef }

// ToBoolean implements the language's truthiness rule: undefined, null,
// false, 0, NaN, and "" are falsy; everything else (including every
// object reference) is truthy.
func (v Value) ToBoolean() bool {
	switch v.Kind {
	case KindUndefined, KindNull:
		return false
	case KindBoolean:
		return v.Bool
	case KindNumber:
		return v.Num != 0 && !math.IsNaN(v.Num)
	case KindString:
		return v.Str != ""
	case KindRef:
		return true
	default:
		return false
	}
}

// ToNumber coerces primitive values per spec §3 and yields NaN for every
// object reference. Objects are coerced by ToNumberCoerced (stringify.go),
// which needs Heap access and never calls a user valueOf/toString.
func (v Value) ToNumber() float64 {
	switch v.Kind {
	case KindUndefined:
		return math.NaN()
	case KindNull:
		return 0
	case KindBoolean:
		if v.Bool {
			return 1
		}
		return 0
	case KindNumber:
		return v.Num
	case KindString:
		return stringToNumber(v.Str)
	default:
		return math.NaN()
	}
}

func stringToNumber(s string) float64 {
	trimmed := trimJSWhitespace(s)
	if trimmed == "" {
		return 0
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return n
	}
	if n, err := strconv.ParseInt(trimmed, 0, 64); err == nil {
		return float64(n)
	}
	return math.NaN()
}

func trimJSWhitespace(s string) string {
	start, end := 0, len(s)
	isSpace := func(c byte) bool {
		switch c {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			return true
		default:
			return false
		}
	}
	for start < end && isSpace(s[start]) {
		start++
	}
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

// ToPrimitiveString renders a primitive value the way string concatenation
// and String(x) do for non-object kinds. Objects are rendered by Stringify
// (stringify.go), which needs Heap access: arrays join, boxed strings
// yield their text, and plain objects become "[object Object]"; a user
// toString method is not consulted.
func (v Value) ToPrimitiveString() string {
	switch v.Kind {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBoolean:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindNumber:
		return FormatNumber(v.Num)
	case KindString:
		return v.Str
	default:
		return ""
	}
}

// FormatNumber renders a float64 the way the language's Number.toString
// does: integral values print without a fractional part, NaN and the
// infinities print their literal names.
func FormatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}
	if n == math.Trunc(n) && math.Abs(n) < 1e21 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// ToInt32 implements the bitwise-operator coercion in spec §4.3: coerce to
// number, then wrap into a signed 32-bit integer.
func (v Value) ToInt32() int32 {
	n := v.ToNumber()
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	u := uint32(int64(math.Trunc(n)))
	return int32(u)
}

// ToUint32 is ToInt32's unsigned counterpart, used by `>>>`.
func (v Value) ToUint32() uint32 {
	n := v.ToNumber()
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return uint32(int64(math.Trunc(n)))
}

// StrictEquals implements `===` per spec §3: NaN is never equal to
// anything including itself, +0 == -0, strings compare by content, refs
// by identity.
func StrictEquals(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindUndefined, KindNull:
		return true
	case KindBoolean:
		return a.Bool == b.Bool
	case KindNumber:
		if math.IsNaN(a.Num) || math.IsNaN(b.Num) {
			return false
		}
		return a.Num == b.Num
	case KindString:
		return a.Str == b.Str
	case KindRef:
		return a.Ref == b.Ref
	default:
		return false
	}
}

// TypeName returns the typeof-style name for a primitive kind; the
// evaluator overrides KindRef with "function"/"object" after checking the
// referenced object's payload.
func (v Value) TypeName() string { return v.Kind.String() }
