package runtime

import (
	"strconv"
)

// JSObject is a heap-resident entity: a property map, a prototype link,
// and an optional specialized payload (spec §3).
type JSObject struct {
	Properties *PropertyMap
	Proto      ObjectId

	// Payload layers array/string/closure/host-function/error behavior on
	// top of the property map.
	Payload Payload

	// Internal holds engine-private bookkeeping slots — [[saved_scope]],
	// [[this]], [[caller_location]] — that are never visited by property
	// enumeration, lookup, or delete regardless of any Access bits,
	// because they are not Properties at all (spec §3 invariant 4).
	Internal map[string]Value
}

// NewObject creates a bare object with the given prototype and no
// payload.
func NewObject(proto ObjectId) *JSObject {
	return &JSObject{Properties: NewPropertyMap(), Proto: proto}
}

// SetInternal stores an internal slot, lazily allocating the map.
func (o *JSObject) SetInternal(name string, v Value) {
	if o.Internal == nil {
		o.Internal = make(map[string]Value)
	}
	o.Internal[name] = v
}

// GetInternal reads an internal slot.
func (o *JSObject) GetInternal(name string) (Value, bool) {
	v, ok := o.Internal[name]
	return v, ok
}

// arrayIndex reports whether name is a canonical non-negative integer
// index ("0", "1", "2", ... never "01" or "-1") and returns its value.
func arrayIndex(name string) (int, bool) {
	if name == "" {
		return 0, false
	}
	n, err := strconv.Atoi(name)
	if err != nil || n < 0 {
		return 0, false
	}
	if strconv.Itoa(n) != name {
		return 0, false
	}
	return n, true
}

// SetOwnProperty implements Object::set_property (spec §4.2): if an own
// property already exists, it is overwritten only when writable;
// otherwise a new property is created with DefaultAccess. Array payloads
// route an integer index to the backing slice (growing it with undefined
// holes when the index is past the end) and keep `length` synchronized
// (invariant 3, spec §8).
func (o *JSObject) SetOwnProperty(name string, v Value) {
	if o.Payload.Kind == PayloadArray {
		if idx, ok := arrayIndex(name); ok {
			o.setArrayIndex(idx, v)
			return
		}
		if name == "length" {
			o.setArrayLength(v.ToNumber())
			return
		}
	}
	if existing, ok := o.Properties.Get(name); ok {
		if existing.Access.Writable() {
			existing.Value = v
			o.Properties.Set(name, existing)
		}
		return
	}
	o.Properties.Set(name, NewProperty(v))
}

func (o *JSObject) setArrayIndex(idx int, v Value) {
	if idx < len(o.Payload.Array) {
		o.Payload.Array[idx] = v
		return
	}
	grown := make([]Value, idx+1)
	copy(grown, o.Payload.Array)
	for i := len(o.Payload.Array); i < idx; i++ {
		grown[i] = Undefined()
	}
	grown[idx] = v
	o.Payload.Array = grown
}

func (o *JSObject) setArrayLength(n float64) {
	newLen := int(n)
	if newLen < 0 || float64(newLen) != n {
		newLen = 0
	}
	if newLen <= len(o.Payload.Array) {
		o.Payload.Array = o.Payload.Array[:newLen]
		return
	}
	grown := make([]Value, newLen)
	copy(grown, o.Payload.Array)
	for i := len(o.Payload.Array); i < newLen; i++ {
		grown[i] = Undefined()
	}
	o.Payload.Array = grown
}

// DefineOwnProperty creates or re-flags an own property with explicit
// access bits, bypassing the writable check SetOwnProperty applies.
func (o *JSObject) DefineOwnProperty(name string, v Value, access Access) {
	o.Properties.Set(name, Property{Value: v, Access: access})
}

// SetHidden defines a writable, configurable, but non-enumerable own
// property — the usual shape for bookkeeping properties that must remain
// visible to property lookup (unlike Internal slots) but invisible to
// for-in and JSON-style serialization, e.g. a constructor function's
// backlink from its prototype object.
func (o *JSObject) SetHidden(name string, v Value) {
	o.DefineOwnProperty(name, v, AccessWrite|AccessConf)
}

// SetNonConf defines a writable, enumerable, non-configurable own
// property.
func (o *JSObject) SetNonConf(name string, v Value) {
	o.DefineOwnProperty(name, v, AccessWrite|AccessEnum)
}

// GetOwn looks up name as an own property, including the virtual
// properties ("length", numeric indices) that array and string payloads
// synthesize.
func (o *JSObject) GetOwn(name string) (Value, bool) {
	switch o.Payload.Kind {
	case PayloadArray:
		if idx, ok := arrayIndex(name); ok {
			if idx < len(o.Payload.Array) {
				return o.Payload.Array[idx], true
			}
			return Undefined(), false
		}
		if name == "length" {
			return Number(float64(len(o.Payload.Array))), true
		}
	case PayloadString:
		runes := []rune(o.Payload.Str)
		if idx, ok := arrayIndex(name); ok {
			if idx < len(runes) {
				return String(string(runes[idx])), true
			}
			return Undefined(), false
		}
		if name == "length" {
			return Number(float64(len(runes))), true
		}
	}
	if p, ok := o.Properties.Get(name); ok {
		return p.Value, true
	}
	return Undefined(), false
}

// OwnPropertyAccess reports the Access bits of an own property. Payload
// virtual properties are all non-configurable: an array's indices are
// writable and enumerable and its `length` writable only; a string's
// indices are enumerable only and its `length` has no bits set.
func (o *JSObject) OwnPropertyAccess(name string) (Access, bool) {
	switch o.Payload.Kind {
	case PayloadArray:
		if _, ok := arrayIndex(name); ok {
			return AccessWrite | AccessEnum, true
		}
		if name == "length" {
			return AccessWrite, true
		}
	case PayloadString:
		if _, ok := arrayIndex(name); ok {
			return AccessEnum, true
		}
		if name == "length" {
			return 0, true
		}
	}
	if p, ok := o.Properties.Get(name); ok {
		return p.Access, true
	}
	return 0, false
}

// HasOwn reports whether name resolves as an own property (including
// array/string virtual properties).
func (o *JSObject) HasOwn(name string) bool {
	_, ok := o.GetOwn(name)
	return ok
}

// Delete removes an own property only if it is configurable, returning
// the outcome so `delete` expressions can reflect it (spec §4.2). Deleting
// an absent property reports true; a present, non-configurable property
// is left in place and reports false. Neither case raises an error.
func (o *JSObject) Delete(name string) bool {
	access, ok := o.OwnPropertyAccess(name)
	if !ok {
		return true
	}
	if !access.Configurable() {
		return false
	}
	if o.Payload.Kind == PayloadArray {
		if idx, isIdx := arrayIndex(name); isIdx && idx < len(o.Payload.Array) {
			o.Payload.Array[idx] = Undefined()
			return true
		}
	}
	o.Properties.Delete(name)
	return true
}

// OwnEnumerableKeys returns own enumerable keys in the order spec §9
// fixes for arrays: integer indices 0..length ascending, then remaining
// own string keys in insertion order. Non-array objects simply return
// their own enumerable keys in insertion order.
func (o *JSObject) OwnEnumerableKeys() []string {
	var keys []string
	if o.Payload.Kind == PayloadArray {
		for i := range o.Payload.Array {
			keys = append(keys, strconv.Itoa(i))
		}
	}
	for _, k := range o.Properties.Keys() {
		p, _ := o.Properties.Get(k)
		if p.Access.Enumerable() {
			keys = append(keys, k)
		}
	}
	return keys
}

// AsArray returns the backing slice and true if this object has an array
// payload.
func (o *JSObject) AsArray() ([]Value, bool) {
	if o.Payload.Kind != PayloadArray {
		return nil, false
	}
	return o.Payload.Array, true
}

// AsString returns the backing string and true if this object has a
// string payload (a boxed String, as opposed to the String value kind).
func (o *JSObject) AsString() (string, bool) {
	if o.Payload.Kind != PayloadString {
		return "", false
	}
	return o.Payload.Str, true
}

// AsClosure returns the closure and true if this object has a closure
// payload.
func (o *JSObject) AsClosure() (*Closure, bool) {
	if o.Payload.Kind != PayloadClosure {
		return nil, false
	}
	return o.Payload.Closure, true
}

// IsCallable reports whether invoking this object as a function is
// meaningful.
func (o *JSObject) IsCallable() bool { return o.Payload.IsCallable() }

// NumberKeysLen is a small helper used by array builtins that need
// len(Array) without caring whether the caller already has the slice.
func (o *JSObject) NumberKeysLen() int {
	if o.Payload.Kind == PayloadArray {
		return len(o.Payload.Array)
	}
	return 0
}
