package runtime

import "strings"

// Stringify renders a Value the way string concatenation, console output,
// and computed member-name coercion do (spec §4.3). It never invokes user
// code: an object reference that is not a boxed array/string/error
// degrades to the fixed "[object Object]"/"function ... () { [native
// code] }" renderings, since first-class toString/valueOf overrides are
// out of scope (spec's Non-goals on prototype methods beyond the fixed
// built-ins). Both the evaluator's `+`/typeof-adjacent coercions and the
// builtins package's console/Array.prototype.join share this one
// implementation.
func Stringify(h *Heap, v Value) string {
	if !v.IsRef() {
		return v.ToPrimitiveString()
	}
	obj := h.Get(v.Ref)
	switch {
	case obj.Payload.Kind == PayloadArray:
		elems, _ := obj.AsArray()
		parts := make([]string, len(elems))
		for i, el := range elems {
			if el.IsNullish() {
				parts[i] = ""
				continue
			}
			parts[i] = Stringify(h, el)
		}
		return strings.Join(parts, ",")
	case obj.Payload.Kind == PayloadString:
		s, _ := obj.AsString()
		return s
	case obj.IsCallable():
		return "function " + functionDisplayName(obj) + "() { [native code] }"
	case obj.Payload.Kind == PayloadError:
		name, _ := obj.GetOwn("name")
		msg, _ := obj.GetOwn("message")
		return Stringify(h, name) + ": " + Stringify(h, msg)
	default:
		return "[object Object]"
	}
}

func functionDisplayName(obj *JSObject) string {
	if closure, ok := obj.AsClosure(); ok {
		return closure.Name
	}
	if n, ok := obj.GetOwn("name"); ok {
		return n.Str
	}
	return ""
}

// ToNumberCoerced is ToNumber extended to objects: an array of exactly
// zero or one element degrades to a number the way the language's
// single-element-array arithmetic coercion does; anything else is NaN.
func ToNumberCoerced(h *Heap, v Value) float64 {
	if !v.IsRef() {
		return v.ToNumber()
	}
	obj := h.Get(v.Ref)
	if obj.Payload.Kind == PayloadArray {
		elems, _ := obj.AsArray()
		if len(elems) == 0 {
			return 0
		}
		if len(elems) == 1 {
			return ToNumberCoerced(h, elems[0])
		}
	}
	return Undefined().ToNumber()
}
