package runtime

// Interpreted is the result of evaluating an expression (spec §3): either
// a plain rvalue, or a Member lvalue naming a property that can serve as
// an assignment target, a `delete` operand, or a `typeof` operand without
// dereferencing it first.
type Interpreted struct {
	isMember bool
	value    Value
	of       ObjectId
	name     string
}

// VOID is the result statements return on success.
var VOID = Val(Undefined())

// Val wraps a plain rvalue.
func Val(v Value) Interpreted { return Interpreted{value: v} }

// MemberOf builds an lvalue designating property name on object of.
func MemberOf(of ObjectId, name string) Interpreted {
	return Interpreted{isMember: true, of: of, name: name}
}

// IsMember reports whether this Interpreted is an lvalue.
func (i Interpreted) IsMember() bool { return i.isMember }

// Member returns the (object, name) pair of an lvalue. Only meaningful
// when IsMember() is true.
func (i Interpreted) Member() (ObjectId, string) { return i.of, i.name }

// ToValue dereferences an lvalue through the prototype chain, or returns
// the rvalue directly.
func (i Interpreted) ToValue(h *Heap) Value {
	if !i.isMember {
		return i.value
	}
	return LookupValue(h, i.of, i.name)
}

// LookupValue walks of's own properties, then its prototype chain, until
// name is found or the chain reaches NullID (spec §4.2). A guard on the
// number of hops defends against a corrupted (non-acyclic) prototype
// chain rather than looping forever; invariant 6 guarantees this never
// triggers for a heap built only through this package's API.
func LookupValue(h *Heap, of ObjectId, name string) Value {
	if name == "__proto__" {
		proto := h.Get(of).Proto
		if proto == NullID {
			return Null()
		}
		return RefValue(proto)
	}
	const maxHops = 1 << 20
	cur := of
	for hops := 0; cur != NullID && hops < maxHops; hops++ {
		obj := h.Get(cur)
		if v, ok := obj.GetOwn(name); ok {
			return v
		}
		cur = obj.Proto
	}
	return Undefined()
}

// HasProperty reports whether name exists anywhere on of's prototype
// chain, the primitive behind the `in` operator.
func HasProperty(h *Heap, of ObjectId, name string) bool {
	const maxHops = 1 << 20
	cur := of
	for hops := 0; cur != NullID && hops < maxHops; hops++ {
		obj := h.Get(cur)
		if obj.HasOwn(name) {
			return true
		}
		cur = obj.Proto
	}
	return false
}
