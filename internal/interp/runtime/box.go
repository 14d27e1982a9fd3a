package runtime

// PrimitiveSlot is the internal slot a boxed Number/Boolean stashes its
// wrapped primitive Value in (a Ref never appears in it, so this never
// recurses). String boxing reuses the existing PayloadString instead,
// since NewBoxedString already carries the string directly.
const PrimitiveSlot = "[[primitive]]"

// BoxPrimitive wraps a primitive Value in a short-lived object so member
// access and method calls on a bare literal (`"abc".length`,
// `(3).toString()`) can walk the matching prototype's properties the
// same way a real object would (spec §4.3's Member/Call rules don't
// special-case primitive receivers; autoboxing is how the language
// reconciles that with primitives having no property map of their own).
// Returns NullID for a Value that has no boxed form (undefined, null, an
// existing Ref).
func BoxPrimitive(h *Heap, v Value) ObjectId {
	switch v.Kind {
	case KindString:
		return h.NewBoxedString(v.Str)
	case KindNumber:
		obj := NewObject(h.NumberProto)
		obj.SetInternal(PrimitiveSlot, v)
		return h.Alloc(obj)
	case KindBoolean:
		obj := NewObject(h.BooleanProto)
		obj.SetInternal(PrimitiveSlot, v)
		return h.Alloc(obj)
	default:
		return NullID
	}
}
