package builtins

import (
	"github.com/cwbudde/go-jsi/internal/interp/runtime"
)

// constructor allocates a callable global prototyped on FunctionProto,
// wires its `prototype` property to proto (and proto's `constructor`
// backlink to it, mirroring Heap.MakeClosure's shape for a user function),
// and binds name as a global. fn is called both for `new Name(...)` (this
// is the fresh instance evalNew allocated) and a bare `Name(...)` call
// (this is NullID, per objectIDOf) — each built-in constructor below
// branches on that to decide whether to mutate the instance in place or
// return a fresh Value directly.
func constructor(h *runtime.Heap, name string, proto runtime.ObjectId, arity int, fn runtime.HostFunc) {
	id := h.NewHostFunction(name, arity, fn)
	ctorObj := h.Get(id)
	ctorObj.SetHidden("prototype", runtime.RefValue(proto))
	h.Get(proto).SetHidden("constructor", runtime.RefValue(id))
	h.DefineGlobal(name, runtime.RefValue(id))
}

// installGlobalConstructors binds Object, Array, String, Number, Boolean,
// and the Error family as global constructors, each chained to the
// prototype its matching install*Prototype already populated.
func installGlobalConstructors(h *runtime.Heap) {
	constructor(h, "Object", h.ObjectProto, 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		a := arg(args, 0)
		if a.IsRef() {
			return a, nil
		}
		if this == runtime.NullID {
			return runtime.RefValue(h.NewPlainObject()), nil
		}
		return runtime.Undefined(), nil
	})

	constructor(h, "Array", h.ArrayProto, 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		elems := arrayConstructorElements(args)
		if this == runtime.NullID {
			return runtime.RefValue(h.NewArrayObject(elems)), nil
		}
		h.Get(this).Payload = runtime.Payload{Kind: runtime.PayloadArray, Array: elems}
		return runtime.Undefined(), nil
	})

	constructor(h, "String", h.StringProto, 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		s := ""
		if len(args) > 0 {
			s = runtime.Stringify(h, args[0])
		}
		if this == runtime.NullID {
			return runtime.String(s), nil
		}
		h.Get(this).Payload = runtime.Payload{Kind: runtime.PayloadString, Str: s}
		return runtime.Undefined(), nil
	})

	constructor(h, "Number", h.NumberProto, 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		n := 0.0
		if len(args) > 0 {
			n = runtime.ToNumberCoerced(h, args[0])
		}
		if this == runtime.NullID {
			return runtime.Number(n), nil
		}
		h.Get(this).SetInternal(runtime.PrimitiveSlot, runtime.Number(n))
		return runtime.Undefined(), nil
	})

	constructor(h, "Boolean", h.BooleanProto, 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		b := arg(args, 0).ToBoolean()
		if this == runtime.NullID {
			return runtime.Bool(b), nil
		}
		h.Get(this).SetInternal(runtime.PrimitiveSlot, runtime.Bool(b))
		return runtime.Undefined(), nil
	})

	installErrorConstructor(h, "Error")
	installErrorConstructor(h, "TypeError")
	installErrorConstructor(h, "ReferenceError")
	installErrorConstructor(h, "SyntaxError")
	installErrorConstructor(h, "RangeError")
}

// arrayConstructorElements implements Array(...)'s overload: a single
// numeric argument is a length (a sparse array of that many undefineds),
// anything else is the literal element list, matching new Array(5) vs
// new Array(1, 2, 3).
func arrayConstructorElements(args []runtime.Value) []runtime.Value {
	if len(args) == 1 && args[0].Kind == runtime.KindNumber {
		n := int(args[0].Num)
		if n < 0 {
			n = 0
		}
		elems := make([]runtime.Value, n)
		for i := range elems {
			elems[i] = runtime.Undefined()
		}
		return elems
	}
	return append([]runtime.Value(nil), args...)
}

// installErrorConstructor binds one Error subclass constructor. Every
// subclass shares ErrorProto's method set (installErrorPrototype) but
// gets its own `name` own property, the usual Error.prototype.name
// shadowing shape.
func installErrorConstructor(h *runtime.Heap, class string) {
	proto := h.ErrorProto
	if class != "Error" {
		proto = h.Alloc(runtime.NewObject(h.ErrorProto))
		h.Get(proto).SetHidden("name", runtime.String(class))
	}
	constructor(h, class, proto, 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		msg := ""
		if len(args) > 0 && !args[0].IsUndefined() {
			msg = runtime.Stringify(h, args[0])
		}
		if this == runtime.NullID {
			return runtime.RefValue(h.NewErrorObject(class, msg)), nil
		}
		obj := h.Get(this)
		obj.Payload = runtime.Payload{Kind: runtime.PayloadError, ErrorClass: class}
		obj.SetOwnProperty("message", runtime.String(msg))
		return runtime.Undefined(), nil
	})
}
