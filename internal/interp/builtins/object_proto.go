package builtins

import "github.com/cwbudde/go-jsi/internal/interp/runtime"

// installObjectPrototype installs Object.prototype's fixed method set
// (spec's Non-goals exclude a full property-descriptor API, but
// hasOwnProperty/toString/valueOf are universally expected and cost
// nothing extra to wire).
func installObjectPrototype(h *runtime.Heap) {
	proto := h.ObjectProto
	method(h, proto, "hasOwnProperty", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		if this == runtime.NullID {
			return runtime.Bool(false), nil
		}
		name := runtime.Stringify(h, arg(args, 0))
		return runtime.Bool(h.Get(this).HasOwn(name)), nil
	})
	method(h, proto, "toString", 0, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		if this == runtime.NullID {
			return runtime.String("[object Object]"), nil
		}
		return runtime.String(runtime.Stringify(h, runtime.RefValue(this))), nil
	})
	method(h, proto, "valueOf", 0, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		if this == runtime.NullID {
			return runtime.Undefined(), nil
		}
		return runtime.RefValue(this), nil
	})
	method(h, proto, "isPrototypeOf", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		candidate := arg(args, 0)
		if this == runtime.NullID || !candidate.IsRef() {
			return runtime.Bool(false), nil
		}
		for cur := h.Get(candidate.Ref).Proto; cur != runtime.NullID; cur = h.Get(cur).Proto {
			if cur == this {
				return runtime.Bool(true), nil
			}
		}
		return runtime.Bool(false), nil
	})
}

// installFunctionPrototype installs Function.prototype's call/apply,
// routed through h.Invoke so this package never needs to import the
// evaluator.
func installFunctionPrototype(h *runtime.Heap) {
	proto := h.FunctionProto
	method(h, proto, "call", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		newThis := arg(args, 0)
		rest := []runtime.Value{}
		if len(args) > 1 {
			rest = args[1:]
		}
		return h.Invoke(this, newThis, rest)
	})
	method(h, proto, "apply", 2, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		newThis := arg(args, 0)
		var rest []runtime.Value
		if argsArr := arg(args, 1); argsArr.IsRef() {
			if elems, ok := h.Get(argsArr.Ref).AsArray(); ok {
				rest = elems
			}
		}
		return h.Invoke(this, newThis, rest)
	})
	method(h, proto, "toString", 0, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		return runtime.String(runtime.Stringify(h, runtime.RefValue(this))), nil
	})
}
