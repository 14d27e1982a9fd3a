package builtins

import (
	"math"

	"github.com/cwbudde/go-jsi/internal/interp/runtime"
)

// Bootstrap populates a fresh Heap's well-known prototypes and global
// objects. It must run once, before any user program, on a Heap whose
// prototype fields are still NullID (spec §6, "a fresh interpreter
// bootstraps its globals before running user code").
func Bootstrap(h *runtime.Heap) {
	h.ObjectProto = h.Alloc(runtime.NewObject(runtime.NullID))
	h.FunctionProto = h.Alloc(runtime.NewObject(h.ObjectProto))
	h.ArrayProto = h.Alloc(runtime.NewObject(h.ObjectProto))
	h.StringProto = h.Alloc(runtime.NewObject(h.ObjectProto))
	h.BooleanProto = h.Alloc(runtime.NewObject(h.ObjectProto))
	h.NumberProto = h.Alloc(runtime.NewObject(h.ObjectProto))
	h.ErrorProto = h.Alloc(runtime.NewObject(h.ObjectProto))

	// The global object itself chains to Object.prototype so plain
	// property lookups on unqualified globals see Object.prototype methods,
	// matching how every other object does.
	h.Global().Proto = h.ObjectProto

	installObjectPrototype(h)
	installFunctionPrototype(h)
	installArrayPrototype(h)
	installStringPrototype(h)
	installNumberPrototype(h)
	installBooleanPrototype(h)
	installErrorPrototype(h)

	installGlobalConstructors(h)
	installMath(h)
	installJSON(h)
	installConsole(h)

	h.DefineGlobal("undefined", runtime.Undefined())
	h.DefineGlobal("NaN", runtime.Number(math.NaN()))
	h.DefineGlobal("Infinity", runtime.Number(math.Inf(1)))
}

func method(h *runtime.Heap, proto runtime.ObjectId, name string, arity int, fn runtime.HostFunc) {
	id := h.NewHostFunction(name, arity, fn)
	h.Get(proto).SetHidden(name, runtime.RefValue(id))
}

// arg returns args[i], or Undefined if the call site supplied fewer
// arguments than the built-in expects — every built-in here is tolerant
// of a short argument list rather than raising an arity error, matching
// the language's general "missing arguments are undefined" rule.
func arg(args []runtime.Value, i int) runtime.Value {
	if i < len(args) {
		return args[i]
	}
	return runtime.Undefined()
}
