package builtins

import (
	"github.com/cwbudde/go-jsi/internal/interp/runtime"
)

// installErrorPrototype installs Error.prototype's shared shape. Each
// concrete Error subclass (TypeError, RangeError, ...) gets its own
// prototype chained to this one and carrying its own `name`
// (installErrorConstructor); objects built by NewErrorObject, such as
// those exception.Materialize allocates, are prototyped directly on this
// one and carry their class in own `name` and payload (spec §4.4).
func installErrorPrototype(h *runtime.Heap) {
	proto := h.ErrorProto
	h.Get(proto).SetHidden("name", runtime.String("Error"))
	h.Get(proto).SetHidden("message", runtime.String(""))

	method(h, proto, "toString", 0, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		return runtime.String(runtime.Stringify(h, runtime.RefValue(this))), nil
	})
}
