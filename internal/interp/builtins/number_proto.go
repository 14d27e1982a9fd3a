package builtins

import (
	"strconv"

	"github.com/cwbudde/go-jsi/internal/interp/runtime"
)

func installNumberPrototype(h *runtime.Heap) {
	proto := h.NumberProto
	method(h, proto, "toString", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		n := thisNumber(h, this)
		radixArg := arg(args, 0)
		if radixArg.IsUndefined() {
			return runtime.String(runtime.FormatNumber(n)), nil
		}
		radix := int(radixArg.ToNumber())
		return runtime.String(strconv.FormatInt(int64(n), radix)), nil
	})
	method(h, proto, "valueOf", 0, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		return runtime.Number(thisNumber(h, this)), nil
	})
	method(h, proto, "toFixed", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		digits := int(arg(args, 0).ToNumber())
		return runtime.String(strconv.FormatFloat(thisNumber(h, this), 'f', digits, 64)), nil
	})
}

func thisNumber(h *runtime.Heap, this runtime.ObjectId) float64 {
	if this == runtime.NullID {
		return 0
	}
	if v, ok := h.Get(this).GetInternal(runtime.PrimitiveSlot); ok {
		return v.Num
	}
	return runtime.ToNumberCoerced(h, runtime.RefValue(this))
}

func thisBoolean(h *runtime.Heap, this runtime.ObjectId) bool {
	if this == runtime.NullID {
		return false
	}
	if v, ok := h.Get(this).GetInternal(runtime.PrimitiveSlot); ok {
		return v.Bool
	}
	return true
}

func installBooleanPrototype(h *runtime.Heap) {
	proto := h.BooleanProto
	method(h, proto, "toString", 0, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		return runtime.String(runtime.Stringify(h, runtime.Bool(thisBoolean(h, this)))), nil
	})
	method(h, proto, "valueOf", 0, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		return runtime.Bool(thisBoolean(h, this)), nil
	})
}
