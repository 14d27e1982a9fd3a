package builtins

import (
	"math"
	"math/rand"

	"github.com/cwbudde/go-jsi/internal/interp/runtime"
)

// installMath populates the global Math object. Each entry is grounded on
// the Pascal math library's builtin set (Math.Abs/Floor/Ceil/Round/...),
// translated to the one-Math-object shape the language's family uses
// instead of free global functions.
func installMath(h *runtime.Heap) {
	id := h.NewPlainObject()
	m := h.Get(id)

	m.SetHidden("PI", runtime.Number(math.Pi))
	m.SetHidden("E", runtime.Number(math.E))
	m.SetHidden("LN2", runtime.Number(math.Ln2))
	m.SetHidden("LN10", runtime.Number(math.Log(10)))
	m.SetHidden("SQRT2", runtime.Number(math.Sqrt2))

	unary := func(name string, fn func(float64) float64) {
		method(h, id, name, 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
			return runtime.Number(fn(runtime.ToNumberCoerced(h, arg(args, 0)))), nil
		})
	}
	unary("abs", math.Abs)
	unary("floor", math.Floor)
	unary("ceil", math.Ceil)
	unary("round", math.Round)
	unary("trunc", math.Trunc)
	unary("sqrt", math.Sqrt)
	unary("cbrt", math.Cbrt)
	unary("sin", math.Sin)
	unary("cos", math.Cos)
	unary("tan", math.Tan)
	unary("asin", math.Asin)
	unary("acos", math.Acos)
	unary("atan", math.Atan)
	unary("log", math.Log)
	unary("log2", math.Log2)
	unary("log10", math.Log10)
	unary("exp", math.Exp)
	unary("sign", func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return x
		}
	})

	method(h, id, "pow", 2, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		return runtime.Number(math.Pow(runtime.ToNumberCoerced(h, arg(args, 0)), runtime.ToNumberCoerced(h, arg(args, 1)))), nil
	})
	method(h, id, "atan2", 2, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		return runtime.Number(math.Atan2(runtime.ToNumberCoerced(h, arg(args, 0)), runtime.ToNumberCoerced(h, arg(args, 1)))), nil
	})
	method(h, id, "hypot", 2, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		return runtime.Number(math.Hypot(runtime.ToNumberCoerced(h, arg(args, 0)), runtime.ToNumberCoerced(h, arg(args, 1)))), nil
	})
	method(h, id, "max", 2, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		if len(args) == 0 {
			return runtime.Number(math.Inf(-1)), nil
		}
		best := runtime.ToNumberCoerced(h, args[0])
		for _, a := range args[1:] {
			n := runtime.ToNumberCoerced(h, a)
			if n > best || math.IsNaN(n) {
				best = n
			}
		}
		return runtime.Number(best), nil
	})
	method(h, id, "min", 2, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		if len(args) == 0 {
			return runtime.Number(math.Inf(1)), nil
		}
		best := runtime.ToNumberCoerced(h, args[0])
		for _, a := range args[1:] {
			n := runtime.ToNumberCoerced(h, a)
			if n < best || math.IsNaN(n) {
				best = n
			}
		}
		return runtime.Number(best), nil
	})
	method(h, id, "random", 0, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		return runtime.Number(rand.Float64()), nil
	})

	h.DefineGlobal("Math", runtime.RefValue(id))
}
