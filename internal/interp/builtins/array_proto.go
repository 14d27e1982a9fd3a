package builtins

import (
	"sort"
	"strings"

	"github.com/cwbudde/go-jsi/internal/interp/exception"
	"github.com/cwbudde/go-jsi/internal/interp/runtime"
)

// callback validates cb is an invocable object reference before handing
// it to h.Invoke, turning a bad argument (`[1,2].forEach(5)`) into a
// catchable TypeError instead of a panic on a dereferenced NullID.
func callback(h *runtime.Heap, cb runtime.Value, this runtime.Value, args []runtime.Value) (runtime.Value, error) {
	if !cb.IsRef() || !h.Get(cb.Ref).IsCallable() {
		return runtime.Undefined(), exception.NewType(h.CurrentLoc, "callback is not a function")
	}
	return h.Invoke(cb.Ref, this, args)
}

func thisArray(h *runtime.Heap, this runtime.ObjectId) []runtime.Value {
	if this == runtime.NullID {
		return nil
	}
	elems, _ := h.Get(this).AsArray()
	return elems
}

func setThisArray(h *runtime.Heap, this runtime.ObjectId, elems []runtime.Value) {
	h.Get(this).Payload.Array = elems
}

// installArrayPrototype installs the subset of Array.prototype every
// ECMAScript-family program reaches for: mutators (push/pop/shift/
// unshift/splice/sort/reverse), iteration (forEach/map/filter/reduce/
// find/some/every), and the read-only helpers (slice/concat/join/
// indexOf/includes). Iteration callbacks go through h.Invoke.
func installArrayPrototype(h *runtime.Heap) {
	proto := h.ArrayProto

	method(h, proto, "push", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		elems := append(thisArray(h, this), args...)
		setThisArray(h, this, elems)
		return runtime.Number(float64(len(elems))), nil
	})
	method(h, proto, "pop", 0, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		elems := thisArray(h, this)
		if len(elems) == 0 {
			return runtime.Undefined(), nil
		}
		last := elems[len(elems)-1]
		setThisArray(h, this, elems[:len(elems)-1])
		return last, nil
	})
	method(h, proto, "shift", 0, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		elems := thisArray(h, this)
		if len(elems) == 0 {
			return runtime.Undefined(), nil
		}
		first := elems[0]
		setThisArray(h, this, elems[1:])
		return first, nil
	})
	method(h, proto, "unshift", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		elems := append(append([]runtime.Value{}, args...), thisArray(h, this)...)
		setThisArray(h, this, elems)
		return runtime.Number(float64(len(elems))), nil
	})
	method(h, proto, "slice", 2, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		elems := thisArray(h, this)
		start, end := sliceBounds(len(elems), arg(args, 0), arg(args, 1))
		out := append([]runtime.Value{}, elems[start:end]...)
		return runtime.RefValue(h.NewArrayObject(out)), nil
	})
	method(h, proto, "splice", 2, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		elems := thisArray(h, this)
		start, _ := sliceBounds(len(elems), arg(args, 0), runtime.Undefined())
		deleteCount := len(elems) - start
		if len(args) > 1 {
			n := int(arg(args, 1).ToNumber())
			if n < 0 {
				n = 0
			}
			if n < deleteCount {
				deleteCount = n
			}
		}
		removed := append([]runtime.Value{}, elems[start:start+deleteCount]...)
		var inserted []runtime.Value
		if len(args) > 2 {
			inserted = args[2:]
		}
		result := append([]runtime.Value{}, elems[:start]...)
		result = append(result, inserted...)
		result = append(result, elems[start+deleteCount:]...)
		setThisArray(h, this, result)
		return runtime.RefValue(h.NewArrayObject(removed)), nil
	})
	method(h, proto, "concat", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		out := append([]runtime.Value{}, thisArray(h, this)...)
		for _, a := range args {
			if a.IsRef() {
				if elems, ok := h.Get(a.Ref).AsArray(); ok {
					out = append(out, elems...)
					continue
				}
			}
			out = append(out, a)
		}
		return runtime.RefValue(h.NewArrayObject(out)), nil
	})
	method(h, proto, "join", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		sep := ","
		if len(args) > 0 && !arg(args, 0).IsUndefined() {
			sep = runtime.Stringify(h, arg(args, 0))
		}
		elems := thisArray(h, this)
		parts := make([]string, len(elems))
		for i, el := range elems {
			if el.IsNullish() {
				parts[i] = ""
				continue
			}
			parts[i] = runtime.Stringify(h, el)
		}
		return runtime.String(strings.Join(parts, sep)), nil
	})
	method(h, proto, "reverse", 0, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		elems := thisArray(h, this)
		for i, j := 0, len(elems)-1; i < j; i, j = i+1, j-1 {
			elems[i], elems[j] = elems[j], elems[i]
		}
		return runtime.RefValue(this), nil
	})
	method(h, proto, "indexOf", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		target := arg(args, 0)
		for i, el := range thisArray(h, this) {
			if runtime.StrictEquals(el, target) {
				return runtime.Number(float64(i)), nil
			}
		}
		return runtime.Number(-1), nil
	})
	method(h, proto, "includes", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		target := arg(args, 0)
		for _, el := range thisArray(h, this) {
			if runtime.StrictEquals(el, target) {
				return runtime.Bool(true), nil
			}
		}
		return runtime.Bool(false), nil
	})
	method(h, proto, "sort", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		elems := thisArray(h, this)
		cmp := arg(args, 0)
		var sortErr error
		sort.SliceStable(elems, func(i, j int) bool {
			if sortErr != nil {
				return false
			}
			if cmp.IsRef() {
				res, err := h.Invoke(cmp.Ref, runtime.Undefined(), []runtime.Value{elems[i], elems[j]})
				if err != nil {
					sortErr = err
					return false
				}
				return res.ToNumber() < 0
			}
			return runtime.Stringify(h, elems[i]) < runtime.Stringify(h, elems[j])
		})
		if sortErr != nil {
			return runtime.Undefined(), sortErr
		}
		return runtime.RefValue(this), nil
	})
	method(h, proto, "forEach", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		cb := arg(args, 0)
		for i, el := range thisArray(h, this) {
			if _, err := callback(h, cb, runtime.Undefined(), []runtime.Value{el, runtime.Number(float64(i)), runtime.RefValue(this)}); err != nil {
				return runtime.Undefined(), err
			}
		}
		return runtime.Undefined(), nil
	})
	method(h, proto, "map", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		cb := arg(args, 0)
		elems := thisArray(h, this)
		out := make([]runtime.Value, len(elems))
		for i, el := range elems {
			v, err := callback(h, cb, runtime.Undefined(), []runtime.Value{el, runtime.Number(float64(i)), runtime.RefValue(this)})
			if err != nil {
				return runtime.Undefined(), err
			}
			out[i] = v
		}
		return runtime.RefValue(h.NewArrayObject(out)), nil
	})
	method(h, proto, "filter", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		cb := arg(args, 0)
		var out []runtime.Value
		for i, el := range thisArray(h, this) {
			v, err := callback(h, cb, runtime.Undefined(), []runtime.Value{el, runtime.Number(float64(i)), runtime.RefValue(this)})
			if err != nil {
				return runtime.Undefined(), err
			}
			if v.ToBoolean() {
				out = append(out, el)
			}
		}
		return runtime.RefValue(h.NewArrayObject(out)), nil
	})
	method(h, proto, "reduce", 2, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		cb := arg(args, 0)
		elems := thisArray(h, this)
		i := 0
		acc := arg(args, 1)
		if len(args) < 2 {
			if len(elems) == 0 {
				return runtime.Undefined(), nil
			}
			acc = elems[0]
			i = 1
		}
		for ; i < len(elems); i++ {
			v, err := callback(h, cb, runtime.Undefined(), []runtime.Value{acc, elems[i], runtime.Number(float64(i)), runtime.RefValue(this)})
			if err != nil {
				return runtime.Undefined(), err
			}
			acc = v
		}
		return acc, nil
	})
	method(h, proto, "find", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		cb := arg(args, 0)
		for i, el := range thisArray(h, this) {
			v, err := callback(h, cb, runtime.Undefined(), []runtime.Value{el, runtime.Number(float64(i)), runtime.RefValue(this)})
			if err != nil {
				return runtime.Undefined(), err
			}
			if v.ToBoolean() {
				return el, nil
			}
		}
		return runtime.Undefined(), nil
	})
	method(h, proto, "some", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		cb := arg(args, 0)
		for i, el := range thisArray(h, this) {
			v, err := callback(h, cb, runtime.Undefined(), []runtime.Value{el, runtime.Number(float64(i)), runtime.RefValue(this)})
			if err != nil {
				return runtime.Undefined(), err
			}
			if v.ToBoolean() {
				return runtime.Bool(true), nil
			}
		}
		return runtime.Bool(false), nil
	})
	method(h, proto, "every", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		cb := arg(args, 0)
		for i, el := range thisArray(h, this) {
			v, err := callback(h, cb, runtime.Undefined(), []runtime.Value{el, runtime.Number(float64(i)), runtime.RefValue(this)})
			if err != nil {
				return runtime.Undefined(), err
			}
			if !v.ToBoolean() {
				return runtime.Bool(false), nil
			}
		}
		return runtime.Bool(true), nil
	})
	method(h, proto, "toString", 0, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		return runtime.String(runtime.Stringify(h, runtime.RefValue(this))), nil
	})
}

// sliceBounds resolves Array.prototype.slice/splice's start/end
// arguments, including negative indices counted from the array's end.
func sliceBounds(length int, startArg, endArg runtime.Value) (int, int) {
	clamp := func(v float64) int {
		n := int(v)
		if n < 0 {
			n += length
		}
		if n < 0 {
			n = 0
		}
		if n > length {
			n = length
		}
		return n
	}
	start := 0
	if !startArg.IsUndefined() {
		start = clamp(startArg.ToNumber())
	}
	end := length
	if !endArg.IsUndefined() {
		end = clamp(endArg.ToNumber())
	}
	if end < start {
		end = start
	}
	return start, end
}
