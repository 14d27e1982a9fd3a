package builtins

import (
	"testing"

	"github.com/cwbudde/go-jsi/internal/interp/runtime"
)

// callGlobalMethod looks up heap.<globalName>.<methodName> and invokes its
// HostFn payload directly, the same path Heap.Invoke would take for a
// call expression, without needing an Evaluator to drive it — builtins
// are plain host functions, so this package can exercise them on its own.
func callGlobalMethod(t *testing.T, h *runtime.Heap, globalName, methodName string, args []runtime.Value) runtime.Value {
	t.Helper()
	obj := runtime.LookupValue(h, runtime.GlobalID, globalName)
	fn, ok := h.Get(obj.Ref).GetOwn(methodName)
	if !ok {
		t.Fatalf("%s has no method %q", globalName, methodName)
	}
	v, err := h.Get(fn.Ref).Payload.HostFn(h, runtime.NullID, args)
	if err != nil {
		t.Fatalf("%s.%s call returned error: %v", globalName, methodName, err)
	}
	return v
}

func callMethod(t *testing.T, h *runtime.Heap, this runtime.ObjectId, methodName string, args []runtime.Value) runtime.Value {
	t.Helper()
	fn, ok := h.Get(this).GetOwn(methodName)
	if !ok {
		// fall through to prototype chain
		proto := h.Get(this).Proto
		fn, ok = h.Get(proto).GetOwn(methodName)
	}
	if !ok {
		t.Fatalf("no method %q found on object or its prototype", methodName)
	}
	v, err := h.Get(fn.Ref).Payload.HostFn(h, this, args)
	if err != nil {
		t.Fatalf("%s call returned error: %v", methodName, err)
	}
	return v
}

func TestMathAbsAndMax(t *testing.T) {
	h := runtime.NewHeap()
	Bootstrap(h)

	v := callGlobalMethod(t, h, "Math", "abs", []runtime.Value{runtime.Number(-3)})
	if v.Num != 3 {
		t.Errorf("Math.abs(-3) = %v, want 3", v.Num)
	}

	v = callGlobalMethod(t, h, "Math", "max", []runtime.Value{runtime.Number(1), runtime.Number(9), runtime.Number(4)})
	if v.Num != 9 {
		t.Errorf("Math.max(1, 9, 4) = %v, want 9", v.Num)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	h := runtime.NewHeap()
	Bootstrap(h)

	arr := h.NewArrayObject([]runtime.Value{runtime.Number(1), runtime.Number(2)})
	text := callGlobalMethod(t, h, "JSON", "stringify", []runtime.Value{runtime.RefValue(arr)})
	if text.Str != "[1,2]" {
		t.Fatalf("JSON.stringify([1,2]) = %q, want \"[1,2]\"", text.Str)
	}

	parsed := callGlobalMethod(t, h, "JSON", "parse", []runtime.Value{text})
	if !parsed.IsRef() {
		t.Fatalf("JSON.parse result is not a reference: %+v", parsed)
	}
	elems, ok := h.Get(parsed.Ref).AsArray()
	if !ok || len(elems) != 2 || elems[0].Num != 1 || elems[1].Num != 2 {
		t.Errorf("JSON.parse(\"[1,2]\") round-tripped to %+v", elems)
	}
}

func TestArrayPrototypePushJoin(t *testing.T) {
	h := runtime.NewHeap()
	Bootstrap(h)

	id := h.NewArrayObject([]runtime.Value{runtime.Number(1), runtime.Number(2)})
	callMethod(t, h, id, "push", []runtime.Value{runtime.Number(3)})
	elems, _ := h.Get(id).AsArray()
	if len(elems) != 3 {
		t.Fatalf("after push, array has %d elements, want 3", len(elems))
	}

	joined := callMethod(t, h, id, "join", []runtime.Value{runtime.String("-")})
	if joined.Str != "1-2-3" {
		t.Errorf("join(\"-\") = %q, want \"1-2-3\"", joined.Str)
	}
}

func TestStringPrototypeMethods(t *testing.T) {
	h := runtime.NewHeap()
	Bootstrap(h)

	id := h.Alloc(runtime.NewObject(h.StringProto))
	h.Get(id).Payload = runtime.Payload{Kind: runtime.PayloadString, Str: "Hello"}

	upper := callMethod(t, h, id, "toUpperCase", nil)
	if upper.Str != "HELLO" {
		t.Errorf("toUpperCase() = %q, want \"HELLO\"", upper.Str)
	}

	idx := callMethod(t, h, id, "indexOf", []runtime.Value{runtime.String("ll")})
	if idx.Num != 2 {
		t.Errorf("indexOf(\"ll\") = %v, want 2", idx.Num)
	}
}

func TestErrorConstructorAndStringify(t *testing.T) {
	h := runtime.NewHeap()
	Bootstrap(h)

	ctor := runtime.LookupValue(h, runtime.GlobalID, "TypeError")
	v, err := h.Get(ctor.Ref).Payload.HostFn(h, runtime.NullID, []runtime.Value{runtime.String("bad value")})
	if err != nil {
		t.Fatalf("TypeError(\"bad value\") returned error: %v", err)
	}
	msg := runtime.Stringify(h, v)
	if msg != "TypeError: bad value" {
		t.Errorf("Stringify(new TypeError(...)) = %q, want \"TypeError: bad value\"", msg)
	}
}

func TestBootstrapDefinesWellKnownGlobals(t *testing.T) {
	h := runtime.NewHeap()
	Bootstrap(h)

	for _, name := range []string{"Object", "Array", "String", "Number", "Boolean", "Error", "Math", "JSON", "console", "undefined", "NaN", "Infinity"} {
		if !h.Global().HasOwn(name) {
			t.Errorf("Bootstrap did not define global %q", name)
		}
	}
}
