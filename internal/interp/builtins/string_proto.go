package builtins

import (
	"strings"

	"github.com/cwbudde/go-jsi/internal/interp/runtime"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

func thisString(h *runtime.Heap, this runtime.ObjectId) string {
	if this == runtime.NullID {
		return ""
	}
	if s, ok := h.Get(this).AsString(); ok {
		return s
	}
	return runtime.Stringify(h, runtime.RefValue(this))
}

// installStringPrototype installs String.prototype's method set. Case
// conversion and trimming use the standard library, but normalize and
// localeCompare are genuinely locale-sensitive operations stdlib doesn't
// attempt, so they're grounded on golang.org/x/text the way SPEC_FULL.md
// §3 wires it in.
func installStringPrototype(h *runtime.Heap) {
	proto := h.StringProto

	method(h, proto, "charAt", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		runes := []rune(thisString(h, this))
		idx := int(arg(args, 0).ToNumber())
		if idx < 0 || idx >= len(runes) {
			return runtime.String(""), nil
		}
		return runtime.String(string(runes[idx])), nil
	})
	method(h, proto, "charCodeAt", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		runes := []rune(thisString(h, this))
		idx := int(arg(args, 0).ToNumber())
		if idx < 0 || idx >= len(runes) {
			return runtime.Number(runtime.Undefined().ToNumber()), nil
		}
		return runtime.Number(float64(runes[idx])), nil
	})
	method(h, proto, "indexOf", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		s := thisString(h, this)
		sub := runtime.Stringify(h, arg(args, 0))
		return runtime.Number(float64(strings.Index(s, sub))), nil
	})
	method(h, proto, "lastIndexOf", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		s := thisString(h, this)
		sub := runtime.Stringify(h, arg(args, 0))
		return runtime.Number(float64(strings.LastIndex(s, sub))), nil
	})
	method(h, proto, "includes", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		s := thisString(h, this)
		sub := runtime.Stringify(h, arg(args, 0))
		return runtime.Bool(strings.Contains(s, sub)), nil
	})
	method(h, proto, "startsWith", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		return runtime.Bool(strings.HasPrefix(thisString(h, this), runtime.Stringify(h, arg(args, 0)))), nil
	})
	method(h, proto, "endsWith", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		return runtime.Bool(strings.HasSuffix(thisString(h, this), runtime.Stringify(h, arg(args, 0)))), nil
	})
	method(h, proto, "slice", 2, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		runes := []rune(thisString(h, this))
		start, end := sliceBounds(len(runes), arg(args, 0), arg(args, 1))
		return runtime.String(string(runes[start:end])), nil
	})
	method(h, proto, "substring", 2, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		runes := []rune(thisString(h, this))
		a, b := clampIndex(len(runes), arg(args, 0)), clampIndex(len(runes), arg(args, 1))
		if arg(args, 1).IsUndefined() {
			b = len(runes)
		}
		if a > b {
			a, b = b, a
		}
		return runtime.String(string(runes[a:b])), nil
	})
	method(h, proto, "toUpperCase", 0, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		return runtime.String(strings.ToUpper(thisString(h, this))), nil
	})
	method(h, proto, "toLowerCase", 0, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		return runtime.String(strings.ToLower(thisString(h, this))), nil
	})
	method(h, proto, "trim", 0, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		return runtime.String(strings.TrimSpace(thisString(h, this))), nil
	})
	method(h, proto, "split", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		s := thisString(h, this)
		sepArg := arg(args, 0)
		var parts []string
		if sepArg.IsUndefined() {
			parts = []string{s}
		} else {
			sep := runtime.Stringify(h, sepArg)
			if sep == "" {
				for _, r := range s {
					parts = append(parts, string(r))
				}
			} else {
				parts = strings.Split(s, sep)
			}
		}
		elems := make([]runtime.Value, len(parts))
		for i, p := range parts {
			elems[i] = runtime.String(p)
		}
		return runtime.RefValue(h.NewArrayObject(elems)), nil
	})
	method(h, proto, "repeat", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		n := int(arg(args, 0).ToNumber())
		if n < 0 {
			n = 0
		}
		return runtime.String(strings.Repeat(thisString(h, this), n)), nil
	})
	method(h, proto, "concat", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		var b strings.Builder
		b.WriteString(thisString(h, this))
		for _, a := range args {
			b.WriteString(runtime.Stringify(h, a))
		}
		return runtime.String(b.String()), nil
	})
	method(h, proto, "toString", 0, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		return runtime.String(thisString(h, this)), nil
	})
	method(h, proto, "valueOf", 0, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		return runtime.String(thisString(h, this)), nil
	})

	// normalize(form) applies Unicode normalization via golang.org/x/text's
	// norm package; form defaults to NFC as the DOM/ECMAScript default does.
	method(h, proto, "normalize", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		s := thisString(h, this)
		form := norm.NFC
		switch runtime.Stringify(h, arg(args, 0)) {
		case "NFD":
			form = norm.NFD
		case "NFKC":
			form = norm.NFKC
		case "NFKD":
			form = norm.NFKD
		}
		return runtime.String(form.String(s)), nil
	})

	// localeCompare uses golang.org/x/text/collate for a locale-aware
	// three-way comparison rather than a byte-wise strings.Compare.
	method(h, proto, "localeCompare", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		col := collate.New(language.Und)
		return runtime.Number(float64(col.CompareString(thisString(h, this), runtime.Stringify(h, arg(args, 0))))), nil
	})
}

func clampIndex(length int, v runtime.Value) int {
	if v.IsUndefined() {
		return 0
	}
	n := int(v.ToNumber())
	if n < 0 {
		n = 0
	}
	if n > length {
		n = length
	}
	return n
}
