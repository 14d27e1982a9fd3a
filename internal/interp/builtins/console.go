package builtins

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-jsi/internal/interp/runtime"
)

// installConsole binds console.log/warn/error/info, all writing to
// h.Output space-joined and newline-terminated, the same shape the
// teacher's builtinPrintLn gives PrintLn against Interpreter.output — a
// nil Output silently discards, matching "some tests use New(nil)".
func installConsole(h *runtime.Heap) {
	id := h.NewPlainObject()

	log := func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		if h.Output == nil {
			return runtime.Undefined(), nil
		}
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = runtime.Stringify(h, a)
		}
		fmt.Fprintln(h.Output, strings.Join(parts, " "))
		return runtime.Undefined(), nil
	}

	method(h, id, "log", 0, log)
	method(h, id, "info", 0, log)
	method(h, id, "warn", 0, log)
	method(h, id, "error", 0, log)

	h.DefineGlobal("console", runtime.RefValue(id))
}
