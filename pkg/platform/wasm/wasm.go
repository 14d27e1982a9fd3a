//go:build js && wasm

// Package wasm is the WebAssembly entry point for the jsi interpreter: it
// exposes pkg/jsi's Engine to JavaScript as a global object, the way the
// teacher's cmd/dwscript-wasm/main.go exposes window.DWScript via a
// pkg/wasm.RegisterAPI call. The teacher's own pkg/platform/wasm source
// was not retrieved (only its _test.go survived in the pack, and the
// wasm entry point it actually imports, pkg/wasm, isn't in the pack at
// all) — this file's export surface is inferred from cmd/dwscript-wasm's
// call site: a RegisterAPI() that installs js.FuncOf-wrapped methods on a
// global object before main blocks on an empty channel.
package wasm

import (
	"syscall/js"

	"github.com/cwbudde/go-jsi/pkg/jsi"
)

// engine is the single interpreter instance backing every call from
// JavaScript for the lifetime of the WASM module, mirroring the
// teacher's one-module-one-engine lifecycle (cmd/dwscript-wasm/main.go
// calls RegisterAPI once from main before blocking forever).
var engine = jsi.New()

// RegisterAPI installs the host surface on the JavaScript global object
// under the name "Jsi", the wasm counterpart to cmd/jsi's run/parse/repl
// cobra commands: evaluateProgram takes ESTree JSON and returns the
// program's completion value, the same contract as jsi.Engine.EvalJSON.
func RegisterAPI() {
	api := map[string]interface{}{
		"evaluateProgram": js.FuncOf(evaluateProgram),
	}
	js.Global().Set("Jsi", js.ValueOf(api))
}

// evaluateProgram adapts EvaluateProgram to the (this, args) shape
// js.FuncOf requires, returning [value, error] to JavaScript since a Go
// function can't return a (string, error) pair across the bridge
// directly.
func evaluateProgram(_ js.Value, args []js.Value) interface{} {
	if len(args) != 1 || args[0].Type() != js.TypeString {
		return js.ValueOf([]interface{}{"", "evaluateProgram expects a single JSON string argument"})
	}

	value, err := EvaluateProgram(args[0].String())
	if err != nil {
		return js.ValueOf([]interface{}{"", err.Error()})
	}
	return js.ValueOf([]interface{}{value, nil})
}

// EvaluateProgram imports astJSON as an ESTree Program and runs it on the
// module-wide Engine, returning its stringified completion value. This is
// the Go-callable form behind evaluateProgram's js.FuncOf wrapper, kept
// separate so it can be exercised directly from a GOOS=js test without
// going through the JavaScript value conversions.
func EvaluateProgram(astJSON string) (string, error) {
	result, err := engine.EvalJSON(astJSON)
	if err != nil {
		return "", err
	}
	return result.Value, nil
}
