//go:build js && wasm

// Package main is the WebAssembly entry point for the jsi interpreter.
// It exports the Engine API to JavaScript and holds the WASM module
// alive for the browser to call into.
//
// Build with:
//
//	GOOS=js GOARCH=wasm go build -o jsi.wasm ./cmd/jsi-wasm
//
// Usage from JavaScript:
//
//	<script src="wasm_exec.js"></script>
//	<script>
//	  const go = new Go();
//	  WebAssembly.instantiateStreaming(fetch("jsi.wasm"), go.importObject)
//	    .then((result) => {
//	      go.run(result.instance);
//	      // Jsi.evaluateProgram(astJSON) is now available
//	    });
//	</script>
package main

import (
	"syscall/js"

	"github.com/cwbudde/go-jsi/pkg/platform/wasm"
)

func main() {
	done := make(chan struct{})

	wasm.RegisterAPI()

	js.Global().Get("console").Call("log", "jsi WASM module initialized")

	<-done
}
