//go:build js && wasm

// Command wasm exposes the layout engine to the browser via WebAssembly.
// After loading, it registers a global JavaScript function:
//
//	computeLayout(jsonString) -> jsonString
//
// Input is a JSON configuration (omitted fields keep defaults), output is the layout view
// with ready to draw SVG path data, annotations and animation timing.
package main

import (
	"syscall/js"

	utern "github.com/sanjeevaacham/Utern"
)

// Repeated configurations are common while the user drags a slider
var cache = utern.NewCache(64)

func main() {
	js.Global().Set("computeLayout", js.FuncOf(computeLayout))
	select {} // keep the WASM module alive until the page is closed
}

func computeLayout(_ js.Value, args []js.Value) any {
	if len(args) < 1 {
		return map[string]any{"error": "no input provided"}
	}

	result, err := utern.ComputeJSON(args[0].String(), utern.WithCache(cache))
	if err != nil {
		return map[string]any{
			"error":                err.Error(),
			"invalidConfiguration": utern.IsInvalidConfiguration(err),
		}
	}
	return result
}
