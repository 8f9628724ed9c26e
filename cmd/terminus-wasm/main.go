//go:build js && wasm

// Command terminus-wasm exposes the terminus pipeline to JavaScript
// hosts. It registers four globals — tokenize, shuntingYard,
// parseToTree, and evaluate — each taking a source expression string
// and returning a JSON string in the bridge schema. Pipeline failures
// come back as JavaScript Error values rather than a result string, so
// callers can distinguish them without parsing.
package main

import (
	"syscall/js"

	"github.com/mlaass/terminus/bridge"
)

// export registers a bridge entry point under the given global name.
func export(name string, f func(string) (string, error)) {
	js.Global().Set(name, js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) != 1 {
			return js.Global().Get("Error").New(name + " expects exactly one string argument")
		}
		out, err := f(args[0].String())
		if err != nil {
			return js.Global().Get("Error").New(err.Error())
		}
		return out
	}))
}

func main() {
	export("tokenize", bridge.Tokenize)
	export("shuntingYard", bridge.ShuntingYard)
	export("parseToTree", bridge.ParseToTree)
	export("evaluate", bridge.Evaluate)

	// keep the runtime alive for callbacks
	select {}
}
