// Package jswrapper emits a small JavaScript harness (the
// -ejw/--emit-js-wrapper output) that instantiates a generated module and
// calls every exported function once with zero-valued arguments, the
// fastest way to drive the module through a JS engine's own wasm
// implementation as an additional fuzz target alongside the native one.
package jswrapper

import (
	"fmt"
	"strings"

	"github.com/wasmfuzz/translate/internal/wasmir"
)

// Generate returns a JS source string that loads binaryPath and calls
// every export of m, printing its result.
func Generate(m *wasmir.Module, binaryPath string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "const fs = require('fs');\n")
	fmt.Fprintf(&b, "const bytes = fs.readFileSync(%q);\n", binaryPath)
	b.WriteString("WebAssembly.instantiate(bytes, {}).then(({ instance }) => {\n")
	for _, exp := range m.Exports {
		if exp.Kind != wasmir.ExportFunction {
			continue
		}
		fn := findFunc(m, exp.FuncIndex)
		args := make([]string, len(fn.Params))
		for i := range args {
			args[i] = "0"
		}
		fmt.Fprintf(&b, "  try { console.log(%q, instance.exports.%s(%s)); }\n", exp.Name, exp.Name, strings.Join(args, ", "))
		fmt.Fprintf(&b, "  catch (e) { console.log(%q, 'trap:', e.message); }\n", exp.Name)
	}
	b.WriteString("}).catch(e => { console.error('instantiate failed:', e.message); process.exit(1); });\n")
	return b.String()
}

func findFunc(m *wasmir.Module, index uint32) *wasmir.Function {
	for _, fn := range m.Functions {
		if fn.Index == index {
			return fn
		}
	}
	panic("jswrapper: export references unknown function index")
}
