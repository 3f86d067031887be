package jswrapper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmfuzz/translate/internal/entropy"
	"github.com/wasmfuzz/translate/internal/fuzzgen"
	"github.com/wasmfuzz/translate/internal/wasmir"
)

func TestGenerateCallsEveryExport(t *testing.T) {
	m := wasmir.NewModule()
	f0 := &wasmir.Function{Name: "func_0", Result: wasmir.I32}
	f0.Body = m.Builder.NewConst(wasmir.I32, wasmir.ConstValue{I32: 1})
	f1 := &wasmir.Function{Name: "func_1", Result: wasmir.None, Params: []wasmir.Type{wasmir.I32, wasmir.F64}}
	f1.Body = m.Builder.NewNop()
	m.AddFunction(f0)
	m.AddExport(f0)
	m.AddFunction(f1)
	m.AddExport(f1)

	js := Generate(m, "out.wasm")
	require.Contains(t, js, `readFileSync("out.wasm")`)
	require.Contains(t, js, "instance.exports.func_0()")
	require.Contains(t, js, "instance.exports.func_1(0, 0)")
	require.Contains(t, js, "WebAssembly.instantiate")
}

func TestGenerateZeroArgsPerParameterlessExport(t *testing.T) {
	m := wasmir.NewModule()
	fn := &wasmir.Function{Name: "func_0", Result: wasmir.F64}
	fn.Body = m.Builder.NewConst(wasmir.F64, wasmir.ConstValue{F64: 0})
	m.AddFunction(fn)
	m.AddExport(fn)

	js := Generate(m, "a.wasm")
	require.Contains(t, js, "func_0()")
	require.NotContains(t, js, "func_0(0")
}

func TestGeneratePanicsOnDanglingExport(t *testing.T) {
	m := wasmir.NewModule()
	m.Exports = append(m.Exports, wasmir.Export{Name: "ghost", Kind: wasmir.ExportFunction, FuncIndex: 7})
	require.Panics(t, func() { Generate(m, "a.wasm") })
}

func TestGenerateHandlesGeneratedModules(t *testing.T) {
	data := []byte{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7, 9, 3}
	module := fuzzgen.GenerateModule(fuzzgen.NewConfig(), entropy.New(data))
	js := Generate(module, "fuzz.wasm")
	for _, exp := range module.Exports {
		require.True(t, strings.Contains(js, "instance.exports."+exp.Name),
			"wrapper must call export %s", exp.Name)
	}
}
