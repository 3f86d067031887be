package wattext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmfuzz/translate/internal/entropy"
	"github.com/wasmfuzz/translate/internal/fuzzgen"
	"github.com/wasmfuzz/translate/internal/wasmir"
)

func TestSerializeEmptyModule(t *testing.T) {
	m := wasmir.NewModule()
	m.Memory = wasmir.Memory{Exists: true, Initial: 1, Max: 1}
	out := Serialize(m)
	require.True(t, strings.HasPrefix(out, "(module\n"))
	require.Contains(t, out, "(memory 1 1)")
	require.True(t, strings.HasSuffix(out, ")\n"))
}

func TestSerializeIncludesFuncAndExport(t *testing.T) {
	m := wasmir.NewModule()
	m.Memory = wasmir.Memory{Exists: true, Initial: 1, Max: 1}
	fn := &wasmir.Function{Name: "f0", Result: wasmir.I32, Params: []wasmir.Type{wasmir.I64}}
	fn.Body = m.Builder.NewConst(wasmir.I32, wasmir.ConstValue{I32: 7})
	m.AddFunction(fn)
	m.AddExport(fn)

	out := Serialize(m)
	require.Contains(t, out, "(func $f0 (param i64) (result i32)")
	require.Contains(t, out, "(i32.const 7)")
	require.Contains(t, out, `(export "f0" (func 0))`)
}

func TestWriteExprLoadSuppressesSuffixAtNaturalWidth(t *testing.T) {
	m := wasmir.NewModule()
	ptr := m.Builder.NewConst(wasmir.I32, wasmir.ConstValue{I32: 0})
	load := m.Builder.NewLoad(4, false, 0, 4, ptr, wasmir.I32)
	var b strings.Builder
	writeExpr(&b, load, "")
	require.Contains(t, b.String(), "i32.load ")
	require.NotContains(t, b.String(), "i32.load3")
}

func TestWriteExprLoadAddsSuffixWhenNarrow(t *testing.T) {
	m := wasmir.NewModule()
	ptr := m.Builder.NewConst(wasmir.I32, wasmir.ConstValue{I32: 0})
	load := m.Builder.NewLoad(1, true, 0, 1, ptr, wasmir.I32)
	var b strings.Builder
	writeExpr(&b, load, "")
	require.Contains(t, b.String(), "i32.load8_s")
}

func TestWriteExprStoreSuppressesSuffixAtNaturalWidth(t *testing.T) {
	m := wasmir.NewModule()
	ptr := m.Builder.NewConst(wasmir.I32, wasmir.ConstValue{I32: 0})
	val := m.Builder.NewConst(wasmir.I64, wasmir.ConstValue{I64: 9})
	store := m.Builder.NewStore(wasmir.I64, 8, 0, 8, ptr, val)
	var b strings.Builder
	writeExpr(&b, store, "")
	require.Contains(t, b.String(), "i64.store ")
}

func TestWriteExprStoreAddsSuffixWhenNarrow(t *testing.T) {
	m := wasmir.NewModule()
	ptr := m.Builder.NewConst(wasmir.I32, wasmir.ConstValue{I32: 0})
	val := m.Builder.NewConst(wasmir.I64, wasmir.ConstValue{I64: 9})
	store := m.Builder.NewStore(wasmir.I64, 1, 0, 1, ptr, val)
	var b strings.Builder
	writeExpr(&b, store, "")
	require.Contains(t, b.String(), "i64.store8")
}

func TestWidthSuffixZeroWidthIsEmpty(t *testing.T) {
	require.Equal(t, "", widthSuffix(0, true))
}

func TestFormatConstEachType(t *testing.T) {
	require.Equal(t, "(i32.const 5)", formatConst(&wasmir.Expr{Type: wasmir.I32, ConstValue: wasmir.ConstValue{I32: 5}}))
	require.Equal(t, "(i64.const -3)", formatConst(&wasmir.Expr{Type: wasmir.I64, ConstValue: wasmir.ConstValue{I64: -3}}))
	require.Contains(t, formatConst(&wasmir.Expr{Type: wasmir.F32, ConstValue: wasmir.ConstValue{F32: 1.5}}), "f32.const")
	require.Equal(t, "(unreachable)", formatConst(&wasmir.Expr{Type: wasmir.None}))
}

func TestSerializeGeneratedModuleNeverPanics(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog 0123456789")
	module := fuzzgen.GenerateModule(fuzzgen.NewConfig(), entropy.New(data))
	require.NotPanics(t, func() { Serialize(module) })
}
