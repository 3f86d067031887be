package wasmvalidate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmfuzz/translate/internal/entropy"
	"github.com/wasmfuzz/translate/internal/fuzzgen"
	"github.com/wasmfuzz/translate/internal/wasmir"
)

func generated(t *testing.T, data []byte) *wasmir.Module {
	t.Helper()
	return fuzzgen.GenerateModule(fuzzgen.NewConfig(), entropy.New(data))
}

func TestValidateAcceptsGeneratedModules(t *testing.T) {
	inputs := [][]byte{
		nil,
		{0x00},
		make([]byte, 4096),
		bytes(0xff, 4096),
		counting(256),
	}
	for _, in := range inputs {
		require.NoError(t, Validate(generated(t, in)))
	}
}

func bytes(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func counting(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i)
	}
	return out
}

func TestValidateRejectsMissingMemory(t *testing.T) {
	m := wasmir.NewModule()
	err := Validate(m)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no memory")
}

func TestValidateRejectsInvertedMemoryBounds(t *testing.T) {
	m := wasmir.NewModule()
	m.Memory = wasmir.Memory{Exists: true, Initial: 4, Max: 1}
	err := Validate(m)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid memory bounds")
}

func TestValidateRejectsBreakToOutOfScopeTarget(t *testing.T) {
	m := wasmir.NewModule()
	m.Memory = wasmir.Memory{Exists: true, Initial: 1, Max: 1}
	fn := &wasmir.Function{Name: "func_0", Result: wasmir.None}
	fn.Body = m.Builder.NewBreak("label$nonexistent", nil, nil)
	m.AddFunction(fn)
	m.AddExport(fn)

	err := Validate(m)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not in scope")
}

func TestValidateRejectsLocalIndexOutOfRange(t *testing.T) {
	m := wasmir.NewModule()
	m.Memory = wasmir.Memory{Exists: true, Initial: 1, Max: 1}
	fn := &wasmir.Function{Name: "func_0", Result: wasmir.None}
	fn.Body = m.Builder.NewSetLocal(7, m.Builder.NewConst(wasmir.I32, wasmir.ConstValue{I32: 1}))
	m.AddFunction(fn)
	m.AddExport(fn)

	err := Validate(m)
	require.Error(t, err)
	require.Contains(t, err.Error(), "out of range")
}

func TestValidateRejectsLocalTypeMismatch(t *testing.T) {
	m := wasmir.NewModule()
	m.Memory = wasmir.Memory{Exists: true, Initial: 1, Max: 1}
	fn := &wasmir.Function{Name: "func_0", Result: wasmir.I32, Params: []wasmir.Type{wasmir.F64}}
	fn.Body = m.Builder.NewGetLocal(0, wasmir.I32)
	m.AddFunction(fn)
	m.AddExport(fn)

	err := Validate(m)
	require.Error(t, err)
	require.Contains(t, err.Error(), "local declared")
}

func TestValidateRejectsCallArityMismatch(t *testing.T) {
	m := wasmir.NewModule()
	m.Memory = wasmir.Memory{Exists: true, Initial: 1, Max: 1}

	callee := &wasmir.Function{Name: "func_0", Result: wasmir.I32, Params: []wasmir.Type{wasmir.I32}}
	callee.Body = m.Builder.NewGetLocal(0, wasmir.I32)
	m.AddFunction(callee)
	m.AddExport(callee)

	caller := &wasmir.Function{Name: "func_1", Result: wasmir.I32}
	caller.Body = m.Builder.NewCall(callee.Index, nil, wasmir.I32)
	m.AddFunction(caller)
	m.AddExport(caller)

	err := Validate(m)
	require.Error(t, err)
	require.Contains(t, err.Error(), "passes 0 args")
}

func TestValidateAcceptsUnreachablePayloadAnywhere(t *testing.T) {
	m := wasmir.NewModule()
	m.Memory = wasmir.Memory{Exists: true, Initial: 1, Max: 1}
	fn := &wasmir.Function{Name: "func_0", Result: wasmir.I32}
	fn.Body = m.Builder.NewUnary(wasmir.OpEqz32, m.Builder.NewUnreachable())
	m.AddFunction(fn)
	m.AddExport(fn)

	require.NoError(t, Validate(m))
}
