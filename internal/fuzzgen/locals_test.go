package fuzzgen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmfuzz/translate/internal/wasmir"
)

func TestMakeGetLocalFallsBackToConstWithNoLocalsOfType(t *testing.T) {
	state, _ := newTestState(NewConfig(), []byte{1, 2, 3})
	e := state.makeGetLocal(wasmir.F32)
	require.Equal(t, wasmir.F32, e.Type)
	require.Equal(t, wasmir.KindConst, e.Kind)
}

func TestMakeGetLocalReadsDeclaredLocal(t *testing.T) {
	state, _ := newTestState(NewConfig(), []byte{1, 2, 3})
	state.declareLocal(wasmir.I32, 0)
	state.current.Params = []wasmir.Type{wasmir.I32}
	e := state.makeGetLocal(wasmir.I32)
	require.Equal(t, wasmir.KindGetLocal, e.Kind)
	require.Equal(t, uint32(0), e.LocalIndex)
}

func TestMakeSetLocalConcreteRequestFallsBackToConstWithNoMatchingLocal(t *testing.T) {
	state, _ := newTestState(NewConfig(), []byte{1, 2, 3})
	e := state.makeSetLocal(wasmir.I64)
	require.Equal(t, wasmir.KindConst, e.Kind)
	require.Equal(t, wasmir.I64, e.Type)
}

func TestMakeSetLocalConcreteRequestBuildsTeeLocal(t *testing.T) {
	state, _ := newTestState(NewConfig(), []byte{1, 2, 3, 4, 5})
	state.declareLocal(wasmir.I64, 0)
	state.current.Params = []wasmir.Type{wasmir.I64}
	e := state.makeSetLocal(wasmir.I64)
	require.Equal(t, wasmir.KindTeeLocal, e.Kind)
	require.Equal(t, wasmir.I64, e.Type)
}

func TestMakeSetLocalNoneRequestWithNoLocalsIsNop(t *testing.T) {
	state, _ := newTestState(NewConfig(), []byte{1})
	e := state.makeSetLocal(wasmir.None)
	require.Equal(t, wasmir.KindNop, e.Kind)
}

func TestMakeSetLocalUnreachableRequestWithNoLocalsIsUnreachable(t *testing.T) {
	state, _ := newTestState(NewConfig(), []byte{1, 2, 3})
	e := state.makeSetLocal(wasmir.Unreachable)
	require.Equal(t, wasmir.Unreachable, e.Type)
}

func TestMakeSetLocalNoneRequestWritesDeclaredLocal(t *testing.T) {
	state, _ := newTestState(NewConfig(), []byte{1, 2, 3, 4, 5, 6})
	// One local of every concrete type, so whichever value type the draw
	// lands on has a matching local.
	state.current.Params = []wasmir.Type{wasmir.I32, wasmir.I64, wasmir.F32, wasmir.F64}
	for i, typ := range wasmir.ConcreteTypes {
		state.declareLocal(typ, uint32(i))
	}
	e := state.makeSetLocal(wasmir.None)
	require.Equal(t, wasmir.KindSetLocal, e.Kind)
	require.Equal(t, wasmir.None, e.Type)
}
