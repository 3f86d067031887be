package fuzzgen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmfuzz/translate/internal/entropy"
	"github.com/wasmfuzz/translate/internal/wasmir"
)

func newTestState(cfg *Config, data []byte) (*funcState, *wasmir.Module) {
	module := wasmir.NewModule()
	stream := entropy.New(data)
	state := newFuncState(cfg, stream, module)
	fn := &wasmir.Function{Name: "f", Result: wasmir.I32}
	state.reset(fn)
	return state, module
}

func TestMakeTerminatesAndUnwindsNesting(t *testing.T) {
	cfg := NewConfig().WithNestingLimit(2)
	data := make([]byte, 8192)
	for i := range data {
		data[i] = 0xff
	}
	state, _ := newTestState(cfg, data)

	e := state.make(wasmir.I32)
	require.NotNil(t, e)
	require.Equal(t, 0, state.nesting, "nesting counter must unwind back to zero")
}

func TestMaybeTrivialCutsOnExhaustedStream(t *testing.T) {
	cfg := NewConfig()
	state, _ := newTestState(cfg, nil)
	// Drain the one-byte backing buffer until the stream reports exhausted.
	for !state.stream.Exhausted() {
		state.stream.Get8()
	}
	e, ok := state.maybeTrivial(wasmir.I32)
	require.True(t, ok)
	require.True(t, e.Type.Concrete())
}

func TestMaybeTrivialProducesRequestedTypeFamily(t *testing.T) {
	cfg := NewConfig()
	for _, typ := range wasmir.AllTypes {
		state, _ := newTestState(cfg, []byte{1, 2, 3})
		state.nesting = cfg.hardNestingCap()
		e, ok := state.maybeTrivial(typ)
		require.True(t, ok)
		if typ.Concrete() {
			require.Equal(t, typ, e.Type)
		}
	}
}

func TestMakeTrivialNeverRecurses(t *testing.T) {
	cfg := NewConfig()
	state, _ := newTestState(cfg, []byte{1})
	for _, typ := range wasmir.ReachableTypes {
		e := state.makeTrivial(typ)
		require.NotNil(t, e)
	}
	e := state.makeTrivial(wasmir.Unreachable)
	require.Equal(t, wasmir.Unreachable, e.Type)
}

func TestGetReachableTypeNeverYieldsUnreachable(t *testing.T) {
	s := entropy.New([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	for i := 0; i < 20; i++ {
		typ := getReachableType(s)
		require.True(t, typ.Reachable())
	}
}

func TestGetConcreteTypeAlwaysConcrete(t *testing.T) {
	s := entropy.New([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	for i := 0; i < 20; i++ {
		typ := getConcreteType(s)
		require.True(t, typ.Concrete())
	}
}
