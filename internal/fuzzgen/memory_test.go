package fuzzgen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmfuzz/translate/internal/wasmir"
)

func TestPickWidthStaysWithinLoadWidths(t *testing.T) {
	state, _ := newTestState(NewConfig(), []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	for _, typ := range wasmir.ConcreteTypes {
		for i := 0; i < 10; i++ {
			w := state.pickWidth(typ)
			require.Contains(t, loadWidths[typ], w)
		}
	}
}

func TestPickAlignIsPowerOfTwoNotExceedingWidth(t *testing.T) {
	state, _ := newTestState(NewConfig(), []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})
	for _, width := range []uint8{1, 2, 4, 8} {
		for i := 0; i < 10; i++ {
			a := state.pickAlign(width)
			require.LessOrEqual(t, a, width)
			require.Equal(t, a&(a-1), uint8(0), "align %d must be a power of two", a)
		}
	}
}

func TestPickOffsetBounded(t *testing.T) {
	state, _ := newTestState(NewConfig(), []byte{1, 2, 3, 4, 5, 6})
	for i := 0; i < 20; i++ {
		require.Less(t, state.pickOffset(), uint32(32))
	}
}

func TestMakeLoadProducesRequestedType(t *testing.T) {
	state, _ := newTestState(NewConfig(), []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	for _, typ := range wasmir.ConcreteTypes {
		e := state.makeLoad(typ)
		require.Equal(t, typ, e.Type)
		require.Equal(t, wasmir.KindLoad, e.Kind)
	}
}

func TestMakeLoadSignedOnlyWhenNarrowerThanNatural(t *testing.T) {
	state, _ := newTestState(NewConfig(), []byte{1, 2, 3, 4, 5, 6, 7, 8})
	e := state.makeLoad(wasmir.F32)
	require.False(t, e.Signed, "f32 only supports its natural width, never sign-extended")
}

func TestMakeStorePlainIsNoneTyped(t *testing.T) {
	state, _ := newTestState(NewConfig(), []byte{1, 2, 3, 4, 5, 6, 7, 8})
	e := state.makeStore(wasmir.None)
	require.Equal(t, wasmir.None, e.Type)
	require.Equal(t, wasmir.KindStore, e.Kind)
}

func TestMakeStoreUnreachableDivergesPtrOrValue(t *testing.T) {
	state, _ := newTestState(NewConfig(), []byte{1, 2, 3, 4, 5, 6, 7, 8})
	e := state.makeStore(wasmir.Unreachable)
	require.Equal(t, wasmir.KindStore, e.Kind)
	require.Equal(t, wasmir.Unreachable, e.Type)
	require.True(t, e.Ptr.Type == wasmir.Unreachable || e.StoreVal.Type == wasmir.Unreachable,
		"an unreachable-requested store must diverge its address, its value, or both")
}

func TestMakePointerIsI32Typed(t *testing.T) {
	state, _ := newTestState(NewConfig(), []byte{1, 2, 3})
	e := state.makePointer()
	require.Equal(t, wasmir.I32, e.Type)
}
