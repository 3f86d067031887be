package fuzzgen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmfuzz/translate/internal/wasmir"
)

func TestMakeConstProducesRequestedType(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	state, _ := newTestState(NewConfig(), data)
	for _, typ := range wasmir.ConcreteTypes {
		e := state.makeConst(typ)
		require.Equal(t, typ, e.Type)
		require.Equal(t, wasmir.KindConst, e.Kind)
	}
}

func TestMakeConstPanicsOnNonConcreteType(t *testing.T) {
	state, _ := newTestState(NewConfig(), []byte{1})
	require.Panics(t, func() { state.makeConst(wasmir.None) })
}

func TestPickI32BoundaryModeMatchesTable(t *testing.T) {
	// The first four bytes form 0x02020202, and 0x02020202 % 3 == 2, so the
	// first pick takes the boundary mode and must come from the table.
	// Later rounds draw from the masked stream and only need not panic.
	state, _ := newTestState(NewConfig(), []byte{2, 2, 2, 2, 2, 2, 2, 2})
	require.Contains(t, wasmir.I32Boundaries(), state.pickI32())
	for i := 0; i < 30; i++ {
		_ = state.pickI32()
	}
}

func TestPickFloatsNeverPanic(t *testing.T) {
	state, _ := newTestState(NewConfig(), []byte{9, 9, 9, 9, 9, 9, 9, 9, 9, 9})
	for i := 0; i < 30; i++ {
		_ = state.pickF32()
		_ = state.pickF64()
		_ = state.pickI64()
	}
}

// TestSmallI32CoversAllFourSubmodes exercises every sub-case of the "small
// range" const mode (int8, uint8, int16, uint16), draining enough entropy
// across repeated calls that entropy.UpTo(s, 4) visits all four selectors.
func TestSmallI32CoversAllFourSubmodes(t *testing.T) {
	data := make([]byte, 512)
	for i := range data {
		data[i] = byte(i * 37)
	}
	state, _ := newTestState(NewConfig(), data)
	seenNegative, seenLarge := false, false
	for i := 0; i < 200; i++ {
		v := state.smallI32()
		if v < 0 {
			seenNegative = true
		}
		if v > 255 {
			seenLarge = true
		}
	}
	require.True(t, seenNegative, "int8 or int16 submode should eventually produce a negative value")
	require.True(t, seenLarge, "int16/uint16 submode should eventually exceed a single byte's range")
}

func TestSmallI64CoversAllFourSubmodes(t *testing.T) {
	data := make([]byte, 512)
	for i := range data {
		data[i] = byte(i * 59)
	}
	state, _ := newTestState(NewConfig(), data)
	seenNegative, seenLarge := false, false
	for i := 0; i < 200; i++ {
		v := state.smallI64()
		if v < 0 {
			seenNegative = true
		}
		if v > 255 {
			seenLarge = true
		}
	}
	require.True(t, seenNegative, "int8 or int16 submode should eventually produce a negative value")
	require.True(t, seenLarge, "int16/uint16 submode should eventually exceed a single byte's range")
}
