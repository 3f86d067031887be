package entropy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEmptyBufferNeverFails(t *testing.T) {
	s := New(nil)
	require.False(t, s.Exhausted())
	// Drawing from an empty-backed stream must never panic; it wraps
	// forever via the XOR mask.
	for i := 0; i < 100; i++ {
		_ = s.Get32()
	}
	require.True(t, s.Exhausted())
}

func TestGetConsumesInOrder(t *testing.T) {
	s := New([]byte{0x01, 0x02, 0x03, 0x04})
	require.Equal(t, int8(0x01), s.Get8())
	require.Equal(t, int8(0x02), s.Get8())
	require.False(t, s.Exhausted())
	require.Equal(t, int8(0x03), s.Get8())
	require.Equal(t, int8(0x04), s.Get8())
	// The buffer is fully consumed but exhaustion is only discovered on the
	// *next* draw, which is when it wraps and starts masking.
	require.False(t, s.Exhausted())
	s.Get8()
	require.True(t, s.Exhausted())
}

func TestGet32ComposesTwoHalves(t *testing.T) {
	s := New([]byte{0x00, 0x00, 0x00, 0x01})
	require.Equal(t, int32(1), s.Get32())
}

func TestExhaustionWraps(t *testing.T) {
	s := New([]byte{0xAB})
	s.Get8()
	require.False(t, s.Exhausted())
	second := s.Get8()
	require.True(t, s.Exhausted())
	third := s.Get8()
	// Once exhausted, every further draw rereads the same byte XORed with
	// an incrementing mask, so consecutive draws must differ.
	require.NotEqual(t, second, third)
}

func TestDeterministicForSameInput(t *testing.T) {
	input := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	a := New(input)
	b := New(input)
	for i := 0; i < 20; i++ {
		require.Equal(t, a.Get32(), b.Get32())
	}
}
