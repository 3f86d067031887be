package entropy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpToStaysInRange(t *testing.T) {
	s := New([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})
	for i := 0; i < 50; i++ {
		v := UpTo(s, 7)
		require.Less(t, v, uint32(7))
	}
}

func TestUpToPanicsOnZero(t *testing.T) {
	s := New([]byte{1})
	require.Panics(t, func() { UpTo(s, 0) })
}

func TestOneInDeterministicGivenStream(t *testing.T) {
	input := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	a := New(input)
	b := New(input)
	for i := 0; i < 10; i++ {
		require.Equal(t, OneIn(a, 3), OneIn(b, 3))
	}
}

func TestLogifyMonotonicNonNegative(t *testing.T) {
	prev := Logify(0)
	require.GreaterOrEqual(t, prev, 0)
	for _, x := range []int{1, 2, 4, 8, 16, 32, 64, 128, 255} {
		cur := Logify(x)
		require.GreaterOrEqual(t, cur, 0)
		require.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestLogifyNegativeMirrorsAbsoluteValue(t *testing.T) {
	require.Equal(t, Logify(42), Logify(-42))
}

func TestPickReturnsOneOfTheGivenValues(t *testing.T) {
	s := New([]byte{3, 1, 4, 1, 5, 9, 2, 6})
	opts := []string{"a", "b", "c"}
	for i := 0; i < 20; i++ {
		got := Pick(s, opts[0], opts[1], opts[2])
		require.Contains(t, opts, got)
	}
}

func TestPickPanicsOnNoValues(t *testing.T) {
	s := New([]byte{1})
	require.Panics(t, func() { Pick[int](s) })
}

func TestVectorPickReturnsOneOfTheGivenValues(t *testing.T) {
	s := New([]byte{3, 1, 4, 1, 5, 9, 2, 6})
	opts := []int{10, 20, 30, 40}
	for i := 0; i < 20; i++ {
		got := VectorPick(s, opts)
		require.Contains(t, opts, got)
	}
}

func TestVectorPickPanicsOnEmptySlice(t *testing.T) {
	s := New([]byte{1})
	require.Panics(t, func() { VectorPick(s, []int{}) })
}
