package wasmir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoundaryConstantsMatchKnownExtremes(t *testing.T) {
	require.Equal(t, int64(-128), Boundaries.Int8Min)
	require.Equal(t, int64(127), Boundaries.Int8Max)
	require.Equal(t, int64(-32768), Boundaries.Int16Min)
	require.Equal(t, int64(32767), Boundaries.Int16Max)
	require.Equal(t, int64(-2147483648), Boundaries.Int32Min)
	require.Equal(t, int64(2147483647), Boundaries.Int32Max)
	require.Equal(t, uint64(255), Boundaries.Uint8Max)
	require.Equal(t, uint64(65535), Boundaries.Uint16Max)
	require.Equal(t, uint64(4294967295), Boundaries.Uint32Max)
	require.Equal(t, uint64(18446744073709551615), Boundaries.Uint64Max)
}

func TestI32BoundariesContainsZeroAndExtremes(t *testing.T) {
	list := I32Boundaries()
	require.Contains(t, list, int32(0))
	require.Contains(t, list, int32(-1))
	require.Contains(t, list, int32(1))
	require.Contains(t, list, int32(Boundaries.Int32Min))
	require.Contains(t, list, int32(Boundaries.Int32Max))
}

func TestI64BoundariesContainsZeroAndExtremes(t *testing.T) {
	list := I64Boundaries()
	require.Contains(t, list, int64(0))
	require.Contains(t, list, Boundaries.Int64Min)
	require.Contains(t, list, Boundaries.Int64Max)
}

func TestF32BoundariesContainsZeroAndOnes(t *testing.T) {
	list := F32Boundaries()
	require.Contains(t, list, float32(0))
	require.Contains(t, list, float32(1))
	require.Contains(t, list, float32(-1))
}

func TestF64BoundariesContainsZeroAndOnes(t *testing.T) {
	list := F64Boundaries()
	require.Contains(t, list, float64(0))
	require.Contains(t, list, float64(1))
	require.Contains(t, list, float64(-1))
}
