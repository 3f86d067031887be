package wasmbinary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteULEB128SingleByteValues(t *testing.T) {
	require.Equal(t, []byte{0x00}, writeULEB128(nil, 0))
	require.Equal(t, []byte{0x7f}, writeULEB128(nil, 127))
}

func TestWriteULEB128MultiByteValue(t *testing.T) {
	require.Equal(t, []byte{0xe5, 0x8e, 0x26}, writeULEB128(nil, 624485))
}

func TestWriteULEB128Appends(t *testing.T) {
	buf := []byte{0xff}
	out := writeULEB128(buf, 1)
	require.Equal(t, []byte{0xff, 0x01}, out)
}

func TestWriteSLEB128PositiveAndNegative(t *testing.T) {
	require.Equal(t, []byte{0x02}, writeSLEB128(nil, 2))
	require.Equal(t, []byte{0x7e}, writeSLEB128(nil, -2))
	require.Equal(t, []byte{0x9b, 0xf1, 0x59}, writeSLEB128(nil, -624485))
}

func TestWriteVecLenIsULEB128OfCount(t *testing.T) {
	require.Equal(t, writeULEB128(nil, 300), writeVecLen(nil, 300))
}
