package wasmbinary

// writeULEB128 appends the unsigned LEB128 encoding of v.
func writeULEB128(buf []byte, v uint64) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		buf = append(buf, b)
		if v == 0 {
			return buf
		}
	}
}

// writeSLEB128 appends the signed LEB128 encoding of v.
func writeSLEB128(buf []byte, v int64) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		signBitSet := b&0x40 != 0
		if (v == 0 && !signBitSet) || (v == -1 && signBitSet) {
			buf = append(buf, b)
			return buf
		}
		buf = append(buf, b|0x80)
	}
}

// writeVecLen appends n's ULEB128 encoding, matching the wasm binary format's
// "vec(B)" convention of a count followed by that many elements.
func writeVecLen(buf []byte, n int) []byte {
	return writeULEB128(buf, uint64(n))
}
