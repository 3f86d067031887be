package entropy

import "math"

// UpTo draws a 32-bit value and returns it modulo n, folding the discarded
// quotient back into the stream's mask (see Stream.AddMask) so repeated
// small-range draws don't all correlate with each other. Panics if n is 0;
// every caller in this module picks n from a non-empty, statically known
// menu.
func UpTo(s *Stream, n uint32) uint32 {
	raw := uint32(s.Get32())
	s.AddMask(int32(raw / n))
	return raw % n
}

// OneIn reports true with probability 1/n.
func OneIn(s *Stream, n uint32) bool {
	return UpTo(s, n) == 0
}

// Logify compresses a raw byte-sized count into a small natural number on a
// logarithmic scale: floor(ln(1+x)). Used everywhere a loop/block trip
// count is derived from a single entropy byte, so that high byte values
// don't translate into proportionally huge bodies.
func Logify(x int) int {
	if x < 0 {
		x = -x
	}
	return int(math.Floor(math.Log(1 + float64(x))))
}

// Pick returns one of the given values, uniformly, consuming one UpTo draw.
// Panics if called with no values.
func Pick[T any](s *Stream, values ...T) T {
	if len(values) == 0 {
		panic("entropy: Pick called with no values")
	}
	return values[UpTo(s, uint32(len(values)))]
}

// VectorPick is Pick over an existing slice rather than a variadic list,
// for the common case of picking among entries already materialized as a
// []T (e.g. the breakable-target stack). Panics on an empty slice: every
// caller in this module checks for emptiness first and falls back before
// ever reaching VectorPick.
func VectorPick[T any](s *Stream, values []T) T {
	if len(values) == 0 {
		panic("entropy: VectorPick called on an empty slice")
	}
	return values[UpTo(s, uint32(len(values)))]
}
