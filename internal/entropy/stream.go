// Package entropy wraps an arbitrary input byte buffer as a never-failing
// source of integers and floats, and the small statistical helpers built on
// top of it. Deliberately the smallest, least "clever" package in the
// module: its whole job is to be a boring, total function from bytes to
// numbers that every other package can lean on without a second thought.
package entropy

import "math"

// Stream reads deterministic pseudo-random values out of a fixed byte
// buffer. It never fails: once the buffer is exhausted it wraps around and
// starts XOR-ing an incrementing mask into every byte, so a second or later
// pass over the buffer is not byte-identical to the first. This is load
// bearing (see package doc): it is how the generator built on top of Stream
// extracts more than len(buffer) decisions' worth of variety out of a short
// input.
type Stream struct {
	buf       []byte
	pos       int
	mask      int32
	exhausted bool
}

// New wraps buf as a Stream. An empty buf is replaced with a single zero
// byte, guaranteeing at least one read always succeeds: the translator
// must be defined on inputs of any length, including zero.
func New(buf []byte) *Stream {
	if len(buf) == 0 {
		buf = []byte{0}
	}
	return &Stream{buf: buf}
}

// Exhausted reports whether the stream has wrapped at least once. Monotonic:
// once true, always true.
func (s *Stream) Exhausted() bool {
	return s.exhausted
}

// Get8 returns the next byte, XOR-ed with the current wrap mask, as a
// signed 8-bit value. Advances the cursor; wraps (and bumps the mask) when
// the buffer is exhausted.
func (s *Stream) Get8() int8 {
	if s.pos == len(s.buf) {
		s.exhausted = true
		s.pos = 0
		s.mask++
	}
	b := s.buf[s.pos] ^ byte(s.mask)
	s.pos++
	return int8(b)
}

// Get16 returns a big-endian 16-bit value built from two Get8 calls.
func (s *Stream) Get16() int16 {
	hi := int16(s.Get8())
	lo := int16(s.Get8())
	return hi<<8 | (lo & 0xff)
}

// Get32 returns a big-endian 32-bit value built from two Get16 calls.
func (s *Stream) Get32() int32 {
	hi := int32(s.Get16())
	lo := int32(s.Get16())
	return hi<<16 | (lo & 0xffff)
}

// Get64 returns a big-endian 64-bit value built from two Get32 calls.
func (s *Stream) Get64() int64 {
	hi := int64(s.Get32())
	lo := int64(s.Get32())
	return hi<<32 | (lo & 0xffffffff)
}

// GetFloat32 bit-reinterprets a Get32 draw as an IEEE-754 float32.
func (s *Stream) GetFloat32() float32 {
	return math.Float32frombits(uint32(s.Get32()))
}

// GetFloat64 bit-reinterprets a Get64 draw as an IEEE-754 float64.
func (s *Stream) GetFloat64() float64 {
	return math.Float64frombits(uint64(s.Get64()))
}

// AddMask reinjects extra entropy into the wrap mask. Used by the
// distribution helpers (upTo, oneIn) to fold the quotient of a modulo
// division back in, so successive small-range draws decorrelate instead of
// silently discarding the entropy above the chosen range.
func (s *Stream) AddMask(delta int32) {
	s.mask += delta
}
