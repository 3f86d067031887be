package fuzzgen

import (
	"github.com/wasmfuzz/translate/internal/entropy"
	"github.com/wasmfuzz/translate/internal/wasmir"
)

// makeConst synthesizes a literal of type t by picking, with equal
// probability, among three modes: the type's full bit range, a small range
// close to zero (an 8- or 16-bit signed or unsigned draw, extended to the
// target type; see smallI32/smallI64), or one
// of the "interesting" boundary-set constants (0, -1, extremes of every
// narrower width).
func (s *funcState) makeConst(t wasmir.Type) *wasmir.Expr {
	var v wasmir.ConstValue
	switch t {
	case wasmir.I32:
		v.I32 = s.pickI32()
	case wasmir.I64:
		v.I64 = s.pickI64()
	case wasmir.F32:
		v.F32 = s.pickF32()
	case wasmir.F64:
		v.F64 = s.pickF64()
	default:
		panic("fuzzgen: makeConst on non-concrete type")
	}
	return s.module.Builder.NewConst(t, v)
}

func (s *funcState) pickI32() int32 {
	switch entropy.UpTo(s.stream, 3) {
	case 0:
		return s.stream.Get32()
	case 1:
		return s.smallI32()
	default:
		return entropy.VectorPick(s.stream, wasmir.I32Boundaries())
	}
}

func (s *funcState) pickI64() int64 {
	switch entropy.UpTo(s.stream, 3) {
	case 0:
		return s.stream.Get64()
	case 1:
		return s.smallI64()
	default:
		return entropy.VectorPick(s.stream, wasmir.I64Boundaries())
	}
}

func (s *funcState) pickF32() float32 {
	switch entropy.UpTo(s.stream, 3) {
	case 0:
		return s.stream.GetFloat32()
	case 1:
		return float32(s.smallI32())
	default:
		return entropy.VectorPick(s.stream, wasmir.F32Boundaries())
	}
}

func (s *funcState) pickF64() float64 {
	switch entropy.UpTo(s.stream, 3) {
	case 0:
		return s.stream.GetFloat64()
	case 1:
		return float64(s.smallI64())
	default:
		return entropy.VectorPick(s.stream, wasmir.F64Boundaries())
	}
}

// smallI32 draws an 8- or 16-bit signed or unsigned value and sign/zero
// extends it to 32 bits, matching the "small range" const mode's four
// sub-cases (int8, uint8, int16, uint16).
func (s *funcState) smallI32() int32 {
	switch entropy.UpTo(s.stream, 4) {
	case 0:
		return int32(s.stream.Get8())
	case 1:
		return int32(uint8(s.stream.Get8()))
	case 2:
		return int32(s.stream.Get16())
	default:
		return int32(uint16(s.stream.Get16()))
	}
}

// smallI64 is smallI32's 64-bit analogue.
func (s *funcState) smallI64() int64 {
	switch entropy.UpTo(s.stream, 4) {
	case 0:
		return int64(s.stream.Get8())
	case 1:
		return int64(uint8(s.stream.Get8()))
	case 2:
		return int64(s.stream.Get16())
	default:
		return int64(uint16(s.stream.Get16()))
	}
}
