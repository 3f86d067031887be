package wasmir

import "github.com/holiman/uint256"

// BoundaryConstants holds the "interesting" literal values the const
// synthesizer's boundary-set mode samples from: zero, signed extremes, and
// unsigned maxima for each integer width. Computed once from bit widths
// via uint256 arithmetic rather than hand-transcribed as magic numbers.
type BoundaryConstants struct {
	Int8Min, Int8Max     int64
	Int16Min, Int16Max   int64
	Int32Min, Int32Max   int64
	Int64Min, Int64Max   int64
	Uint8Max             uint64
	Uint16Max            uint64
	Uint32Max            uint64
	Uint64Max            uint64
}

// Boundaries is computed once at package init.
var Boundaries = computeBoundaries()

func computeBoundaries() BoundaryConstants {
	signedMax := func(bits uint) int64 {
		v := new(uint256.Int).Sub(pow2(bits-1), uint256.NewInt(1))
		return int64(v.Uint64())
	}
	signedMin := func(bits uint) int64 {
		return -signedMax(bits) - 1
	}
	unsignedMax := func(bits uint) uint64 {
		v := new(uint256.Int).Sub(pow2(bits), uint256.NewInt(1))
		return v.Uint64()
	}
	return BoundaryConstants{
		Int8Min: signedMin(8), Int8Max: signedMax(8),
		Int16Min: signedMin(16), Int16Max: signedMax(16),
		Int32Min: signedMin(32), Int32Max: signedMax(32),
		Int64Min: signedMin(64), Int64Max: signedMax(64),
		Uint8Max:  unsignedMax(8),
		Uint16Max: unsignedMax(16),
		Uint32Max: unsignedMax(32),
		Uint64Max: unsignedMax(64),
	}
}

func pow2(n uint) *uint256.Int {
	return new(uint256.Int).Lsh(uint256.NewInt(1), n)
}

// I32Boundaries lists the i32 boundary-set constants in a fixed order:
// 0, -1, 1, int8/16/32 extremes, uint8/16/32 maxima.
func I32Boundaries() []int32 {
	b := Boundaries
	return []int32{
		0, -1, 1,
		int32(b.Int8Min), int32(b.Int8Max),
		int32(b.Int16Min), int32(b.Int16Max),
		int32(b.Int32Min), int32(b.Int32Max),
		int32(b.Uint8Max), int32(b.Uint16Max), int32(b.Uint32Max),
	}
}

// I64Boundaries is the i64 analogue of I32Boundaries.
func I64Boundaries() []int64 {
	b := Boundaries
	return []int64{
		0, -1, 1,
		b.Int8Min, b.Int8Max,
		b.Int16Min, b.Int16Max,
		b.Int32Min, b.Int32Max,
		b.Int64Min, b.Int64Max,
		int64(b.Uint8Max), int64(b.Uint16Max), int64(b.Uint32Max),
	}
}

// F32Boundaries is the f32 analogue: 0, -1, 1, float min/max, and casts of
// integer boundaries.
func F32Boundaries() []float32 {
	b := Boundaries
	return []float32{
		0, -1, 1,
		math32Smallest, math32Largest,
		float32(b.Int32Min), float32(b.Int32Max),
		float32(b.Int64Min), float32(b.Int64Max),
		float32(b.Uint32Max), float32(b.Uint64Max),
	}
}

// F64Boundaries is the f64 analogue of F32Boundaries, additionally
// including the float32 extremes cast up.
func F64Boundaries() []float64 {
	b := Boundaries
	return []float64{
		0, -1, 1,
		float64(math32Smallest), float64(math32Largest),
		math64Smallest, math64Largest,
		float64(b.Int32Min), float64(b.Int32Max),
		float64(b.Int64Min), float64(b.Int64Max),
		float64(b.Uint32Max), float64(b.Uint64Max),
	}
}

// Kept as named constants (rather than math.SmallestNonzeroFloat32/
// math.MaxFloat32 imported into callers) so every boundary table lives in
// this one file.
const (
	math32Smallest = 1.401298464324817070923729583289916131280e-45
	math32Largest  = 3.40282346638528859811704183484516925440e+38
	math64Smallest = 4.9406564584124654417656879286822137236505980e-324
	math64Largest  = 1.797693134862315708145274237317043567981e+308
)
