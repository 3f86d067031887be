package fuzzgen

import (
	"github.com/wasmfuzz/translate/internal/entropy"
	"github.com/wasmfuzz/translate/internal/wasmir"
)

// makePointer synthesizes an i32 effective address. 9 times out of 10 it is
// masked down to the first 256 bytes of memory, since a fuzz corpus
// dominated by traps on wild addresses is far less useful than one that
// mostly exercises real loads/stores with the occasional genuine
// out-of-bounds access.
func (s *funcState) makePointer() *wasmir.Expr {
	raw := s.make(wasmir.I32)
	if entropy.OneIn(s.stream, 10) {
		return raw
	}
	bound := s.module.Builder.NewConst(wasmir.I32, wasmir.ConstValue{I32: 0xff})
	return s.module.Builder.NewBinary(wasmir.OpAnd32, raw, bound)
}

// loadWidths enumerates the byte widths a type can be loaded/stored at,
// narrowest first. Whether a narrower-than-natural load sign-extends is
// rolled separately in makeLoad.
var loadWidths = map[wasmir.Type][]uint8{
	wasmir.I32: {1, 2, 4},
	wasmir.I64: {1, 2, 4, 8},
	wasmir.F32: {4},
	wasmir.F64: {8},
}

func (s *funcState) pickWidth(t wasmir.Type) uint8 {
	widths := loadWidths[t]
	return entropy.VectorPick(s.stream, widths)
}

// pickAlign picks a natural-alignment exponent uniformly among every power
// of two up to width, returned as the alignment in bytes.
func (s *funcState) pickAlign(width uint8) uint8 {
	exp := 0
	for uint8(1)<<uint(exp+1) <= width {
		exp++
	}
	n := entropy.UpTo(s.stream, uint32(exp+1))
	return uint8(1) << n
}

// pickOffset picks a small, log-compressed offset immediate; fuzz inputs
// rarely need large offsets to exercise interesting load/store behavior.
func (s *funcState) pickOffset() uint32 {
	return uint32(entropy.Logify(int(s.stream.Get8())))
}

// makeLoad synthesizes a memory load producing t: width is picked among
// every width t supports, with a sign-extension flag rolled only when the
// width is narrower than t's natural size.
func (s *funcState) makeLoad(t wasmir.Type) *wasmir.Expr {
	ptr := s.makePointer()
	width := s.pickWidth(t)
	signed := false
	if int(width) < t.Bits()/8 {
		signed = entropy.OneIn(s.stream, 2)
	}
	align := s.pickAlign(width)
	offset := s.pickOffset()
	return s.module.Builder.NewLoad(width, signed, offset, align, ptr, t)
}

// makeStore synthesizes a memory store. Stores never carry a useful result
// value of their own; requested is always None or Unreachable here (the
// only two menus that offer "store"). An Unreachable request first builds
// an ordinary concrete store, then substitutes ptr, value, or both with a
// freshly synthesized unreachable expression, so the store node itself
// poisons to Unreachable (NewStore) rather than being wrapped afterward.
func (s *funcState) makeStore(requested wasmir.Type) *wasmir.Expr {
	ptr := s.makePointer()
	valType := getConcreteType(s.stream)
	value := s.make(valType)
	width := s.pickWidth(valType)
	align := s.pickAlign(width)
	offset := s.pickOffset()
	if requested == wasmir.Unreachable {
		switch entropy.UpTo(s.stream, 3) {
		case 0:
			ptr = s.make(wasmir.Unreachable)
		case 1:
			value = s.make(wasmir.Unreachable)
		default:
			ptr = s.make(wasmir.Unreachable)
			value = s.make(wasmir.Unreachable)
		}
	}
	return s.module.Builder.NewStore(valType, width, offset, align, ptr, value)
}
