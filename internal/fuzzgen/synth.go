package fuzzgen

import (
	"github.com/wasmfuzz/translate/internal/entropy"
	"github.com/wasmfuzz/translate/internal/wasmir"
)

// make is the single entry point of the type-directed expression
// synthesizer. Always call this, never one of the
// make* kernels below directly: they assume the termination guard and
// nesting bookkeeping have already run.
func (s *funcState) make(requested wasmir.Type) *wasmir.Expr {
	if trivial, ok := s.maybeTrivial(requested); ok {
		return trivial
	}
	s.nesting++
	var ret *wasmir.Expr
	switch requested {
	case wasmir.I32:
		ret = s.makeI32()
	case wasmir.I64:
		ret = s.makeI64()
	case wasmir.F32:
		ret = s.makeF32()
	case wasmir.F64:
		ret = s.makeF64()
	case wasmir.None:
		ret = s.makeNone()
	case wasmir.Unreachable:
		ret = s.makeUnreachableKind()
	default:
		panic("fuzzgen: invalid requested type")
	}
	s.nesting--
	return ret
}

// maybeTrivial implements the termination guard: once the entropy stream is
// exhausted, or nesting has run past the hard cap (always), or past the
// soft NestingLimit (with 1/4 probability), stop recursing and emit the
// smallest valid expression of the requested type. This is what guarantees
// make() always terminates regardless of input.
func (s *funcState) maybeTrivial(requested wasmir.Type) (*wasmir.Expr, bool) {
	cut := s.stream.Exhausted() ||
		(s.nesting >= s.cfg.NestingLimit && entropy.OneIn(s.stream, 4)) ||
		s.nesting >= s.cfg.hardNestingCap()
	if !cut {
		return nil, false
	}
	if requested.Concrete() {
		if entropy.OneIn(s.stream, 2) {
			return s.makeConst(requested), true
		}
		return s.makeGetLocal(requested), true
	}
	if requested == wasmir.None {
		if entropy.OneIn(s.stream, 2) {
			return s.makeNop(), true
		}
		return s.makeSetLocal(requested), true
	}
	// requested == Unreachable
	if entropy.OneIn(s.stream, 2) {
		return s.makeUnreachableLeaf(), true
	}
	return s.makeBreak(requested), true
}

// makeTrivial is the guaranteed-no-recursion leaf used when rejection
// sampling (break target, call target) runs out of tries. Unlike
// maybeTrivial it is not a coin flip between two options: it always picks
// the cheapest possible node, since by the time callers reach for it they
// have already spent their entropy budget on a failed search.
func (s *funcState) makeTrivial(requested wasmir.Type) *wasmir.Expr {
	if requested.Concrete() {
		return s.makeConst(requested)
	}
	if requested == wasmir.None {
		return s.makeNop()
	}
	return s.makeUnreachableLeaf()
}

// makeI32, makeI64, makeF32, makeF64 each select uniformly among the 13
// expression forms that can produce a concrete numeric value.
func (s *funcState) makeI32() *wasmir.Expr { return s.makeConcrete(wasmir.I32) }
func (s *funcState) makeI64() *wasmir.Expr { return s.makeConcrete(wasmir.I64) }
func (s *funcState) makeF32() *wasmir.Expr { return s.makeConcrete(wasmir.F32) }
func (s *funcState) makeF64() *wasmir.Expr { return s.makeConcrete(wasmir.F64) }

func (s *funcState) makeConcrete(t wasmir.Type) *wasmir.Expr {
	switch entropy.UpTo(s.stream, 13) {
	case 0:
		return s.makeBlock(t)
	case 1:
		return s.makeIf(t)
	case 2:
		return s.makeLoop(t)
	case 3:
		return s.makeBreak(t)
	case 4:
		return s.makeCall(t)
	case 5:
		return s.makeCallIndirect(t)
	case 6:
		return s.makeGetLocal(t)
	case 7:
		return s.makeSetLocal(t) // tee, since t is concrete
	case 8:
		return s.makeLoad(t)
	case 9:
		return s.makeConst(t)
	case 10:
		return s.makeUnary(t)
	case 11:
		return s.makeBinary(t)
	case 12:
		return s.makeSelect(t)
	}
	panic("unreachable")
}

func (s *funcState) makeNone() *wasmir.Expr {
	switch entropy.UpTo(s.stream, 10) {
	case 0:
		return s.makeBlock(wasmir.None)
	case 1:
		return s.makeIf(wasmir.None)
	case 2:
		return s.makeLoop(wasmir.None)
	case 3:
		return s.makeBreak(wasmir.None)
	case 4:
		return s.makeCall(wasmir.None)
	case 5:
		return s.makeCallIndirect(wasmir.None)
	case 6:
		return s.makeSetLocal(wasmir.None)
	case 7:
		return s.makeStore(wasmir.None)
	case 8:
		return s.makeDrop(wasmir.None)
	case 9:
		return s.makeNop()
	}
	panic("unreachable")
}

func (s *funcState) makeUnreachableKind() *wasmir.Expr {
	switch entropy.UpTo(s.stream, 15) {
	case 0:
		return s.makeBlock(wasmir.Unreachable)
	case 1:
		return s.makeIf(wasmir.Unreachable)
	case 2:
		return s.makeLoop(wasmir.Unreachable)
	case 3:
		return s.makeBreak(wasmir.Unreachable)
	case 4:
		return s.makeCall(wasmir.Unreachable)
	case 5:
		return s.makeCallIndirect(wasmir.Unreachable)
	case 6:
		return s.makeSetLocal(wasmir.Unreachable)
	case 7:
		return s.makeStore(wasmir.Unreachable)
	case 8:
		return s.makeUnary(wasmir.Unreachable)
	case 9:
		return s.makeBinary(wasmir.Unreachable)
	case 10:
		return s.makeSelect(wasmir.Unreachable)
	case 11:
		return s.makeSwitch()
	case 12:
		return s.makeDrop(wasmir.Unreachable)
	case 13:
		return s.makeReturn()
	case 14:
		return s.makeUnreachableLeaf()
	}
	panic("unreachable")
}

// RandomType picks uniformly among all six types, including the
// control-flow-only None and Unreachable. Not used by the driver (which
// wants getReachableType) or by local/param declaration (which wants
// getConcreteType), but exported for callers that need the full six-way
// menu; nothing in this module calls it.
func RandomType(s *entropy.Stream) wasmir.Type {
	return wasmir.AllTypes[entropy.UpTo(s, 6)]
}

// getReachableType picks uniformly among the five reachable types.
func getReachableType(s *entropy.Stream) wasmir.Type {
	return wasmir.ReachableTypes[entropy.UpTo(s, 5)]
}

// getConcreteType picks uniformly among the four numeric types.
func getConcreteType(s *entropy.Stream) wasmir.Type {
	return wasmir.ConcreteTypes[entropy.UpTo(s, 4)]
}
