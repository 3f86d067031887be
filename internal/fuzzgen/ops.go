package fuzzgen

import (
	"github.com/wasmfuzz/translate/internal/entropy"
	"github.com/wasmfuzz/translate/internal/wasmir"
)

// makeUnary synthesizes a unary operator producing t. Operators are
// grouped by operand type (see wasmir.UnaryGroupsForResult); the generator
// first rolls which operand-type group to use, then which operator within
// it, so the case membership lives in one table instead of being
// re-derived by hand here. No operator's declared result type is ever
// Unreachable, so an Unreachable request picks its operator as if it were
// producing some concrete type, then synthesizes the operand as
// Unreachable instead of the operator's normal input type.
func (s *funcState) makeUnary(t wasmir.Type) *wasmir.Expr {
	lookup := t
	if t == wasmir.Unreachable {
		lookup = getConcreteType(s.stream)
	}
	groups := wasmir.UnaryGroupsForResult(lookup)
	group := groups[entropy.UpTo(s.stream, uint32(len(groups)))]
	op := entropy.VectorPick(s.stream, group.Ops)
	in := group.In
	if t == wasmir.Unreachable {
		in = wasmir.Unreachable
	}
	x := s.make(in)
	return s.module.Builder.NewUnary(op, x)
}

// makeBinary is makeUnary's two-operand analogue.
func (s *funcState) makeBinary(t wasmir.Type) *wasmir.Expr {
	lookup := t
	if t == wasmir.Unreachable {
		lookup = getConcreteType(s.stream)
	}
	groups := wasmir.BinaryGroupsForResult(lookup)
	group := groups[entropy.UpTo(s.stream, uint32(len(groups)))]
	op := entropy.VectorPick(s.stream, group.Ops)
	in := group.In
	if t == wasmir.Unreachable {
		in = wasmir.Unreachable
	}
	x := s.make(in)
	y := s.make(in)
	return s.module.Builder.NewBinary(op, x, y)
}
