package fuzzgen

import "github.com/wasmfuzz/translate/internal/wasmir"

// makeSelect synthesizes a ternary select: an i32 condition choosing
// between two arms of the requested type. An Unreachable request poisons
// all three operands, condition included.
func (s *funcState) makeSelect(t wasmir.Type) *wasmir.Expr {
	condType := wasmir.I32
	if t == wasmir.Unreachable {
		condType = wasmir.Unreachable
	}
	cond := s.make(condType)
	t1 := s.make(t)
	t2 := s.make(t)
	return s.module.Builder.NewSelect(cond, t1, t2)
}

// makeDrop synthesizes a drop of a child of a fresh concrete type, or of
// type unreachable when requested: in that case the dropped child itself is
// synthesized unreachable, so NewDrop poisons the drop node's own type
// rather than needing a Sequence wrapper.
func (s *funcState) makeDrop(requested wasmir.Type) *wasmir.Expr {
	childType := requested
	if requested != wasmir.Unreachable {
		childType = getConcreteType(s.stream)
	}
	inner := s.make(childType)
	return s.module.Builder.NewDrop(inner)
}

// makeReturn synthesizes a return matching the current function's declared
// result type: bare if it returns nothing, carrying a value otherwise.
func (s *funcState) makeReturn() *wasmir.Expr {
	if s.current.Result == wasmir.None {
		return s.module.Builder.NewReturn(nil)
	}
	return s.module.Builder.NewReturn(s.make(s.current.Result))
}

// makeNop synthesizes a no-op.
func (s *funcState) makeNop() *wasmir.Expr {
	return s.module.Builder.NewNop()
}

// makeUnreachableLeaf synthesizes an explicit unreachable trap.
func (s *funcState) makeUnreachableLeaf() *wasmir.Expr {
	return s.module.Builder.NewUnreachable()
}
