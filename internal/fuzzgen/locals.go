package fuzzgen

import (
	"github.com/wasmfuzz/translate/internal/entropy"
	"github.com/wasmfuzz/translate/internal/wasmir"
)

// makeGetLocal synthesizes a read of a declared local of type t, falling
// back to a const if the function happens to have declared none of that
// type yet (possible when the driver rolled a small param/var count).
func (s *funcState) makeGetLocal(t wasmir.Type) *wasmir.Expr {
	locals := s.localsOfType(t)
	if len(locals) == 0 {
		return s.makeConst(t)
	}
	idx := entropy.VectorPick(s.stream, locals)
	return s.module.Builder.NewGetLocal(idx, t)
}

// makeSetLocal synthesizes a write to a declared local. requested shapes
// which form comes out: a concrete requested type asks for a tee_local
// against a local of exactly that type (falling back to a bare const if
// none exists); None asks for a plain set_local of a freshly drawn
// concrete type; Unreachable asks for a set_local whose value itself
// diverges. For the non-tee forms the value type is drawn first and the
// whole thing falls to trivial when no local of that type exists.
func (s *funcState) makeSetLocal(requested wasmir.Type) *wasmir.Expr {
	if requested.Concrete() {
		locals := s.localsOfType(requested)
		if len(locals) == 0 {
			return s.makeConst(requested)
		}
		idx := entropy.VectorPick(s.stream, locals)
		value := s.make(requested)
		return s.module.Builder.NewTeeLocal(idx, value)
	}

	t := getConcreteType(s.stream)
	locals := s.localsOfType(t)
	if len(locals) == 0 {
		return s.makeTrivial(requested)
	}
	idx := entropy.VectorPick(s.stream, locals)
	var value *wasmir.Expr
	if requested == wasmir.None {
		value = s.make(t)
	} else {
		value = s.make(wasmir.Unreachable)
	}
	return s.module.Builder.NewSetLocal(idx, value)
}
