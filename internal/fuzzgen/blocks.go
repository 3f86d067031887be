package fuzzgen

import (
	"github.com/wasmfuzz/translate/internal/entropy"
	"github.com/wasmfuzz/translate/internal/wasmir"
)

// makeBlock synthesizes a block of the requested type: a fresh label,
// logify(get8()) statement children (each typed None, stopping early if the
// stream exhausts mid-way), then a terminal child: either an unreachable
// break (a common "exit the block early" idiom, picked with 50/50 odds when
// the block's value is concrete) or a child of the requested type.
func (s *funcState) makeBlock(requested wasmir.Type) *wasmir.Expr {
	name := s.newLabel()
	placeholder := &wasmir.Expr{Kind: wasmir.KindBlock, Name: name, Type: requested}
	s.pushBreakable(placeholder)

	var body []*wasmir.Expr
	n := entropy.Logify(int(s.stream.Get8()))
	for n > 0 && !s.stream.Exhausted() {
		body = append(body, s.make(wasmir.None))
		n--
	}
	if !s.stream.Exhausted() && requested.Concrete() && entropy.OneIn(s.stream, 2) {
		body = append(body, s.makeBreak(wasmir.Unreachable))
	} else {
		body = append(body, s.make(requested))
	}

	s.popBreakable()
	ret := s.module.Builder.NewBlock(name, requested, body)
	if ret.Type != requested {
		// The only mismatch possible here: an
		// Unreachable request that concretized to None because every
		// child flowed out normally. Repair by sequencing in an explicit
		// unreachable. Any other mismatch is a synthesizer bug.
		if requested != wasmir.Unreachable || ret.Type != wasmir.None {
			panic("fuzzgen: unexpected block type mismatch")
		}
		return s.module.Builder.NewSequence(ret, s.make(wasmir.Unreachable))
	}
	return ret
}

// makeLoop synthesizes a loop of the requested type: fresh label, pushed
// onto both the breakable and hazard stacks for its single body expression.
func (s *funcState) makeLoop(requested wasmir.Type) *wasmir.Expr {
	name := s.newLabel()
	placeholder := &wasmir.Expr{Kind: wasmir.KindLoop, Name: name, Type: requested}
	s.pushBreakable(placeholder)
	s.pushHazard(placeholder)

	body := s.make(requested)

	s.popBreakable()
	s.popHazard()
	return s.module.Builder.NewLoop(name, requested, body)
}

// makeCondition synthesizes an i32 condition, then with 50/50 odds wraps it
// in eqz to even out the natural bias of consts (mostly "truthy") toward a
// fair split between taken and not-taken branches.
func (s *funcState) makeCondition() *wasmir.Expr {
	cond := s.make(wasmir.I32)
	if entropy.OneIn(s.stream, 2) {
		cond = s.module.Builder.NewUnary(wasmir.OpEqz32, cond)
	}
	return cond
}

// makeIf synthesizes an if with both arms of the requested type. The
// condition is pushed as a nil marker onto the hazard stack while synthesizing
// the arms, so nested unconditional breaks know they passed through a
// condition on their way out.
func (s *funcState) makeIf(requested wasmir.Type) *wasmir.Expr {
	cond := s.makeCondition()
	s.pushHazard(nil)
	then := s.make(requested)
	els := s.make(requested)
	s.popHazard()
	return s.module.Builder.NewIf(cond, then, els)
}
