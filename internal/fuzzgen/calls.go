package fuzzgen

import (
	"github.com/wasmfuzz/translate/internal/entropy"
	"github.com/wasmfuzz/translate/internal/wasmir"
)

// makeCall synthesizes a call to some function (including, for
// self-recursion, the one currently under construction) whose result type
// matches requested.
// Candidates are searched via rejection sampling; a candidate that happens
// to be the current function is additionally damped by RecursionFactor x
// Tries, so recursive fuzz functions stay rare without being impossible.
func (s *funcState) makeCall(requested wasmir.Type) *wasmir.Expr {
	for tries := s.cfg.Tries; tries > 0; tries-- {
		fn := s.pickCallCandidate()
		if fn == nil || fn.Result != requested {
			continue
		}
		if fn == s.current && !entropy.OneIn(s.stream, uint32(s.cfg.RecursionFactor*s.cfg.Tries)) {
			continue
		}
		args := make([]*wasmir.Expr, len(fn.Params))
		for i, t := range fn.Params {
			args[i] = s.make(t)
		}
		return s.module.Builder.NewCall(fn.Index, args, requested)
	}
	return s.makeTrivial(requested)
}

// pickCallCandidate starts from the function currently under construction
// (whose index is assigned but which is not yet present in
// module.Functions) and, with probability 1-1/|funcs|, replaces it with a
// uniform pick among the already-declared functions.
func (s *funcState) pickCallCandidate() *wasmir.Function {
	fn := s.current
	if n := len(s.module.Functions); n > 0 && !entropy.OneIn(s.stream, uint32(n)) {
		fn = s.module.Functions[entropy.UpTo(s.stream, uint32(n))]
	}
	return fn
}

// makeCallIndirect stands in for a call through a function table. This
// generator never builds a table, so an indirect call degrades to a plain
// make of the requested type, keeping the full expression menu available
// (a direct-call search would always come up empty for an unreachable
// request, since no function's result type is ever unreachable).
func (s *funcState) makeCallIndirect(requested wasmir.Type) *wasmir.Expr {
	return s.make(requested)
}
