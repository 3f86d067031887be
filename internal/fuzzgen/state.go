package fuzzgen

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/wasmfuzz/translate/internal/entropy"
	"github.com/wasmfuzz/translate/internal/wasmir"
)

// funcState is the per-function generation state: the function currently
// under construction, its locals indexed by type, the open break-targets
// stack, the loop-hazard stack, the label counter, and the recursion
// nesting counter. One funcState is reused across functions (reset, not
// reallocated) by the driver.
type funcState struct {
	cfg    *Config
	stream *entropy.Stream
	module *wasmir.Module

	// current is the function being built. It is not yet present in
	// module.Functions (the driver appends it only once the body is
	// complete), so makeCall must consider it as an extra candidate beyond
	// module.Functions.
	current *wasmir.Function

	typeLocals map[wasmir.Type][]uint32
	labelIndex int

	// breakable holds every block/loop node currently open, outermost
	// first. A break or switch may only name one of these.
	breakable []*wasmir.Expr

	// hazard parallels breakable but also records "we're inside a
	// condition" markers as nil entries: an enclosing if's condition, or a
	// conditional break's own condition. Used to estimate how many runtime
	// conditions sit between a candidate unconditional break and its loop
	// target.
	hazard []*wasmir.Expr

	nesting int
}

func newFuncState(cfg *Config, stream *entropy.Stream, module *wasmir.Module) *funcState {
	return &funcState{
		cfg:        cfg,
		stream:     stream,
		module:     module,
		typeLocals: make(map[wasmir.Type][]uint32),
	}
}

// reset clears all per-function state so the next function starts clean,
// asserting that the scope stacks unwound fully during the previous one.
func (s *funcState) reset(fn *wasmir.Function) {
	if len(s.breakable) != 0 || len(s.hazard) != 0 {
		panic("fuzzgen: funcState reset with non-empty scope stacks")
	}
	s.current = fn
	maps.Clear(s.typeLocals)
	s.labelIndex = 0
}

// declareLocal registers a new local of type typ at index idx in the
// type->locals map, keeping it in sync with the function's own
// Params/Vars lists as they grow.
func (s *funcState) declareLocal(typ wasmir.Type, idx uint32) {
	s.typeLocals[typ] = append(s.typeLocals[typ], idx)
}

// localsOfType returns the (possibly empty) locals declared so far with the
// given type, in a deterministic order matching declaration order. The map
// itself is never iterated for this, only indexed, so no sort is needed.
func (s *funcState) localsOfType(typ wasmir.Type) []uint32 {
	return s.typeLocals[typ]
}

// declaredLocalTypes returns every concrete type with at least one declared
// local, in a fixed deterministic order (sorted by the Type's own numeric
// tag) rather than Go's randomized map iteration order. Handy for
// inspecting a function's local inventory as a whole.
func (s *funcState) declaredLocalTypes() []wasmir.Type {
	keys := maps.Keys(s.typeLocals)
	slices.SortFunc(keys, func(a, b wasmir.Type) int { return int(a) - int(b) })
	out := keys[:0:0]
	for _, k := range keys {
		if len(s.typeLocals[k]) > 0 {
			out = append(out, k)
		}
	}
	return out
}

// newLabel returns a fresh, monotonically increasing block/loop label.
func (s *funcState) newLabel() string {
	name := fmt.Sprintf("label$%d", s.labelIndex)
	s.labelIndex++
	return name
}

func (s *funcState) pushBreakable(e *wasmir.Expr) { s.breakable = append(s.breakable, e) }
func (s *funcState) popBreakable() {
	s.breakable = s.breakable[:len(s.breakable)-1]
}

func (s *funcState) pushHazard(e *wasmir.Expr) { s.hazard = append(s.hazard, e) }
func (s *funcState) popHazard() {
	s.hazard = s.hazard[:len(s.hazard)-1]
}

// targetName returns the label a break/switch would use to reach target.
func targetName(target *wasmir.Expr) string {
	return target.Name
}

// targetType returns target's label-type: a block's declared type, or None
// for a loop (loop re-entry carries no payload).
func targetType(target *wasmir.Expr) wasmir.Type {
	if target.Kind == wasmir.KindLoop {
		return wasmir.None
	}
	return target.Type
}
