package fuzzgen

import (
	"github.com/wasmfuzz/translate/internal/entropy"
	"github.com/wasmfuzz/translate/internal/wasmir"
)

// makeBreak synthesizes a break of the requested type. A break carrying a
// value is made conditional (a
// condition is pre-synthesized and the generator searches for a target
// whose label-type matches); an Unreachable-typed break is unconditional,
// and unconditional breaks to a loop are probabilistically rejected unless
// enough runtime conditions sit between the break site and the loop, to
// damp the chance of an infinite loop.
func (s *funcState) makeBreak(requested wasmir.Type) *wasmir.Expr {
	if len(s.breakable) == 0 {
		return s.makeTrivial(requested)
	}

	var condition *wasmir.Expr
	carriesCondition := requested != wasmir.Unreachable
	if carriesCondition {
		s.pushHazard(nil)
		condition = s.makeCondition()
	}

	for tries := s.cfg.Tries; tries > 0; tries-- {
		target := entropy.VectorPick(s.stream, s.breakable)
		name := targetName(target)
		labelType := targetType(target)

		switch {
		case requested.Concrete():
			if labelType != requested {
				continue
			}
			payload := s.make(requested)
			s.popHazard()
			return s.module.Builder.NewBreak(name, payload, condition)

		case requested == wasmir.None:
			if labelType != wasmir.None {
				continue
			}
			s.popHazard()
			return s.module.Builder.NewBreak(name, nil, condition)

		default: // Unreachable: unconditional break
			if labelType != wasmir.None {
				continue
			}
			if s.rejectUnconditionalBreak(name) {
				continue
			}
			return s.module.Builder.NewBreak(name, nil, nil)
		}
	}

	if carriesCondition {
		s.popHazard()
	}
	return s.makeTrivial(requested)
}

// rejectUnconditionalBreak estimates how many runtime conditions lie
// between the current synthesis point and the loop named target (counting
// hazard-stack nil markers until the matching loop is found, or to the
// bottom of the stack if target is a block) and probabilistically rejects
// when too few conditions separate the break from its loop target: the
// fewer conditions, the likelier this unconditional break would spin
// forever.
func (s *funcState) rejectUnconditionalBreak(target string) bool {
	conditions := 0
	for i := len(s.hazard) - 1; i >= 0; i-- {
		item := s.hazard[i]
		if item == nil {
			conditions++
			continue
		}
		if item.Kind == wasmir.KindLoop && item.Name == target {
			break
		}
	}
	switch {
	case conditions == 0:
		return !entropy.OneIn(s.stream, 4)
	case conditions == 1:
		return !entropy.OneIn(s.stream, 2)
	default:
		return entropy.OneIn(s.stream, uint32(conditions+1))
	}
}

// makeSwitch synthesizes a branch table: only ever called for Unreachable
// (a switch's "fall off the end" never happens). Tries up to cfg.Tries
// breakable targets, keeping every one whose label-type agrees with the
// first accepted target; falls back to make(Unreachable) if fewer than two
// survive.
func (s *funcState) makeSwitch() *wasmir.Expr {
	if len(s.breakable) == 0 {
		return s.make(wasmir.Unreachable)
	}

	var names []string
	var valueType wasmir.Type
	for tries := s.cfg.Tries; tries > 0; tries-- {
		target := entropy.VectorPick(s.stream, s.breakable)
		name := targetName(target)
		cur := targetType(target)
		if len(names) == 0 {
			valueType = cur
		} else if valueType != cur {
			continue
		}
		names = append(names, name)
	}
	if len(names) < 2 {
		return s.make(wasmir.Unreachable)
	}

	def := names[len(names)-1]
	names = names[:len(names)-1]

	selector := s.make(wasmir.I32)
	var payload *wasmir.Expr
	if valueType.Concrete() {
		payload = s.make(valueType)
	}
	return s.module.Builder.NewSwitch(names, def, selector, payload)
}
