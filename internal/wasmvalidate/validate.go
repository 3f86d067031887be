// Package wasmvalidate walks a generated module checking the invariants
// the generator is supposed to guarantee by construction: every
// expression's type agrees with the slot that holds it (or is
// Unreachable), every break/switch target is in scope, every local
// reference is in bounds and type-correct, every call's arity and operand
// types match its callee, and the module's memory is present and sized
// consistently. It is the post-generation safety net the fuzzgen tests run
// every generated module through.
package wasmvalidate

import (
	"errors"
	"fmt"

	"github.com/wasmfuzz/translate/internal/wasmir"
)

// Validate returns a joined error (nil if none) describing every invariant
// violation found in m. A clean module always validates; any violation
// indicates a bug in the generator, not a property of the fuzz input.
func Validate(m *wasmir.Module) error {
	var errs []error
	if !m.Memory.Exists {
		errs = append(errs, errors.New("wasmvalidate: module has no memory"))
	} else if m.Memory.Initial == 0 || m.Memory.Initial > m.Memory.Max {
		errs = append(errs, fmt.Errorf("wasmvalidate: invalid memory bounds initial=%d max=%d", m.Memory.Initial, m.Memory.Max))
	}

	for _, fn := range m.Functions {
		v := &funcValidator{module: m, fn: fn}
		v.check(fn.Body)
		if fn.Body != nil && !typeCompatible(fn.Body.Type, fn.Result) {
			v.errorf("function %s: body type %s incompatible with declared result %s", fn.Name, fn.Body.Type, fn.Result)
		}
		errs = append(errs, v.errs...)
	}
	return errors.Join(errs...)
}

type scope struct {
	name string
	typ  wasmir.Type // label type: a block's declared type, None for a loop
}

type funcValidator struct {
	module    *wasmir.Module
	fn        *wasmir.Function
	breakable []scope
	errs      []error
}

func (v *funcValidator) errorf(format string, args ...any) {
	v.errs = append(v.errs, fmt.Errorf("wasmvalidate: "+format, args...))
}

// typeCompatible reports whether got satisfies a slot requesting want:
// either they match exactly, or got is Unreachable (the one mismatch every
// WebAssembly type rule permits).
func typeCompatible(got, want wasmir.Type) bool {
	return got == want || got == wasmir.Unreachable
}

func (v *funcValidator) check(e *wasmir.Expr) {
	if e == nil {
		return
	}
	switch e.Kind {
	case wasmir.KindBlock:
		v.breakable = append(v.breakable, scope{name: e.Name, typ: e.Type})
		for i, c := range e.Body {
			v.check(c)
			if i < len(e.Body)-1 && !typeCompatible(c.Type, wasmir.None) {
				v.errorf("block %s: statement %d has non-void type %s", e.Name, i, c.Type)
			}
		}
		if last := len(e.Body) - 1; last >= 0 && e.Type.Concrete() && !typeCompatible(e.Body[last].Type, e.Type) {
			v.errorf("block %s: final child typed %s, block declares %s", e.Name, e.Body[last].Type, e.Type)
		}
		v.breakable = v.breakable[:len(v.breakable)-1]

	case wasmir.KindLoop:
		v.breakable = append(v.breakable, scope{name: e.Name, typ: wasmir.None})
		v.check(e.Child)
		v.breakable = v.breakable[:len(v.breakable)-1]
		if e.Child != nil && e.Type.Concrete() && !typeCompatible(e.Child.Type, e.Type) {
			v.errorf("loop %s: body typed %s, loop declares %s", e.Name, e.Child.Type, e.Type)
		}

	case wasmir.KindIf:
		v.check(e.Cond)
		v.checkI32(e.Cond, "if condition")
		v.check(e.Then)
		v.check(e.Else)
		if e.Type.Concrete() && (!typeCompatible(e.Then.Type, e.Type) || !typeCompatible(e.Else.Type, e.Type)) {
			v.errorf("function %s: if typed %s has arms typed %s/%s", v.fn.Name, e.Type, e.Then.Type, e.Else.Type)
		}

	case wasmir.KindBreak:
		v.check(e.Condition)
		if e.Condition != nil {
			v.checkI32(e.Condition, "br_if condition")
		}
		v.check(e.Value)
		v.checkTarget(e.Target, e.Value)

	case wasmir.KindSwitch:
		v.check(e.Condition)
		v.checkI32(e.Condition, "br_table selector")
		v.check(e.Value)
		for _, t := range e.Targets {
			v.checkTarget(t, e.Value)
		}
		v.checkTarget(e.Default, e.Value)

	case wasmir.KindCall:
		for _, a := range e.Args {
			v.check(a)
		}
		v.checkCall(e)

	case wasmir.KindCallIndirect:
		for _, a := range e.Args {
			v.check(a)
		}

	case wasmir.KindGetLocal:
		v.checkLocalRead(e.LocalIndex, e.Type)

	case wasmir.KindSetLocal:
		v.check(e.Value)
		v.checkLocalIndex(e.LocalIndex)
		if v.localInRange(e.LocalIndex) && !typeCompatible(e.Value.Type, v.fn.LocalType(e.LocalIndex)) {
			v.errorf("function %s: set_local %d value type %s disagrees with local type %s", v.fn.Name, e.LocalIndex, e.Value.Type, v.fn.LocalType(e.LocalIndex))
		}

	case wasmir.KindTeeLocal:
		v.check(e.Value)
		v.checkLocalIndex(e.LocalIndex)
		if v.localInRange(e.LocalIndex) && !typeCompatible(e.Value.Type, v.fn.LocalType(e.LocalIndex)) {
			v.errorf("function %s: tee_local %d value type %s disagrees with local type %s", v.fn.Name, e.LocalIndex, e.Value.Type, v.fn.LocalType(e.LocalIndex))
		}

	case wasmir.KindLoad:
		v.check(e.Ptr)
		v.checkI32(e.Ptr, "load address")

	case wasmir.KindStore:
		v.check(e.Ptr)
		v.checkI32(e.Ptr, "store address")
		v.check(e.StoreVal)
		if !typeCompatible(e.StoreVal.Type, e.ValueType) {
			v.errorf("function %s: store of %s carries value typed %s", v.fn.Name, e.ValueType, e.StoreVal.Type)
		}

	case wasmir.KindUnary:
		v.check(e.X)
		if in, _ := e.UnOp.Signature(); !typeCompatible(e.X.Type, in) {
			v.errorf("function %s: unary operand typed %s, operator wants %s", v.fn.Name, e.X.Type, in)
		}

	case wasmir.KindBinary:
		v.check(e.X)
		v.check(e.Y)
		if in, _ := e.BinOp.Signature(); !typeCompatible(e.X.Type, in) || !typeCompatible(e.Y.Type, in) {
			v.errorf("function %s: binary operands typed %s/%s, operator wants %s", v.fn.Name, e.X.Type, e.Y.Type, in)
		}

	case wasmir.KindSelect:
		v.check(e.SelCond)
		v.checkI32(e.SelCond, "select condition")
		v.check(e.SelTrue)
		v.check(e.SelFalse)
		if e.Type.Concrete() && (!typeCompatible(e.SelTrue.Type, e.Type) || !typeCompatible(e.SelFalse.Type, e.Type)) {
			v.errorf("function %s: select typed %s has arms typed %s/%s", v.fn.Name, e.Type, e.SelTrue.Type, e.SelFalse.Type)
		}

	case wasmir.KindDrop:
		v.check(e.Inner)

	case wasmir.KindReturn:
		v.check(e.Inner)
		v.checkReturn(e.Inner)

	case wasmir.KindSequence:
		v.check(e.First)
		v.check(e.Second)

	case wasmir.KindConst, wasmir.KindNop, wasmir.KindUnreachable:
		// leaves, nothing to check beyond their own fixed type.
	}
}

func (v *funcValidator) checkTarget(name string, value *wasmir.Expr) {
	for i := len(v.breakable) - 1; i >= 0; i-- {
		s := v.breakable[i]
		if s.name != name {
			continue
		}
		if s.typ.Concrete() {
			if value == nil || !typeCompatible(value.Type, s.typ) {
				v.errorf("function %s: break to %s requires a %s value", v.fn.Name, name, s.typ)
			}
		} else if value != nil && !typeCompatible(value.Type, wasmir.None) {
			v.errorf("function %s: break to %s carries unexpected value of type %s", v.fn.Name, name, value.Type)
		}
		return
	}
	v.errorf("function %s: break target %q not in scope", v.fn.Name, name)
}

func (v *funcValidator) checkI32(e *wasmir.Expr, what string) {
	if e == nil {
		v.errorf("function %s: missing %s", v.fn.Name, what)
		return
	}
	if !typeCompatible(e.Type, wasmir.I32) {
		v.errorf("function %s: %s typed %s, want i32", v.fn.Name, what, e.Type)
	}
}

func (v *funcValidator) localInRange(idx uint32) bool {
	return idx < uint32(v.fn.LocalCount())
}

func (v *funcValidator) checkLocalIndex(idx uint32) {
	if !v.localInRange(idx) {
		v.errorf("function %s: local index %d out of range (have %d)", v.fn.Name, idx, v.fn.LocalCount())
	}
}

func (v *funcValidator) checkLocalRead(idx uint32, got wasmir.Type) {
	v.checkLocalIndex(idx)
	if !v.localInRange(idx) {
		return
	}
	if want := v.fn.LocalType(idx); got != want {
		v.errorf("function %s: get_local %d typed %s, local declared %s", v.fn.Name, idx, got, want)
	}
}

func (v *funcValidator) checkCall(e *wasmir.Expr) {
	if e.FuncIndex >= uint32(len(v.module.Functions)) {
		v.errorf("function %s: call to out-of-range function index %d", v.fn.Name, e.FuncIndex)
		return
	}
	callee := v.module.Functions[e.FuncIndex]
	if len(e.Args) != len(callee.Params) {
		v.errorf("function %s: call to %s passes %d args, wants %d", v.fn.Name, callee.Name, len(e.Args), len(callee.Params))
		return
	}
	for i, a := range e.Args {
		if !typeCompatible(a.Type, callee.Params[i]) {
			v.errorf("function %s: call to %s arg %d typed %s, wants %s", v.fn.Name, callee.Name, i, a.Type, callee.Params[i])
		}
	}
	if !typeCompatible(e.Type, callee.Result) {
		v.errorf("function %s: call to %s typed %s, callee returns %s", v.fn.Name, callee.Name, e.Type, callee.Result)
	}
}

func (v *funcValidator) checkReturn(inner *wasmir.Expr) {
	if v.fn.Result == wasmir.None {
		if inner != nil {
			v.errorf("function %s: bare return carries a value of type %s", v.fn.Name, inner.Type)
		}
		return
	}
	if inner == nil || !typeCompatible(inner.Type, v.fn.Result) {
		v.errorf("function %s: return requires a %s value", v.fn.Name, v.fn.Result)
	}
}
