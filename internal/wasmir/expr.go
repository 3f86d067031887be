package wasmir

import "fmt"

// Kind discriminates the single flattened Expr struct below. Go has no
// union type, so Expr is one struct reused across every expression form
// (the way ssa.Instruction is one struct reused across every SSA opcode);
// which fields are meaningful depends on Kind. This sidesteps a class
// hierarchy with dynCast/is<T> downcasts to recover a branch target's label.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBlock
	KindLoop
	KindIf
	KindBreak
	KindSwitch
	KindCall
	KindCallIndirect
	KindGetLocal
	KindSetLocal
	KindTeeLocal
	KindLoad
	KindStore
	KindConst
	KindUnary
	KindBinary
	KindSelect
	KindDrop
	KindReturn
	KindNop
	KindUnreachable
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "block"
	case KindLoop:
		return "loop"
	case KindIf:
		return "if"
	case KindBreak:
		return "break"
	case KindSwitch:
		return "switch"
	case KindCall:
		return "call"
	case KindCallIndirect:
		return "call_indirect"
	case KindGetLocal:
		return "get_local"
	case KindSetLocal:
		return "set_local"
	case KindTeeLocal:
		return "tee_local"
	case KindLoad:
		return "load"
	case KindStore:
		return "store"
	case KindConst:
		return "const"
	case KindUnary:
		return "unary"
	case KindBinary:
		return "binary"
	case KindSelect:
		return "select"
	case KindDrop:
		return "drop"
	case KindReturn:
		return "return"
	case KindNop:
		return "nop"
	case KindUnreachable:
		return "unreachable"
	case KindSequence:
		return "sequence"
	default:
		return "invalid"
	}
}

// UnaryOp and BinaryOp enumerate the WebAssembly 1.0 numeric operator set.
// Named to match the wasm text-format mnemonic so wattext can print them
// directly.
type UnaryOp uint8

const (
	OpEqz32 UnaryOp = iota
	OpClz32
	OpCtz32
	OpPopcnt32
	OpEqz64
	OpWrap64
	OpTruncF32S32
	OpTruncF32U32
	OpReinterpretF32
	OpTruncF64S32
	OpTruncF64U32
	OpClz64
	OpCtz64
	OpPopcnt64
	OpExtendI32S
	OpExtendI32U
	OpTruncF32S64
	OpTruncF32U64
	OpTruncF64S64
	OpTruncF64U64
	OpReinterpretF64
	OpNegF32
	OpAbsF32
	OpCeilF32
	OpFloorF32
	OpTruncF32
	OpNearestF32
	OpSqrtF32
	OpConvertI32UF32
	OpConvertI32SF32
	OpReinterpretI32
	OpConvertI64UF32
	OpConvertI64SF32
	OpDemoteF64
	OpNegF64
	OpAbsF64
	OpCeilF64
	OpFloorF64
	OpTruncF64
	OpNearestF64
	OpSqrtF64
	OpConvertI32UF64
	OpConvertI32SF64
	OpConvertI64UF64
	OpConvertI64SF64
	OpReinterpretI64
	OpPromoteF32
)

type BinaryOp uint8

const (
	OpAdd32 BinaryOp = iota
	OpSub32
	OpMul32
	OpDivS32
	OpDivU32
	OpRemS32
	OpRemU32
	OpAnd32
	OpOr32
	OpXor32
	OpShl32
	OpShrU32
	OpShrS32
	OpRotL32
	OpRotR32
	OpEq32
	OpNe32
	OpLtS32
	OpLtU32
	OpLeS32
	OpLeU32
	OpGtS32
	OpGtU32
	OpGeS32
	OpGeU32
	OpEq64
	OpNe64
	OpLtS64
	OpLtU64
	OpLeS64
	OpLeU64
	OpGtS64
	OpGtU64
	OpGeS64
	OpGeU64
	OpEqF32
	OpNeF32
	OpLtF32
	OpLeF32
	OpGtF32
	OpGeF32
	OpEqF64
	OpNeF64
	OpLtF64
	OpLeF64
	OpGtF64
	OpGeF64
	OpAdd64
	OpSub64
	OpMul64
	OpDivS64
	OpDivU64
	OpRemS64
	OpRemU64
	OpAnd64
	OpOr64
	OpXor64
	OpShl64
	OpShrU64
	OpShrS64
	OpRotL64
	OpRotR64
	OpAddF32
	OpSubF32
	OpMulF32
	OpDivF32
	OpCopySignF32
	OpMinF32
	OpMaxF32
	OpAddF64
	OpSubF64
	OpMulF64
	OpDivF64
	OpCopySignF64
	OpMinF64
	OpMaxF64
)

// ConstValue is the literal payload of a KindConst node. Exactly one of the
// fields is meaningful, selected by the node's Type.
type ConstValue struct {
	I32 int32
	I64 int64
	F32 float32
	F64 float64
}

// Expr is a single synthesized expression-tree node. Every node carries its
// own computed Type (Finalize below recomputes it from children); the
// generator never guesses a node's type from context, it always asks Type.
type Expr struct {
	Kind Kind
	Type Type

	// Block / Loop: a fresh scope label and its body.
	Name  string
	Body  []*Expr // Block's statement list.
	Child *Expr   // Loop's single body expression.

	// If: condition + then + else (both arms required; this generator
	// never synthesizes a one-armed if).
	Cond, Then, Else *Expr

	// Break / Switch: break target name (Break) or case-label vector +
	// default (Switch); optional condition (conditional break) and optional
	// payload value. On a Switch, Condition holds the i32 case selector;
	// there is no separate "condition" distinct from the selector, despite
	// the name, so this field is reused rather than adding a second one.
	Target    string
	Targets   []string
	Default   string
	Condition *Expr // nil => unconditional
	Value     *Expr // nil => no payload

	// Call / CallIndirect: callee function index and argument list.
	FuncIndex uint32
	Args      []*Expr

	// GetLocal / SetLocal / TeeLocal: local index and (for Set/Tee) payload.
	LocalIndex uint32
	// Value above doubles as the Set/Tee payload.

	// Load / Store: effective address, byte width, natural-alignment
	// exponent's corresponding alignment in bytes, offset immediate, and
	// (Load only) sign-extension flag. Store's ValueType is the concrete
	// numeric type the memory operation itself is encoded for (selects the
	// opcode and width suffix); it is fixed at construction and does not
	// change when StoreVal is later substituted with an Unreachable child,
	// unlike StoreVal.Type.
	Ptr       *Expr
	Width     uint8
	Align     uint8
	Offset    uint32
	Signed    bool
	StoreVal  *Expr
	ValueType Type

	// Const.
	ConstValue ConstValue

	// Unary / Binary.
	UnOp  UnaryOp
	BinOp BinaryOp
	X, Y  *Expr

	// Select: condition, true-value, false-value.
	SelCond, SelTrue, SelFalse *Expr

	// Drop / Return: the wrapped expression (Return may have a nil one for
	// a bare `return`).
	Inner *Expr

	// Sequence: two statements glued together (used only by makeBlock's
	// mismatch-repair path, see Builder.NewSequence).
	First, Second *Expr
}

// Finalize recomputes e's Type from its children, following WebAssembly's
// block-typing rules. Must be called after all children of e are in their
// final state: aggregate nodes are always fully built bottom-up before
// being finalized, never mutated after.
func (e *Expr) Finalize() {
	switch e.Kind {
	case KindBlock:
		e.Type = blockResultType(e.Type, e.Body)
	case KindLoop:
		// A loop's declared type is fixed at construction (it is the
		// requested type the driver asked for); its body does not change it.
	case KindIf:
		e.Type = joinTypes(e.Then.Type, e.Else.Type)
	case KindBreak:
		e.Type = breakType(e.Condition, e.Value)
	case KindReturn, KindUnreachable:
		e.Type = Unreachable
	case KindSwitch:
		e.Type = Unreachable
	case KindSequence:
		e.Type = e.Second.Type
	case KindStore, KindDrop, KindSetLocal, KindNop:
		// type already set at construction (None, or Unreachable override).
	default:
		// Const, Unary, Binary, Select, Call, CallIndirect, GetLocal,
		// TeeLocal: type fixed at construction time from the request.
	}
}

// blockResultType: if the requested type is concrete, trust it (the caller
// already arranged for the last child to produce it, or to be an
// unreachable break). An Unreachable request infers Unreachable when the
// final child is Unreachable and None otherwise; a None request always
// stays None, whatever its final child.
func blockResultType(requested Type, body []*Expr) Type {
	if requested.Concrete() {
		return requested
	}
	if requested == Unreachable {
		if len(body) > 0 && body[len(body)-1].Type == Unreachable {
			return Unreachable
		}
		return None
	}
	return None
}

// breakType: only an unconditional break never falls through. A
// conditional break leaves its value (or nothing) on the not-taken path,
// so it types as the value's type (or None), unless the condition itself
// diverges.
func breakType(cond, value *Expr) Type {
	if cond == nil || cond.Type == Unreachable {
		return Unreachable
	}
	if value != nil {
		return value.Type
	}
	return None
}

// joinTypes implements the if-without-mismatch join used by Expr.Finalize:
// equal types stay; an Unreachable arm defers to the other; otherwise None.
func joinTypes(a, b Type) Type {
	if a == b {
		return a
	}
	if a == Unreachable {
		return b
	}
	if b == Unreachable {
		return a
	}
	return None
}

func (e *Expr) String() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s:%s", e.Kind, e.Type)
}
