package wasmir

// unarySig and binarySig record each operator's declared input/output
// types: the same metadata the WebAssembly validator needs to type-check an
// operator node, and what the synthesizer needs to know which child types
// to build. Operators are declared grouped by result type and then by
// input type, so UnaryGroupsForResult/BinaryGroupsForResult can rebuild
// the per-result operand-type menus without hand-duplicating case lists.
type unarySig struct {
	In, Out Type
}

var unarySigs = map[UnaryOp]unarySig{
	OpEqz32:    {I32, I32},
	OpClz32:    {I32, I32},
	OpCtz32:    {I32, I32},
	OpPopcnt32: {I32, I32},

	OpEqz64:  {I64, I32},
	OpWrap64: {I64, I32},

	OpTruncF32S32:    {F32, I32},
	OpTruncF32U32:    {F32, I32},
	OpReinterpretF32: {F32, I32},

	OpTruncF64S32: {F64, I32},
	OpTruncF64U32: {F64, I32},

	OpClz64:    {I64, I64},
	OpCtz64:    {I64, I64},
	OpPopcnt64: {I64, I64},

	OpExtendI32S: {I32, I64},
	OpExtendI32U: {I32, I64},

	OpTruncF32S64: {F32, I64},
	OpTruncF32U64: {F32, I64},

	OpTruncF64S64:    {F64, I64},
	OpTruncF64U64:    {F64, I64},
	OpReinterpretF64: {F64, I64},

	OpNegF32:     {F32, F32},
	OpAbsF32:     {F32, F32},
	OpCeilF32:    {F32, F32},
	OpFloorF32:   {F32, F32},
	OpTruncF32:   {F32, F32},
	OpNearestF32: {F32, F32},
	OpSqrtF32:    {F32, F32},

	OpConvertI32UF32: {I32, F32},
	OpConvertI32SF32: {I32, F32},
	OpReinterpretI32: {I32, F32},

	OpConvertI64UF32: {I64, F32},
	OpConvertI64SF32: {I64, F32},

	OpDemoteF64: {F64, F32},

	OpNegF64:     {F64, F64},
	OpAbsF64:     {F64, F64},
	OpCeilF64:    {F64, F64},
	OpFloorF64:   {F64, F64},
	OpTruncF64:   {F64, F64},
	OpNearestF64: {F64, F64},
	OpSqrtF64:    {F64, F64},

	OpConvertI32UF64: {I32, F64},
	OpConvertI32SF64: {I32, F64},

	OpConvertI64UF64: {I64, F64},
	OpConvertI64SF64: {I64, F64},
	OpReinterpretI64: {I64, F64},

	OpPromoteF32: {F32, F64},
}

// Signature returns op's input and result types.
func (op UnaryOp) Signature() (in, out Type) {
	s, ok := unarySigs[op]
	if !ok {
		panic("wasmir: unknown UnaryOp")
	}
	return s.In, s.Out
}

type binarySig struct {
	In, Out Type
}

var binarySigs = map[BinaryOp]binarySig{
	OpAdd32: {I32, I32}, OpSub32: {I32, I32}, OpMul32: {I32, I32},
	OpDivS32: {I32, I32}, OpDivU32: {I32, I32}, OpRemS32: {I32, I32}, OpRemU32: {I32, I32},
	OpAnd32: {I32, I32}, OpOr32: {I32, I32}, OpXor32: {I32, I32},
	OpShl32: {I32, I32}, OpShrU32: {I32, I32}, OpShrS32: {I32, I32},
	OpRotL32: {I32, I32}, OpRotR32: {I32, I32},
	OpEq32: {I32, I32}, OpNe32: {I32, I32},
	OpLtS32: {I32, I32}, OpLtU32: {I32, I32}, OpLeS32: {I32, I32}, OpLeU32: {I32, I32},
	OpGtS32: {I32, I32}, OpGtU32: {I32, I32}, OpGeS32: {I32, I32}, OpGeU32: {I32, I32},

	OpEq64: {I64, I32}, OpNe64: {I64, I32},
	OpLtS64: {I64, I32}, OpLtU64: {I64, I32}, OpLeS64: {I64, I32}, OpLeU64: {I64, I32},
	OpGtS64: {I64, I32}, OpGtU64: {I64, I32}, OpGeS64: {I64, I32}, OpGeU64: {I64, I32},

	OpEqF32: {F32, I32}, OpNeF32: {F32, I32},
	OpLtF32: {F32, I32}, OpLeF32: {F32, I32}, OpGtF32: {F32, I32}, OpGeF32: {F32, I32},

	OpEqF64: {F64, I32}, OpNeF64: {F64, I32},
	OpLtF64: {F64, I32}, OpLeF64: {F64, I32}, OpGtF64: {F64, I32}, OpGeF64: {F64, I32},

	OpAdd64: {I64, I64}, OpSub64: {I64, I64}, OpMul64: {I64, I64},
	OpDivS64: {I64, I64}, OpDivU64: {I64, I64}, OpRemS64: {I64, I64}, OpRemU64: {I64, I64},
	OpAnd64: {I64, I64}, OpOr64: {I64, I64}, OpXor64: {I64, I64},
	OpShl64: {I64, I64}, OpShrU64: {I64, I64}, OpShrS64: {I64, I64},
	OpRotL64: {I64, I64}, OpRotR64: {I64, I64},

	OpAddF32: {F32, F32}, OpSubF32: {F32, F32}, OpMulF32: {F32, F32}, OpDivF32: {F32, F32},
	OpCopySignF32: {F32, F32}, OpMinF32: {F32, F32}, OpMaxF32: {F32, F32},

	OpAddF64: {F64, F64}, OpSubF64: {F64, F64}, OpMulF64: {F64, F64}, OpDivF64: {F64, F64},
	OpCopySignF64: {F64, F64}, OpMinF64: {F64, F64}, OpMaxF64: {F64, F64},
}

// Signature returns op's operand type (both operands share it) and result type.
func (op BinaryOp) Signature() (operand, out Type) {
	s, ok := binarySigs[op]
	if !ok {
		panic("wasmir: unknown BinaryOp")
	}
	return s.In, s.Out
}

// UnaryOpGroup is a set of unary operators sharing one input type, all
// producing the same result type.
type UnaryOpGroup struct {
	In  Type
	Ops []UnaryOp
}

// UnaryGroupsForResult returns, in declaration order, the operand-type
// groups of unary operators whose result type is out.
func UnaryGroupsForResult(out Type) []UnaryOpGroup {
	var groups []UnaryOpGroup
	index := map[Type]int{}
	for _, op := range unaryOpOrder {
		in, o := op.Signature()
		if o != out {
			continue
		}
		if i, ok := index[in]; ok {
			groups[i].Ops = append(groups[i].Ops, op)
			continue
		}
		index[in] = len(groups)
		groups = append(groups, UnaryOpGroup{In: in, Ops: []UnaryOp{op}})
	}
	return groups
}

// BinaryOpGroup is the binary analogue of UnaryOpGroup.
type BinaryOpGroup struct {
	In  Type
	Ops []BinaryOp
}

// BinaryGroupsForResult is the binary analogue of UnaryGroupsForResult.
func BinaryGroupsForResult(out Type) []BinaryOpGroup {
	var groups []BinaryOpGroup
	index := map[Type]int{}
	for _, op := range binaryOpOrder {
		in, o := op.Signature()
		if o != out {
			continue
		}
		if i, ok := index[in]; ok {
			groups[i].Ops = append(groups[i].Ops, op)
			continue
		}
		index[in] = len(groups)
		groups = append(groups, BinaryOpGroup{In: in, Ops: []BinaryOp{op}})
	}
	return groups
}

// unaryOpOrder and binaryOpOrder fix iteration order (map iteration in Go
// is randomized, and this generator must be bit-for-bit deterministic).
var unaryOpOrder = []UnaryOp{
	OpEqz32, OpClz32, OpCtz32, OpPopcnt32,
	OpEqz64, OpWrap64,
	OpTruncF32S32, OpTruncF32U32, OpReinterpretF32,
	OpTruncF64S32, OpTruncF64U32,
	OpClz64, OpCtz64, OpPopcnt64,
	OpExtendI32S, OpExtendI32U,
	OpTruncF32S64, OpTruncF32U64,
	OpTruncF64S64, OpTruncF64U64, OpReinterpretF64,
	OpNegF32, OpAbsF32, OpCeilF32, OpFloorF32, OpTruncF32, OpNearestF32, OpSqrtF32,
	OpConvertI32UF32, OpConvertI32SF32, OpReinterpretI32,
	OpConvertI64UF32, OpConvertI64SF32,
	OpDemoteF64,
	OpNegF64, OpAbsF64, OpCeilF64, OpFloorF64, OpTruncF64, OpNearestF64, OpSqrtF64,
	OpConvertI32UF64, OpConvertI32SF64,
	OpConvertI64UF64, OpConvertI64SF64, OpReinterpretI64,
	OpPromoteF32,
}

var binaryOpOrder = []BinaryOp{
	OpAdd32, OpSub32, OpMul32, OpDivS32, OpDivU32, OpRemS32, OpRemU32,
	OpAnd32, OpOr32, OpXor32, OpShl32, OpShrU32, OpShrS32, OpRotL32, OpRotR32,
	OpEq32, OpNe32, OpLtS32, OpLtU32, OpLeS32, OpLeU32, OpGtS32, OpGtU32, OpGeS32, OpGeU32,
	OpEq64, OpNe64, OpLtS64, OpLtU64, OpLeS64, OpLeU64, OpGtS64, OpGtU64, OpGeS64, OpGeU64,
	OpEqF32, OpNeF32, OpLtF32, OpLeF32, OpGtF32, OpGeF32,
	OpEqF64, OpNeF64, OpLtF64, OpLeF64, OpGtF64, OpGeF64,
	OpAdd64, OpSub64, OpMul64, OpDivS64, OpDivU64, OpRemS64, OpRemU64,
	OpAnd64, OpOr64, OpXor64, OpShl64, OpShrU64, OpShrS64, OpRotL64, OpRotR64,
	OpAddF32, OpSubF32, OpMulF32, OpDivF32, OpCopySignF32, OpMinF32, OpMaxF32,
	OpAddF64, OpSubF64, OpMulF64, OpDivF64, OpCopySignF64, OpMinF64, OpMaxF64,
}
