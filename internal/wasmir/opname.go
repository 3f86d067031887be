package wasmir

// unaryMnemonics and binaryMnemonics give each operator its WebAssembly
// text-format name, so wattext can print a node without its own copy of
// this table.
var unaryMnemonics = map[UnaryOp]string{
	OpEqz32:    "i32.eqz",
	OpClz32:    "i32.clz",
	OpCtz32:    "i32.ctz",
	OpPopcnt32: "i32.popcnt",

	OpEqz64:  "i64.eqz",
	OpWrap64: "i32.wrap_i64",

	OpTruncF32S32:    "i32.trunc_f32_s",
	OpTruncF32U32:    "i32.trunc_f32_u",
	OpReinterpretF32: "i32.reinterpret_f32",

	OpTruncF64S32: "i32.trunc_f64_s",
	OpTruncF64U32: "i32.trunc_f64_u",

	OpClz64:    "i64.clz",
	OpCtz64:    "i64.ctz",
	OpPopcnt64: "i64.popcnt",

	OpExtendI32S: "i64.extend_i32_s",
	OpExtendI32U: "i64.extend_i32_u",

	OpTruncF32S64: "i64.trunc_f32_s",
	OpTruncF32U64: "i64.trunc_f32_u",

	OpTruncF64S64:    "i64.trunc_f64_s",
	OpTruncF64U64:    "i64.trunc_f64_u",
	OpReinterpretF64: "i64.reinterpret_f64",

	OpNegF32:     "f32.neg",
	OpAbsF32:     "f32.abs",
	OpCeilF32:    "f32.ceil",
	OpFloorF32:   "f32.floor",
	OpTruncF32:   "f32.trunc",
	OpNearestF32: "f32.nearest",
	OpSqrtF32:    "f32.sqrt",

	OpConvertI32UF32: "f32.convert_i32_u",
	OpConvertI32SF32: "f32.convert_i32_s",
	OpReinterpretI32: "f32.reinterpret_i32",

	OpConvertI64UF32: "f32.convert_i64_u",
	OpConvertI64SF32: "f32.convert_i64_s",

	OpDemoteF64: "f32.demote_f64",

	OpNegF64:     "f64.neg",
	OpAbsF64:     "f64.abs",
	OpCeilF64:    "f64.ceil",
	OpFloorF64:   "f64.floor",
	OpTruncF64:   "f64.trunc",
	OpNearestF64: "f64.nearest",
	OpSqrtF64:    "f64.sqrt",

	OpConvertI32UF64: "f64.convert_i32_u",
	OpConvertI32SF64: "f64.convert_i32_s",

	OpConvertI64UF64: "f64.convert_i64_u",
	OpConvertI64SF64: "f64.convert_i64_s",
	OpReinterpretI64: "f64.reinterpret_i64",

	OpPromoteF32: "f64.promote_f32",
}

var binaryMnemonics = map[BinaryOp]string{
	OpAdd32: "i32.add", OpSub32: "i32.sub", OpMul32: "i32.mul",
	OpDivS32: "i32.div_s", OpDivU32: "i32.div_u", OpRemS32: "i32.rem_s", OpRemU32: "i32.rem_u",
	OpAnd32: "i32.and", OpOr32: "i32.or", OpXor32: "i32.xor",
	OpShl32: "i32.shl", OpShrU32: "i32.shr_u", OpShrS32: "i32.shr_s",
	OpRotL32: "i32.rotl", OpRotR32: "i32.rotr",
	OpEq32: "i32.eq", OpNe32: "i32.ne",
	OpLtS32: "i32.lt_s", OpLtU32: "i32.lt_u", OpLeS32: "i32.le_s", OpLeU32: "i32.le_u",
	OpGtS32: "i32.gt_s", OpGtU32: "i32.gt_u", OpGeS32: "i32.ge_s", OpGeU32: "i32.ge_u",

	OpEq64: "i64.eq", OpNe64: "i64.ne",
	OpLtS64: "i64.lt_s", OpLtU64: "i64.lt_u", OpLeS64: "i64.le_s", OpLeU64: "i64.le_u",
	OpGtS64: "i64.gt_s", OpGtU64: "i64.gt_u", OpGeS64: "i64.ge_s", OpGeU64: "i64.ge_u",

	OpEqF32: "f32.eq", OpNeF32: "f32.ne",
	OpLtF32: "f32.lt", OpLeF32: "f32.le", OpGtF32: "f32.gt", OpGeF32: "f32.ge",

	OpEqF64: "f64.eq", OpNeF64: "f64.ne",
	OpLtF64: "f64.lt", OpLeF64: "f64.le", OpGtF64: "f64.gt", OpGeF64: "f64.ge",

	OpAdd64: "i64.add", OpSub64: "i64.sub", OpMul64: "i64.mul",
	OpDivS64: "i64.div_s", OpDivU64: "i64.div_u", OpRemS64: "i64.rem_s", OpRemU64: "i64.rem_u",
	OpAnd64: "i64.and", OpOr64: "i64.or", OpXor64: "i64.xor",
	OpShl64: "i64.shl", OpShrU64: "i64.shr_u", OpShrS64: "i64.shr_s",
	OpRotL64: "i64.rotl", OpRotR64: "i64.rotr",

	OpAddF32: "f32.add", OpSubF32: "f32.sub", OpMulF32: "f32.mul", OpDivF32: "f32.div",
	OpCopySignF32: "f32.copysign", OpMinF32: "f32.min", OpMaxF32: "f32.max",

	OpAddF64: "f64.add", OpSubF64: "f64.sub", OpMulF64: "f64.mul", OpDivF64: "f64.div",
	OpCopySignF64: "f64.copysign", OpMinF64: "f64.min", OpMaxF64: "f64.max",
}

func (op UnaryOp) String() string {
	if s, ok := unaryMnemonics[op]; ok {
		return s
	}
	return "unary.unknown"
}

func (op BinaryOp) String() string {
	if s, ok := binaryMnemonics[op]; ok {
		return s
	}
	return "binary.unknown"
}
