package wasmbinary

import "github.com/wasmfuzz/translate/internal/wasmir"

// These are the WebAssembly core binary format's fixed opcode bytes (core
// spec release 1), reproduced here because this package writes the binary
// encoding directly rather than going through any assembler dependency.
const (
	opUnreachable = 0x00
	opNop         = 0x01
	opBlock       = 0x02
	opLoop        = 0x03
	opIf          = 0x04
	opElse        = 0x05
	opEnd         = 0x0b
	opBr          = 0x0c
	opBrIf        = 0x0d
	opBrTable     = 0x0e
	opReturn      = 0x0f
	opCall        = 0x10
	opDrop        = 0x1a
	opSelect      = 0x1b
	opGetLocal    = 0x20
	opSetLocal    = 0x21
	opTeeLocal    = 0x22

	opI32Load    = 0x28
	opI64Load    = 0x29
	opF32Load    = 0x2a
	opF64Load    = 0x2b
	opI32Load8S  = 0x2c
	opI32Load8U  = 0x2d
	opI32Load16S = 0x2e
	opI32Load16U = 0x2f
	opI64Load8S  = 0x30
	opI64Load8U  = 0x31
	opI64Load16S = 0x32
	opI64Load16U = 0x33
	opI64Load32S = 0x34
	opI64Load32U = 0x35
	opI32Store   = 0x36
	opI64Store   = 0x37
	opF32Store   = 0x38
	opF64Store   = 0x39
	opI32Store8  = 0x3a
	opI32Store16 = 0x3b
	opI64Store8  = 0x3c
	opI64Store16 = 0x3d
	opI64Store32 = 0x3e

	opI32Const = 0x41
	opI64Const = 0x42
	opF32Const = 0x43
	opF64Const = 0x44

	blockTypeEmpty = 0x40
)

func valtype(t wasmir.Type) byte {
	switch t {
	case wasmir.I32:
		return 0x7f
	case wasmir.I64:
		return 0x7e
	case wasmir.F32:
		return 0x7d
	case wasmir.F64:
		return 0x7c
	}
	panic("wasmbinary: no binary valtype for " + t.String())
}

func blocktype(t wasmir.Type) byte {
	if t.Concrete() {
		return valtype(t)
	}
	return blockTypeEmpty
}

// loadOpcode picks the opcode for a load of typ at the given byte width and
// (for narrower-than-natural loads) sign extension.
func loadOpcode(typ wasmir.Type, width uint8, signed bool) byte {
	switch typ {
	case wasmir.I32:
		switch width {
		case 4:
			return opI32Load
		case 2:
			if signed {
				return opI32Load16S
			}
			return opI32Load16U
		case 1:
			if signed {
				return opI32Load8S
			}
			return opI32Load8U
		}
	case wasmir.I64:
		switch width {
		case 8:
			return opI64Load
		case 4:
			if signed {
				return opI64Load32S
			}
			return opI64Load32U
		case 2:
			if signed {
				return opI64Load16S
			}
			return opI64Load16U
		case 1:
			if signed {
				return opI64Load8S
			}
			return opI64Load8U
		}
	case wasmir.F32:
		return opF32Load
	case wasmir.F64:
		return opF64Load
	}
	panic("wasmbinary: no load opcode")
}

func storeOpcode(typ wasmir.Type, width uint8) byte {
	switch typ {
	case wasmir.I32:
		switch width {
		case 4:
			return opI32Store
		case 2:
			return opI32Store16
		case 1:
			return opI32Store8
		}
	case wasmir.I64:
		switch width {
		case 8:
			return opI64Store
		case 4:
			return opI64Store32
		case 2:
			return opI64Store16
		case 1:
			return opI64Store8
		}
	case wasmir.F32:
		if width == 4 {
			return opF32Store
		}
	case wasmir.F64:
		if width == 8 {
			return opF64Store
		}
	}
	panic("wasmbinary: no store opcode")
}

// unaryOpcodes and binaryOpcodes map this package's operator enums to their
// fixed core-spec binary opcode bytes.
var unaryOpcodes = map[wasmir.UnaryOp]byte{
	wasmir.OpEqz32:    0x45,
	wasmir.OpClz32:    0x67,
	wasmir.OpCtz32:    0x68,
	wasmir.OpPopcnt32: 0x69,

	wasmir.OpEqz64:  0x50,
	wasmir.OpWrap64: 0xa7,

	wasmir.OpTruncF32S32:    0xa8,
	wasmir.OpTruncF32U32:    0xa9,
	wasmir.OpReinterpretF32: 0xbc,

	wasmir.OpTruncF64S32: 0xaa,
	wasmir.OpTruncF64U32: 0xab,

	wasmir.OpClz64:    0x79,
	wasmir.OpCtz64:    0x7a,
	wasmir.OpPopcnt64: 0x7b,

	wasmir.OpExtendI32S: 0xac,
	wasmir.OpExtendI32U: 0xad,

	wasmir.OpTruncF32S64: 0xae,
	wasmir.OpTruncF32U64: 0xaf,

	wasmir.OpTruncF64S64:    0xb0,
	wasmir.OpTruncF64U64:    0xb1,
	wasmir.OpReinterpretF64: 0xbd,

	wasmir.OpNegF32:     0x8c,
	wasmir.OpAbsF32:     0x8b,
	wasmir.OpCeilF32:    0x8d,
	wasmir.OpFloorF32:   0x8e,
	wasmir.OpTruncF32:   0x8f,
	wasmir.OpNearestF32: 0x90,
	wasmir.OpSqrtF32:    0x91,

	wasmir.OpConvertI32UF32: 0xb3,
	wasmir.OpConvertI32SF32: 0xb2,
	wasmir.OpReinterpretI32: 0xbe,

	wasmir.OpConvertI64UF32: 0xb5,
	wasmir.OpConvertI64SF32: 0xb4,

	wasmir.OpDemoteF64: 0xb6,

	wasmir.OpNegF64:     0x9a,
	wasmir.OpAbsF64:     0x99,
	wasmir.OpCeilF64:    0x9b,
	wasmir.OpFloorF64:   0x9c,
	wasmir.OpTruncF64:   0x9d,
	wasmir.OpNearestF64: 0x9e,
	wasmir.OpSqrtF64:    0x9f,

	wasmir.OpConvertI32UF64: 0xb8,
	wasmir.OpConvertI32SF64: 0xb7,

	wasmir.OpConvertI64UF64: 0xba,
	wasmir.OpConvertI64SF64: 0xb9,
	wasmir.OpReinterpretI64: 0xbf,

	wasmir.OpPromoteF32: 0xbb,
}

var binaryOpcodes = map[wasmir.BinaryOp]byte{
	wasmir.OpAdd32: 0x6a, wasmir.OpSub32: 0x6b, wasmir.OpMul32: 0x6c,
	wasmir.OpDivS32: 0x6d, wasmir.OpDivU32: 0x6e, wasmir.OpRemS32: 0x6f, wasmir.OpRemU32: 0x70,
	wasmir.OpAnd32: 0x71, wasmir.OpOr32: 0x72, wasmir.OpXor32: 0x73,
	wasmir.OpShl32: 0x74, wasmir.OpShrS32: 0x75, wasmir.OpShrU32: 0x76,
	wasmir.OpRotL32: 0x77, wasmir.OpRotR32: 0x78,
	wasmir.OpEq32: 0x46, wasmir.OpNe32: 0x47,
	wasmir.OpLtS32: 0x48, wasmir.OpLtU32: 0x49, wasmir.OpGtS32: 0x4a, wasmir.OpGtU32: 0x4b,
	wasmir.OpLeS32: 0x4c, wasmir.OpLeU32: 0x4d, wasmir.OpGeS32: 0x4e, wasmir.OpGeU32: 0x4f,

	wasmir.OpEq64: 0x51, wasmir.OpNe64: 0x52,
	wasmir.OpLtS64: 0x53, wasmir.OpLtU64: 0x54, wasmir.OpGtS64: 0x55, wasmir.OpGtU64: 0x56,
	wasmir.OpLeS64: 0x57, wasmir.OpLeU64: 0x58, wasmir.OpGeS64: 0x59, wasmir.OpGeU64: 0x5a,

	wasmir.OpEqF32: 0x5b, wasmir.OpNeF32: 0x5c,
	wasmir.OpLtF32: 0x5d, wasmir.OpGtF32: 0x5e, wasmir.OpLeF32: 0x5f, wasmir.OpGeF32: 0x60,

	wasmir.OpEqF64: 0x61, wasmir.OpNeF64: 0x62,
	wasmir.OpLtF64: 0x63, wasmir.OpGtF64: 0x64, wasmir.OpLeF64: 0x65, wasmir.OpGeF64: 0x66,

	wasmir.OpAdd64: 0x7c, wasmir.OpSub64: 0x7d, wasmir.OpMul64: 0x7e,
	wasmir.OpDivS64: 0x7f, wasmir.OpDivU64: 0x80, wasmir.OpRemS64: 0x81, wasmir.OpRemU64: 0x82,
	wasmir.OpAnd64: 0x83, wasmir.OpOr64: 0x84, wasmir.OpXor64: 0x85,
	wasmir.OpShl64: 0x86, wasmir.OpShrS64: 0x87, wasmir.OpShrU64: 0x88,
	wasmir.OpRotL64: 0x89, wasmir.OpRotR64: 0x8a,

	wasmir.OpAddF32: 0x92, wasmir.OpSubF32: 0x93, wasmir.OpMulF32: 0x94, wasmir.OpDivF32: 0x95,
	wasmir.OpMinF32: 0x96, wasmir.OpMaxF32: 0x97, wasmir.OpCopySignF32: 0x98,

	wasmir.OpAddF64: 0xa0, wasmir.OpSubF64: 0xa1, wasmir.OpMulF64: 0xa2, wasmir.OpDivF64: 0xa3,
	wasmir.OpMinF64: 0xa4, wasmir.OpMaxF64: 0xa5, wasmir.OpCopySignF64: 0xa6,
}
