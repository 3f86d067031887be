// Package wasmbinary encodes a generated module as a WebAssembly binary
// module (the default --output shape, used whenever -S/--emit-text is not
// given). It only ever writes; nothing in this program decodes wasm, so
// there is no matching reader here.
package wasmbinary

import (
	"encoding/binary"
	"math"

	"github.com/wasmfuzz/translate/internal/wasmir"
)

const (
	secType     = 1
	secFunction = 3
	secMemory   = 5
	secExport   = 7
	secCode     = 10

	exportKindFunc = 0x00
)

// Encode renders m as a complete .wasm binary module.
func Encode(m *wasmir.Module) []byte {
	out := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00} // magic + version 1

	sigIndex, typeSec := encodeTypeSection(m)
	out = appendSection(out, secType, typeSec)
	out = appendSection(out, secFunction, encodeFunctionSection(m, sigIndex))
	if m.Memory.Exists {
		out = appendSection(out, secMemory, encodeMemorySection(m))
	}
	out = appendSection(out, secExport, encodeExportSection(m))
	out = appendSection(out, secCode, encodeCodeSection(m))
	return out
}

func appendSection(out []byte, id byte, body []byte) []byte {
	out = append(out, id)
	out = writeULEB128(out, uint64(len(body)))
	return append(out, body...)
}

// encodeTypeSection collects every distinct (params, result) signature
// across the module's functions, in first-seen order, and returns each
// function's index into that table alongside the encoded section body.
// Dedup is delegated to the module's own swiss-backed signature cache
// (wasmir.Module.InternSignature) rather than a second ad hoc map here, so
// every function's shape is interned exactly once regardless of how many
// places in the pipeline need to know about it.
func encodeTypeSection(m *wasmir.Module) (map[*wasmir.Function]int, []byte) {
	sigIndex := make(map[*wasmir.Function]int, len(m.Functions))
	seen := map[*wasmir.FunctionType]int{}
	var shapes []*wasmir.FunctionType

	for _, fn := range m.Functions {
		var results []wasmir.Type
		if fn.Result != wasmir.None {
			results = []wasmir.Type{fn.Result}
		}
		ft := m.InternSignature(fn.Params, results)
		idx, ok := seen[ft]
		if !ok {
			idx = len(shapes)
			seen[ft] = idx
			shapes = append(shapes, ft)
		}
		sigIndex[fn] = idx
	}

	body := writeVecLen(nil, len(shapes))
	for _, ft := range shapes {
		body = append(body, 0x60)
		body = writeVecLen(body, len(ft.Params))
		for _, t := range ft.Params {
			body = append(body, valtype(t))
		}
		body = writeVecLen(body, len(ft.Results))
		for _, t := range ft.Results {
			body = append(body, valtype(t))
		}
	}
	return sigIndex, body
}

func encodeFunctionSection(m *wasmir.Module, sigIndex map[*wasmir.Function]int) []byte {
	body := writeVecLen(nil, len(m.Functions))
	for _, fn := range m.Functions {
		body = writeULEB128(body, uint64(sigIndex[fn]))
	}
	return body
}

func encodeMemorySection(m *wasmir.Module) []byte {
	body := writeVecLen(nil, 1)
	body = append(body, 0x01) // flags: max present
	body = writeULEB128(body, uint64(m.Memory.Initial))
	body = writeULEB128(body, uint64(m.Memory.Max))
	return body
}

func encodeExportSection(m *wasmir.Module) []byte {
	body := writeVecLen(nil, len(m.Exports))
	for _, exp := range m.Exports {
		body = writeVecLen(body, len(exp.Name))
		body = append(body, exp.Name...)
		switch exp.Kind {
		case wasmir.ExportFunction:
			body = append(body, exportKindFunc)
		}
		body = writeULEB128(body, uint64(exp.FuncIndex))
	}
	return body
}

func encodeCodeSection(m *wasmir.Module) []byte {
	body := writeVecLen(nil, len(m.Functions))
	for _, fn := range m.Functions {
		fnBody := encodeFunctionBody(fn)
		body = writeULEB128(body, uint64(len(fnBody)))
		body = append(body, fnBody...)
	}
	return body
}

// encodeFunctionBody encodes a function's local declarations (run-length
// compressed by consecutive type) followed by its instruction stream and a
// final end opcode.
func encodeFunctionBody(fn *wasmir.Function) []byte {
	var runs [][2]any // {count int, typ wasmir.Type}
	for _, t := range fn.Vars {
		if n := len(runs); n > 0 && runs[n-1][1].(wasmir.Type) == t {
			runs[n-1][0] = runs[n-1][0].(int) + 1
			continue
		}
		runs = append(runs, [2]any{1, t})
	}

	body := writeVecLen(nil, len(runs))
	for _, r := range runs {
		body = writeULEB128(body, uint64(r[0].(int)))
		body = append(body, valtype(r[1].(wasmir.Type)))
	}

	enc := &encoder{}
	body = enc.appendExpr(body, fn.Body)
	body = append(body, opEnd)
	return body
}

// encoder tracks the stack of open label names (blocks and loops, plus one
// anonymous entry per if, covering both arms) so break/switch targets, named in this IR,
// can be rewritten to the relative-depth label indices the binary format
// requires.
type encoder struct {
	scope []string
}

func (e *encoder) push(name string) { e.scope = append(e.scope, name) }
func (e *encoder) pop()             { e.scope = e.scope[:len(e.scope)-1] }

func (e *encoder) depth(name string) uint32 {
	for i := len(e.scope) - 1; i >= 0; i-- {
		if e.scope[i] == name {
			return uint32(len(e.scope) - 1 - i)
		}
	}
	return 0
}

func (e *encoder) appendExpr(buf []byte, x *wasmir.Expr) []byte {
	if x == nil {
		return buf
	}
	switch x.Kind {
	case wasmir.KindBlock:
		buf = append(buf, opBlock, blocktype(x.Type))
		e.push(x.Name)
		for _, stmt := range x.Body {
			buf = e.appendExpr(buf, stmt)
		}
		e.pop()
		return append(buf, opEnd)

	case wasmir.KindLoop:
		buf = append(buf, opLoop, blocktype(x.Type))
		e.push(x.Name)
		buf = e.appendExpr(buf, x.Child)
		e.pop()
		return append(buf, opEnd)

	case wasmir.KindIf:
		buf = e.appendExpr(buf, x.Cond)
		buf = append(buf, opIf, blocktype(x.Type))
		e.push("")
		buf = e.appendExpr(buf, x.Then)
		buf = append(buf, opElse)
		buf = e.appendExpr(buf, x.Else)
		e.pop()
		return append(buf, opEnd)

	case wasmir.KindBreak:
		if x.Value != nil {
			buf = e.appendExpr(buf, x.Value)
		}
		if x.Condition != nil {
			buf = e.appendExpr(buf, x.Condition)
			buf = append(buf, opBrIf)
		} else {
			buf = append(buf, opBr)
		}
		return writeULEB128(buf, uint64(e.depth(x.Target)))

	case wasmir.KindSwitch:
		if x.Value != nil {
			buf = e.appendExpr(buf, x.Value)
		}
		buf = e.appendExpr(buf, x.Condition)
		buf = append(buf, opBrTable)
		buf = writeVecLen(buf, len(x.Targets))
		for _, t := range x.Targets {
			buf = writeULEB128(buf, uint64(e.depth(t)))
		}
		return writeULEB128(buf, uint64(e.depth(x.Default)))

	case wasmir.KindCall, wasmir.KindCallIndirect:
		for _, a := range x.Args {
			buf = e.appendExpr(buf, a)
		}
		buf = append(buf, opCall)
		return writeULEB128(buf, uint64(x.FuncIndex))

	case wasmir.KindGetLocal:
		buf = append(buf, opGetLocal)
		return writeULEB128(buf, uint64(x.LocalIndex))

	case wasmir.KindSetLocal:
		buf = e.appendExpr(buf, x.Value)
		buf = append(buf, opSetLocal)
		return writeULEB128(buf, uint64(x.LocalIndex))

	case wasmir.KindTeeLocal:
		buf = e.appendExpr(buf, x.Value)
		buf = append(buf, opTeeLocal)
		return writeULEB128(buf, uint64(x.LocalIndex))

	case wasmir.KindLoad:
		buf = e.appendExpr(buf, x.Ptr)
		buf = append(buf, loadOpcode(x.Type, x.Width, x.Signed))
		buf = writeULEB128(buf, uint64(alignExponent(x.Align)))
		return writeULEB128(buf, uint64(x.Offset))

	case wasmir.KindStore:
		buf = e.appendExpr(buf, x.Ptr)
		buf = e.appendExpr(buf, x.StoreVal)
		buf = append(buf, storeOpcode(x.ValueType, x.Width))
		buf = writeULEB128(buf, uint64(alignExponent(x.Align)))
		return writeULEB128(buf, uint64(x.Offset))

	case wasmir.KindConst:
		return e.appendConst(buf, x)

	case wasmir.KindUnary:
		buf = e.appendExpr(buf, x.X)
		return append(buf, unaryOpcodes[x.UnOp])

	case wasmir.KindBinary:
		buf = e.appendExpr(buf, x.X)
		buf = e.appendExpr(buf, x.Y)
		return append(buf, binaryOpcodes[x.BinOp])

	case wasmir.KindSelect:
		buf = e.appendExpr(buf, x.SelTrue)
		buf = e.appendExpr(buf, x.SelFalse)
		buf = e.appendExpr(buf, x.SelCond)
		return append(buf, opSelect)

	case wasmir.KindDrop:
		buf = e.appendExpr(buf, x.Inner)
		return append(buf, opDrop)

	case wasmir.KindReturn:
		if x.Inner != nil {
			buf = e.appendExpr(buf, x.Inner)
		}
		return append(buf, opReturn)

	case wasmir.KindNop:
		return append(buf, opNop)

	case wasmir.KindUnreachable:
		return append(buf, opUnreachable)

	case wasmir.KindSequence:
		buf = e.appendExpr(buf, x.First)
		return e.appendExpr(buf, x.Second)

	default:
		return buf
	}
}

func (e *encoder) appendConst(buf []byte, x *wasmir.Expr) []byte {
	switch x.Type {
	case wasmir.I32:
		buf = append(buf, opI32Const)
		return writeSLEB128(buf, int64(x.ConstValue.I32))
	case wasmir.I64:
		buf = append(buf, opI64Const)
		return writeSLEB128(buf, x.ConstValue.I64)
	case wasmir.F32:
		buf = append(buf, opF32Const)
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(x.ConstValue.F32))
		return append(buf, b[:]...)
	case wasmir.F64:
		buf = append(buf, opF64Const)
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(x.ConstValue.F64))
		return append(buf, b[:]...)
	default:
		return append(buf, opUnreachable)
	}
}

// alignExponent converts an alignment expressed in bytes (a power of two)
// to the binary format's log2 exponent encoding.
func alignExponent(alignBytes uint8) int {
	exp := 0
	for uint8(1)<<uint(exp+1) <= alignBytes {
		exp++
	}
	return exp
}
