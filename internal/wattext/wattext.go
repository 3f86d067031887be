// Package wattext renders a generated module as WebAssembly text format
// (the -S/--emit-text output), meant for reading. It is not a
// round-trippable pretty-printer, and a text-format assembler does not
// accept its output as is: block, loop and if result types are not
// annotated, and a conditional break is printed as `(br $label ... if=cond)`.
package wattext

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wasmfuzz/translate/internal/wasmir"
)

// Serialize renders m as a single WAT module s-expression.
func Serialize(m *wasmir.Module) string {
	var b strings.Builder
	b.WriteString("(module\n")
	if m.Memory.Exists {
		fmt.Fprintf(&b, "  (memory %d %d)\n", m.Memory.Initial, m.Memory.Max)
	}
	for _, fn := range m.Functions {
		writeFunc(&b, fn)
	}
	for _, exp := range m.Exports {
		switch exp.Kind {
		case wasmir.ExportFunction:
			fmt.Fprintf(&b, "  (export %q (func %d))\n", exp.Name, exp.FuncIndex)
		}
	}
	b.WriteString(")\n")
	return b.String()
}

func writeFunc(b *strings.Builder, fn *wasmir.Function) {
	fmt.Fprintf(b, "  (func $%s", fn.Name)
	for _, p := range fn.Params {
		fmt.Fprintf(b, " (param %s)", p)
	}
	if fn.Result != wasmir.None {
		fmt.Fprintf(b, " (result %s)", fn.Result)
	}
	b.WriteString("\n")
	for _, v := range fn.Vars {
		fmt.Fprintf(b, "    (local %s)\n", v)
	}
	b.WriteString("    ")
	writeExpr(b, fn.Body, "    ")
	b.WriteString("\n  )\n")
}

func writeExpr(b *strings.Builder, e *wasmir.Expr, indent string) {
	if e == nil {
		b.WriteString("(nop)")
		return
	}
	switch e.Kind {
	case wasmir.KindBlock:
		fmt.Fprintf(b, "(block $%s\n", e.Name)
		inner := indent + "  "
		for _, c := range e.Body {
			b.WriteString(inner)
			writeExpr(b, c, inner)
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "%s)", indent)

	case wasmir.KindLoop:
		fmt.Fprintf(b, "(loop $%s\n", e.Name)
		inner := indent + "  "
		b.WriteString(inner)
		writeExpr(b, e.Child, inner)
		fmt.Fprintf(b, "\n%s)", indent)

	case wasmir.KindIf:
		b.WriteString("(if ")
		writeExpr(b, e.Cond, indent)
		b.WriteString(" (then ")
		writeExpr(b, e.Then, indent)
		b.WriteString(") (else ")
		writeExpr(b, e.Else, indent)
		b.WriteString("))")

	case wasmir.KindBreak:
		fmt.Fprintf(b, "(br $%s", e.Target)
		if e.Value != nil {
			b.WriteString(" ")
			writeExpr(b, e.Value, indent)
		}
		if e.Condition != nil {
			b.WriteString(" if=")
			writeExpr(b, e.Condition, indent)
		}
		b.WriteString(")")

	case wasmir.KindSwitch:
		b.WriteString("(br_table")
		for _, t := range e.Targets {
			fmt.Fprintf(b, " $%s", t)
		}
		fmt.Fprintf(b, " $%s ", e.Default)
		writeExpr(b, e.Condition, indent)
		b.WriteString(")")

	case wasmir.KindCall, wasmir.KindCallIndirect:
		fmt.Fprintf(b, "(call %d", e.FuncIndex)
		for _, a := range e.Args {
			b.WriteString(" ")
			writeExpr(b, a, indent)
		}
		b.WriteString(")")

	case wasmir.KindGetLocal:
		fmt.Fprintf(b, "(get_local %d)", e.LocalIndex)

	case wasmir.KindSetLocal:
		fmt.Fprintf(b, "(set_local %d ", e.LocalIndex)
		writeExpr(b, e.Value, indent)
		b.WriteString(")")

	case wasmir.KindTeeLocal:
		fmt.Fprintf(b, "(tee_local %d ", e.LocalIndex)
		writeExpr(b, e.Value, indent)
		b.WriteString(")")

	case wasmir.KindLoad:
		suffix := ""
		if int(e.Width)*8 < e.Type.Bits() {
			suffix = widthSuffix(e.Width, e.Signed)
		}
		fmt.Fprintf(b, "(%s.load%s offset=%d align=%d ", e.Type, suffix, e.Offset, e.Align)
		writeExpr(b, e.Ptr, indent)
		b.WriteString(")")

	case wasmir.KindStore:
		suffix := ""
		if int(e.Width)*8 < e.ValueType.Bits() {
			suffix = strconv.Itoa(int(e.Width) * 8)
		}
		fmt.Fprintf(b, "(%s.store%s offset=%d align=%d ", e.ValueType, suffix, e.Offset, e.Align)
		writeExpr(b, e.Ptr, indent)
		b.WriteString(" ")
		writeExpr(b, e.StoreVal, indent)
		b.WriteString(")")

	case wasmir.KindConst:
		b.WriteString(formatConst(e))

	case wasmir.KindUnary:
		fmt.Fprintf(b, "(%s ", e.UnOp)
		writeExpr(b, e.X, indent)
		b.WriteString(")")

	case wasmir.KindBinary:
		fmt.Fprintf(b, "(%s ", e.BinOp)
		writeExpr(b, e.X, indent)
		b.WriteString(" ")
		writeExpr(b, e.Y, indent)
		b.WriteString(")")

	case wasmir.KindSelect:
		b.WriteString("(select ")
		writeExpr(b, e.SelTrue, indent)
		b.WriteString(" ")
		writeExpr(b, e.SelFalse, indent)
		b.WriteString(" ")
		writeExpr(b, e.SelCond, indent)
		b.WriteString(")")

	case wasmir.KindDrop:
		b.WriteString("(drop ")
		writeExpr(b, e.Inner, indent)
		b.WriteString(")")

	case wasmir.KindReturn:
		b.WriteString("(return")
		if e.Inner != nil {
			b.WriteString(" ")
			writeExpr(b, e.Inner, indent)
		}
		b.WriteString(")")

	case wasmir.KindNop:
		b.WriteString("(nop)")

	case wasmir.KindUnreachable:
		b.WriteString("(unreachable)")

	case wasmir.KindSequence:
		writeExpr(b, e.First, indent)
		b.WriteString(" ")
		writeExpr(b, e.Second, indent)

	default:
		b.WriteString("(unknown)")
	}
}

func widthSuffix(width uint8, signed bool) string {
	if width == 0 {
		return ""
	}
	bits := width * 8
	if signed {
		return strconv.Itoa(int(bits)) + "_s"
	}
	return strconv.Itoa(int(bits)) + "_u"
}

func formatConst(e *wasmir.Expr) string {
	switch e.Type {
	case wasmir.I32:
		return fmt.Sprintf("(i32.const %d)", e.ConstValue.I32)
	case wasmir.I64:
		return fmt.Sprintf("(i64.const %d)", e.ConstValue.I64)
	case wasmir.F32:
		return fmt.Sprintf("(f32.const %g)", e.ConstValue.F32)
	case wasmir.F64:
		return fmt.Sprintf("(f64.const %g)", e.ConstValue.F64)
	default:
		return "(unreachable)"
	}
}
