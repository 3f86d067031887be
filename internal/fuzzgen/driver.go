package fuzzgen

import (
	"fmt"

	"github.com/wasmfuzz/translate/internal/entropy"
	"github.com/wasmfuzz/translate/internal/wasmir"
)

// GenerateModule is the module driver: it sets up the
// module's single memory, then keeps synthesizing functions until the
// entropy stream is exhausted. One funcState is built once and reset
// between functions rather than reallocated per function.
func GenerateModule(cfg *Config, stream *entropy.Stream) *wasmir.Module {
	module := wasmir.NewModule()
	module.Memory = wasmir.Memory{
		Exists:  true,
		Initial: cfg.MemoryPages,
		Max:     cfg.MemoryPages,
	}

	state := newFuncState(cfg, stream, module)
	for i := 0; !stream.Exhausted(); i++ {
		fn := buildFunction(state, module, i)
		module.AddFunction(fn)
		module.AddExport(fn)
	}
	return module
}

// buildFunction synthesizes one function: a declared reachable result
// type, a small logify-sized parameter list and local-variable list (each
// entry a uniformly chosen concrete type), and a body.
func buildFunction(state *funcState, module *wasmir.Module, index int) *wasmir.Function {
	stream := state.stream
	fn := &wasmir.Function{
		Name:   fmt.Sprintf("func_%d", index),
		Result: getReachableType(stream),
	}
	fn.Index = uint32(len(module.Functions))
	state.reset(fn)

	numParams := entropy.Logify(int(stream.Get16())) / 2
	for i := 0; i < numParams; i++ {
		t := getConcreteType(stream)
		fn.Params = append(fn.Params, t)
		state.declareLocal(t, uint32(len(fn.Params)-1))
	}

	numVars := entropy.Logify(int(stream.Get16()))
	for i := 0; i < numVars; i++ {
		t := getConcreteType(stream)
		fn.Vars = append(fn.Vars, t)
		state.declareLocal(t, uint32(fn.LocalCount()-1))
	}

	var results []wasmir.Type
	if fn.Result != wasmir.None {
		results = []wasmir.Type{fn.Result}
	}
	module.InternSignature(fn.Params, results)

	fn.Body = buildBody(state, fn)
	return fn
}

// buildBody picks the function body's overall shape: half the time it is
// one top-level block (giving the body an outer break target), a further
// 1-in-20 of the remainder is a bare unreachable body, and otherwise the
// body is synthesized directly against the declared result type.
func buildBody(state *funcState, fn *wasmir.Function) *wasmir.Expr {
	switch {
	case entropy.OneIn(state.stream, 2):
		return state.makeBlock(fn.Result)
	case entropy.OneIn(state.stream, 20):
		return state.make(wasmir.Unreachable)
	default:
		return state.make(fn.Result)
	}
}
