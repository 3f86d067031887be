package wasmir

import (
	"strings"

	"github.com/dolthub/swiss"
)

// FunctionType is the (params, results) shape of a function, interned by
// signatureCache the way a real wasm module's type section interns
// identical function types to a single entry rather than repeating them per
// function.
type FunctionType struct {
	Params  []Type
	Results []Type
}

// signatureCache deduplicates FunctionType values by their textual shape.
// Backed by dolthub/swiss rather than a plain Go map. It is consulted once
// per generated function by the generator's driver and once per function
// again by the binary encoder's type section; call synthesis does not use
// it.
type signatureCache struct {
	byShape *swiss.Map[string, *FunctionType]
}

func newSignatureCache() *signatureCache {
	return &signatureCache{byShape: swiss.NewMap[string, *FunctionType](8)}
}

func (c *signatureCache) intern(params, results []Type) *FunctionType {
	key := shapeKey(params, results)
	if ft, ok := c.byShape.Get(key); ok {
		return ft
	}
	ft := &FunctionType{Params: append([]Type(nil), params...), Results: append([]Type(nil), results...)}
	c.byShape.Put(key, ft)
	return ft
}

func shapeKey(params, results []Type) string {
	var b strings.Builder
	for _, p := range params {
		b.WriteByte(byte(p))
	}
	b.WriteByte('|')
	for _, r := range results {
		b.WriteByte(byte(r))
	}
	return b.String()
}

// count is a small convenience used by tests to sanity-check interning
// without reaching into the swiss.Map directly.
func (c *signatureCache) count() int {
	n := 0
	c.byShape.Iter(func(_ string, _ *FunctionType) bool {
		n++
		return false
	})
	return n
}
