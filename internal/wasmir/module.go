package wasmir

// Memory describes the module's single linear memory. This generator only
// ever emits a fixed "initial = max, no growth" shape: a real consumer of
// a generated module gets a bounded address space to reason about traps.
type Memory struct {
	Exists  bool
	Initial uint32 // in 64KiB pages
	Max     uint32 // in 64KiB pages
}

// ExportKind enumerates the kinds of things a Module can export. Only
// function exports are ever synthesized, but the type exists so
// wattext/wasmbinary don't need a separate sum type of their own.
type ExportKind uint8

const (
	ExportFunction ExportKind = iota
)

// Export binds an externally visible Name to an internal definition,
// identified by FuncIndex when Kind is ExportFunction.
type Export struct {
	Name      string
	Kind      ExportKind
	FuncIndex uint32
}

// Module is the top-level container: the owning arena (Builder), the
// memory configuration, the ordered function list, and their exports. The
// generator driver (fuzzgen.GenerateModule) is the only writer; once handed off to
// a validator or serializer, a Module is read-only.
type Module struct {
	Builder   Builder
	Memory    Memory
	Functions []*Function
	Exports   []Export

	sigs *signatureCache
}

// NewModule allocates an empty module with its own arena.
func NewModule() *Module {
	return &Module{
		Builder: NewBuilder(),
		sigs:    newSignatureCache(),
	}
}

// AddFunction appends fn to the module, assigning it the next function
// index.
func (m *Module) AddFunction(fn *Function) {
	fn.Index = uint32(len(m.Functions))
	m.Functions = append(m.Functions, fn)
}

// AddExport exports fn (by index) under its own name, kind=function: the
// only export shape this generator ever produces (every generated function
// is exported, per the module driver's contract).
func (m *Module) AddExport(fn *Function) {
	m.Exports = append(m.Exports, Export{Name: fn.Name, Kind: ExportFunction, FuncIndex: fn.Index})
}

// InternSignature deduplicates a (params, results) shape against every
// signature seen so far in this module, the way a real module's type
// section collapses identical function types to one entry. Returns the
// canonical *FunctionType for this shape.
func (m *Module) InternSignature(params []Type, results []Type) *FunctionType {
	return m.sigs.intern(params, results)
}
