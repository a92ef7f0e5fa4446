package ir

// IR is the top-level container: a map of modules, a global symbol
// table, and a type system shared across modules that don't need their
// own. Per spec §9's design note, centralizing the type system here is
// the intended long-term direction; Module keeps its own TypeSystem too
// since duplication across value-equal-by-name types is benign.
type IR struct {
	modules          map[string]*Module
	GlobalSymbolTable *SymbolTable
	TypeSystem       *TypeSystem
}

// NewIR creates an empty IR container.
func NewIR() *IR {
	return &IR{
		modules:           make(map[string]*Module),
		GlobalSymbolTable: NewSymbolTable(),
		TypeSystem:        NewTypeSystem(),
	}
}

// AddModule registers m under its name, overwriting any prior module of
// that name (last-write-wins per spec §4.1).
func (ir *IR) AddModule(m *Module) {
	m.parent = ir
	ir.modules[m.Name] = m
}

// GetModule looks up a module by name. A miss returns (nil, false).
func (ir *IR) GetModule(name string) (*Module, bool) {
	m, ok := ir.modules[name]
	return m, ok
}

// CreateModule creates, registers, and returns a new module.
func (ir *IR) CreateModule(name string) *Module {
	m := NewModule(name)
	ir.AddModule(m)
	return m
}

// Modules returns a snapshot of the module table.
func (ir *IR) Modules() map[string]*Module {
	out := make(map[string]*Module, len(ir.modules))
	for k, v := range ir.modules {
		out[k] = v
	}
	return out
}
