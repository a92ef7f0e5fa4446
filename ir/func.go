package ir

// Function represents a function in the IR: a name, return type, ordered
// parameters, ordered basic blocks (the first of which is the entry
// block), a local symbol map, and the owning Module.
type Function struct {
	Name       string
	ReturnType Type
	parameters []Value
	blocks     []*BasicBlock
	locals     map[string]Value
	parent     *Module
}

// NewFunction creates a function with no parameters or blocks yet.
func NewFunction(name string, returnType Type) *Function {
	return &Function{
		Name:       name,
		ReturnType: returnType,
		locals:     make(map[string]Value),
	}
}

// Parent returns the owning module, or nil if not yet attached.
func (f *Function) Parent() *Module { return f.parent }

// Parameters returns the function's parameters in declaration order.
func (f *Function) Parameters() []Value {
	out := make([]Value, len(f.parameters))
	copy(out, f.parameters)
	return out
}

// Blocks returns the function's basic blocks in insertion order.
func (f *Function) Blocks() []*BasicBlock {
	out := make([]*BasicBlock, len(f.blocks))
	copy(out, f.blocks)
	return out
}

// Entry returns the function's entry block (the first block added), or
// nil if the function has no blocks.
func (f *Function) Entry() *BasicBlock {
	if len(f.blocks) == 0 {
		return nil
	}
	return f.blocks[0]
}

// AddBlock appends b to the function's block list and sets its parent.
func (f *Function) AddBlock(b *BasicBlock) {
	b.parent = f
	f.blocks = append(f.blocks, b)
}

// AddParameter appends param to the parameter list and, if it carries a
// name, registers it in the function's local symbol map (overwriting any
// prior binding of that name, last-write-wins per spec §4.1).
func (f *Function) AddParameter(param Value) {
	f.parameters = append(f.parameters, param)
	if name := param.Name(); name != "" {
		f.locals[canonicalName(name)] = param
	}
}

// GetBlock returns the first block with the given name, by linear scan,
// or nil if none matches.
func (f *Function) GetBlock(name string) *BasicBlock {
	for _, b := range f.blocks {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// LocalSymbols returns the function's local (parameter) symbol map.
func (f *Function) LocalSymbols() map[string]Value {
	out := make(map[string]Value, len(f.locals))
	for k, v := range f.locals {
		out[k] = v
	}
	return out
}
