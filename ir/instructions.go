package ir

// This file implements the concrete instruction catalogue: arithmetic,
// bitwise, memory, control-flow, comparison, conversion, and select/
// freeze variants. Each variant embeds InstructionBase and exposes named
// accessors that read from the shared operand slice by position, so they
// can never drift out of lock-step with the generic operand list
// (spec §4.2).

// ExpressionTagger is implemented by instruction variants that can
// contribute an Available-Expressions operator tag (spec §4.5.3). Only
// addition, multiplication, and assignment are tagged; every other kind
// is invisible to that analysis by design (spec §9, Open Question 2).
type ExpressionTagger interface {
	ExpressionTag() (string, bool)
}

// BinaryInstruction is a two-operand arithmetic or bitwise operation.
// Operand layout: [left, right].
type BinaryInstruction struct {
	InstructionBase
	Kind BinaryKind
}

// NewBinaryInstruction creates a binary instruction of the given kind.
func NewBinaryInstruction(kind BinaryKind, t Type, name string, left, right Value) *BinaryInstruction {
	bi := &BinaryInstruction{Kind: kind}
	InitInstruction(&bi.InstructionBase, bi, t, name)
	bi.AddOperand(left)
	bi.AddOperand(right)
	return bi
}

func (b *BinaryInstruction) Left() Value  { return b.operandAt(0) }
func (b *BinaryInstruction) Right() Value { return b.operandAt(1) }

// ExpressionTag maps Add/Mul to the "add"/"multiply" tags used by
// Available Expressions; every other kind is untagged.
func (b *BinaryInstruction) ExpressionTag() (string, bool) {
	switch b.Kind {
	case Add:
		return "add", true
	case Mul:
		return "multiply", true
	default:
		return "", false
	}
}

// CompareInstruction is an integer or floating-point comparison.
// Operand layout: [left, right].
type CompareInstruction struct {
	InstructionBase
	Kind       CompareKind
	Comparison ComparisonKind
}

// NewCompareInstruction creates a comparison instruction.
func NewCompareInstruction(kind CompareKind, comparison ComparisonKind, t Type, name string, left, right Value) *CompareInstruction {
	ci := &CompareInstruction{Kind: kind, Comparison: comparison}
	InitInstruction(&ci.InstructionBase, ci, t, name)
	ci.AddOperand(left)
	ci.AddOperand(right)
	return ci
}

func (c *CompareInstruction) Left() Value  { return c.operandAt(0) }
func (c *CompareInstruction) Right() Value { return c.operandAt(1) }

// AllocaInstruction allocates memory on the stack. Operand layout:
// [arraySize] if present, else no operands.
type AllocaInstruction struct {
	InstructionBase
	AllocatedType Type
}

// NewAllocaInstruction creates an alloca instruction, optionally for an
// array of arraySize elements.
func NewAllocaInstruction(allocatedType Type, t Type, name string, arraySize Value) *AllocaInstruction {
	ai := &AllocaInstruction{AllocatedType: allocatedType}
	InitInstruction(&ai.InstructionBase, ai, t, name)
	if arraySize != nil {
		ai.AddOperand(arraySize)
	}
	return ai
}

// ArraySize returns the array-size operand and whether it is present.
func (a *AllocaInstruction) ArraySize() (Value, bool) {
	if len(a.operands) == 0 {
		return nil, false
	}
	return a.operands[0], true
}

// LoadInstruction loads a value from memory. Operand layout: [pointer].
type LoadInstruction struct {
	InstructionBase
}

// NewLoadInstruction creates a load instruction.
func NewLoadInstruction(t Type, name string, pointer Value) *LoadInstruction {
	li := &LoadInstruction{}
	InitInstruction(&li.InstructionBase, li, t, name)
	li.AddOperand(pointer)
	return li
}

func (l *LoadInstruction) Pointer() Value { return l.operandAt(0) }

// StoreInstruction stores a value to memory. Operand layout:
// [value, pointer].
type StoreInstruction struct {
	InstructionBase
}

// NewStoreInstruction creates a store instruction. Stores have void type
// and carry no result name.
func NewStoreInstruction(voidType Type, value, pointer Value) *StoreInstruction {
	si := &StoreInstruction{}
	InitInstruction(&si.InstructionBase, si, voidType, "")
	si.AddOperand(value)
	si.AddOperand(pointer)
	return si
}

func (s *StoreInstruction) StoredValue() Value { return s.operandAt(0) }
func (s *StoreInstruction) Pointer() Value     { return s.operandAt(1) }

// GetElementPtrInstruction computes the address of a subelement of an
// aggregate. Operand layout: [pointer, index...].
type GetElementPtrInstruction struct {
	InstructionBase
}

// NewGetElementPtrInstruction creates a getelementptr instruction.
func NewGetElementPtrInstruction(t Type, name string, pointer Value, indices []Value) *GetElementPtrInstruction {
	gi := &GetElementPtrInstruction{}
	InitInstruction(&gi.InstructionBase, gi, t, name)
	gi.AddOperand(pointer)
	for _, idx := range indices {
		gi.AddOperand(idx)
	}
	return gi
}

func (g *GetElementPtrInstruction) Pointer() Value  { return g.operandAt(0) }
func (g *GetElementPtrInstruction) Indices() []Value {
	if len(g.operands) <= 1 {
		return nil
	}
	out := make([]Value, len(g.operands)-1)
	copy(out, g.operands[1:])
	return out
}

// BranchInstruction is a conditional or unconditional jump. TrueBlock and
// FalseBlock are control targets, not Values, so they are never part of
// the generic operand list; Operand layout: [condition] if conditional,
// else no operands.
type BranchInstruction struct {
	InstructionBase
	TrueBlock  *BasicBlock
	FalseBlock *BasicBlock
}

// NewBranchInstruction creates a branch. Pass a nil condition and
// falseBlock for an unconditional jump to trueBlock.
func NewBranchInstruction(voidType Type, trueBlock, falseBlock *BasicBlock, condition Value) *BranchInstruction {
	bi := &BranchInstruction{TrueBlock: trueBlock, FalseBlock: falseBlock}
	InitInstruction(&bi.InstructionBase, bi, voidType, "")
	if condition != nil {
		bi.AddOperand(condition)
	}
	return bi
}

// Condition returns the branch condition and whether it is present; an
// unconditional branch has none.
func (b *BranchInstruction) Condition() (Value, bool) {
	if len(b.operands) == 0 {
		return nil, false
	}
	return b.operands[0], true
}

// SwitchCase is one value/target pair of a SwitchInstruction.
type SwitchCase struct {
	Value Value
	Block *BasicBlock
}

// SwitchInstruction dispatches to one of several blocks based on the
// value of Condition. Operand layout: [condition, case1.Value, ...].
type SwitchInstruction struct {
	InstructionBase
	DefaultBlock *BasicBlock
	Cases        []SwitchCase
}

// NewSwitchInstruction creates a switch instruction.
func NewSwitchInstruction(voidType Type, condition Value, defaultBlock *BasicBlock, cases []SwitchCase) *SwitchInstruction {
	si := &SwitchInstruction{DefaultBlock: defaultBlock, Cases: cases}
	InitInstruction(&si.InstructionBase, si, voidType, "")
	si.AddOperand(condition)
	for _, c := range cases {
		si.AddOperand(c.Value)
	}
	return si
}

func (s *SwitchInstruction) Condition() Value { return s.operandAt(0) }

// ReturnInstruction returns from the enclosing function. Operand layout:
// [value] if present, else no operands.
type ReturnInstruction struct {
	InstructionBase
}

// NewReturnInstruction creates a return instruction, optionally carrying
// a value.
func NewReturnInstruction(voidType Type, value Value) *ReturnInstruction {
	ri := &ReturnInstruction{}
	InitInstruction(&ri.InstructionBase, ri, voidType, "")
	if value != nil {
		ri.AddOperand(value)
	}
	return ri
}

// ReturnValue returns the returned value and whether one is present.
func (r *ReturnInstruction) ReturnValue() (Value, bool) {
	if len(r.operands) == 0 {
		return nil, false
	}
	return r.operands[0], true
}

// CallInstruction calls a function value with arguments. Operand layout:
// [function, arg...].
type CallInstruction struct {
	InstructionBase
}

// NewCallInstruction creates a call instruction.
func NewCallInstruction(t Type, name string, function Value, arguments []Value) *CallInstruction {
	ci := &CallInstruction{}
	InitInstruction(&ci.InstructionBase, ci, t, name)
	ci.AddOperand(function)
	for _, a := range arguments {
		ci.AddOperand(a)
	}
	return ci
}

func (c *CallInstruction) Function() Value { return c.operandAt(0) }
func (c *CallInstruction) Arguments() []Value {
	if len(c.operands) <= 1 {
		return nil
	}
	out := make([]Value, len(c.operands)-1)
	copy(out, c.operands[1:])
	return out
}

// PhiIncoming is one (predecessor block, incoming value) pair of a
// PhiInstruction.
type PhiIncoming struct {
	Block *BasicBlock
	Value Value
}

// PhiInstruction selects an incoming value based on which predecessor
// block control arrived from. Operand layout: the incoming values, in
// the order incoming was iterated at construction (spec §9, Open
// Question 3: Go map iteration order is unspecified, so this order is
// not guaranteed stable across builds of an equivalent phi).
type PhiInstruction struct {
	InstructionBase
	incoming []PhiIncoming
}

// NewPhiInstruction creates a phi instruction from a map of predecessor
// block to incoming value.
func NewPhiInstruction(t Type, name string, incomingValues map[*BasicBlock]Value) *PhiInstruction {
	pi := &PhiInstruction{}
	InitInstruction(&pi.InstructionBase, pi, t, name)
	for block, value := range incomingValues {
		pi.incoming = append(pi.incoming, PhiIncoming{Block: block, Value: value})
	}
	for _, in := range pi.incoming {
		pi.AddOperand(in.Value)
	}
	return pi
}

// Incoming returns the phi's (block, value) pairs in the order recorded
// at construction.
func (p *PhiInstruction) Incoming() []PhiIncoming {
	out := make([]PhiIncoming, len(p.incoming))
	copy(out, p.incoming)
	return out
}

// IncomingValues reconstructs the incoming-values map.
func (p *PhiInstruction) IncomingValues() map[*BasicBlock]Value {
	out := make(map[*BasicBlock]Value, len(p.incoming))
	for _, in := range p.incoming {
		out[in.Block] = in.Value
	}
	return out
}

// SelectInstruction chooses between two values based on a condition.
// Operand layout: [condition, trueValue, falseValue].
type SelectInstruction struct {
	InstructionBase
}

// NewSelectInstruction creates a select instruction.
func NewSelectInstruction(t Type, name string, condition, trueValue, falseValue Value) *SelectInstruction {
	si := &SelectInstruction{}
	InitInstruction(&si.InstructionBase, si, t, name)
	si.AddOperand(condition)
	si.AddOperand(trueValue)
	si.AddOperand(falseValue)
	return si
}

func (s *SelectInstruction) Condition() Value  { return s.operandAt(0) }
func (s *SelectInstruction) TrueValue() Value  { return s.operandAt(1) }
func (s *SelectInstruction) FalseValue() Value { return s.operandAt(2) }

// ConversionInstruction changes a value's representation (trunc, zext,
// sext, fptrunc, fpext, bitcast). Operand layout: [value].
type ConversionInstruction struct {
	InstructionBase
	Kind       ConversionKind
	TargetType Type
}

// NewConversionInstruction creates a conversion instruction.
func NewConversionInstruction(kind ConversionKind, targetType Type, name string, value Value) *ConversionInstruction {
	ci := &ConversionInstruction{Kind: kind, TargetType: targetType}
	InitInstruction(&ci.InstructionBase, ci, targetType, name)
	ci.AddOperand(value)
	return ci
}

func (c *ConversionInstruction) SourceValue() Value { return c.operandAt(0) }

// FreezeInstruction freezes a possibly-undef value into an arbitrary but
// fixed one, so optimizations downstream of it may treat it as ordinary.
// Operand layout: [value].
type FreezeInstruction struct {
	InstructionBase
}

// NewFreezeInstruction creates a freeze instruction.
func NewFreezeInstruction(t Type, name string, value Value) *FreezeInstruction {
	fi := &FreezeInstruction{}
	InitInstruction(&fi.InstructionBase, fi, t, name)
	fi.AddOperand(value)
	return fi
}

func (f *FreezeInstruction) FrozenValue() Value { return f.operandAt(0) }
