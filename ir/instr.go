package ir

// Instruction is a Value plus an ordered list of operands and an owning
// basic block. Concrete variants (BinaryInstruction, LoadInstruction, ...)
// all embed InstructionBase and add named accessors over the same
// underlying operand slice, so the accessors can never drift out of
// lock-step with the generic operand list (spec §4.2): they read from it
// directly rather than duplicating state.
type Instruction interface {
	Value
	// Operands returns the instruction's operands in order.
	Operands() []Value
	// AddOperand appends v to the operand list and registers this
	// instruction in v's users set (invariant I1).
	AddOperand(v Value)
	// RemoveOperand removes the first occurrence of v from the operand
	// list (identity match) and deregisters this instruction from v's
	// users set.
	RemoveOperand(v Value)
	// ReplaceOperand swaps the first occurrence of old for new (identity
	// match) and updates both operands' users sets.
	ReplaceOperand(old, new Value)
	// Parent returns the owning basic block, or nil if not yet attached.
	Parent() *BasicBlock
	setParent(b *BasicBlock)
}

// InstructionBase implements the operand list and parent-block back
// reference shared by every concrete instruction variant.
type InstructionBase struct {
	ValueBase
	self     Instruction
	operands []Value
	parent   *BasicBlock
}

// InitInstruction sets the fields common to every Instruction, including
// the back-reference to the concrete instruction that embeds this base
// (needed so AddOperand can register the *concrete* instruction, not the
// embedded base, as a user).
func InitInstruction(b *InstructionBase, self Instruction, t Type, name string) {
	InitValue(&b.ValueBase, t, name)
	b.self = self
}

func (b *InstructionBase) Operands() []Value {
	out := make([]Value, len(b.operands))
	copy(out, b.operands)
	return out
}

func (b *InstructionBase) AddOperand(v Value) {
	b.operands = append(b.operands, v)
	if v != nil {
		v.addUser(b.self)
	}
}

func (b *InstructionBase) RemoveOperand(v Value) {
	for i, o := range b.operands {
		if o == v {
			b.operands = append(b.operands[:i], b.operands[i+1:]...)
			if v != nil {
				v.removeUser(b.self)
			}
			return
		}
	}
}

func (b *InstructionBase) ReplaceOperand(old, new Value) {
	for i, o := range b.operands {
		if o == old {
			b.operands[i] = new
			if old != nil {
				old.removeUser(b.self)
			}
			if new != nil {
				new.addUser(b.self)
			}
			return
		}
	}
}

func (b *InstructionBase) Parent() *BasicBlock { return b.parent }
func (b *InstructionBase) setParent(p *BasicBlock) { b.parent = p }

// operandAt safely returns the operand at index i, or nil if out of range
// (used by typed accessors on optional trailing operands).
func (b *InstructionBase) operandAt(i int) Value {
	if i < 0 || i >= len(b.operands) {
		return nil
	}
	return b.operands[i]
}
