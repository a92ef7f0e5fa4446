package ir

// This file implements the minimal, field-free instruction variants
// AddInstruction, SubInstruction, MulInstruction, DivInstruction, and
// AssignInstruction, grounded directly on
// original_source/lapair/core/ir.py: unlike the richer catalogue in
// instructions.go, these carry no typed accessors of their own — callers
// (typically a dataflow-analysis test fixture standing in for a
// frontend) pass the operand list to the constructor, which adds each
// operand with AddOperand.

// AddInstruction represents an addition with an arbitrary operand count.
type AddInstruction struct{ InstructionBase }

// NewAddInstruction creates an add instruction with the given operands.
func NewAddInstruction(t Type, name string, operands ...Value) *AddInstruction {
	i := &AddInstruction{}
	InitInstruction(&i.InstructionBase, i, t, name)
	for _, o := range operands {
		i.AddOperand(o)
	}
	return i
}

// ExpressionTag reports the "add" operator tag for Available Expressions.
func (*AddInstruction) ExpressionTag() (string, bool) { return "add", true }

// SubInstruction represents a subtraction with an arbitrary operand
// count. It deliberately has no ExpressionTag: Available Expressions'
// operator allow-list excludes subtraction (spec §9, Open Question 2).
type SubInstruction struct{ InstructionBase }

// NewSubInstruction creates a sub instruction with the given operands.
func NewSubInstruction(t Type, name string, operands ...Value) *SubInstruction {
	i := &SubInstruction{}
	InitInstruction(&i.InstructionBase, i, t, name)
	for _, o := range operands {
		i.AddOperand(o)
	}
	return i
}

// MulInstruction represents a multiplication with an arbitrary operand
// count.
type MulInstruction struct{ InstructionBase }

// NewMulInstruction creates a mul instruction with the given operands.
func NewMulInstruction(t Type, name string, operands ...Value) *MulInstruction {
	i := &MulInstruction{}
	InitInstruction(&i.InstructionBase, i, t, name)
	for _, o := range operands {
		i.AddOperand(o)
	}
	return i
}

// ExpressionTag reports the "multiply" operator tag for Available
// Expressions.
func (*MulInstruction) ExpressionTag() (string, bool) { return "multiply", true }

// DivInstruction represents a division with an arbitrary operand count.
// Like SubInstruction, it has no ExpressionTag.
type DivInstruction struct{ InstructionBase }

// NewDivInstruction creates a div instruction with the given operands.
func NewDivInstruction(t Type, name string, operands ...Value) *DivInstruction {
	i := &DivInstruction{}
	InitInstruction(&i.InstructionBase, i, t, name)
	for _, o := range operands {
		i.AddOperand(o)
	}
	return i
}

// AssignInstruction represents a simple assignment.
type AssignInstruction struct{ InstructionBase }

// NewAssignInstruction creates an assign instruction with the given
// operands (typically a single source value).
func NewAssignInstruction(t Type, name string, operands ...Value) *AssignInstruction {
	i := &AssignInstruction{}
	InitInstruction(&i.InstructionBase, i, t, name)
	for _, o := range operands {
		i.AddOperand(o)
	}
	return i
}

// ExpressionTag reports the "assign" operator tag for Available
// Expressions. It is reachable only when an AssignInstruction carries
// more than one operand, since dataflow.FromInstruction requires at
// least two (spec §4.5.3).
func (*AssignInstruction) ExpressionTag() (string, bool) { return "assign", true }
