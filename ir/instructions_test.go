package ir_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lapair-go/lapair/ir"
)

func TestTypedAccessorsMatchOperandOrder(t *testing.T) {
	ts := ir.NewTypeSystem()
	i32, _ := ts.GetType("i32")
	ptrI32 := ts.CreatePointerType(i32)

	left := ir.NewConstant(i32, 1)
	right := ir.NewConstant(i32, 2)
	bin := ir.NewBinaryInstruction(ir.Mul, i32, "p", left, right)
	require.Equal(t, []ir.Value{left, right}, bin.Operands())
	require.Same(t, left, bin.Left().(*ir.Constant))
	require.Same(t, right, bin.Right().(*ir.Constant))

	tag, ok := bin.ExpressionTag()
	require.True(t, ok)
	require.Equal(t, "multiply", tag)

	ptr := ir.NewAllocaInstruction(i32, ptrI32, "slot", nil)
	_, ok = ptr.ArraySize()
	require.False(t, ok)
	require.Empty(t, ptr.Operands())

	count := ir.NewConstant(i32, 8)
	arr := ir.NewAllocaInstruction(i32, ptrI32, "arr", count)
	size, ok := arr.ArraySize()
	require.True(t, ok)
	require.Same(t, count, size.(*ir.Constant))

	load := ir.NewLoadInstruction(i32, "v", ptr)
	require.Same(t, ir.Instruction(ptr), load.Pointer().(ir.Instruction))

	voidType := ir.NewVoidType()
	store := ir.NewStoreInstruction(voidType, load, ptr)
	require.Equal(t, []ir.Value{load, ptr}, store.Operands())
	require.Same(t, ir.Instruction(load), store.StoredValue().(ir.Instruction))
}

func TestBranchConditionOptional(t *testing.T) {
	voidType := ir.NewVoidType()
	tblock := ir.NewBasicBlock("t")
	fblock := ir.NewBasicBlock("f")

	uncond := ir.NewBranchInstruction(voidType, tblock, nil, nil)
	_, ok := uncond.Condition()
	require.False(t, ok)

	ts := ir.NewTypeSystem()
	i1, _ := ts.GetType("u8")
	cond := ir.NewConstant(i1, 1)
	condBr := ir.NewBranchInstruction(voidType, tblock, fblock, cond)
	got, ok := condBr.Condition()
	require.True(t, ok)
	require.Same(t, cond, got.(*ir.Constant))
}

func TestPhiOperandsMatchIncomingValues(t *testing.T) {
	ts := ir.NewTypeSystem()
	i32, _ := ts.GetType("i32")
	b1 := ir.NewBasicBlock("b1")
	b2 := ir.NewBasicBlock("b2")
	v1 := ir.NewConstant(i32, 1)
	v2 := ir.NewConstant(i32, 2)

	phi := ir.NewPhiInstruction(i32, "p", map[*ir.BasicBlock]ir.Value{b1: v1, b2: v2})

	operandSet := map[ir.Value]bool{}
	for _, o := range phi.Operands() {
		operandSet[o] = true
	}
	require.True(t, operandSet[v1])
	require.True(t, operandSet[v2])
	require.Len(t, phi.Operands(), 2)

	incoming := phi.IncomingValues()
	require.Equal(t, v1, incoming[b1])
	require.Equal(t, v2, incoming[b2])
}

func TestSwitchOperandLayout(t *testing.T) {
	ts := ir.NewTypeSystem()
	i32, _ := ts.GetType("i32")
	voidType := ir.NewVoidType()

	cond := ir.NewConstant(i32, 1)
	c1 := ir.NewConstant(i32, 1)
	c2 := ir.NewConstant(i32, 2)
	b1 := ir.NewBasicBlock("case1")
	b2 := ir.NewBasicBlock("case2")
	def := ir.NewBasicBlock("default")

	sw := ir.NewSwitchInstruction(voidType, cond, def, []ir.SwitchCase{
		{Value: c1, Block: b1},
		{Value: c2, Block: b2},
	})

	require.Equal(t, []ir.Value{cond, c1, c2}, sw.Operands())
	require.Same(t, cond, sw.Condition().(*ir.Constant))
}
