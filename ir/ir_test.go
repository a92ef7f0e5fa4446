package ir_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lapair-go/lapair/ir"
)

func TestUseDefConsistency(t *testing.T) {
	ts := ir.NewTypeSystem()
	i32, _ := ts.GetType("i32")

	a := ir.NewConstant(i32, 1)
	b := ir.NewConstant(i32, 2)
	add := ir.NewBinaryInstruction(ir.Add, i32, "sum", a, b)

	requireUser(t, a, add)
	requireUser(t, b, add)

	c := ir.NewConstant(i32, 3)
	add.ReplaceOperand(a, c)
	require.NotContains(t, a.Users(), ir.Instruction(add))
	requireUser(t, c, add)
	require.Equal(t, []ir.Value{c, b}, add.Operands())

	add.RemoveOperand(b)
	require.NotContains(t, b.Users(), ir.Instruction(add))
	require.Equal(t, []ir.Value{c}, add.Operands())
}

func requireUser(t *testing.T, v ir.Value, instr ir.Instruction) {
	t.Helper()
	for _, u := range v.Users() {
		if u == instr {
			return
		}
	}
	t.Fatalf("expected %v to be a user of %v", instr, v)
}

func TestCFGSymmetry(t *testing.T) {
	a := ir.NewBasicBlock("a")
	b := ir.NewBasicBlock("b")

	a.AddSuccessor(b)
	require.True(t, b.HasPredecessor(a))
	require.True(t, a.HasSuccessor(b))

	b.AddPredecessor(a) // redundant insertion must stay symmetric and idempotent
	require.True(t, a.HasSuccessor(b))

	a.RemoveSuccessor(b)
	require.False(t, b.HasPredecessor(a))
	require.False(t, a.HasSuccessor(b))
}

func TestTypeSystemRegistersComposites(t *testing.T) {
	ts := ir.NewTypeSystem()
	i32, _ := ts.GetType("i32")

	ptr := ts.CreatePointerType(i32)
	got, ok := ts.GetType(ptr.Name())
	require.True(t, ok)
	require.Equal(t, ptr, got)

	length := 4
	arr := ts.CreateArrayType(i32, &length)
	got, ok = ts.GetType(arr.Name())
	require.True(t, ok)
	require.Equal(t, arr, got)
	size, sized := arr.Size()
	require.True(t, sized)
	require.Equal(t, 128, size)

	st := ts.CreateStructType("point", []ir.StructField{{Name: "x", Type: i32}, {Name: "y", Type: i32}})
	got, ok = ts.GetType(st.Name())
	require.True(t, ok)
	require.Equal(t, st, got)
	size, sized = st.Size()
	require.True(t, sized)
	require.Equal(t, 64, size)

	fn := ts.CreateFunctionType(i32, []ir.Type{i32, i32})
	require.Equal(t, "i32 (i32, i32)", fn.Name())
}

func TestScopeShadowing(t *testing.T) {
	st := ir.NewSymbolTable()
	i32 := ir.NewIntegerType(32, true)

	global := st.AddSymbol("x", i32, true, false, true)

	st.EnterScope("function")
	local := st.AddSymbol("x", i32, false, false, true)

	found, ok := st.Lookup("x", false)
	require.True(t, ok)
	require.Same(t, local, found)

	st.ExitScope()
	found, ok = st.Lookup("x", false)
	require.True(t, ok)
	require.Same(t, global, found)
}

func TestSymbolTableCurrentScopeOnly(t *testing.T) {
	st := ir.NewSymbolTable()
	i32 := ir.NewIntegerType(32, true)
	st.AddSymbol("g", i32, true, false, true)

	st.EnterScope("inner")
	_, ok := st.Lookup("g", true)
	require.False(t, ok)

	_, ok = st.Lookup("g", false)
	require.True(t, ok)
}

func TestOwnershipWiring(t *testing.T) {
	program := ir.NewIR()
	mod := program.CreateModule("m")
	fn := ir.NewFunction("f", ir.NewVoidType())
	mod.AddFunction(fn)
	entry := ir.NewBasicBlock("entry")
	fn.AddBlock(entry)

	require.Same(t, program, mod.Parent())
	require.Same(t, mod, fn.Parent())
	require.Same(t, fn, entry.Parent())
	require.Same(t, entry, fn.Entry())

	got, ok := mod.GetFunction("f")
	require.True(t, ok)
	require.Same(t, fn, got)

	_, ok = mod.GetFunction("missing")
	require.False(t, ok)
}
