package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lapair-go/lapair/ir"
)

func diamondSpec() ProgramSpec {
	one := int64(1)
	two := int64(2)
	return ProgramSpec{
		Function: "diamond",
		Blocks: []BlockSpec{
			{
				Name:       "entry",
				Successors: []string{"if_true", "if_false"},
				Instructions: []InstructionSpec{
					{Op: "assign", Name: "a", Literal: &one},
					{Op: "assign", Name: "b", Literal: &two},
				},
			},
			{
				Name:       "if_true",
				Successors: []string{"exit"},
				Instructions: []InstructionSpec{
					{Op: "add", Name: "c", Operands: []string{"a", "b"}},
				},
			},
			{
				Name:       "if_false",
				Successors: []string{"exit"},
				Instructions: []InstructionSpec{
					{Op: "mul", Name: "c", Operands: []string{"a", "b"}},
				},
			},
			{
				Name: "exit",
				Instructions: []InstructionSpec{
					{Op: "add", Name: "d", Operands: []string{"c", "a"}},
				},
			},
		},
	}
}

func TestBuildFunctionWiresBlocksAndOperands(t *testing.T) {
	ts := ir.NewTypeSystem()
	fn, err := buildFunction(ts, diamondSpec())
	require.NoError(t, err)
	require.Len(t, fn.Blocks(), 4)
	require.Equal(t, "entry", fn.Entry().Name)

	entry := fn.GetBlock("entry")
	require.Len(t, entry.Instructions(), 2)
	require.True(t, entry.HasSuccessor(fn.GetBlock("if_true")))
	require.True(t, entry.HasSuccessor(fn.GetBlock("if_false")))

	add := fn.GetBlock("if_true").Instructions()[0]
	require.Equal(t, []ir.Value{entry.Instructions()[0], entry.Instructions()[1]}, add.Operands())
}

func TestBuildFunctionRejectsUnknownOperand(t *testing.T) {
	ts := ir.NewTypeSystem()
	spec := ProgramSpec{
		Function: "broken",
		Blocks: []BlockSpec{
			{
				Name: "entry",
				Instructions: []InstructionSpec{
					{Op: "add", Name: "c", Operands: []string{"missing"}},
				},
			},
		},
	}
	_, err := buildFunction(ts, spec)
	require.Error(t, err)
}

func TestReportRunsAllFourAnalyses(t *testing.T) {
	ts := ir.NewTypeSystem()
	fn, err := buildFunction(ts, diamondSpec())
	require.NoError(t, err)

	out := report(fn)
	require.Contains(t, out, "reaching definitions:")
	require.Contains(t, out, "live variables:")
	require.Contains(t, out, "available expressions:")
	require.Contains(t, out, "constant propagation:")
}
