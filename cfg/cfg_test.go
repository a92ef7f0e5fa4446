package cfg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lapair-go/lapair/cfg"
	"github.com/lapair-go/lapair/ir"
)

// buildDiamond constructs the entry -> {if_true, if_false} -> exit
// diamond used throughout spec.md §8's scenarios.
func buildDiamond() (*ir.Function, map[string]*ir.BasicBlock) {
	fn := ir.NewFunction("diamond", ir.NewVoidType())
	entry := ir.NewBasicBlock("entry")
	ifTrue := ir.NewBasicBlock("if_true")
	ifFalse := ir.NewBasicBlock("if_false")
	exit := ir.NewBasicBlock("exit")

	fn.AddBlock(entry)
	fn.AddBlock(ifTrue)
	fn.AddBlock(ifFalse)
	fn.AddBlock(exit)

	entry.AddSuccessor(ifTrue)
	entry.AddSuccessor(ifFalse)
	ifTrue.AddSuccessor(exit)
	ifFalse.AddSuccessor(exit)

	return fn, map[string]*ir.BasicBlock{
		"entry": entry, "if_true": ifTrue, "if_false": ifFalse, "exit": exit,
	}
}

func TestDiamondHasFourNodes(t *testing.T) {
	fn, blocks := buildDiamond()
	g := cfg.New(fn)

	require.Len(t, g.Nodes(), 4)

	entryNode := g.NodeFor(blocks["entry"])
	require.Len(t, entryNode.Successors(), 2)
	gotNames := map[string]bool{}
	for _, s := range entryNode.Successors() {
		gotNames[s.Block.Name] = true
	}
	require.Equal(t, map[string]bool{"if_true": true, "if_false": true}, gotNames)

	exitNode := g.NodeFor(blocks["exit"])
	require.Len(t, exitNode.Predecessors(), 2)
	predNames := map[string]bool{}
	for _, p := range exitNode.Predecessors() {
		predNames[p.Block.Name] = true
	}
	require.Equal(t, map[string]bool{"if_true": true, "if_false": true}, predNames)
}

func TestTraverseVisitsAllReachableNodes(t *testing.T) {
	fn, _ := buildDiamond()
	g := cfg.New(fn)

	order := g.Traverse(nil)
	require.Len(t, order, 4)

	seen := map[*ir.BasicBlock]bool{}
	for _, n := range order {
		seen[n.Block] = true
	}
	for _, b := range fn.Blocks() {
		require.True(t, seen[b], "block %s not visited", b.Name)
	}
}

func TestTraverseOmitsUnreachableNodes(t *testing.T) {
	fn := ir.NewFunction("f", ir.NewVoidType())
	entry := ir.NewBasicBlock("entry")
	unreachable := ir.NewBasicBlock("unreachable")
	fn.AddBlock(entry)
	fn.AddBlock(unreachable)

	g := cfg.New(fn)
	order := g.Traverse(nil)
	require.Len(t, order, 1)
	require.Same(t, entry, order[0].Block)
}

func TestNodeIdentityIsNotBlockIdentity(t *testing.T) {
	fn, blocks := buildDiamond()
	g := cfg.New(fn)
	node := g.NodeFor(blocks["entry"])
	require.NotEqual(t, any(node), any(blocks["entry"]))
}
