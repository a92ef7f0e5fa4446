// Package cfg builds a node-per-block control-flow graph view over an
// ir.Function, distinct from the ir package's own BasicBlock
// predecessor/successor edges (Node identity is never block identity,
// per spec §4.4).
package cfg

import (
	"github.com/lapair-go/lapair/ir"
)

// Node is one node of a Graph, wrapping a single basic block.
// Node identity is based on the node itself (Go pointer identity), never
// on the wrapped block.
type Node struct {
	Block        *ir.BasicBlock
	successors   map[*Node]struct{}
	predecessors map[*Node]struct{}
}

func newNode(b *ir.BasicBlock) *Node {
	return &Node{
		Block:        b,
		successors:   make(map[*Node]struct{}),
		predecessors: make(map[*Node]struct{}),
	}
}

// Successors returns n's successor nodes. Order is unspecified.
func (n *Node) Successors() []*Node { return nodeSetSlice(n.successors) }

// Predecessors returns n's predecessor nodes. Order is unspecified.
func (n *Node) Predecessors() []*Node { return nodeSetSlice(n.predecessors) }

func nodeSetSlice(m map[*Node]struct{}) []*Node {
	out := make([]*Node, 0, len(m))
	for n := range m {
		out = append(out, n)
	}
	return out
}

// Graph is a control-flow graph view over a single function: one Node
// per basic block, built once at construction time and linked to mirror
// the function's block-level predecessor/successor edges.
type Graph struct {
	Function *ir.Function
	nodes    map[*ir.BasicBlock]*Node
	order    []*ir.BasicBlock
}

// New builds the control-flow graph of fn.
func New(fn *ir.Function) *Graph {
	g := &Graph{
		Function: fn,
		nodes:    make(map[*ir.BasicBlock]*Node),
	}
	g.build()
	return g
}

func (g *Graph) build() {
	for _, b := range g.Function.Blocks() {
		g.nodes[b] = newNode(b)
		g.order = append(g.order, b)
	}
	for _, b := range g.Function.Blocks() {
		node := g.nodes[b]
		for _, succ := range b.Successors() {
			succNode := g.nodes[succ]
			node.successors[succNode] = struct{}{}
			succNode.predecessors[node] = struct{}{}
		}
	}
}

// NodeFor returns the Node wrapping block b, or nil if b does not belong
// to this graph's function.
func (g *Graph) NodeFor(b *ir.BasicBlock) *Node { return g.nodes[b] }

// Nodes returns all nodes in block insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.order))
	for i, b := range g.order {
		out[i] = g.nodes[b]
	}
	return out
}

// Traverse performs a depth-first preorder walk starting at start
// (default: the function's entry block) and returns the nodes in visit
// order. Unreachable nodes are omitted.
func (g *Graph) Traverse(start *ir.BasicBlock) []*Node {
	if start == nil {
		start = g.Function.Entry()
	}
	if start == nil {
		return nil
	}
	startNode := g.nodes[start]
	if startNode == nil {
		return nil
	}

	visited := make(map[*Node]struct{})
	var order []*Node
	stack := []*Node{startNode}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := visited[n]; seen {
			continue
		}
		visited[n] = struct{}{}
		order = append(order, n)
		for _, succ := range n.Successors() {
			if _, seen := visited[succ]; !seen {
				stack = append(stack, succ)
			}
		}
	}
	return order
}
