// Package dataflow implements a generic monotone-framework worklist
// solver over a cfg.Graph, parameterized by direction, lattice element,
// transfer function, and meet operator (spec §4.5), plus four concrete
// analyses built on it.
package dataflow

import (
	"sort"

	"github.com/lapair-go/lapair/cfg"
)

// Direction is a forward or backward analysis direction.
type Direction int

const (
	// Forward analyses flow from predecessors to successors.
	Forward Direction = iota
	// Backward analyses flow from successors to predecessors.
	Backward
)

// Analysis is the interface a concrete dataflow analysis implements.
// Element is the type of a single node's lattice fact (a set, a map,
// ...); implementations are expected to treat it as immutable and return
// fresh values from Flow and Meet rather than mutating their inputs, so
// the engine's change detection (via Equal) stays correct.
type Analysis[Element any] interface {
	// Direction reports whether this analysis runs forward or backward.
	Direction() Direction
	// Initial returns the bottom/identity element each node starts at.
	Initial() Element
	// Flow computes a node's output fact from its input fact.
	Flow(node *cfg.Node, input Element) Element
	// Meet combines the facts flowing in from a node's neighbors.
	Meet(elements []Element) Element
	// Equal reports whether two elements are the same fact, used to
	// detect convergence.
	Equal(a, b Element) bool
}

// Result holds the per-node in/out facts produced by Run.
type Result[Element any] struct {
	In  map[*cfg.Node]Element
	Out map[*cfg.Node]Element
}

// Run executes the worklist algorithm described in spec §4.5 over graph
// using analysis, and returns the converged in/out sets.
//
// The worklist is a FIFO queue of node indices rather than Go's
// unspecified map-iteration order, so that pop order — and therefore the
// exact path taken to the (unique) fixed point — is deterministic and
// reproducible across runs on an unchanged function (spec §8, property
// 5; spec §9, "Worklist determinism").
func Run[Element any](graph *cfg.Graph, analysis Analysis[Element]) Result[Element] {
	nodes := graph.Nodes()
	index := make(map[*cfg.Node]int, len(nodes))
	for i, n := range nodes {
		index[n] = i
	}

	in := make(map[*cfg.Node]Element, len(nodes))
	out := make(map[*cfg.Node]Element, len(nodes))
	for _, n := range nodes {
		in[n] = analysis.Initial()
		out[n] = analysis.Initial()
	}

	queued := make([]bool, len(nodes))
	var queue []int
	enqueue := func(n *cfg.Node) {
		i := index[n]
		if !queued[i] {
			queued[i] = true
			queue = append(queue, i)
		}
	}
	for i := range nodes {
		queued[i] = true
		queue = append(queue, i)
	}

	forward := analysis.Direction() == Forward

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		queued[i] = false
		node := nodes[i]

		if forward {
			neighbors := node.Predecessors()
			var meetInput Element
			if len(neighbors) == 0 {
				meetInput = analysis.Initial()
			} else {
				meetInput = analysis.Meet(collectDeterministic(neighbors, out, index))
			}
			in[node] = meetInput
			newOut := analysis.Flow(node, meetInput)
			if !analysis.Equal(newOut, out[node]) {
				out[node] = newOut
				succs := node.Successors()
				sort.Slice(succs, func(a, b int) bool { return index[succs[a]] < index[succs[b]] })
				for _, succ := range succs {
					enqueue(succ)
				}
			}
		} else {
			neighbors := node.Successors()
			var meetInput Element
			if len(neighbors) == 0 {
				meetInput = analysis.Initial()
			} else {
				meetInput = analysis.Meet(collectDeterministic(neighbors, in, index))
			}
			out[node] = meetInput
			newIn := analysis.Flow(node, meetInput)
			if !analysis.Equal(newIn, in[node]) {
				in[node] = newIn
				preds := node.Predecessors()
				sort.Slice(preds, func(a, b int) bool { return index[preds[a]] < index[preds[b]] })
				for _, pred := range preds {
					enqueue(pred)
				}
			}
		}
	}

	return Result[Element]{In: in, Out: out}
}

// collectDeterministic gathers the per-node facts of neighbors in a
// stable order (by their position in the graph's node list), so that
// Meet — which for some analyses is order-sensitive in its
// implementation even when not in its mathematics — behaves
// reproducibly.
func collectDeterministic[Element any](neighbors []*cfg.Node, facts map[*cfg.Node]Element, index map[*cfg.Node]int) []Element {
	sort.Slice(neighbors, func(i, j int) bool { return index[neighbors[i]] < index[neighbors[j]] })
	out := make([]Element, len(neighbors))
	for i, n := range neighbors {
		out[i] = facts[n]
	}
	return out
}
