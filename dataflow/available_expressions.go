package dataflow

import (
	"github.com/lapair-go/lapair/cfg"
)

// ExpressionSet is the Available-Expressions lattice element: the set of
// Expression values known to be available, keyed by Expression.key()
// since Expression itself (containing a slice) is not a comparable map
// key.
type ExpressionSet map[string]Expression

func newExpressionSet() ExpressionSet { return make(ExpressionSet) }

func (s ExpressionSet) clone() ExpressionSet {
	out := make(ExpressionSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

func (s ExpressionSet) add(e Expression) { s[e.key()] = e }

// Has reports whether e is available in s.
func (s ExpressionSet) Has(e Expression) bool {
	_, ok := s[e.key()]
	return ok
}

// AvailableExpressions is the forward, intersection ("must") analysis of
// spec §4.5.3: at each program point, which expressions have already
// been computed on every path reaching that point, and not since
// invalidated.
//
// Grounded directly on original_source's AvailableExpressionsAnalysis,
// this implementation's kill is deliberately global and
// history-dependent rather than a pure per-edge function of the CFG
// (spec §9, Open Question 1): every block's Flow call records the names
// it defines into a shared, growing table keyed by node, and Meet — when
// combining two or more predecessors — drops any expression mentioning a
// name recorded as killed by *any node visited by the analysis so far*,
// not just the nodes on the paths being merged. A single-predecessor
// node's Meet is a pass-through with no kill filtering at all, matching
// the original's short-circuit for `len(sets) == 1`. One consequence:
// the result at a join point can depend on how much of the rest of the
// function the worklist has already visited by the time that join is
// computed, which is why this package documents it as a known
// weakening rather than presenting it as a textbook must-analysis.
type AvailableExpressions struct {
	killed map[*cfg.Node]Set[string]
}

// NewAvailableExpressions builds a fresh Available Expressions analysis.
// The killed-names table starts empty and is filled in as Flow visits
// nodes during Run, so its key set is always exactly "nodes visited so
// far" — the same set original_source's meet_operator walks via
// self.cfg.get_nodes(), since that loop only ever sees kill records for
// nodes Flow has already run on.
func NewAvailableExpressions() *AvailableExpressions {
	return &AvailableExpressions{killed: make(map[*cfg.Node]Set[string])}
}

func (*AvailableExpressions) Direction() Direction { return Forward }

func (*AvailableExpressions) Initial() ExpressionSet { return newExpressionSet() }

// Meet intersects the inputs (a pass-through when there is exactly one),
// then drops any expression mentioning a name killed by any node the
// analysis has recorded a kill set for so far.
func (a *AvailableExpressions) Meet(elements []ExpressionSet) ExpressionSet {
	if len(elements) == 0 {
		return newExpressionSet()
	}
	if len(elements) == 1 {
		return elements[0].clone()
	}

	out := elements[0].clone()
	for _, e := range elements[1:] {
		for k := range out {
			if _, ok := e[k]; !ok {
				delete(out, k)
			}
		}
	}

	allKilled := make(Set[string])
	for _, killedHere := range a.killed {
		for name := range killedHere {
			allKilled.Add(name)
		}
	}
	for k, expr := range out {
		for _, operand := range expr.Operands {
			if allKilled.Has(operand) {
				delete(out, k)
				break
			}
		}
	}
	return out
}

func (*AvailableExpressions) Equal(a, b ExpressionSet) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

// Flow records the names this block defines (for Meet's history-
// dependent kill), drops any currently-available expression mentioning
// one of them, then adds the expressions the block's own instructions
// compute.
func (a *AvailableExpressions) Flow(node *cfg.Node, input ExpressionSet) ExpressionSet {
	out := input.clone()

	killedHere := make(Set[string])
	for _, instr := range node.Block.Instructions() {
		if name := instr.Name(); name != "" {
			killedHere.Add(name)
		}
	}
	a.killed[node] = killedHere

	for k, expr := range out {
		for _, operand := range expr.Operands {
			if killedHere.Has(operand) {
				delete(out, k)
				break
			}
		}
	}

	for _, instr := range node.Block.Instructions() {
		if expr, ok := FromInstruction(instr); ok {
			out.add(expr)
		}
	}
	return out
}
