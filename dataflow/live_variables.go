package dataflow

import (
	"github.com/lapair-go/lapair/cfg"
)

// LiveVariables is the backward, union ("may") analysis of spec §4.5.2:
// at each program point, which variable names might be read later along
// some path before being redefined.
type LiveVariables struct{}

func (LiveVariables) Direction() Direction { return Backward }

func (LiveVariables) Initial() Set[string] { return make(Set[string]) }

func (LiveVariables) Meet(elements []Set[string]) Set[string] { return Union(elements) }

func (LiveVariables) Equal(a, b Set[string]) bool { return Equal(a, b) }

// Flow walks the block's instructions in reverse: a definition removes
// its own name from the live set (it is dead across the point just
// before it), then the instruction's operand names are added back as
// live (they are used at that point).
func (LiveVariables) Flow(node *cfg.Node, input Set[string]) Set[string] {
	live := input.Clone()
	instrs := node.Block.Instructions()
	for i := len(instrs) - 1; i >= 0; i-- {
		instr := instrs[i]
		if name := instr.Name(); name != "" {
			live.Remove(name)
		}
		for _, operand := range instr.Operands() {
			if name := operand.Name(); name != "" {
				live.Add(name)
			}
		}
	}
	return live
}
