package dataflow

import (
	"github.com/lapair-go/lapair/cfg"
	"github.com/lapair-go/lapair/ir"
)

// Definition identifies a single reaching-definitions fact: a named
// instruction that assigns a value to a variable name.
type Definition struct {
	Name  string
	Instr ir.Instruction
}

// ReachingDefinitions is the forward, union ("may") analysis of spec
// §4.5.1: at each program point, which definitions of each variable
// might still be live at that point, having reached it along some path
// without being killed by a later definition of the same name.
type ReachingDefinitions struct{}

func (ReachingDefinitions) Direction() Direction { return Forward }

func (ReachingDefinitions) Initial() Set[Definition] { return make(Set[Definition]) }

func (ReachingDefinitions) Meet(elements []Set[Definition]) Set[Definition] {
	return Union(elements)
}

func (ReachingDefinitions) Equal(a, b Set[Definition]) bool { return Equal(a, b) }

// Flow applies each instruction in the block in order: a definition of a
// name kills every prior definition of the same name already in the set,
// then adds itself.
func (ReachingDefinitions) Flow(node *cfg.Node, input Set[Definition]) Set[Definition] {
	out := input.Clone()
	for _, instr := range node.Block.Instructions() {
		name := instr.Name()
		if name == "" {
			continue
		}
		for d := range out {
			if d.Name == name {
				delete(out, d)
			}
		}
		out.Add(Definition{Name: name, Instr: instr})
	}
	return out
}
