package dataflow

import (
	"github.com/lapair-go/lapair/cfg"
	"github.com/lapair-go/lapair/ir"
)

// ConstStatus is a variable's Constant Propagation status: whether it is
// known to hold a single compile-time value (CONST) or not (TOP). This
// package tracks only the two-level CONST/TOP lattice (spec §4.5.4) —
// it does not track *which* constant value a CONST variable holds, so
// two paths that assign different constants to a name both yield CONST
// and their meet is still CONST.
type ConstStatus string

const (
	// TOP means "not known to be constant" — either never assigned,
	// assigned from something non-constant, or constant along some
	// paths and not along others.
	TOP ConstStatus = "TOP"
	// CONST means every path assigns this variable some
	// compile-time-known value (not necessarily the same one).
	CONST ConstStatus = "CONST"
)

// ConstantFacts is the Constant Propagation lattice element: a map from
// variable name to its ConstStatus. A name absent from the map is
// equivalent to TOP.
type ConstantFacts map[string]ConstStatus

func newConstantFacts() ConstantFacts { return make(ConstantFacts) }

func (f ConstantFacts) clone() ConstantFacts {
	out := make(ConstantFacts, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

func (f ConstantFacts) statusOf(name string) ConstStatus {
	if status, ok := f[name]; ok {
		return status
	}
	return TOP
}

// ConstantPropagation is the forward analysis of spec §4.5.4: at each
// program point, which variables hold a compile-time constant on every
// path that reaches that point. Which constant is not tracked.
type ConstantPropagation struct{}

func (ConstantPropagation) Direction() Direction { return Forward }

func (ConstantPropagation) Initial() ConstantFacts { return newConstantFacts() }

// Meet computes, for every name appearing in any input set, CONST only
// if every input agrees (treating an absent name as TOP), else TOP.
func (ConstantPropagation) Meet(elements []ConstantFacts) ConstantFacts {
	if len(elements) == 0 {
		return newConstantFacts()
	}
	names := make(map[string]struct{})
	for _, e := range elements {
		for name := range e {
			names[name] = struct{}{}
		}
	}
	out := newConstantFacts()
	for name := range names {
		first := elements[0].statusOf(name)
		agree := true
		for _, e := range elements[1:] {
			if e.statusOf(name) != first {
				agree = false
				break
			}
		}
		if agree {
			out[name] = first
		} else {
			out[name] = TOP
		}
	}
	return out
}

func (ConstantPropagation) Equal(a, b ConstantFacts) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

// Flow evaluates each named instruction in the block in order: a single
// operand copies that operand's status (CONST for a literal, the
// tracked status for a named value); an instruction with more than one
// operand is CONST only if every operand resolves to CONST; an
// instruction with no operands has no determinable value and is set to
// TOP. A single unnamed, non-constant operand leaves the name unset,
// which is equivalent to TOP.
func (ConstantPropagation) Flow(node *cfg.Node, input ConstantFacts) ConstantFacts {
	out := input.clone()
	for _, instr := range node.Block.Instructions() {
		name := instr.Name()
		if name == "" {
			continue
		}
		operands := instr.Operands()
		switch {
		case len(operands) == 1:
			if status, ok := statusOfOperand(operands[0], out, input); ok {
				out[name] = status
			} else {
				delete(out, name)
			}
		case len(operands) > 1:
			allConst := true
			for _, operand := range operands {
				status, ok := statusOfOperand(operand, out, input)
				if !ok || status != CONST {
					allConst = false
					break
				}
			}
			if allConst {
				out[name] = CONST
			} else {
				out[name] = TOP
			}
		default:
			out[name] = TOP
		}
	}
	return out
}

// statusOfOperand reports operand's status: a Constant is always CONST;
// a named value's status is looked up first in the in-progress out set,
// falling back to the block's input facts, matching
// `out_set.get(name, in_set.get(name, TOP))`. An operand with neither
// shape (e.g. unnamed) is unresolved.
func statusOfOperand(operand ir.Value, out, input ConstantFacts) (ConstStatus, bool) {
	if _, ok := operand.(*ir.Constant); ok {
		return CONST, true
	}
	name := operand.Name()
	if name == "" {
		return "", false
	}
	if status, ok := out[name]; ok {
		return status, true
	}
	if status, ok := input[name]; ok {
		return status, true
	}
	return TOP, true
}
