package dataflow

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lapair-go/lapair/ir"
)

// Expression is the Available-Expressions lattice element: an operator
// tag plus the sorted operand tokens it was computed from (spec
// §4.5.3). Two instructions compute the "same" expression when their
// Expression values are equal, regardless of instruction identity.
type Expression struct {
	Operator string
	Operands []string
}

// key returns a string uniquely identifying e, suitable for use as a map
// key (Expression itself, containing a slice, is not comparable).
func (e Expression) key() string {
	return e.Operator + "(" + strings.Join(e.Operands, ",") + ")"
}

// String renders e as "operator(operand1, operand2)".
func (e Expression) String() string {
	return e.Operator + "(" + strings.Join(e.Operands, ", ") + ")"
}

// FromInstruction derives the Expression an instruction computes, if
// any. Only instructions implementing ExpressionTagger with at least two
// operands qualify (spec §4.5.3) — this excludes subtraction and
// division (spec §9, Open Question 2) and any instruction with fewer
// than two operands, such as a single-operand assign. Each operand
// contributes its variable name if it is a named value, or the token
// "const_<literal>" if it is a Constant; an operand that is neither (an
// unnamed, non-constant value) makes the whole instruction
// unrepresentable as an Expression.
func FromInstruction(instr ir.Instruction) (Expression, bool) {
	tagger, ok := instr.(ir.ExpressionTagger)
	if !ok {
		return Expression{}, false
	}
	tag, ok := tagger.ExpressionTag()
	if !ok {
		return Expression{}, false
	}
	operands := instr.Operands()
	if len(operands) < 2 {
		return Expression{}, false
	}
	tokens := make([]string, len(operands))
	for i, o := range operands {
		token, ok := operandToken(o)
		if !ok {
			return Expression{}, false
		}
		tokens[i] = token
	}
	sort.Strings(tokens)
	return Expression{Operator: tag, Operands: tokens}, true
}

func operandToken(v ir.Value) (string, bool) {
	if c, ok := v.(*ir.Constant); ok {
		return fmt.Sprintf("const_%v", c.Literal), true
	}
	if name := v.Name(); name != "" {
		return name, true
	}
	return "", false
}
