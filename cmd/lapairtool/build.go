package main

import (
	"fmt"

	"github.com/lapair-go/lapair/ir"
)

// buildFunction materializes spec into an ir.Function: one i32-typed
// instruction per InstructionSpec, wired into blocks and successor
// edges in declaration order. Instruction results become addressable by
// name for later instructions' Operands references, mirroring how a
// real frontend's symbol table would resolve identifiers as it lowers
// an AST.
func buildFunction(ts *ir.TypeSystem, spec ProgramSpec) (*ir.Function, error) {
	i32, ok := ts.GetType("i32")
	if !ok {
		return nil, fmt.Errorf("lapairtool: type system missing i32")
	}

	fn := ir.NewFunction(spec.Function, i32)
	blocks := make(map[string]*ir.BasicBlock, len(spec.Blocks))
	for _, b := range spec.Blocks {
		block := ir.NewBasicBlock(b.Name)
		blocks[b.Name] = block
		fn.AddBlock(block)
	}

	for _, b := range spec.Blocks {
		block := blocks[b.Name]
		for _, succName := range b.Successors {
			succ, ok := blocks[succName]
			if !ok {
				return nil, fmt.Errorf("lapairtool: block %q references unknown successor %q", b.Name, succName)
			}
			block.AddSuccessor(succ)
		}
	}

	values := make(map[string]ir.Value)
	for _, b := range spec.Blocks {
		block := blocks[b.Name]
		for _, instrSpec := range b.Instructions {
			instr, err := buildInstruction(i32, instrSpec, values)
			if err != nil {
				return nil, err
			}
			block.AddInstruction(instr)
			if instrSpec.Name != "" {
				values[instrSpec.Name] = instr
			}
		}
	}

	return fn, nil
}

func buildInstruction(i32 ir.Type, spec InstructionSpec, values map[string]ir.Value) (ir.Instruction, error) {
	operands := make([]ir.Value, 0, len(spec.Operands)+1)
	for _, name := range spec.Operands {
		v, ok := values[name]
		if !ok {
			return nil, fmt.Errorf("lapairtool: instruction %q references unknown operand %q", spec.Name, name)
		}
		operands = append(operands, v)
	}
	if spec.Literal != nil {
		operands = append(operands, ir.NewConstant(i32, *spec.Literal))
	}

	switch spec.Op {
	case "assign":
		return ir.NewAssignInstruction(i32, spec.Name, operands...), nil
	case "add":
		return ir.NewAddInstruction(i32, spec.Name, operands...), nil
	case "sub":
		return ir.NewSubInstruction(i32, spec.Name, operands...), nil
	case "mul":
		return ir.NewMulInstruction(i32, spec.Name, operands...), nil
	case "div":
		return ir.NewDivInstruction(i32, spec.Name, operands...), nil
	default:
		return nil, fmt.Errorf("lapairtool: unknown instruction op %q", spec.Op)
	}
}
