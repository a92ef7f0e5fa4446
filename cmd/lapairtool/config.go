package main

// ProgramSpec is the YAML shape lapairtool loads in lieu of a real
// language frontend (none is implemented; spec.md puts language
// frontends out of scope). It describes one function's blocks and
// instructions directly, letting the tool exercise the cfg and
// dataflow packages end to end without parsing any source language.
type ProgramSpec struct {
	Function string      `yaml:"function"`
	Blocks   []BlockSpec `yaml:"blocks"`
}

// BlockSpec is one basic block: its name, the names of its successor
// blocks, and its instructions in order.
type BlockSpec struct {
	Name         string            `yaml:"name"`
	Successors   []string          `yaml:"successors"`
	Instructions []InstructionSpec `yaml:"instructions"`
}

// InstructionSpec is one instruction. Op selects the instruction kind
// ("assign", "add", "sub", "mul", "div"); Name is the result name.
// Operands names results of earlier instructions; Literal, when
// non-nil, supplies a constant operand appended after any named ones
// (used for "assign" from a literal, e.g. `op: assign, literal: 1`).
type InstructionSpec struct {
	Op       string   `yaml:"op"`
	Name     string   `yaml:"name"`
	Operands []string `yaml:"operands"`
	Literal  *int64   `yaml:"literal"`
}
