package frontend

import (
	"golang.org/x/xerrors"

	"github.com/lapair-go/lapair/ir"
)

// Frontend drives a parser and a visitor to turn source into an ir.Module
// (§4.6). A concrete language frontend supplies CreateParser,
// CreateModule, ProcessFile, and ProcessString; this package fixes only
// the contract and the diagnostic-merging behavior.
type Frontend interface {
	CreateParser() Parser
	CreateModule(name string) *ir.Module
	ProcessFile(filePath string) (*ir.Module, error)
	ProcessString(content, filePath string) (*ir.Module, error)

	AddError(message string, loc *SourceLocation)
	AddWarning(message string, loc *SourceLocation)
	// HasErrors reports whether the frontend or its parser recorded any
	// error.
	HasErrors() bool
	// AllErrors returns every error recorded by the frontend, followed
	// by every error recorded by its parser. The ordering is part of the
	// contract: a caller rendering diagnostics sees frontend-level
	// problems (e.g. "module already exists") before the lower-level
	// parse errors that may have produced them.
	AllErrors() []string
	// AllWarnings mirrors AllErrors for warnings.
	AllWarnings() []string
}

// FrontendBase implements the diagnostic bookkeeping and merging shared
// by every concrete frontend. A concrete type embeds FrontendBase,
// assigns Parser in its constructor (the Python base class calls
// create_parser() from its own __init__; Go has no virtual dispatch
// during embedding construction, so callers must do this step
// explicitly instead), and overrides CreateParser/CreateModule/
// ProcessFile/ProcessString.
type FrontendBase struct {
	Diagnostics
	IR     *ir.IR
	Parser Parser
}

// NewFrontendBase builds the shared frontend state over program. The
// caller is responsible for setting Parser immediately after, typically
// to the result of the concrete type's own CreateParser.
func NewFrontendBase(program *ir.IR) FrontendBase {
	return FrontendBase{IR: program}
}

// CreateParser is unimplemented on the base type. Neither it nor
// CreateModule returns an error (their signatures are fixed by what a
// concrete frontend needs at construction time), so a direct call is a
// programming error and, per §7, fatal to the caller rather than
// recoverable: it panics instead of returning a zero value that would
// silently propagate.
func (FrontendBase) CreateParser() Parser {
	panic(xerrors.New("frontend: FrontendBase.CreateParser not implemented by embedding type"))
}

// CreateModule is unimplemented on the base type; see CreateParser.
func (FrontendBase) CreateModule(string) *ir.Module {
	panic(xerrors.New("frontend: FrontendBase.CreateModule not implemented by embedding type"))
}

// ProcessFile is unimplemented on the base type.
func (FrontendBase) ProcessFile(string) (*ir.Module, error) {
	return nil, xerrors.New("frontend: FrontendBase.ProcessFile not implemented by embedding type")
}

// ProcessString is unimplemented on the base type.
func (FrontendBase) ProcessString(string, string) (*ir.Module, error) {
	return nil, xerrors.New("frontend: FrontendBase.ProcessString not implemented by embedding type")
}

// HasErrors reports whether the frontend itself or its parser has
// recorded any error.
func (f FrontendBase) HasErrors() bool {
	if len(f.Diagnostics.Errors()) > 0 {
		return true
	}
	return f.Parser != nil && len(f.Parser.Errors()) > 0
}

// AllErrors returns the frontend's own errors followed by its parser's.
func (f FrontendBase) AllErrors() []string {
	out := f.Diagnostics.Errors()
	if f.Parser != nil {
		out = append(out, f.Parser.Errors()...)
	}
	return out
}

// AllWarnings returns the frontend's own warnings followed by its
// parser's.
func (f FrontendBase) AllWarnings() []string {
	out := f.Diagnostics.Warnings()
	if f.Parser != nil {
		out = append(out, f.Parser.Warnings()...)
	}
	return out
}
