package frontend

import (
	"golang.org/x/xerrors"

	"github.com/lapair-go/lapair/ir"
)

// ASTVisitor walks an AST and lowers it into IR, accumulating
// diagnostics along the way (§4.6).
type ASTVisitor interface {
	// Visit lowers a single node. A concrete visitor type switches on
	// the node's dynamic type.
	Visit(node AST) (any, error)
	AddError(message string, loc *SourceLocation)
	AddWarning(message string, loc *SourceLocation)
	Errors() []string
	Warnings() []string
}

// ASTVisitorBase implements the diagnostic bookkeeping every concrete
// visitor needs, plus a Visit that returns a contract-violation error
// if a concrete type embeds this base but forgets to override Visit.
type ASTVisitorBase struct {
	Diagnostics
	IR            *ir.IR
	CurrentModule *ir.Module
	TypeSystem    *ir.TypeSystem
}

// NewASTVisitorBase builds the shared visitor state for a new frontend
// pass over program.
func NewASTVisitorBase(program *ir.IR) ASTVisitorBase {
	return ASTVisitorBase{IR: program, TypeSystem: program.TypeSystem}
}

// Visit is unimplemented on the base type: every concrete visitor must
// override it. Calling it directly is a contract violation, not a
// recoverable condition, so it returns an error built with xerrors
// rather than panicking — callers exercising a test double that forgot
// to embed a real Visit still get a located, wrapped error.
func (ASTVisitorBase) Visit(AST) (any, error) {
	return nil, xerrors.New("frontend: ASTVisitorBase.Visit not implemented by embedding type")
}
