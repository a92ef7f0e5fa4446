package frontend_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lapair-go/lapair/frontend"
	"github.com/lapair-go/lapair/ir"
)

func TestSourceLocationConvertsToIRLocation(t *testing.T) {
	loc := frontend.SourceLocation{File: "a.src", StartLine: 3, StartCol: 5, EndLine: 3, EndCol: 9}
	converted := loc.ToIRLocation()
	require.Equal(t, &ir.Location{File: "a.src", Line: 3, Column: 5, EndLine: 3, EndColumn: 9}, converted)
	require.Equal(t, "a.src:3:5", loc.String())
}

func TestDiagnosticsFormatWithAndWithoutLocation(t *testing.T) {
	var d frontend.Diagnostics
	d.AddError("unbound name", &frontend.SourceLocation{File: "a.src", StartLine: 1, StartCol: 1})
	d.AddWarning("unused import", nil)

	require.Equal(t, []string{"a.src:1:1: unbound name"}, d.Errors())
	require.Equal(t, []string{"unused import"}, d.Warnings())
}

// stubParser always reports one error, standing in for a concrete
// language's parser to exercise FrontendBase's diagnostic merging.
type stubParser struct {
	frontend.ParserBase
}

func newStubParser() *stubParser {
	p := &stubParser{}
	p.AddError("syntax error", nil)
	return p
}

func (p *stubParser) ParseFile(string) (frontend.AST, error)      { return nil, nil }
func (p *stubParser) ParseString(string, string) (frontend.AST, error) { return nil, nil }

func TestFrontendBaseMergesFrontendErrorsBeforeParserErrors(t *testing.T) {
	program := ir.NewIR()
	base := frontend.NewFrontendBase(program)
	base.AddError("module already exists", nil)
	base.Parser = newStubParser()

	require.True(t, base.HasErrors())
	require.Equal(t, []string{"module already exists", "syntax error"}, base.AllErrors())
}

func TestFrontendBaseProcessFileIsUnimplemented(t *testing.T) {
	program := ir.NewIR()
	base := frontend.NewFrontendBase(program)
	_, err := base.ProcessFile("x.src")
	require.Error(t, err)
}

func TestFrontendBaseCreateParserPanics(t *testing.T) {
	program := ir.NewIR()
	base := frontend.NewFrontendBase(program)
	require.Panics(t, func() { base.CreateParser() })
}

func TestASTVisitorBaseVisitIsUnimplemented(t *testing.T) {
	program := ir.NewIR()
	visitor := frontend.NewASTVisitorBase(program)
	_, err := visitor.Visit(nil)
	require.Error(t, err)
}
