package frontend

import "golang.org/x/xerrors"

// Parser turns source text into an AST (§4.6). A concrete language
// frontend implements ParseFile/ParseString; this package provides no
// implementation for any language.
type Parser interface {
	ParseFile(filePath string) (AST, error)
	ParseString(content, filePath string) (AST, error)
	AddError(message string, loc *SourceLocation)
	AddWarning(message string, loc *SourceLocation)
	Errors() []string
	Warnings() []string
}

// ParserBase implements the diagnostic bookkeeping shared by every
// concrete parser.
type ParserBase struct {
	Diagnostics
}

// ParseFile is unimplemented on the base type.
func (ParserBase) ParseFile(string) (AST, error) {
	return nil, xerrors.New("frontend: ParserBase.ParseFile not implemented by embedding type")
}

// ParseString is unimplemented on the base type.
func (ParserBase) ParseString(string, string) (AST, error) {
	return nil, xerrors.New("frontend: ParserBase.ParseString not implemented by embedding type")
}
