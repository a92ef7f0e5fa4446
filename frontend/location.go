// Package frontend defines the abstract contracts a language frontend
// must satisfy to feed source code into the ir package: a source
// location, an AST protocol, a visitor base, a parser base, and a
// frontend driver base. It intentionally contains no parser or visitor
// implementation for any concrete language — spec.md puts "language
// frontends and their parsers" out of scope, so this package only fixes
// the seam a future frontend would plug into.
package frontend

import (
	"strconv"

	"github.com/lapair-go/lapair/ir"
)

// SourceLocation is a span in a source file, as a concrete frontend's
// parser would report it.
type SourceLocation struct {
	File       string
	StartLine  int
	StartCol   int
	EndLine    int
	EndCol     int
}

// ToIRLocation converts a SourceLocation to the ir package's Location.
func (s SourceLocation) ToIRLocation() *ir.Location {
	return &ir.Location{
		File:      s.File,
		Line:      s.StartLine,
		Column:    s.StartCol,
		EndLine:   s.EndLine,
		EndColumn: s.EndCol,
	}
}

// String renders s as "file:line:column", matching the diagnostic format
// used by Diagnostics.AddError/AddWarning.
func (s SourceLocation) String() string {
	return formatLocation(s.File, s.StartLine, s.StartCol)
}

func formatLocation(file string, line, column int) string {
	return file + ":" + strconv.Itoa(line) + ":" + strconv.Itoa(column)
}
