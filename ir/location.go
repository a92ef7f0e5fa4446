package ir

import "fmt"

// Location carries source-code position information attached to a Value
// for diagnostics. EndLine and EndColumn are optional: a zero value means
// "unknown", matching the distinction the frontend layer makes between a
// point location and a span.
type Location struct {
	File      string
	Line      int
	Column    int
	EndLine   int
	EndColumn int
}

// HasEnd reports whether the location carries an end position.
func (l Location) HasEnd() bool {
	return l.EndLine != 0 || l.EndColumn != 0
}

// String formats the location as "file:line:column", the diagnostic
// format used throughout the frontend package.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}
