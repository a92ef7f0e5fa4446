package frontend

// Diagnostics accumulates the error and warning strings a parser,
// visitor, or frontend driver produces while processing source. It is
// embedded by ASTVisitorBase, ParserBase, and FrontendBase rather than
// duplicated three times, the way the Python frontends module does it.
type Diagnostics struct {
	errors   []string
	warnings []string
}

// AddError records message, prefixed with "file:line:column: " when loc
// is non-nil.
func (d *Diagnostics) AddError(message string, loc *SourceLocation) {
	d.errors = append(d.errors, formatDiagnostic(message, loc))
}

// AddWarning records message the same way AddError does.
func (d *Diagnostics) AddWarning(message string, loc *SourceLocation) {
	d.warnings = append(d.warnings, formatDiagnostic(message, loc))
}

// Errors returns the accumulated error messages in the order recorded.
func (d *Diagnostics) Errors() []string {
	out := make([]string, len(d.errors))
	copy(out, d.errors)
	return out
}

// Warnings returns the accumulated warning messages in the order
// recorded.
func (d *Diagnostics) Warnings() []string {
	out := make([]string, len(d.warnings))
	copy(out, d.warnings)
	return out
}

func formatDiagnostic(message string, loc *SourceLocation) string {
	if loc == nil {
		return message
	}
	return loc.String() + ": " + message
}
