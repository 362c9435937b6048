package errors

import (
	"fmt"
	"strings"
)

// FormatDiagnostic renders a single Diagnostic per the phase-specific
// external format.
func FormatDiagnostic(d *Diagnostic) string {
	var b strings.Builder

	switch d.Phase {
	case PhaseSemantic:
		fmt.Fprintf(&b, "Semantic Error: %s on line %d", d.Message, d.Line)
	case PhaseLex:
		fmt.Fprintf(&b, "Lex Error on line %d: %s", d.Line, d.Message)
	default: // PhaseSyntax
		fmt.Fprintf(&b, "Syntax Error on line %d: %s", d.Line, d.Message)
	}

	if d.Suggestion != "" {
		fmt.Fprintf(&b, "\n   -> Suggestion: %s", d.Suggestion)
	}

	return b.String()
}

// FormatList renders every diagnostic in the list, one per line (blank line
// separated), in the order given. Callers are expected to have already
// sorted by phase then by source position.
func FormatList(diagnostics List) string {
	if len(diagnostics) == 0 {
		return "no diagnostics"
	}

	var b strings.Builder
	for i, d := range diagnostics {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatDiagnostic(d))
		b.WriteString("\n")
	}
	return b.String()
}
