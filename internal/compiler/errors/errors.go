// Package errors provides the structured Diagnostic type shared by the
// lexer, parser, and semantic analyzer, plus its terminal rendering.
package errors

import (
	"github.com/simplec-lang/simplec/internal/compiler/ast"
)

// Phase identifies which stage of the pipeline produced a Diagnostic.
type Phase string

const (
	// PhaseLex marks a diagnostic raised while scanning tokens.
	PhaseLex Phase = "Lex"
	// PhaseSyntax marks a diagnostic raised by the parser.
	PhaseSyntax Phase = "Syntax"
	// PhaseSemantic marks a diagnostic raised while walking the AST.
	PhaseSemantic Phase = "Semantic"
)

// Diagnostic represents one structured compiler fault: phase, line, message,
// and an optional advisory suggestion. Diagnostics are never deduplicated by
// the collector — each phase is responsible for not emitting the same fault
// twice at one source position.
type Diagnostic struct {
	Phase      Phase  `json:"phase"`
	Line       int    `json:"line"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Error implements the error interface so a Diagnostic can be returned or
// wrapped like any other Go error.
func (d *Diagnostic) Error() string {
	return d.Format()
}

// Format renders the diagnostic in the external rendering format:
//
//	Syntax:   "Syntax Error on line <L>: <message>" [+ "\n   -> Suggestion: <suggestion>"]
//	Semantic: "Semantic Error: <message> on line <L>"
//	Lex:      "Lex Error on line <L>: <message>"
func (d *Diagnostic) Format() string {
	return FormatDiagnostic(d)
}

// WithSuggestion attaches an advisory suggestion and returns the receiver,
// for fluent construction at the call site.
func (d *Diagnostic) WithSuggestion(suggestion string) *Diagnostic {
	d.Suggestion = suggestion
	return d
}

// New builds a Diagnostic for the given phase, source location, and message.
func New(phase Phase, loc ast.SourceLocation, message string) *Diagnostic {
	return &Diagnostic{
		Phase:   phase,
		Line:    loc.Line,
		Message: message,
	}
}

// NewAtLine builds a Diagnostic directly from a line number, for call sites
// (lexer errors, synthesized terminators) that don't carry an ast.SourceLocation.
func NewAtLine(phase Phase, line int, message string) *Diagnostic {
	return &Diagnostic{
		Phase:   phase,
		Line:    line,
		Message: message,
	}
}

// List is an ordered collection of diagnostics.
type List []*Diagnostic

// HasErrors reports whether the list is non-empty. SimpleC has no warning or
// info severities — every Diagnostic is a fault.
func (l List) HasErrors() bool {
	return len(l) > 0
}

// ByPhase returns the diagnostics matching the given phase, preserving
// emission order.
func (l List) ByPhase(phase Phase) List {
	var out List
	for _, d := range l {
		if d.Phase == phase {
			out = append(out, d)
		}
	}
	return out
}
