package errors

import (
	"fmt"

	"github.com/simplec-lang/simplec/internal/compiler/ast"
)

// NewRedeclared builds the semantic diagnostic for a variable declared twice
// in the same scope. FormatDiagnostic appends "on line <L>", so the message
// here carries only the fact: "Variable '<name>' redeclared".
func NewRedeclared(loc ast.SourceLocation, name string) *Diagnostic {
	return New(
		PhaseSemantic,
		loc,
		fmt.Sprintf("Variable '%s' redeclared", name),
	)
}

// NewNotDeclared builds the semantic diagnostic for a reference to (or
// assignment target naming) an identifier with no binding in any enclosing
// scope. FormatDiagnostic appends "on line <L>", so the message here carries
// only the fact: "Variable '<name>' not declared".
func NewNotDeclared(loc ast.SourceLocation, name string) *Diagnostic {
	return New(
		PhaseSemantic,
		loc,
		fmt.Sprintf("Variable '%s' not declared", name),
	)
}
