package errors

import (
	"fmt"

	"github.com/simplec-lang/simplec/internal/compiler/ast"
)

// NewMissingTerminator builds the terminator-insertion diagnostic: a
// specific closing token (';', ')', '}') was expected but the current token
// was something else.
func NewMissingTerminator(loc ast.SourceLocation, terminator, context, observed string) *Diagnostic {
	return New(
		PhaseSyntax,
		loc,
		fmt.Sprintf("Missing '%s' after %s. Encountered %s", terminator, context, observed),
	)
}

// NewExpectedTerminator builds the expression-statement variant of the
// missing-terminator diagnostic. Unlike NewMissingTerminator, it never
// carries a suggestion: the declaration and if-condition terminators get
// advisory suggestions but the bare expression-statement semicolon does not.
func NewExpectedTerminator(loc ast.SourceLocation, terminator, context, observed string) *Diagnostic {
	return New(
		PhaseSyntax,
		loc,
		fmt.Sprintf("Expected '%s' after %s. Encountered %s", terminator, context, observed),
	)
}

// NewUnclosedBlock builds the terminal "EOF while blocks remain open"
// diagnostic, emitted once per syntactically-opened '{' lacking a match.
func NewUnclosedBlock(loc ast.SourceLocation) *Diagnostic {
	return New(PhaseSyntax, loc, "Missing '}' to close block. Encountered EOF('')")
}

// NewUnexpectedSemicolonAfterCondition builds the diagnostic for a stray
// ';' immediately after an if-condition.
func NewUnexpectedSemicolonAfterCondition(loc ast.SourceLocation) *Diagnostic {
	return New(
		PhaseSyntax,
		loc,
		"Unexpected ';' after if-condition. This creates an empty 'if' statement.",
	).WithSuggestion("Did you mean to delete this ';'?")
}

// NewUnexpectedStatementToken builds the statement-level panic-mode
// diagnostic: the current token cannot start any statement production.
func NewUnexpectedStatementToken(loc ast.SourceLocation, observed string) *Diagnostic {
	return New(
		PhaseSyntax,
		loc,
		fmt.Sprintf("Unexpected token %s at start of statement", observed),
	)
}

// NewExpressionExpected builds the diagnostic for a token that cannot
// start an expression.
func NewExpressionExpected(loc ast.SourceLocation, observed string) *Diagnostic {
	return New(
		PhaseSyntax,
		loc,
		fmt.Sprintf("Expected expression but encountered %s", observed),
	)
}
