package errors

import (
	"strings"
	"testing"

	"github.com/simplec-lang/simplec/internal/compiler/ast"
)

func TestDiagnosticFormatSyntax(t *testing.T) {
	d := NewMissingTerminator(ast.SourceLocation{Line: 5}, ";", "declaration", "KEYWORD('if')").
		WithSuggestion("Did you forget a ';' …?")

	got := d.Format()
	want := "Syntax Error on line 5: Missing ';' after declaration. Encountered KEYWORD('if')\n   -> Suggestion: Did you forget a ';' …?"
	if got != want {
		t.Errorf("Format() =\n%q\nwant\n%q", got, want)
	}
}

func TestDiagnosticFormatSyntaxNoSuggestion(t *testing.T) {
	d := NewUnexpectedStatementToken(ast.SourceLocation{Line: 3}, "DELIM('}')")
	got := d.Format()
	want := "Syntax Error on line 3: Unexpected token DELIM('}') at start of statement"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestDiagnosticFormatSemantic(t *testing.T) {
	d := NewNotDeclared(ast.SourceLocation{Line: 7}, "y")
	got := d.Format()
	want := "Semantic Error: Variable 'y' not declared on line 7"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestDiagnosticFormatRedeclared(t *testing.T) {
	d := NewRedeclared(ast.SourceLocation{Line: 2}, "x")
	got := d.Format()
	want := "Semantic Error: Variable 'x' redeclared on line 2"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestDiagnosticFormatLex(t *testing.T) {
	d := NewAtLine(PhaseLex, 1, "Unexpected character '@'")
	got := d.Format()
	want := "Lex Error on line 1: Unexpected character '@'"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestDiagnosticErrorInterface(t *testing.T) {
	var err error = NewUnclosedBlock(ast.SourceLocation{Line: 9})
	if err.Error() != "Syntax Error on line 9: Missing '}' to close block. Encountered EOF('')" {
		t.Errorf("unexpected Error() output: %q", err.Error())
	}
}

func TestListHasErrors(t *testing.T) {
	var empty List
	if empty.HasErrors() {
		t.Error("empty list should report HasErrors() == false")
	}

	list := List{NewNotDeclared(ast.SourceLocation{Line: 1}, "z")}
	if !list.HasErrors() {
		t.Error("non-empty list should report HasErrors() == true")
	}
}

func TestListByPhase(t *testing.T) {
	list := List{
		NewAtLine(PhaseLex, 1, "Unexpected character '@'"),
		NewUnexpectedStatementToken(ast.SourceLocation{Line: 2}, "OP('+')"),
		NewNotDeclared(ast.SourceLocation{Line: 3}, "q"),
		NewUnclosedBlock(ast.SourceLocation{Line: 4}),
	}

	syntax := list.ByPhase(PhaseSyntax)
	if len(syntax) != 2 {
		t.Fatalf("expected 2 syntax diagnostics, got %d", len(syntax))
	}
	for _, d := range syntax {
		if d.Phase != PhaseSyntax {
			t.Errorf("ByPhase(PhaseSyntax) returned a %s diagnostic", d.Phase)
		}
	}

	semantic := list.ByPhase(PhaseSemantic)
	if len(semantic) != 1 {
		t.Fatalf("expected 1 semantic diagnostic, got %d", len(semantic))
	}
}

func TestFormatListOrdering(t *testing.T) {
	list := List{
		NewUnexpectedStatementToken(ast.SourceLocation{Line: 1}, "OP('+')"),
		NewNotDeclared(ast.SourceLocation{Line: 2}, "q"),
	}

	out := FormatList(list)
	if out == "" {
		t.Fatal("expected non-empty rendering")
	}

	syntaxAt := strings.Index(out, "Syntax Error on line 1")
	semanticAt := strings.Index(out, "Semantic Error: Variable 'q' not declared on line 2")
	if syntaxAt < 0 || semanticAt < 0 || syntaxAt > semanticAt {
		t.Errorf("expected diagnostics rendered in list order, got %q", out)
	}
}

func TestFormatListEmpty(t *testing.T) {
	if FormatList(nil) != "no diagnostics" {
		t.Errorf("expected sentinel text for empty list, got %q", FormatList(nil))
	}
}
