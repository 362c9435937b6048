package parser

import (
	"strings"
	"testing"

	"github.com/simplec-lang/simplec/internal/compiler/ast"
	"github.com/simplec-lang/simplec/internal/compiler/errors"
	"github.com/simplec-lang/simplec/internal/compiler/lexer"
)

func parseSource(t *testing.T, source string) (*ast.Program, errors.List) {
	t.Helper()

	lex := lexer.New(source)
	tokens, lexErrors := lex.ScanTokens()
	if len(lexErrors) > 0 {
		t.Fatalf("unexpected lexer errors: %v", lexErrors)
	}

	p := New(tokens)
	return p.Parse()
}

func messages(list errors.List) []string {
	out := make([]string, len(list))
	for i, d := range list {
		out[i] = d.Message
	}
	return out
}

func containsSubstring(list errors.List, substr string) bool {
	for _, d := range list {
		if strings.Contains(d.Message, substr) {
			return true
		}
	}
	return false
}

// TestParseCleanProgram: a well-formed program with declarations,
// assignment, and nested if/else produces no diagnostics.
func TestParseCleanProgram(t *testing.T) {
	source := `
int x = 1;
float y = 2.5;
if (x < 10) {
  x = x + 1;
} else {
  y = y * 2;
}
`
	program, diags := parseSource(t, source)
	if diags.HasErrors() {
		t.Fatalf("expected no diagnostics, got %v", messages(diags))
	}
	if len(program.Children) != 3 {
		t.Fatalf("expected 3 top-level statements, got %d", len(program.Children))
	}

	decl, ok := program.Children[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("expected first statement to be a VarDecl, got %T", program.Children[0])
	}
	if decl.TypeNode.Name != "int" || decl.VarNode.Name != "x" {
		t.Errorf("unexpected declaration shape: %+v", decl)
	}

	ifStmt, ok := program.Children[2].(*ast.If)
	if !ok {
		t.Fatalf("expected third statement to be an If, got %T", program.Children[2])
	}
	if ifStmt.ElseBlock == nil {
		t.Error("expected else branch to be parsed")
	}
	if _, ok := ifStmt.IfBlock.(*ast.Block); !ok {
		t.Errorf("expected if-body to be a Block, got %T", ifStmt.IfBlock)
	}
}

// TestParseMissingSemicolonAfterDeclaration: a missing declaration
// terminator is synthesized and a diagnostic with a suggestion is recorded,
// without losing the following statement.
func TestParseMissingSemicolonAfterDeclaration(t *testing.T) {
	source := `int x = 5
y = 10;`
	program, diags := parseSource(t, source)

	if len(diags) != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got %v", messages(diags))
	}
	if !strings.Contains(diags[0].Message, "Missing ';' after declaration") {
		t.Errorf("unexpected message: %q", diags[0].Message)
	}
	if diags[0].Suggestion == "" {
		t.Error("expected a suggestion on the missing-semicolon diagnostic")
	}

	if len(program.Children) != 2 {
		t.Fatalf("expected both statements to be recovered, got %d", len(program.Children))
	}
	if _, ok := program.Children[1].(*ast.Assign); !ok {
		t.Errorf("expected second statement to be an Assign, got %T", program.Children[1])
	}
}

// TestParseStraySemicolonAfterCondition: a stray ';' right after an
// if-condition is reported, deleted, and the next real statement becomes
// the if-body — what the programmer almost certainly intended.
func TestParseStraySemicolonAfterCondition(t *testing.T) {
	source := `if (x < 10); { x = 5; }`
	program, diags := parseSource(t, source)

	if !containsSubstring(diags, "Unexpected ';' after if-condition") {
		t.Fatalf("expected stray-semicolon diagnostic, got %v", messages(diags))
	}

	if len(program.Children) != 1 {
		t.Fatalf("expected a single If statement, got %d children", len(program.Children))
	}
	ifStmt, ok := program.Children[0].(*ast.If)
	if !ok {
		t.Fatalf("expected If, got %T", program.Children[0])
	}
	block, ok := ifStmt.IfBlock.(*ast.Block)
	if !ok {
		t.Fatalf("expected if-body to be the Block that follows the stray ';', got %T", ifStmt.IfBlock)
	}
	if len(block.Statements) != 1 {
		t.Errorf("expected the block to retain its one assignment, got %d statements", len(block.Statements))
	}
}

// TestParseDeeplyUnclosedBlocks: nested blocks left open at EOF are
// reported innermost-first, one diagnostic per syntactically opened brace.
func TestParseDeeplyUnclosedBlocks(t *testing.T) {
	source := `if (x < 1) { if (y < 2) { if (z < 3) { x = 1;`
	_, diags := parseSource(t, source)

	unclosed := 0
	for _, d := range diags {
		if strings.Contains(d.Message, "Missing '}' to close block") {
			unclosed++
		}
	}
	if unclosed != 3 {
		t.Fatalf("expected 3 unclosed-block diagnostics, got %d (%v)", unclosed, messages(diags))
	}
}

// TestParseUnexpectedStatementToken: a token that cannot start a statement
// is skipped and parsing resumes at the next token.
func TestParseUnexpectedStatementToken(t *testing.T) {
	source := `+ int x = 1;`
	program, diags := parseSource(t, source)

	if !containsSubstring(diags, "Unexpected token OP('+') at start of statement") {
		t.Fatalf("expected unexpected-token diagnostic, got %v", messages(diags))
	}
	if len(program.Children) != 1 {
		t.Fatalf("expected the declaration after the bad token to still be parsed, got %d children", len(program.Children))
	}
}

// TestParseExpressionSlotSubstitution: an operator with no left-hand
// operand yields a synthetic Number and a diagnostic, rather than aborting
// the whole statement.
func TestParseExpressionSlotSubstitution(t *testing.T) {
	source := `int x = * 5;`
	_, diags := parseSource(t, source)

	if !containsSubstring(diags, "Expected expression but encountered") {
		t.Fatalf("expected expression-expected diagnostic, got %v", messages(diags))
	}
}

// TestParseLeadingMinusIsNotUnary: SimpleC has no unary minus. A leading
// '-' cannot start an expression, so the empty slot is diagnosed and filled
// with a synthetic Number("0") without advancing; the '-' token is then
// picked up by the additive loop as ordinary subtraction.
func TestParseLeadingMinusIsNotUnary(t *testing.T) {
	source := `int x = -5;`
	program, diags := parseSource(t, source)

	if len(diags) != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got %v", messages(diags))
	}
	if !strings.Contains(diags[0].Message, "Expected expression but encountered OP('-')") {
		t.Errorf("unexpected message: %q", diags[0].Message)
	}

	decl := program.Children[0].(*ast.VarDecl)
	binop, ok := decl.AssignNode.(*ast.BinOp)
	if !ok || binop.Op != "-" {
		t.Fatalf("expected '-' BinOp initializer, got %#v", decl.AssignNode)
	}
	if left, ok := binop.Left.(*ast.Number); !ok || left.Value != "0" {
		t.Errorf("expected synthetic Number(0) left operand, got %#v", binop.Left)
	}
	if right, ok := binop.Right.(*ast.Number); !ok || right.Value != "5" {
		t.Errorf("expected Number(5) right operand, got %#v", binop.Right)
	}
}

// TestParseMissingParenAfterIfCondition exercises the if-condition ')'
// synthesis path distinctly from the ';' path, including its suggestion.
func TestParseMissingParenAfterIfCondition(t *testing.T) {
	source := `if (x < 10 { x = 1; }`
	program, diags := parseSource(t, source)

	if !containsSubstring(diags, "Missing ')' after if-condition") {
		t.Fatalf("expected missing-paren diagnostic, got %v", messages(diags))
	}

	if len(program.Children) != 1 {
		t.Fatalf("expected the if statement to still be recovered, got %d children", len(program.Children))
	}
	if _, ok := program.Children[0].(*ast.If); !ok {
		t.Errorf("expected If, got %T", program.Children[0])
	}
}

// TestParseMultiFaultProgram exercises several independent faults in one
// program (a missing declaration terminator and an unclosed block) and
// checks that each recovery fires, in source order.
func TestParseMultiFaultProgram(t *testing.T) {
	source := `int x = 5
y = 10;
if (x < y)
  x = y;
else {
  z = 1;
`
	_, diags := parseSource(t, source)

	wantInOrder := []string{
		"Missing ';' after declaration",
		"Missing '}' to close block",
	}

	idx := 0
	for _, d := range diags {
		if idx < len(wantInOrder) && strings.Contains(d.Message, wantInOrder[idx]) {
			idx++
		}
	}
	if idx != len(wantInOrder) {
		t.Fatalf("expected diagnostics %v in order, got %v", wantInOrder, messages(diags))
	}
}

// TestParseRelationalOperators covers the full relational operator set,
// including the two-character forms the lexer scans greedily.
func TestParseRelationalOperators(t *testing.T) {
	for _, op := range []string{"<", ">", "<=", ">=", "==", "!="} {
		source := `int x = 1 ` + op + ` 2;`
		program, diags := parseSource(t, source)
		if diags.HasErrors() {
			t.Fatalf("op %q: expected no diagnostics, got %v", op, messages(diags))
		}
		decl := program.Children[0].(*ast.VarDecl)
		binop, ok := decl.AssignNode.(*ast.BinOp)
		if !ok || binop.Op != op {
			t.Errorf("op %q: expected BinOp with that operator, got %#v", op, decl.AssignNode)
		}
	}
}

// TestParseEmptyProgram ensures an EOF-only token stream degrades to an
// empty, non-nil Program rather than panicking.
func TestParseEmptyProgram(t *testing.T) {
	program, diags := parseSource(t, "")
	if diags.HasErrors() {
		t.Fatalf("expected no diagnostics for an empty program, got %v", messages(diags))
	}
	if program == nil || len(program.Children) != 0 {
		t.Fatalf("expected an empty but non-nil Program, got %+v", program)
	}
}

// TestParseArithmeticPrecedence confirms the precedence chain builds BinOp
// nesting consistent with standard arithmetic precedence.
func TestParseArithmeticPrecedence(t *testing.T) {
	source := `int x = 1 + 2 * 3;`
	program, diags := parseSource(t, source)
	if diags.HasErrors() {
		t.Fatalf("expected no diagnostics, got %v", messages(diags))
	}

	decl := program.Children[0].(*ast.VarDecl)
	top, ok := decl.AssignNode.(*ast.BinOp)
	if !ok || top.Op != "+" {
		t.Fatalf("expected top-level '+' BinOp, got %#v", decl.AssignNode)
	}
	right, ok := top.Right.(*ast.BinOp)
	if !ok || right.Op != "*" {
		t.Fatalf("expected right operand to be a '*' BinOp, got %#v", top.Right)
	}
}
