// Package parser implements SimpleC's recursive-descent parser with
// localized panic-mode recovery, synthetic-token insertion, and follow-set
// resynchronization, so multiple independent faults are diagnosed in one
// pass over the token stream.
package parser

import (
	"github.com/simplec-lang/simplec/internal/compiler/ast"
	"github.com/simplec-lang/simplec/internal/compiler/errors"
	"github.com/simplec-lang/simplec/internal/compiler/lexer"
)

// Parser transforms a token stream into an AST. It never aborts: every
// structural failure degrades to either a synthesized token, a skipped
// token (panic mode), or an ast.ErrorNode, with a Diagnostic recorded for
// each recovery decision.
type Parser struct {
	tokens  []lexer.Token
	current int
	diags   errors.List
}

// New creates a Parser over a token stream. tokens must end in exactly one
// EOF token, per the lexer's contract.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse builds the Program root and returns the syntax diagnostics
// accumulated along the way. It never fails — at minimum it returns an
// empty Program when the token stream is just EOF.
func (p *Parser) Parse() (*ast.Program, errors.List) {
	loc := ast.SourceLocation{Line: 1}
	if len(p.tokens) > 0 {
		loc.Line = p.tokens[0].Line
	}
	program := &ast.Program{Loc: loc}

	for !p.isAtEnd() {
		if stmt := p.parseStatement(); stmt != nil {
			program.Children = append(program.Children, stmt)
		}
	}

	return program, p.diags
}

// --- cursor primitives ---

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.TOKEN_EOF
}

// advance returns the current token and moves the cursor forward, unless
// already at EOF — EOF is never consumed destructively.
func (p *Parser) advance() lexer.Token {
	tok := p.peek()
	if !p.isAtEnd() {
		p.current++
	}
	return tok
}

func (p *Parser) checkDelim(lexeme string) bool {
	t := p.peek()
	return t.Type == lexer.TOKEN_DELIM && t.Lexeme == lexeme
}

func (p *Parser) checkOp(lexeme string) bool {
	t := p.peek()
	return t.Type == lexer.TOKEN_OP && t.Lexeme == lexeme
}

func (p *Parser) checkKeyword(name string) bool {
	return p.peek().IsKeyword(name)
}

func (p *Parser) checkType() bool {
	return p.checkKeyword("int") || p.checkKeyword("float")
}

func (p *Parser) checkID() bool {
	return p.peek().Type == lexer.TOKEN_ID
}

func (p *Parser) emit(d *errors.Diagnostic) {
	p.diags = append(p.diags, d)
}

// --- follow sets ---

// inStmtFollow reports whether the current token legitimately follows a
// declaration, assignment, or expression-statement — implying a missing ';'
// can be synthesized rather than treated as a hard error.
func (p *Parser) inStmtFollow() bool {
	t := p.peek()
	switch {
	case t.IsKeyword("if"), t.IsKeyword("int"), t.IsKeyword("float"):
		return true
	case t.Type == lexer.TOKEN_ID:
		return true
	case t.Type == lexer.TOKEN_DELIM && t.Lexeme == "}":
		return true
	case t.Type == lexer.TOKEN_EOF:
		return true
	}
	return false
}

// inIfCondFollow reports whether the current token legitimately follows an
// if-condition — implying a missing ')' can be synthesized.
func (p *Parser) inIfCondFollow() bool {
	t := p.peek()
	switch {
	case t.Type == lexer.TOKEN_DELIM && t.Lexeme == "{":
		return true
	case t.IsKeyword("if"), t.IsKeyword("int"), t.IsKeyword("float"):
		return true
	case t.Type == lexer.TOKEN_ID:
		return true
	}
	return false
}

// --- statement dispatch ---

// parseStatement dispatches on the current token's shape. When no
// production matches, it panics locally: it emits a diagnostic, advances
// exactly one token, and returns nil — the caller's loop retries from the
// next token, guaranteeing at least one token of progress between
// successive diagnostics at one site.
func (p *Parser) parseStatement() ast.StmtNode {
	switch {
	case p.checkType():
		return p.parseVarDecl()
	case p.checkKeyword("if"):
		return p.parseIfStmt()
	case p.checkDelim("{"):
		return p.parseBlock()
	case p.checkID():
		return p.parseAssignStmt()
	default:
		tok := p.peek()
		p.emit(errors.NewUnexpectedStatementToken(ast.TokenLocation(tok), renderObserved(tok)))
		p.advance()
		return nil
	}
}

// parseRequiredStatement parses exactly one statement for a slot the
// grammar requires to be non-empty (an if- or else-body). It retries past
// statement-level panics (each of which consumes one token) until a real
// statement is produced or the token stream is exhausted.
func (p *Parser) parseRequiredStatement() ast.StmtNode {
	for {
		if p.isAtEnd() {
			return &ast.ErrorNode{Loc: ast.TokenLocation(p.peek())}
		}
		if stmt := p.parseStatement(); stmt != nil {
			return stmt
		}
	}
}

// parseVarDecl parses `type ID ('=' expr)? ';'`.
func (p *Parser) parseVarDecl() *ast.VarDecl {
	typeTok := p.advance()
	typeNode := &ast.TypeNode{Name: typeTok.Lexeme, Loc: ast.TokenLocation(typeTok)}
	decl := &ast.VarDecl{TypeNode: typeNode, Loc: ast.TokenLocation(typeTok)}

	if p.checkID() {
		varTok := p.advance()
		decl.VarNode = &ast.Variable{Name: varTok.Lexeme, Loc: ast.TokenLocation(varTok)}
	} else {
		tok := p.peek()
		p.emit(errors.NewExpressionExpected(ast.TokenLocation(tok), renderObserved(tok)))
		decl.VarNode = &ast.Variable{Name: "<error>", Loc: ast.TokenLocation(tok)}
	}

	if p.checkOp("=") {
		p.advance()
		decl.AssignNode = p.parseExpr()
	}

	p.expectSemicolon("declaration", true, suggestionFor("missing-semicolon-declaration"))
	return decl
}

// parseIfStmt parses `'if' '(' expr ')' statement ('else' statement)?`,
// including the missing-')' synthesis and stray-';' deletion: a reported
// ';' after the condition is consumed and the statement that follows it
// becomes the if-body.
func (p *Parser) parseIfStmt() *ast.If {
	ifTok := p.advance()
	node := &ast.If{Loc: ast.TokenLocation(ifTok)}

	if p.checkDelim("(") {
		p.advance()
	} else {
		// Synthesize the '(' and let the current token start the condition.
		tok := p.peek()
		p.emit(errors.NewMissingTerminator(ast.TokenLocation(tok), "(", "'if'", renderObserved(tok)))
	}

	node.Condition = p.parseExpr()

	if p.checkDelim(")") {
		p.advance()
	} else {
		tok := p.peek()
		diag := errors.NewMissingTerminator(ast.TokenLocation(tok), ")", "if-condition", renderObserved(tok)).
			WithSuggestion(suggestionFor("missing-paren-if-condition"))
		p.emit(diag)
		if !p.inIfCondFollow() && !p.isAtEnd() {
			p.advance()
		}
		// else: synthesize — the '{' (or similar) stays put as the body start.
	}

	if p.checkDelim(";") {
		semiTok := p.peek()
		p.emit(errors.NewUnexpectedSemicolonAfterCondition(ast.TokenLocation(semiTok)))
		p.advance()
	}

	node.IfBlock = p.parseRequiredStatement()

	if p.checkKeyword("else") {
		p.advance()
		node.ElseBlock = p.parseRequiredStatement()
	}

	return node
}

// parseBlock parses `'{' statement* '}'`. Reaching EOF before the matching
// '}' emits one "Missing '}'" diagnostic per syntactically-opened brace —
// each enclosing parseBlock frame notices it too ended at EOF and emits its
// own, so nested unclosed blocks are reported innermost-first for free as
// the recursion unwinds.
func (p *Parser) parseBlock() *ast.Block {
	openTok := p.advance()
	block := &ast.Block{Loc: ast.TokenLocation(openTok)}

	for !p.isAtEnd() && !p.checkDelim("}") {
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
	}

	if p.checkDelim("}") {
		p.advance()
	} else {
		tok := p.peek()
		p.emit(errors.NewUnclosedBlock(ast.TokenLocation(tok)))
	}

	return block
}

// parseAssignStmt parses `ID '=' expr ';'`.
func (p *Parser) parseAssignStmt() ast.StmtNode {
	varTok := p.advance()
	loc := ast.TokenLocation(varTok)
	left := &ast.Variable{Name: varTok.Lexeme, Loc: loc}

	if !p.checkOp("=") {
		tok := p.peek()
		p.emit(errors.NewMissingTerminator(ast.TokenLocation(tok), "=", "assignment target", renderObserved(tok)))
		for !p.isAtEnd() && !p.checkDelim(";") && !p.checkDelim("}") {
			p.advance()
		}
		if p.checkDelim(";") {
			p.advance()
		}
		return &ast.Assign{Op: "=", Left: left, Right: &ast.Number{Value: "0", Loc: loc}, Loc: loc}
	}
	p.advance()

	right := p.parseExpr()
	assign := &ast.Assign{Op: "=", Left: left, Right: right, Loc: loc}

	p.expectSemicolon("expression statement", false, "")
	return assign
}

// expectSemicolon handles the ';' terminator shared by declarations and
// expression statements. missingWording selects between the two phrasings:
// "Missing ';' after declaration..." (with a suggestion) versus
// "Expected ';' after expression statement..." (without one).
func (p *Parser) expectSemicolon(context string, missingWording bool, suggestion string) {
	if p.checkDelim(";") {
		p.advance()
		return
	}

	tok := p.peek()
	loc := ast.TokenLocation(tok)
	observed := renderObserved(tok)

	var diag *errors.Diagnostic
	if missingWording {
		diag = errors.NewMissingTerminator(loc, ";", context, observed)
		if suggestion != "" {
			diag = diag.WithSuggestion(suggestion)
		}
	} else {
		diag = errors.NewExpectedTerminator(loc, ";", context, observed)
	}
	p.emit(diag)

	if p.inStmtFollow() {
		// Synthesize — leave the cursor on the follow-set token.
		return
	}

	// Panic-skip to a statement boundary so one missing ';' doesn't cascade
	// into a diagnostic per trailing token.
	for !p.isAtEnd() && !p.checkDelim(";") && !p.checkDelim("}") && !p.checkDelim(")") {
		p.advance()
	}
	if p.checkDelim(";") {
		p.advance()
	}
}
