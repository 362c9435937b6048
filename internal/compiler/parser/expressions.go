package parser

import (
	"github.com/simplec-lang/simplec/internal/compiler/ast"
	"github.com/simplec-lang/simplec/internal/compiler/errors"
	"github.com/simplec-lang/simplec/internal/compiler/lexer"
)

// Expression parsing implements SimpleC's precedence chain:
//
//	expr  -> rel
//	rel   -> add (('<' | '>' | '<=' | '>=' | '==' | '!=') add)*
//	add   -> mul (('+' | '-') mul)*
//	mul   -> primary (('*' | '/') primary)*
//	primary -> NUMBER | ID | '(' expr ')'
//
// Every level is left-associative and flattens into ast.BinOp.

var relOps = map[string]bool{"<": true, ">": true, "<=": true, ">=": true, "==": true, "!=": true}
var addOps = map[string]bool{"+": true, "-": true}
var mulOps = map[string]bool{"*": true, "/": true}

func (p *Parser) parseExpr() ast.ExprNode {
	return p.parseRel()
}

func (p *Parser) parseRel() ast.ExprNode {
	left := p.parseAdd()
	for p.peek().Type == lexer.TOKEN_OP && relOps[p.peek().Lexeme] {
		opTok := p.advance()
		right := p.parseAdd()
		left = &ast.BinOp{Op: opTok.Lexeme, Left: left, Right: right, Loc: ast.TokenLocation(opTok)}
	}
	return left
}

func (p *Parser) parseAdd() ast.ExprNode {
	left := p.parseMul()
	for p.peek().Type == lexer.TOKEN_OP && addOps[p.peek().Lexeme] {
		opTok := p.advance()
		right := p.parseMul()
		left = &ast.BinOp{Op: opTok.Lexeme, Left: left, Right: right, Loc: ast.TokenLocation(opTok)}
	}
	return left
}

func (p *Parser) parseMul() ast.ExprNode {
	left := p.parsePrimary()
	for p.peek().Type == lexer.TOKEN_OP && mulOps[p.peek().Lexeme] {
		opTok := p.advance()
		right := p.parsePrimary()
		left = &ast.BinOp{Op: opTok.Lexeme, Left: left, Right: right, Loc: ast.TokenLocation(opTok)}
	}
	return left
}

// parsePrimary substitutes for a broken expression slot: a token that
// cannot start a primary expression yields a diagnostic and a synthetic
// Number("0") in its place, without advancing the cursor — the enclosing
// production's own terminator check is left to decide whether to
// resynchronize.
func (p *Parser) parsePrimary() ast.ExprNode {
	tok := p.peek()

	switch {
	case tok.Type == lexer.TOKEN_NUMBER:
		p.advance()
		return &ast.Number{Value: tok.Lexeme, Loc: ast.TokenLocation(tok)}
	case tok.Type == lexer.TOKEN_ID:
		p.advance()
		return &ast.Variable{Name: tok.Lexeme, Loc: ast.TokenLocation(tok)}
	case tok.Type == lexer.TOKEN_DELIM && tok.Lexeme == "(":
		p.advance()
		inner := p.parseExpr()
		if p.checkDelim(")") {
			p.advance()
		} else {
			closeTok := p.peek()
			p.emit(errors.NewMissingTerminator(ast.TokenLocation(closeTok), ")", "parenthesized expression", renderObserved(closeTok)))
		}
		return inner
	default:
		p.emit(errors.NewExpressionExpected(ast.TokenLocation(tok), renderObserved(tok)))
		return &ast.Number{Value: "0", Loc: ast.TokenLocation(tok)}
	}
}
