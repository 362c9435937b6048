package lexer

import "fmt"

// TokenType represents the kind of a SimpleC token.
type TokenType int

const (
	// TOKEN_EOF marks the end of the token stream. It is never consumed
	// destructively — all lookahead past EOF returns EOF.
	TOKEN_EOF TokenType = iota
	// TOKEN_ERROR represents a lexical error encountered during scanning.
	TOKEN_ERROR

	// TOKEN_KEYWORD covers the four reserved words: int, float, if, else.
	TOKEN_KEYWORD
	// TOKEN_ID covers every identifier-shaped lexeme that is not a keyword.
	TOKEN_ID
	// TOKEN_NUMBER covers both integer and float literals.
	TOKEN_NUMBER
	// TOKEN_OP covers arithmetic, relational and assignment operators.
	TOKEN_OP
	// TOKEN_DELIM covers ( ) { } ; ,
	TOKEN_DELIM
	// TOKEN_STRING is reserved for the data model's STRING kind. SimpleC's
	// grammar has no string literals and the lexer never produces it: a '"'
	// is reported as an unexpected character.
	TOKEN_STRING
)

// TokenTypeNames maps token types to their rendered KIND name, used by the
// `Token(<KIND>, '<lexeme>', L<line>)` debug format.
var TokenTypeNames = map[TokenType]string{
	TOKEN_EOF:     "EOF",
	TOKEN_ERROR:   "ERROR",
	TOKEN_KEYWORD: "KEYWORD",
	TOKEN_ID:      "ID",
	TOKEN_NUMBER:  "NUMBER",
	TOKEN_OP:      "OP",
	TOKEN_DELIM:   "DELIM",
	TOKEN_STRING:  "STRING",
}

// String returns the KIND name of a TokenType.
func (t TokenType) String() string {
	if name, ok := TokenTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", t)
}

// Token represents a single lexical token in SimpleC source code. Tokens are
// immutable once created by the lexer.
type Token struct {
	Type   TokenType // The kind of the token
	Lexeme string    // The raw source text of the token
	Line   int       // Line number (1-indexed)
}

// String renders the token in the debug format:
// Token(<KIND>, '<lexeme>', L<line>)
func (t Token) String() string {
	return fmt.Sprintf("Token(%s, '%s', L%d)", t.Type.String(), t.Lexeme, t.Line)
}

// IsKeyword reports whether the token is the named keyword, e.g.
// tok.IsKeyword("if").
func (t Token) IsKeyword(name string) bool {
	return t.Type == TOKEN_KEYWORD && t.Lexeme == name
}

// Keywords maps SimpleC's four reserved words to TOKEN_KEYWORD. Any
// identifier-shaped lexeme not present here is classified TOKEN_ID.
var Keywords = map[string]TokenType{
	"int":   TOKEN_KEYWORD,
	"float": TOKEN_KEYWORD,
	"if":    TOKEN_KEYWORD,
	"else":  TOKEN_KEYWORD,
}

// LexError represents an error encountered during lexical analysis.
type LexError struct {
	Message string // Error message
	Line    int    // Line number where the error occurred
	Lexeme  string // The problematic text
}

// Error implements the error interface.
func (e LexError) Error() string {
	return fmt.Sprintf("Lexical error on line %d: %s (near '%s')", e.Line, e.Message, e.Lexeme)
}
