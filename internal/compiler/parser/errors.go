package parser

import (
	"fmt"

	"github.com/simplec-lang/simplec/internal/compiler/lexer"
)

// suggestions maps each recoverable fault to its advisory text. New
// suggestions are added here, never by growing conditionals in the recovery
// control flow.
var suggestions = map[string]string{
	"missing-semicolon-declaration": "Did you forget a ';' at the end of the declaration?",
	"missing-paren-if-condition":    "Did you forget a ')' before the '{'?",
	"stray-semicolon-if-condition":  "Did you mean to delete this ';'?",
}

func suggestionFor(rule string) string {
	return suggestions[rule]
}

// renderObserved quotes a token for diagnostic text: "KEYWORD('if')" and
// "EOF('')" carry their type name, but a delimiter renders as a bare quoted
// lexeme ("'{'").
func renderObserved(tok lexer.Token) string {
	switch tok.Type {
	case lexer.TOKEN_EOF:
		return "EOF('')"
	case lexer.TOKEN_DELIM:
		return fmt.Sprintf("'%s'", tok.Lexeme)
	default:
		return fmt.Sprintf("%s('%s')", tok.Type.String(), tok.Lexeme)
	}
}
