package compiler

import (
	"fmt"
	"math/big"
)

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	// Literals
	ID     // variable / function name
	NUMBER // decimal integer literal

	// Arithmetic operators
	PLUS   // +
	MINUS  // -
	TIMES  // *
	DIVIDE // /

	// Paired delimiters
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }

	// Punctuation
	SEMI   // ;
	COMMA  // ,
	ASSIGN // =

	// Keywords
	PRINT  // "printf"
	INT    // "int"
	RETURN // "return"

	numTokenTypes
)

var tokenNames = [...]string{
	EOF:    "EOF",
	ID:     "ID",
	NUMBER: "NUMBER",
	PLUS:   "PLUS",
	MINUS:  "MINUS",
	TIMES:  "TIMES",
	DIVIDE: "DIVIDE",
	LPAREN: "LPAREN",
	RPAREN: "RPAREN",
	LBRACE: "LBRACE",
	RBRACE: "RBRACE",
	SEMI:   "SEMI",
	COMMA:  "COMMA",
	ASSIGN: "ASSIGN",
	PRINT:  "PRINT",
	INT:    "INT",
	RETURN: "RETURN",
}

// every token type must have a name
var _ [len(tokenNames) - int(numTokenTypes)]struct{}
var _ [int(numTokenTypes) - len(tokenNames)]struct{}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type   TokenType
	Lexeme string   // the exact source text that was matched
	Number *big.Int // value of a NUMBER token, nil otherwise
	Line   int      // 1-based source line
}

// Text is the token as it appears in TAC and diagnostics. Numbers are
// written in canonical decimal, so "007" reads as "7".
func (t Token) Text() string {
	if t.Type == NUMBER && t.Number != nil {
		return t.Number.String()
	}
	return t.Lexeme
}

func (t Token) String() string {
	return fmt.Sprintf("%-10s %-14q  line %d", t.Type, t.Lexeme, t.Line)
}
