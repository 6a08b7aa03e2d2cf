package compiler

import "fmt"

// LexError reports a character the lexer does not recognise. The character
// is dropped and lexing continues.
type LexError struct {
	Char rune
	Line int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("Illegal character '%c'", e.Char)
}

// SyntaxError reports the token at which the parser gave up. Nothing is
// emitted after it.
type SyntaxError struct {
	Token Token
	AtEOF bool
}

func (e *SyntaxError) Error() string {
	if e.AtEOF {
		return "Syntax error at EOF"
	}
	return fmt.Sprintf("Syntax error at '%s'", e.Token.Text())
}

// Line returns the source line of the offending token.
func (e *SyntaxError) Line() int { return e.Token.Line }

// DiagnosticLine returns the source line a diagnostic refers to, or 0 if it
// carries none.
func DiagnosticLine(err error) int {
	switch e := err.(type) {
	case *LexError:
		return e.Line
	case *SyntaxError:
		return e.Line()
	}
	return 0
}
