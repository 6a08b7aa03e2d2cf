package compiler

import (
	"math/big"
	"unicode"
)

// keywords maps source text to its keyword TokenType.
var keywords = map[string]TokenType{
	"int":    INT,
	"printf": PRINT,
	"return": RETURN,
}

// LookupKeyword classifies a matched identifier: keywords get their own
// type, everything else is ID.
func LookupKeyword(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return ID
}

// punctuation maps single-character operators to their TokenType.
var punctuation = map[rune]TokenType{
	'+': PLUS,
	'-': MINUS,
	'*': TIMES,
	'/': DIVIDE,
	'(': LPAREN,
	')': RPAREN,
	'{': LBRACE,
	'}': RBRACE,
	';': SEMI,
	',': COMMA,
	'=': ASSIGN,
}

// Lexer holds all mutable state for a single scanning pass over src.
// Tokens are produced one at a time by Next.
type Lexer struct {
	src    []rune
	pos    int // index of the next rune to consume
	line   int // current 1-based source line
	report func(error)
}

// NewLexer returns a Lexer positioned at the start of src. Illegal
// characters are passed to report, which may be nil.
func NewLexer(src string, report func(error)) *Lexer {
	if report == nil {
		report = func(error) {}
	}
	return &Lexer{src: []rune(src), line: 1, report: report}
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isDigit matches any Unicode decimal digit, not only ASCII ones.
func isDigit(r rune) bool {
	return unicode.IsDigit(r)
}

// digitValue returns the value of a decimal digit. Decimal digits come in
// contiguous runs that start at a zero, so the value is the distance from
// the start of the run, modulo ten.
func digitValue(r rune) int {
	if isASCIIDigit(r) {
		return int(r - '0')
	}
	start := r
	for unicode.IsDigit(start - 1) {
		start--
	}
	return int(r-start) % 10
}

// scanIdent collects an identifier or keyword. The first character must
// still be at l.peek().
func (l *Lexer) scanIdent() Token {
	start := l.pos
	for l.pos < len(l.src) && (isIdentStart(l.peek()) || isASCIIDigit(l.peek())) {
		l.pos++
	}
	lexeme := string(l.src[start:l.pos])
	return Token{Type: LookupKeyword(lexeme), Lexeme: lexeme, Line: l.line}
}

// scanNumber collects a run of decimal digits. The value is read digit by
// digit so that non-ASCII digits count with their numeric value.
func (l *Lexer) scanNumber() Token {
	start := l.pos
	n, ten := new(big.Int), big.NewInt(10)
	for l.pos < len(l.src) && isDigit(l.peek()) {
		n.Mul(n, ten)
		n.Add(n, big.NewInt(int64(digitValue(l.peek()))))
		l.pos++
	}
	lexeme := string(l.src[start:l.pos])
	return Token{Type: NUMBER, Lexeme: lexeme, Number: n, Line: l.line}
}

// Next returns the next token. Once the input is exhausted it keeps
// returning EOF.
func (l *Lexer) Next() Token {
	for l.pos < len(l.src) {
		ch := l.peek()
		switch {
		case ch == ' ' || ch == '\t':
			l.pos++
			continue
		case ch == '\n':
			l.pos++
			l.line++
			continue
		case isIdentStart(ch):
			return l.scanIdent()
		case isDigit(ch):
			return l.scanNumber()
		}

		l.pos++ // consume the character before the lookup
		if tt, ok := punctuation[ch]; ok {
			return Token{Type: tt, Lexeme: string(ch), Line: l.line}
		}
		l.report(&LexError{Char: ch, Line: l.line})
	}
	return Token{Type: EOF, Lexeme: "", Line: l.line}
}

// Lex tokenises src and returns all tokens including the final EOF token,
// along with any illegal-character diagnostics.
func Lex(src string) ([]Token, []error) {
	var errs []error
	l := NewLexer(src, func(err error) { errs = append(errs, err) })
	var tokens []Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, errs
		}
	}
}
