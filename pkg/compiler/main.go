// Package compiler provides the lexer and table-driven shift-reduce parser
// of a small C-like language, translating it straight to three-address code.
//
// Pipeline: source → Lexer (on demand) → Parser (SLR(1) automaton) → Emitter
//
// There is no syntax tree: each reduction calls the matching Emitter method,
// which appends instructions and returns the name holding the result.
package compiler

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'gotac.compiler'.
func tracer() tracing.Trace {
	return tracing.Select("gotac.compiler")
}
