package compiler

import "gotac/pkg/tac"

// Emitter receives the parser's reductions. Methods that compute a value
// return the name holding it, which becomes the attribute of the reduced
// expression. *tac.Generator is the production implementation.
type Emitter interface {
	// Mark returns the current end of the instruction log.
	Mark() int
	Function(name string, params []string, body tac.Span)
	Declare(name, place string)
	DeclareZero(name string)
	Assign(name, place string)
	Print(place string)
	Return(place string)
	Binary(op, left, right string) string
	Number(literal string) string
	Call(name string, args []string) string
}

var _ Emitter = (*tac.Generator)(nil)
