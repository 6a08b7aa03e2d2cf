// Package tac holds the three-address code produced by the compiler front
// end: typed instructions, the generation state that numbers temporaries and
// labels, and Generator, which turns parser reductions into instructions.
package tac

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'gotac.tac'.
func tracer() tracing.Trace {
	return tracing.Select("gotac.tac")
}
