package tac

import "fmt"

// Options tune the instructions Generator produces.
type Options struct {
	// CallResults makes a call used as an expression assign its result to
	// the temporary that stands for it ("t3 = call f, 1"). Without it the
	// temporary is allocated but never written, and the call is emitted as a
	// bare "call f, 1".
	CallResults bool
}

// Generator appends instructions to a State as the parser reduces
// productions. Every method that produces a value returns the name that
// holds it.
type Generator struct {
	state *State
	opts  Options
}

// NewGenerator returns a Generator writing into state.
func NewGenerator(state *State, opts Options) *Generator {
	return &Generator{state: state, opts: opts}
}

// Mark returns the current end of the log.
func (g *Generator) Mark() int {
	return g.state.Len()
}

// Function allocates the function's label and places it in front of the
// already emitted body. Parameters produce no instructions.
func (g *Generator) Function(name string, params []string, body Span) {
	label := g.state.NewLabel()
	g.state.Insert(body.Start, Instruction{Op: Label, Dst: label})
	tracer().Debugf("function %s(%d params) at %s, %d body instructions", name, len(params), label, body.Len())
}

// Declare initialises a declared variable from place.
func (g *Generator) Declare(name, place string) {
	g.state.Append(Instruction{Op: Copy, Dst: name, Arg1: place})
}

// DeclareZero initialises a declared variable to 0.
func (g *Generator) DeclareZero(name string) {
	g.state.Append(Instruction{Op: Copy, Dst: name, Arg1: "0"})
}

// Assign stores place into an existing variable.
func (g *Generator) Assign(name, place string) {
	g.state.Append(Instruction{Op: Copy, Dst: name, Arg1: place})
}

// Print passes place to printf.
func (g *Generator) Print(place string) {
	g.state.Append(Instruction{Op: Param, Arg1: place})
	g.state.Append(Instruction{Op: Call, Arg1: "printf", Count: 1})
}

// Return returns place from the current function.
func (g *Generator) Return(place string) {
	g.state.Append(Instruction{Op: Return, Arg1: place})
}

// Binary computes left op right into a fresh temporary.
func (g *Generator) Binary(op, left, right string) string {
	switch op {
	case "+", "-", "*", "/":
	default:
		panic(fmt.Sprintf("tac: unsupported operator %q", op))
	}
	t := g.state.NewTemp()
	g.state.Append(Instruction{Op: Binary, Dst: t, Arg1: left, Oper: op, Arg2: right})
	return t
}

// Number loads a literal into a fresh temporary.
func (g *Generator) Number(literal string) string {
	t := g.state.NewTemp()
	g.state.Append(Instruction{Op: Copy, Dst: t, Arg1: literal})
	return t
}

// Call passes args left to right and calls name. The returned temporary only
// holds the result when Options.CallResults is set.
func (g *Generator) Call(name string, args []string) string {
	t := g.state.NewTemp()
	for _, a := range args {
		g.state.Append(Instruction{Op: Param, Arg1: a})
	}
	if g.opts.CallResults {
		g.state.Append(Instruction{Op: CallAssign, Dst: t, Arg1: name, Count: len(args)})
	} else {
		g.state.Append(Instruction{Op: Call, Arg1: name, Count: len(args)})
	}
	return t
}
