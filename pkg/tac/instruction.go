package tac

import "fmt"

// Opcode identifies the shape of an Instruction.
type Opcode int

const (
	Label      Opcode = iota // L1:
	Copy                     // x = y
	Binary                   // x = y op z
	Param                    // param x
	Call                     // call f, n
	CallAssign               // t = call f, n
	Return                   // RETURN x
)

var opcodeNames = [...]string{
	Label:      "Label",
	Copy:       "Copy",
	Binary:     "Binary",
	Param:      "Param",
	Call:       "Call",
	CallAssign: "CallAssign",
	Return:     "Return",
}

func (op Opcode) String() string {
	if int(op) >= 0 && int(op) < len(opcodeNames) {
		return opcodeNames[op]
	}
	return fmt.Sprintf("Opcode(%d)", int(op))
}

// Instruction is a single line of three-address code.
type Instruction struct {
	Op    Opcode
	Dst   string // label name or assignment target
	Arg1  string // source operand, param value or callee
	Arg2  string // right operand of Binary
	Oper  string // one of + - * / for Binary
	Count int    // argument count for Call and CallAssign
}

// String renders the instruction in its textual TAC form.
func (in Instruction) String() string {
	switch in.Op {
	case Label:
		return in.Dst + ":"
	case Copy:
		return in.Dst + " = " + in.Arg1
	case Binary:
		return in.Dst + " = " + in.Arg1 + " " + in.Oper + " " + in.Arg2
	case Param:
		return "param " + in.Arg1
	case Call:
		return fmt.Sprintf("call %s, %d", in.Arg1, in.Count)
	case CallAssign:
		return fmt.Sprintf("%s = call %s, %d", in.Dst, in.Arg1, in.Count)
	case Return:
		return "RETURN " + in.Arg1
	}
	panic(fmt.Sprintf("tac: cannot render %s", in.Op))
}

// Span is a half-open range [Start, End) of positions in an instruction log.
type Span struct {
	Start int
	End   int
}

// Len reports how many instructions the span covers.
func (s Span) Len() int { return s.End - s.Start }
