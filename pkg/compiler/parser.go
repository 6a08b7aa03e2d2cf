package compiler

import (
	"fmt"

	"gotac/pkg/tac"
)

// Attr is the synthesized attribute riding on a parser stack entry. Which
// field is meaningful depends on the symbol:
//
//	terminals                         Tok
//	expression                        Place (temporary or variable name)
//	params, param_list, param         Names (parameter names)
//	arguments                         Names (argument places, left to right)
//	declarations, statements,
//	function, function_list, program  Span (log positions already emitted)
type Attr struct {
	Tok   Token
	Place string
	Names []string
	Span  tac.Span
}

type stackEntry struct {
	state int
	attr  Attr
}

// Parser runs the shift-reduce automaton over tokens pulled from a Lexer,
// calling the Emitter once per reduction.
type Parser struct {
	lex    *Lexer
	emit   Emitter
	report func(error)
	stack  []stackEntry
}

// NewParser returns a Parser reading from lex and emitting into emit. The
// syntax error that stops a parse is passed to report, which may be nil.
func NewParser(lex *Lexer, emit Emitter, report func(error)) *Parser {
	if report == nil {
		report = func(error) {}
	}
	return &Parser{lex: lex, emit: emit, report: report}
}

// Parse consumes tokens until the program is accepted or a token cannot be
// shifted. It reports false after a syntax error; instructions emitted
// before the error stay where they are.
func (p *Parser) Parse() bool {
	p.stack = append(p.stack[:0], stackEntry{state: 0})
	tok := p.lex.Next()
	for {
		top := p.stack[len(p.stack)-1].state
		act := tables.actions[top][tok.Type]
		switch act.kind {
		case actShift:
			p.stack = append(p.stack, stackEntry{state: act.target, attr: Attr{Tok: tok}})
			tok = p.lex.Next()

		case actReduce:
			prod := &productions[act.target]
			base := len(p.stack) - len(prod.RHS)
			attr := p.reduce(prod.ID, p.stack[base:])
			p.stack = p.stack[:base]
			next := tables.gotos[p.stack[base-1].state][prod.LHS-ntBase]
			if next < 0 {
				panic(fmt.Sprintf("compiler: no goto on %s from state %d", prod.LHS, p.stack[base-1].state))
			}
			p.stack = append(p.stack, stackEntry{state: next, attr: attr})

		case actAccept:
			return true

		default:
			tracer().Debugf("syntax error in state %d at %s line %d", top, tok.Type, tok.Line)
			p.report(&SyntaxError{Token: tok, AtEOF: tok.Type == EOF})
			return false
		}
	}
}

// reduce runs the action of production id over the attributes of its
// right-hand side and returns the attribute of the left-hand side.
func (p *Parser) reduce(id ProdID, rhs []stackEntry) Attr {
	arg := func(i int) Attr { return rhs[i].attr }

	switch id {
	case ProdProgram, ProdFunctionListOne, ProdParams, ProdParamListOne:
		return arg(0)

	case ProdFunctionList:
		return Attr{Span: tac.Span{Start: arg(0).Span.Start, End: arg(1).Span.End}}

	case ProdFunction:
		body := tac.Span{Start: arg(6).Span.Start, End: arg(7).Span.End}
		p.emit.Function(arg(1).Tok.Lexeme, arg(3).Names, body)
		return Attr{Span: tac.Span{Start: body.Start, End: p.emit.Mark()}}

	case ProdParamsEmpty:
		return Attr{}

	case ProdParamList:
		return Attr{Names: append(arg(0).Names, arg(2).Names...)}

	case ProdParam:
		return Attr{Names: []string{arg(1).Tok.Lexeme}}

	case ProdDeclarations, ProdStatements:
		return Attr{Span: tac.Span{Start: arg(0).Span.Start, End: p.emit.Mark()}}

	case ProdDeclarationsEmpty, ProdStatementsEmpty:
		m := p.emit.Mark()
		return Attr{Span: tac.Span{Start: m, End: m}}

	case ProdDeclInit:
		p.emit.Declare(arg(1).Tok.Lexeme, arg(3).Place)
		return Attr{}

	case ProdDecl:
		p.emit.DeclareZero(arg(1).Tok.Lexeme)
		return Attr{}

	case ProdAssign:
		p.emit.Assign(arg(0).Tok.Lexeme, arg(2).Place)
		return Attr{}

	case ProdPrint:
		p.emit.Print(arg(2).Place)
		return Attr{}

	case ProdReturn:
		p.emit.Return(arg(1).Place)
		return Attr{}

	case ProdAdd, ProdSub, ProdMul, ProdDiv:
		return Attr{Place: p.emit.Binary(arg(1).Tok.Lexeme, arg(0).Place, arg(2).Place)}

	case ProdGroup:
		return Attr{Place: arg(1).Place}

	case ProdNumber:
		return Attr{Place: p.emit.Number(arg(0).Tok.Text())}

	case ProdIdent:
		return Attr{Place: arg(0).Tok.Lexeme}

	case ProdCall:
		return Attr{Place: p.emit.Call(arg(0).Tok.Lexeme, arg(2).Names)}

	case ProdArguments:
		return Attr{Names: append(arg(0).Names, arg(2).Place)}

	case ProdArgumentsOne:
		return Attr{Names: []string{arg(0).Place}}
	}
	panic(fmt.Sprintf("compiler: no action for production %d", id))
}
