package compiler

import (
	"fmt"
	"strings"
)

// Symbol is a grammar symbol. Terminals share their values with TokenType;
// nonterminals are numbered after the last token type.
type Symbol int

const ntBase = Symbol(numTokenTypes)

const (
	symStart Symbol = ntBase + iota
	symProgram
	symFunctionList
	symFunction
	symParams
	symParamList
	symParam
	symDeclarations
	symDeclaration
	symStatements
	symStatement
	symExpression
	symArguments

	symEnd // one past the last nonterminal
)

var nonterminalNames = [...]string{
	symStart - ntBase:        "start",
	symProgram - ntBase:      "program",
	symFunctionList - ntBase: "function_list",
	symFunction - ntBase:     "function",
	symParams - ntBase:       "params",
	symParamList - ntBase:    "param_list",
	symParam - ntBase:        "param",
	symDeclarations - ntBase: "declarations",
	symDeclaration - ntBase:  "declaration",
	symStatements - ntBase:   "statements",
	symStatement - ntBase:    "statement",
	symExpression - ntBase:   "expression",
	symArguments - ntBase:    "arguments",
}

// term lifts a token type into the symbol space.
func term(tt TokenType) Symbol { return Symbol(tt) }

// Terminal reports whether s is a token type.
func (s Symbol) Terminal() bool { return s < ntBase }

func (s Symbol) String() string {
	if s.Terminal() {
		return TokenType(s).String()
	}
	if i := int(s - ntBase); i < len(nonterminalNames) {
		return nonterminalNames[i]
	}
	return fmt.Sprintf("Symbol(%d)", int(s))
}

// ProdID names a production. It doubles as the production's index in the
// grammar and selects the reduction action.
type ProdID int

const (
	ProdAccept            ProdID = iota // start := program
	ProdProgram                         // program := function_list
	ProdFunctionList                    // function_list := function_list function
	ProdFunctionListOne                 // function_list := function
	ProdFunction                        // function := INT ID ( params ) { declarations statements }
	ProdParams                          // params := param_list
	ProdParamsEmpty                     // params := ε
	ProdParamList                       // param_list := param_list , param
	ProdParamListOne                    // param_list := param
	ProdParam                           // param := INT ID
	ProdDeclarations                    // declarations := declarations declaration
	ProdDeclarationsEmpty               // declarations := ε
	ProdDeclInit                        // declaration := INT ID = expression ;
	ProdDecl                            // declaration := INT ID ;
	ProdStatements                      // statements := statements statement
	ProdStatementsEmpty                 // statements := ε
	ProdAssign                          // statement := ID = expression ;
	ProdPrint                           // statement := PRINT ( expression ) ;
	ProdReturn                          // statement := RETURN expression ;
	ProdAdd                             // expression := expression + expression
	ProdSub                             // expression := expression - expression
	ProdMul                             // expression := expression * expression
	ProdDiv                             // expression := expression / expression
	ProdGroup                           // expression := ( expression )
	ProdNumber                          // expression := NUMBER
	ProdIdent                           // expression := ID
	ProdCall                            // expression := ID ( arguments )
	ProdArguments                       // arguments := arguments , expression
	ProdArgumentsOne                    // arguments := expression

	numProds
)

// Production is one grammar rule LHS := RHS.
type Production struct {
	ID  ProdID
	LHS Symbol
	RHS []Symbol
}

func (p Production) String() string {
	if len(p.RHS) == 0 {
		return p.LHS.String() + " := ε"
	}
	parts := make([]string, len(p.RHS))
	for i, s := range p.RHS {
		parts[i] = s.String()
	}
	return p.LHS.String() + " := " + strings.Join(parts, " ")
}

// productions is indexed by ProdID. Production 0 is the augmented start rule.
var productions = []Production{
	{ProdAccept, symStart, []Symbol{symProgram}},
	{ProdProgram, symProgram, []Symbol{symFunctionList}},
	{ProdFunctionList, symFunctionList, []Symbol{symFunctionList, symFunction}},
	{ProdFunctionListOne, symFunctionList, []Symbol{symFunction}},
	{ProdFunction, symFunction, []Symbol{
		term(INT), term(ID), term(LPAREN), symParams, term(RPAREN),
		term(LBRACE), symDeclarations, symStatements, term(RBRACE),
	}},
	{ProdParams, symParams, []Symbol{symParamList}},
	{ProdParamsEmpty, symParams, nil},
	{ProdParamList, symParamList, []Symbol{symParamList, term(COMMA), symParam}},
	{ProdParamListOne, symParamList, []Symbol{symParam}},
	{ProdParam, symParam, []Symbol{term(INT), term(ID)}},
	{ProdDeclarations, symDeclarations, []Symbol{symDeclarations, symDeclaration}},
	{ProdDeclarationsEmpty, symDeclarations, nil},
	{ProdDeclInit, symDeclaration, []Symbol{term(INT), term(ID), term(ASSIGN), symExpression, term(SEMI)}},
	{ProdDecl, symDeclaration, []Symbol{term(INT), term(ID), term(SEMI)}},
	{ProdStatements, symStatements, []Symbol{symStatements, symStatement}},
	{ProdStatementsEmpty, symStatements, nil},
	{ProdAssign, symStatement, []Symbol{term(ID), term(ASSIGN), symExpression, term(SEMI)}},
	{ProdPrint, symStatement, []Symbol{term(PRINT), term(LPAREN), symExpression, term(RPAREN), term(SEMI)}},
	{ProdReturn, symStatement, []Symbol{term(RETURN), symExpression, term(SEMI)}},
	{ProdAdd, symExpression, []Symbol{symExpression, term(PLUS), symExpression}},
	{ProdSub, symExpression, []Symbol{symExpression, term(MINUS), symExpression}},
	{ProdMul, symExpression, []Symbol{symExpression, term(TIMES), symExpression}},
	{ProdDiv, symExpression, []Symbol{symExpression, term(DIVIDE), symExpression}},
	{ProdGroup, symExpression, []Symbol{term(LPAREN), symExpression, term(RPAREN)}},
	{ProdNumber, symExpression, []Symbol{term(NUMBER)}},
	{ProdIdent, symExpression, []Symbol{term(ID)}},
	{ProdCall, symExpression, []Symbol{term(ID), term(LPAREN), symArguments, term(RPAREN)}},
	{ProdArguments, symArguments, []Symbol{symArguments, term(COMMA), symExpression}},
	{ProdArgumentsOne, symArguments, []Symbol{symExpression}},
}

type assoc int

const (
	assocLeft assoc = iota
	assocRight
)

// precDecl is one precedence level, like a yacc %left or %right line.
type precDecl struct {
	assoc  assoc
	tokens []TokenType
}

// precedence lists operator levels from lowest to highest.
var precedence = []precDecl{
	{assocLeft, []TokenType{PLUS, MINUS}},
	{assocLeft, []TokenType{TIMES, DIVIDE}},
}

// Grammar returns the productions in ProdID order, rendered as text.
func Grammar() []string {
	out := make([]string, len(productions))
	for i, p := range productions {
		out[i] = fmt.Sprintf("%2d: %s", i, p)
	}
	return out
}
