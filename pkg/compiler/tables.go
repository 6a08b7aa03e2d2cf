package compiler

import (
	"fmt"

	"github.com/npillmayer/gorgo/lr"
)

// The parse tables come from gorgo's LR package: its grammar analysis
// supplies FIRST and FOLLOW, and its table generator builds the CFSM with
// SLR(1) action and goto tables. Those tables are copied into dense arrays
// indexed by TokenType and nonterminal. gorgo keeps conflicting entries
// side by side; shift/reduce conflicts between operators are settled here
// by precedence and associativity the way yacc settles them.

type actionKind uint8

const (
	actError actionKind = iota
	actShift
	actReduce
	actAccept
)

type action struct {
	kind   actionKind
	target int // next state for a shift, production for a reduce
}

type lrTables struct {
	states   int
	actions  [][numTokenTypes]action
	gotos    [][]int // [state][nonterminal-ntBase], -1 if none
	resolved int     // shift/reduce conflicts settled by precedence
}

type precLevel struct {
	level int
	assoc assoc
}

// tokenValue is the terminal value a token type carries in the gorgo
// grammar. gorgo reserves 0 for epsilon.
func tokenValue(tt TokenType) int { return int(tt) + 1 }

type tableBuilder struct {
	prods []Production
	prec  map[TokenType]precLevel
	nt    map[Symbol]int // nonterminal to its gorgo symbol value
	t     *lrTables
}

// buildTables constructs the SLR(1) automaton. It fails on any conflict
// precedence cannot settle.
func buildTables(prods []Production, decls []precDecl) (*lrTables, error) {
	b := &tableBuilder{
		prods: prods,
		prec:  make(map[TokenType]precLevel),
		nt:    make(map[Symbol]int),
		t:     &lrTables{},
	}
	for i, p := range prods {
		if int(p.ID) != i {
			return nil, fmt.Errorf("production %d (%s) carries id %d", i, p, p.ID)
		}
	}
	for level, d := range decls {
		for _, tt := range d.tokens {
			b.prec[tt] = precLevel{level: level + 1, assoc: d.assoc}
		}
	}

	// Rules go to the builder in ProdID order, so rule serial numbers equal
	// production ids. Production 0 gets EOF appended: the parser accepts
	// where it would shift EOF.
	gb := lr.NewGrammarBuilder("gotac")
	for _, p := range prods {
		rb := gb.LHS(p.LHS.String())
		if len(p.RHS) == 0 {
			rb.Epsilon()
			continue
		}
		for _, s := range p.RHS {
			if s.Terminal() {
				rb = rb.T(s.String(), tokenValue(TokenType(s)))
			} else {
				rb = rb.N(s.String())
			}
		}
		if p.ID == 0 {
			rb = rb.T(EOF.String(), tokenValue(EOF))
		}
		rb.End()
	}
	g, err := gb.Grammar()
	if err != nil {
		return nil, fmt.Errorf("grammar: %w", err)
	}
	for i, p := range prods {
		r := g.Rule(i)
		if r == nil || r.LHS.Name != p.LHS.String() {
			return nil, fmt.Errorf("grammar rule %d does not match production %s", i, p)
		}
		b.nt[p.LHS] = r.LHS.Value
	}

	gen := lr.NewTableGenerator(lr.Analysis(g))
	gen.CreateTables()
	if gen.HasConflicts {
		tracer().Debugf("LR tables carry conflicts, resolving by precedence")
	}
	if err := b.fillTables(gen.CFSM().S0.ID, gen.GotoTable(), gen.ActionTable()); err != nil {
		return nil, err
	}
	tracer().Debugf("LR automaton: %d states, %d productions, %d conflicts resolved by precedence",
		b.t.states, len(prods), b.t.resolved)
	return b.t, nil
}

// table is the part of gorgo's sparse matrices the copy needs.
type table interface {
	Value(i, j int) int32
	Values(i, j int) (int32, int32)
	NullValue() int32
}

// fillTables walks gorgo's goto table from the start state, numbering
// states densely in discovery order, and copies every entry.
func (b *tableBuilder) fillTables(start int, gotos, actions table) error {
	var ids []int              // dense number to gorgo state
	index := make(map[int]int) // gorgo state to dense number
	visit := func(s int) int {
		if n, ok := index[s]; ok {
			return n
		}
		index[s] = len(ids)
		ids = append(ids, s)
		return index[s]
	}
	target := func(s, col int) int {
		v := gotos.Value(s, col)
		if v == gotos.NullValue() {
			return -1
		}
		return visit(int(v))
	}

	visit(start)
	t := b.t
	for i := 0; i < len(ids); i++ {
		s := ids[i]
		t.actions = append(t.actions, [numTokenTypes]action{})
		t.gotos = append(t.gotos, make([]int, symEnd-ntBase))
		for sym := ntBase; sym < symEnd; sym++ {
			t.gotos[i][sym-ntBase] = -1
			if col, ok := b.nt[sym]; ok {
				t.gotos[i][sym-ntBase] = target(s, col)
			}
		}
		for tt := TokenType(0); tt < numTokenTypes; tt++ {
			col := tokenValue(tt)
			a1, a2 := actions.Values(s, col)
			for _, a := range []int32{a1, a2} {
				var act action
				switch {
				case a == actions.NullValue():
					continue
				case a == int32(lr.ShiftAction) && tt == EOF:
					act = action{kind: actAccept}
				case a == int32(lr.ShiftAction):
					act = action{kind: actShift, target: target(s, col)}
				case a == int32(lr.AcceptAction) || a == 0:
					act = action{kind: actAccept}
				case a > 0 && int(a) < len(b.prods):
					act = action{kind: actReduce, target: int(a)}
				default:
					return fmt.Errorf("state %d: unknown action %d on %s", i, a, tt)
				}
				if err := b.setAction(i, tt, act); err != nil {
					return err
				}
			}
		}
	}
	t.states = len(ids)
	return nil
}

// rulePrec is the precedence of a production: that of its rightmost
// terminal, if the terminal has one.
func (b *tableBuilder) rulePrec(prod int) (precLevel, bool) {
	rhs := b.prods[prod].RHS
	for i := len(rhs) - 1; i >= 0; i-- {
		if rhs[i].Terminal() {
			pl, ok := b.prec[TokenType(rhs[i])]
			return pl, ok
		}
	}
	return precLevel{}, false
}

// setAction records act for (state, tt), settling a shift/reduce conflict by
// precedence: the higher level wins, and on a tie left associativity
// reduces while right associativity shifts.
func (b *tableBuilder) setAction(state int, tt TokenType, act action) error {
	cur := &b.t.actions[state][tt]
	if cur.kind == actError || *cur == act {
		*cur = act
		return nil
	}

	sh, rd := *cur, act
	if sh.kind == actReduce {
		sh, rd = rd, sh
	}
	if sh.kind != actShift || rd.kind != actReduce {
		return fmt.Errorf("state %d: conflict on %s between %s and %s",
			state, tt, b.describe(*cur), b.describe(act))
	}

	tokPrec, okTok := b.prec[tt]
	rulePrec, okRule := b.rulePrec(rd.target)
	if !okTok || !okRule {
		return fmt.Errorf("state %d: shift/reduce conflict on %s with %s",
			state, tt, b.prods[rd.target])
	}
	b.t.resolved++
	switch {
	case rulePrec.level > tokPrec.level:
		*cur = rd
	case rulePrec.level < tokPrec.level:
		*cur = sh
	case tokPrec.assoc == assocLeft:
		*cur = rd
	default:
		*cur = sh
	}
	return nil
}

func (b *tableBuilder) describe(a action) string {
	switch a.kind {
	case actShift:
		return fmt.Sprintf("shift %d", a.target)
	case actReduce:
		return fmt.Sprintf("reduce %s", b.prods[a.target])
	case actAccept:
		return "accept"
	}
	return "error"
}

// tables is the automaton for the language grammar.
var tables = mustBuildTables()

func mustBuildTables() *lrTables {
	t, err := buildTables(productions, precedence)
	if err != nil {
		panic("compiler: grammar is not SLR(1): " + err.Error())
	}
	return t
}

// AutomatonInfo summarises the parse tables.
type AutomatonInfo struct {
	States      int
	Productions int
	Resolved    int // shift/reduce conflicts settled by precedence
}

// Automaton describes the tables the parser runs on.
func Automaton() AutomatonInfo {
	return AutomatonInfo{States: tables.states, Productions: len(productions), Resolved: tables.resolved}
}
