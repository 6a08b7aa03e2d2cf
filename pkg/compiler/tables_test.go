package compiler

import (
	"strings"
	"testing"

	"github.com/npillmayer/gorgo/lr"
)

func TestProductionsIndexedByID(t *testing.T) {
	if len(productions) != int(numProds) {
		t.Fatalf("%d productions, want %d", len(productions), numProds)
	}
	for i, p := range productions {
		if int(p.ID) != i {
			t.Errorf("production %d (%s) has id %d", i, p, p.ID)
		}
		if p.LHS.Terminal() {
			t.Errorf("production %d has terminal LHS %s", i, p.LHS)
		}
	}
}

func TestAutomaton(t *testing.T) {
	info := Automaton()
	if info.Productions != len(productions) {
		t.Errorf("Productions = %d, want %d", info.Productions, len(productions))
	}
	if info.States == 0 {
		t.Fatal("no states")
	}
	// four binary productions against four operators, settled in the four
	// states where a binary expression is complete
	if info.Resolved != 16 {
		t.Errorf("Resolved = %d, want 16", info.Resolved)
	}
}

func TestTablesNeedPrecedence(t *testing.T) {
	_, err := buildTables(productions, nil)
	if err == nil {
		t.Fatal("expected a shift/reduce conflict without precedence declarations")
	}
	if !strings.Contains(err.Error(), "shift/reduce conflict") {
		t.Errorf("error = %v", err)
	}
}

func TestTablesRejectReduceReduce(t *testing.T) {
	prods := []Production{
		{0, symStart, []Symbol{symProgram}},
		{1, symProgram, []Symbol{symParam}},
		{2, symProgram, []Symbol{symArguments}},
		{3, symParam, []Symbol{term(ID)}},
		{4, symArguments, []Symbol{term(ID)}},
	}
	_, err := buildTables(prods, nil)
	if err == nil || !strings.Contains(err.Error(), "reduce") {
		t.Errorf("expected reduce/reduce conflict, got %v", err)
	}
}

func TestTablesRejectMisnumberedProductions(t *testing.T) {
	prods := []Production{
		{0, symStart, []Symbol{symProgram}},
		{5, symProgram, []Symbol{term(ID)}},
	}
	if _, err := buildTables(prods, nil); err == nil {
		t.Error("expected an error for a production whose id does not match its index")
	}
}

func TestRightAssociativityShifts(t *testing.T) {
	// E := E + E | ID with %right PLUS
	prods := []Production{
		{0, symStart, []Symbol{symExpression}},
		{1, symExpression, []Symbol{symExpression, term(PLUS), symExpression}},
		{2, symExpression, []Symbol{term(ID)}},
	}
	right, err := buildTables(prods, []precDecl{{assocRight, []TokenType{PLUS}}})
	if err != nil {
		t.Fatalf("buildTables: %v", err)
	}
	left, err := buildTables(prods, []precDecl{{assocLeft, []TokenType{PLUS}}})
	if err != nil {
		t.Fatalf("buildTables: %v", err)
	}

	// state 0 --expression--> E . PLUS E --PLUS--> E PLUS . E --expression--> E PLUS E .
	state := func(tb *lrTables) int {
		s1 := tb.gotos[0][symExpression-ntBase]
		if s1 < 0 || tb.actions[s1][PLUS].kind != actShift {
			t.Fatal("no shift on PLUS after the first operand")
		}
		s3 := tb.gotos[tb.actions[s1][PLUS].target][symExpression-ntBase]
		if s3 < 0 {
			t.Fatal("no state completes E + E")
		}
		return s3
	}
	if got := right.actions[state(right)][PLUS].kind; got != actShift {
		t.Errorf("right associative: action on PLUS = %d, want shift", got)
	}
	if got := left.actions[state(left)][PLUS].kind; got != actReduce {
		t.Errorf("left associative: action on PLUS = %d, want reduce", got)
	}
	if got := left.actions[state(left)][EOF].kind; got != actReduce {
		t.Errorf("action on EOF after E + E = %d, want reduce", got)
	}
	if got := left.actions[left.gotos[0][symExpression-ntBase]][EOF].kind; got != actAccept {
		t.Errorf("action on EOF after a complete expression = %d, want accept", got)
	}
}

func TestGrammarListing(t *testing.T) {
	lines := Grammar()
	if len(lines) != len(productions) {
		t.Fatalf("%d lines", len(lines))
	}
	if !strings.HasSuffix(lines[ProdParamsEmpty], "params := ε") {
		t.Errorf("empty production rendered as %q", lines[ProdParamsEmpty])
	}
	if !strings.HasSuffix(lines[ProdMul], "expression := expression TIMES expression") {
		t.Errorf("ProdMul rendered as %q", lines[ProdMul])
	}
}

// matrix stands in for a gorgo sparse table; cells hold up to two entries.
type matrix map[[2]int][]int32

const nullEntry = -4711

func (m matrix) Value(i, j int) int32 {
	if v := m[[2]int{i, j}]; len(v) > 0 {
		return v[0]
	}
	return nullEntry
}

func (m matrix) Values(i, j int) (int32, int32) {
	v := append(m[[2]int{i, j}], nullEntry, nullEntry)
	return v[0], v[1]
}

func (m matrix) NullValue() int32 { return nullEntry }

func TestFillTablesFromSparseTables(t *testing.T) {
	prods := []Production{
		{0, symStart, []Symbol{symExpression}},
		{1, symExpression, []Symbol{symExpression, term(PLUS), symExpression}},
		{2, symExpression, []Symbol{term(ID)}},
	}
	b := &tableBuilder{
		prods: prods,
		prec:  map[TokenType]precLevel{PLUS: {level: 1, assoc: assocLeft}},
		nt:    map[Symbol]int{symStart: 100, symExpression: 101},
		t:     &lrTables{},
	}
	id, plus, eof := tokenValue(ID), tokenValue(PLUS), tokenValue(EOF)
	shift := int32(lr.ShiftAction)

	// sparse state numbers; 10 is the start state
	gotos := matrix{
		{10, 101}: {11}, {10, id}: {12},
		{11, plus}: {13},
		{13, 101}:  {14}, {13, id}: {12},
		{14, plus}: {13},
	}
	actions := matrix{
		{10, id}:   {shift},
		{11, plus}: {shift}, {11, eof}: {shift},
		{12, plus}: {2}, {12, eof}: {2},
		{13, id}:   {shift},
		{14, plus}: {shift, 1}, {14, eof}: {1},
	}
	if err := b.fillTables(10, gotos, actions); err != nil {
		t.Fatalf("fillTables: %v", err)
	}

	tb := b.t
	if tb.states != 5 {
		t.Fatalf("states = %d, want 5", tb.states)
	}
	if tb.resolved != 1 {
		t.Errorf("resolved = %d, want 1", tb.resolved)
	}
	tests := []struct {
		name  string
		state int
		tok   TokenType
		want  action
	}{
		{"shift renumbered", 0, ID, action{actShift, 2}},
		{"shift EOF accepts", 1, EOF, action{kind: actAccept}},
		{"reduce keeps production", 2, EOF, action{actReduce, 2}},
		{"left associative conflict", 4, PLUS, action{actReduce, 1}},
		{"missing entry", 0, PLUS, action{}},
	}
	for _, tc := range tests {
		if got := tb.actions[tc.state][tc.tok]; got != tc.want {
			t.Errorf("%s: action[%d][%s] = %+v, want %+v", tc.name, tc.state, tc.tok, got, tc.want)
		}
	}
	if got := tb.gotos[3][symExpression-ntBase]; got != 4 {
		t.Errorf("goto from state 3 on expression = %d, want 4", got)
	}
	if got := tb.gotos[0][symStart-ntBase]; got != -1 {
		t.Errorf("goto on start = %d, want -1", got)
	}
}
