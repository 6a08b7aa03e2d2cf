package tac

import (
	"fmt"
	"strconv"
)

// State is the mutable generation state of a compilation: the instruction
// log and the temporary and label counters. A State is not safe for
// concurrent use.
type State struct {
	log    []Instruction
	temps  int // next temporary index, starts at 0
	labels int // next label index, starts at 1
}

// NewState returns an empty State.
func NewState() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset clears the log and rewinds both counters.
func (s *State) Reset() {
	s.log = nil
	s.temps = 0
	s.labels = 1
}

// NewTemp allocates the next temporary name: t0, t1, ...
func (s *State) NewTemp() string {
	name := "t" + strconv.Itoa(s.temps)
	s.temps++
	return name
}

// NewLabel allocates the next label name: L1, L2, ...
func (s *State) NewLabel() string {
	name := "L" + strconv.Itoa(s.labels)
	s.labels++
	return name
}

// Append adds in to the end of the log.
func (s *State) Append(in Instruction) {
	s.log = append(s.log, in)
}

// Insert places in at position at, shifting later instructions back.
func (s *State) Insert(at int, in Instruction) {
	if at < 0 || at > len(s.log) {
		panic(fmt.Sprintf("tac: insert position %d outside log of %d", at, len(s.log)))
	}
	s.log = append(s.log, Instruction{})
	copy(s.log[at+1:], s.log[at:])
	s.log[at] = in
}

// Len returns the number of instructions in the log.
func (s *State) Len() int { return len(s.log) }

// Instructions returns a copy of the log.
func (s *State) Instructions() []Instruction {
	return append([]Instruction(nil), s.log...)
}

// Lines renders the log, one string per instruction.
func (s *State) Lines() []string {
	lines := make([]string, len(s.log))
	for i, in := range s.log {
		lines[i] = in.String()
	}
	return lines
}
