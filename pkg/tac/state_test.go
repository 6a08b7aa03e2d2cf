package tac

import (
	"reflect"
	"testing"
)

func TestStateCounters(t *testing.T) {
	s := NewState()

	for i, want := range []string{"t0", "t1", "t2"} {
		if got := s.NewTemp(); got != want {
			t.Errorf("temp %d = %s, want %s", i, got, want)
		}
	}
	for i, want := range []string{"L1", "L2"} {
		if got := s.NewLabel(); got != want {
			t.Errorf("label %d = %s, want %s", i, got, want)
		}
	}

	s.Append(Instruction{Op: Return, Arg1: "x"})
	s.Reset()

	if s.Len() != 0 {
		t.Errorf("Len after Reset = %d, want 0", s.Len())
	}
	if got := s.NewTemp(); got != "t0" {
		t.Errorf("temp after Reset = %s, want t0", got)
	}
	if got := s.NewLabel(); got != "L1" {
		t.Errorf("label after Reset = %s, want L1", got)
	}
}

func TestStateInsert(t *testing.T) {
	s := NewState()
	s.Append(Instruction{Op: Copy, Dst: "a", Arg1: "0"})
	s.Append(Instruction{Op: Return, Arg1: "a"})
	s.Insert(1, Instruction{Op: Label, Dst: "L1"})
	s.Insert(0, Instruction{Op: Label, Dst: "L0"})
	s.Insert(s.Len(), Instruction{Op: Param, Arg1: "a"})

	want := []string{"L0:", "a = 0", "L1:", "RETURN a", "param a"}
	if got := s.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
}

func TestStateInsertOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for insert past the end")
		}
	}()
	NewState().Insert(1, Instruction{Op: Label, Dst: "L1"})
}

func TestStateInstructionsIsCopy(t *testing.T) {
	s := NewState()
	s.Append(Instruction{Op: Return, Arg1: "x"})
	got := s.Instructions()
	got[0].Arg1 = "y"
	if s.Lines()[0] != "RETURN x" {
		t.Errorf("mutating the snapshot changed the log: %v", s.Lines())
	}
}
