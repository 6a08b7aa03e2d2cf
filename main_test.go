package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"prog.c", "prog.tac"},
		{"dir/prog.src.c", "dir/prog.src.tac"},
		{"prog", "prog.tac"},
	}
	for _, tc := range tests {
		if got := defaultOutputPath(tc.in); got != tc.want {
			t.Errorf("defaultOutputPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestWriteListing(t *testing.T) {
	var buf bytes.Buffer
	if err := writeListing(&buf, []string{"L1:", "t0 = 1", "RETURN t0"}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "L1:\nt0 = 1\nRETURN t0\n" {
		t.Errorf("listing = %q", got)
	}
}

func TestWriteListingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tac")
	if err := writeListingFile(path, []string{"L1:", "RETURN x"}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "L1:\nRETURN x\n" {
		t.Errorf("file = %q", data)
	}
}

func TestDisplayName(t *testing.T) {
	if got := displayName(""); got != "<stdin>" {
		t.Errorf("displayName(\"\") = %q", got)
	}
	if got := displayName("a.c"); got != "a.c" {
		t.Errorf("displayName(a.c) = %q", got)
	}
}
