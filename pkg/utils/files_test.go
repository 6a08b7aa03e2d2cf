package utils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestReadSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.c")
	if err := os.WriteFile(path, []byte("int main() { return 0; }\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	full, src, err := ReadSource(path)
	if err != nil {
		t.Fatalf("ReadSource: %v", err)
	}
	if !filepath.IsAbs(full) {
		t.Errorf("path %q is not absolute", full)
	}
	if src != "int main() { return 0; }\n" {
		t.Errorf("src = %q", src)
	}
}

func TestReadSourceMissing(t *testing.T) {
	_, _, err := ReadSource(filepath.Join(t.TempDir(), "missing.c"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", err)
	}
}
