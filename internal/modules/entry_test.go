package modules

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMatchesSourceExt(t *testing.T) {
	if !MatchesSourceExt("lib.inf") {
		t.Error("lib.inf should match the source extension")
	}
	if MatchesSourceExt("lib.rs") {
		t.Error("lib.rs should not match the source extension")
	}
}

func TestFindEntryFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "src"), 0o755); err != nil {
		t.Fatal(err)
	}
	libPath := filepath.Join(dir, "src", "lib.inf")
	if err := os.WriteFile(libPath, []byte("fn main() {}"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, ok := FindEntryFile(dir)
	if !ok {
		t.Fatal("expected to find src/lib.inf")
	}
	if got != libPath {
		t.Errorf("FindEntryFile = %q, want %q", got, libPath)
	}
}

func TestFindEntryFileNotFound(t *testing.T) {
	dir := t.TempDir()
	if _, ok := FindEntryFile(dir); ok {
		t.Error("expected no entry file in an empty directory")
	}
}
