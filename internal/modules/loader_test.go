package modules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Inferara/inference-sub000/internal/ast"
	"github.com/Inferara/inference-sub000/internal/cst"
)

// emptySourceFileNode is a fake CST root with no children, standing in for
// a real parse — Load's own mod-declaration handling (scanModules,
// buildModuleFromDecl, findSubmodulePath) never looks at CST content, so a
// Parser that always returns an empty source_file is enough to exercise
// the loader's file-discovery and arena-merging behavior in isolation.
type emptySourceFileNode struct{}

func (emptySourceFileNode) Kind() string                   { return "source_file" }
func (emptySourceFileNode) StartByte() int                  { return 0 }
func (emptySourceFileNode) EndByte() int                    { return 0 }
func (emptySourceFileNode) StartPosition() cst.Point         { return cst.Point{} }
func (emptySourceFileNode) EndPosition() cst.Point           { return cst.Point{} }
func (emptySourceFileNode) Child(int) cst.Node               { return nil }
func (emptySourceFileNode) ChildByFieldName(string) cst.Node { return nil }
func (emptySourceFileNode) ChildrenByFieldName(string) []cst.Node { return nil }
func (emptySourceFileNode) NamedChildren() []cst.Node        { return nil }
func (emptySourceFileNode) ChildCount() int                   { return 0 }
func (emptySourceFileNode) Utf8Text([]byte) string            { return "" }
func (emptySourceFileNode) HasError() bool                    { return false }
func (emptySourceFileNode) IsMissing() bool                   { return false }

func emptyParser(source []byte, path string) (cst.Node, error) {
	return emptySourceFileNode{}, nil
}

func TestLoadResolvesExternalSubmodule(t *testing.T) {
	dir := t.TempDir()
	libPath := filepath.Join(dir, "lib.inf")
	subPath := filepath.Join(dir, "sub.inf")

	if err := os.WriteFile(libPath, []byte("mod sub;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(subPath, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(emptyParser)
	a, err := loader.Load(libPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := len(a.SourceFiles()); got != 2 {
		t.Fatalf("expected 2 SourceFile nodes, got %d", got)
	}

	mods := a.FilterNodes(func(n ast.Node) bool {
		m, ok := n.(*ast.ModuleDefinition)
		return ok && m.Name.Name == "sub"
	})
	if len(mods) != 1 {
		t.Fatalf("expected exactly one ModuleDefinition named sub, got %d", len(mods))
	}
}

func TestLoadSurfacesReadErrorForMissingRoot(t *testing.T) {
	loader := NewLoader(emptyParser)
	if _, err := loader.Load(filepath.Join(t.TempDir(), "missing.inf")); err == nil {
		t.Error("expected an error for a root file that does not exist")
	}
}
