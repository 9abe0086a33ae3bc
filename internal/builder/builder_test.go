package builder

import (
	"testing"

	"github.com/Inferara/inference-sub000/internal/ast"
	"github.com/Inferara/inference-sub000/internal/cst"
)

// fakeNode is a hand-rolled cst.Node, standing in for a real tree-sitter
// tree the way the package doc comment for internal/cst describes ("tests
// exercise the interface through a hand-rolled fake" — there is no
// published Inference grammar to drive the builder with a real one).
type fakeNode struct {
	kind     string
	text     string
	fields   map[string]*fakeNode
	children []*fakeNode
	hasError bool
}

func (n *fakeNode) Kind() string       { return n.kind }
func (n *fakeNode) StartByte() int     { return 0 }
func (n *fakeNode) EndByte() int       { return len(n.text) }
func (n *fakeNode) StartPosition() cst.Point { return cst.Point{Row: 0, Column: 0} }
func (n *fakeNode) EndPosition() cst.Point   { return cst.Point{Row: 0, Column: uint32(len(n.text))} }

func (n *fakeNode) Child(i int) cst.Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

func (n *fakeNode) ChildByFieldName(name string) cst.Node {
	f, ok := n.fields[name]
	if !ok {
		return nil
	}
	return f
}

func (n *fakeNode) ChildrenByFieldName(name string) []cst.Node {
	var out []cst.Node
	for _, c := range n.children {
		if c.kind == name {
			out = append(out, c)
		}
	}
	return out
}

func (n *fakeNode) NamedChildren() []cst.Node {
	out := make([]cst.Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *fakeNode) ChildCount() int { return len(n.children) }

func (n *fakeNode) Utf8Text(source []byte) string { return n.text }

func (n *fakeNode) HasError() bool  { return n.hasError }
func (n *fakeNode) IsMissing() bool { return false }

// buildFunctionSourceFile assembles a fake CST for:
//
//	fn main() -> i32 {}
func buildFunctionSourceFile() *fakeNode {
	name := &fakeNode{kind: "identifier", text: "main"}
	returns := &fakeNode{kind: "primitive_type", text: "i32"}
	body := &fakeNode{kind: "block"}
	fn := &fakeNode{
		kind: "function_definition",
		fields: map[string]*fakeNode{
			"name":    name,
			"returns": returns,
			"body":    body,
		},
	}
	return &fakeNode{
		kind:     "source_file",
		children: []*fakeNode{fn},
	}
}

func TestAddSourceCodeBuildsFunctionDefinition(t *testing.T) {
	b := New()
	root := buildFunctionSourceFile()

	sf, err := b.AddSourceCode(root, []byte("fn main() -> i32 {}"), "main.inf")
	if err != nil {
		t.Fatalf("AddSourceCode: %v", err)
	}
	if sf.Path != "main.inf" {
		t.Errorf("Path = %q, want main.inf", sf.Path)
	}
	if len(sf.Definitions) != 1 {
		t.Fatalf("expected 1 definition, got %d", len(sf.Definitions))
	}
	fn, ok := sf.Definitions[0].(*ast.FunctionDefinition)
	if !ok {
		t.Fatalf("expected *ast.FunctionDefinition, got %T", sf.Definitions[0])
	}
	if fn.Name.Name != "main" {
		t.Errorf("Name = %q, want main", fn.Name.Name)
	}
	if fn.Visibility != ast.Private {
		t.Errorf("Visibility = %v, want Private (no visibility field on the fake node)", fn.Visibility)
	}
	st, ok := fn.Returns.(*ast.SimpleType)
	if !ok || st.Kind != ast.I32 {
		t.Errorf("Returns = %+v, want SimpleType{Kind: I32}", fn.Returns)
	}
	if fn.Body == nil || len(fn.Body.Statements) != 0 {
		t.Errorf("Body = %+v, want an empty block", fn.Body)
	}
}

func TestAddSourceCodeRejectsNonSourceFileRoot(t *testing.T) {
	b := New()
	root := &fakeNode{kind: "function_definition"}
	if _, err := b.AddSourceCode(root, nil, "x.inf"); err == nil {
		t.Error("expected an error for a root node that is not source_file")
	}
}

func TestAddSourceCodeRejectsSyntaxErrorRoot(t *testing.T) {
	b := New()
	root := &fakeNode{kind: "source_file", hasError: true}
	if _, err := b.AddSourceCode(root, nil, "x.inf"); err == nil {
		t.Error("expected an error when the CST root reports HasError")
	}
}

func TestAddSourceCodeRequiresFunctionBody(t *testing.T) {
	b := New()
	fn := &fakeNode{
		kind: "function_definition",
		fields: map[string]*fakeNode{
			"name": {kind: "identifier", text: "f"},
		},
	}
	root := &fakeNode{kind: "source_file", children: []*fakeNode{fn}}
	if _, err := b.AddSourceCode(root, nil, "x.inf"); err == nil {
		t.Error("expected MissingField for a function_definition with no body")
	}
}
