package analyzer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/Inferara/inference-sub000/internal/ast"
)

// dumpTypedNodes renders every arena node that has an entry in the typed
// side-table as one deterministic line, in arena insertion order, so a
// whole pass's output can be pinned down in one golden string instead of a
// handful of individual GetNodeTypeInfo assertions (spec.md §4.6 "the typed
// side-table is the pass's externally visible result").
func dumpTypedNodes(ctx *TypedContext) string {
	var sb strings.Builder
	for _, n := range ctx.Arena.FilterNodes(func(ast.Node) bool { return true }) {
		ti, ok := ctx.GetNodeTypeInfo(n.NodeID())
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "%d %T -> %s\n", n.NodeID(), n, ti.String())
	}
	return sb.String()
}

// assertSnapshot fails with a unified diff between got and want, in the
// same shape termfx-morfx's util.UnifiedDiff renders for a human reviewing
// a mismatch, rather than dumping both full strings for the reader to
// eyeball side by side.
func assertSnapshot(t *testing.T, name, got, want string) {
	t.Helper()
	if got == want {
		return
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: name + " (want)",
		ToFile:   name + " (got)",
		Context:  2,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		t.Fatalf("%s: snapshot mismatch and diff itself failed: %v\nwant:\n%s\ngot:\n%s", name, err, want, got)
	}
	t.Fatalf("%s: snapshot mismatch:\n%s", name, text)
}

// TestScenario_FunctionBinaryOpReturnSnapshot pins down the whole typed
// side-table produced by scenario 1 (spec.md §8.1) in one golden string,
// rather than only spot-checking the operands and the binary expression.
func TestScenario_FunctionBinaryOpReturnSnapshot(t *testing.T) {
	g := &idGen{}
	left := ident(g, "a")
	right := ident(g, "b")
	binary := &ast.BinaryExpression{Base: ast.Base{Id: g.alloc()}, Left: left, Operator: ast.Add, Right: right}
	ret := &ast.ReturnStatement{Base: ast.Base{Id: g.alloc()}, Expression: binary}
	block := &ast.Block{Base: ast.Base{Id: g.alloc()}, Statements: []ast.Statement{ret}}

	fn := &ast.FunctionDefinition{
		Base: ast.Base{Id: g.alloc()},
		Name: ident(g, "add"),
		Arguments: []ast.Argument{
			{Kind: ast.ArgumentNamed, Name: ident(g, "a"), Type: simpleType(g, ast.I32)},
			{Kind: ast.ArgumentNamed, Name: ident(g, "b"), Type: simpleType(g, ast.I32)},
		},
		Returns: simpleType(g, ast.I32),
		Body:    block,
	}
	sf := &ast.SourceFile{Base: ast.Base{Id: g.alloc()}, Path: "a.inf", Definitions: []ast.Definition{fn}}

	// newArena registers only sf; dumpTypedNodes walks the arena, so the
	// nodes built above are added under sf for their stamps to be seen.
	a := newArena(sf)
	for _, n := range []ast.Node{left, right, binary, ret, block, fn} {
		a.AddNode(n, sf.NodeID())
	}
	ctx := expectNoErrors(t, a)

	want := fmt.Sprintf(
		"%d *ast.Identifier -> i32\n"+
			"%d *ast.Identifier -> i32\n"+
			"%d *ast.BinaryExpression -> i32\n",
		left.NodeID(), right.NodeID(), binary.NodeID(),
	)
	assertSnapshot(t, "scenario1-typed-nodes", dumpTypedNodes(ctx), want)
}

// TestScenario_GenericIdentityInferredSnapshot does the same for scenario 5
// (spec.md §8.5): the call site through the generic function resolves to a
// concrete i32 entry in the side-table, not a leftover unresolved type
// parameter; only x inside id's own body keeps the type parameter T.
func TestScenario_GenericIdentityInferredSnapshot(t *testing.T) {
	g := &idGen{}
	typeParamT := ident(g, "T")
	xRef := ident(g, "x")
	idBody := &ast.Block{
		Base:       ast.Base{Id: g.alloc()},
		Statements: []ast.Statement{&ast.ReturnStatement{Base: ast.Base{Id: g.alloc()}, Expression: xRef}},
	}
	idFn := &ast.FunctionDefinition{
		Base:           ast.Base{Id: g.alloc()},
		Name:           ident(g, "id"),
		TypeParameters: []*ast.Identifier{typeParamT},
		Arguments:      []ast.Argument{{Kind: ast.ArgumentNamed, Name: ident(g, "x"), Type: customType(g, "T")}},
		Returns:        customType(g, "T"),
		Body:           idBody,
	}

	arg := &ast.NumberLiteral{Base: ast.Base{Id: g.alloc()}, Text: "42"}
	innerCall := &ast.FunctionCallExpression{
		Base: ast.Base{Id: g.alloc()}, Function: ident(g, "id"),
		Arguments: []ast.CallArgument{{Expr: arg}},
	}
	tBody := &ast.Block{
		Base:       ast.Base{Id: g.alloc()},
		Statements: []ast.Statement{&ast.ReturnStatement{Base: ast.Base{Id: g.alloc()}, Expression: innerCall}},
	}
	tFn := &ast.FunctionDefinition{
		Base: ast.Base{Id: g.alloc()}, Name: ident(g, "t"), Returns: simpleType(g, ast.I32), Body: tBody,
	}

	sf := &ast.SourceFile{Base: ast.Base{Id: g.alloc()}, Path: "a.inf", Definitions: []ast.Definition{idFn, tFn}}

	a := newArena(sf)
	for _, n := range []ast.Node{typeParamT, xRef, idBody, idFn, arg, innerCall, tBody, tFn} {
		a.AddNode(n, sf.NodeID())
	}
	ctx := expectNoErrors(t, a)

	want := fmt.Sprintf(
		"%d *ast.Identifier -> T\n"+
			"%d *ast.NumberLiteral -> i32\n"+
			"%d *ast.FunctionCallExpression -> i32\n",
		xRef.NodeID(), arg.NodeID(), innerCall.NodeID(),
	)
	assertSnapshot(t, "scenario5-typed-nodes", dumpTypedNodes(ctx), want)
}
