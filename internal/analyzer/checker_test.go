package analyzer

import (
	"testing"

	"github.com/Inferara/inference-sub000/internal/arena"
	"github.com/Inferara/inference-sub000/internal/ast"
	"github.com/Inferara/inference-sub000/internal/diagnostics"
	"github.com/Inferara/inference-sub000/internal/typesystem"
)

// idGen hands out unique node ids within one test, standing in for the
// builder's arena.Allocator since these tests construct an AST directly
// rather than driving it through a CST (spec.md §8's "concrete end-to-end
// scenarios" are expressed at the AST level here; the external parser that
// would normally produce the CST is out of scope).
type idGen struct{ next uint32 }

func (g *idGen) alloc() uint32 {
	g.next++
	return g.next
}

func ident(g *idGen, name string) *ast.Identifier {
	return &ast.Identifier{Base: ast.Base{Id: g.alloc()}, Name: name}
}

func simpleType(g *idGen, kind ast.SimpleKind) *ast.SimpleType {
	return &ast.SimpleType{Base: ast.Base{Id: g.alloc()}, Kind: kind}
}

func customType(g *idGen, name string) *ast.CustomType {
	return &ast.CustomType{Base: ast.Base{Id: g.alloc()}, Name: ident(g, name)}
}

func newArena(sf *ast.SourceFile) *arena.Arena {
	a := arena.New()
	a.AddNode(sf, arena.NoParent)
	return a
}

// --- scenario 1: function, binary op, return (spec.md §8.1) ---------------

func TestScenario_FunctionBinaryOpReturn(t *testing.T) {
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

	ctx, errs := InferTypes(newArena(sf))
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	for _, id := range []*ast.Identifier{left, right} {
		ti, ok := ctx.GetNodeTypeInfo(id.NodeID())
		if !ok || !ti.Equal(typesystem.Number(typesystem.I32)) {
			t.Errorf("operand %q: got %v, ok=%v; want i32", id.Name, ti, ok)
		}
	}
	bt, ok := ctx.GetNodeTypeInfo(binary.NodeID())
	if !ok || !bt.Equal(typesystem.Number(typesystem.I32)) {
		t.Errorf("binary expression type = %v, ok=%v; want i32", bt, ok)
	}
}

// --- scenario 2: uzumaki inference (spec.md §8.2) --------------------------

func TestScenario_UzumakiInference(t *testing.T) {
	g := &idGen{}
	uz1 := &ast.UzumakiExpression{Base: ast.Base{Id: g.alloc()}}
	varDef := &ast.VariableDefinitionStatement{
		Base: ast.Base{Id: g.alloc()}, Name: ident(g, "x"), Type: simpleType(g, ast.U16), Value: uz1,
	}
	uz2 := &ast.UzumakiExpression{Base: ast.Base{Id: g.alloc()}}
	ret := &ast.ReturnStatement{Base: ast.Base{Id: g.alloc()}, Expression: uz2}
	block := &ast.Block{Base: ast.Base{Id: g.alloc()}, Statements: []ast.Statement{varDef, ret}}

	fn := &ast.FunctionDefinition{
		Base: ast.Base{Id: g.alloc()}, Name: ident(g, "a"), Returns: simpleType(g, ast.I32), Body: block,
	}
	sf := &ast.SourceFile{Base: ast.Base{Id: g.alloc()}, Path: "a.inf", Definitions: []ast.Definition{fn}}

	ctx, errs := InferTypes(newArena(sf))
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if ti, ok := ctx.GetNodeTypeInfo(uz1.NodeID()); !ok || !ti.Equal(typesystem.Number(typesystem.U16)) {
		t.Errorf("first @ = %v, ok=%v; want u16", ti, ok)
	}
	if ti, ok := ctx.GetNodeTypeInfo(uz2.NodeID()); !ok || !ti.Equal(typesystem.Number(typesystem.I32)) {
		t.Errorf("second @ = %v, ok=%v; want i32", ti, ok)
	}
}

// --- scenario 3: method call arity error (spec.md §8.3) --------------------

func TestScenario_MethodCallArityError(t *testing.T) {
	g := &idGen{}

	gRetArg := ident(g, "a")
	gRet := &ast.ReturnStatement{Base: ast.Base{Id: g.alloc()}, Expression: gRetArg}
	gBody := &ast.Block{Base: ast.Base{Id: g.alloc()}, Statements: []ast.Statement{gRet}}
	method := &ast.FunctionDefinition{
		Base:      ast.Base{Id: g.alloc()},
		Name:      ident(g, "g"),
		Arguments: []ast.Argument{{Kind: ast.ArgumentNamed, Name: ident(g, "a"), Type: simpleType(g, ast.I32)}},
		Returns:   simpleType(g, ast.I32),
		Body:      gBody,
	}
	structDef := &ast.StructDefinition{
		Base:    ast.Base{Id: g.alloc()},
		Name:    ident(g, "P"),
		Fields:  []ast.StructField{{Name: ident(g, "x"), Type: simpleType(g, ast.I32)}},
		Methods: []*ast.FunctionDefinition{method},
	}

	recv := ident(g, "p")
	call := &ast.FunctionCallExpression{
		Base:     ast.Base{Id: g.alloc()},
		Function: &ast.MemberAccessExpression{Base: ast.Base{Id: g.alloc()}, Expression: recv, Name: ident(g, "g")},
	}
	tRet := &ast.ReturnStatement{Base: ast.Base{Id: g.alloc()}, Expression: call}
	tBody := &ast.Block{Base: ast.Base{Id: g.alloc()}, Statements: []ast.Statement{tRet}}
	tFn := &ast.FunctionDefinition{
		Base:      ast.Base{Id: g.alloc()},
		Name:      ident(g, "t"),
		Arguments: []ast.Argument{{Kind: ast.ArgumentNamed, Name: ident(g, "p"), Type: customType(g, "P")}},
		Returns:   simpleType(g, ast.I32),
		Body:      tBody,
	}

	sf := &ast.SourceFile{Base: ast.Base{Id: g.alloc()}, Path: "a.inf", Definitions: []ast.Definition{structDef, tFn}}

	_, errs := InferTypes(newArena(sf))
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %d: %v", len(errs), errs)
	}
	acm, ok := errs[0].(*diagnostics.ArgumentCountMismatch)
	if !ok {
		t.Fatalf("expected ArgumentCountMismatch, got %T: %v", errs[0], errs[0])
	}
	if acm.Kind != diagnostics.CallMethod || acm.Name != "g" || acm.Expected != 1 || acm.Found != 0 {
		t.Errorf("got %+v, want kind=method name=g expected=1 found=0", acm)
	}
}

// --- scenario 4: enum variant missing (spec.md §8.4) -----------------------

func TestScenario_EnumVariantMissing(t *testing.T) {
	g := &idGen{}
	enumDef := &ast.EnumDefinition{
		Base: ast.Base{Id: g.alloc()}, Name: ident(g, "C"),
		Variants: []*ast.Identifier{ident(g, "Red"), ident(g, "Green")},
	}
	fBody := &ast.Block{Base: ast.Base{Id: g.alloc()}}
	fFn := &ast.FunctionDefinition{
		Base:      ast.Base{Id: g.alloc()},
		Name:      ident(g, "f"),
		Arguments: []ast.Argument{{Kind: ast.ArgumentNamed, Name: ident(g, "c"), Type: customType(g, "C")}},
		Body:      fBody,
	}

	variantAccess := &ast.TypeMemberAccessExpression{
		Base: ast.Base{Id: g.alloc()}, Expression: ident(g, "C"), Name: ident(g, "Yellow"),
	}
	call := &ast.FunctionCallExpression{
		Base: ast.Base{Id: g.alloc()}, Function: ident(g, "f"),
		Arguments: []ast.CallArgument{{Expr: variantAccess}},
	}
	tBody := &ast.Block{
		Base: ast.Base{Id: g.alloc()}, Statements: []ast.Statement{&ast.ExpressionStatement{Base: ast.Base{Id: g.alloc()}, Expression: call}},
	}
	tFn := &ast.FunctionDefinition{Base: ast.Base{Id: g.alloc()}, Name: ident(g, "t"), Body: tBody}

	sf := &ast.SourceFile{Base: ast.Base{Id: g.alloc()}, Path: "a.inf", Definitions: []ast.Definition{enumDef, fFn, tFn}}

	_, errs := InferTypes(newArena(sf))
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %d: %v", len(errs), errs)
	}
	vnf, ok := errs[0].(*diagnostics.VariantNotFound)
	if !ok {
		t.Fatalf("expected VariantNotFound, got %T: %v", errs[0], errs[0])
	}
	if vnf.EnumName != "C" || vnf.VariantName != "Yellow" {
		t.Errorf("got %+v, want enum=C variant=Yellow", vnf)
	}
}

// --- scenario 5: generic identity inferred (spec.md §8.5) ------------------

func TestScenario_GenericIdentityInferred(t *testing.T) {
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

	innerCall := &ast.FunctionCallExpression{
		Base: ast.Base{Id: g.alloc()}, Function: ident(g, "id"),
		Arguments: []ast.CallArgument{{Expr: &ast.NumberLiteral{Base: ast.Base{Id: g.alloc()}, Text: "42"}}},
	}
	tBody := &ast.Block{
		Base:       ast.Base{Id: g.alloc()},
		Statements: []ast.Statement{&ast.ReturnStatement{Base: ast.Base{Id: g.alloc()}, Expression: innerCall}},
	}
	tFn := &ast.FunctionDefinition{
		Base: ast.Base{Id: g.alloc()}, Name: ident(g, "t"), Returns: simpleType(g, ast.I32), Body: tBody,
	}

	sf := &ast.SourceFile{Base: ast.Base{Id: g.alloc()}, Path: "a.inf", Definitions: []ast.Definition{idFn, tFn}}

	ctx, errs := InferTypes(newArena(sf))
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	ti, ok := ctx.GetNodeTypeInfo(innerCall.NodeID())
	if !ok || !ti.Equal(typesystem.Number(typesystem.I32)) {
		t.Errorf("id(42) result type = %v, ok=%v; want i32", ti, ok)
	}
}

// --- scenario 6: multi-file module resolution (spec.md §8.6) --------------

func TestScenario_MultiFileModuleResolution(t *testing.T) {
	g := &idGen{}
	helloBody := &ast.Block{
		Base: ast.Base{Id: g.alloc()},
		Statements: []ast.Statement{&ast.ReturnStatement{
			Base: ast.Base{Id: g.alloc()}, Expression: &ast.NumberLiteral{Base: ast.Base{Id: g.alloc()}, Text: "1"},
		}},
	}
	hello := &ast.FunctionDefinition{
		Base: ast.Base{Id: g.alloc()}, Name: ident(g, "hello"), Returns: simpleType(g, ast.I32),
		Body: helloBody, Visibility: ast.Public,
	}
	sub := &ast.SourceFile{Base: ast.Base{Id: g.alloc()}, Path: "src/sub.inf", Definitions: []ast.Definition{hello}}

	// src/lib.inf's `mod sub;` is already resolved here — the loader that
	// fills in Body from the sibling file's definitions is out of scope for
	// the checker (spec.md §9 "interior mutability for late-filled module
	// bodies").
	modDef := &ast.ModuleDefinition{
		Base: ast.Base{Id: g.alloc()}, Name: ident(g, "sub"), Body: sub.Definitions,
	}
	lib := &ast.SourceFile{Base: ast.Base{Id: g.alloc()}, Path: "src/lib.inf", Definitions: []ast.Definition{modDef}}

	a := arena.New()
	a.AddNode(lib, arena.NoParent)
	a.AddNode(sub, arena.NoParent)

	ctx, errs := InferTypes(a)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if len(ctx.SourceFiles()) != 2 {
		t.Fatalf("expected 2 SourceFile nodes in the unified arena, got %d", len(ctx.SourceFiles()))
	}
	sym, _, ok := ctx.Symbols.ResolveQualifiedName([]string{"sub", "hello"}, ctx.Symbols.RootScopeID())
	if !ok {
		t.Fatal("hello should be reachable via sub::hello from the root scope")
	}
	sig, ok := sym.AsFunction()
	if !ok || sig.Name != "hello" {
		t.Errorf("resolved symbol = %+v, want function hello", sym)
	}
}
