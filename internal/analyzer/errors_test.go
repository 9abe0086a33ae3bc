package analyzer

import (
	"testing"

	"github.com/Inferara/inference-sub000/internal/ast"
	"github.com/Inferara/inference-sub000/internal/diagnostics"
)

// TestFreeCallArityMismatch exercises expectCheckError against a free
// function call (scenario 3, TestScenario_MethodCallArityError, already
// covers the method-call arity path with a direct type assertion).
func TestFreeCallArityMismatch(t *testing.T) {
	g := &idGen{}
	gFn := &ast.FunctionDefinition{
		Base:      ast.Base{Id: g.alloc()},
		Name:      ident(g, "g"),
		Arguments: []ast.Argument{{Kind: ast.ArgumentNamed, Name: ident(g, "x"), Type: simpleType(g, ast.I32)}},
		Body:      &ast.Block{Base: ast.Base{Id: g.alloc()}},
	}
	call := &ast.FunctionCallExpression{Base: ast.Base{Id: g.alloc()}, Function: ident(g, "g")}
	tFn := &ast.FunctionDefinition{
		Base: ast.Base{Id: g.alloc()}, Name: ident(g, "t"),
		Body: &ast.Block{
			Base:       ast.Base{Id: g.alloc()},
			Statements: []ast.Statement{&ast.ExpressionStatement{Base: ast.Base{Id: g.alloc()}, Expression: call}},
		},
	}
	sf := &ast.SourceFile{Base: ast.Base{Id: g.alloc()}, Path: "a.inf", Definitions: []ast.Definition{gFn, tFn}}

	e := expectCheckError(t, newArena(sf), "ArgumentCountMismatch for free call to g", func(e diagnostics.CheckError) bool {
		acm, ok := e.(*diagnostics.ArgumentCountMismatch)
		return ok && acm.Name == "g"
	})
	acm := e.(*diagnostics.ArgumentCountMismatch)
	if acm.Kind != diagnostics.CallFunction || acm.Expected != 1 || acm.Found != 0 {
		t.Errorf("got %+v, want kind=function expected=1 found=0", acm)
	}
}

// TestSelfParameterOutsideMethod covers spec.md §4.6 pass 4 step 2: a
// standalone (non-method) function declaring a `self` parameter must
// report SelfReferenceOutsideMethod, grounded on
// type_checker.rs:386-389's infer_variables.
func TestSelfParameterOutsideMethod(t *testing.T) {
	g := &idGen{}
	fn := &ast.FunctionDefinition{
		Base:      ast.Base{Id: g.alloc()},
		Name:      ident(g, "foo"),
		Arguments: []ast.Argument{{Kind: ast.ArgumentSelf}},
		Body:      &ast.Block{Base: ast.Base{Id: g.alloc()}},
	}
	sf := &ast.SourceFile{Base: ast.Base{Id: g.alloc()}, Path: "a.inf", Definitions: []ast.Definition{fn}}

	expectCheckError(t, newArena(sf), "SelfReferenceOutsideMethod for standalone fn foo(self)", func(e diagnostics.CheckError) bool {
		_, ok := e.(*diagnostics.SelfReferenceOutsideMethod)
		return ok
	})
}

// TestCollectFunctionSkipsRegistrationOnInvalidType covers spec.md §4.6
// pass 2 step 2: a function whose declared type fails validation must not
// be registered, so a second, validly-typed definition of the same name
// does not also report a spurious RegistrationFailed/AlreadyDefined on
// top of the original UnknownType.
func TestCollectFunctionSkipsRegistrationOnInvalidType(t *testing.T) {
	g := &idGen{}
	invalid := &ast.FunctionDefinition{
		Base:      ast.Base{Id: g.alloc()},
		Name:      ident(g, "f"),
		Arguments: []ast.Argument{{Kind: ast.ArgumentNamed, Name: ident(g, "x"), Type: customType(g, "Bogus")}},
		Body:      &ast.Block{Base: ast.Base{Id: g.alloc()}},
	}
	valid := &ast.FunctionDefinition{
		Base: ast.Base{Id: g.alloc()}, Name: ident(g, "f"),
		Body: &ast.Block{Base: ast.Base{Id: g.alloc()}},
	}
	sf := &ast.SourceFile{Base: ast.Base{Id: g.alloc()}, Path: "a.inf", Definitions: []ast.Definition{invalid, valid}}

	_, errs := InferTypes(newArena(sf))
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error (UnknownType only, no spurious RegistrationFailed), got %d: %v", len(errs), errs)
	}
	if _, ok := errs[0].(*diagnostics.UnknownType); !ok {
		t.Fatalf("expected UnknownType, got %T: %v", errs[0], errs[0])
	}
}
