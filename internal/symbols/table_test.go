package symbols

import (
	"testing"

	"github.com/Inferara/inference-sub000/internal/ast"
	"github.com/Inferara/inference-sub000/internal/token"
	"github.com/Inferara/inference-sub000/internal/typesystem"
)

// Grounded on symbol_table.rs's builtin-preload behavior (spec.md §4.4).
func TestBuiltinPreload(t *testing.T) {
	st := NewSymbolTable()
	for _, name := range typesystem.BuiltinNames {
		ti, ok := st.LookupType(name)
		if !ok {
			t.Fatalf("builtin %q not preloaded", name)
		}
		want, _ := typesystem.FromBuiltinStr(name)
		if !ti.Equal(want) {
			t.Errorf("builtin %q = %v, want %v", name, ti, want)
		}
	}
}

func TestPushPopScope(t *testing.T) {
	st := NewSymbolTable()
	root := st.CurrentScopeID()
	child := st.PushScopeWithName("fn_body", ast.Private)
	if child == root {
		t.Fatal("push should create a new scope id")
	}
	if st.CurrentScopeID() != child {
		t.Fatal("push should make the new scope current")
	}
	st.PopScope()
	if st.CurrentScopeID() != root {
		t.Fatal("pop should return to the parent scope")
	}
}

func TestVariableShadowing(t *testing.T) {
	st := NewSymbolTable()
	if err := st.PushVariableToScope("x", 1, typesystem.Number(typesystem.I32), token.Zero); err != nil {
		t.Fatal(err)
	}
	st.PushScopeWithName("inner", ast.Private)
	if err := st.PushVariableToScope("x", 2, typesystem.Boolean(), token.Zero); err != nil {
		t.Fatal(err)
	}
	ti, ok := st.LookupVariable("x")
	if !ok || !ti.Equal(typesystem.Boolean()) {
		t.Fatalf("inner x should shadow outer: got %v, ok=%v", ti, ok)
	}
	st.PopScope()
	ti, ok = st.LookupVariable("x")
	if !ok || !ti.Equal(typesystem.Number(typesystem.I32)) {
		t.Fatalf("outer x should be visible again: got %v, ok=%v", ti, ok)
	}
}

func TestDuplicateRegistrationFails(t *testing.T) {
	st := NewSymbolTable()
	if err := st.RegisterEnum(&EnumInfo{Name: "Color"}, token.Zero); err != nil {
		t.Fatal(err)
	}
	if err := st.RegisterEnum(&EnumInfo{Name: "Color"}, token.Zero); err == nil {
		t.Fatal("duplicate registration in the same scope must fail")
	}
}

// Grounded on SPEC_FULL.md supplemented feature 3: resolve_qualified_name.
func TestResolveQualifiedName(t *testing.T) {
	st := NewSymbolTable()
	modID := st.PushScopeWithName("sub", ast.Public)
	sig := FuncSignature{Name: "hello", ReturnType: typesystem.Number(typesystem.I32)}
	if err := st.RegisterFunction(&sig, token.Zero); err != nil {
		t.Fatal(err)
	}
	st.PopScope()

	sym, scopeID, ok := st.ResolveQualifiedName([]string{"sub", "hello"}, st.RootScopeID())
	if !ok {
		t.Fatal("sub::hello should resolve")
	}
	if scopeID != modID {
		t.Errorf("resolved scope id = %d, want %d", scopeID, modID)
	}
	fn, ok := sym.AsFunction()
	if !ok || fn.Name != "hello" {
		t.Fatalf("resolved symbol = %+v, want function hello", sym)
	}
}

func TestResolveQualifiedNameSelfPrefix(t *testing.T) {
	st := NewSymbolTable()
	if err := st.RegisterEnum(&EnumInfo{Name: "Color"}, token.Zero); err != nil {
		t.Fatal(err)
	}
	_, _, ok := st.ResolveQualifiedName([]string{"self", "Color"}, st.RootScopeID())
	if !ok {
		t.Fatal("self::Color should resolve starting from the given scope")
	}
}

// Grounded on SPEC_FULL.md supplemented feature 4: resolve_name checks
// resolved imports in the *same* scope before ascending to the parent.
func TestResolveNameImportVsParentLocal(t *testing.T) {
	st := NewSymbolTable()
	if err := st.RegisterEnum(&EnumInfo{Name: "Outer"}, token.Zero); err != nil {
		t.Fatal(err)
	}
	childID := st.PushScopeWithName("inner", ast.Private)
	st.RecordResolvedImport(childID, ResolvedImport{
		LocalName:         "Outer",
		Symbol:            symEnum(&EnumInfo{Name: "Imported"}),
		DefinitionScopeID: 99,
	})

	sym, _, ok := st.ResolveName("Outer")
	if !ok {
		t.Fatal("Outer should resolve")
	}
	if sym.Name != "Imported" {
		t.Fatalf("a resolved import in the current scope must win over a parent local, got %+v", sym)
	}
}

func TestLookupTypeLowercaseFallback(t *testing.T) {
	st := NewSymbolTable()
	if err := st.RegisterEnum(&EnumInfo{Name: "color"}, token.Zero); err != nil {
		t.Fatal(err)
	}
	ti, ok := st.LookupType("Color")
	if !ok || ti.Kind != typesystem.KindEnum {
		t.Fatalf("LookupType(\"Color\") should fall back to lowercase \"color\": got %v, ok=%v", ti, ok)
	}
}
