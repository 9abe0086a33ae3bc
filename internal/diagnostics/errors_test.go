package diagnostics

import (
	"testing"

	"github.com/Inferara/inference-sub000/internal/ast"
	"github.com/Inferara/inference-sub000/internal/token"
)

// Grounded on errors.rs's #[error("...")] templates (SPEC_FULL.md
// supplemented feature 5) and the teacher's analyzer_errors_test.go idiom
// of asserting exact message text.
func TestErrorWording(t *testing.T) {
	loc := token.Zero
	cases := []struct {
		name string
		err  CheckError
		want string
	}{
		{"unknown-type", NewUnknownType("Foo", loc), "unknown type `Foo`"},
		{"unknown-identifier", NewUnknownIdentifier("x", loc), "use of undeclared variable `x`"},
		{"undefined-function", NewUndefinedFunction("f", loc), "call to undefined function `f`"},
		{"field-not-found", NewFieldNotFound("P", "x", loc), "field `x` not found on struct `P`"},
		{"variant-not-found", NewVariantNotFound("C", "Yellow", loc), "variant `Yellow` not found on enum `C`"},
		{
			"argument-count-method",
			NewArgumentCountMismatch(CallMethod, "g", 1, 0, loc),
			"method `g` expects 1 arguments, but 0 provided",
		},
		{
			"type-mismatch-assignment",
			NewTypeMismatch("i32", "Bool", ContextAssign(), loc),
			"type mismatch in assignment: expected `i32`, found `Bool`",
		},
		{
			"type-mismatch-func-arg",
			NewTypeMismatch("i32", "Bool", ContextFuncArg("add", 0), loc),
			"type mismatch in argument 0 of function `add`: expected `i32`, found `Bool`",
		},
		{
			"binary-operand-mismatch",
			NewBinaryOperandTypeMismatch(ast.Add, "i32", "i64", loc),
			"cannot apply operator `+` to operands of different types: `i32` and `i64`",
		},
		{"self-outside-method", NewSelfReferenceOutsideMethod(loc), "self reference is only allowed in methods, not functions"},
		{"empty-glob", NewEmptyGlobImport(loc), "glob import path cannot be empty"},
		{"circular-import", NewCircularImport("a::b", loc), "circular glob import detected: a::b::*"},
		{
			"registration-failed-with-reason",
			AlreadyDefined(RegistrationFunction, "f", loc),
			"error registering function `f`: already defined in this scope",
		},
		{"cannot-infer-uzumaki", NewCannotInferUzumakiType(loc), "cannot infer type for uzumaki expression assigned to variable of unknown type"},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Errorf("%s: Error() = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestBagDedup(t *testing.T) {
	bag := NewBag()
	loc := token.Zero
	bag.Add(NewUnknownType("T", loc))
	bag.Add(NewUnknownType("T", loc))
	bag.Add(NewUnknownType("U", loc))

	if bag.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (identical triggers must dedup, spec.md §8)", bag.Len())
	}
}
