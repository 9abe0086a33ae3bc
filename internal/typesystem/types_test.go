package typesystem

import "testing"

// Grounded on core/type-checker/tests/type_info_tests.rs's
// type_info_construction/type_info_predicates modules.
func TestConstructionAndPredicates(t *testing.T) {
	if !Boolean().IsBool() {
		t.Fatal("Boolean() should be IsBool")
	}
	if !Number(I32).IsNumber() {
		t.Fatal("Number(I32) should be IsNumber")
	}
	if Boolean().IsNumber() {
		t.Fatal("Bool should not be IsNumber")
	}
	length := 10
	arr := Array(Number(I32), &length)
	if !arr.IsArray() {
		t.Fatal("Array(...) should be IsArray")
	}
	if !Struct("Point").IsStruct() {
		t.Fatal("Struct(...) should be IsStruct")
	}
	if !Generic("T").IsGeneric() {
		t.Fatal("Generic(...) should be IsGeneric")
	}
	if Default().Kind != KindUnit {
		t.Fatalf("Default() = %v, want Unit", Default())
	}
}

func TestEqual(t *testing.T) {
	if !Number(I32).Equal(Number(I32)) {
		t.Fatal("Number(I32) should equal itself")
	}
	if Number(I32).Equal(Number(I64)) {
		t.Fatal("different number widths must not be equal")
	}
	if !Struct("P").Equal(Struct("P")) {
		t.Fatal("same-name structs should be equal")
	}
	if Struct("P").Equal(Struct("Q")) {
		t.Fatal("different-name structs must not be equal")
	}
	length := 3
	if !Array(Boolean(), &length).Equal(Array(Boolean(), &length)) {
		t.Fatal("identical arrays should be equal")
	}
	if Array(Boolean(), &length).Equal(Array(Boolean(), nil)) {
		t.Fatal("arrays with different length-presence must not be equal")
	}
}

// Grounded on type_info_tests.rs's type_substitution module.
func TestSubstitute(t *testing.T) {
	bindings := map[string]TypeInfo{"T": Number(I32)}
	got := Generic("T").Substitute(bindings)
	if !got.Equal(Number(I32)) {
		t.Fatalf("Generic(T).Substitute = %v, want i32", got)
	}

	unbound := Generic("U").Substitute(bindings)
	if !unbound.Equal(Generic("U")) {
		t.Fatalf("unbound generic should pass through unchanged, got %v", unbound)
	}

	arr := Array(Generic("T"), nil).Substitute(bindings)
	if !arr.Equal(Array(Number(I32), nil)) {
		t.Fatalf("Array(T).Substitute = %v, want [i32]", arr)
	}
}

func TestSubstituteIdempotence(t *testing.T) {
	bindings := map[string]TypeInfo{"T": Number(I32)}
	ti := Array(Generic("T"), nil)
	once := ti.Substitute(bindings)
	twice := once.Substitute(bindings)
	if !once.Equal(twice) {
		t.Fatalf("substitute should be idempotent once bound: %v != %v", once, twice)
	}
}

// Grounded on type_info_tests.rs's has_unresolved_params module.
func TestHasUnresolvedParams(t *testing.T) {
	cases := []struct {
		name string
		ti   TypeInfo
		want bool
	}{
		{"bool", Boolean(), false},
		{"string", Str(), false},
		{"default", Default(), false},
		{"number", Number(I32), false},
		{"struct", Struct("P"), false},
		{"enum", Enum("C"), false},
		{"generic", Generic("T"), true},
		{"array-of-generic", Array(Generic("T"), nil), true},
		{"array-of-concrete", Array(Number(I32), nil), false},
	}
	for _, c := range cases {
		if got := c.ti.HasUnresolvedParams(); got != c.want {
			t.Errorf("%s: HasUnresolvedParams() = %v, want %v", c.name, got, c.want)
		}
	}
}

// Grounded on type_info_tests.rs's display module.
func TestDisplay(t *testing.T) {
	length := 10
	cases := []struct {
		ti   TypeInfo
		want string
	}{
		{Default(), "Unit"},
		{Boolean(), "Bool"},
		{Str(), "String"},
		{Number(I32), "i32"},
		{Number(U64), "u64"},
		{Array(Number(I32), &length), "[i32; 10]"},
		{Array(Number(I32), nil), "[i32]"},
		{Generic("T"), "T"},
		{Struct("Point"), "Point"},
		{Enum("Color"), "Color"},
		{Struct("Vec", "T"), "Vec<T>"},
		{Struct("Map", "K", "V"), "Map<K, V>"},
		{Function("fn(i32) -> bool"), "fn(i32) -> bool"},
	}
	for _, c := range cases {
		if got := c.ti.String(); got != c.want {
			t.Errorf("%v.String() = %q, want %q", c.ti, got, c.want)
		}
	}
}

func TestBuiltinRoundTrip(t *testing.T) {
	for _, name := range BuiltinNames {
		ti, ok := FromBuiltinStr(name)
		if !ok {
			t.Fatalf("FromBuiltinStr(%q) failed", name)
		}
		got, ok := ti.AsBuiltinStr()
		if !ok || got != name {
			t.Errorf("round-trip %q -> %v -> %q, ok=%v", name, ti, got, ok)
		}
	}
}
