// Package typesystem holds TypeInfo, the checker's resolved view of a type
// (spec.md §4.5): a tagged union, structurally compared, with no coercion
// and no subtyping. Unlike the syntactic ast.Type, a TypeInfo never
// references CST positions — it is pure data the checker writes into the
// typed side-table keyed by AST node id.
package typesystem

import "github.com/Inferara/inference-sub000/internal/ast"

// Kind tags which alternative of TypeInfoKind a TypeInfo holds.
type Kind int

const (
	KindUnit Kind = iota
	KindBool
	KindString
	KindNumber
	KindArray
	KindStruct
	KindEnum
	KindSpec
	KindCustom
	KindGeneric
	KindFunction
)

// NumberKind enumerates the eight integer widths (spec.md §3).
type NumberKind int

const (
	I8 NumberKind = iota
	I16
	I32
	I64
	U8
	U16
	U32
	U64
)

var numberKindNames = map[NumberKind]string{
	I8: "i8", I16: "i16", I32: "i32", I64: "i64",
	U8: "u8", U16: "u16", U32: "u32", U64: "u64",
}

func (n NumberKind) String() string {
	if s, ok := numberKindNames[n]; ok {
		return s
	}
	return "<unknown-number-kind>"
}

var numberKindBySimple = map[ast.SimpleKind]NumberKind{
	ast.I8: I8, ast.I16: I16, ast.I32: I32, ast.I64: I64,
	ast.U8: U8, ast.U16: U16, ast.U32: U32, ast.U64: U64,
}

// TypeInfo is the tagged union described by spec.md §4.5. Only the fields
// relevant to Kind are meaningful; the rest are zero. TypeParams holds an
// instantiation's type arguments (e.g. `Vec<T>`'s `["T"]`), orthogonal to
// Kind — a Struct, Enum, Spec or Custom name can all carry them.
type TypeInfo struct {
	Kind       Kind
	Number     NumberKind  // meaningful when Kind == KindNumber
	Name       string      // Struct/Enum/Spec/Custom/Generic name, or Function's rendered signature
	Element    *TypeInfo   // meaningful when Kind == KindArray
	Length     *int        // meaningful when Kind == KindArray; nil means unknown/unspecified length
	TypeParams []string
}

// Boolean returns the Bool TypeInfo.
func Boolean() TypeInfo { return TypeInfo{Kind: KindBool} }

// Str returns the String TypeInfo. Named Str, not String, so it does not
// collide with fmt.Stringer's method of the same name on TypeInfo itself.
func Str() TypeInfo { return TypeInfo{Kind: KindString} }

// Number returns a TypeInfo for the given integer width.
func Number(kind NumberKind) TypeInfo { return TypeInfo{Kind: KindNumber, Number: kind} }

// Default returns the Unit TypeInfo — the zero value of TypeInfo already
// satisfies this, but Default documents it as the checker's intent, mirroring
// the original's `Default` derive (spec.md §4.5).
func Default() TypeInfo { return TypeInfo{Kind: KindUnit} }

// Struct returns a nominal struct TypeInfo.
func Struct(name string, typeParams ...string) TypeInfo {
	return TypeInfo{Kind: KindStruct, Name: name, TypeParams: typeParams}
}

// Enum returns a nominal enum TypeInfo.
func Enum(name string) TypeInfo { return TypeInfo{Kind: KindEnum, Name: name} }

// Spec returns a nominal spec TypeInfo.
func Spec(name string) TypeInfo { return TypeInfo{Kind: KindSpec, Name: name} }

// Custom returns an unresolved placeholder TypeInfo for name.
func Custom(name string) TypeInfo { return TypeInfo{Kind: KindCustom, Name: name} }

// Generic returns a type-parameter TypeInfo.
func Generic(name string) TypeInfo { return TypeInfo{Kind: KindGeneric, Name: name} }

// Array returns a TypeInfo for `[element; length]`, or `[element]` when
// length is nil (unspecified size).
func Array(element TypeInfo, length *int) TypeInfo {
	return TypeInfo{Kind: KindArray, Element: &element, Length: length}
}

// Function returns a TypeInfo wrapping a pre-rendered function signature
// string, displayed verbatim (spec.md §4.5) — the checker never decomposes
// it back into parameter/return types.
func Function(signature string) TypeInfo { return TypeInfo{Kind: KindFunction, Name: signature} }

// IsBool reports whether ti is the Bool type.
func (ti TypeInfo) IsBool() bool { return ti.Kind == KindBool }

// IsNumber reports whether ti is any of the eight integer widths.
func (ti TypeInfo) IsNumber() bool { return ti.Kind == KindNumber }

// IsArray reports whether ti is an array type.
func (ti TypeInfo) IsArray() bool { return ti.Kind == KindArray }

// IsStruct reports whether ti is a nominal struct type.
func (ti TypeInfo) IsStruct() bool { return ti.Kind == KindStruct }

// IsGeneric reports whether ti is a bare type-parameter reference.
func (ti TypeInfo) IsGeneric() bool { return ti.Kind == KindGeneric }

// Equal reports exact structural equality — no coercion, no subtyping
// (spec.md §4.5, §8 "Type equality is reflexive/symmetric/transitive").
func (ti TypeInfo) Equal(other TypeInfo) bool {
	if ti.Kind != other.Kind {
		return false
	}
	if !equalStrings(ti.TypeParams, other.TypeParams) {
		return false
	}
	switch ti.Kind {
	case KindNumber:
		return ti.Number == other.Number
	case KindArray:
		if (ti.Length == nil) != (other.Length == nil) {
			return false
		}
		if ti.Length != nil && *ti.Length != *other.Length {
			return false
		}
		return ti.Element.Equal(*other.Element)
	case KindStruct, KindEnum, KindSpec, KindCustom, KindGeneric, KindFunction:
		return ti.Name == other.Name
	default:
		return true
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// FromBuiltinStr recognizes one of the closed builtin names
// (i8..u64, bool, string) used by the symbol table's builtin preload
// (spec.md §4.4, §4.5 "round-trip through from_builtin_str/as_builtin_str").
func FromBuiltinStr(name string) (TypeInfo, bool) {
	switch name {
	case "bool":
		return Boolean(), true
	case "string":
		return Str(), true
	}
	if k, ok := simpleKindByKeyword(name); ok {
		if nk, ok := numberKindBySimple[k]; ok {
			return Number(nk), true
		}
	}
	return TypeInfo{}, false
}

// AsBuiltinStr renders ti as its builtin keyword, the inverse of
// FromBuiltinStr, if ti is one of the closed builtin set.
func (ti TypeInfo) AsBuiltinStr() (string, bool) {
	switch ti.Kind {
	case KindBool:
		return "bool", true
	case KindString:
		return "string", true
	case KindNumber:
		return ti.Number.String(), true
	default:
		return "", false
	}
}

func simpleKindByKeyword(name string) (ast.SimpleKind, bool) {
	return ast.SimpleKindFromKeyword(name)
}

// BuiltinNames is the closed set preloaded into the symbol table's root
// scope (spec.md §4.4).
var BuiltinNames = []string{"i8", "i16", "i32", "i64", "u8", "u16", "u32", "u64", "bool", "string"}
