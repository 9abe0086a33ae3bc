package ast

import "github.com/Inferara/inference-sub000/internal/token"

// SimpleKind enumerates the fixed built-in keyword types (spec.md §3).
type SimpleKind int

const (
	Unit SimpleKind = iota
	Bool
	I8
	I16
	I32
	I64
	U8
	U16
	U32
	U64
)

var simpleKindNames = map[SimpleKind]string{
	Unit: "Unit", Bool: "Bool",
	I8: "i8", I16: "i16", I32: "i32", I64: "i64",
	U8: "u8", U16: "u16", U32: "u32", U64: "u64",
}

func (k SimpleKind) String() string {
	if s, ok := simpleKindNames[k]; ok {
		return s
	}
	return "<unknown-simple-type>"
}

// simpleKindByKeyword is the inverse table the builder uses to recognize a
// Simple type's keyword text.
var simpleKindByKeyword = map[string]SimpleKind{
	"unit": Unit, "bool": Bool,
	"i8": I8, "i16": I16, "i32": I32, "i64": I64,
	"u8": U8, "u16": U16, "u32": U32, "u64": U64,
}

// SimpleKindFromKeyword recognizes one of the fixed primitive keywords.
func SimpleKindFromKeyword(text string) (SimpleKind, bool) {
	k, ok := simpleKindByKeyword[text]
	return k, ok
}

// Type is the tagged union of syntactic type forms (spec.md §3).
type Type interface {
	Node
	typeNode()
}

// SimpleType is one of the fixed built-in keyword types.
type SimpleType struct {
	Base
	Kind SimpleKind
}

func (t *SimpleType) typeNode() {}

// ArrayType is `[ElementType; SizeExpression]`. Size is an arbitrary
// expression, typically a number literal, evaluated later by the checker.
type ArrayType struct {
	Base
	Element Type
	Size    Expression
}

func (t *ArrayType) typeNode() {}

// GenericType is `Base<P1, P2, ...>`.
type GenericType struct {
	Base
	BaseName   *Identifier
	Parameters []Type
}

func (t *GenericType) typeNode() {}

// FunctionType is `fn(Params?) -> Return?`.
type FunctionType struct {
	Base
	Parameters []Type // nil means "unspecified", not "zero parameters"
	HasParams  bool
	Returns    Type // nil if absent
}

func (t *FunctionType) typeNode() {}

// QualifiedNameType is `qualifier::name`.
type QualifiedNameType struct {
	Base
	Qualifier *Identifier
	Name      *Identifier
}

func (t *QualifiedNameType) typeNode() {}

// QualifiedType is the import-alias form `alias::name`. It is syntactically
// identical to QualifiedNameType but the builder tags it separately because
// the two forms are produced by distinct CST node kinds (import aliasing
// vs. a plain qualified reference). The checker resolves both the same way,
// by Name alone (analyzer's validateType and typesystem.FromASTType).
type QualifiedType struct {
	Base
	Alias *Identifier
	Name  *Identifier
}

func (t *QualifiedType) typeNode() {}

// CustomType is any other identifier, resolved later against the symbol
// table (spec.md invariant 4).
type CustomType struct {
	Base
	Name *Identifier
}

func (t *CustomType) typeNode() {}

// TypeLocation is a helper for builders that need a location spanning just
// the type's own text when no richer span is available.
func TypeLocation(t Type) token.Location {
	if t == nil {
		return token.Zero
	}
	return t.Location()
}
