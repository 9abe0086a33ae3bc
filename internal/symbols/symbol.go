// Package symbols implements the hierarchical scope tree and symbol table
// described by spec.md §4.4: a tree of scopes, each owning named symbols,
// variables, methods, and import bookkeeping, rooted at a synthetic "root"
// scope preloaded with the builtin primitive types.
package symbols

import (
	"github.com/Inferara/inference-sub000/internal/ast"
	"github.com/Inferara/inference-sub000/internal/typesystem"
)

// SymbolKind tags which alternative of Symbol is populated (spec.md §4.4:
// `Symbol { Type | Struct | Enum | Spec | Function }`).
type SymbolKind int

const (
	SymType SymbolKind = iota
	SymStruct
	SymEnum
	SymSpec
	SymFunction
)

// StructFieldInfo is one registered struct field (spec.md §4.6 pass 1).
type StructFieldInfo struct {
	Name       string
	Type       typesystem.TypeInfo
	Visibility ast.Visibility
}

// StructInfo is a registered struct's shape: its fields (order-preserving
// for deterministic iteration/tests) and visibility.
type StructInfo struct {
	Name       string
	Fields     map[string]StructFieldInfo
	FieldOrder []string
	TypeParams []string
	Visibility ast.Visibility
}

// EnumInfo is a registered enum's variant names and visibility.
type EnumInfo struct {
	Name       string
	Variants   []string
	Visibility ast.Visibility
}

// FuncSignature is a registered function or method's signature, excluding
// `self` from ParamTypes (spec.md §4.6: "enforce arity against
// signature.param_types (which excludes self)").
type FuncSignature struct {
	Name       string
	TypeParams []string
	ParamTypes []typesystem.TypeInfo
	ReturnType typesystem.TypeInfo
}

// MethodInfo is one registered method on a struct (spec.md §4.4).
type MethodInfo struct {
	Signature  FuncSignature
	Visibility ast.Visibility
	ScopeID    uint32
	HasSelf    bool
}

// Symbol is the tagged union of named entities a scope can hold (spec.md
// §4.4, glossary "Symbol").
type Symbol struct {
	Kind     SymbolKind
	Type     typesystem.TypeInfo // meaningful when Kind == SymType
	Struct   *StructInfo         // meaningful when Kind == SymStruct
	Enum     *EnumInfo           // meaningful when Kind == SymEnum
	Name     string              // Spec name, or Function name
	Function *FuncSignature      // meaningful when Kind == SymFunction
}

// SymbolName returns the symbol's own name regardless of kind.
func (s Symbol) SymbolName() string {
	switch s.Kind {
	case SymStruct:
		return s.Struct.Name
	case SymEnum:
		return s.Enum.Name
	case SymFunction:
		return s.Function.Name
	default:
		return s.Name
	}
}

// AsTypeInfo converts a symbol into the TypeInfo it denotes as a type
// reference, mirroring the original's `Symbol::as_type_info` (grounded on
// symbol_table.rs): a Struct/Enum/Spec/Type symbol resolves to a TypeInfo;
// a Function symbol does not name a type and returns false.
func (s Symbol) AsTypeInfo() (typesystem.TypeInfo, bool) {
	switch s.Kind {
	case SymType:
		return s.Type, true
	case SymStruct:
		return typesystem.Struct(s.Struct.Name, s.Struct.TypeParams...), true
	case SymEnum:
		return typesystem.Enum(s.Enum.Name), true
	case SymSpec:
		return typesystem.Spec(s.Name), true
	default:
		return typesystem.TypeInfo{}, false
	}
}

// AsFunction returns the function signature if s is a function symbol.
func (s Symbol) AsFunction() (FuncSignature, bool) {
	if s.Kind == SymFunction {
		return *s.Function, true
	}
	return FuncSignature{}, false
}

// AsStruct returns the struct info if s is a struct symbol.
func (s Symbol) AsStruct() (*StructInfo, bool) {
	if s.Kind == SymStruct {
		return s.Struct, true
	}
	return nil, false
}

func symType(ti typesystem.TypeInfo) Symbol { return Symbol{Kind: SymType, Type: ti} }
func symStruct(info *StructInfo) Symbol     { return Symbol{Kind: SymStruct, Struct: info, Name: info.Name} }
func symEnum(info *EnumInfo) Symbol         { return Symbol{Kind: SymEnum, Enum: info, Name: info.Name} }
func symSpec(name string) Symbol            { return Symbol{Kind: SymSpec, Name: name} }
func symFunction(sig *FuncSignature) Symbol { return Symbol{Kind: SymFunction, Function: sig, Name: sig.Name} }
