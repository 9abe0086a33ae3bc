package typesystem

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Inferara/inference-sub000/internal/ast"
)

// FromASTType converts a syntactic ast.Type into its resolved TypeInfo
// (spec.md §4.5 `from_ast_type`). typeParamNames is the set of the
// enclosing function/struct's own declared type parameter names; a
// CustomType identifier matching one of them becomes Generic(name) rather
// than Custom(name). A primitive SimpleType never shadows a type
// parameter, even if a pathological signature reused a builtin keyword as
// a parameter name — the keyword table always wins for SimpleType nodes.
//
// There is no source file in the retrieval pack defining this conversion
// (see DESIGN.md); it is authored directly from spec.md §4.5 and from how
// every call site in the checker consumes its result.
func FromASTType(t ast.Type, typeParamNames map[string]bool) TypeInfo {
	switch n := t.(type) {
	case nil:
		return Default()
	case *ast.SimpleType:
		return fromSimpleKind(n.Kind)
	case *ast.ArrayType:
		element := FromASTType(n.Element, typeParamNames)
		return Array(element, arrayLength(n.Size))
	case *ast.GenericType:
		params := make([]string, 0, len(n.Parameters))
		for _, p := range n.Parameters {
			params = append(params, FromASTType(p, typeParamNames).String())
		}
		return Struct(n.BaseName.GetName(), params...)
	case *ast.FunctionType:
		return Function(renderFunctionSignature(n, typeParamNames))
	case *ast.QualifiedNameType:
		return customOrGeneric(n.Name.GetName(), typeParamNames)
	case *ast.QualifiedType:
		return customOrGeneric(n.Name.GetName(), typeParamNames)
	case *ast.CustomType:
		return customOrGeneric(n.Name.GetName(), typeParamNames)
	default:
		return Default()
	}
}

func customOrGeneric(name string, typeParamNames map[string]bool) TypeInfo {
	if typeParamNames[name] {
		return Generic(name)
	}
	return Custom(name)
}

func fromSimpleKind(kind ast.SimpleKind) TypeInfo {
	switch kind {
	case ast.Unit:
		return Default()
	case ast.Bool:
		return Boolean()
	default:
		if nk, ok := numberKindBySimple[kind]; ok {
			return Number(nk)
		}
		return Default()
	}
}

// arrayLength evaluates a size expression to a fixed length when it is a
// plain (unsuffixed or suffixed) number literal; any richer expression is
// left as an unspecified length, matching spec.md §4.5's "length optional"
// contract — the checker never needs to constant-fold arbitrary
// expressions to type-check, only to render a Display string.
func arrayLength(size ast.Expression) *int {
	lit, ok := size.(*ast.NumberLiteral)
	if !ok {
		return nil
	}
	text := strings.TrimSpace(lit.Text)
	if lit.Type != nil {
		// The raw text still carries the suffix (e.g. "10u32"); keep the digits.
		end := 0
		for end < len(text) && text[end] >= '0' && text[end] <= '9' {
			end++
		}
		text = text[:end]
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return nil
	}
	return &n
}

func renderFunctionSignature(t *ast.FunctionType, typeParamNames map[string]bool) string {
	var b strings.Builder
	b.WriteString("fn")
	if t.HasParams {
		b.WriteString("(")
		for i, p := range t.Parameters {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(FromASTType(p, typeParamNames).String())
		}
		b.WriteString(")")
	}
	ret := Default()
	if t.Returns != nil {
		ret = FromASTType(t.Returns, typeParamNames)
	}
	return fmt.Sprintf("%s -> %s", b.String(), ret.String())
}
