package analyzer

import "github.com/Inferara/inference-sub000/internal/typesystem"

// resolveCustom resolves a placeholder Custom(name) TypeInfo (produced by
// typesystem.FromASTType for any bare identifier it cannot classify on its
// own) against the symbol table, turning it into the Struct/Enum/Spec/Type
// TypeInfo that name actually denotes — ast.CustomType's doc comment calls
// this out directly: "resolved later against the symbol table". Recurses
// into an Array's element so `[C; 3]` resolves too. Leaves the placeholder
// in place if the name isn't registered (an unresolvable name has already
// been reported as UnknownType by validateType).
func (c *Checker) resolveCustom(ti typesystem.TypeInfo) typesystem.TypeInfo {
	switch ti.Kind {
	case typesystem.KindCustom:
		resolved, ok := c.ctx.Symbols.LookupType(ti.Name)
		if !ok {
			return ti
		}
		return c.resolveCustom(resolved)
	case typesystem.KindArray:
		if ti.Element == nil {
			return ti
		}
		elem := c.resolveCustom(*ti.Element)
		return typesystem.Array(elem, ti.Length)
	default:
		return ti
	}
}
