package typesystem

// Substitute replaces every Generic(name) leaf bound in bindings, recursing
// into Array's element type; an unbound generic passes through unchanged
// (spec.md §4.5). Every other kind is returned as-is — primitives, structs,
// enums, specs and customs never contain a nested generic in this type
// model (a struct's own type parameters live in TypeParams as names, not as
// nested TypeInfo values, so there is nothing further to substitute into).
func (ti TypeInfo) Substitute(bindings map[string]TypeInfo) TypeInfo {
	switch ti.Kind {
	case KindGeneric:
		if bound, ok := bindings[ti.Name]; ok {
			return bound
		}
		return ti
	case KindArray:
		substituted := ti.Element.Substitute(bindings)
		return TypeInfo{Kind: KindArray, Element: &substituted, Length: ti.Length, TypeParams: ti.TypeParams}
	default:
		return ti
	}
}

// HasUnresolvedParams reports whether any Generic(_) appears anywhere in
// ti's type tree (spec.md §4.5, §8).
func (ti TypeInfo) HasUnresolvedParams() bool {
	switch ti.Kind {
	case KindGeneric:
		return true
	case KindArray:
		return ti.Element != nil && ti.Element.HasUnresolvedParams()
	default:
		return false
	}
}
