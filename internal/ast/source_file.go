package ast

// DirectiveKind distinguishes directive forms; only Use exists today
// (spec.md §3), but the type is kept open the way the teacher's
// DirectiveStatement leaves room for further directive kinds.
type DirectiveKind int

const (
	DirectiveUse DirectiveKind = iota
)

// UseDirective is `use path::{a, b as c};` or `use path::*;` or a bare
// `use path::name from "file";` form. ImportedTypes and Segments/From are
// all optional depending on which surface syntax produced the directive.
type UseDirective struct {
	Base
	Kind          DirectiveKind
	ImportedTypes []*Identifier // explicit `{a, b as c}` list; nil otherwise
	Segments      []*Identifier // path segments, e.g. ["pkg", "mod", "Name"]
	From          *string       // optional `from "file"` clause
}

func (u *UseDirective) NodeKind() DirectiveKind { return u.Kind }

// SourceFile is the root of one parsed file's AST. Per spec.md invariant 3
// its own arena parent id is the sentinel arena.NoParent.
type SourceFile struct {
	Base
	Path        string
	Source      string
	Directives  []*UseDirective
	Definitions []Definition
}
