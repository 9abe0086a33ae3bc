package symbols

// ImportKind distinguishes a plain `use a::b;`, a glob `use a::*;`, or a
// braced partial-import list `use a::{b, c};` (spec.md §4.4 `Import{
// path, kind }`).
type ImportKind int

const (
	ImportPlain ImportKind = iota
	ImportGlob
	ImportPartial
)

// ImportItem is one name in a braced partial import, with an optional
// `as` alias (alias empty means none — ast.UseDirective's builder does not
// yet parse the alias form; see DESIGN.md).
type ImportItem struct {
	Name  string
	Alias string
}

// Import is one unresolved `use` directive recorded in a scope, pending
// pass 3's resolution (spec.md §4.6 pass 3).
type Import struct {
	Path []string
	Kind ImportKind
	Items []ImportItem // meaningful when Kind == ImportPartial
}

// ResolvedImport is the result of resolving one Import entry into a named
// local binding (spec.md §4.4).
type ResolvedImport struct {
	LocalName         string
	Symbol            Symbol
	DefinitionScopeID uint32
}
