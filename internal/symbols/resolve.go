package symbols

// ResolveQualifiedName resolves a `::`-separated path against the scope
// tree (spec.md §4.4 `resolve_qualified_name`, SPEC_FULL.md supplemented
// feature 3). If path[0] == "self", resolution starts at fromScopeID
// (with the "self" segment stripped); otherwise it starts at the root
// scope. Every segment but the last must name a child scope exactly; the
// final segment is looked up as a *local* symbol (no parent-chain walk) in
// the scope reached by the intermediate segments.
func (st *SymbolTable) ResolveQualifiedName(path []string, fromScopeID uint32) (Symbol, uint32, bool) {
	if len(path) == 0 {
		return Symbol{}, 0, false
	}

	scope := st.root
	if path[0] == "self" {
		s, ok := st.scopes[fromScopeID]
		if !ok {
			return Symbol{}, 0, false
		}
		scope = s
		path = path[1:]
		if len(path) == 0 {
			return Symbol{}, 0, false
		}
	}

	for _, segment := range path[:len(path)-1] {
		child, ok := scope.findChild(segment)
		if !ok {
			return Symbol{}, 0, false
		}
		scope = child
	}

	last := path[len(path)-1]
	sym, ok := scope.symbols[last]
	if !ok {
		return Symbol{}, 0, false
	}
	return sym, scope.id, true
}

// ResolveScopePath walks every segment of path as a child-scope name,
// starting from fromScopeID if path begins with "self" or from the root
// otherwise, and returns the scope the full path reaches. Used to find a
// glob import's target scope, where the whole path names a module rather
// than a module-prefix-plus-symbol.
func (st *SymbolTable) ResolveScopePath(path []string, fromScopeID uint32) (uint32, bool) {
	scope := st.root
	if len(path) > 0 && path[0] == "self" {
		s, ok := st.scopes[fromScopeID]
		if !ok {
			return 0, false
		}
		scope = s
		path = path[1:]
	}
	for _, segment := range path {
		child, ok := scope.findChild(segment)
		if !ok {
			return 0, false
		}
		scope = child
	}
	return scope.id, true
}

// ResolveName implements spec.md §4.4's `resolve_name`: starting at the
// current scope, check a local symbol, then a resolved import in that same
// scope, before ascending to the parent — an iterative walk (not
// recursive) to avoid stack overflow on deep scope trees (SPEC_FULL.md
// supplemented feature 4). A local in an outer scope never shadows an
// import in the current scope, since the current scope's own import is
// checked before the walk ever reaches that outer scope.
func (st *SymbolTable) ResolveName(name string) (Symbol, uint32, bool) {
	for scope := st.current; scope != nil; scope = scope.parent {
		if sym, ok := scope.symbols[name]; ok {
			return sym, scope.id, true
		}
		if ri, ok := scope.resolvedImports[name]; ok {
			return ri.Symbol, ri.DefinitionScopeID, true
		}
	}
	return Symbol{}, 0, false
}
