package symbols

import (
	"strings"

	"github.com/Inferara/inference-sub000/internal/ast"
	"github.com/Inferara/inference-sub000/internal/diagnostics"
	"github.com/Inferara/inference-sub000/internal/token"
	"github.com/Inferara/inference-sub000/internal/typesystem"
)

// SymbolTable owns the whole scope tree for one compile (spec.md §4.4).
// The root scope is id 0, named "root", Visibility Public, preloaded with
// the ten builtin primitive type names (spec.md §4.4 "Builtin preload").
type SymbolTable struct {
	scopes    map[uint32]*Scope
	modScopes map[string]*Scope
	root      *Scope
	current   *Scope
	nextID    uint32
}

// NewSymbolTable returns a SymbolTable with its root scope populated with
// the builtin primitive types.
func NewSymbolTable() *SymbolTable {
	root := newScope(0, "root", ast.Public, nil)
	st := &SymbolTable{
		scopes:    map[uint32]*Scope{0: root},
		modScopes: make(map[string]*Scope),
		root:      root,
		current:   root,
		nextID:    1,
	}
	for _, name := range typesystem.BuiltinNames {
		ti, _ := typesystem.FromBuiltinStr(name)
		root.symbols[name] = symType(ti)
	}
	return st
}

// CurrentScopeID returns the scope currently being populated/checked.
func (st *SymbolTable) CurrentScopeID() uint32 { return st.current.id }

// RootScopeID returns the synthetic root scope's id (always 0).
func (st *SymbolTable) RootScopeID() uint32 { return st.root.id }

// GetScope looks up a scope by id.
func (st *SymbolTable) GetScope(id uint32) (*Scope, bool) {
	s, ok := st.scopes[id]
	return s, ok
}

// PushScope opens an anonymous, private child scope of the current scope
// (spec.md §4.4's default name/visibility for blocks and function bodies)
// and makes it current. Returns the new scope's id.
func (st *SymbolTable) PushScope() uint32 {
	return st.PushScopeWithName("anonymous", ast.Private)
}

// PushScopeWithName opens a named child scope of the current scope and
// makes it current.
func (st *SymbolTable) PushScopeWithName(name string, visibility ast.Visibility) uint32 {
	id := st.nextID
	st.nextID++
	scope := newScope(id, name, visibility, st.current)
	st.current.children = append(st.current.children, scope)
	st.scopes[id] = scope
	st.current = scope
	return id
}

// PopScope returns to the parent of the current scope. Popping the root
// scope is a no-op (there is nothing above it).
func (st *SymbolTable) PopScope() {
	if st.current.parent != nil {
		st.current = st.current.parent
	}
}

// EnterModule opens (or re-enters, if a later pass already built it) the
// named, visibility-tagged child scope for mod's body and makes it current.
// Every pass walks the same AST in the same order, so re-entering by name
// under the same parent reconstructs the identical scope a prior pass
// created, letting passes 1-4 share one scope tree instead of each
// building their own copy (spec.md §4.6 pass 1 "ModuleDefinition opens its
// own child scope"). Returns the scope's id.
func (st *SymbolTable) EnterModule(mod *ast.ModuleDefinition) uint32 {
	if child, ok := st.current.findChild(mod.GetName()); ok {
		st.current = child
		return child.id
	}
	id := st.PushScopeWithName(mod.GetName(), mod.Visibility)
	st.modScopes[mod.GetName()] = st.current
	return id
}

// ModScope looks up a top-level module's scope by name.
func (st *SymbolTable) ModScope(name string) (*Scope, bool) {
	s, ok := st.modScopes[name]
	return s, ok
}

// --- registration -----------------------------------------------------

func (st *SymbolTable) registerSymbol(kind diagnostics.RegistrationKind, name string, sym Symbol, loc token.Location) error {
	if _, exists := st.current.symbols[name]; exists {
		return diagnostics.AlreadyDefined(kind, name, loc)
	}
	st.current.symbols[name] = sym
	return nil
}

// RegisterType registers a type alias (spec.md §4.6 pass 1 TypeDefinition).
func (st *SymbolTable) RegisterType(name string, ty typesystem.TypeInfo, loc token.Location) error {
	return st.registerSymbol(diagnostics.RegistrationType, name, symType(ty), loc)
}

// RegisterStruct registers a struct, with its fields, as a symbol in the
// current scope (spec.md §4.6 pass 1); its methods are registered
// separately through RegisterMethod.
func (st *SymbolTable) RegisterStruct(info *StructInfo, loc token.Location) error {
	return st.registerSymbol(diagnostics.RegistrationStruct, info.Name, symStruct(info), loc)
}

// RegisterEnum registers an enum's variants in the current scope.
func (st *SymbolTable) RegisterEnum(info *EnumInfo, loc token.Location) error {
	return st.registerSymbol(diagnostics.RegistrationEnum, info.Name, symEnum(info), loc)
}

// RegisterSpec registers a spec by name.
func (st *SymbolTable) RegisterSpec(name string, loc token.Location) error {
	return st.registerSymbol(diagnostics.RegistrationSpec, name, symSpec(name), loc)
}

// RegisterFunction registers a standalone function's signature in the
// current scope.
func (st *SymbolTable) RegisterFunction(sig *FuncSignature, loc token.Location) error {
	return st.registerSymbol(diagnostics.RegistrationFunction, sig.Name, symFunction(sig), loc)
}

// RegisterMethod attaches a method signature to typeName's method list in
// the current scope, failing if that type already has a method of the
// same name registered here (spec.md §4.4 `methods: type_name -> list of
// MethodInfo`).
func (st *SymbolTable) RegisterMethod(typeName string, sig FuncSignature, visibility ast.Visibility, hasSelf bool, loc token.Location) error {
	for _, m := range st.current.methods[typeName] {
		if m.Signature.Name == sig.Name {
			return diagnostics.AlreadyDefined(diagnostics.RegistrationMethod, typeName+"::"+sig.Name, loc)
		}
	}
	st.current.methods[typeName] = append(st.current.methods[typeName], MethodInfo{
		Signature: sig, Visibility: visibility, ScopeID: st.current.id, HasSelf: hasSelf,
	})
	return nil
}

// PushVariableToScope declares a variable in the current scope.
func (st *SymbolTable) PushVariableToScope(name string, nodeID uint32, ty typesystem.TypeInfo, loc token.Location) error {
	if _, exists := st.current.variables[name]; exists {
		return diagnostics.AlreadyDefined(diagnostics.RegistrationVariable, name, loc)
	}
	st.current.variables[name] = variableEntry{NodeID: nodeID, Type: ty}
	return nil
}

// RecordImport appends an unresolved import to the current scope, for
// pass 3 to resolve later.
func (st *SymbolTable) RecordImport(imp Import) {
	st.current.imports = append(st.current.imports, imp)
}

// RecordImportInScope appends an unresolved import to an explicit scope.
// `use` directives are file-level (spec.md §4.3: file organization is
// invisible to later passes), so they are recorded into the root scope
// rather than whatever scope happens to be current when the file is
// visited.
func (st *SymbolTable) RecordImportInScope(scopeID uint32, imp Import) {
	s, ok := st.scopes[scopeID]
	if !ok {
		return
	}
	s.imports = append(s.imports, imp)
}

// ScopeImports returns the unresolved imports recorded in scope id.
func (st *SymbolTable) ScopeImports(scopeID uint32) []Import {
	s, ok := st.scopes[scopeID]
	if !ok {
		return nil
	}
	return s.imports
}

// RecordResolvedImport stores a resolved import under its local name in
// scope id.
func (st *SymbolTable) RecordResolvedImport(scopeID uint32, ri ResolvedImport) {
	s, ok := st.scopes[scopeID]
	if !ok {
		return
	}
	s.resolvedImports[ri.LocalName] = ri
}

// AllScopeIDs returns every scope id in the table, for passes that need to
// walk every scope (spec.md §4.6 pass 3 "Walk every scope").
func (st *SymbolTable) AllScopeIDs() []uint32 {
	ids := make([]uint32, 0, len(st.scopes))
	for id := range st.scopes {
		ids = append(ids, id)
	}
	return ids
}

// --- lookup -------------------------------------------------------------

// LookupVariable searches the current scope then walks the parent chain
// for a variable binding (spec.md §4.4).
func (st *SymbolTable) LookupVariable(name string) (typesystem.TypeInfo, bool) {
	for s := st.current; s != nil; s = s.parent {
		if v, ok := s.variables[name]; ok {
			return v.Type, true
		}
	}
	return typesystem.TypeInfo{}, false
}

// LookupFunction searches the current scope then walks the parent chain
// for a function symbol.
func (st *SymbolTable) LookupFunction(name string) (FuncSignature, bool) {
	for s := st.current; s != nil; s = s.parent {
		if sym, ok := s.symbols[name]; ok && sym.Kind == SymFunction {
			return *sym.Function, true
		}
	}
	return FuncSignature{}, false
}

// LookupStruct searches the current scope then walks the parent chain for
// a struct symbol.
func (st *SymbolTable) LookupStruct(name string) (*StructInfo, bool) {
	for s := st.current; s != nil; s = s.parent {
		if sym, ok := s.symbols[name]; ok && sym.Kind == SymStruct {
			return sym.Struct, true
		}
	}
	return nil, false
}

// LookupEnum searches the current scope then walks the parent chain for
// an enum symbol, reporting whether it exists.
func (st *SymbolTable) LookupEnum(name string) bool {
	_, ok := st.LookupEnumInfo(name)
	return ok
}

// LookupEnumInfo searches the current scope then walks the parent chain for
// an enum symbol and returns its variant list.
func (st *SymbolTable) LookupEnumInfo(name string) (*EnumInfo, bool) {
	for s := st.current; s != nil; s = s.parent {
		if sym, ok := s.symbols[name]; ok && sym.Kind == SymEnum {
			return sym.Enum, true
		}
	}
	return nil, false
}

// LookupStructField looks up fieldName on the registered struct structName.
func (st *SymbolTable) LookupStructField(structName, fieldName string) (typesystem.TypeInfo, bool) {
	info, ok := st.LookupStruct(structName)
	if !ok {
		return typesystem.TypeInfo{}, false
	}
	field, ok := info.Fields[fieldName]
	if !ok {
		return typesystem.TypeInfo{}, false
	}
	return field.Type, true
}

// LookupMethod searches the current scope then walks the parent chain for
// a method named methodName registered on typeName.
func (st *SymbolTable) LookupMethod(typeName, methodName string) (MethodInfo, bool) {
	for s := st.current; s != nil; s = s.parent {
		for _, m := range s.methods[typeName] {
			if m.Signature.Name == methodName {
				return m, true
			}
		}
	}
	return MethodInfo{}, false
}

// LookupType searches the current scope then walks the parent chain for
// any symbol named name, converting it via Symbol.AsTypeInfo. If no exact
// match is found, it retries with the lowercased name (SPEC_FULL.md
// supplemented feature 7, grounded on symbol_table.rs's lookup_type
// lowercase fallback — applied here only, not to variable/function
// lookup).
func (st *SymbolTable) LookupType(name string) (typesystem.TypeInfo, bool) {
	if ti, ok := st.lookupTypeExact(name); ok {
		return ti, true
	}
	lower := strings.ToLower(name)
	if lower == name {
		return typesystem.TypeInfo{}, false
	}
	return st.lookupTypeExact(lower)
}

func (st *SymbolTable) lookupTypeExact(name string) (typesystem.TypeInfo, bool) {
	for s := st.current; s != nil; s = s.parent {
		if sym, ok := s.symbols[name]; ok {
			if ti, ok := sym.AsTypeInfo(); ok {
				return ti, true
			}
		}
	}
	return typesystem.TypeInfo{}, false
}

// LookupSymbolLocal looks up name only in the given scope, with no parent
// walk — the primitive resolve_qualified_name's final segment uses (spec.md
// §4.6 pass 3 / SPEC_FULL.md supplemented feature 3).
func (st *SymbolTable) LookupSymbolLocal(scopeID uint32, name string) (Symbol, bool) {
	s, ok := st.scopes[scopeID]
	if !ok {
		return Symbol{}, false
	}
	sym, ok := s.symbols[name]
	return sym, ok
}
