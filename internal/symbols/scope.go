package symbols

import (
	"github.com/Inferara/inference-sub000/internal/ast"
	"github.com/Inferara/inference-sub000/internal/typesystem"
)

// variableEntry is one scope-local variable binding: the node id that
// declared it, and its resolved type (spec.md §4.4 `variables: name ->
// (defining_node_id, TypeInfo)`).
type variableEntry struct {
	NodeID uint32
	Type   typesystem.TypeInfo
}

// Scope is one lexical region in the scope tree (spec.md §4.4).
type Scope struct {
	id         uint32
	name       string
	visibility ast.Visibility
	parent     *Scope
	children   []*Scope

	symbols         map[string]Symbol
	variables       map[string]variableEntry
	methods         map[string][]MethodInfo
	imports         []Import
	resolvedImports map[string]ResolvedImport
}

func newScope(id uint32, name string, visibility ast.Visibility, parent *Scope) *Scope {
	return &Scope{
		id:              id,
		name:            name,
		visibility:      visibility,
		parent:          parent,
		symbols:         make(map[string]Symbol),
		variables:       make(map[string]variableEntry),
		methods:         make(map[string][]MethodInfo),
		resolvedImports: make(map[string]ResolvedImport),
	}
}

// ID returns the scope's unique id.
func (s *Scope) ID() uint32 { return s.id }

// Name returns the scope's name ("root", a module name, or "anonymous").
func (s *Scope) Name() string { return s.name }

// Visibility returns the scope's own visibility (for child-visibility
// checks, spec.md §4.4).
func (s *Scope) Visibility() ast.Visibility { return s.visibility }

// Parent returns the enclosing scope, or nil for the root scope.
func (s *Scope) Parent() *Scope { return s.parent }

// Children returns the scope's direct child scopes.
func (s *Scope) Children() []*Scope { return s.children }

func (s *Scope) findChild(name string) (*Scope, bool) {
	for _, c := range s.children {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}
