// Package builder lowers an external, tree-sitter-like CST into this
// module's id-addressed AST (spec.md §4.2). The parser that produces the
// CST is out of scope; this package only depends on the cst.Node contract.
package builder

import (
	"github.com/Inferara/inference-sub000/internal/arena"
	"github.com/Inferara/inference-sub000/internal/ast"
	"github.com/Inferara/inference-sub000/internal/cst"
	"github.com/Inferara/inference-sub000/internal/token"
)

// Builder walks one or more per-file CSTs and accumulates their AST into a
// shared arena. Multiple files share one Builder (and therefore one
// arena.Allocator) when modules.Loader is driving a multi-file compile, so
// that node ids stay unique across the unified arena (spec.md §4.3).
type Builder struct {
	arena *arena.Arena
	alloc *arena.Allocator
}

// New returns a Builder with a fresh arena and id allocator.
func New() *Builder {
	return &Builder{arena: arena.New(), alloc: arena.NewAllocator()}
}

// NewWithAllocator returns a Builder that shares the given allocator and
// arena with other builders — used by modules.Loader so that every file's
// ids are unique across the whole compile.
func NewWithAllocator(a *arena.Arena, alloc *arena.Allocator) *Builder {
	return &Builder{arena: a, alloc: alloc}
}

// Arena exposes the builder's arena without consuming the builder, for
// callers (like modules.Loader) that need to keep building into it.
func (b *Builder) Arena() *arena.Arena { return b.arena }

// Allocator exposes the shared id allocator.
func (b *Builder) Allocator() *arena.Allocator { return b.alloc }

// nextID allocates a fresh node id.
func (b *Builder) nextID() uint32 { return b.alloc.Next() }

// addNode registers a freshly built node with the arena under parentID.
func (b *Builder) addNode(node ast.Node, parentID uint32) {
	b.arena.AddNode(node, parentID)
}

// location converts a cst.Node's byte/point range into a token.Location,
// promoting tree-sitter's 0-based rows/columns to the 1-based lines/columns
// spec.md §6 requires.
func location(n cst.Node) token.Location {
	start := n.StartPosition()
	end := n.EndPosition()
	return token.Location{
		OffsetStart: n.StartByte(),
		OffsetEnd:   n.EndByte(),
		Start:       token.Position{Line: int(start.Row) + 1, Column: int(start.Column) + 1},
		End:         token.Position{Line: int(end.Row) + 1, Column: int(end.Column) + 1},
	}
}

// requireField fetches a required named child, returning BuildError when
// absent rather than silently defaulting (spec.md §4.2 field-lookup
// policy).
func requireField(parent cst.Node, field string) (cst.Node, error) {
	c := parent.ChildByFieldName(field)
	if c == nil {
		return nil, MissingField(parent.Kind(), field, location(parent))
	}
	return c, nil
}

// AddSourceCode lowers one file's CST into the builder's shared arena,
// adding a *ast.SourceFile whose parent is arena.NoParent (spec.md
// invariant 3). root.Kind() must be "source_file".
func (b *Builder) AddSourceCode(root cst.Node, source []byte, path string) (*ast.SourceFile, error) {
	if root.Kind() != "source_file" {
		return nil, NotSourceFile(root.Kind())
	}
	if root.HasError() {
		return nil, SyntaxError(location(root))
	}

	fileID := b.nextID()
	file := &ast.SourceFile{
		Base:   ast.Base{Id: fileID, Loc: location(root)},
		Path:   path,
		Source: string(source),
	}
	b.addNode(file, arena.NoParent)

	count := root.ChildCount()
	for i := 0; i < count; i++ {
		child := root.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "use_directive":
			directive, err := b.buildUseDirective(child, source, fileID)
			if err != nil {
				return nil, err
			}
			file.Directives = append(file.Directives, directive)
		default:
			// Anonymous/unnamed CST tokens (punctuation, layout) show up as
			// children too; named_children() in spec.md §6 is exactly the
			// filter that skips them. We approximate it here by skipping
			// any child whose kind is not in definitionKinds. That also
			// skips a named node of an unknown kind: such a child is
			// dropped without an error, and buildDefinition's
			// UnknownDefinition case is never reached from here.
			if !isDefinitionLike(child) {
				continue
			}
			def, err := b.buildDefinition(child, source, fileID)
			if err != nil {
				return nil, err
			}
			file.Definitions = append(file.Definitions, def)
		}
	}

	return file, nil
}

// definitionKinds is the closed set of CST kinds buildDefinition
// recognizes (spec.md §4.2 step 2). Anything else handed to AddSourceCode
// at the top level that isn't a use_directive is presumed to be anonymous
// syntax (braces, semicolons) rather than a malformed definition, the way
// named_children() would already have filtered it out for us.
var definitionKinds = map[string]bool{
	"struct_definition":            true,
	"function_definition":          true,
	"enum_definition":              true,
	"constant_definition":          true,
	"spec_definition":              true,
	"external_function_definition": true,
	"type_definition_statement":    true,
	"module_definition":            true,
}

func isDefinitionLike(n cst.Node) bool {
	return definitionKinds[n.Kind()]
}

// BuildDefinitionForModule lowers one CST child of an inline module body
// (`pub mod name { ... }`) for modules.Loader, which has no access to the
// unexported buildDefinition dispatcher. Anonymous/unnamed syntax (the
// child isn't definition-shaped) is skipped by returning a nil Definition
// and a nil error, matching AddSourceCode's own isDefinitionLike filter.
func (b *Builder) BuildDefinitionForModule(child cst.Node, source []byte, parentID uint32) (ast.Definition, error) {
	if !isDefinitionLike(child) {
		return nil, nil
	}
	return b.buildDefinition(child, source, parentID)
}

// BuildAST finalizes the builder, returning the accumulated arena. Matches
// spec.md §4.2's `build_ast() -> Result<Arena, BuildError>`; this
// implementation has already surfaced any error eagerly from each
// AddSourceCode call; BuildAST exists to mark the construction phase as
// closed and to hand back the arena by value-of-ownership.
func (b *Builder) BuildAST() (*arena.Arena, error) {
	return b.arena, nil
}
