// Package analyzer implements the four-pass type checker described by
// spec.md §4.6: type/struct/enum/spec registration, function/constant
// collection, import resolution, then expression/statement inference,
// accumulating diagnostics.CheckErrors in a Bag and writing every typed
// node's TypeInfo into a TypedContext side-table keyed by AST node id.
//
// There is no single source file in the retrieval pack defining the typed
// side-table itself — TypedContext is authored directly from spec.md's
// description of "a typed side-table keyed by AST node id" and from how
// GetNodeTypeInfo/SetNodeTypeInfo are used throughout pass 4 (see
// DESIGN.md).
package analyzer

import (
	"github.com/Inferara/inference-sub000/internal/arena"
	"github.com/Inferara/inference-sub000/internal/ast"
	"github.com/Inferara/inference-sub000/internal/symbols"
	"github.com/Inferara/inference-sub000/internal/typesystem"
)

// TypedContext is the four passes' shared output: the arena of AST nodes
// that were checked, the symbol table built along the way, and a side
// table mapping a node's id to the TypeInfo the checker inferred for it.
// Not every node id appears in the side table — only expression nodes, and
// a handful of statement/declaration nodes the spec calls out (variable
// definitions, constant definitions) carry a stamped TypeInfo.
type TypedContext struct {
	Arena   *arena.Arena
	Symbols *symbols.SymbolTable
	types   map[uint32]typesystem.TypeInfo
}

// NewTypedContext wraps an already-built arena and a fresh symbol table.
func NewTypedContext(a *arena.Arena, st *symbols.SymbolTable) *TypedContext {
	return &TypedContext{Arena: a, Symbols: st, types: make(map[uint32]typesystem.TypeInfo)}
}

// GetNodeTypeInfo looks up the TypeInfo stamped for a node id.
func (c *TypedContext) GetNodeTypeInfo(id uint32) (typesystem.TypeInfo, bool) {
	ti, ok := c.types[id]
	return ti, ok
}

// SetNodeTypeInfo stamps a node id with its resolved TypeInfo. Later passes
// never need to "unstamp" a node — each node is visited at most once by
// pass 4, so this is write-once in practice.
func (c *TypedContext) SetNodeTypeInfo(id uint32, ti typesystem.TypeInfo) {
	c.types[id] = ti
}

// SourceFiles forwards to the underlying arena, the entry point every pass
// walks from.
func (c *TypedContext) SourceFiles() []*ast.SourceFile {
	return c.Arena.SourceFiles()
}

// NodeCount returns how many nodes carry a stamped TypeInfo, for tests
// asserting coverage without enumerating every id by hand.
func (c *TypedContext) NodeCount() int {
	return len(c.types)
}
