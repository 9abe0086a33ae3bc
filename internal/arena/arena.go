// Package arena owns every AST node's identity. It is the sole ground
// truth for node existence and for the parent/child graph; every other
// structure in this module (symbol table, type side-table, diagnostics)
// addresses a node by its id rather than holding a pointer into the arena
// (spec.md §3 Arena, §9 "the arena is the authority").
package arena

import (
	"fmt"
	"math"

	"github.com/Inferara/inference-sub000/internal/ast"
)

// NoParent is the sentinel parent id for a SourceFile, which is its own
// arena root (spec.md invariant 3).
const NoParent uint32 = math.MaxUint32

// Allocator is the process-wide monotonic id counter (spec.md §4.1, §5).
// One Allocator is shared by every per-file Builder that contributes to a
// single multi-file compile, so ids stay unique across the whole unified
// arena even though each file is built independently before merging
// (spec.md §4.3).
type Allocator struct {
	next uint32
}

// NewAllocator returns an allocator whose first Next() call yields 1 (ids
// must be non-zero, spec.md invariant 1).
func NewAllocator() *Allocator {
	return &Allocator{next: 1}
}

// Next fetches and increments the counter.
func (a *Allocator) Next() uint32 {
	id := a.next
	a.next++
	return id
}

// Arena maps node id -> node and tracks the parent/children indices
// (spec.md §3 Arena, §4.1).
type Arena struct {
	nodes    map[uint32]ast.Node
	parent   map[uint32]uint32
	children map[uint32][]uint32
	order    []uint32 // insertion order, for deterministic FilterNodes output
}

// New returns an empty arena.
func New() *Arena {
	return &Arena{
		nodes:    make(map[uint32]ast.Node),
		parent:   make(map[uint32]uint32),
		children: make(map[uint32][]uint32),
	}
}

// AddNode inserts node under parentID, failing loudly on an id collision
// (spec.md §4.1) — a collision can only mean two builders shared an
// allocator incorrectly, which is a programming error, not a recoverable
// compile error.
func (a *Arena) AddNode(node ast.Node, parentID uint32) {
	id := node.NodeID()
	if id == 0 {
		panic("arena: node id must be non-zero")
	}
	if _, exists := a.nodes[id]; exists {
		panic(fmt.Sprintf("arena: node id %d already exists in the arena", id))
	}
	a.nodes[id] = node
	a.parent[id] = parentID
	a.order = append(a.order, id)
	if parentID != NoParent {
		a.children[parentID] = append(a.children[parentID], id)
	}
}

// Node looks up a node by id.
func (a *Arena) Node(id uint32) (ast.Node, bool) {
	n, ok := a.nodes[id]
	return n, ok
}

// Parent returns the parent id recorded for a node, and whether the node is
// known to the arena at all.
func (a *Arena) Parent(id uint32) (uint32, bool) {
	p, ok := a.parent[id]
	return p, ok
}

// Children returns the direct children recorded for a node, in insertion
// order.
func (a *Arena) Children(id uint32) []uint32 {
	return a.children[id]
}

// Len returns the total number of nodes held by the arena.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// FilterNodes performs a linear scan over every node in insertion order,
// returning those for which predicate returns true (spec.md §4.1, used by
// tests and later passes).
func (a *Arena) FilterNodes(predicate func(ast.Node) bool) []ast.Node {
	var out []ast.Node
	for _, id := range a.order {
		n := a.nodes[id]
		if predicate(n) {
			out = append(out, n)
		}
	}
	return out
}

// SourceFiles returns every SourceFile node held by the arena, in
// insertion order.
func (a *Arena) SourceFiles() []*ast.SourceFile {
	var out []*ast.SourceFile
	for _, id := range a.order {
		if sf, ok := a.nodes[id].(*ast.SourceFile); ok {
			out = append(out, sf)
		}
	}
	return out
}

// Merge folds another arena's nodes and indices into this one. The two
// arenas must have been built from allocators that never produced
// overlapping ids (true for every per-file arena built during one
// ParserContext run, since they all share one Allocator — spec.md §4.3
// step 5).
func (a *Arena) Merge(other *Arena) {
	for _, id := range other.order {
		node := other.nodes[id]
		parentID := other.parent[id]
		a.nodes[id] = node
		a.parent[id] = parentID
		a.order = append(a.order, id)
		if parentID != NoParent {
			a.children[parentID] = append(a.children[parentID], id)
		}
	}
}
