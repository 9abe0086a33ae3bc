// Package cst defines the contract the builder consumes from an external,
// tree-sitter-like parser generator (spec.md §1, §6). The parser itself is
// out of scope for this module; only this interface matters. A concrete
// adapter over github.com/smacker/go-tree-sitter is provided in
// treesitter.go for hosts that parse with a real tree-sitter grammar, and
// tests exercise the interface through a hand-rolled fake (there is no
// published Inference tree-sitter grammar to vendor).
package cst

// Point is a (row, column) pair as tree-sitter reports it: 0-based, unlike
// token.Position which is 1-based. Builders convert.
type Point struct {
	Row    uint32
	Column uint32
}

// Node is the opaque CST node contract named in spec.md §4.2 and §6.
type Node interface {
	Kind() string
	StartByte() int
	EndByte() int
	StartPosition() Point
	EndPosition() Point
	Child(i int) Node
	ChildByFieldName(name string) Node
	ChildrenByFieldName(name string) []Node
	NamedChildren() []Node
	ChildCount() int
	Utf8Text(source []byte) string
	HasError() bool
	IsMissing() bool
}
