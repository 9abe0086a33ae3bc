// Package ast defines the typed, id-addressed abstract syntax tree that the
// builder lowers a CST into (spec.md §3). Every node carries a Base with a
// globally unique id and a source Location; the arena is the sole owner of
// node identity (spec.md §4.1, §9) — node structs never hold raw pointers
// to other nodes' containers, only embedded values and, where the arena's
// parent/children maps already capture the edge, no back-reference at all.
package ast

import "github.com/Inferara/inference-sub000/internal/token"

// Node is the base contract every AST node satisfies.
type Node interface {
	NodeID() uint32
	Location() token.Location
}

// Base is embedded by every concrete node type to satisfy Node.
type Base struct {
	Id  uint32
	Loc token.Location
}

func (b Base) NodeID() uint32          { return b.Id }
func (b Base) Location() token.Location { return b.Loc }

// Statement is a Node representing a statement.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node representing an expression.
type Expression interface {
	Node
	expressionNode()
}

// Definition is a Node representing a top-level or nested declaration.
type Definition interface {
	Node
	definitionNode()
}

// Visibility is two-valued; the zero value is Private (spec.md §3 default).
type Visibility int

const (
	Private Visibility = iota
	Public
)

func (v Visibility) String() string {
	if v == Public {
		return "pub"
	}
	return "private"
}

// Identifier is a named reference with its own node id, used both as a
// leaf expression and embedded in definitions/types that name something.
type Identifier struct {
	Base
	Name string
}

func (i *Identifier) expressionNode() {}

// GetName is a tiny convenience used throughout the builder and
// checker to guard against a nil *Identifier without repeating the check.
func (i *Identifier) GetName() string {
	if i == nil {
		return ""
	}
	return i.Name
}
