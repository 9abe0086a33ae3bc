package ast

// BinaryExpression is `left op right`.
type BinaryExpression struct {
	Base
	Left     Expression
	Operator OperatorKind
	Right    Expression
}

func (e *BinaryExpression) expressionNode() {}

// PrefixUnaryExpression is `op expr`. Note `-42` is lowered as a negative
// NumberLiteral, never as PrefixUnaryExpression{Neg, 42} — only `-(42)` and
// `-x` take this form (spec.md §4.2).
type PrefixUnaryExpression struct {
	Base
	Operator   UnaryOperatorKind
	Expression Expression
}

func (e *PrefixUnaryExpression) expressionNode() {}

// ParenthesizedExpression is `(expr)`.
type ParenthesizedExpression struct {
	Base
	Inner Expression
}

func (e *ParenthesizedExpression) expressionNode() {}

// AssignExpression is `left = right`, usable both as a full statement
// (ast.AssignStatement wraps the same shape) and nested inside a larger
// expression.
type AssignExpression struct {
	Base
	Left  Expression
	Right Expression
}

func (e *AssignExpression) expressionNode() {}

// CallArgument is one (optionally named) actual argument.
type CallArgument struct {
	Name *Identifier // nil for positional arguments
	Expr Expression
}

// FunctionCallExpression is `function(args...)` with optional explicit type
// arguments for a generic call (spec.md §3, §4.6 pass 4).
type FunctionCallExpression struct {
	Base
	Function       Expression
	Arguments      []CallArgument
	TypeParameters []Type // nil when none were supplied explicitly
}

func (e *FunctionCallExpression) expressionNode() {}

// MemberAccessExpression is `expression.name` (struct field access).
type MemberAccessExpression struct {
	Base
	Expression Expression
	Name       *Identifier
}

func (e *MemberAccessExpression) expressionNode() {}

// TypeMemberAccessExpression is `Type::name` (enum variant access).
type TypeMemberAccessExpression struct {
	Base
	Expression Expression
	Name       *Identifier
}

func (e *TypeMemberAccessExpression) expressionNode() {}

// ArrayIndexAccessExpression is `array[index]`.
type ArrayIndexAccessExpression struct {
	Base
	Array Expression
	Index Expression
}

func (e *ArrayIndexAccessExpression) expressionNode() {}

// StructFieldInit is one `name: expr` initializer in a struct literal.
type StructFieldInit struct {
	Name *Identifier
	Expr Expression
}

// StructExpression is a struct literal: `Name { field: expr, ... }`.
type StructExpression struct {
	Base
	Name   *Identifier
	Fields []StructFieldInit
}

func (e *StructExpression) expressionNode() {}

// TypeExpression wraps a syntactic Type used in expression position (e.g.
// as a first-class value passed to `typeOf`-style builtins).
type TypeExpression struct {
	Base
	Type Type
}

func (e *TypeExpression) expressionNode() {}

// UzumakiExpression is the `@` placeholder literal. It carries no type of
// its own: the checker stamps whatever type the enclosing context supplies
// into the side table keyed by this node's id (spec.md invariant 5).
type UzumakiExpression struct {
	Base
}

func (e *UzumakiExpression) expressionNode() {}
