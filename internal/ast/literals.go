package ast

// Literal is the tagged union of literal forms (spec.md §3).
type Literal interface {
	Expression
	literalNode()
}

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	Base
	Value bool
}

func (l *BoolLiteral) expressionNode() {}
func (l *BoolLiteral) literalNode()    {}

// NumberLiteral keeps the raw source text (so `-42` round-trips exactly,
// spec.md §4.2) alongside a syntactic type hint when the grammar carries
// one (e.g. a numeric suffix); Type is nil when the number is unsuffixed
// and left to the checker's default-to-i32 rule (spec.md §4.6 pass 4).
type NumberLiteral struct {
	Base
	Text string
	Type Type
}

func (l *NumberLiteral) expressionNode() {}
func (l *NumberLiteral) literalNode()    {}

// StringLiteral is a quoted string; Text is the content with quotes removed
// is NOT performed here — Text holds the raw token text, unescaping is a
// parser concern upstream of this CST boundary.
type StringLiteral struct {
	Base
	Text string
}

func (l *StringLiteral) expressionNode() {}
func (l *StringLiteral) literalNode()    {}

// ArrayLiteral is `[e1, e2, ...]`.
type ArrayLiteral struct {
	Base
	Elements []Expression
}

func (l *ArrayLiteral) expressionNode() {}
func (l *ArrayLiteral) literalNode()    {}

// UnitLiteral is `()`.
type UnitLiteral struct {
	Base
}

func (l *UnitLiteral) expressionNode() {}
func (l *UnitLiteral) literalNode()    {}
