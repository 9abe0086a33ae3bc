// Package token holds the source-position primitives shared by every later
// package: the arena, the builder, the symbol table and the checker all
// address source text through a Location rather than carrying their own
// byte ranges.
package token

import "fmt"

// Position is a 1-based line/column pair (spec.md §6); internal/builder's
// location() converts the external CST's 0-based points into it.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Location is a byte-range plus the (line,column) pair for both ends. It is
// present on every AST node (spec.md §3).
type Location struct {
	OffsetStart int
	OffsetEnd   int
	Start       Position
	End         Position
}

// String renders "line:column", the prefix a driver uses when formatting a
// diagnostic (spec.md §6). The core itself never goes further than this.
func (l Location) String() string {
	return l.Start.String()
}

// Span returns the raw byte range [start, end).
func (l Location) Span() (start, end int) {
	return l.OffsetStart, l.OffsetEnd
}

// Text slices the given source by this location's byte range. Callers must
// ensure source is the same buffer the location was computed from.
func (l Location) Text(source []byte) string {
	if l.OffsetStart < 0 || l.OffsetEnd > len(source) || l.OffsetStart > l.OffsetEnd {
		return ""
	}
	return string(source[l.OffsetStart:l.OffsetEnd])
}

// Zero is the sentinel location used when a node has no meaningful source
// span (synthetic builtins, prelude symbols).
var Zero = Location{}
