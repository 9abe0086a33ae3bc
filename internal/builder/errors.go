package builder

import (
	"fmt"

	"github.com/Inferara/inference-sub000/internal/token"
)

// ParseError covers the builder's two CST-shape failures named in spec.md
// §4.2: an unrecognized definition/statement/expression/type kind, and a
// CST subtree that contains a tree-sitter ERROR node. MISSING nodes (the
// parser's recovery marker for elided tokens like `;`) are accepted for
// now — a known limitation, not silently papered over (spec.md §4.2).
type ParseError struct {
	Reason   string
	CSTKind  string
	Location token.Location
}

func (e *ParseError) Error() string {
	if e.CSTKind != "" {
		return fmt.Sprintf("%s: %s (kind %q)", e.Location, e.Reason, e.CSTKind)
	}
	return fmt.Sprintf("%s: %s", e.Location, e.Reason)
}

// UnknownDefinition reports a top-level/nested node whose kind none of the
// builder's definition dispatchers recognize.
func UnknownDefinition(kind string, loc token.Location) error {
	return &ParseError{Reason: "unknown definition kind", CSTKind: kind, Location: loc}
}

// UnknownStatement mirrors UnknownDefinition for the statement dispatcher.
func UnknownStatement(kind string, loc token.Location) error {
	return &ParseError{Reason: "unknown statement kind", CSTKind: kind, Location: loc}
}

// UnknownExpression mirrors UnknownDefinition for the expression dispatcher.
func UnknownExpression(kind string, loc token.Location) error {
	return &ParseError{Reason: "unknown expression kind", CSTKind: kind, Location: loc}
}

// UnknownType mirrors UnknownDefinition for the type dispatcher.
func UnknownType(kind string, loc token.Location) error {
	return &ParseError{Reason: "unknown type kind", CSTKind: kind, Location: loc}
}

// SyntaxError reports that the CST subtree handed to AddSourceCode contains
// at least one ERROR node.
func SyntaxError(loc token.Location) error {
	return &ParseError{Reason: "source contains a syntax error node", Location: loc}
}

// NotSourceFile reports that AddSourceCode's root argument was not a
// "source_file" CST node.
func NotSourceFile(kind string) error {
	return &ParseError{Reason: "root CST node must be a source_file", CSTKind: kind}
}

// BuildError covers a malformed CST: a required field is missing. Missing
// required children are never silently defaulted (spec.md §4.2).
type BuildError struct {
	ParentKind string
	Field      string
	Location   token.Location
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%s: %s node is missing required field %q", e.Location, e.ParentKind, e.Field)
}

// MissingField constructs the BuildError for a required CST child that
// wasn't found.
func MissingField(parentKind, field string, loc token.Location) error {
	return &BuildError{ParentKind: parentKind, Field: field, Location: loc}
}
