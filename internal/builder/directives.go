package builder

import (
	"strings"

	"github.com/Inferara/inference-sub000/internal/ast"
	"github.com/Inferara/inference-sub000/internal/cst"
)

// buildUseDirective lowers a `use_directive` CST node into an
// *ast.UseDirective (spec.md §3 Directive::Use). All of ImportedTypes,
// Segments and From are optional depending on which surface form produced
// the node (`use path::name;`, `use path::{a, b as c};`,
// `use path::name from "file";`).
func (b *Builder) buildUseDirective(node cst.Node, source []byte, parentID uint32) (*ast.UseDirective, error) {
	id := b.nextID()
	loc := location(node)

	directive := &ast.UseDirective{
		Base: ast.Base{Id: id, Loc: loc},
		Kind: ast.DirectiveUse,
	}

	for _, segNode := range node.ChildrenByFieldName("segment") {
		ident := b.buildIdentifier(segNode, source, id)
		directive.Segments = append(directive.Segments, ident)
	}

	if importedList := node.ChildByFieldName("imported_types"); importedList != nil {
		for _, child := range importedList.NamedChildren() {
			if child.Kind() != "identifier" {
				continue
			}
			directive.ImportedTypes = append(directive.ImportedTypes, b.buildIdentifier(child, source, id))
		}
	}

	if fromNode := node.ChildByFieldName("from"); fromNode != nil {
		text := fromNode.Utf8Text(source)
		text = strings.Trim(text, `"`)
		directive.From = &text
	}

	b.addNode(directive, parentID)
	return directive, nil
}

// buildIdentifier lowers an `identifier` CST node into an *ast.Identifier.
func (b *Builder) buildIdentifier(node cst.Node, source []byte, parentID uint32) *ast.Identifier {
	id := b.nextID()
	ident := &ast.Identifier{
		Base: ast.Base{Id: id, Loc: location(node)},
		Name: node.Utf8Text(source),
	}
	b.addNode(ident, parentID)
	return ident
}
