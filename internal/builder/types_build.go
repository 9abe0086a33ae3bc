package builder

import (
	"github.com/Inferara/inference-sub000/internal/ast"
	"github.com/Inferara/inference-sub000/internal/cst"
)

// buildType dispatches on the CST type-node kind (spec.md §3 Type, §4.2).
func (b *Builder) buildType(node cst.Node, source []byte, parentID uint32) (ast.Type, error) {
	switch node.Kind() {
	case "primitive_type", "simple_type":
		return b.buildSimpleType(node, source, parentID)
	case "array_type":
		return b.buildArrayType(node, source, parentID)
	case "generic_type":
		return b.buildGenericType(node, source, parentID)
	case "function_type":
		return b.buildFunctionType(node, source, parentID)
	case "qualified_name_type":
		return b.buildQualifiedNameType(node, source, parentID)
	case "qualified_alias_type":
		return b.buildQualifiedType(node, source, parentID)
	case "custom_type", "type_identifier", "identifier":
		return b.buildCustomType(node, source, parentID)
	default:
		return nil, UnknownType(node.Kind(), location(node))
	}
}

func (b *Builder) buildSimpleType(node cst.Node, source []byte, parentID uint32) (ast.Type, error) {
	id := b.nextID()
	text := node.Utf8Text(source)
	kind, ok := ast.SimpleKindFromKeyword(text)
	if !ok {
		return nil, UnknownType(node.Kind(), location(node))
	}
	t := &ast.SimpleType{Base: ast.Base{Id: id, Loc: location(node)}, Kind: kind}
	b.addNode(t, parentID)
	return t, nil
}

func (b *Builder) buildArrayType(node cst.Node, source []byte, parentID uint32) (ast.Type, error) {
	id := b.nextID()
	t := &ast.ArrayType{Base: ast.Base{Id: id, Loc: location(node)}}

	elementNode, err := requireField(node, "element_type")
	if err != nil {
		return nil, err
	}
	element, err := b.buildType(elementNode, source, id)
	if err != nil {
		return nil, err
	}
	t.Element = element

	if sizeNode := node.ChildByFieldName("size"); sizeNode != nil {
		size, err := b.buildExpression(sizeNode, source, id)
		if err != nil {
			return nil, err
		}
		t.Size = size
	}

	b.addNode(t, parentID)
	return t, nil
}

func (b *Builder) buildGenericType(node cst.Node, source []byte, parentID uint32) (ast.Type, error) {
	id := b.nextID()
	t := &ast.GenericType{Base: ast.Base{Id: id, Loc: location(node)}}

	baseNode, err := requireField(node, "base")
	if err != nil {
		return nil, err
	}
	t.BaseName = b.buildIdentifier(baseNode, source, id)

	for _, paramNode := range node.ChildrenByFieldName("type_argument") {
		param, err := b.buildType(paramNode, source, id)
		if err != nil {
			return nil, err
		}
		t.Parameters = append(t.Parameters, param)
	}

	b.addNode(t, parentID)
	return t, nil
}

func (b *Builder) buildFunctionType(node cst.Node, source []byte, parentID uint32) (ast.Type, error) {
	id := b.nextID()
	t := &ast.FunctionType{Base: ast.Base{Id: id, Loc: location(node)}}

	if paramsNode := node.ChildByFieldName("parameters"); paramsNode != nil {
		t.HasParams = true
		for _, paramNode := range paramsNode.NamedChildren() {
			param, err := b.buildType(paramNode, source, id)
			if err != nil {
				return nil, err
			}
			t.Parameters = append(t.Parameters, param)
		}
	}

	if returnsNode := node.ChildByFieldName("returns"); returnsNode != nil {
		returns, err := b.buildType(returnsNode, source, id)
		if err != nil {
			return nil, err
		}
		t.Returns = returns
	}

	b.addNode(t, parentID)
	return t, nil
}

func (b *Builder) buildQualifiedNameType(node cst.Node, source []byte, parentID uint32) (ast.Type, error) {
	id := b.nextID()
	t := &ast.QualifiedNameType{Base: ast.Base{Id: id, Loc: location(node)}}

	qualifierNode, err := requireField(node, "qualifier")
	if err != nil {
		return nil, err
	}
	t.Qualifier = b.buildIdentifier(qualifierNode, source, id)

	nameNode, err := requireField(node, "name")
	if err != nil {
		return nil, err
	}
	t.Name = b.buildIdentifier(nameNode, source, id)

	b.addNode(t, parentID)
	return t, nil
}

func (b *Builder) buildQualifiedType(node cst.Node, source []byte, parentID uint32) (ast.Type, error) {
	id := b.nextID()
	t := &ast.QualifiedType{Base: ast.Base{Id: id, Loc: location(node)}}

	aliasNode, err := requireField(node, "alias")
	if err != nil {
		return nil, err
	}
	t.Alias = b.buildIdentifier(aliasNode, source, id)

	nameNode, err := requireField(node, "name")
	if err != nil {
		return nil, err
	}
	t.Name = b.buildIdentifier(nameNode, source, id)

	b.addNode(t, parentID)
	return t, nil
}

func (b *Builder) buildCustomType(node cst.Node, source []byte, parentID uint32) (ast.Type, error) {
	id := b.nextID()
	t := &ast.CustomType{Base: ast.Base{Id: id, Loc: location(node)}}
	t.Name = b.buildIdentifier(node, source, id)
	b.addNode(t, parentID)
	return t, nil
}
