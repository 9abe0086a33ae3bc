package builder

import (
	"github.com/Inferara/inference-sub000/internal/ast"
	"github.com/Inferara/inference-sub000/internal/cst"
)

// buildExpression dispatches on the CST expression-node kind (spec.md §3
// Expression, §4.2).
func (b *Builder) buildExpression(node cst.Node, source []byte, parentID uint32) (ast.Expression, error) {
	switch node.Kind() {
	case "binary_expression":
		return b.buildBinaryExpression(node, source, parentID)
	case "unary_expression":
		return b.buildUnaryExpression(node, source, parentID)
	case "parenthesized_expression":
		return b.buildParenthesizedExpression(node, source, parentID)
	case "assign_expression":
		return b.buildAssignExpression(node, source, parentID)
	case "call_expression":
		return b.buildFunctionCallExpression(node, source, parentID)
	case "member_access_expression":
		return b.buildMemberAccessExpression(node, source, parentID)
	case "type_member_access_expression":
		return b.buildTypeMemberAccessExpression(node, source, parentID)
	case "array_index_expression":
		return b.buildArrayIndexAccessExpression(node, source, parentID)
	case "struct_expression":
		return b.buildStructExpression(node, source, parentID)
	case "type_expression":
		return b.buildTypeExpression(node, source, parentID)
	case "uzumaki_expression", "uzumaki":
		return b.buildUzumakiExpression(node, source, parentID)
	case "identifier":
		return b.buildIdentifierExpression(node, source, parentID), nil
	case "bool_literal", "true", "false":
		return b.buildBoolLiteral(node, source, parentID), nil
	case "number_literal", "integer_literal":
		return b.buildNumberLiteral(node, source, parentID)
	case "string_literal":
		return b.buildStringLiteral(node, source, parentID), nil
	case "array_literal":
		return b.buildArrayLiteral(node, source, parentID)
	case "unit_literal":
		return b.buildUnitLiteral(node, source, parentID), nil
	default:
		return nil, UnknownExpression(node.Kind(), location(node))
	}
}

// buildIdentifierExpression lowers a bare `identifier` used in expression
// position (a variable/function reference). Unlike buildIdentifier's other
// callers, the returned node IS the expression itself.
func (b *Builder) buildIdentifierExpression(node cst.Node, source []byte, parentID uint32) ast.Expression {
	return b.buildIdentifier(node, source, parentID)
}

func (b *Builder) buildBinaryExpression(node cst.Node, source []byte, parentID uint32) (ast.Expression, error) {
	id := b.nextID()
	e := &ast.BinaryExpression{Base: ast.Base{Id: id, Loc: location(node)}}

	leftNode, err := requireField(node, "left")
	if err != nil {
		return nil, err
	}
	left, err := b.buildExpression(leftNode, source, id)
	if err != nil {
		return nil, err
	}
	e.Left = left

	opNode, err := requireField(node, "operator")
	if err != nil {
		return nil, err
	}
	op, ok := ast.OperatorFromToken(opNode.Utf8Text(source))
	if !ok {
		return nil, UnknownExpression(node.Kind(), location(opNode))
	}
	e.Operator = op

	rightNode, err := requireField(node, "right")
	if err != nil {
		return nil, err
	}
	right, err := b.buildExpression(rightNode, source, id)
	if err != nil {
		return nil, err
	}
	e.Right = right

	b.addNode(e, parentID)
	return e, nil
}

// buildUnaryExpression lowers `op expr`, with the `-42` special case:
// a Neg operator applied directly to an (unparenthesized) number literal is
// folded into a negative NumberLiteral rather than wrapped in
// PrefixUnaryExpression (spec.md §4.2).
func (b *Builder) buildUnaryExpression(node cst.Node, source []byte, parentID uint32) (ast.Expression, error) {
	opNode, err := requireField(node, "operator")
	if err != nil {
		return nil, err
	}
	op, ok := ast.UnaryOperatorFromToken(opNode.Utf8Text(source))
	if !ok {
		return nil, UnknownExpression(node.Kind(), location(opNode))
	}

	operandNode, err := requireField(node, "operand")
	if err != nil {
		return nil, err
	}

	if op == ast.Neg {
		switch operandNode.Kind() {
		case "number_literal", "integer_literal":
			id := b.nextID()
			lit := &ast.NumberLiteral{
				Base: ast.Base{Id: id, Loc: location(node)},
				Text: "-" + operandNode.Utf8Text(source),
			}
			b.addNode(lit, parentID)
			return lit, nil
		}
	}

	id := b.nextID()
	e := &ast.PrefixUnaryExpression{Base: ast.Base{Id: id, Loc: location(node)}, Operator: op}
	operand, err := b.buildExpression(operandNode, source, id)
	if err != nil {
		return nil, err
	}
	e.Expression = operand
	b.addNode(e, parentID)
	return e, nil
}

func (b *Builder) buildParenthesizedExpression(node cst.Node, source []byte, parentID uint32) (ast.Expression, error) {
	id := b.nextID()
	e := &ast.ParenthesizedExpression{Base: ast.Base{Id: id, Loc: location(node)}}

	innerNode, err := requireField(node, "inner")
	if err != nil {
		return nil, err
	}
	inner, err := b.buildExpression(innerNode, source, id)
	if err != nil {
		return nil, err
	}
	e.Inner = inner

	b.addNode(e, parentID)
	return e, nil
}

func (b *Builder) buildAssignExpression(node cst.Node, source []byte, parentID uint32) (ast.Expression, error) {
	id := b.nextID()
	e := &ast.AssignExpression{Base: ast.Base{Id: id, Loc: location(node)}}

	left, right, err := b.buildAssignOperands(node, source, id)
	if err != nil {
		return nil, err
	}
	e.Left, e.Right = left, right

	b.addNode(e, parentID)
	return e, nil
}

// buildAssignOperands is shared between AssignExpression (expression
// position) and AssignStatement (statement position) — see
// ast.AssignStatement's doc comment.
func (b *Builder) buildAssignOperands(node cst.Node, source []byte, id uint32) (left, right ast.Expression, err error) {
	leftNode, err := requireField(node, "left")
	if err != nil {
		return nil, nil, err
	}
	left, err = b.buildExpression(leftNode, source, id)
	if err != nil {
		return nil, nil, err
	}

	rightNode, err := requireField(node, "right")
	if err != nil {
		return nil, nil, err
	}
	right, err = b.buildExpression(rightNode, source, id)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func (b *Builder) buildFunctionCallExpression(node cst.Node, source []byte, parentID uint32) (ast.Expression, error) {
	id := b.nextID()
	e := &ast.FunctionCallExpression{Base: ast.Base{Id: id, Loc: location(node)}}

	functionNode, err := requireField(node, "function")
	if err != nil {
		return nil, err
	}
	function, err := b.buildExpression(functionNode, source, id)
	if err != nil {
		return nil, err
	}
	e.Function = function

	if typeArgsNode := node.ChildByFieldName("type_arguments"); typeArgsNode != nil {
		for _, argNode := range typeArgsNode.NamedChildren() {
			t, err := b.buildType(argNode, source, id)
			if err != nil {
				return nil, err
			}
			e.TypeParameters = append(e.TypeParameters, t)
		}
	}

	if argsNode := node.ChildByFieldName("arguments"); argsNode != nil {
		for _, argNode := range argsNode.NamedChildren() {
			arg, err := b.buildCallArgument(argNode, source, id)
			if err != nil {
				return nil, err
			}
			e.Arguments = append(e.Arguments, arg)
		}
	}

	b.addNode(e, parentID)
	return e, nil
}

func (b *Builder) buildCallArgument(node cst.Node, source []byte, parentID uint32) (ast.CallArgument, error) {
	var arg ast.CallArgument

	if node.Kind() == "named_argument" {
		nameNode, err := requireField(node, "name")
		if err != nil {
			return arg, err
		}
		arg.Name = b.buildIdentifier(nameNode, source, parentID)

		valueNode, err := requireField(node, "value")
		if err != nil {
			return arg, err
		}
		value, err := b.buildExpression(valueNode, source, parentID)
		if err != nil {
			return arg, err
		}
		arg.Expr = value
		return arg, nil
	}

	value, err := b.buildExpression(node, source, parentID)
	if err != nil {
		return arg, err
	}
	arg.Expr = value
	return arg, nil
}

func (b *Builder) buildMemberAccessExpression(node cst.Node, source []byte, parentID uint32) (ast.Expression, error) {
	id := b.nextID()
	e := &ast.MemberAccessExpression{Base: ast.Base{Id: id, Loc: location(node)}}

	exprNode, err := requireField(node, "expression")
	if err != nil {
		return nil, err
	}
	expr, err := b.buildExpression(exprNode, source, id)
	if err != nil {
		return nil, err
	}
	e.Expression = expr

	nameNode, err := requireField(node, "name")
	if err != nil {
		return nil, err
	}
	e.Name = b.buildIdentifier(nameNode, source, id)

	b.addNode(e, parentID)
	return e, nil
}

func (b *Builder) buildTypeMemberAccessExpression(node cst.Node, source []byte, parentID uint32) (ast.Expression, error) {
	id := b.nextID()
	e := &ast.TypeMemberAccessExpression{Base: ast.Base{Id: id, Loc: location(node)}}

	exprNode, err := requireField(node, "expression")
	if err != nil {
		return nil, err
	}
	expr, err := b.buildExpression(exprNode, source, id)
	if err != nil {
		return nil, err
	}
	e.Expression = expr

	nameNode, err := requireField(node, "name")
	if err != nil {
		return nil, err
	}
	e.Name = b.buildIdentifier(nameNode, source, id)

	b.addNode(e, parentID)
	return e, nil
}

func (b *Builder) buildArrayIndexAccessExpression(node cst.Node, source []byte, parentID uint32) (ast.Expression, error) {
	id := b.nextID()
	e := &ast.ArrayIndexAccessExpression{Base: ast.Base{Id: id, Loc: location(node)}}

	arrayNode, err := requireField(node, "array")
	if err != nil {
		return nil, err
	}
	array, err := b.buildExpression(arrayNode, source, id)
	if err != nil {
		return nil, err
	}
	e.Array = array

	indexNode, err := requireField(node, "index")
	if err != nil {
		return nil, err
	}
	index, err := b.buildExpression(indexNode, source, id)
	if err != nil {
		return nil, err
	}
	e.Index = index

	b.addNode(e, parentID)
	return e, nil
}

func (b *Builder) buildStructExpression(node cst.Node, source []byte, parentID uint32) (ast.Expression, error) {
	id := b.nextID()
	e := &ast.StructExpression{Base: ast.Base{Id: id, Loc: location(node)}}

	nameNode, err := requireField(node, "name")
	if err != nil {
		return nil, err
	}
	e.Name = b.buildIdentifier(nameNode, source, id)

	if fieldsNode := node.ChildByFieldName("fields"); fieldsNode != nil {
		for _, fieldNode := range fieldsNode.NamedChildren() {
			field, err := b.buildStructFieldInit(fieldNode, source, id)
			if err != nil {
				return nil, err
			}
			e.Fields = append(e.Fields, field)
		}
	}

	b.addNode(e, parentID)
	return e, nil
}

func (b *Builder) buildStructFieldInit(node cst.Node, source []byte, parentID uint32) (ast.StructFieldInit, error) {
	var field ast.StructFieldInit

	nameNode, err := requireField(node, "name")
	if err != nil {
		return field, err
	}
	field.Name = b.buildIdentifier(nameNode, source, parentID)

	valueNode, err := requireField(node, "value")
	if err != nil {
		return field, err
	}
	value, err := b.buildExpression(valueNode, source, parentID)
	if err != nil {
		return field, err
	}
	field.Expr = value

	return field, nil
}

func (b *Builder) buildTypeExpression(node cst.Node, source []byte, parentID uint32) (ast.Expression, error) {
	id := b.nextID()
	e := &ast.TypeExpression{Base: ast.Base{Id: id, Loc: location(node)}}

	typeNode, err := requireField(node, "type")
	if err != nil {
		return nil, err
	}
	t, err := b.buildType(typeNode, source, id)
	if err != nil {
		return nil, err
	}
	e.Type = t

	b.addNode(e, parentID)
	return e, nil
}

func (b *Builder) buildUzumakiExpression(node cst.Node, source []byte, parentID uint32) (ast.Expression, error) {
	id := b.nextID()
	e := &ast.UzumakiExpression{Base: ast.Base{Id: id, Loc: location(node)}}
	b.addNode(e, parentID)
	return e, nil
}

func (b *Builder) buildBoolLiteral(node cst.Node, source []byte, parentID uint32) ast.Expression {
	id := b.nextID()
	lit := &ast.BoolLiteral{Base: ast.Base{Id: id, Loc: location(node)}, Value: node.Utf8Text(source) == "true"}
	b.addNode(lit, parentID)
	return lit
}

func (b *Builder) buildNumberLiteral(node cst.Node, source []byte, parentID uint32) (ast.Expression, error) {
	id := b.nextID()
	lit := &ast.NumberLiteral{Base: ast.Base{Id: id, Loc: location(node)}, Text: node.Utf8Text(source)}

	if suffixNode := node.ChildByFieldName("type"); suffixNode != nil {
		t, err := b.buildType(suffixNode, source, id)
		if err != nil {
			return nil, err
		}
		lit.Type = t
	}

	b.addNode(lit, parentID)
	return lit, nil
}

func (b *Builder) buildStringLiteral(node cst.Node, source []byte, parentID uint32) ast.Expression {
	id := b.nextID()
	lit := &ast.StringLiteral{Base: ast.Base{Id: id, Loc: location(node)}, Text: node.Utf8Text(source)}
	b.addNode(lit, parentID)
	return lit
}

func (b *Builder) buildArrayLiteral(node cst.Node, source []byte, parentID uint32) (ast.Expression, error) {
	id := b.nextID()
	lit := &ast.ArrayLiteral{Base: ast.Base{Id: id, Loc: location(node)}}

	for _, elemNode := range node.NamedChildren() {
		elem, err := b.buildExpression(elemNode, source, id)
		if err != nil {
			return nil, err
		}
		lit.Elements = append(lit.Elements, elem)
	}

	b.addNode(lit, parentID)
	return lit, nil
}

func (b *Builder) buildUnitLiteral(node cst.Node, source []byte, parentID uint32) ast.Expression {
	id := b.nextID()
	lit := &ast.UnitLiteral{Base: ast.Base{Id: id, Loc: location(node)}}
	b.addNode(lit, parentID)
	return lit
}
