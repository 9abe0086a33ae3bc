package builder

import (
	"github.com/Inferara/inference-sub000/internal/ast"
	"github.com/Inferara/inference-sub000/internal/cst"
)

// buildStatement dispatches on the CST statement-node kind (spec.md §3
// Statement, §4.2).
func (b *Builder) buildStatement(node cst.Node, source []byte, parentID uint32) (ast.Statement, error) {
	switch node.Kind() {
	case "block", "forall_block", "exists_block", "unique_block", "assume_block":
		return b.buildBlock(node, source, parentID)
	case "return_statement":
		return b.buildReturnStatement(node, source, parentID)
	case "if_statement":
		return b.buildIfStatement(node, source, parentID)
	case "loop_statement":
		return b.buildLoopStatement(node, source, parentID)
	case "break_statement":
		return b.buildBreakStatement(node, source, parentID), nil
	case "assign_statement":
		return b.buildAssignStatement(node, source, parentID)
	case "variable_definition_statement", "let_statement":
		return b.buildVariableDefinitionStatement(node, source, parentID)
	case "assert_statement":
		return b.buildAssertStatement(node, source, parentID)
	case "constant_definition":
		return b.buildConstantDefinitionStatement(node, source, parentID)
	case "type_definition_statement", "type_definition":
		return b.buildTypeDefinitionStatement(node, source, parentID)
	case "expression_statement":
		return b.buildExpressionStatement(node, source, parentID)
	default:
		// Bare expressions are legal directly in statement position (the
		// grammar may not always wrap them in expression_statement).
		if expr, err := b.buildExpression(node, source, parentID); err == nil {
			return b.wrapExpressionStatement(expr, node, parentID), nil
		}
		return nil, UnknownStatement(node.Kind(), location(node))
	}
}

func (b *Builder) buildBlock(node cst.Node, source []byte, parentID uint32) (*ast.Block, error) {
	id := b.nextID()
	kind, ok := ast.BlockKindFromCSTKind(node.Kind())
	if !ok {
		kind = ast.BlockPlain
	}
	blk := &ast.Block{Base: ast.Base{Id: id, Loc: location(node)}, Kind: kind}

	for _, stmtNode := range node.NamedChildren() {
		stmt, err := b.buildStatement(stmtNode, source, id)
		if err != nil {
			return nil, err
		}
		blk.Statements = append(blk.Statements, stmt)
	}

	b.addNode(blk, parentID)
	return blk, nil
}

func (b *Builder) buildExpressionStatement(node cst.Node, source []byte, parentID uint32) (ast.Statement, error) {
	id := b.nextID()
	s := &ast.ExpressionStatement{Base: ast.Base{Id: id, Loc: location(node)}}

	innerNode, err := requireField(node, "expression")
	if err != nil {
		// Some grammars nest the expression as the sole child with no field.
		if innerNode = node.Child(0); innerNode == nil {
			return nil, err
		}
	}
	expr, err := b.buildExpression(innerNode, source, id)
	if err != nil {
		return nil, err
	}
	s.Expression = expr

	b.addNode(s, parentID)
	return s, nil
}

// wrapExpressionStatement wraps an already-built expression (built with
// parentID as its parent) into a synthetic ExpressionStatement occupying the
// bare statement-position node's location.
func (b *Builder) wrapExpressionStatement(expr ast.Expression, node cst.Node, parentID uint32) ast.Statement {
	id := b.nextID()
	s := &ast.ExpressionStatement{Base: ast.Base{Id: id, Loc: location(node)}, Expression: expr}
	b.addNode(s, parentID)
	return s
}

func (b *Builder) buildReturnStatement(node cst.Node, source []byte, parentID uint32) (ast.Statement, error) {
	id := b.nextID()
	s := &ast.ReturnStatement{Base: ast.Base{Id: id, Loc: location(node)}}

	if exprNode := node.ChildByFieldName("expression"); exprNode != nil {
		expr, err := b.buildExpression(exprNode, source, id)
		if err != nil {
			return nil, err
		}
		s.Expression = expr
	}

	b.addNode(s, parentID)
	return s, nil
}

func (b *Builder) buildIfStatement(node cst.Node, source []byte, parentID uint32) (ast.Statement, error) {
	id := b.nextID()
	s := &ast.IfStatement{Base: ast.Base{Id: id, Loc: location(node)}}

	condNode, err := requireField(node, "condition")
	if err != nil {
		return nil, err
	}
	cond, err := b.buildExpression(condNode, source, id)
	if err != nil {
		return nil, err
	}
	s.Condition = cond

	thenNode, err := requireField(node, "then")
	if err != nil {
		return nil, err
	}
	then, err := b.buildBlock(thenNode, source, id)
	if err != nil {
		return nil, err
	}
	s.Then = then

	if elseNode := node.ChildByFieldName("else"); elseNode != nil {
		elseBlk, err := b.buildBlock(elseNode, source, id)
		if err != nil {
			return nil, err
		}
		s.Else = elseBlk
	}

	b.addNode(s, parentID)
	return s, nil
}

func (b *Builder) buildLoopStatement(node cst.Node, source []byte, parentID uint32) (ast.Statement, error) {
	id := b.nextID()
	s := &ast.LoopStatement{Base: ast.Base{Id: id, Loc: location(node)}}

	if condNode := node.ChildByFieldName("condition"); condNode != nil {
		cond, err := b.buildExpression(condNode, source, id)
		if err != nil {
			return nil, err
		}
		s.Condition = cond
	}

	bodyNode, err := requireField(node, "body")
	if err != nil {
		return nil, err
	}
	body, err := b.buildBlock(bodyNode, source, id)
	if err != nil {
		return nil, err
	}
	s.Body = body

	b.addNode(s, parentID)
	return s, nil
}

func (b *Builder) buildBreakStatement(node cst.Node, source []byte, parentID uint32) ast.Statement {
	id := b.nextID()
	s := &ast.BreakStatement{Base: ast.Base{Id: id, Loc: location(node)}}
	b.addNode(s, parentID)
	return s
}

func (b *Builder) buildAssignStatement(node cst.Node, source []byte, parentID uint32) (ast.Statement, error) {
	id := b.nextID()
	s := &ast.AssignStatement{Base: ast.Base{Id: id, Loc: location(node)}}

	left, right, err := b.buildAssignOperands(node, source, id)
	if err != nil {
		return nil, err
	}
	s.Left, s.Right = left, right

	b.addNode(s, parentID)
	return s, nil
}

func (b *Builder) buildVariableDefinitionStatement(node cst.Node, source []byte, parentID uint32) (ast.Statement, error) {
	id := b.nextID()
	s := &ast.VariableDefinitionStatement{Base: ast.Base{Id: id, Loc: location(node)}}

	nameNode, err := requireField(node, "name")
	if err != nil {
		return nil, err
	}
	s.Name = b.buildIdentifier(nameNode, source, id)

	if typeNode := node.ChildByFieldName("type"); typeNode != nil {
		t, err := b.buildType(typeNode, source, id)
		if err != nil {
			return nil, err
		}
		s.Type = t
	}

	if valueNode := node.ChildByFieldName("value"); valueNode != nil {
		value, err := b.buildExpression(valueNode, source, id)
		if err != nil {
			return nil, err
		}
		s.Value = value
	} else {
		s.IsUndef = true
	}

	b.addNode(s, parentID)
	return s, nil
}

func (b *Builder) buildAssertStatement(node cst.Node, source []byte, parentID uint32) (ast.Statement, error) {
	id := b.nextID()
	s := &ast.AssertStatement{Base: ast.Base{Id: id, Loc: location(node)}}

	exprNode, err := requireField(node, "expression")
	if err != nil {
		return nil, err
	}
	expr, err := b.buildExpression(exprNode, source, id)
	if err != nil {
		return nil, err
	}
	s.Expression = expr

	b.addNode(s, parentID)
	return s, nil
}

func (b *Builder) buildConstantDefinitionStatement(node cst.Node, source []byte, parentID uint32) (ast.Statement, error) {
	id := b.nextID()
	s := &ast.ConstantDefinitionStatement{Base: ast.Base{Id: id, Loc: location(node)}}

	def, err := b.buildConstantDefinition(node, source, id)
	if err != nil {
		return nil, err
	}
	s.Definition = def

	b.addNode(s, parentID)
	return s, nil
}

func (b *Builder) buildTypeDefinitionStatement(node cst.Node, source []byte, parentID uint32) (ast.Statement, error) {
	id := b.nextID()
	s := &ast.TypeDefinitionStatement{Base: ast.Base{Id: id, Loc: location(node)}}

	def, err := b.buildTypeDefinition(node, source, id)
	if err != nil {
		return nil, err
	}
	s.Definition = def

	b.addNode(s, parentID)
	return s, nil
}
