package analyzer

import (
	"fmt"

	"github.com/Inferara/inference-sub000/internal/ast"
	"github.com/Inferara/inference-sub000/internal/diagnostics"
	"github.com/Inferara/inference-sub000/internal/token"
	"github.com/Inferara/inference-sub000/internal/typesystem"
)

// inferBodies is pass 4 (spec.md §4.6): walk every function and method
// body, inferring and stamping a TypeInfo for each expression node and
// checking statements against the declared signature.
func (c *Checker) inferBodies() {
	for _, sf := range c.ctx.SourceFiles() {
		c.walkModuleAware(sf.Definitions, c.inferOneDefinitionBody)
	}
}

func (c *Checker) inferOneDefinitionBody(def ast.Definition) {
	switch d := def.(type) {
	case *ast.FunctionDefinition:
		c.inferFunctionBody(d, nil)
	case *ast.StructDefinition:
		selfType := typesystem.Struct(d.GetName())
		for _, m := range d.Methods {
			if m.HasSelf() {
				c.inferFunctionBody(m, &selfType)
			} else {
				c.inferFunctionBody(m, nil)
			}
		}
	case *ast.SpecDefinition:
		for _, nested := range d.Definitions {
			c.inferOneDefinitionBody(nested)
		}
	}
}

func (c *Checker) inferFunctionBody(d *ast.FunctionDefinition, selfType *typesystem.TypeInfo) {
	typeParamNames := typeParamNameSet(d.TypeParameters)
	st := c.ctx.Symbols
	st.PushScope()
	defer st.PopScope()

	prevName, prevSelf := c.currentFunctionName, c.currentSelfType
	c.currentFunctionName, c.currentSelfType = d.GetName(), selfType
	defer func() { c.currentFunctionName, c.currentSelfType = prevName, prevSelf }()

	if selfType != nil {
		_ = st.PushVariableToScope("self", 0, *selfType, d.Location())
	}
	for _, arg := range d.Arguments {
		if arg.Kind == ast.ArgumentSelf {
			if selfType == nil {
				c.errs.Add(diagnostics.NewSelfReferenceOutsideMethod(d.Location()))
			}
			continue
		}
		if arg.Name == nil {
			continue
		}
		ti := c.resolveCustom(typesystem.FromASTType(arg.Type, typeParamNames))
		c.addIfErr(st.PushVariableToScope(arg.Name.GetName(), 0, ti, d.Location()))
	}

	returnType := c.resolveCustom(typesystem.FromASTType(d.Returns, typeParamNames))
	if d.Body == nil {
		return
	}
	for _, stmt := range d.Body.Statements {
		c.inferStatement(stmt, returnType, typeParamNames)
	}
}

func (c *Checker) inferBlock(b *ast.Block, returnType typesystem.TypeInfo, typeParamNames map[string]bool) {
	st := c.ctx.Symbols
	st.PushScope()
	defer st.PopScope()
	for _, stmt := range b.Statements {
		c.inferStatement(stmt, returnType, typeParamNames)
	}
}

func (c *Checker) inferStatement(stmt ast.Statement, returnType typesystem.TypeInfo, typeParamNames map[string]bool) {
	switch s := stmt.(type) {
	case *ast.Block:
		c.inferBlock(s, returnType, typeParamNames)
	case *ast.ExpressionStatement:
		c.inferExpression(s.Expression, typeParamNames)
	case *ast.ReturnStatement:
		c.inferReturn(s, returnType, typeParamNames)
	case *ast.IfStatement:
		c.inferIf(s, returnType, typeParamNames)
	case *ast.LoopStatement:
		c.inferLoop(s, returnType, typeParamNames)
	case *ast.BreakStatement:
		// no type consequences
	case *ast.AssignStatement:
		c.inferAssign(s.Left, s.Right, s.Location(), typeParamNames)
	case *ast.VariableDefinitionStatement:
		c.inferVariableDefinition(s, typeParamNames)
	case *ast.AssertStatement:
		ct := c.inferExpression(s.Expression, typeParamNames)
		if !ct.IsBool() {
			c.errs.Add(diagnostics.NewTypeMismatch("Bool", ct.String(), diagnostics.ContextCond(), s.Location()))
		}
	case *ast.ConstantDefinitionStatement:
		c.inferConstantDefinitionStatement(s, typeParamNames)
	case *ast.TypeDefinitionStatement:
		def := s.Definition
		ti := c.resolveCustom(typesystem.FromASTType(def.Type, typeParamNames))
		c.addIfErr(c.ctx.Symbols.RegisterType(def.GetName(), ti, def.Location()))
	}
}

func (c *Checker) inferIf(s *ast.IfStatement, returnType typesystem.TypeInfo, typeParamNames map[string]bool) {
	ct := c.inferExpression(s.Condition, typeParamNames)
	if !ct.IsBool() {
		c.errs.Add(diagnostics.NewTypeMismatch("Bool", ct.String(), diagnostics.ContextCond(), s.Location()))
	}
	if s.Then != nil {
		c.inferBlock(s.Then, returnType, typeParamNames)
	}
	if s.Else != nil {
		c.inferBlock(s.Else, returnType, typeParamNames)
	}
}

func (c *Checker) inferLoop(s *ast.LoopStatement, returnType typesystem.TypeInfo, typeParamNames map[string]bool) {
	if s.Condition != nil {
		ct := c.inferExpression(s.Condition, typeParamNames)
		if !ct.IsBool() {
			c.errs.Add(diagnostics.NewTypeMismatch("Bool", ct.String(), diagnostics.ContextCond(), s.Location()))
		}
	}
	if s.Body != nil {
		c.inferBlock(s.Body, returnType, typeParamNames)
	}
}

func (c *Checker) inferReturn(s *ast.ReturnStatement, returnType typesystem.TypeInfo, typeParamNames map[string]bool) {
	if s.Expression == nil {
		if !returnType.Equal(typesystem.Default()) {
			c.errs.Add(diagnostics.NewTypeMismatch(returnType.String(), typesystem.Default().String(), diagnostics.ContextRet(), s.Location()))
		}
		return
	}
	if uz, ok := s.Expression.(*ast.UzumakiExpression); ok {
		c.ctx.SetNodeTypeInfo(uz.NodeID(), returnType)
		return
	}
	vt := c.inferExpression(s.Expression, typeParamNames)
	if !returnType.Equal(vt) {
		c.errs.Add(diagnostics.NewTypeMismatch(returnType.String(), vt.String(), diagnostics.ContextRet(), s.Location()))
	}
}

func (c *Checker) inferAssign(left, right ast.Expression, loc token.Location, typeParamNames map[string]bool) typesystem.TypeInfo {
	targetType := c.inferExpression(left, typeParamNames)
	if uz, ok := right.(*ast.UzumakiExpression); ok {
		c.ctx.SetNodeTypeInfo(uz.NodeID(), targetType)
		return targetType
	}
	rt := c.inferExpression(right, typeParamNames)
	if !targetType.Equal(rt) {
		c.errs.Add(diagnostics.NewTypeMismatch(targetType.String(), rt.String(), diagnostics.ContextAssign(), loc))
	}
	return targetType
}

func (c *Checker) inferVariableDefinition(s *ast.VariableDefinitionStatement, typeParamNames map[string]bool) {
	var declaredType typesystem.TypeInfo
	hasDeclaredType := s.Type != nil
	if hasDeclaredType {
		declaredType = c.resolveCustom(typesystem.FromASTType(s.Type, typeParamNames))
	}

	if s.Value != nil {
		if uz, ok := s.Value.(*ast.UzumakiExpression); ok {
			if !hasDeclaredType {
				c.errs.Add(diagnostics.NewCannotInferUzumakiType(s.Location()))
			} else {
				c.ctx.SetNodeTypeInfo(uz.NodeID(), declaredType)
			}
		} else {
			vt := c.inferExpression(s.Value, typeParamNames)
			if hasDeclaredType {
				if !declaredType.Equal(vt) {
					c.errs.Add(diagnostics.NewTypeMismatch(declaredType.String(), vt.String(), diagnostics.ContextVarDef(), s.Location()))
				}
			} else {
				declaredType = vt
			}
		}
	}

	c.addIfErr(c.ctx.Symbols.PushVariableToScope(s.Name.GetName(), s.NodeID(), declaredType, s.Location()))
	c.ctx.SetNodeTypeInfo(s.NodeID(), declaredType)
}

func (c *Checker) inferConstantDefinitionStatement(s *ast.ConstantDefinitionStatement, typeParamNames map[string]bool) {
	def := s.Definition
	ti := c.resolveCustom(typesystem.FromASTType(def.Type, typeParamNames))
	c.addIfErr(c.ctx.Symbols.PushVariableToScope(def.GetName(), def.NodeID(), ti, def.Location()))
	c.ctx.SetNodeTypeInfo(def.NodeID(), ti)
}

// --- expressions ---------------------------------------------------------

func (c *Checker) inferExpression(expr ast.Expression, typeParamNames map[string]bool) typesystem.TypeInfo {
	switch e := expr.(type) {
	case nil:
		return typesystem.Default()
	case *ast.BoolLiteral:
		return c.stamp(e, typesystem.Boolean())
	case *ast.NumberLiteral:
		// Number literals default to i32 unconditionally, by design
		// (spec.md §9 Open Questions — kept as the simpler rule even
		// though the original source sometimes tracks suffix-derived
		// widths; see DESIGN.md).
		return c.stamp(e, typesystem.Number(typesystem.I32))
	case *ast.StringLiteral:
		return c.stamp(e, typesystem.Str())
	case *ast.UnitLiteral:
		return c.stamp(e, typesystem.Default())
	case *ast.ArrayLiteral:
		return c.inferArrayLiteral(e, typeParamNames)
	case *ast.Identifier:
		return c.inferIdentifier(e)
	case *ast.BinaryExpression:
		return c.inferBinary(e, typeParamNames)
	case *ast.PrefixUnaryExpression:
		return c.inferUnary(e, typeParamNames)
	case *ast.ParenthesizedExpression:
		ti := c.inferExpression(e.Inner, typeParamNames)
		return c.stamp(e, ti)
	case *ast.AssignExpression:
		return c.stamp(e, c.inferAssign(e.Left, e.Right, e.Location(), typeParamNames))
	case *ast.FunctionCallExpression:
		return c.inferCall(e, typeParamNames)
	case *ast.MemberAccessExpression:
		return c.inferMemberAccess(e, typeParamNames)
	case *ast.TypeMemberAccessExpression:
		return c.inferTypeMemberAccess(e, typeParamNames)
	case *ast.ArrayIndexAccessExpression:
		return c.inferArrayIndex(e, typeParamNames)
	case *ast.StructExpression:
		return c.inferStructLiteral(e, typeParamNames)
	case *ast.TypeExpression:
		return c.stamp(e, c.resolveCustom(typesystem.FromASTType(e.Type, typeParamNames)))
	case *ast.UzumakiExpression:
		if ti, ok := c.ctx.GetNodeTypeInfo(e.NodeID()); ok {
			return ti
		}
		c.errs.Add(diagnostics.NewCannotInferUzumakiType(e.Location()))
		return typesystem.Default()
	default:
		return typesystem.Default()
	}
}

func (c *Checker) stamp(n ast.Node, ti typesystem.TypeInfo) typesystem.TypeInfo {
	c.ctx.SetNodeTypeInfo(n.NodeID(), ti)
	return ti
}

func (c *Checker) inferIdentifier(id *ast.Identifier) typesystem.TypeInfo {
	if id.Name == "self" && c.currentSelfType == nil {
		c.errs.Add(diagnostics.NewSelfReferenceInFunction(c.currentFunctionName, id.Location()))
		return typesystem.Default()
	}
	ti, ok := c.ctx.Symbols.LookupVariable(id.Name)
	if !ok {
		c.errs.Add(diagnostics.NewUnknownIdentifier(id.Name, id.Location()))
		return typesystem.Default()
	}
	return c.stamp(id, ti)
}

func (c *Checker) inferArrayLiteral(lit *ast.ArrayLiteral, typeParamNames map[string]bool) typesystem.TypeInfo {
	if len(lit.Elements) == 0 {
		// An empty literal has no element to infer from; Unit is used as a
		// placeholder element type (spec.md describes only the non-empty
		// case).
		return c.stamp(lit, typesystem.Array(typesystem.Default(), nil))
	}
	first := c.inferExpression(lit.Elements[0], typeParamNames)
	for _, el := range lit.Elements[1:] {
		t := c.inferExpression(el, typeParamNames)
		if !t.Equal(first) {
			c.errs.Add(diagnostics.NewArrayElementTypeMismatch(first.String(), t.String(), el.Location()))
		}
	}
	length := len(lit.Elements)
	return c.stamp(lit, typesystem.Array(first, &length))
}

func (c *Checker) inferBinary(e *ast.BinaryExpression, typeParamNames map[string]bool) typesystem.TypeInfo {
	left := c.inferExpression(e.Left, typeParamNames)
	right := c.inferExpression(e.Right, typeParamNames)
	op := e.Operator

	switch {
	case op.IsLogical():
		if !left.IsBool() || !right.IsBool() {
			c.errs.Add(diagnostics.NewInvalidBinaryOperand(op, "Logical", operandsDesc(left, right), e.Location()))
		}
		return c.stamp(e, typesystem.Boolean())
	case op.IsComparison():
		if !left.Equal(right) {
			c.errs.Add(diagnostics.NewBinaryOperandTypeMismatch(op, left.String(), right.String(), e.Location()))
		}
		return c.stamp(e, typesystem.Boolean())
	default:
		if !left.IsNumber() || !right.IsNumber() {
			c.errs.Add(diagnostics.NewInvalidBinaryOperand(op, "Arithmetic", operandsDesc(left, right), e.Location()))
			return c.stamp(e, left)
		}
		if !left.Equal(right) {
			c.errs.Add(diagnostics.NewBinaryOperandTypeMismatch(op, left.String(), right.String(), e.Location()))
		}
		return c.stamp(e, left)
	}
}

func operandsDesc(left, right typesystem.TypeInfo) string {
	return fmt.Sprintf("operands of type `%s` and `%s`", left, right)
}

// inferUnary implements spec.md §4.6 pass 4: prefix `-` requires a numeric
// operand (not Bool — a deliberate departure from the original's
// type_checker.rs, which checks Bool for Neg; spec.md §4.6 is explicit
// that Neg requires numeric, so that is what is implemented here; see
// DESIGN.md), `!` requires Bool, `~` requires an integer.
func (c *Checker) inferUnary(e *ast.PrefixUnaryExpression, typeParamNames map[string]bool) typesystem.TypeInfo {
	operand := c.inferExpression(e.Expression, typeParamNames)
	switch e.Operator {
	case ast.Neg:
		if !operand.IsNumber() {
			c.errs.Add(diagnostics.NewInvalidUnaryOperand(ast.Neg, "a number type", operand.String(), e.Location()))
		}
		return c.stamp(e, operand)
	case ast.Not:
		if !operand.IsBool() {
			c.errs.Add(diagnostics.NewInvalidUnaryOperand(ast.Not, "Bool", operand.String(), e.Location()))
		}
		return c.stamp(e, typesystem.Boolean())
	case ast.BitNot:
		if !operand.IsNumber() {
			c.errs.Add(diagnostics.NewInvalidUnaryOperand(ast.BitNot, "an integer type", operand.String(), e.Location()))
		}
		return c.stamp(e, operand)
	default:
		return c.stamp(e, operand)
	}
}

func (c *Checker) inferMemberAccess(e *ast.MemberAccessExpression, typeParamNames map[string]bool) typesystem.TypeInfo {
	recv := c.inferExpression(e.Expression, typeParamNames)
	structName, ok := c.structNameOf(recv)
	if !ok {
		c.errs.Add(diagnostics.NewExpectedStructType(recv.String(), e.Location()))
		return typesystem.Default()
	}
	fieldType, ok := c.ctx.Symbols.LookupStructField(structName, e.Name.GetName())
	if !ok {
		c.errs.Add(diagnostics.NewFieldNotFound(structName, e.Name.GetName(), e.Location()))
		return typesystem.Default()
	}
	return c.stamp(e, fieldType)
}

func (c *Checker) inferTypeMemberAccess(e *ast.TypeMemberAccessExpression, typeParamNames map[string]bool) typesystem.TypeInfo {
	id, ok := e.Expression.(*ast.Identifier)
	if !ok {
		found := c.inferExpression(e.Expression, typeParamNames)
		c.errs.Add(diagnostics.NewExpectedEnumType(found.String(), e.Location()))
		return typesystem.Default()
	}
	enumName := id.Name
	info, ok := c.ctx.Symbols.LookupEnumInfo(enumName)
	if !ok {
		c.errs.Add(diagnostics.NewUndefinedEnum(enumName, e.Location()))
		return typesystem.Default()
	}
	variantName := e.Name.GetName()
	found := false
	for _, v := range info.Variants {
		if v == variantName {
			found = true
			break
		}
	}
	if !found {
		c.errs.Add(diagnostics.NewVariantNotFound(enumName, variantName, e.Location()))
	}
	return c.stamp(e, typesystem.Enum(enumName))
}

func (c *Checker) inferArrayIndex(e *ast.ArrayIndexAccessExpression, typeParamNames map[string]bool) typesystem.TypeInfo {
	arrTy := c.inferExpression(e.Array, typeParamNames)
	idxTy := c.inferExpression(e.Index, typeParamNames)
	if !idxTy.IsNumber() {
		c.errs.Add(diagnostics.NewArrayIndexNotNumeric(idxTy.String(), e.Index.Location()))
	}
	if !arrTy.IsArray() {
		c.errs.Add(diagnostics.NewExpectedArrayType(arrTy.String(), e.Location()))
		return typesystem.Default()
	}
	return c.stamp(e, *arrTy.Element)
}

func (c *Checker) inferStructLiteral(e *ast.StructExpression, typeParamNames map[string]bool) typesystem.TypeInfo {
	structName := e.Name.GetName()
	info, ok := c.ctx.Symbols.LookupStruct(structName)
	if !ok {
		c.errs.Add(diagnostics.NewUndefinedStruct(structName, e.Location()))
		for _, f := range e.Fields {
			c.inferExpression(f.Expr, typeParamNames)
		}
		return typesystem.Default()
	}
	for _, f := range e.Fields {
		valType := c.inferExpression(f.Expr, typeParamNames)
		fieldInfo, ok := info.Fields[f.Name.GetName()]
		if !ok {
			c.errs.Add(diagnostics.NewFieldNotFound(structName, f.Name.GetName(), f.Expr.Location()))
			continue
		}
		if !fieldInfo.Type.Equal(valType) {
			c.errs.Add(diagnostics.NewTypeMismatch(fieldInfo.Type.String(), valType.String(), diagnostics.ContextAssign(), f.Expr.Location()))
		}
	}
	return c.stamp(e, typesystem.Struct(structName, info.TypeParams...))
}

func (c *Checker) structNameOf(ti typesystem.TypeInfo) (string, bool) {
	switch ti.Kind {
	case typesystem.KindStruct:
		return ti.Name, true
	case typesystem.KindCustom:
		if _, ok := c.ctx.Symbols.LookupStruct(ti.Name); ok {
			return ti.Name, true
		}
		return "", false
	default:
		return "", false
	}
}
