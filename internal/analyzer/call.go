package analyzer

import (
	"github.com/Inferara/inference-sub000/internal/ast"
	"github.com/Inferara/inference-sub000/internal/diagnostics"
	"github.com/Inferara/inference-sub000/internal/symbols"
	"github.com/Inferara/inference-sub000/internal/typesystem"
)

func (c *Checker) inferCall(e *ast.FunctionCallExpression, typeParamNames map[string]bool) typesystem.TypeInfo {
	if ma, ok := e.Function.(*ast.MemberAccessExpression); ok {
		return c.inferMethodCall(e, ma, typeParamNames)
	}
	return c.inferFreeCall(e, typeParamNames)
}

func (c *Checker) inferMethodCall(e *ast.FunctionCallExpression, ma *ast.MemberAccessExpression, typeParamNames map[string]bool) typesystem.TypeInfo {
	receiverType := c.inferExpression(ma.Expression, typeParamNames)
	argTypes := c.inferArgs(e.Arguments, typeParamNames)

	structName, ok := c.structNameOf(receiverType)
	if !ok {
		c.errs.Add(diagnostics.NewMethodCallOnNonStruct(receiverType.String(), e.Location()))
		return c.stamp(e, typesystem.Default())
	}
	methodName := ma.Name.GetName()
	m, ok := c.ctx.Symbols.LookupMethod(structName, methodName)
	if !ok {
		c.errs.Add(diagnostics.NewMethodNotFound(structName, methodName, e.Location()))
		return c.stamp(e, typesystem.Default())
	}
	if len(m.Signature.ParamTypes) != len(argTypes) {
		c.errs.Add(diagnostics.NewArgumentCountMismatch(diagnostics.CallMethod, methodName, len(m.Signature.ParamTypes), len(argTypes), e.Location()))
	} else {
		for i, pt := range m.Signature.ParamTypes {
			if !pt.Equal(argTypes[i]) {
				c.errs.Add(diagnostics.NewTypeMismatch(pt.String(), argTypes[i].String(), diagnostics.ContextMethodArg(structName, methodName, i), e.Arguments[i].Expr.Location()))
			}
		}
	}
	return c.stamp(e, m.Signature.ReturnType)
}

func (c *Checker) inferFreeCall(e *ast.FunctionCallExpression, typeParamNames map[string]bool) typesystem.TypeInfo {
	id, ok := e.Function.(*ast.Identifier)
	if !ok {
		c.inferExpression(e.Function, typeParamNames)
		c.inferArgs(e.Arguments, typeParamNames)
		return c.stamp(e, typesystem.Default())
	}
	name := id.Name
	sig, ok := c.ctx.Symbols.LookupFunction(name)
	argTypes := c.inferArgs(e.Arguments, typeParamNames)
	if !ok {
		c.errs.Add(diagnostics.NewUndefinedFunction(name, e.Location()))
		return c.stamp(e, typesystem.Default())
	}
	if len(sig.ParamTypes) != len(argTypes) {
		c.errs.Add(diagnostics.NewArgumentCountMismatch(diagnostics.CallFunction, name, len(sig.ParamTypes), len(argTypes), e.Location()))
	}

	resultType := sig.ReturnType
	if len(sig.TypeParams) > 0 {
		bindings := c.bindCallTypeParams(e, name, sig, argTypes, typeParamNames)
		resultType = resultType.Substitute(bindings)
	} else {
		for i, pt := range sig.ParamTypes {
			if i >= len(argTypes) {
				break
			}
			if !pt.Equal(argTypes[i]) {
				c.errs.Add(diagnostics.NewTypeMismatch(pt.String(), argTypes[i].String(), diagnostics.ContextFuncArg(name, i), e.Arguments[i].Expr.Location()))
			}
		}
	}
	return c.stamp(e, resultType)
}

func (c *Checker) inferArgs(args []ast.CallArgument, typeParamNames map[string]bool) []typesystem.TypeInfo {
	out := make([]typesystem.TypeInfo, len(args))
	for i, a := range args {
		out[i] = c.inferExpression(a.Expr, typeParamNames)
	}
	return out
}

// bindCallTypeParams resolves a generic call's type-parameter bindings
// (spec.md §4.6 pass 4 FunctionCall): explicit type arguments are
// authoritative when supplied (spec.md §9 Open Questions resolves the
// explicit-vs-inferred conflict this way); otherwise each binding is
// inferred by unifying the signature's declared Generic(T) parameter types
// against the actual argument types. Every type parameter must end up
// bound, or MissingTypeParameters is raised.
func (c *Checker) bindCallTypeParams(e *ast.FunctionCallExpression, name string, sig symbols.FuncSignature, argTypes []typesystem.TypeInfo, typeParamNames map[string]bool) map[string]typesystem.TypeInfo {
	bindings := map[string]typesystem.TypeInfo{}

	if len(e.TypeParameters) > 0 {
		if len(e.TypeParameters) != len(sig.TypeParams) {
			c.errs.Add(diagnostics.NewTypeParameterCountMismatch(name, len(sig.TypeParams), len(e.TypeParameters), e.Location()))
			return bindings
		}
		for i, tp := range sig.TypeParams {
			bindings[tp] = c.resolveCustom(typesystem.FromASTType(e.TypeParameters[i], typeParamNames))
		}
		return bindings
	}

	for i, pt := range sig.ParamTypes {
		if i >= len(argTypes) {
			break
		}
		c.unify(pt, argTypes[i], bindings, name, e.Arguments[i].Expr.Location())
	}
	missing := 0
	for _, tp := range sig.TypeParams {
		if _, ok := bindings[tp]; !ok {
			missing++
		}
	}
	if missing > 0 {
		c.errs.Add(diagnostics.NewMissingTypeParameters(name, len(sig.TypeParams), e.Location()))
	}
	return bindings
}
