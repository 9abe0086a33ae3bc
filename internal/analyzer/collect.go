package analyzer

import (
	"github.com/Inferara/inference-sub000/internal/ast"
	"github.com/Inferara/inference-sub000/internal/symbols"
	"github.com/Inferara/inference-sub000/internal/typesystem"
)

// collectFunctionsAndConstants is pass 2 (spec.md §4.6): register every
// top-level FunctionDefinition, ExternalFunctionDefinition and
// ConstantDefinition, after validating their declared parameter/return
// types against the symbol table built by pass 1.
func (c *Checker) collectFunctionsAndConstants() {
	for _, sf := range c.ctx.SourceFiles() {
		c.walkModuleAware(sf.Definitions, c.collectOne)
	}
}

func (c *Checker) collectOne(def ast.Definition) {
	switch d := def.(type) {
	case *ast.FunctionDefinition:
		c.collectFunction(d)
	case *ast.ExternalFunctionDefinition:
		c.collectExternalFunction(d)
	case *ast.ConstantDefinition:
		c.collectConstant(d)
	case *ast.SpecDefinition:
		for _, nested := range d.Definitions {
			c.collectOne(nested)
		}
	}
}

// collectFunction validates d's declared parameter/return types and
// registers its signature, unless validation failed — spec.md §4.6 pass 2
// step 2 skips registration for a function whose declared type could not
// be validated, so such a function leaves no symbol behind and a later
// definition with the same name registers without a RegistrationFailed.
func (c *Checker) collectFunction(d *ast.FunctionDefinition) {
	typeParamNames := typeParamNameSet(d.TypeParameters)
	before := c.errs.Len()
	for _, arg := range d.Arguments {
		if arg.Type != nil {
			c.validateType(arg.Type, typeParamNames)
		}
	}
	c.validateType(d.Returns, typeParamNames)
	if c.errs.Len() > before {
		return
	}

	sig := c.buildSignature(d)
	c.addIfErr(c.ctx.Symbols.RegisterFunction(&sig, d.Location()))
}

func (c *Checker) collectExternalFunction(d *ast.ExternalFunctionDefinition) {
	typeParamNames := typeParamNameSet(d.TypeParameters)
	for _, arg := range d.Arguments {
		if arg.Type != nil {
			c.validateType(arg.Type, typeParamNames)
		}
	}
	c.validateType(d.Returns, typeParamNames)

	names := make([]string, 0, len(d.TypeParameters))
	for _, p := range d.TypeParameters {
		names = append(names, p.GetName())
	}
	paramTypes := make([]typesystem.TypeInfo, 0, len(d.Arguments))
	for _, arg := range d.Arguments {
		if arg.Kind == ast.ArgumentSelf {
			continue
		}
		paramTypes = append(paramTypes, c.resolveCustom(typesystem.FromASTType(arg.Type, typeParamNames)))
	}
	sig := symbols.FuncSignature{
		Name: d.GetName(), TypeParams: names, ParamTypes: paramTypes,
		ReturnType: c.resolveCustom(typesystem.FromASTType(d.Returns, typeParamNames)),
	}
	c.addIfErr(c.ctx.Symbols.RegisterFunction(&sig, d.Location()))
}

// collectConstant registers a top-level constant as a variable binding in
// its scope (so an Identifier expression referencing it resolves through
// LookupVariable the same way a local would), not as a type — a constant
// names a value, not a type.
func (c *Checker) collectConstant(d *ast.ConstantDefinition) {
	c.validateType(d.Type, nil)
	ti := c.resolveCustom(typesystem.FromASTType(d.Type, nil))
	c.addIfErr(c.ctx.Symbols.PushVariableToScope(d.GetName(), d.NodeID(), ti, d.Location()))
	c.ctx.SetNodeTypeInfo(d.NodeID(), ti)
}
