package analyzer

import (
	"github.com/Inferara/inference-sub000/internal/ast"
	"github.com/Inferara/inference-sub000/internal/diagnostics"
	"github.com/Inferara/inference-sub000/internal/symbols"
	"github.com/Inferara/inference-sub000/internal/typesystem"
)

// registerTypes is pass 1 (spec.md §4.6): register every TypeDefinition,
// StructDefinition, EnumDefinition and SpecDefinition — recursing into
// resolved module bodies — before anything in pass 2 can reference them.
// FunctionDefinition/ExternalFunctionDefinition/ConstantDefinition are left
// for pass 2; walkModuleAware still visits them here but registerOneType
// ignores what it doesn't own.
func (c *Checker) registerTypes() {
	for _, sf := range c.ctx.SourceFiles() {
		c.walkModuleAware(sf.Definitions, c.registerOneType)
	}
}

func (c *Checker) addIfErr(err error) {
	if err == nil {
		return
	}
	c.errs.Add(err.(diagnostics.CheckError))
}

func (c *Checker) registerOneType(def ast.Definition) {
	switch d := def.(type) {
	case *ast.TypeDefinition:
		ti := c.resolveCustom(typesystem.FromASTType(d.Type, nil))
		c.addIfErr(c.ctx.Symbols.RegisterType(d.GetName(), ti, d.Location()))
	case *ast.StructDefinition:
		c.registerStruct(d)
	case *ast.EnumDefinition:
		variants := make([]string, 0, len(d.Variants))
		for _, v := range d.Variants {
			variants = append(variants, v.GetName())
		}
		c.addIfErr(c.ctx.Symbols.RegisterEnum(&symbols.EnumInfo{
			Name: d.GetName(), Variants: variants, Visibility: d.Visibility,
		}, d.Location()))
	case *ast.SpecDefinition:
		c.addIfErr(c.ctx.Symbols.RegisterSpec(d.GetName(), d.Location()))
		// A spec's own nested definitions are registered in the enclosing
		// scope — spec.md §4.6 documents a child scope only for
		// ModuleDefinition, not SpecDefinition (see DESIGN.md).
		for _, nested := range d.Definitions {
			c.registerOneType(nested)
		}
	}
}

func (c *Checker) registerStruct(d *ast.StructDefinition) {
	fields := make(map[string]symbols.StructFieldInfo, len(d.Fields))
	order := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		name := f.Name.GetName()
		fields[name] = symbols.StructFieldInfo{
			Name: name, Type: c.resolveCustom(typesystem.FromASTType(f.Type, nil)), Visibility: f.Visibility,
		}
		order = append(order, name)
	}
	info := &symbols.StructInfo{
		Name: d.GetName(), Fields: fields, FieldOrder: order, Visibility: d.Visibility,
	}
	c.addIfErr(c.ctx.Symbols.RegisterStruct(info, d.Location()))

	for _, m := range d.Methods {
		sig := c.buildSignature(m)
		c.addIfErr(c.ctx.Symbols.RegisterMethod(d.GetName(), sig, m.Visibility, m.HasSelf(), m.Location()))
	}
}

// buildSignature builds a FuncSignature from a function/method definition,
// excluding `self` from ParamTypes (spec.md §4.6 "signature.param_types
// (which excludes self)").
func (c *Checker) buildSignature(d *ast.FunctionDefinition) symbols.FuncSignature {
	typeParamNames := typeParamNameSet(d.TypeParameters)
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
	returnType := c.resolveCustom(typesystem.FromASTType(d.Returns, typeParamNames))
	return symbols.FuncSignature{
		Name: d.GetName(), TypeParams: names, ParamTypes: paramTypes, ReturnType: returnType,
	}
}
