package analyzer

import (
	"github.com/Inferara/inference-sub000/internal/arena"
	"github.com/Inferara/inference-sub000/internal/ast"
	"github.com/Inferara/inference-sub000/internal/diagnostics"
	"github.com/Inferara/inference-sub000/internal/symbols"
	"github.com/Inferara/inference-sub000/internal/token"
	"github.com/Inferara/inference-sub000/internal/typesystem"
)

// Checker runs the four passes over one unified arena (spec.md §4.6).
type Checker struct {
	ctx  *TypedContext
	errs *diagnostics.Bag

	currentFunctionName string
	currentSelfType      *typesystem.TypeInfo
}

// InferTypes runs all four passes over a, returning the TypedContext on
// success. Per spec.md §4.6's propagation policy, if passes 1-2 leave any
// accumulated error, passes 3-4 are skipped and the errors are returned
// instead of a context.
func InferTypes(a *arena.Arena) (*TypedContext, []diagnostics.CheckError) {
	st := symbols.NewSymbolTable()
	ctx := NewTypedContext(a, st)
	c := &Checker{ctx: ctx, errs: diagnostics.NewBag()}

	c.collectImports()
	c.registerTypes()
	c.collectFunctionsAndConstants()
	if c.errs.HasErrors() {
		return nil, c.errs.Errors()
	}

	c.resolveImports()
	c.inferBodies()
	if c.errs.HasErrors() {
		return nil, c.errs.Errors()
	}
	return ctx, nil
}

// walkModuleAware visits every definition reachable from defs, recursing
// into a resolved ModuleDefinition's own body after (re)entering its scope
// (spec.md §4.6 pass 1 "ModuleDefinition opens its own child scope"). Every
// pass calls this with the same defs in the same order, so
// symbols.SymbolTable.EnterModule's reuse-by-name behavior reconstructs one
// shared scope tree across passes instead of each pass building its own —
// this is what lets pass 4 find the struct/function symbols pass 1/2
// registered inside a `mod sub { ... }` body.
func (c *Checker) walkModuleAware(defs []ast.Definition, handle func(def ast.Definition)) {
	for _, def := range defs {
		mod, ok := def.(*ast.ModuleDefinition)
		if !ok {
			handle(def)
			continue
		}
		if !mod.IsResolved() {
			continue
		}
		c.ctx.Symbols.EnterModule(mod)
		c.walkModuleAware(mod.Body, handle)
		c.ctx.Symbols.PopScope()
	}
}

func typeParamNameSet(params []*ast.Identifier) map[string]bool {
	set := make(map[string]bool, len(params))
	for _, p := range params {
		set[p.GetName()] = true
	}
	return set
}

// validateType recursively checks that every named type a signature
// mentions is either one of typeParamNames or resolvable via LookupType
// (spec.md §4.6 pass 2 "validate every parameter type and return type
// against the symbol table"). It does not check struct/generic arity —
// this AST has no syntax for declaring a struct's own type parameters, so
// there is no declared arity to check a GenericType's parameter count
// against (see DESIGN.md).
func (c *Checker) validateType(t ast.Type, typeParamNames map[string]bool) {
	switch n := t.(type) {
	case nil, *ast.SimpleType:
		return
	case *ast.ArrayType:
		c.validateType(n.Element, typeParamNames)
	case *ast.GenericType:
		c.validateNamedType(n.BaseName.GetName(), typeParamNames, n.Location())
		for _, p := range n.Parameters {
			c.validateType(p, typeParamNames)
		}
	case *ast.FunctionType:
		for _, p := range n.Parameters {
			c.validateType(p, typeParamNames)
		}
		c.validateType(n.Returns, typeParamNames)
	case *ast.QualifiedNameType:
		c.validateNamedType(n.Name.GetName(), typeParamNames, n.Location())
	case *ast.QualifiedType:
		c.validateNamedType(n.Name.GetName(), typeParamNames, n.Location())
	case *ast.CustomType:
		c.validateNamedType(n.Name.GetName(), typeParamNames, n.Location())
	}
}

// validateNamedType checks a bare type name against the function/struct's
// own declared type parameters, then the symbol table, emitting UnknownType
// if neither recognizes it.
func (c *Checker) validateNamedType(name string, typeParamNames map[string]bool, loc token.Location) {
	if typeParamNames[name] {
		return
	}
	if _, ok := c.ctx.Symbols.LookupType(name); ok {
		return
	}
	c.errs.Add(diagnostics.NewUnknownType(name, loc))
}
