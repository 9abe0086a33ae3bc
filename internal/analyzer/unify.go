package analyzer

import (
	"github.com/Inferara/inference-sub000/internal/diagnostics"
	"github.com/Inferara/inference-sub000/internal/token"
	"github.com/Inferara/inference-sub000/internal/typesystem"
)

// unify matches a signature's declared parameter type against the actual
// argument type, binding a bare Generic(T) the first time it is seen and
// recursing into an Array's element otherwise (spec.md §4.6 pass 4:
// "Generic(T) matched against arg_ty binds T; mismatched bindings ⇒
// TypeMismatch"). functionName/loc are only used to render the
// mismatched-binding diagnostic.
func (c *Checker) unify(declared, actual typesystem.TypeInfo, bindings map[string]typesystem.TypeInfo, functionName string, loc token.Location) {
	switch declared.Kind {
	case typesystem.KindGeneric:
		if existing, ok := bindings[declared.Name]; ok {
			if !existing.Equal(actual) {
				c.errs.Add(diagnostics.NewTypeMismatch(existing.String(), actual.String(), diagnostics.ContextFuncArg(functionName, 0), loc))
			}
			return
		}
		bindings[declared.Name] = actual
	case typesystem.KindArray:
		if actual.Kind == typesystem.KindArray && declared.Element != nil && actual.Element != nil {
			c.unify(*declared.Element, *actual.Element, bindings, functionName, loc)
		}
	}
}
