// Package diagnostics is the type checker's closed error taxonomy
// (spec.md §7): one struct per kind, each satisfying error and carrying an
// optional token.Location, wording carried verbatim from the original's
// errors.rs `#[error("...")]` templates per SPEC_FULL.md's supplemented
// feature 5 (spec.md itself leaves wording unspecified).
package diagnostics

import (
	"fmt"

	"github.com/Inferara/inference-sub000/internal/ast"
)

// RegistrationKind names what sort of symbol a RegistrationFailed error is
// about (errors.rs's RegistrationKind).
type RegistrationKind int

const (
	RegistrationType RegistrationKind = iota
	RegistrationStruct
	RegistrationEnum
	RegistrationSpec
	RegistrationFunction
	RegistrationMethod
	RegistrationVariable
)

var registrationKindNames = map[RegistrationKind]string{
	RegistrationType:     "type",
	RegistrationStruct:   "struct",
	RegistrationEnum:     "enum",
	RegistrationSpec:     "spec",
	RegistrationFunction: "function",
	RegistrationMethod:   "method",
	RegistrationVariable: "variable",
}

func (k RegistrationKind) String() string {
	if s, ok := registrationKindNames[k]; ok {
		return s
	}
	return "<unknown-registration-kind>"
}

// CallKind distinguishes a free function call from a method call for
// ArgumentCountMismatch's "kind" payload (spec.md §7, §8 scenario 3).
type CallKind int

const (
	CallFunction CallKind = iota
	CallMethod
)

func (k CallKind) String() string {
	if k == CallMethod {
		return "method"
	}
	return "function"
}

// TypeMismatchContext tags where a TypeMismatch was found (errors.rs's
// TypeMismatchContext, carried per SPEC_FULL.md supplemented feature 6).
type TypeMismatchContext struct {
	Kind         TypeMismatchContextKind
	Operator     ast.OperatorKind // meaningful when Kind == ContextBinaryOperation
	FunctionName string           // meaningful when Kind == ContextFunctionArgument
	TypeName     string           // meaningful when Kind == ContextMethodArgument
	MethodName   string           // meaningful when Kind == ContextMethodArgument
	ArgIndex     int              // meaningful when Kind == ContextFunctionArgument or ContextMethodArgument
}

type TypeMismatchContextKind int

const (
	ContextAssignment TypeMismatchContextKind = iota
	ContextReturn
	ContextVariableDefinition
	ContextBinaryOperation
	ContextCondition
	ContextFunctionArgument
	ContextMethodArgument
	ContextArrayElement
)

func (c TypeMismatchContext) String() string {
	switch c.Kind {
	case ContextAssignment:
		return "in assignment"
	case ContextReturn:
		return "in return statement"
	case ContextVariableDefinition:
		return "in variable definition"
	case ContextBinaryOperation:
		return "in binary operation `" + c.Operator.String() + "`"
	case ContextCondition:
		return "in condition"
	case ContextFunctionArgument:
		return fmtArgContext(c.ArgIndex, c.FunctionName)
	case ContextMethodArgument:
		return fmtMethodArgContext(c.ArgIndex, c.TypeName, c.MethodName)
	case ContextArrayElement:
		return "in array element"
	default:
		return "<unknown-context>"
	}
}

func fmtArgContext(index int, name string) string {
	return fmt.Sprintf("in argument %d of function `%s`", index, name)
}

func fmtMethodArgContext(index int, typeName, methodName string) string {
	return fmt.Sprintf("in argument %d of method `%s::%s`", index, typeName, methodName)
}

func ContextAssign() TypeMismatchContext           { return TypeMismatchContext{Kind: ContextAssignment} }
func ContextRet() TypeMismatchContext              { return TypeMismatchContext{Kind: ContextReturn} }
func ContextVarDef() TypeMismatchContext           { return TypeMismatchContext{Kind: ContextVariableDefinition} }
func ContextCond() TypeMismatchContext             { return TypeMismatchContext{Kind: ContextCondition} }
func ContextArrayElem() TypeMismatchContext        { return TypeMismatchContext{Kind: ContextArrayElement} }
func ContextBinOp(op ast.OperatorKind) TypeMismatchContext {
	return TypeMismatchContext{Kind: ContextBinaryOperation, Operator: op}
}
func ContextFuncArg(functionName string, index int) TypeMismatchContext {
	return TypeMismatchContext{Kind: ContextFunctionArgument, FunctionName: functionName, ArgIndex: index}
}
func ContextMethodArg(typeName, methodName string, index int) TypeMismatchContext {
	return TypeMismatchContext{Kind: ContextMethodArgument, TypeName: typeName, MethodName: methodName, ArgIndex: index}
}
