package diagnostics

import (
	"fmt"

	"github.com/Inferara/inference-sub000/internal/ast"
	"github.com/Inferara/inference-sub000/internal/token"
)

// CheckError is satisfied by every member of the closed taxonomy below; it
// adds a Location accessor so a Bag can render `file:line:col: message`
// without a type switch.
type CheckError interface {
	error
	Loc() token.Location
}

// base is embedded by every concrete error type for its optional Location.
type base struct {
	Location token.Location
}

func (b base) Loc() token.Location { return b.Location }

// TypeMismatch is spec.md §7's TypeMismatch{expected, found, context}.
type TypeMismatch struct {
	base
	Expected, Found string
	Context         TypeMismatchContext
}

func (e *TypeMismatch) Error() string {
	return fmt.Sprintf("type mismatch %s: expected `%s`, found `%s`", e.Context, e.Expected, e.Found)
}

func NewTypeMismatch(expected, found string, ctx TypeMismatchContext, loc token.Location) *TypeMismatch {
	return &TypeMismatch{base{loc}, expected, found, ctx}
}

// UnknownType is spec.md §7's UnknownType{name}.
type UnknownType struct {
	base
	Name string
}

func (e *UnknownType) Error() string { return fmt.Sprintf("unknown type `%s`", e.Name) }
func NewUnknownType(name string, loc token.Location) *UnknownType {
	return &UnknownType{base{loc}, name}
}

// UnknownIdentifier is spec.md §7's UnknownIdentifier{name}.
type UnknownIdentifier struct {
	base
	Name string
}

func (e *UnknownIdentifier) Error() string {
	return fmt.Sprintf("use of undeclared variable `%s`", e.Name)
}
func NewUnknownIdentifier(name string, loc token.Location) *UnknownIdentifier {
	return &UnknownIdentifier{base{loc}, name}
}

// UndefinedFunction is spec.md §7's UndefinedFunction{name}.
type UndefinedFunction struct {
	base
	Name string
}

func (e *UndefinedFunction) Error() string {
	return fmt.Sprintf("call to undefined function `%s`", e.Name)
}
func NewUndefinedFunction(name string, loc token.Location) *UndefinedFunction {
	return &UndefinedFunction{base{loc}, name}
}

// UndefinedStruct is spec.md §7's UndefinedStruct{name}.
type UndefinedStruct struct {
	base
	Name string
}

func (e *UndefinedStruct) Error() string { return fmt.Sprintf("struct `%s` is not defined", e.Name) }
func NewUndefinedStruct(name string, loc token.Location) *UndefinedStruct {
	return &UndefinedStruct{base{loc}, name}
}

// UndefinedEnum is spec.md §7's UndefinedEnum{name}.
type UndefinedEnum struct {
	base
	Name string
}

func (e *UndefinedEnum) Error() string { return fmt.Sprintf("enum `%s` is not defined", e.Name) }
func NewUndefinedEnum(name string, loc token.Location) *UndefinedEnum {
	return &UndefinedEnum{base{loc}, name}
}

// FieldNotFound is spec.md §7's FieldNotFound{struct_name, field_name}.
type FieldNotFound struct {
	base
	StructName, FieldName string
}

func (e *FieldNotFound) Error() string {
	return fmt.Sprintf("field `%s` not found on struct `%s`", e.FieldName, e.StructName)
}
func NewFieldNotFound(structName, fieldName string, loc token.Location) *FieldNotFound {
	return &FieldNotFound{base{loc}, structName, fieldName}
}

// VariantNotFound is spec.md §7's VariantNotFound{enum_name, variant_name}.
type VariantNotFound struct {
	base
	EnumName, VariantName string
}

func (e *VariantNotFound) Error() string {
	return fmt.Sprintf("variant `%s` not found on enum `%s`", e.VariantName, e.EnumName)
}
func NewVariantNotFound(enumName, variantName string, loc token.Location) *VariantNotFound {
	return &VariantNotFound{base{loc}, enumName, variantName}
}

// ExpectedEnumType is spec.md §7's ExpectedEnumType{found}.
type ExpectedEnumType struct {
	base
	Found string
}

func (e *ExpectedEnumType) Error() string {
	return fmt.Sprintf("type member access requires an enum type, found `%s`", e.Found)
}
func NewExpectedEnumType(found string, loc token.Location) *ExpectedEnumType {
	return &ExpectedEnumType{base{loc}, found}
}

// MethodNotFound is spec.md §7's MethodNotFound{type_name, method_name}.
type MethodNotFound struct {
	base
	TypeName, MethodName string
}

func (e *MethodNotFound) Error() string {
	return fmt.Sprintf("method `%s` not found on type `%s`", e.MethodName, e.TypeName)
}
func NewMethodNotFound(typeName, methodName string, loc token.Location) *MethodNotFound {
	return &MethodNotFound{base{loc}, typeName, methodName}
}

// ArgumentCountMismatch is spec.md §7's ArgumentCountMismatch{kind, name,
// expected, found} — kind is "function" or "method" (spec.md §8 scenario 3).
type ArgumentCountMismatch struct {
	base
	Kind              CallKind
	Name              string
	Expected, Found int
}

func (e *ArgumentCountMismatch) Error() string {
	return fmt.Sprintf("%s `%s` expects %d arguments, but %d provided", e.Kind, e.Name, e.Expected, e.Found)
}
func NewArgumentCountMismatch(kind CallKind, name string, expected, found int, loc token.Location) *ArgumentCountMismatch {
	return &ArgumentCountMismatch{base{loc}, kind, name, expected, found}
}

// TypeParameterCountMismatch is spec.md §7's
// TypeParameterCountMismatch{name, expected, found}.
type TypeParameterCountMismatch struct {
	base
	Name            string
	Expected, Found int
}

func (e *TypeParameterCountMismatch) Error() string {
	return fmt.Sprintf("type parameter count mismatch for `%s`: expected %d, found %d", e.Name, e.Expected, e.Found)
}
func NewTypeParameterCountMismatch(name string, expected, found int, loc token.Location) *TypeParameterCountMismatch {
	return &TypeParameterCountMismatch{base{loc}, name, expected, found}
}

// MissingTypeParameters is spec.md §7's MissingTypeParameters{function_name, expected}.
type MissingTypeParameters struct {
	base
	FunctionName string
	Expected     int
}

func (e *MissingTypeParameters) Error() string {
	return fmt.Sprintf("function `%s` requires %d type parameters, but none were provided", e.FunctionName, e.Expected)
}
func NewMissingTypeParameters(functionName string, expected int, loc token.Location) *MissingTypeParameters {
	return &MissingTypeParameters{base{loc}, functionName, expected}
}

// InvalidBinaryOperand is spec.md §7's InvalidBinaryOperand{operator,
// types} — ExpectedKind names the operator class (e.g. "Arithmetic",
// "Logical"), OperandDesc is the rendered "operands of type X and Y"
// clause built by the caller.
type InvalidBinaryOperand struct {
	base
	Operator    ast.OperatorKind
	ExpectedKind string
	OperandDesc string
}

func (e *InvalidBinaryOperand) Error() string {
	return fmt.Sprintf("%s operator `%s` cannot be applied to %s", e.ExpectedKind, e.Operator, e.OperandDesc)
}
func NewInvalidBinaryOperand(op ast.OperatorKind, expectedKind, operandDesc string, loc token.Location) *InvalidBinaryOperand {
	return &InvalidBinaryOperand{base{loc}, op, expectedKind, operandDesc}
}

// InvalidUnaryOperand is spec.md §7's InvalidUnaryOperand{operator, types}.
type InvalidUnaryOperand struct {
	base
	Operator     ast.UnaryOperatorKind
	ExpectedType string
	FoundType    string
}

func (e *InvalidUnaryOperand) Error() string {
	return fmt.Sprintf("unary operator `%s` can only be applied to %s, found `%s`", e.Operator, e.ExpectedType, e.FoundType)
}
func NewInvalidUnaryOperand(op ast.UnaryOperatorKind, expectedType, foundType string, loc token.Location) *InvalidUnaryOperand {
	return &InvalidUnaryOperand{base{loc}, op, expectedType, foundType}
}

// BinaryOperandTypeMismatch is spec.md §7's
// BinaryOperandTypeMismatch{operator, left, right}.
type BinaryOperandTypeMismatch struct {
	base
	Operator    ast.OperatorKind
	Left, Right string
}

func (e *BinaryOperandTypeMismatch) Error() string {
	return fmt.Sprintf("cannot apply operator `%s` to operands of different types: `%s` and `%s`", e.Operator, e.Left, e.Right)
}
func NewBinaryOperandTypeMismatch(op ast.OperatorKind, left, right string, loc token.Location) *BinaryOperandTypeMismatch {
	return &BinaryOperandTypeMismatch{base{loc}, op, left, right}
}

// SelfReferenceInFunction is spec.md §7's
// SelfReferenceInFunction{function_name?}.
type SelfReferenceInFunction struct {
	base
	FunctionName string
}

func (e *SelfReferenceInFunction) Error() string {
	return fmt.Sprintf("self reference not allowed in standalone function `%s`", e.FunctionName)
}
func NewSelfReferenceInFunction(functionName string, loc token.Location) *SelfReferenceInFunction {
	return &SelfReferenceInFunction{base{loc}, functionName}
}

// SelfReferenceOutsideMethod is spec.md §7's SelfReferenceOutsideMethod.
type SelfReferenceOutsideMethod struct{ base }

func (e *SelfReferenceOutsideMethod) Error() string {
	return "self reference is only allowed in methods, not functions"
}
func NewSelfReferenceOutsideMethod(loc token.Location) *SelfReferenceOutsideMethod {
	return &SelfReferenceOutsideMethod{base{loc}}
}

// ImportResolutionFailed is spec.md §7's ImportResolutionFailed{path}.
type ImportResolutionFailed struct {
	base
	Path string
}

func (e *ImportResolutionFailed) Error() string {
	return fmt.Sprintf("cannot resolve import path: %s", e.Path)
}
func NewImportResolutionFailed(path string, loc token.Location) *ImportResolutionFailed {
	return &ImportResolutionFailed{base{loc}, path}
}

// CircularImport is spec.md §7's CircularImport{path}.
type CircularImport struct {
	base
	Path string
}

func (e *CircularImport) Error() string {
	return fmt.Sprintf("circular glob import detected: %s::*", e.Path)
}
func NewCircularImport(path string, loc token.Location) *CircularImport {
	return &CircularImport{base{loc}, path}
}

// EmptyGlobImport is spec.md §7's EmptyGlobImport.
type EmptyGlobImport struct{ base }

func (e *EmptyGlobImport) Error() string { return "glob import path cannot be empty" }
func NewEmptyGlobImport(loc token.Location) *EmptyGlobImport {
	return &EmptyGlobImport{base{loc}}
}

// RegistrationFailed is spec.md §7's RegistrationFailed{kind, name, reason?}
// — emitted for SymbolAlreadyDefined duplicates (spec.md §4.4) among other
// registration failures.
type RegistrationFailed struct {
	base
	Kind   RegistrationKind
	Name   string
	Reason string // empty means no reason suffix
}

func (e *RegistrationFailed) Error() string {
	msg := fmt.Sprintf("error registering %s `%s`", e.Kind, e.Name)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}
func NewRegistrationFailed(kind RegistrationKind, name, reason string, loc token.Location) *RegistrationFailed {
	return &RegistrationFailed{base{loc}, kind, name, reason}
}

// AlreadyDefined is the common case of RegistrationFailed the symbol table
// raises on a duplicate name within one scope (spec.md §4.4).
func AlreadyDefined(kind RegistrationKind, name string, loc token.Location) *RegistrationFailed {
	return NewRegistrationFailed(kind, name, "already defined in this scope", loc)
}

// ExpectedArrayType is spec.md §7's ExpectedArrayType{found}.
type ExpectedArrayType struct {
	base
	Found string
}

func (e *ExpectedArrayType) Error() string {
	return fmt.Sprintf("expected an array type, found `%s`", e.Found)
}
func NewExpectedArrayType(found string, loc token.Location) *ExpectedArrayType {
	return &ExpectedArrayType{base{loc}, found}
}

// ExpectedStructType is spec.md §7's ExpectedStructType{found}.
type ExpectedStructType struct {
	base
	Found string
}

func (e *ExpectedStructType) Error() string {
	return fmt.Sprintf("member access requires a struct type, found `%s`", e.Found)
}
func NewExpectedStructType(found string, loc token.Location) *ExpectedStructType {
	return &ExpectedStructType{base{loc}, found}
}

// MethodCallOnNonStruct is spec.md §7's MethodCallOnNonStruct{found}.
type MethodCallOnNonStruct struct {
	base
	Found string
}

func (e *MethodCallOnNonStruct) Error() string {
	return fmt.Sprintf("cannot call method on non-struct type `%s`", e.Found)
}
func NewMethodCallOnNonStruct(found string, loc token.Location) *MethodCallOnNonStruct {
	return &MethodCallOnNonStruct{base{loc}, found}
}

// ArrayIndexNotNumeric is spec.md §7's ArrayIndexNotNumeric{found}.
type ArrayIndexNotNumeric struct {
	base
	Found string
}

func (e *ArrayIndexNotNumeric) Error() string {
	return fmt.Sprintf("array index must be of number type, found `%s`", e.Found)
}
func NewArrayIndexNotNumeric(found string, loc token.Location) *ArrayIndexNotNumeric {
	return &ArrayIndexNotNumeric{base{loc}, found}
}

// ArrayElementTypeMismatch is spec.md §7's
// ArrayElementTypeMismatch{expected, found}.
type ArrayElementTypeMismatch struct {
	base
	Expected, Found string
}

func (e *ArrayElementTypeMismatch) Error() string {
	return fmt.Sprintf("array elements must be of the same type: expected `%s`, found `%s`", e.Expected, e.Found)
}
func NewArrayElementTypeMismatch(expected, found string, loc token.Location) *ArrayElementTypeMismatch {
	return &ArrayElementTypeMismatch{base{loc}, expected, found}
}

// CannotInferUzumakiType is spec.md §7's CannotInferUzumakiType.
type CannotInferUzumakiType struct{ base }

func (e *CannotInferUzumakiType) Error() string {
	return "cannot infer type for uzumaki expression assigned to variable of unknown type"
}
func NewCannotInferUzumakiType(loc token.Location) *CannotInferUzumakiType {
	return &CannotInferUzumakiType{base{loc}}
}

// General wraps any message that doesn't fit the closed taxonomy (errors.rs's
// General(String) variant) — carries no location.
type General struct {
	base
	Message string
}

func (e *General) Error() string { return e.Message }
func NewGeneral(message string) *General {
	return &General{base{token.Zero}, message}
}
