package ast

// StructField is one field of a struct definition.
type StructField struct {
	Name       *Identifier
	Type       Type
	Visibility Visibility
}

// StructDefinition declares a struct type with fields and methods.
type StructDefinition struct {
	Base
	Name       *Identifier
	Fields     []StructField
	Methods    []*FunctionDefinition
	Visibility Visibility
}

func (d *StructDefinition) definitionNode() {}

// GetName returns the struct's name, used uniformly by the checker when it
// only has a Definition in hand.
func (d *StructDefinition) GetName() string { return d.Name.GetName() }

// EnumDefinition declares an enum type and its variants.
type EnumDefinition struct {
	Base
	Name       *Identifier
	Variants   []*Identifier
	Visibility Visibility
}

func (d *EnumDefinition) definitionNode() {}
func (d *EnumDefinition) GetName() string { return d.Name.GetName() }

// ArgumentKind distinguishes the four argument forms a function signature
// can declare (spec.md §3).
type ArgumentKind int

const (
	ArgumentNamed ArgumentKind = iota
	ArgumentIgnore
	ArgumentSelf
	ArgumentBareType
)

// Argument is one function/method parameter. Name is nil for
// ArgumentIgnore, ArgumentSelf and ArgumentBareType.
type Argument struct {
	Kind ArgumentKind
	Name *Identifier
	Type Type
}

// FunctionDefinition declares a function or method body.
type FunctionDefinition struct {
	Base
	Name           *Identifier
	TypeParameters []*Identifier // nil when the function is not generic
	Arguments      []Argument
	Returns        Type // nil means the function returns nothing (Unit)
	Body           *Block
	Visibility     Visibility
}

func (d *FunctionDefinition) definitionNode() {}
func (d *FunctionDefinition) GetName() string { return d.Name.GetName() }

// HasSelf reports whether the first argument is `self`, marking this
// definition as an instance method rather than an associated function.
func (d *FunctionDefinition) HasSelf() bool {
	return len(d.Arguments) > 0 && d.Arguments[0].Kind == ArgumentSelf
}

// ExternalFunctionDefinition is a body-less function declaration; always
// Private (spec.md §3).
type ExternalFunctionDefinition struct {
	Base
	Name           *Identifier
	TypeParameters []*Identifier
	Arguments      []Argument
	Returns        Type
}

func (d *ExternalFunctionDefinition) definitionNode() {}
func (d *ExternalFunctionDefinition) GetName() string { return d.Name.GetName() }

// SpecDefinition is a named bundle of definitions carrying
// verification-related semantics; always Private (spec.md §3). The checker
// treats it as a nominal type, like a struct with no fields.
type SpecDefinition struct {
	Base
	Name        *Identifier
	Definitions []Definition
}

func (d *SpecDefinition) definitionNode() {}
func (d *SpecDefinition) GetName() string { return d.Name.GetName() }

// ConstantDefinition declares an immutable, literal-valued constant.
type ConstantDefinition struct {
	Base
	Name       *Identifier
	Type       Type
	Value      Literal
	Visibility Visibility
}

func (d *ConstantDefinition) definitionNode() {}
func (d *ConstantDefinition) GetName() string { return d.Name.GetName() }

// TypeDefinition is a type alias: `type Name = Type;`.
type TypeDefinition struct {
	Base
	Name       *Identifier
	Type       Type
	Visibility Visibility
}

func (d *TypeDefinition) definitionNode() {}
func (d *TypeDefinition) GetName() string { return d.Name.GetName() }

// ModuleDefinition is `mod name;` (Body is nil until the sibling file is
// parsed and its definitions are filled in by the ParserContext) or
// `pub mod name { ... }` (Body set immediately). spec.md §9 models this as
// an Option<[Definition]> assigned exactly once; Go has no interior
// mutability for value types so Body is a pointer slice assigned in place
// by modules.Loader, which is the single writer for this field.
type ModuleDefinition struct {
	Base
	Name       *Identifier
	Visibility Visibility
	Body       []Definition // nil until resolved
}

func (d *ModuleDefinition) definitionNode() {}
func (d *ModuleDefinition) GetName() string { return d.Name.GetName() }

// IsResolved reports whether this module's body has been filled in.
func (d *ModuleDefinition) IsResolved() bool { return d.Body != nil }
