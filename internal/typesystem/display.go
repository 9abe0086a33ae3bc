package typesystem

import (
	"fmt"
	"strings"
)

// String renders ti canonically (spec.md §4.5): `i32`, `Bool`, `Unit`,
// `[Elem; 10]`, `[Elem]`, `StructName<T,U>`, etc. The `<T, U>` type-params
// suffix is appended after the kind-specific body whenever TypeParams is
// non-empty, independent of which kind ti is.
func (ti TypeInfo) String() string {
	var body string
	switch ti.Kind {
	case KindUnit:
		body = "Unit"
	case KindBool:
		body = "Bool"
	case KindString:
		body = "String"
	case KindNumber:
		body = ti.Number.String()
	case KindArray:
		elem := "<nil>"
		if ti.Element != nil {
			elem = ti.Element.String()
		}
		if ti.Length != nil {
			body = fmt.Sprintf("[%s; %d]", elem, *ti.Length)
		} else {
			body = fmt.Sprintf("[%s]", elem)
		}
	case KindGeneric:
		body = ti.Name
	case KindStruct, KindEnum, KindSpec, KindCustom:
		body = ti.Name
	case KindFunction:
		body = ti.Name
	default:
		body = "<unknown-type>"
	}

	if len(ti.TypeParams) == 0 {
		return body
	}
	return body + "<" + strings.Join(ti.TypeParams, ", ") + ">"
}
