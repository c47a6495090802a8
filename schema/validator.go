package schema

import (
	"fmt"

	"go.zeroproto.dev/zeroproto/errs"
)

var reservedFieldNames = map[string]bool{
	"type": true, "id": true, "data": true, "buffer": true,
}

var reservedEnumNames = map[string]bool{
	"Result": true, "Option": true, "Status": true,
}

type typeKind int

const (
	kindMessage typeKind = iota
	kindEnum
)

// Validate runs the two-pass semantic check described in SPEC_FULL.md §4.4
// over ast: first collecting all top-level names into a name→kind table
// (failing on duplicates), then checking each message and enum against that
// table. It reports the first failure and stops.
func Validate(ast *AST) error {
	names := make(map[string]typeKind, len(ast.Items))

	for _, item := range ast.Items {
		name := itemName(item)
		if _, dup := names[name]; dup {
			return validationErr(name, fmt.Sprintf("duplicate type name %q", name))
		}
		names[name] = itemKind(item)
	}

	for _, item := range ast.Items {
		switch item.Kind {
		case ItemMessage:
			if err := validateMessage(item.Message, names); err != nil {
				return err
			}
		case ItemEnum:
			if err := validateEnum(item.Enum); err != nil {
				return err
			}
		}
	}

	return nil
}

func itemName(item Item) string {
	if item.Kind == ItemMessage {
		return item.Message.Name
	}
	return item.Enum.Name
}

func itemKind(item Item) typeKind {
	if item.Kind == ItemMessage {
		return kindMessage
	}
	return kindEnum
}

func validationErr(symbol, msg string) error {
	return &errs.ValidationError{Symbol: symbol, Msg: msg}
}

func validateMessage(m Message, names map[string]typeKind) error {
	seen := make(map[string]bool, len(m.Fields))

	for _, f := range m.Fields {
		if reservedFieldNames[f.Name] {
			return validationErr(m.Name, fmt.Sprintf("field name %q is reserved", f.Name))
		}
		if seen[f.Name] {
			return validationErr(m.Name, fmt.Sprintf("duplicate field name %q", f.Name))
		}
		seen[f.Name] = true

		if err := validateFieldType(m.Name, f.Type, names, false); err != nil {
			return err
		}
	}

	return nil
}

// validateFieldType recursively validates one field's type. insideVector
// tracks whether this call is validating a Vector's inner type, so a second
// level of Vector can be rejected as Vector(Vector(_)).
func validateFieldType(owner string, t FieldType, names map[string]typeKind, insideVector bool) error {
	switch t.Kind {
	case FieldScalar:
		return nil
	case FieldUserDefined:
		if _, ok := names[t.UserDefined]; !ok {
			return validationErr(owner, fmt.Sprintf("unknown type %q", t.UserDefined))
		}
		return nil
	case FieldVector:
		if insideVector {
			return validationErr(owner, "nested vectors are not allowed")
		}
		return validateFieldType(owner, *t.Inner, names, true)
	default:
		return validationErr(owner, "unrecognized field type")
	}
}

func validateEnum(e Enum) error {
	if reservedEnumNames[e.Name] {
		return validationErr(e.Name, fmt.Sprintf("enum name %q is reserved", e.Name))
	}

	seenNames := make(map[string]bool, len(e.Variants))
	seenValues := make(map[int64]bool, len(e.Variants))

	for i, v := range e.Variants {
		if seenNames[v.Name] {
			return validationErr(e.Name, fmt.Sprintf("duplicate variant name %q", v.Name))
		}
		seenNames[v.Name] = true

		value := resolveVariantValue(v, i)
		if seenValues[value] {
			return validationErr(e.Name, fmt.Sprintf("duplicate enum value %d", value))
		}
		seenValues[value] = true
	}

	return nil
}

// resolveVariantValue returns the variant's explicit value. The IDL grammar
// always requires an explicit value (see Parse), so position is kept only
// as the documented fallback for a future grammar that makes it optional.
func resolveVariantValue(v EnumVariant, position int) int64 {
	return v.Value
}
