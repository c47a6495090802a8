package ir

import (
	"strconv"
	"strings"

	"go.zeroproto.dev/zeroproto/schema"
)

// Lower converts a validated AST into an IR. Callers are expected to have
// already called schema.Validate — Lower does not re-check semantic rules
// and is total over any AST that passed validation.
func Lower(ast *schema.AST) *IR {
	ir := &IR{}

	for _, item := range ast.Items {
		if item.Kind == schema.ItemEnum {
			ir.Enums = append(ir.Enums, lowerEnum(item.Enum))
		}
	}

	enumNames := make(map[string]bool, len(ir.Enums))
	for _, e := range ir.Enums {
		enumNames[e.Name] = true
	}

	for _, item := range ast.Items {
		if item.Kind == schema.ItemMessage {
			ir.Messages = append(ir.Messages, lowerMessage(item.Message, enumNames))
		}
	}

	return ir
}

func lowerEnum(e schema.Enum) Enum {
	variants := make([]EnumVariant, len(e.Variants))
	for i, v := range e.Variants {
		variants[i] = EnumVariant{
			Name:   v.Name,
			GoName: toPascalCase(v.Name),
			Value:  v.Value,
		}
	}

	return Enum{Name: e.Name, GoName: toPascalCase(e.Name), Variants: variants}
}

func lowerMessage(m schema.Message, enumNames map[string]bool) Message {
	goName := toPascalCase(m.Name)
	fields := make([]Field, len(m.Fields))

	for i, f := range m.Fields {
		ft := lowerFieldType(f.Type, enumNames)

		field := Field{
			Name:      f.Name,
			GoName:    toPascalCase(f.Name),
			SnakeName: toSnakeCase(f.Name),
			Index:     i,
			Type:      ft,
			Optional:  f.Optional,
		}

		if f.Default != nil {
			field.HasDefault = true
			field.Default = renderDefault(*f.Default)
		}

		fields[i] = field
	}

	return Message{
		Name:        m.Name,
		GoName:      goName,
		Fields:      fields,
		ReaderName:  goName + "Reader",
		BuilderName: goName + "Builder",
	}
}

func lowerFieldType(t schema.FieldType, enumNames map[string]bool) FieldType {
	switch t.Kind {
	case schema.FieldScalar:
		return FieldType{Kind: TypeScalar, Scalar: scalarTypeIDs[t.Scalar]}
	case schema.FieldUserDefined:
		if enumNames[t.UserDefined] {
			return FieldType{Kind: TypeEnumRef, TypeName: toPascalCase(t.UserDefined)}
		}
		return FieldType{Kind: TypeMessageRef, TypeName: toPascalCase(t.UserDefined)}
	case schema.FieldVector:
		inner := lowerFieldType(*t.Inner, enumNames)
		return FieldType{Kind: TypeVector, Element: &inner}
	default:
		return FieldType{}
	}
}

// renderDefault renders a parsed default value as the literal an emitter
// would splice into generated source: integers as decimal, floats with a
// forced ".0" suffix when the literal had no fractional digits, booleans as
// true/false, and strings double-quoted by escapeDefaultString, resolving
// the open question left by the lexer passing string-literal bodies through
// unexamined.
func renderDefault(d schema.DefaultValue) string {
	switch d.Kind {
	case schema.DefaultInt:
		return strconv.FormatInt(d.Int, 10)
	case schema.DefaultFloat:
		s := strconv.FormatFloat(d.Flt, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	case schema.DefaultBool:
		if d.Bool {
			return "true"
		}
		return "false"
	case schema.DefaultString:
		return `"` + escapeDefaultString(d.Str) + `"`
	default:
		return ""
	}
}

// escapeDefaultString escapes exactly the two characters that would
// otherwise break out of a double-quoted literal: a double quote not
// already preceded by a backslash becomes `\"`, and a trailing lone
// backslash becomes `\\`. Every backslash sequence the lexer passed through
// verbatim (e.g. `\n`, `\"`, `\\`) is copied unchanged — it is not this
// layer's job to interpret escapes, only to keep the literal syntactically
// valid — so applying the function twice gives the same result as once.
func escapeDefaultString(s string) string {
	var sb strings.Builder
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			sb.WriteRune(r)
			escaped = false
		case r == '\\':
			sb.WriteRune(r)
			escaped = true
		case r == '"':
			sb.WriteString(`\"`)
		default:
			sb.WriteRune(r)
		}
	}
	if escaped {
		sb.WriteByte('\\')
	}
	return sb.String()
}
