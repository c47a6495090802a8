package schema

// Scalar is the closed set of fixed-width and length-prefixed primitive
// types a field may name directly.
type Scalar int

const (
	ScalarU8 Scalar = iota
	ScalarU16
	ScalarU32
	ScalarU64
	ScalarI8
	ScalarI16
	ScalarI32
	ScalarI64
	ScalarF32
	ScalarF64
	ScalarBool
	ScalarString
	ScalarBytes
)

var scalarKeywords = map[string]Scalar{
	"u8":     ScalarU8,
	"u16":    ScalarU16,
	"u32":    ScalarU32,
	"u64":    ScalarU64,
	"i8":     ScalarI8,
	"i16":    ScalarI16,
	"i32":    ScalarI32,
	"i64":    ScalarI64,
	"f32":    ScalarF32,
	"f64":    ScalarF64,
	"bool":   ScalarBool,
	"string": ScalarString,
	"bytes":  ScalarBytes,
}

func (s Scalar) String() string {
	for name, v := range scalarKeywords {
		if v == s {
			return name
		}
	}
	return "unknown"
}

// FieldTypeKind discriminates the FieldType tagged union.
type FieldTypeKind int

const (
	FieldScalar FieldTypeKind = iota
	FieldUserDefined
	FieldVector
)

// FieldType is the tagged union `Scalar(s) | UserDefined(name) | Vector(inner)`
// from the IDL grammar. Exactly one of Scalar/UserDefined/Inner is
// meaningful, selected by Kind.
type FieldType struct {
	Kind        FieldTypeKind
	Scalar      Scalar
	UserDefined string
	Inner       *FieldType // only set when Kind == FieldVector
}

// DefaultValueKind discriminates the DefaultValue tagged union.
type DefaultValueKind int

const (
	DefaultInt DefaultValueKind = iota
	DefaultFloat
	DefaultBool
	DefaultString
)

// DefaultValue is a field's literal default, as written in the IDL.
type DefaultValue struct {
	Kind DefaultValueKind
	Int  int64
	Flt  float64
	Bool bool
	Str  string
}

// Field is one message member: name, type, optionality, and default.
type Field struct {
	Name     string
	Type     FieldType
	Optional bool
	Default  *DefaultValue
}

// Message is a named, ordered list of fields. Field order is the wire
// contract: position in Fields determines runtime field index.
type Message struct {
	Name   string
	Fields []Field
}

// EnumVariant is one named, valued member of an Enum.
type EnumVariant struct {
	Name  string
	Value int64
}

// Enum is a named, ordered list of variants.
type Enum struct {
	Name     string
	Variants []EnumVariant
}

// ItemKind discriminates Schema's top-level items.
type ItemKind int

const (
	ItemMessage ItemKind = iota
	ItemEnum
)

// Item is one top-level schema declaration: a Message or an Enum.
type Item struct {
	Kind    ItemKind
	Message Message
	Enum    Enum
}

// AST is the parsed representation of one schema file: an ordered list of
// top-level items.
type AST struct {
	Items []Item
}
