// Package ir lowers a validated schema AST (see package schema) into an
// intermediate representation annotated with field indices, canonical
// names, scalar type tags, and rendered default-value literals — the
// contract consumed by an external code emitter.
package ir

import "go.zeroproto.dev/zeroproto/schema"

// ScalarTypeID mirrors message.TypeID's wire-facing values for the subset
// that can appear in a schema (everything except Message and Vector, which
// are represented separately below).
type ScalarTypeID uint8

const (
	ScalarU8      ScalarTypeID = 0
	ScalarU16     ScalarTypeID = 1
	ScalarU32     ScalarTypeID = 2
	ScalarU64     ScalarTypeID = 3
	ScalarI8      ScalarTypeID = 4
	ScalarI16     ScalarTypeID = 5
	ScalarI32     ScalarTypeID = 6
	ScalarI64     ScalarTypeID = 7
	ScalarF32     ScalarTypeID = 8
	ScalarF64     ScalarTypeID = 9
	ScalarBool    ScalarTypeID = 10
	ScalarString  ScalarTypeID = 11
	ScalarBytesID ScalarTypeID = 12
)

var scalarTypeIDs = map[schema.Scalar]ScalarTypeID{
	schema.ScalarU8:     ScalarU8,
	schema.ScalarU16:    ScalarU16,
	schema.ScalarU32:    ScalarU32,
	schema.ScalarU64:    ScalarU64,
	schema.ScalarI8:     ScalarI8,
	schema.ScalarI16:    ScalarI16,
	schema.ScalarI32:    ScalarI32,
	schema.ScalarI64:    ScalarI64,
	schema.ScalarF32:    ScalarF32,
	schema.ScalarF64:    ScalarF64,
	schema.ScalarBool:   ScalarBool,
	schema.ScalarString: ScalarString,
	schema.ScalarBytes:  ScalarBytesID,
}

// FieldTypeKind discriminates FieldType, mirroring schema.FieldTypeKind but
// additionally distinguishing which kind of user-defined type was resolved.
type FieldTypeKind int

const (
	TypeScalar FieldTypeKind = iota
	TypeMessageRef
	TypeEnumRef
	TypeVector
)

// FieldType is one field's lowered type: exactly one of Scalar/TypeName is
// meaningful (selected by Kind), and Element is set only for TypeVector.
type FieldType struct {
	Kind     FieldTypeKind
	Scalar   ScalarTypeID
	TypeName string // PascalCase name, set for TypeMessageRef/TypeEnumRef
	Element  *FieldType
}

// Field is one message field after lowering.
type Field struct {
	Name       string // original schema name
	GoName     string // PascalCase, for a generated struct/accessor name
	SnakeName  string // snake_case, for a generated method/file-local name
	Index      int    // wire field index — identical to the builder/reader's k
	Type       FieldType
	Optional   bool
	HasDefault bool
	Default    string // rendered literal, meaningful only if HasDefault
}

// Message is one message after lowering.
type Message struct {
	Name        string
	GoName      string
	Fields      []Field
	ReaderName  string
	BuilderName string
}

// EnumVariant is one enum variant after lowering.
type EnumVariant struct {
	Name   string
	GoName string
	Value  int64
}

// Enum is one enum after lowering.
type Enum struct {
	Name     string
	GoName   string
	Variants []EnumVariant
}

// IR is the full lowered schema: enums and messages, each in declaration
// order. It is a pure data structure — Lower never fails.
type IR struct {
	Enums    []Enum
	Messages []Message
}
