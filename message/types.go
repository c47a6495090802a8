// Package message implements zeroproto's wire codec: a Builder that
// accumulates fields by index and finalizes them into a message buffer, and
// a Reader that opens a borrowed buffer and exposes bounds-checked,
// zero-copy typed accessors over it.
//
// The wire layout is a 2-byte field count, an N*5-byte field table of
// (type_id, offset) entries, and a payload region holding the concatenated
// field payloads. See the package-level constants below for the exact byte
// layout; the authoritative description lives in SPEC_FULL.md §6.
package message

// TypeID identifies the wire encoding of one field's payload.
type TypeID uint8

// The closed set of wire type ids. Values and ordering match SPEC_FULL.md
// §6 bit-for-bit; an emitter or any other tool reading raw buffers depends
// on these exact values.
const (
	TypeU8      TypeID = 0
	TypeU16     TypeID = 1
	TypeU32     TypeID = 2
	TypeU64     TypeID = 3
	TypeI8      TypeID = 4
	TypeI16     TypeID = 5
	TypeI32     TypeID = 6
	TypeI64     TypeID = 7
	TypeF32     TypeID = 8
	TypeF64     TypeID = 9
	TypeBool    TypeID = 10
	TypeString  TypeID = 11
	TypeBytes   TypeID = 12
	TypeMessage TypeID = 13
	TypeVector  TypeID = 14

	// TypeUnset is the sentinel marking a field slot as absent. Its offset
	// field is unspecified and must never be dereferenced.
	TypeUnset TypeID = 255
)

func (t TypeID) String() string {
	switch t {
	case TypeU8:
		return "u8"
	case TypeU16:
		return "u16"
	case TypeU32:
		return "u32"
	case TypeU64:
		return "u64"
	case TypeI8:
		return "i8"
	case TypeI16:
		return "i16"
	case TypeI32:
		return "i32"
	case TypeI64:
		return "i64"
	case TypeF32:
		return "f32"
	case TypeF64:
		return "f64"
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	case TypeBytes:
		return "bytes"
	case TypeMessage:
		return "message"
	case TypeVector:
		return "vector"
	case TypeUnset:
		return "unset"
	default:
		return "unknown"
	}
}

// Wire layout constants.
const (
	// HeaderSize is the width, in bytes, of the field-count header.
	HeaderSize = 2

	// FieldEntrySize is the width, in bytes, of one field table entry
	// (1-byte type_id + 4-byte LE offset).
	FieldEntrySize = 5

	// MaxFieldIndex is the exclusive upper bound on a field index: valid
	// indices are 0 <= k < MaxFieldIndex (65535 fields max, 0-based), since
	// the field count itself is stored in a u16 and a count of 65536 would
	// not fit.
	MaxFieldIndex = 65535

	// Per-scalar payload widths are given by scalarSize below, keyed by
	// TypeID, and by the wire.SizeT constants used at call sites.
)

// scalarSize returns the fixed payload width, in bytes, for a scalar TypeID.
// Returns (0, false) for non-scalar or unknown type ids.
func scalarSize(t TypeID) (int, bool) {
	switch t {
	case TypeU8, TypeI8, TypeBool:
		return 1, true
	case TypeU16, TypeI16:
		return 2, true
	case TypeU32, TypeI32, TypeF32:
		return 4, true
	case TypeU64, TypeI64, TypeF64:
		return 8, true
	default:
		return 0, false
	}
}

// fieldEntry is one row of the field table: the wire type and the
// buffer-absolute byte offset of its payload. Unset entries carry an
// unspecified offset.
type fieldEntry struct {
	typeID TypeID
	offset uint32
}
