package message

import (
	"fmt"
	"unicode/utf8"

	"go.zeroproto.dev/zeroproto/errs"
	"go.zeroproto.dev/zeroproto/wire"
)

// Reader is a non-owning, immutable view over a message buffer. It never
// mutates or copies the backing slice; bytes, nested-message and vector
// accessors return views over sub-slices whose lifetime is tied to the
// buffer passed to Open. String accessors return a Go string holding a copy
// of the validated payload bytes, not an alias of the buffer.
//
// A Reader has no interior mutability, so it is safe to share across
// goroutines as long as nothing mutates the backing buffer concurrently.
type Reader struct {
	buf   []byte
	count int
}

// Open views buf as a message buffer. It validates the header and field
// table bounds but does not eagerly validate individual payload offsets —
// per-field validation happens lazily in each accessor.
func Open(buf []byte) (Reader, error) {
	if len(buf) < HeaderSize {
		return Reader{}, fmt.Errorf("message: buffer shorter than header: %w", errs.ErrInvalidMessage)
	}

	count := int(wire.ReadU16(buf, 0))
	need := HeaderSize + FieldEntrySize*count
	if len(buf) < need {
		return Reader{}, fmt.Errorf("message: buffer shorter than field table (need %d, have %d): %w", need, len(buf), errs.ErrInvalidMessage)
	}

	return Reader{buf: buf, count: count}, nil
}

// FieldCount returns the number of entries in the field table.
func (r Reader) FieldCount() int { return r.count }

// Bytes returns the backing buffer this Reader was opened over.
func (r Reader) Bytes() []byte { return r.buf }

func (r Reader) entry(k int) (fieldEntry, error) {
	if k < 0 || k >= r.count {
		return fieldEntry{}, fmt.Errorf("message: field %d: %w", k, errs.ErrOutOfBounds)
	}

	entryOff := HeaderSize + k*FieldEntrySize
	typeID := TypeID(r.buf[entryOff])
	if typeID == TypeUnset {
		return fieldEntry{typeID: TypeUnset}, nil
	}

	return fieldEntry{
		typeID: typeID,
		offset: wire.ReadU32(r.buf, entryOff+1),
	}, nil
}

// Has reports whether field k exists: k is in range and its entry is not
// TypeUnset.
func (r Reader) Has(k int) bool {
	e, err := r.entry(k)
	return err == nil && e.typeID != TypeUnset
}

func (r Reader) checkScalar(k int, want TypeID, size int) (int, error) {
	e, err := r.entry(k)
	if err != nil {
		return 0, err
	}
	if e.typeID == TypeUnset {
		return 0, fmt.Errorf("message: field %d: %w", k, errs.ErrMissingField)
	}
	if e.typeID != want {
		return 0, fmt.Errorf("message: field %d: requested %s, stored %s: %w", k, want, e.typeID, errs.ErrInvalidFieldType)
	}

	offset := int(e.offset)
	if offset+size > len(r.buf) {
		return 0, fmt.Errorf("message: field %d: payload out of bounds: %w", k, errs.ErrOutOfBounds)
	}

	return offset, nil
}

// tryScalar is the shared implementation behind every TryScalarT method: it
// returns (zero, false, nil) when the field is Unset, and otherwise behaves
// like checkScalar.
func (r Reader) tryScalar(k int, want TypeID, size int) (offset int, ok bool, err error) {
	e, err := r.entry(k)
	if err != nil {
		return 0, false, err
	}
	if e.typeID == TypeUnset {
		return 0, false, nil
	}
	if e.typeID != want {
		return 0, false, fmt.Errorf("message: field %d: requested %s, stored %s: %w", k, want, e.typeID, errs.ErrInvalidFieldType)
	}

	offset = int(e.offset)
	if offset+size > len(r.buf) {
		return 0, false, fmt.Errorf("message: field %d: payload out of bounds: %w", k, errs.ErrOutOfBounds)
	}

	return offset, true, nil
}

func (r Reader) ScalarU8(k int) (uint8, error) {
	off, err := r.checkScalar(k, TypeU8, wire.SizeU8)
	if err != nil {
		return 0, err
	}
	return wire.ReadU8(r.buf, off), nil
}

func (r Reader) TryScalarU8(k int) (uint8, bool, error) {
	off, ok, err := r.tryScalar(k, TypeU8, wire.SizeU8)
	if err != nil || !ok {
		return 0, ok, err
	}
	return wire.ReadU8(r.buf, off), true, nil
}

func (r Reader) ScalarU16(k int) (uint16, error) {
	off, err := r.checkScalar(k, TypeU16, wire.SizeU16)
	if err != nil {
		return 0, err
	}
	return wire.ReadU16(r.buf, off), nil
}

func (r Reader) TryScalarU16(k int) (uint16, bool, error) {
	off, ok, err := r.tryScalar(k, TypeU16, wire.SizeU16)
	if err != nil || !ok {
		return 0, ok, err
	}
	return wire.ReadU16(r.buf, off), true, nil
}

func (r Reader) ScalarU32(k int) (uint32, error) {
	off, err := r.checkScalar(k, TypeU32, wire.SizeU32)
	if err != nil {
		return 0, err
	}
	return wire.ReadU32(r.buf, off), nil
}

func (r Reader) TryScalarU32(k int) (uint32, bool, error) {
	off, ok, err := r.tryScalar(k, TypeU32, wire.SizeU32)
	if err != nil || !ok {
		return 0, ok, err
	}
	return wire.ReadU32(r.buf, off), true, nil
}

func (r Reader) ScalarU64(k int) (uint64, error) {
	off, err := r.checkScalar(k, TypeU64, wire.SizeU64)
	if err != nil {
		return 0, err
	}
	return wire.ReadU64(r.buf, off), nil
}

func (r Reader) TryScalarU64(k int) (uint64, bool, error) {
	off, ok, err := r.tryScalar(k, TypeU64, wire.SizeU64)
	if err != nil || !ok {
		return 0, ok, err
	}
	return wire.ReadU64(r.buf, off), true, nil
}

func (r Reader) ScalarI8(k int) (int8, error) {
	off, err := r.checkScalar(k, TypeI8, wire.SizeI8)
	if err != nil {
		return 0, err
	}
	return wire.ReadI8(r.buf, off), nil
}

func (r Reader) TryScalarI8(k int) (int8, bool, error) {
	off, ok, err := r.tryScalar(k, TypeI8, wire.SizeI8)
	if err != nil || !ok {
		return 0, ok, err
	}
	return wire.ReadI8(r.buf, off), true, nil
}

func (r Reader) ScalarI16(k int) (int16, error) {
	off, err := r.checkScalar(k, TypeI16, wire.SizeI16)
	if err != nil {
		return 0, err
	}
	return wire.ReadI16(r.buf, off), nil
}

func (r Reader) TryScalarI16(k int) (int16, bool, error) {
	off, ok, err := r.tryScalar(k, TypeI16, wire.SizeI16)
	if err != nil || !ok {
		return 0, ok, err
	}
	return wire.ReadI16(r.buf, off), true, nil
}

func (r Reader) ScalarI32(k int) (int32, error) {
	off, err := r.checkScalar(k, TypeI32, wire.SizeI32)
	if err != nil {
		return 0, err
	}
	return wire.ReadI32(r.buf, off), nil
}

func (r Reader) TryScalarI32(k int) (int32, bool, error) {
	off, ok, err := r.tryScalar(k, TypeI32, wire.SizeI32)
	if err != nil || !ok {
		return 0, ok, err
	}
	return wire.ReadI32(r.buf, off), true, nil
}

func (r Reader) ScalarI64(k int) (int64, error) {
	off, err := r.checkScalar(k, TypeI64, wire.SizeI64)
	if err != nil {
		return 0, err
	}
	return wire.ReadI64(r.buf, off), nil
}

func (r Reader) TryScalarI64(k int) (int64, bool, error) {
	off, ok, err := r.tryScalar(k, TypeI64, wire.SizeI64)
	if err != nil || !ok {
		return 0, ok, err
	}
	return wire.ReadI64(r.buf, off), true, nil
}

func (r Reader) ScalarF32(k int) (float32, error) {
	off, err := r.checkScalar(k, TypeF32, wire.SizeF32)
	if err != nil {
		return 0, err
	}
	return wire.ReadF32(r.buf, off), nil
}

func (r Reader) TryScalarF32(k int) (float32, bool, error) {
	off, ok, err := r.tryScalar(k, TypeF32, wire.SizeF32)
	if err != nil || !ok {
		return 0, ok, err
	}
	return wire.ReadF32(r.buf, off), true, nil
}

func (r Reader) ScalarF64(k int) (float64, error) {
	off, err := r.checkScalar(k, TypeF64, wire.SizeF64)
	if err != nil {
		return 0, err
	}
	return wire.ReadF64(r.buf, off), nil
}

func (r Reader) TryScalarF64(k int) (float64, bool, error) {
	off, ok, err := r.tryScalar(k, TypeF64, wire.SizeF64)
	if err != nil || !ok {
		return 0, ok, err
	}
	return wire.ReadF64(r.buf, off), true, nil
}

func (r Reader) ScalarBool(k int) (bool, error) {
	off, err := r.checkScalar(k, TypeBool, wire.SizeBool)
	if err != nil {
		return false, err
	}
	return wire.ReadBool(r.buf, off), nil
}

func (r Reader) TryScalarBool(k int) (bool, bool, error) {
	off, ok, err := r.tryScalar(k, TypeBool, wire.SizeBool)
	if err != nil || !ok {
		return false, ok, err
	}
	return wire.ReadBool(r.buf, off), true, nil
}

// lengthPrefixed reads the 4-byte LE length at offset and returns the
// sub-slice of raw bytes that follows, validating both fit in the buffer.
func (r Reader) lengthPrefixed(k int, offset int) ([]byte, error) {
	if offset+wire.SizeLengthPrefix > len(r.buf) {
		return nil, fmt.Errorf("message: field %d: length prefix out of bounds: %w", k, errs.ErrOutOfBounds)
	}

	length := int(wire.ReadU32(r.buf, offset))
	start := offset + wire.SizeLengthPrefix
	end := start + length
	if end > len(r.buf) {
		return nil, fmt.Errorf("message: field %d: payload out of bounds: %w", k, errs.ErrOutOfBounds)
	}

	return r.buf[start:end], nil
}

func (r Reader) checkKind(k int, want TypeID) (int, error) {
	e, err := r.entry(k)
	if err != nil {
		return 0, err
	}
	if e.typeID == TypeUnset {
		return 0, fmt.Errorf("message: field %d: %w", k, errs.ErrMissingField)
	}
	if e.typeID != want {
		return 0, fmt.Errorf("message: field %d: requested %s, stored %s: %w", k, want, e.typeID, errs.ErrInvalidFieldType)
	}

	return int(e.offset), nil
}

func (r Reader) tryKind(k int, want TypeID) (offset int, ok bool, err error) {
	e, err := r.entry(k)
	if err != nil {
		return 0, false, err
	}
	if e.typeID == TypeUnset {
		return 0, false, nil
	}
	if e.typeID != want {
		return 0, false, fmt.Errorf("message: field %d: requested %s, stored %s: %w", k, want, e.typeID, errs.ErrInvalidFieldType)
	}

	return int(e.offset), true, nil
}

// String returns field k's string payload. The payload is validated as
// UTF-8 in place, then converted with string(...), which copies it: the
// returned string does not alias the backing buffer.
func (r Reader) String(k int) (string, error) {
	offset, err := r.checkKind(k, TypeString)
	if err != nil {
		return "", err
	}

	raw, err := r.lengthPrefixed(k, offset)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("message: field %d: %w", k, errs.ErrInvalidUTF8)
	}

	return string(raw), nil
}

// TryString is the absence-as-bool variant of String.
func (r Reader) TryString(k int) (string, bool, error) {
	offset, ok, err := r.tryKind(k, TypeString)
	if err != nil || !ok {
		return "", ok, err
	}

	raw, err := r.lengthPrefixed(k, offset)
	if err != nil {
		return "", false, err
	}
	if !utf8.Valid(raw) {
		return "", false, fmt.Errorf("message: field %d: %w", k, errs.ErrInvalidUTF8)
	}

	return string(raw), true, nil
}

// BytesField returns field k's raw bytes payload as a sub-slice of the backing
// buffer; callers must not mutate it.
func (r Reader) BytesField(k int) ([]byte, error) {
	offset, err := r.checkKind(k, TypeBytes)
	if err != nil {
		return nil, err
	}

	return r.lengthPrefixed(k, offset)
}

// TryBytesField is the absence-as-bool variant of BytesField.
func (r Reader) TryBytesField(k int) ([]byte, bool, error) {
	offset, ok, err := r.tryKind(k, TypeBytes)
	if err != nil || !ok {
		return nil, ok, err
	}

	raw, err := r.lengthPrefixed(k, offset)
	if err != nil {
		return nil, false, err
	}

	return raw, true, nil
}

// Message returns a sub-reader over field k's nested message buffer. The
// sub-slice must itself pass reader construction (Open), otherwise an
// ErrInvalidMessage is returned.
func (r Reader) Message(k int) (Reader, error) {
	offset, err := r.checkKind(k, TypeMessage)
	if err != nil {
		return Reader{}, err
	}

	raw, err := r.lengthPrefixed(k, offset)
	if err != nil {
		return Reader{}, err
	}

	return Open(raw)
}

// TryMessage is the absence-as-bool variant of Message.
func (r Reader) TryMessage(k int) (Reader, bool, error) {
	offset, ok, err := r.tryKind(k, TypeMessage)
	if err != nil || !ok {
		return Reader{}, ok, err
	}

	raw, err := r.lengthPrefixed(k, offset)
	if err != nil {
		return Reader{}, false, err
	}

	sub, err := Open(raw)
	if err != nil {
		return Reader{}, false, err
	}

	return sub, true, nil
}
