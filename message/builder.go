package message

import (
	"fmt"

	"go.zeroproto.dev/zeroproto/errs"
	"go.zeroproto.dev/zeroproto/internal/pool"
	"go.zeroproto.dev/zeroproto/wire"
)

// Builder accumulates fields for one message by index and finalizes them
// into a single wire buffer with Finish.
//
// A Builder is owned mutably by one caller until Finish is called; it is not
// safe for concurrent use, and is not reusable once finished — Set* calls
// after Finish panic.
type Builder struct {
	payload *pool.ByteBuffer
	fields  []fieldEntry // index k holds field k's (type_id, payload-relative offset)
	done    bool
}

// NewBuilder creates an empty Builder ready to accept fields.
func NewBuilder() *Builder {
	return &Builder{
		payload: pool.GetMessageBuffer(),
	}
}

// ensureWidth grows b.fields so index k is addressable, filling any new
// intermediate entries with TypeUnset — the "high-water-mark" field count
// from SPEC_FULL.md §4.2.
func (b *Builder) ensureWidth(k int) {
	if k < len(b.fields) {
		return
	}

	grown := make([]fieldEntry, k+1)
	copy(grown, b.fields)
	for i := len(b.fields); i <= k; i++ {
		grown[i] = fieldEntry{typeID: TypeUnset}
	}
	b.fields = grown
}

func (b *Builder) checkIndex(k int) error {
	if b.done {
		panic("message: Builder used after Finish")
	}
	if k < 0 || k >= MaxFieldIndex {
		return fmt.Errorf("message: field index %d: %w", k, errs.ErrFieldIndexTooLarge)
	}

	return nil
}

// setScalar records field k as typeID with a size-byte payload written by
// encode, and is the shared implementation behind every SetT scalar method.
func (b *Builder) setScalar(k int, typeID TypeID, size int, encode func(buf []byte, offset int)) error {
	if err := b.checkIndex(k); err != nil {
		return err
	}

	b.ensureWidth(k)

	offset := b.payload.Len()
	b.payload.Grow(size)
	b.payload.SetLength(offset + size)
	encode(b.payload.Bytes(), offset)

	b.fields[k] = fieldEntry{typeID: typeID, offset: uint32(offset)}

	return nil
}

func (b *Builder) SetU8(k int, v uint8) error {
	return b.setScalar(k, TypeU8, wire.SizeU8, func(buf []byte, off int) { wire.WriteU8(v, buf, off) })
}

func (b *Builder) SetU16(k int, v uint16) error {
	return b.setScalar(k, TypeU16, wire.SizeU16, func(buf []byte, off int) { wire.WriteU16(v, buf, off) })
}

func (b *Builder) SetU32(k int, v uint32) error {
	return b.setScalar(k, TypeU32, wire.SizeU32, func(buf []byte, off int) { wire.WriteU32(v, buf, off) })
}

func (b *Builder) SetU64(k int, v uint64) error {
	return b.setScalar(k, TypeU64, wire.SizeU64, func(buf []byte, off int) { wire.WriteU64(v, buf, off) })
}

func (b *Builder) SetI8(k int, v int8) error {
	return b.setScalar(k, TypeI8, wire.SizeI8, func(buf []byte, off int) { wire.WriteI8(v, buf, off) })
}

func (b *Builder) SetI16(k int, v int16) error {
	return b.setScalar(k, TypeI16, wire.SizeI16, func(buf []byte, off int) { wire.WriteI16(v, buf, off) })
}

func (b *Builder) SetI32(k int, v int32) error {
	return b.setScalar(k, TypeI32, wire.SizeI32, func(buf []byte, off int) { wire.WriteI32(v, buf, off) })
}

func (b *Builder) SetI64(k int, v int64) error {
	return b.setScalar(k, TypeI64, wire.SizeI64, func(buf []byte, off int) { wire.WriteI64(v, buf, off) })
}

func (b *Builder) SetF32(k int, v float32) error {
	return b.setScalar(k, TypeF32, wire.SizeF32, func(buf []byte, off int) { wire.WriteF32(v, buf, off) })
}

func (b *Builder) SetF64(k int, v float64) error {
	return b.setScalar(k, TypeF64, wire.SizeF64, func(buf []byte, off int) { wire.WriteF64(v, buf, off) })
}

func (b *Builder) SetBool(k int, v bool) error {
	return b.setScalar(k, TypeBool, wire.SizeBool, func(buf []byte, off int) { wire.WriteBool(v, buf, off) })
}

// setLengthPrefixed records field k as typeID with a 4-byte LE length prefix
// followed by raw, and is shared by SetString, SetBytes, and SetMessage.
func (b *Builder) setLengthPrefixed(k int, typeID TypeID, raw []byte) error {
	if err := b.checkIndex(k); err != nil {
		return err
	}

	b.ensureWidth(k)

	offset := b.payload.Len()
	total := wire.SizeLengthPrefix + len(raw)
	b.payload.Grow(total)
	b.payload.SetLength(offset + total)

	buf := b.payload.Bytes()
	wire.WriteU32(uint32(len(raw)), buf, offset)
	copy(buf[offset+wire.SizeLengthPrefix:], raw)

	b.fields[k] = fieldEntry{typeID: typeID, offset: uint32(offset)}

	return nil
}

// SetString records field k as a UTF-8 string payload.
func (b *Builder) SetString(k int, s string) error {
	return b.setLengthPrefixed(k, TypeString, []byte(s))
}

// SetBytes records field k as a raw bytes payload.
func (b *Builder) SetBytes(k int, data []byte) error {
	return b.setLengthPrefixed(k, TypeBytes, data)
}

// SetMessage copies a pre-serialized nested message buffer verbatim into
// field k. sub must be a buffer previously produced by Finish (directly or
// transitively); it is not re-validated here — validation happens lazily
// when a reader opens the sub-slice.
func (b *Builder) SetMessage(k int, sub []byte) error {
	return b.setLengthPrefixed(k, TypeMessage, sub)
}

// elementSize returns the wire width of one vector element of typeID, or
// ErrInvalidFieldType for a type without a fixed width. Only fixed-width
// scalars may appear in a vector — see SPEC_FULL.md §9 on the rejected
// variable-width-vector-element open question.
func elementSize(typeID TypeID) (int, error) {
	size, ok := scalarSize(typeID)
	if !ok {
		return 0, fmt.Errorf("message: vector element type %s: %w", typeID, errs.ErrInvalidFieldType)
	}

	return size, nil
}

// setVector is the shared implementation behind every SetVectorT method: it
// writes a 4-byte LE element count followed by count contiguous
// fixed-width elements, encoded one at a time by encodeElem.
func (b *Builder) setVector(k int, typeID TypeID, count int, encodeElem func(buf []byte, offset, i int)) error {
	if err := b.checkIndex(k); err != nil {
		return err
	}

	size, err := elementSize(typeID)
	if err != nil {
		return err
	}

	b.ensureWidth(k)

	offset := b.payload.Len()
	total := wire.SizeLengthPrefix + count*size
	b.payload.Grow(total)
	b.payload.SetLength(offset + total)

	buf := b.payload.Bytes()
	wire.WriteU32(uint32(count), buf, offset)

	elemsStart := offset + wire.SizeLengthPrefix
	for i := 0; i < count; i++ {
		encodeElem(buf, elemsStart+i*size, i)
	}

	b.fields[k] = fieldEntry{typeID: TypeVector, offset: uint32(offset)}
	_ = typeID // the vector's own type_id on the wire is always TypeVector

	return nil
}

func (b *Builder) SetVectorU8(k int, vals []uint8) error {
	return b.setVector(k, TypeU8, len(vals), func(buf []byte, off, i int) { wire.WriteU8(vals[i], buf, off) })
}

func (b *Builder) SetVectorU16(k int, vals []uint16) error {
	return b.setVector(k, TypeU16, len(vals), func(buf []byte, off, i int) { wire.WriteU16(vals[i], buf, off) })
}

func (b *Builder) SetVectorU32(k int, vals []uint32) error {
	return b.setVector(k, TypeU32, len(vals), func(buf []byte, off, i int) { wire.WriteU32(vals[i], buf, off) })
}

func (b *Builder) SetVectorU64(k int, vals []uint64) error {
	return b.setVector(k, TypeU64, len(vals), func(buf []byte, off, i int) { wire.WriteU64(vals[i], buf, off) })
}

func (b *Builder) SetVectorI8(k int, vals []int8) error {
	return b.setVector(k, TypeI8, len(vals), func(buf []byte, off, i int) { wire.WriteI8(vals[i], buf, off) })
}

func (b *Builder) SetVectorI16(k int, vals []int16) error {
	return b.setVector(k, TypeI16, len(vals), func(buf []byte, off, i int) { wire.WriteI16(vals[i], buf, off) })
}

func (b *Builder) SetVectorI32(k int, vals []int32) error {
	return b.setVector(k, TypeI32, len(vals), func(buf []byte, off, i int) { wire.WriteI32(vals[i], buf, off) })
}

func (b *Builder) SetVectorI64(k int, vals []int64) error {
	return b.setVector(k, TypeI64, len(vals), func(buf []byte, off, i int) { wire.WriteI64(vals[i], buf, off) })
}

func (b *Builder) SetVectorF32(k int, vals []float32) error {
	return b.setVector(k, TypeF32, len(vals), func(buf []byte, off, i int) { wire.WriteF32(vals[i], buf, off) })
}

func (b *Builder) SetVectorF64(k int, vals []float64) error {
	return b.setVector(k, TypeF64, len(vals), func(buf []byte, off, i int) { wire.WriteF64(vals[i], buf, off) })
}

func (b *Builder) SetVectorBool(k int, vals []bool) error {
	return b.setVector(k, TypeBool, len(vals), func(buf []byte, off, i int) { wire.WriteBool(vals[i], buf, off) })
}

// Finish consumes the Builder and returns the final message buffer.
//
// Field table entries were recorded with payload-relative offsets while
// fields accumulated; Finish fixes them up to buffer-absolute offsets (by
// adding the header + field table width) and writes the header, field
// table, and payload in that order.
//
// The Builder must not be used again after Finish; subsequent Set* calls
// panic.
func (b *Builder) Finish() []byte {
	if b.done {
		panic("message: Finish called twice")
	}
	b.done = true

	n := len(b.fields)
	headerAndTable := HeaderSize + FieldEntrySize*n
	buf := make([]byte, headerAndTable+b.payload.Len())

	wire.WriteU16(uint16(n), buf, 0)

	for i, f := range b.fields {
		entryOff := HeaderSize + i*FieldEntrySize
		buf[entryOff] = byte(f.typeID)
		if f.typeID == TypeUnset {
			continue
		}
		wire.WriteU32(f.offset+uint32(headerAndTable), buf, entryOff+1)
	}

	copy(buf[headerAndTable:], b.payload.Bytes())

	pool.PutMessageBuffer(b.payload)
	b.payload = nil

	return buf
}
