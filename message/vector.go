package message

import (
	"fmt"
	"iter"

	"go.zeroproto.dev/zeroproto/errs"
	"go.zeroproto.dev/zeroproto/wire"
)

// VectorView is a lightweight, non-owning handle over one vector field's
// elements. Elements are decoded on demand by At and by the iterator
// returned from All; only Collect allocates an intermediate slice.
//
// The wire format does not repeat an element type tag per vector (see
// SPEC_FULL.md §6) — the element type is whatever T the caller's accessor
// method committed to (VectorU32 reads 4-byte elements, and so on),
// matching the schema that produced the buffer.
type VectorView[T any] struct {
	buf        []byte
	elemsStart int
	count      int
	size       int
	read       func(buf []byte, offset int) T
}

// Len returns the number of elements in the vector.
func (v VectorView[T]) Len() int { return v.count }

// IsEmpty reports whether the vector has zero elements.
func (v VectorView[T]) IsEmpty() bool { return v.count == 0 }

// At returns the i-th element, bounds-checked.
func (v VectorView[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.count {
		return zero, fmt.Errorf("message: vector index %d: %w", i, errs.ErrOutOfBounds)
	}

	return v.read(v.buf, v.elemsStart+i*v.size), nil
}

// All returns an iterator over the vector's elements in order. Iteration is
// allocation-free; each element is decoded as it is yielded.
func (v VectorView[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.count; i++ {
			if !yield(v.read(v.buf, v.elemsStart+i*v.size)) {
				return
			}
		}
	}
}

// Collect decodes every element into a newly allocated slice. This is the
// one allocating convenience VectorView offers; per-element iteration via
// All or At never allocates.
func (v VectorView[T]) Collect() []T {
	out := make([]T, v.count)
	for i := range out {
		out[i] = v.read(v.buf, v.elemsStart+i*v.size)
	}

	return out
}

// vector is the shared implementation behind every VectorT accessor: it
// validates the field is a TypeVector entry, reads the element count, and
// checks that count*size elements fit in the buffer.
func vector[T any](r Reader, k int, size int, read func(buf []byte, offset int) T) (VectorView[T], error) {
	offset, err := r.checkKind(k, TypeVector)
	if err != nil {
		return VectorView[T]{}, err
	}

	if offset+wire.SizeLengthPrefix > len(r.buf) {
		return VectorView[T]{}, fmt.Errorf("message: field %d: vector count out of bounds: %w", k, errs.ErrOutOfBounds)
	}

	count := int(wire.ReadU32(r.buf, offset))
	elemsStart := offset + wire.SizeLengthPrefix
	need := elemsStart + count*size
	if need > len(r.buf) {
		return VectorView[T]{}, fmt.Errorf("message: field %d: vector elements out of bounds: %w", k, errs.ErrOutOfBounds)
	}

	return VectorView[T]{buf: r.buf, elemsStart: elemsStart, count: count, size: size, read: read}, nil
}

func tryVector[T any](r Reader, k int, size int, read func(buf []byte, offset int) T) (VectorView[T], bool, error) {
	offset, ok, err := r.tryKind(k, TypeVector)
	if err != nil || !ok {
		return VectorView[T]{}, ok, err
	}

	if offset+wire.SizeLengthPrefix > len(r.buf) {
		return VectorView[T]{}, false, fmt.Errorf("message: field %d: vector count out of bounds: %w", k, errs.ErrOutOfBounds)
	}

	count := int(wire.ReadU32(r.buf, offset))
	elemsStart := offset + wire.SizeLengthPrefix
	need := elemsStart + count*size
	if need > len(r.buf) {
		return VectorView[T]{}, false, fmt.Errorf("message: field %d: vector elements out of bounds: %w", k, errs.ErrOutOfBounds)
	}

	return VectorView[T]{buf: r.buf, elemsStart: elemsStart, count: count, size: size, read: read}, true, nil
}

func (r Reader) VectorU8(k int) (VectorView[uint8], error) {
	return vector(r, k, wire.SizeU8, wire.ReadU8)
}

func (r Reader) TryVectorU8(k int) (VectorView[uint8], bool, error) {
	return tryVector(r, k, wire.SizeU8, wire.ReadU8)
}

func (r Reader) VectorU16(k int) (VectorView[uint16], error) {
	return vector(r, k, wire.SizeU16, wire.ReadU16)
}

func (r Reader) TryVectorU16(k int) (VectorView[uint16], bool, error) {
	return tryVector(r, k, wire.SizeU16, wire.ReadU16)
}

func (r Reader) VectorU32(k int) (VectorView[uint32], error) {
	return vector(r, k, wire.SizeU32, wire.ReadU32)
}

func (r Reader) TryVectorU32(k int) (VectorView[uint32], bool, error) {
	return tryVector(r, k, wire.SizeU32, wire.ReadU32)
}

func (r Reader) VectorU64(k int) (VectorView[uint64], error) {
	return vector(r, k, wire.SizeU64, wire.ReadU64)
}

func (r Reader) TryVectorU64(k int) (VectorView[uint64], bool, error) {
	return tryVector(r, k, wire.SizeU64, wire.ReadU64)
}

func (r Reader) VectorI8(k int) (VectorView[int8], error) {
	return vector(r, k, wire.SizeI8, wire.ReadI8)
}

func (r Reader) TryVectorI8(k int) (VectorView[int8], bool, error) {
	return tryVector(r, k, wire.SizeI8, wire.ReadI8)
}

func (r Reader) VectorI16(k int) (VectorView[int16], error) {
	return vector(r, k, wire.SizeI16, wire.ReadI16)
}

func (r Reader) TryVectorI16(k int) (VectorView[int16], bool, error) {
	return tryVector(r, k, wire.SizeI16, wire.ReadI16)
}

func (r Reader) VectorI32(k int) (VectorView[int32], error) {
	return vector(r, k, wire.SizeI32, wire.ReadI32)
}

func (r Reader) TryVectorI32(k int) (VectorView[int32], bool, error) {
	return tryVector(r, k, wire.SizeI32, wire.ReadI32)
}

func (r Reader) VectorI64(k int) (VectorView[int64], error) {
	return vector(r, k, wire.SizeI64, wire.ReadI64)
}

func (r Reader) TryVectorI64(k int) (VectorView[int64], bool, error) {
	return tryVector(r, k, wire.SizeI64, wire.ReadI64)
}

func (r Reader) VectorF32(k int) (VectorView[float32], error) {
	return vector(r, k, wire.SizeF32, wire.ReadF32)
}

func (r Reader) TryVectorF32(k int) (VectorView[float32], bool, error) {
	return tryVector(r, k, wire.SizeF32, wire.ReadF32)
}

func (r Reader) VectorF64(k int) (VectorView[float64], error) {
	return vector(r, k, wire.SizeF64, wire.ReadF64)
}

func (r Reader) TryVectorF64(k int) (VectorView[float64], bool, error) {
	return tryVector(r, k, wire.SizeF64, wire.ReadF64)
}

func (r Reader) VectorBool(k int) (VectorView[bool], error) {
	return vector(r, k, wire.SizeBool, wire.ReadBool)
}

func (r Reader) TryVectorBool(k int) (VectorView[bool], bool, error) {
	return tryVector(r, k, wire.SizeBool, wire.ReadBool)
}
