// Package wire provides the fixed-width little-endian primitive codec that
// underlies zeroproto's message buffers: a pure ReadT/WriteT/AppendT function
// per scalar kind, with no bounds checking and no knowledge of the message
// format built on top of it.
//
// Callers (package message) are responsible for checking that offset+size
// fits within the buffer before calling a ReadT function; violating that
// precondition is undefined behavior at this layer, same as indexing a slice
// out of range. The layer above converts that precondition into a typed
// errs.ErrOutOfBounds.
//
// Byte order is always little-endian — zeroproto does not support a
// caller-selected endianness, unlike formats that expose an EndianEngine.
package wire

import (
	"encoding/binary"
	"math"
)

// Sizes, in bytes, of each fixed-width scalar's wire payload.
const (
	SizeU8   = 1
	SizeU16  = 2
	SizeU32  = 4
	SizeU64  = 8
	SizeI8   = 1
	SizeI16  = 2
	SizeI32  = 4
	SizeI64  = 8
	SizeF32  = 4
	SizeF64  = 8
	SizeBool = 1

	// SizeLengthPrefix is the width of the length/count word preceding
	// string, bytes, message, and vector payloads.
	SizeLengthPrefix = 4
)

func ReadU8(buf []byte, offset int) uint8 { return buf[offset] }

func WriteU8(v uint8, buf []byte, offset int) { buf[offset] = v }

func ReadU16(buf []byte, offset int) uint16 {
	return binary.LittleEndian.Uint16(buf[offset:])
}

func WriteU16(v uint16, buf []byte, offset int) {
	binary.LittleEndian.PutUint16(buf[offset:], v)
}

func ReadU32(buf []byte, offset int) uint32 {
	return binary.LittleEndian.Uint32(buf[offset:])
}

func WriteU32(v uint32, buf []byte, offset int) {
	binary.LittleEndian.PutUint32(buf[offset:], v)
}

func ReadU64(buf []byte, offset int) uint64 {
	return binary.LittleEndian.Uint64(buf[offset:])
}

func WriteU64(v uint64, buf []byte, offset int) {
	binary.LittleEndian.PutUint64(buf[offset:], v)
}

func ReadI8(buf []byte, offset int) int8 { return int8(buf[offset]) }

func WriteI8(v int8, buf []byte, offset int) { buf[offset] = byte(v) }

func ReadI16(buf []byte, offset int) int16 {
	return int16(binary.LittleEndian.Uint16(buf[offset:]))
}

func WriteI16(v int16, buf []byte, offset int) {
	binary.LittleEndian.PutUint16(buf[offset:], uint16(v))
}

func ReadI32(buf []byte, offset int) int32 {
	return int32(binary.LittleEndian.Uint32(buf[offset:]))
}

func WriteI32(v int32, buf []byte, offset int) {
	binary.LittleEndian.PutUint32(buf[offset:], uint32(v))
}

func ReadI64(buf []byte, offset int) int64 {
	return int64(binary.LittleEndian.Uint64(buf[offset:]))
}

func WriteI64(v int64, buf []byte, offset int) {
	binary.LittleEndian.PutUint64(buf[offset:], uint64(v))
}

// ReadF32 reinterprets the 4-byte IEEE-754 bit pattern at offset as a
// float32, bit-exact — including NaN payloads.
func ReadF32(buf []byte, offset int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
}

func WriteF32(v float32, buf []byte, offset int) {
	binary.LittleEndian.PutUint32(buf[offset:], math.Float32bits(v))
}

// ReadF64 reinterprets the 8-byte IEEE-754 bit pattern at offset as a
// float64, bit-exact — including NaN payloads.
func ReadF64(buf []byte, offset int) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[offset:]))
}

func WriteF64(v float64, buf []byte, offset int) {
	binary.LittleEndian.PutUint64(buf[offset:], math.Float64bits(v))
}

// ReadBool reads a boolean as `byte != 0`.
func ReadBool(buf []byte, offset int) bool { return buf[offset] != 0 }

// WriteBool writes a boolean as 0 (false) or 1 (true).
func WriteBool(v bool, buf []byte, offset int) {
	if v {
		buf[offset] = 1
	} else {
		buf[offset] = 0
	}
}

// AppendU8 appends v's 1-byte encoding to buf and returns the grown slice.
func AppendU8(buf []byte, v uint8) []byte { return append(buf, v) }

func AppendU16(buf []byte, v uint16) []byte { return binary.LittleEndian.AppendUint16(buf, v) }

func AppendU32(buf []byte, v uint32) []byte { return binary.LittleEndian.AppendUint32(buf, v) }

func AppendU64(buf []byte, v uint64) []byte { return binary.LittleEndian.AppendUint64(buf, v) }

func AppendI8(buf []byte, v int8) []byte { return append(buf, byte(v)) }

func AppendI16(buf []byte, v int16) []byte {
	return binary.LittleEndian.AppendUint16(buf, uint16(v))
}

func AppendI32(buf []byte, v int32) []byte {
	return binary.LittleEndian.AppendUint32(buf, uint32(v))
}

func AppendI64(buf []byte, v int64) []byte {
	return binary.LittleEndian.AppendUint64(buf, uint64(v))
}

func AppendF32(buf []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
}

func AppendF64(buf []byte, v float64) []byte {
	return binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
}

func AppendBool(buf []byte, v bool) []byte {
	if v {
		return append(buf, 1)
	}

	return append(buf, 0)
}
