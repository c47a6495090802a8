package wire

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTripIntegers(t *testing.T) {
	buf := make([]byte, 8)

	WriteU8(0xAB, buf, 0)
	require.Equal(t, uint8(0xAB), ReadU8(buf, 0))

	WriteU16(0xBEEF, buf, 0)
	require.Equal(t, uint16(0xBEEF), ReadU16(buf, 0))

	WriteU32(0xDEADBEEF, buf, 0)
	require.Equal(t, uint32(0xDEADBEEF), ReadU32(buf, 0))

	WriteU64(0x0123456789ABCDEF, buf, 0)
	require.Equal(t, uint64(0x0123456789ABCDEF), ReadU64(buf, 0))

	WriteI8(-1, buf, 0)
	require.Equal(t, int8(-1), ReadI8(buf, 0))

	WriteI16(-12345, buf, 0)
	require.Equal(t, int16(-12345), ReadI16(buf, 0))

	WriteI32(-123456789, buf, 0)
	require.Equal(t, int32(-123456789), ReadI32(buf, 0))

	WriteI64(-123456789012345, buf, 0)
	require.Equal(t, int64(-123456789012345), ReadI64(buf, 0))
}

func TestRoundTripFloatsBitExact(t *testing.T) {
	buf := make([]byte, 8)

	for _, v := range []float32{0, 1.5, -1.5, math.MaxFloat32, float32(math.NaN())} {
		WriteF32(v, buf, 0)
		got := ReadF32(buf, 0)
		require.Equal(t, math.Float32bits(v), math.Float32bits(got))
	}

	for _, v := range []float64{0, 1.5, -1.5, math.MaxFloat64, math.NaN()} {
		WriteF64(v, buf, 0)
		got := ReadF64(buf, 0)
		require.Equal(t, math.Float64bits(v), math.Float64bits(got))
	}
}

func TestRoundTripBool(t *testing.T) {
	buf := make([]byte, 1)

	WriteBool(true, buf, 0)
	require.True(t, ReadBool(buf, 0))
	require.Equal(t, byte(1), buf[0])

	WriteBool(false, buf, 0)
	require.False(t, ReadBool(buf, 0))
	require.Equal(t, byte(0), buf[0])

	// Any nonzero byte reads as true, per the wire format.
	buf[0] = 0xFF
	require.True(t, ReadBool(buf, 0))
}

func TestAppendMatchesWrite(t *testing.T) {
	appended := AppendU32(nil, 42)
	written := make([]byte, 4)
	WriteU32(42, written, 0)
	require.Equal(t, written, appended)

	appended = AppendF64(nil, math.Pi)
	written = make([]byte, 8)
	WriteF64(math.Pi, written, 0)
	require.Equal(t, written, appended)
}

func TestLittleEndianByteOrder(t *testing.T) {
	buf := make([]byte, 4)
	WriteU32(0x01020304, buf, 0)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)
}
