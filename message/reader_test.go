package message

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"go.zeroproto.dev/zeroproto/errs"
)

func TestOpenRejectsTooShortForHeader(t *testing.T) {
	_, err := Open([]byte{0x00})
	require.ErrorIs(t, err, errs.ErrInvalidMessage)
}

func TestOpenRejectsTooShortForFieldTable(t *testing.T) {
	// Claims 1 field but carries no field table bytes.
	_, err := Open([]byte{0x01, 0x00})
	require.ErrorIs(t, err, errs.ErrInvalidMessage)
}

func TestTryScalarAbsentReturnsFalseNotError(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.SetU8(5, 1))
	buf := b.Finish()

	r, err := Open(buf)
	require.NoError(t, err)

	v, ok, err := r.TryScalarU32(0)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, uint32(0), v)
}

func TestScalarMissingFieldIsError(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.SetU8(5, 1))
	buf := b.Finish()

	r, err := Open(buf)
	require.NoError(t, err)

	_, err = r.ScalarU32(0)
	require.ErrorIs(t, err, errs.ErrMissingField)
}

func TestStrictTypeMismatchIsError(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.SetU32(0, 42))
	buf := b.Finish()

	r, err := Open(buf)
	require.NoError(t, err)

	_, err = r.ScalarU64(0)
	require.ErrorIs(t, err, errs.ErrInvalidFieldType)

	_, ok, err := r.TryScalarU64(0)
	require.ErrorIs(t, err, errs.ErrInvalidFieldType)
	require.False(t, ok)
}

func TestStringRejectsInvalidUTF8(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.SetBytes(0, []byte{0xFF, 0xFE}))
	buf := b.Finish()

	// Force a read as TypeString even though it was built as TypeBytes, to
	// exercise the UTF-8 validation path directly on crafted bytes.
	buf[2] = byte(TypeString)

	r, err := Open(buf)
	require.NoError(t, err)
	_, err = r.String(0)
	require.ErrorIs(t, err, errs.ErrInvalidUTF8)
}

func TestVectorRoundTrip(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.SetVectorU32(0, []uint32{1, 2, 3}))
	require.NoError(t, b.SetVectorBool(1, []bool{true, false, true}))
	buf := b.Finish()

	r, err := Open(buf)
	require.NoError(t, err)

	v, err := r.VectorU32(0)
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())
	require.False(t, v.IsEmpty())

	got, err := v.At(1)
	require.NoError(t, err)
	require.Equal(t, uint32(2), got)

	require.Equal(t, []uint32{1, 2, 3}, v.Collect())

	var collected []uint32
	for x := range v.All() {
		collected = append(collected, x)
	}
	require.Equal(t, []uint32{1, 2, 3}, collected)

	bv, err := r.VectorBool(1)
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, true}, bv.Collect())
}

func TestVectorAtOutOfBounds(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.SetVectorU8(0, []uint8{1, 2}))
	buf := b.Finish()

	r, err := Open(buf)
	require.NoError(t, err)

	v, err := r.VectorU8(0)
	require.NoError(t, err)

	_, err = v.At(5)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)
}

func TestTryVectorAbsent(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.SetU8(5, 1))
	buf := b.Finish()

	r, err := Open(buf)
	require.NoError(t, err)

	_, ok, err := r.TryVectorU32(0)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestBytesFieldAliasesBuffer(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.SetBytes(0, []byte{1, 2, 3}))
	buf := b.Finish()

	r, err := Open(buf)
	require.NoError(t, err)

	got, err := r.BytesField(0)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, got)
}

func TestTryMessageAbsent(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.SetU8(5, 1))
	buf := b.Finish()

	r, err := Open(buf)
	require.NoError(t, err)

	_, ok, err := r.TryMessage(0)
	require.NoError(t, err)
	require.False(t, ok)
}

func FuzzOpenAndAccess(f *testing.F) {
	b := NewBuilder()
	b.SetU32(0, 42)
	b.SetString(1, "hello")
	f.Add(b.Finish())
	f.Add([]byte{0x00, 0x00})
	f.Add([]byte{0x01, 0x00})

	f.Fuzz(func(t *testing.T, data []byte) {
		r, err := Open(data)
		if err != nil {
			return
		}

		for k := 0; k < r.FieldCount(); k++ {
			if !r.Has(k) {
				continue
			}
			// None of these should panic regardless of what Has(k) reports
			// about the stored type; a mismatch must surface as an error.
			_, _ = r.ScalarU64(k)
			_, _ = r.String(k)
			_, _ = r.BytesField(k)
			_, _ = r.Message(k)
			_, _ = r.VectorU32(k)
		}
	})
}

func TestErrorsWrapExpectedSentinel(t *testing.T) {
	b := NewBuilder()
	buf := b.Finish()
	r, err := Open(buf)
	require.NoError(t, err)

	_, err = r.ScalarU8(0)
	require.True(t, errors.Is(err, errs.ErrOutOfBounds))
}
