package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseError_Is(t *testing.T) {
	err := &ParseError{Pos: Pos{Line: 3, Col: 7}, Msg: "unexpected token '}'"}

	require.ErrorIs(t, err, ErrParse)
	require.Contains(t, err.Error(), "3:7")
	require.Contains(t, err.Error(), "unexpected token")
}

func TestValidationError_Is(t *testing.T) {
	err := &ValidationError{Symbol: "Foo", Msg: "duplicate message name"}

	require.ErrorIs(t, err, ErrValidation)
	require.Contains(t, err.Error(), "Foo")
}

func TestValidationError_NoSymbol(t *testing.T) {
	err := &ValidationError{Msg: "empty schema"}

	require.ErrorIs(t, err, ErrValidation)
	require.NotContains(t, err.Error(), "::")
}

func TestPos_String(t *testing.T) {
	require.Equal(t, "1:1", Pos{Line: 1, Col: 1}.String())
}

func TestErrorsAs(t *testing.T) {
	var err error = &ValidationError{Symbol: "X", Msg: "bad"}

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Equal(t, "X", ve.Symbol)
}
