package ir

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.zeroproto.dev/zeroproto/schema"
)

func mustLower(t *testing.T, src string) *IR {
	t.Helper()
	ast, err := schema.Parse(src)
	require.NoError(t, err)
	require.NoError(t, schema.Validate(ast))
	return Lower(ast)
}

func TestToPascalCase(t *testing.T) {
	require.Equal(t, "UserName", toPascalCase("user_name"))
	require.Equal(t, "Id", toPascalCase("id"))
	require.Equal(t, "Profile", toPascalCase("profile"))
}

func TestToSnakeCase(t *testing.T) {
	require.Equal(t, "user_name", toSnakeCase("UserName"))
	require.Equal(t, "id", toSnakeCase("ID"))
	require.Equal(t, "profile", toSnakeCase("profile"))
}

// TestS6Lowering reproduces the worked example: lowering
// `message U { x:u64; y:string?; z:u32=3; }` yields a message U with three
// fields at indices 0, 1, 2; field 1 is optional; field 2 has default
// literal "3".
func TestS6Lowering(t *testing.T) {
	result := mustLower(t, `message U { x:u64; y:string?; z:u32=3; }`)

	require.Len(t, result.Messages, 1)
	msg := result.Messages[0]
	require.Equal(t, "U", msg.GoName)
	require.Equal(t, "UReader", msg.ReaderName)
	require.Equal(t, "UBuilder", msg.BuilderName)
	require.Len(t, msg.Fields, 3)

	require.Equal(t, 0, msg.Fields[0].Index)
	require.Equal(t, 1, msg.Fields[1].Index)
	require.Equal(t, 2, msg.Fields[2].Index)

	require.False(t, msg.Fields[1].HasDefault)
	require.True(t, msg.Fields[1].Optional)

	require.True(t, msg.Fields[2].HasDefault)
	require.Equal(t, "3", msg.Fields[2].Default)
}

func TestLowerResolvesMessageVsEnumReference(t *testing.T) {
	result := mustLower(t, `
		enum State { Active = 0; Inactive = 1; }
		message Profile { bio: string; }
		message User { status: State; profile: Profile; }
	`)

	user := result.Messages[1]
	require.Equal(t, TypeEnumRef, user.Fields[0].Type.Kind)
	require.Equal(t, "State", user.Fields[0].Type.TypeName)
	require.Equal(t, TypeMessageRef, user.Fields[1].Type.Kind)
	require.Equal(t, "Profile", user.Fields[1].Type.TypeName)
}

func TestLowerVectorElementType(t *testing.T) {
	result := mustLower(t, `message M { xs: [u32]; }`)

	field := result.Messages[0].Fields[0]
	require.Equal(t, TypeVector, field.Type.Kind)
	require.Equal(t, TypeScalar, field.Type.Element.Kind)
	require.Equal(t, ScalarU32, field.Type.Element.Scalar)
}

func TestRenderDefaultFloatGetsDecimalPoint(t *testing.T) {
	result := mustLower(t, `message M { a: f32 = 5.0; }`)
	require.Equal(t, "5.0", result.Messages[0].Fields[0].Default)
}

func TestRenderDefaultFloatKeepsExistingDecimal(t *testing.T) {
	result := mustLower(t, `message M { a: f32 = 5.25; }`)
	require.Equal(t, "5.25", result.Messages[0].Fields[0].Default)
}

func TestRenderDefaultStringEscapesQuoteAndBackslash(t *testing.T) {
	result := mustLower(t, `message M { a: string = "say \"hi\""; }`)
	require.Equal(t, `"say \"hi\""`, result.Messages[0].Fields[0].Default)
}

func TestRenderDefaultBool(t *testing.T) {
	result := mustLower(t, `message M { a: bool = true; b: bool = false; }`)
	require.Equal(t, "true", result.Messages[0].Fields[0].Default)
	require.Equal(t, "false", result.Messages[0].Fields[1].Default)
}

func TestLowerEnumVariantNames(t *testing.T) {
	result := mustLower(t, `enum traffic_light { red = 0; yellow = 1; green = 2; }`)
	require.Equal(t, "TrafficLight", result.Enums[0].GoName)
	require.Equal(t, "Red", result.Enums[0].Variants[0].GoName)
}
