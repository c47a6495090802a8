package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSimpleMessage(t *testing.T) {
	ast, err := Parse(`
		message User {
			id: u64;
			name: string;
		}
	`)
	require.NoError(t, err)
	require.Len(t, ast.Items, 1)

	msg := ast.Items[0].Message
	require.Equal(t, "User", msg.Name)
	require.Len(t, msg.Fields, 2)
	require.Equal(t, "id", msg.Fields[0].Name)
	require.Equal(t, ScalarU64, msg.Fields[0].Type.Scalar)
	require.Equal(t, "name", msg.Fields[1].Name)
	require.Equal(t, ScalarString, msg.Fields[1].Type.Scalar)
}

func TestParseVectorField(t *testing.T) {
	ast, err := Parse(`message User { friends: [u64]; }`)
	require.NoError(t, err)

	field := ast.Items[0].Message.Fields[0]
	require.Equal(t, FieldVector, field.Type.Kind)
	require.Equal(t, FieldScalar, field.Type.Inner.Kind)
	require.Equal(t, ScalarU64, field.Type.Inner.Scalar)
}

func TestParseUserDefinedFieldType(t *testing.T) {
	ast, err := Parse(`message User { profile: Profile; }`)
	require.NoError(t, err)

	field := ast.Items[0].Message.Fields[0]
	require.Equal(t, FieldUserDefined, field.Type.Kind)
	require.Equal(t, "Profile", field.Type.UserDefined)
}

// TestS6OptionalAndDefault reproduces the worked example: parsing
// `message U { x:u64; y:string?; z:u32=3; }` yields three fields at indices
// 0, 1, 2; field 1 is optional; field 2 has default-literal 3.
func TestS6OptionalAndDefault(t *testing.T) {
	ast, err := Parse(`message U { x:u64; y:string?; z:u32=3; }`)
	require.NoError(t, err)

	msg := ast.Items[0].Message
	require.Equal(t, "U", msg.Name)
	require.Len(t, msg.Fields, 3)

	require.False(t, msg.Fields[0].Optional)
	require.Nil(t, msg.Fields[0].Default)

	require.True(t, msg.Fields[1].Optional)
	require.Nil(t, msg.Fields[1].Default)

	require.False(t, msg.Fields[2].Optional)
	require.NotNil(t, msg.Fields[2].Default)
	require.Equal(t, DefaultInt, msg.Fields[2].Default.Kind)
	require.Equal(t, int64(3), msg.Fields[2].Default.Int)
}

func TestParseCommaSeparatedFields(t *testing.T) {
	ast, err := Parse(`message U { a: u8;, b: u8; }`)
	require.NoError(t, err)
	require.Len(t, ast.Items[0].Message.Fields, 2)
}

func TestParseEnum(t *testing.T) {
	ast, err := Parse(`
		enum Color {
			Red = 0;
			Green = 1;
			Blue = 2;
		}
	`)
	require.NoError(t, err)
	require.Len(t, ast.Items, 1)

	en := ast.Items[0].Enum
	require.Equal(t, "Color", en.Name)
	require.Len(t, en.Variants, 3)
	require.Equal(t, int64(2), en.Variants[2].Value)
}

func TestParseDefaultValueKinds(t *testing.T) {
	ast, err := Parse(`message M {
		a: f32 = 1.5;
		b: bool = true;
		c: bool = false;
		d: string = "hi";
	}`)
	require.NoError(t, err)

	fields := ast.Items[0].Message.Fields
	require.Equal(t, DefaultFloat, fields[0].Default.Kind)
	require.Equal(t, 1.5, fields[0].Default.Flt)
	require.Equal(t, DefaultBool, fields[1].Default.Kind)
	require.True(t, fields[1].Default.Bool)
	require.Equal(t, DefaultBool, fields[2].Default.Kind)
	require.False(t, fields[2].Default.Bool)
	require.Equal(t, DefaultString, fields[3].Default.Kind)
	require.Equal(t, "hi", fields[3].Default.Str)
}

func TestParseRejectsMalformedSchema(t *testing.T) {
	_, err := Parse(`message { x: u32; }`)
	require.Error(t, err)
}

func TestParseRejectsUnterminatedMessage(t *testing.T) {
	_, err := Parse(`message M { x: u32;`)
	require.Error(t, err)
}

func TestParseRejectsUnknownTopLevelItem(t *testing.T) {
	_, err := Parse(`struct Foo {}`)
	require.Error(t, err)
}
