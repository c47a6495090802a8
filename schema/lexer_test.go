package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexKeywordsAndPunctuation(t *testing.T) {
	tokens, err := Lex(`message Foo { x: u32; }`)
	require.NoError(t, err)

	kinds := make([]TokenKind, 0, len(tokens))
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}

	require.Equal(t, []TokenKind{
		TokKeywordMessage, TokIdent, TokLeftBrace, TokIdent, TokColon, TokIdent,
		TokSemicolon, TokRightBrace, TokEOF,
	}, kinds)
}

func TestLexStringLiteralPassesEscapesThrough(t *testing.T) {
	tokens, err := Lex(`"a\"b\\c"`)
	require.NoError(t, err)
	require.Equal(t, TokString, tokens[0].Kind)
	require.Equal(t, `a\"b\\c`, tokens[0].Text)
}

func TestLexIntAndFloatLiterals(t *testing.T) {
	tokens, err := Lex(`42 -7 3.14 -2.5`)
	require.NoError(t, err)

	require.Equal(t, TokInt, tokens[0].Kind)
	require.Equal(t, "42", tokens[0].Text)
	require.Equal(t, TokInt, tokens[1].Kind)
	require.Equal(t, "-7", tokens[1].Text)
	require.Equal(t, TokFloat, tokens[2].Kind)
	require.Equal(t, "3.14", tokens[2].Text)
	require.Equal(t, TokFloat, tokens[3].Kind)
	require.Equal(t, "-2.5", tokens[3].Text)
}

func TestLexComments(t *testing.T) {
	tokens, err := Lex("// line comment\nmessage /* block\ncomment */ Foo {}")
	require.NoError(t, err)

	kinds := make([]TokenKind, 0, len(tokens))
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	require.Equal(t, []TokenKind{TokKeywordMessage, TokIdent, TokLeftBrace, TokRightBrace, TokEOF}, kinds)
}

func TestLexRejectsUnknownCharacter(t *testing.T) {
	_, err := Lex("message Foo { x: u32 # }")
	require.Error(t, err)
}

func TestLexTracksLineAndColumn(t *testing.T) {
	tokens, err := Lex("message Foo {\n  x: u32;\n}")
	require.NoError(t, err)

	// 'x' is on line 2.
	var xTok Token
	for _, tok := range tokens {
		if tok.Kind == TokIdent && tok.Text == "x" {
			xTok = tok
		}
	}
	require.Equal(t, 2, xTok.Line)
}
