package schema

import (
	"fmt"

	"go.zeroproto.dev/zeroproto/errs"
)

// Parse tokenizes and parses src into an AST. It does not validate
// semantics (name uniqueness, reference resolution, reserved names) — call
// Validate on the result for that.
func Parse(src string) (*AST, error) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}
	return p.parseSchema()
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) peek() Token { return p.tokens[p.pos] }

func (p *parser) advance() Token {
	t := p.tokens[p.pos]
	if t.Kind != TokEOF {
		p.pos++
	}
	return t
}

func (p *parser) errf(t Token, format string, args ...any) error {
	return &errs.ParseError{Pos: errs.Pos{Line: t.Line, Col: t.Col}, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	t := p.peek()
	if t.Kind != kind {
		return Token{}, p.errf(t, "expected %s, found %s", kind, t.Kind)
	}
	return p.advance(), nil
}

func (p *parser) parseSchema() (*AST, error) {
	var items []Item
	for p.peek().Kind != TokEOF {
		switch p.peek().Kind {
		case TokKeywordMessage:
			msg, err := p.parseMessage()
			if err != nil {
				return nil, err
			}
			items = append(items, Item{Kind: ItemMessage, Message: msg})
		case TokKeywordEnum:
			en, err := p.parseEnum()
			if err != nil {
				return nil, err
			}
			items = append(items, Item{Kind: ItemEnum, Enum: en})
		default:
			return nil, p.errf(p.peek(), "expected 'message' or 'enum', found %s", p.peek().Kind)
		}
	}

	return &AST{Items: items}, nil
}

func (p *parser) parseMessage() (Message, error) {
	if _, err := p.expect(TokKeywordMessage); err != nil {
		return Message{}, err
	}
	name, err := p.expect(TokIdent)
	if err != nil {
		return Message{}, err
	}
	if _, err := p.expect(TokLeftBrace); err != nil {
		return Message{}, err
	}

	var fields []Field
	for p.peek().Kind != TokRightBrace {
		f, err := p.parseField()
		if err != nil {
			return Message{}, err
		}
		fields = append(fields, f)

		if p.peek().Kind == TokComma {
			p.advance()
		}
	}

	if _, err := p.expect(TokRightBrace); err != nil {
		return Message{}, err
	}

	return Message{Name: name.Text, Fields: fields}, nil
}

func (p *parser) parseField() (Field, error) {
	name, err := p.expect(TokIdent)
	if err != nil {
		return Field{}, err
	}
	if _, err := p.expect(TokColon); err != nil {
		return Field{}, err
	}

	typ, err := p.parseType()
	if err != nil {
		return Field{}, err
	}

	optional := false
	if p.peek().Kind == TokQuestion {
		p.advance()
		optional = true
	}

	var def *DefaultValue
	if p.peek().Kind == TokEquals {
		p.advance()
		d, err := p.parseDefaultVal()
		if err != nil {
			return Field{}, err
		}
		def = &d
	}

	if _, err := p.expect(TokSemicolon); err != nil {
		return Field{}, err
	}

	return Field{Name: name.Text, Type: typ, Optional: optional, Default: def}, nil
}

func (p *parser) parseType() (FieldType, error) {
	if p.peek().Kind == TokLeftBracket {
		p.advance()
		inner, err := p.parseType()
		if err != nil {
			return FieldType{}, err
		}
		if _, err := p.expect(TokRightBracket); err != nil {
			return FieldType{}, err
		}
		return FieldType{Kind: FieldVector, Inner: &inner}, nil
	}

	ident, err := p.expect(TokIdent)
	if err != nil {
		return FieldType{}, err
	}

	if s, ok := scalarKeywords[ident.Text]; ok {
		return FieldType{Kind: FieldScalar, Scalar: s}, nil
	}

	return FieldType{Kind: FieldUserDefined, UserDefined: ident.Text}, nil
}

func (p *parser) parseDefaultVal() (DefaultValue, error) {
	t := p.peek()
	switch t.Kind {
	case TokInt:
		p.advance()
		v, err := parseIntLiteral(t.Text)
		if err != nil {
			return DefaultValue{}, p.errf(t, "invalid integer literal %q: %v", t.Text, err)
		}
		return DefaultValue{Kind: DefaultInt, Int: v}, nil
	case TokFloat:
		p.advance()
		v, err := parseFloatLiteral(t.Text)
		if err != nil {
			return DefaultValue{}, p.errf(t, "invalid float literal %q: %v", t.Text, err)
		}
		return DefaultValue{Kind: DefaultFloat, Flt: v}, nil
	case TokKeywordTrue:
		p.advance()
		return DefaultValue{Kind: DefaultBool, Bool: true}, nil
	case TokKeywordFalse:
		p.advance()
		return DefaultValue{Kind: DefaultBool, Bool: false}, nil
	case TokString:
		p.advance()
		return DefaultValue{Kind: DefaultString, Str: t.Text}, nil
	default:
		return DefaultValue{}, p.errf(t, "expected default value, found %s", t.Kind)
	}
}

func (p *parser) parseEnum() (Enum, error) {
	if _, err := p.expect(TokKeywordEnum); err != nil {
		return Enum{}, err
	}
	name, err := p.expect(TokIdent)
	if err != nil {
		return Enum{}, err
	}
	if _, err := p.expect(TokLeftBrace); err != nil {
		return Enum{}, err
	}

	var variants []EnumVariant
	for p.peek().Kind != TokRightBrace {
		v, err := p.parseEnumVariant()
		if err != nil {
			return Enum{}, err
		}
		variants = append(variants, v)
	}

	if _, err := p.expect(TokRightBrace); err != nil {
		return Enum{}, err
	}

	return Enum{Name: name.Text, Variants: variants}, nil
}

func (p *parser) parseEnumVariant() (EnumVariant, error) {
	name, err := p.expect(TokIdent)
	if err != nil {
		return EnumVariant{}, err
	}
	if _, err := p.expect(TokEquals); err != nil {
		return EnumVariant{}, err
	}
	val, err := p.expect(TokInt)
	if err != nil {
		return EnumVariant{}, err
	}
	v, err := parseIntLiteral(val.Text)
	if err != nil {
		return EnumVariant{}, p.errf(val, "invalid integer literal %q: %v", val.Text, err)
	}
	if _, err := p.expect(TokSemicolon); err != nil {
		return EnumVariant{}, err
	}

	return EnumVariant{Name: name.Text, Value: v}, nil
}
