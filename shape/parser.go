package shape

import (
	"github.com/wippyai/archive/errors"
)

var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

// Parse parses the text form of a shape, for example
//
//	map<string,list<s64>>
//	linked<tuple<u8,bytes>>
//
// Whitespace between tokens is ignored.
func Parse(text string) (*Shape, error) {
	tokens, err := tokenize(text)
	if err != nil {
		return nil, err
	}

	p := &parser{input: text, tokens: tokens}
	s, err := p.parseShape()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t != nil {
		return nil, p.errorf("col %d: unexpected %q after shape", t.col, t.value)
	}
	return s, nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string) *Shape {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}

type parser struct {
	input  string
	tokens []token
	pos    int
}

func (p *parser) peek() *token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

func (p *parser) next() *token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	t := &p.tokens[p.pos]
	p.pos++
	return t
}

func (p *parser) expect(typ tokenType) (*token, error) {
	t := p.next()
	if t == nil {
		return nil, p.errorf("unexpected end of input, expected %v", typ)
	}
	if t.typ != typ {
		return nil, p.errorf("col %d: expected %v, got %q", t.col, typ, t.value)
	}
	return t, nil
}

func (p *parser) errorf(format string, args ...any) error {
	return errors.New(errors.PhaseParse, errors.KindInvalidInput).
		Value(p.input).
		Detail(format, args...).
		Build()
}

func (p *parser) parseShape() (*Shape, error) {
	t, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}

	kind, ok := kindByName[t.value]
	if !ok {
		return nil, p.errorf("col %d: unknown type %q", t.col, t.value)
	}

	s := &Shape{Kind: kind}
	n := kind.arity()
	if n == 0 {
		return s, nil
	}

	if _, err := p.expect(tokLAngle); err != nil {
		return nil, err
	}
	if s.Elem, err = p.parseShape(); err != nil {
		return nil, err
	}
	if n == 2 {
		if _, err := p.expect(tokComma); err != nil {
			return nil, err
		}
		if s.Value, err = p.parseShape(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(tokRAngle); err != nil {
		return nil, err
	}
	return s, nil
}
