package shape

import (
	"github.com/wippyai/archive/errors"
)

type tokenType int

const (
	tokIdent tokenType = iota
	tokLAngle
	tokRAngle
	tokComma
)

func (t tokenType) String() string {
	switch t {
	case tokIdent:
		return "identifier"
	case tokLAngle:
		return "'<'"
	case tokRAngle:
		return "'>'"
	case tokComma:
		return "','"
	}
	return "unknown"
}

type token struct {
	value string
	typ   tokenType
	col   int
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

func tokenize(input string) ([]token, error) {
	var tokens []token

	for i := 0; i < len(input); i++ {
		c := input[i]
		col := i + 1

		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			continue
		case c == '<':
			tokens = append(tokens, token{"<", tokLAngle, col})
		case c == '>':
			tokens = append(tokens, token{">", tokRAngle, col})
		case c == ',':
			tokens = append(tokens, token{",", tokComma, col})
		case isIdentByte(c):
			start := i
			for i < len(input) && isIdentByte(input[i]) {
				i++
			}
			tokens = append(tokens, token{input[start:i], tokIdent, col})
			i--
		default:
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
				Value(input).
				Detail("col %d: unexpected character %q", col, c).
				Build()
		}
	}

	return tokens, nil
}
