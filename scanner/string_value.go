package scanner

import "github.com/clex-lang/clex/token"

// decodeEscape maps the character following a backslash to its literal value.
// Numeric escapes (\nnn, \xhh, \uhhhh, \Uhhhhhhhh) are unsupported and report
// ok == false like any other unknown sequence.
func decodeEscape(r rune) (rune, bool) {
	switch r {
	case 'a':
		return 0x07, true
	case 'b':
		return 0x08, true
	case 'e':
		return 0x1b, true
	case 'f':
		return 0x0c, true
	case 'v':
		return 0x0b, true
	case '?':
		return '?', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case '\'':
		return '\'', true
	case '"':
		return '"', true
	case '\\':
		return '\\', true
	}
	return 0, false
}

func (s *Scanner) scanStringValue() (token.Token, error) {
	start := s.cur
	loc := s.Location()
	s.consumeRune() // '"'

	value := ""
	for {
		if s.isDone() {
			return token.Token{}, &Error{
				Code:     ErrUnterminatedStringLiteral,
				Location: loc,
			}
		}
		runeLoc := s.Location()
		switch r := s.consumeRune(); r {
		case '"':
			return token.Token{
				Kind:        token.STRING,
				Literal:     string(s.src[start:s.cur]),
				StringValue: value,
			}, nil
		case '\\':
			if s.isDone() {
				return token.Token{}, &Error{
					Code:     ErrUnterminatedStringLiteral,
					Location: loc,
				}
			}
			e := s.consumeRune()
			decoded, ok := decodeEscape(e)
			if !ok {
				return token.Token{}, &Error{
					Code:     ErrUnknownEscapeSequence,
					Sequence: `\` + string(e),
					Location: runeLoc,
				}
			}
			value += string(decoded)
		default:
			value += string(r)
		}
	}
}

// scanCharValue accepts exactly one literal or escaped character between
// single quotes, sharing the string literal escape table.
func (s *Scanner) scanCharValue() (token.Token, error) {
	start := s.cur
	loc := s.Location()
	s.consumeRune() // '\''

	if s.isDone() {
		return token.Token{}, &Error{
			Code:     ErrUnterminatedCharLiteral,
			Location: loc,
		}
	}

	var value rune
	runeLoc := s.Location()
	switch r := s.consumeRune(); r {
	case '\'':
		// Empty literal.
		return token.Token{}, &Error{
			Code:     ErrUnterminatedCharLiteral,
			Location: loc,
		}
	case '\\':
		if s.isDone() {
			return token.Token{}, &Error{
				Code:     ErrUnterminatedCharLiteral,
				Location: loc,
			}
		}
		e := s.consumeRune()
		decoded, ok := decodeEscape(e)
		if !ok {
			return token.Token{}, &Error{
				Code:     ErrUnknownEscapeSequence,
				Sequence: `\` + string(e),
				Location: runeLoc,
			}
		}
		value = decoded
	default:
		value = r
	}

	if s.isDone() || s.nextRune != '\'' {
		return token.Token{}, &Error{
			Code:     ErrUnterminatedCharLiteral,
			Location: loc,
		}
	}
	s.consumeRune()

	return token.Token{
		Kind:      token.CHAR,
		Literal:   string(s.src[start:s.cur]),
		CharValue: value,
	}, nil
}
