package scanner

import (
	"unicode"
	"unicode/utf8"

	"github.com/clex-lang/clex/token"
)

// Scanner tokenizes a single in-memory source unit. It produces one token per
// Next call and never backtracks past a consumed position. A Scanner is not
// safe for concurrent use; construct one per source unit.
type Scanner struct {
	src      []byte
	filepath string

	cur int // absolute byte offset of the next unconsumed character
	row int // zero-based line index
	bol int // absolute byte offset of the current line's start

	nextRune     rune
	nextRuneSize int
}

// New creates a scanner for src. The filepath is used only to label
// diagnostic locations.
func New(src []byte, filepath string) *Scanner {
	s := &Scanner{
		src:      src,
		filepath: filepath,
	}
	s.readNextRune()
	return s
}

// Location returns the position of the scanner's cursor. It can be called at
// any time, including after end-of-input.
func (s *Scanner) Location() token.Location {
	return token.Location{
		Filepath: s.filepath,
		Row:      s.row,
		Col:      s.cur - s.bol,
	}
}

func (s *Scanner) isDone() bool {
	return s.cur >= len(s.src)
}

func (s *Scanner) readNextRune() {
	if s.isDone() {
		s.nextRune = -1
		s.nextRuneSize = 0
	} else if r, size := utf8.DecodeRune(s.src[s.cur:]); r == utf8.RuneError && size == 1 {
		// An invalid encoding, as opposed to a genuine U+FFFD character,
		// decodes with size 1.
		s.nextRune = r
		s.nextRuneSize = 1
	} else {
		s.nextRune = r
		s.nextRuneSize = size
	}
}

func (s *Scanner) consumeRune() rune {
	r := s.nextRune
	s.cur += s.nextRuneSize
	if r == '\n' {
		s.row++
		s.bol = s.cur
	}
	s.readNextRune()
	return r
}

func (s *Scanner) skipWhitespace() {
	for !s.isDone() && unicode.IsSpace(s.nextRune) {
		s.consumeRune()
	}
}

func isIdentifierStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentifierPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Next scans and returns the next token. Once end-of-input is reached, every
// subsequent call returns an EOF token. Errors are always of type *Error, and
// every error path consumes at least one character, so a caller that keeps
// calling Next after errors always makes progress toward end-of-input.
func (s *Scanner) Next() (token.Token, error) {
	s.skipWhitespace()
	if s.isDone() {
		return token.Token{Kind: token.EOF}, nil
	}

	switch r := s.nextRune; {
	case isIdentifierStart(r):
		return s.scanIdentifier(), nil
	case isDigit(r):
		return s.scanIntValue()
	case r == '\'':
		return s.scanCharValue()
	case r == '"':
		return s.scanStringValue()
	default:
		return s.scanOperator()
	}
}

// Expect scans one token and reports whether its kind matches. The token is
// consumed whether or not it matches; the carried value is ignored.
func (s *Scanner) Expect(kind token.Kind) (token.Token, bool, error) {
	tok, err := s.Next()
	if err != nil {
		return token.Token{}, false, err
	}
	return tok, tok.Is(kind), nil
}

func (s *Scanner) scanIdentifier() token.Token {
	start := s.cur
	s.consumeRune()
	for !s.isDone() && isIdentifierPart(s.nextRune) {
		s.consumeRune()
	}
	return token.Token{
		Kind:    token.ID,
		Literal: string(s.src[start:s.cur]),
	}
}

func (s *Scanner) scanOperator() (token.Token, error) {
	start := s.cur
	loc := s.Location()

	var kind token.Kind
	switch r := s.consumeRune(); r {
	case '(':
		kind = token.OPEN_PAREN
	case ')':
		kind = token.CLOSE_PAREN
	case '{':
		kind = token.OPEN_CURLY
	case '}':
		kind = token.CLOSE_CURLY
	case ',':
		kind = token.COMMA
	case ';':
		kind = token.SEMICOLON
	case '=':
		if s.nextRune == '=' {
			s.consumeRune()
			kind = token.EQUAL_EQUAL
		} else if s.isDone() || unicode.IsSpace(s.nextRune) || isIdentifierPart(s.nextRune) {
			kind = token.EQUAL
		} else {
			// A bare = followed by another operator character is rejected
			// rather than split into two tokens.
			return token.Token{}, &Error{
				Code:     ErrUnknownToken,
				Sequence: string(r) + string(s.nextRune),
				Location: loc,
			}
		}
	case '+':
		switch s.nextRune {
		case '+':
			s.consumeRune()
			kind = token.PLUS_PLUS
		case '=':
			s.consumeRune()
			kind = token.PLUS_EQUAL
		default:
			kind = token.PLUS
		}
	case '-':
		switch s.nextRune {
		case '-':
			s.consumeRune()
			kind = token.MINUS_MINUS
		case '=':
			s.consumeRune()
			kind = token.MINUS_EQUAL
		case '>':
			s.consumeRune()
			kind = token.ARROW
		default:
			kind = token.MINUS
		}
	case '*':
		if s.nextRune == '=' {
			s.consumeRune()
			kind = token.MULTIPLY_EQUAL
		} else {
			kind = token.MULTIPLY
		}
	case '/':
		if s.nextRune == '=' {
			s.consumeRune()
			kind = token.DIVIDE_EQUAL
		} else {
			kind = token.DIVIDE
		}
	case '%':
		if s.nextRune == '=' {
			s.consumeRune()
			kind = token.MOD_EQUAL
		} else {
			kind = token.MOD
		}
	case '&':
		switch s.nextRune {
		case '&':
			s.consumeRune()
			kind = token.AND_AND
		case '=':
			s.consumeRune()
			kind = token.AND_EQUAL
		default:
			kind = token.AND
		}
	case '|':
		switch s.nextRune {
		case '|':
			s.consumeRune()
			kind = token.OR_OR
		case '=':
			s.consumeRune()
			kind = token.OR_EQUAL
		default:
			kind = token.OR
		}
	case '^':
		if s.nextRune == '=' {
			s.consumeRune()
			kind = token.XOR_EQUAL
		} else {
			kind = token.XOR
		}
	case '<':
		switch s.nextRune {
		case '<':
			s.consumeRune()
			if s.nextRune == '=' {
				s.consumeRune()
				kind = token.SHIFT_LEFT_EQUAL
			} else {
				kind = token.SHIFT_LEFT
			}
		case '=':
			s.consumeRune()
			kind = token.LESS_EQUAL
		default:
			kind = token.LESS
		}
	case '>':
		switch s.nextRune {
		case '>':
			s.consumeRune()
			if s.nextRune == '=' {
				s.consumeRune()
				kind = token.SHIFT_RIGHT_EQUAL
			} else {
				kind = token.SHIFT_RIGHT
			}
		case '=':
			s.consumeRune()
			kind = token.GREATER_EQUAL
		default:
			kind = token.GREATER
		}
	case '!':
		if s.nextRune == '=' {
			s.consumeRune()
			kind = token.NOT_EQUAL
		} else {
			// There is no bare logical-not token in the language.
			return token.Token{}, &Error{
				Code:     ErrUnknownToken,
				Sequence: string(r),
				Location: loc,
			}
		}
	default:
		return token.Token{}, &Error{
			Code:     ErrUnknownToken,
			Sequence: string(r),
			Location: loc,
		}
	}

	return token.Token{
		Kind:    kind,
		Literal: string(s.src[start:s.cur]),
	}, nil
}
