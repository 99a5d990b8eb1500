package scanner

import (
	"strconv"

	"github.com/clex-lang/clex/token"
)

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// scanIntValue consumes a maximal run of ASCII digits and parses it base-10,
// so leading zeros carry no octal meaning. A run that doesn't fit in an int32
// is a hard error, never a silent wraparound.
func (s *Scanner) scanIntValue() (token.Token, error) {
	start := s.cur
	loc := s.Location()

	for !s.isDone() && isDigit(s.nextRune) {
		s.consumeRune()
	}
	literal := string(s.src[start:s.cur])

	value, err := strconv.ParseInt(literal, 10, 32)
	if err != nil {
		return token.Token{}, &Error{
			Code:     ErrNumericLiteralOverflow,
			Sequence: literal,
			Location: loc,
		}
	}

	return token.Token{
		Kind:     token.INT,
		Literal:  literal,
		IntValue: int32(value),
	}, nil
}
