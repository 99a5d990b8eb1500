package scanner

import (
	"fmt"

	"github.com/clex-lang/clex/token"
)

type ErrorCode int

const (
	ErrUnknownToken ErrorCode = iota
	ErrUnterminatedStringLiteral
	ErrUnterminatedCharLiteral
	ErrUnknownEscapeSequence
	ErrNumericLiteralOverflow
)

// Error is a lexical error. Sequence holds the offending source text: the
// unrecognized character for ErrUnknownToken, the two-character escape for
// ErrUnknownEscapeSequence, or the digit run for ErrNumericLiteralOverflow.
type Error struct {
	Code     ErrorCode
	Sequence string
	Location token.Location
}

func (err *Error) Error() string {
	switch err.Code {
	case ErrUnterminatedStringLiteral:
		return "unterminated string literal"
	case ErrUnterminatedCharLiteral:
		return "unterminated character literal"
	case ErrUnknownEscapeSequence:
		return fmt.Sprintf("unknown escape sequence %q", err.Sequence)
	case ErrNumericLiteralOverflow:
		return fmt.Sprintf("integer literal %v overflows a 32-bit integer", err.Sequence)
	default:
		return fmt.Sprintf("unknown token %q", err.Sequence)
	}
}
