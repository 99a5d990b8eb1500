// Package clex tokenizes source text written in a C-like language.
//
// The scanner package provides the pull-based interface a parser would drive
// directly. This package provides a convenience API for callers that just
// want every token and every diagnostic in one pass.
package clex

import (
	"github.com/clex-lang/clex/scanner"
	"github.com/clex-lang/clex/token"
)

// Tokenize scans src to end-of-input. Scanning continues past lexical errors,
// so a single pass yields every token that could be produced along with every
// diagnostic. The terminal EOF token is not included in the result.
func Tokenize(src []byte, filepath string) ([]token.Token, []*scanner.Error) {
	s := scanner.New(src, filepath)
	var tokens []token.Token
	var errs []*scanner.Error
	for {
		tok, err := s.Next()
		if err != nil {
			errs = append(errs, err.(*scanner.Error))
			continue
		}
		if tok.Is(token.EOF) {
			return tokens, errs
		}
		tokens = append(tokens, tok)
	}
}
