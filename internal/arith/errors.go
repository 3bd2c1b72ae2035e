package arith

import (
	"fmt"

	"github.com/ltungv/calc/internal/token"
)

// InputError is an error with position information. Every error produced by
// the scanner, the parser, or the interpreter implements InputError.
type InputError interface {
	error
	// Pos returns the rune offset of the offending input, or -1 when the error
	// is not tied to a position in the source.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*ParseError)(nil)
	_ InputError = (*EvalError)(nil)
)

// LexError is returned by the scanner when the input contains a character
// sequence that does not form a token.
type LexError struct {
	Offset  int
	Lexeme  string
	Message string
}

func newLexError(offset int, lexeme string, message string) error {
	return &LexError{offset, lexeme, message}
}

func (err *LexError) Error() string {
	return fmt.Sprintf(
		"[offset %d] Error at '%s': %s",
		err.Offset,
		err.Lexeme,
		err.Message,
	)
}

func (err *LexError) Pos() int {
	return err.Offset
}

// ParseError is returned by the parser when the token sequence does not match
// the grammar.
type ParseError struct {
	Token *token.Token
	// Expected is the type the parser required when it found Token, if the
	// error came from consuming a specific token type.
	Expected *token.Type
	Message  string
}

func newParseError(tok *token.Token, message string) error {
	return &ParseError{Token: tok, Message: message}
}

func newExpectError(tok *token.Token, expected token.Type) error {
	return &ParseError{
		Token:    tok,
		Expected: &expected,
		Message: fmt.Sprintf(
			"Expect '%s' but found '%s'.",
			expected.String(),
			tok.Lexeme,
		),
	}
}

func (err *ParseError) Error() string {
	if err.Token.Typ == token.EOF {
		return fmt.Sprintf(
			"[offset %d] Error at end: %s",
			err.Token.Offset,
			err.Message,
		)
	}
	return fmt.Sprintf(
		"[offset %d] Error at '%s': %s",
		err.Token.Offset,
		err.Token.Lexeme,
		err.Message,
	)
}

func (err *ParseError) Pos() int {
	return err.Token.Offset
}

// EvalError is returned by the interpreter when a tree holds a node, an
// operator, or a literal it cannot evaluate. Trees built by the parser never
// cause one.
type EvalError struct {
	// Token is the token of the offending node, nil if there is no node.
	Token   *token.Token
	Message string
}

func newEvalError(tok *token.Token, message string) error {
	return &EvalError{tok, message}
}

func (err *EvalError) Error() string {
	if err.Token == nil {
		return fmt.Sprintf("Error: %s", err.Message)
	}
	return fmt.Sprintf(
		"[offset %d] Error at '%s': %s",
		err.Token.Offset,
		err.Token.Lexeme,
		err.Message,
	)
}

func (err *EvalError) Pos() int {
	if err.Token == nil {
		return -1
	}
	return err.Token.Offset
}
