package token

import "fmt"

// Token represents a group of characters with additional information that was
// obtained during the scanning phase. Tokens are never modified once created.
type Token struct {
	Typ    Type
	Lexeme string
	// Offset is the rune offset of the first character of the lexeme.
	Offset int
}

// NewToken creates a new token
func NewToken(typ Type, lexeme string, offset int) *Token {
	return &Token{typ, lexeme, offset}
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %q @%d", t.Typ.String(), t.Lexeme, t.Offset)
}

// EOFLexeme is the lexeme carried by the token that ends every token array.
const EOFLexeme = "EOF"

// Type is a wrapped integer used to represent token's type
type Type uint

const (
	EOF Type = iota

	// Numbers
	INTEGER
	FLOAT

	// Constant words
	NAN
	INFINITY

	// Operators
	ADD
	SUB
	MUL
	DIV
	MOD
	POW

	LEFT_PAREN
	RIGHT_PAREN

	// BUILTIN is reserved for built-in function calls. The scanner never
	// produces it.
	BUILTIN

	PI
	E
)

// Keywords lists the constant words in the order the scanner tries them,
// longest first.
var Keywords = []struct {
	Word string
	Typ  Type
}{
	{"Infinity", INFINITY},
	{"NaN", NAN},
	{"PI", PI},
	{"E", E},
}

func (tt Type) String() string {
	switch tt {
	case EOF:
		return "EOF"
	case INTEGER:
		return "INTEGER"
	case FLOAT:
		return "FLOAT"
	case NAN:
		return "NAN"
	case INFINITY:
		return "INFINITY"
	case ADD:
		return "+"
	case SUB:
		return "-"
	case MUL:
		return "*"
	case DIV:
		return "/"
	case MOD:
		return "%"
	case POW:
		return "**"
	case LEFT_PAREN:
		return "("
	case RIGHT_PAREN:
		return ")"
	case BUILTIN:
		return "BUILTIN"
	case PI:
		return "PI"
	case E:
		return "E"
	}
	return fmt.Sprintf("Type(%d)", uint(tt))
}

// IsLiteral reports whether tokens of this type form a literal node on their
// own.
func (tt Type) IsLiteral() bool {
	switch tt {
	case INTEGER, FLOAT, NAN, INFINITY, PI, E:
		return true
	}
	return false
}
