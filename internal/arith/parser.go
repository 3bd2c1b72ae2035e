package arith

import (
	"fmt"

	"github.com/ltungv/calc/internal/token"
)

// Parser composes the syntax trees of every statement in a sequence of tokens
// that follow the grammar described in the package documentation. The whole
// sequence is parsed when the parser is created.
type Parser struct {
	current    int
	tokens     []*token.Token
	statements []Expr
	// index is the position of the last statement returned by Next.
	index int
}

// NewParser parses the given tokens, which must end with an EOF token. If the
// tokens do not follow the grammar, the error is a *ParseError and no parser
// is returned.
func NewParser(tokens []*token.Token) (*Parser, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Typ != token.EOF {
		return nil, newParseError(
			token.NewToken(token.EOF, token.EOFLexeme, 0),
			"Token sequence does not end with EOF.",
		)
	}
	parser := &Parser{0, tokens, make([]Expr, 0), -1}
	if err := parser.parse(); err != nil {
		return nil, err
	}
	return parser, nil
}

// Next returns the next parsed statement. It returns false once every
// statement has been returned.
func (parser *Parser) Next() (Expr, bool) {
	if parser.index+1 >= len(parser.statements) {
		parser.index = len(parser.statements)
		return nil, false
	}
	parser.index++
	return parser.statements[parser.index], true
}

// Statements returns all the parsed statements in source order.
func (parser *Parser) Statements() []Expr {
	statements := make([]Expr, len(parser.statements))
	copy(statements, parser.statements)
	return statements
}

// program --> expr* ;
//
// Statements are not separated by anything, the loop starts a new statement
// wherever the previous one stopped.
func (parser *Parser) parse() error {
	for !parser.isEOF() {
		expr, err := parser.expression()
		if err != nil {
			return err
		}
		if expr == nil {
			break
		}
		parser.statements = append(parser.statements, expr)
	}
	return nil
}

// Creates a left-associative nested tree of binary operator nodes. Match a
// higher precedence rule `term` if does not hits "+" or "-". A nil expression
// without an error means the input ended before the expression started.
//
// expr --> term ( ( "+" | "-" ) term )* ;
func (parser *Parser) expression() (Expr, error) {
	return parser.binary(parser.term, token.ADD, token.SUB)
}

// term --> value ( ( "*" | "/" | "%" ) value )* ;
func (parser *Parser) term() (Expr, error) {
	return parser.binary(parser.value, token.MUL, token.DIV, token.MOD)
}

// value --> factor ( "**" factor )* ;
//
// "**" folds to the left like every other binary operator.
func (parser *Parser) value() (Expr, error) {
	return parser.binary(parser.factor, token.POW)
}

// binary parses one precedence level: operands from the next level joined by
// any of the given operators.
func (parser *Parser) binary(
	operand func() (Expr, error),
	types ...token.Type,
) (Expr, error) {
	expr, err := operand()
	if err != nil || expr == nil {
		return nil, err
	}
	for parser.match(types...) {
		op := parser.prev()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		if right == nil {
			return nil, newParseError(
				op,
				fmt.Sprintf("Missing right-hand operand for '%s'.", op.Lexeme),
			)
		}
		expr = NewBinaryExpr(op, expr, right)
	}
	return expr, nil
}

// factor --> ( "+" | "-" ) factor
//          | INTEGER | FLOAT | NAN | INFINITY | PI | E
//          | "(" expr ")"
//          | EOF ;
func (parser *Parser) factor() (Expr, error) {
	if parser.match(token.ADD, token.SUB) {
		op := parser.prev()
		operand, err := parser.factor()
		if err != nil {
			return nil, err
		}
		if operand == nil {
			return nil, newParseError(
				op,
				fmt.Sprintf("Missing operand for unary '%s'.", op.Lexeme),
			)
		}
		return NewUnaryExpr(op, operand), nil
	}
	if parser.peek().Typ.IsLiteral() {
		return NewLiteralExpr(parser.advance()), nil
	}
	if parser.match(token.LEFT_PAREN) {
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if err := parser.consume(token.RIGHT_PAREN); err != nil {
			return nil, err
		}
		return expr, nil
	}
	if parser.isEOF() {
		return nil, nil
	}
	return nil, newParseError(
		parser.peek(),
		fmt.Sprintf("Unexpected token '%s'.", parser.peek().Lexeme),
	)
}

func (parser *Parser) match(types ...token.Type) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

func (parser *Parser) consume(typ token.Type) error {
	if parser.check(typ) {
		parser.advance()
		return nil
	}
	return newExpectError(parser.peek(), typ)
}

func (parser *Parser) check(tt token.Type) bool {
	if parser.isEOF() {
		return false
	}
	return parser.peek().Typ == tt
}

func (parser *Parser) advance() *token.Token {
	if !parser.isEOF() {
		parser.current++
	}
	return parser.prev()
}

func (parser *Parser) isEOF() bool {
	return parser.peek().Typ == token.EOF
}

func (parser *Parser) peek() *token.Token {
	return parser.tokens[parser.current]
}

func (parser *Parser) prev() *token.Token {
	return parser.tokens[parser.current-1]
}
