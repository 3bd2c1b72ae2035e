package arith

import (
	"github.com/ltungv/calc/internal/token"
)

// scanState is the state of the scanner's finite automaton. Each state has a
// step method that consumes input and returns the next state.
type scanState int

const (
	stateScan scanState = iota
	stateTimes
	stateWord
	stateNumber
	stateFloat
	stateDone
)

func (s scanState) String() string {
	switch s {
	case stateScan:
		return "scan"
	case stateTimes:
		return "times"
	case stateWord:
		return "word"
	case stateNumber:
		return "number"
	case stateFloat:
		return "float"
	case stateDone:
		return "done"
	}
	return "unknown"
}

// Scanner converts the input source into the tokens it contains. All the
// scanning happens when the scanner is created, Next and Peek only walk over
// the collected tokens.
type Scanner struct {
	start   int
	current int
	source  []rune
	tokens  []*token.Token
	// index is the position of the last token returned by Next.
	index int
}

// NewScanner scans the whole source and returns a scanner holding its tokens.
// The token array always ends with an EOF token. If the source contains an
// invalid token, the error is a *LexError and no scanner is returned.
func NewScanner(source string) (*Scanner, error) {
	scanner := newScanner([]rune(source))
	if err := scanner.run(); err != nil {
		return nil, err
	}
	return scanner, nil
}

func newScanner(source []rune) *Scanner {
	scanner := new(Scanner)
	scanner.start = 0
	scanner.current = 0
	scanner.source = source
	scanner.tokens = make([]*token.Token, 0)
	scanner.index = -1
	return scanner
}

// Next advances to the next token and returns it. It returns false once every
// token, including EOF, has been returned.
func (scanner *Scanner) Next() (*token.Token, bool) {
	if scanner.index+1 >= len(scanner.tokens) {
		scanner.index = len(scanner.tokens)
		return nil, false
	}
	scanner.index++
	return scanner.tokens[scanner.index], true
}

// Peek returns the n-th token after the last one returned by Next without
// advancing, so Peek(1) is the token the next call to Next returns.
func (scanner *Scanner) Peek(n int) (*token.Token, bool) {
	i := scanner.index + n
	if n < 1 || i >= len(scanner.tokens) {
		return nil, false
	}
	return scanner.tokens[i], true
}

// Tokens returns a copy of all the scanned tokens.
func (scanner *Scanner) Tokens() []*token.Token {
	tokens := make([]*token.Token, len(scanner.tokens))
	copy(tokens, scanner.tokens)
	return tokens
}

// run drives the automaton from stateScan until it reaches stateDone.
func (scanner *Scanner) run() error {
	state := stateScan
	for state != stateDone {
		var err error
		if state, err = scanner.step(state); err != nil {
			return err
		}
	}
	return nil
}

// step runs a single transition of the automaton.
func (scanner *Scanner) step(state scanState) (scanState, error) {
	switch state {
	case stateScan:
		return scanner.scan()
	case stateTimes:
		return scanner.scanTimes()
	case stateWord:
		return scanner.scanWord()
	case stateNumber:
		return scanner.scanNumber()
	case stateFloat:
		return scanner.scanFloat()
	}
	return stateDone, nil
}

// scan is the dispatch state, it starts a new token at the current position.
func (scanner *Scanner) scan() (scanState, error) {
	// skip whitespaces
	for scanner.peek() == ' ' || scanner.peek() == '\t' {
		scanner.advance()
	}
	scanner.start = scanner.current

	if !scanner.hasNext() {
		scanner.tokens = append(
			scanner.tokens,
			token.NewToken(token.EOF, token.EOFLexeme, scanner.current),
		)
		return stateDone, nil
	}

	switch r := scanner.peek(); r {
	case '(':
		return scanner.single(token.LEFT_PAREN)
	case ')':
		return scanner.single(token.RIGHT_PAREN)
	case '+':
		return scanner.single(token.ADD)
	case '-':
		return scanner.single(token.SUB)
	case '/':
		return scanner.single(token.DIV)
	case '%':
		return scanner.single(token.MOD)
	case '*':
		return stateTimes, nil
	default:
		if isUpper(r) {
			return stateWord, nil
		}
		if isDigit(r) || r == '.' {
			return stateNumber, nil
		}
		return stateDone, newLexError(scanner.start, string(r), "Unknown character.")
	}
}

// single emits a one-character token.
func (scanner *Scanner) single(typ token.Type) (scanState, error) {
	scanner.advance()
	scanner.addToken(typ)
	return stateScan, nil
}

// scanTimes emits '**' or '*'.
func (scanner *Scanner) scanTimes() (scanState, error) {
	scanner.advance()
	if scanner.match('*') {
		scanner.addToken(token.POW)
	} else {
		scanner.addToken(token.MUL)
	}
	return stateScan, nil
}

// scanWord matches one of the constant words against the remaining input.
// There are no identifiers, so any other word is an error.
func (scanner *Scanner) scanWord() (scanState, error) {
	rest := scanner.source[scanner.start:]
	for _, kw := range token.Keywords {
		if hasPrefix(rest, kw.Word) {
			scanner.current += len(kw.Word)
			scanner.addToken(kw.Typ)
			return stateScan, nil
		}
	}
	// report the whole run of letters so the message names the word
	end := scanner.start
	for end < len(scanner.source) && isLetter(scanner.source[end]) {
		end++
	}
	return stateDone, newLexError(
		scanner.start,
		string(scanner.source[scanner.start:end]),
		"Unknown word.",
	)
}

func (scanner *Scanner) scanNumber() (scanState, error) {
	if scanner.peek() == '.' {
		return stateDone, newLexError(scanner.start, ".", "Number with leading dot.")
	}
	// go through continuous digits
	for isDigit(scanner.peek()) {
		scanner.advance()
	}
	if scanner.match('.') {
		return stateFloat, nil
	}
	scanner.addToken(token.INTEGER)
	return stateScan, nil
}

// scanFloat continues a number after its first dot.
func (scanner *Scanner) scanFloat() (scanState, error) {
	for isDigit(scanner.peek()) {
		scanner.advance()
	}
	if scanner.peek() == '.' {
		scanner.advance()
		return stateDone, newLexError(
			scanner.start,
			string(scanner.source[scanner.start:scanner.current]),
			"Duplicated dot in number.",
		)
	}
	scanner.addToken(token.FLOAT)
	return stateScan, nil
}

// addToken appends the lexeme from `start` to `current` as a token of the
// given type
func (scanner *Scanner) addToken(typ token.Type) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tok := token.NewToken(typ, lexeme, scanner.start)
	scanner.tokens = append(scanner.tokens, tok)
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current position
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// match checks if the rune at the current position is equal to the given
// rune, if they are equal, consumes the rune at the current position.
func (scanner *Scanner) match(expected rune) bool {
	if !scanner.hasNext() {
		return false
	}
	if scanner.source[scanner.current] != expected {
		return false
	}
	scanner.current++
	return true
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

func hasPrefix(rs []rune, prefix string) bool {
	i := 0
	for _, r := range prefix {
		if i >= len(rs) || rs[i] != r {
			return false
		}
		i++
	}
	return true
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isUpper(r rune) bool {
	return 'A' <= r && r <= 'Z'
}

func isLetter(r rune) bool {
	return isUpper(r) || 'a' <= r && r <= 'z'
}
