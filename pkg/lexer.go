package quill

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"fortio.org/safecast"
	"github.com/pkg/errors"
)

// EOF is returned by the reader helpers at end of input. It is not a valid
// rune, so NUL bytes in the source are lexed like any other character.
const EOF rune = -1

type stateFunc func(l *Lexer) stateFunc

var keywordTable = map[string]TokenType{
	"print":    TokenPrint,
	"function": TokenFunction,
	"return":   TokenReturn,
	"null":     TokenNull,
}

var operatorTable = map[rune]TokenKind{
	'+': TokenBinaryOp(Addition),
	'-': TokenBinaryOp(Subtraction),
	'*': TokenBinaryOp(Multiplication),
	'/': TokenBinaryOp(Division),
	'(': TokenLeftParen,
	')': TokenRightParen,
}

// Lexer turns source text into Tokens. Tokens are streamed on Chan while Run
// executes; once the channel is closed Err reports why lexing stopped, if it
// did so early.
type Lexer struct {
	reader *bufio.Reader
	done   chan Token
	err    error
	rerr   error

	loc   Location
	start Location
	last  TokenKind
}

func NewLexer(reader io.Reader) *Lexer {
	return &Lexer{
		reader: bufio.NewReader(reader),
		done:   make(chan Token),
		loc:    Location{Line: 1, Column: 1},
	}
}

func (l *Lexer) Chan() <-chan Token {
	return l.done
}

// Err must only be called after Chan has been closed.
func (l *Lexer) Err() error {
	return l.err
}

func (l *Lexer) Run() {
	for state := defaultState; state != nil; {
		state = state(l)
	}

	if l.err == nil && l.rerr != nil {
		l.err = errors.Wrap(l.rerr, "read source")
	}

	close(l.done)
}

func (l *Lexer) RunBlocking() ([]Token, error) {
	go l.Run()

	var tokens []Token
	for t := range l.Chan() {
		tokens = append(tokens, t)
	}

	if l.err != nil {
		return nil, l.err
	}

	return tokens, nil
}

func defaultState(l *Lexer) stateFunc {
	for {
		l.start = l.loc

		switch r := l.peek(); {
		case r == EOF:
			return nil
		case unicode.IsSpace(r):
			l.next()
			continue
		case '0' <= r && r <= '9':
			return numberState
		case r == '"':
			return stringState
		case unicode.IsLetter(r):
			return identifierState
		default:
			return operatorState
		}
	}
}

func numberState(l *Lexer) stateFunc {
	digits := l.digits()

	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return l.errorf("number literal out of range: %s", digits)
	}

	v, err := safecast.Conv[uint](n)
	if err != nil {
		return l.errorf("number literal out of range: %s", digits)
	}

	return l.emit(Token{Kind: TokenNumber, Value: Num{Unsigned(v)}})
}

// signedNumberState runs with the leading minus sign already consumed.
func signedNumberState(l *Lexer) stateFunc {
	digits := "-" + l.digits()

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return l.errorf("number literal out of range: %s", digits)
	}

	v, err := safecast.Conv[int](n)
	if err != nil {
		return l.errorf("number literal out of range: %s", digits)
	}

	return l.emit(Token{Kind: TokenNumber, Value: Num{Signed(v)}})
}

func stringState(l *Lexer) stateFunc {
	l.next() // Skip the leading double-quote

	var str strings.Builder
	for r := l.next(); r != '"'; r = l.next() {
		if r == EOF {
			return l.errorf("unclosed string: %s", str.String())
		}

		str.WriteRune(r)
	}

	return l.emit(Token{Kind: TokenString, Value: Text(str.String())})
}

func identifierState(l *Lexer) stateFunc {
	var id strings.Builder
	for r := l.peek(); unicode.IsLetter(r); r = l.peek() {
		id.WriteRune(l.next())
	}

	if t, ok := keywordTable[id.String()]; ok {
		return l.emit(FromKind(t))
	}

	return l.errorf("unknown identifier '%s'", id.String())
}

func operatorState(l *Lexer) stateFunc {
	r := l.next()
	switch next := l.peek(); {
	case r == '/' && next == '/':
		return lineCommentState
	case r == '-' && '0' <= next && next <= '9' && l.signAllowed():
		return signedNumberState
	}

	if kind, ok := operatorTable[r]; ok {
		return l.emit(FromKind(kind))
	}

	return l.errorf("invalid symbol %q", r)
}

func lineCommentState(l *Lexer) stateFunc {
	for r := l.peek(); r != '\n' && r != EOF; r = l.peek() {
		l.next()
	}

	return defaultState
}

// signAllowed reports whether a minus sign may start a number literal, which
// is the case unless the previous token ends an operand.
func (l *Lexer) signAllowed() bool {
	switch l.last {
	case TokenNumber, TokenString, TokenNull, TokenRightParen:
		return false
	}

	return true
}

func (l *Lexer) digits() string {
	var num strings.Builder
	for r := l.peek(); '0' <= r && r <= '9'; r = l.peek() {
		num.WriteRune(l.next())
	}

	return num.String()
}

func (l *Lexer) errorf(format string, args ...interface{}) stateFunc {
	l.err = LexError{
		Loc:     l.start,
		Message: fmt.Sprintf(format, args...),
	}

	return nil
}

func (l *Lexer) emit(t Token) stateFunc {
	l.done <- t
	l.last = t.Kind

	return defaultState
}

func (l *Lexer) peek() rune {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		if err != io.EOF {
			l.rerr = err
		}

		return EOF
	}

	_ = l.reader.UnreadRune()

	return r
}

func (l *Lexer) next() rune {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		if err != io.EOF {
			l.rerr = err
		}

		return EOF
	}

	if r == '\n' {
		l.loc.Line++
		l.loc.Column = 1
	} else {
		l.loc.Column++
	}

	return r
}
